package enums

import "fmt"

// UserType describes the allowed values for the `user_type` column on users.
type UserType string

const (
	UserTypeBuyer  UserType = "buyer"
	UserTypeSeller UserType = "seller"
	UserTypeAdmin  UserType = "admin"
)

var validUserTypes = []UserType{
	UserTypeBuyer,
	UserTypeSeller,
	UserTypeAdmin,
}

// IsValid reports whether the value matches the canonical user type enum.
func (u UserType) IsValid() bool {
	for _, candidate := range validUserTypes {
		if candidate == u {
			return true
		}
	}
	return false
}

// String returns the raw enum value.
func (u UserType) String() string {
	return string(u)
}

// ParseUserType converts the raw string to UserType.
func ParseUserType(value string) (UserType, error) {
	for _, candidate := range validUserTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user type %q", value)
}
