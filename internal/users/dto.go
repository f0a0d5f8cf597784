package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/velora-commerce/velora-backend/pkg/db/models"
	"github.com/velora-commerce/velora-backend/pkg/enums"
)

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID          uuid.UUID      `json:"id"`
	Email       string         `json:"email"`
	Name        string         `json:"name"`
	Phone       *string        `json:"phone,omitempty"`
	UserType    enums.UserType `json:"user_type"`
	IsActive    bool           `json:"is_active"`
	LastLoginAt *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// UpdateProfileDTO carries the profile fields a user may change. Nil fields
// are left untouched.
type UpdateProfileDTO struct {
	Name  *string
	Phone *string
}

// Empty reports whether the update carries no changes.
func (u UpdateProfileDTO) Empty() bool {
	return u.Name == nil && u.Phone == nil
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email        string
	PasswordHash string
	Name         string
	Phone        *string
	UserType     enums.UserType
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Phone:       u.Phone,
		UserType:    u.UserType,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	userType := c.UserType
	if userType == "" {
		userType = enums.UserTypeBuyer
	}

	return &models.User{
		ID:           uuid.New(),
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Name:         c.Name,
		Phone:        c.Phone,
		UserType:     userType,
		IsActive:     true,
	}
}
