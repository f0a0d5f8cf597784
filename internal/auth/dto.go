package auth

import (
	"github.com/velora-commerce/velora-backend/internal/users"
)

// SignupRequest captures the fields needed to register a new account.
type SignupRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Name     string  `json:"name" validate:"required"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=7"`
	UserType string  `json:"user_type,omitempty" validate:"omitempty,oneof=buyer seller"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse contains the tokens and user produced by signup or login.
// The refresh token travels as an httpOnly cookie, never in the JSON body.
type AuthResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"-"`
	User         *users.UserDTO `json:"user"`
}

// RefreshResponse carries the re-minted access token.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"-"`
}
