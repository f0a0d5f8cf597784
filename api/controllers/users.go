package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/velora-commerce/velora-backend/api/middleware"
	"github.com/velora-commerce/velora-backend/api/responses"
	"github.com/velora-commerce/velora-backend/api/validators"
	"github.com/velora-commerce/velora-backend/internal/users"
	"github.com/velora-commerce/velora-backend/pkg/db"
	"github.com/velora-commerce/velora-backend/pkg/db/models"
	pkgerrors "github.com/velora-commerce/velora-backend/pkg/errors"
	"github.com/velora-commerce/velora-backend/pkg/logger"
)

type userFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// UserMe returns the authenticated user's profile.
func UserMe(repo userFinder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user repository unavailable"))
			return
		}

		userID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeAuthentication, "authentication required"))
			return
		}

		user, err := repo.FindByID(r.Context(), userID)
		if err != nil {
			if db.IsNotFound(err) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "User not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user"))
			return
		}

		responses.WriteSuccess(w, "User profile", users.FromModel(user))
	}
}

type userProfileUpdater interface {
	UpdateProfile(ctx context.Context, id uuid.UUID, dto users.UpdateProfileDTO) (*models.User, error)
}

// UpdateProfileRequest carries the mutable profile fields. Absent fields stay
// unchanged.
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=120"`
	Phone *string `json:"phone" validate:"omitempty,max=32"`
}

// UserUpdateProfile updates the authenticated user's name and phone.
func UserUpdateProfile(repo userProfileUpdater, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user repository unavailable"))
			return
		}

		userID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeAuthentication, "authentication required"))
			return
		}

		var body UpdateProfileRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if body.Name != nil {
			sanitized := validators.SanitizeString(*body.Name, 120)
			body.Name = &sanitized
		}

		dto := users.UpdateProfileDTO{Name: body.Name, Phone: body.Phone}
		if dto.Empty() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "no profile fields to update"))
			return
		}

		user, err := repo.UpdateProfile(r.Context(), userID, dto)
		if err != nil {
			if db.IsNotFound(err) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "User not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user profile"))
			return
		}

		responses.WriteSuccess(w, "Profile updated", users.FromModel(user))
	}
}
