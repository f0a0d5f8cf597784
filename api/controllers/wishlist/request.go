package wishlist

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/velora-commerce/velora-backend/api/middleware"
	pkgerrors "github.com/velora-commerce/velora-backend/pkg/errors"
)

// AddItemRequest identifies the product to add to the wishlist.
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// ItemRequest identifies an existing wishlist row.
type ItemRequest struct {
	ItemID uuid.UUID `json:"item_id" validate:"required"`
}

func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeAuthentication, "authentication required")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeAuthentication, err, "invalid user id")
	}
	return userID, nil
}
