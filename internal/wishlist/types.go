package wishlist

import (
	"time"

	"github.com/google/uuid"

	products "github.com/velora-commerce/velora-backend/internal/products"
	"github.com/velora-commerce/velora-backend/pkg/db/models"
)

// WishlistItemDTO is the mutation payload returned by add.
type WishlistItemDTO struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	// AlreadyPresent is set when the product was in the wishlist before the call.
	AlreadyPresent bool `json:"-"`
}

// WishlistItemDetailDTO is the listing row including the joined product summary.
type WishlistItemDetailDTO struct {
	ID        uuid.UUID            `json:"id"`
	Product   *products.ProductDTO `json:"product"`
	CreatedAt time.Time            `json:"created_at"`
}

func itemDTO(item *models.WishlistItem, alreadyPresent bool) *WishlistItemDTO {
	if item == nil {
		return nil
	}
	return &WishlistItemDTO{
		ID:             item.ID,
		ProductID:      item.ProductID,
		AlreadyPresent: alreadyPresent,
	}
}

func itemDetailDTO(item *models.WishlistItem, now time.Time) WishlistItemDetailDTO {
	return WishlistItemDetailDTO{
		ID:        item.ID,
		Product:   products.NewProductDTO(item.Product, now),
		CreatedAt: item.CreatedAt,
	}
}
