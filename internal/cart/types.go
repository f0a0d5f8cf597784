package cart

import (
	"time"

	"github.com/google/uuid"

	products "github.com/velora-commerce/velora-backend/internal/products"
	"github.com/velora-commerce/velora-backend/pkg/db/models"
)

// CartItemDTO is the mutation payload: the row identity plus its quantity.
type CartItemDTO struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// CartItemDetailDTO is the listing row including the joined product summary.
type CartItemDetailDTO struct {
	ID        uuid.UUID            `json:"id"`
	Quantity  int                  `json:"quantity"`
	Product   *products.ProductDTO `json:"product"`
	CreatedAt time.Time            `json:"created_at"`
}

func itemDTO(item *models.CartItem) *CartItemDTO {
	if item == nil {
		return nil
	}
	return &CartItemDTO{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
}

func itemDetailDTO(item *models.CartItem, now time.Time) CartItemDetailDTO {
	return CartItemDetailDTO{
		ID:        item.ID,
		Quantity:  item.Quantity,
		Product:   products.NewProductDTO(item.Product, now),
		CreatedAt: item.CreatedAt,
	}
}
