package cart

import (
	"context"

	"github.com/google/uuid"

	"github.com/velora-commerce/velora-backend/pkg/db/models"
)

// Store defines the persistence surface required by the cart service.
type Store interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	UpsertForUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	FindItem(ctx context.Context, cartID, itemID uuid.UUID) (*models.CartItem, error)
	FindItemByProduct(ctx context.Context, cartID, productID uuid.UUID) (*models.CartItem, error)
	CreateItem(ctx context.Context, item *models.CartItem) error
	DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) (int64, error)
	IncrementUnderStock(ctx context.Context, cartID, itemID uuid.UUID) (int64, error)
	DecrementAboveOne(ctx context.Context, cartID, itemID uuid.UUID) (int64, error)
	ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error)
}

// ProductLoader exposes the catalog read needed when adding items.
type ProductLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}
