package wishlist

import (
	"context"

	"github.com/google/uuid"

	"github.com/velora-commerce/velora-backend/pkg/db/models"
)

// Store defines the persistence surface required by the wishlist service.
type Store interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*models.Wishlist, error)
	UpsertForUser(ctx context.Context, userID uuid.UUID) (*models.Wishlist, error)
	FindItemByProduct(ctx context.Context, wishlistID, productID uuid.UUID) (*models.WishlistItem, error)
	CreateItem(ctx context.Context, item *models.WishlistItem) error
	DeleteItem(ctx context.Context, wishlistID, itemID uuid.UUID) (int64, error)
	ListItems(ctx context.Context, wishlistID uuid.UUID) ([]models.WishlistItem, error)
}

// ProductLoader exposes the catalog read needed when adding items.
type ProductLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}
