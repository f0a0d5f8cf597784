package wishlist

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-backend/pkg/db/models"
)

// Repository encapsulates wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByUser loads the wishlist container for a user.
func (r *Repository) FindByUser(ctx context.Context, userID uuid.UUID) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := r.db.WithContext(ctx).First(&wishlist, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// UpsertForUser creates the user's wishlist if missing and returns it.
func (r *Repository) UpsertForUser(ctx context.Context, userID uuid.UUID) (*models.Wishlist, error) {
	if userID == uuid.Nil {
		return nil, gorm.ErrInvalidValue
	}
	err := r.db.WithContext(ctx).
		Exec(`INSERT INTO wishlists (id, user_id) VALUES (?, ?) ON CONFLICT (user_id) DO NOTHING`, uuid.New(), userID).
		Error
	if err != nil {
		return nil, err
	}
	return r.FindByUser(ctx, userID)
}

// FindItemByProduct loads the row matching (wishlist_id, product_id).
func (r *Repository) FindItemByProduct(ctx context.Context, wishlistID, productID uuid.UUID) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := r.db.WithContext(ctx).
		Where("wishlist_id = ? AND product_id = ?", wishlistID, productID).
		First(&item).
		Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem inserts a new wishlist entry.
func (r *Repository) CreateItem(ctx context.Context, item *models.WishlistItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// DeleteItem removes the row scoped to its owning wishlist and reports rows hit.
func (r *Repository) DeleteItem(ctx context.Context, wishlistID, itemID uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND wishlist_id = ?", itemID, wishlistID).
		Delete(&models.WishlistItem{})
	return tx.RowsAffected, tx.Error
}

// ListItems returns the wishlist's rows with product detail preloaded.
func (r *Repository) ListItems(ctx context.Context, wishlistID uuid.UUID) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Product.Attributes.Values").
		Preload("Product.Images").
		Where("wishlist_id = ?", wishlistID).
		Order("created_at ASC").
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
