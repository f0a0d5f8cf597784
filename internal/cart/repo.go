package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-backend/pkg/db/models"
)

// Repository encapsulates cart persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByUser loads the cart container for a user.
func (r *Repository) FindByUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.WithContext(ctx).First(&cart, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpsertForUser creates the user's cart if missing and returns it. Concurrent
// callers race on the unique user_id index, not on a read-then-write.
func (r *Repository) UpsertForUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	if userID == uuid.Nil {
		return nil, gorm.ErrInvalidValue
	}
	err := r.db.WithContext(ctx).
		Exec(`INSERT INTO carts (id, user_id) VALUES (?, ?) ON CONFLICT (user_id) DO NOTHING`, uuid.New(), userID).
		Error
	if err != nil {
		return nil, err
	}
	return r.FindByUser(ctx, userID)
}

// FindItem loads an item scoped to its owning cart. A mismatched cart yields
// gorm.ErrRecordNotFound, never another user's row.
func (r *Repository) FindItem(ctx context.Context, cartID, itemID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&item).
		Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindItemByProduct loads the first row matching (cart_id, product_id).
func (r *Repository) FindItemByProduct(ctx context.Context, cartID, productID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Order("created_at ASC").
		First(&item).
		Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem inserts a new cart line.
func (r *Repository) CreateItem(ctx context.Context, item *models.CartItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// DeleteItem removes the row scoped to its owning cart and reports rows hit.
func (r *Repository) DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&models.CartItem{})
	return tx.RowsAffected, tx.Error
}

// IncrementUnderStock bumps quantity by one only while it stays below the
// product's live stock. The guard rides in the UPDATE itself so concurrent
// increments cannot overshoot.
func (r *Repository) IncrementUnderStock(ctx context.Context, cartID, itemID uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).Exec(
		`UPDATE cart_items
		 SET quantity = quantity + 1, updated_at = NOW()
		 WHERE id = ? AND cart_id = ?
		   AND quantity < (SELECT stock FROM products WHERE products.id = cart_items.product_id)`,
		itemID, cartID,
	)
	return tx.RowsAffected, tx.Error
}

// DecrementAboveOne lowers quantity by one while the row stays at >= 1.
// Zero rows affected means the row sits at quantity 1 (or is gone).
func (r *Repository) DecrementAboveOne(ctx context.Context, cartID, itemID uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).Exec(
		`UPDATE cart_items
		 SET quantity = quantity - 1, updated_at = NOW()
		 WHERE id = ? AND cart_id = ? AND quantity > 1`,
		itemID, cartID,
	)
	return tx.RowsAffected, tx.Error
}

// ListItems returns the cart's rows with product detail preloaded.
func (r *Repository) ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product.Attributes.Values").
		Preload("Product.Images").
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
