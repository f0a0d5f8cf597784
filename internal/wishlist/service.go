package wishlist

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-backend/pkg/db/models"
	pkgerrors "github.com/velora-commerce/velora-backend/pkg/errors"
)

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	Wishlists Store
	Products  ProductLoader
	Now       func() time.Time
}

// Service exposes business rules for wishlist management.
type Service interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID) (*WishlistItemDTO, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
	ListItems(ctx context.Context, userID uuid.UUID) ([]WishlistItemDetailDTO, error)
}

type service struct {
	wishlists Store
	products  ProductLoader
	now       func() time.Time
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Wishlists == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist store is required")
	}
	if params.Products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product loader is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{wishlists: params.Wishlists, products: params.Products, now: now}, nil
}

// AddItem saves the product, creating the wishlist on first use. A product
// already present is reported back instead of duplicated; this is the
// deliberate asymmetry with cart add.
func (s *service) AddItem(ctx context.Context, userID, productID uuid.UUID) (*WishlistItemDTO, error) {
	if err := requirePrincipal(userID); err != nil {
		return nil, err
	}
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	wishlist, err := s.wishlists.UpsertForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upsert wishlist")
	}

	existing, err := s.wishlists.FindItemByProduct(ctx, wishlist.ID, productID)
	switch {
	case err == nil:
		return itemDTO(existing, true), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// not present yet
	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find wishlist item")
	}

	item := &models.WishlistItem{
		WishlistID: wishlist.ID,
		ProductID:  productID,
	}
	if err := s.wishlists.CreateItem(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create wishlist item")
	}
	return itemDTO(item, false), nil
}

// RemoveItem deletes the entry scoped to the caller's wishlist.
func (s *service) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := requirePrincipal(userID); err != nil {
		return err
	}
	wishlist, err := s.findWishlist(ctx, userID)
	if err != nil {
		return err
	}

	affected, err := s.wishlists.DeleteItem(ctx, wishlist.ID, itemID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete wishlist item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Item not found in wishlist")
	}
	return nil
}

// ListItems returns the wishlist's rows with product detail.
func (s *service) ListItems(ctx context.Context, userID uuid.UUID) ([]WishlistItemDetailDTO, error) {
	if err := requirePrincipal(userID); err != nil {
		return nil, err
	}
	wishlist, err := s.findWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.wishlists.ListItems(ctx, wishlist.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlist items")
	}

	now := s.now()
	dtos := make([]WishlistItemDetailDTO, len(items))
	for i := range items {
		dtos[i] = itemDetailDTO(&items[i], now)
	}
	return dtos, nil
}

func (s *service) findWishlist(ctx context.Context, userID uuid.UUID) (*models.Wishlist, error) {
	wishlist, err := s.wishlists.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Wishlist not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}
	return wishlist, nil
}

func requirePrincipal(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeAuthentication, "authentication required")
	}
	return nil
}
