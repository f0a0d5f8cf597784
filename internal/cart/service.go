package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-backend/pkg/config"
	"github.com/velora-commerce/velora-backend/pkg/db/models"
	pkgerrors "github.com/velora-commerce/velora-backend/pkg/errors"
)

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Carts    Store
	Products ProductLoader
	Config   config.CartConfig
	Now      func() time.Time
}

// Service exposes business rules for cart mutation.
type Service interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID) (*CartItemDTO, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
	IncreaseQuantity(ctx context.Context, userID, itemID uuid.UUID) (*CartItemDTO, error)
	DecreaseQuantity(ctx context.Context, userID, itemID uuid.UUID) (*CartItemDTO, error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]CartItemDetailDTO, error)
}

type service struct {
	carts    Store
	products ProductLoader
	cfg      config.CartConfig
	now      func() time.Time
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Carts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart store is required")
	}
	if params.Products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product loader is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		carts:    params.Carts,
		products: params.Products,
		cfg:      params.Config,
		now:      now,
	}, nil
}

// AddItem appends the product to the user's cart, creating the cart on first
// use. With merge-on-add enabled an existing row for the product is
// incremented under the stock guard instead of duplicated.
func (s *service) AddItem(ctx context.Context, userID, productID uuid.UUID) (*CartItemDTO, error) {
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

	cart, err := s.carts.UpsertForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upsert cart")
	}

	if s.cfg.MergeOnAdd {
		existing, err := s.carts.FindItemByProduct(ctx, cart.ID, productID)
		switch {
		case err == nil:
			return s.incrementExisting(ctx, cart.ID, existing.ID)
		case errors.Is(err, gorm.ErrRecordNotFound):
			// fall through to insert
		default:
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find cart item")
		}
	}

	item := &models.CartItem{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  1,
	}
	if err := s.carts.CreateItem(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cart item")
	}
	return itemDTO(item), nil
}

// RemoveItem deletes the row scoped to the caller's cart.
func (s *service) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := requirePrincipal(userID); err != nil {
		return err
	}
	cart, err := s.findCart(ctx, userID)
	if err != nil {
		return err
	}

	affected, err := s.carts.DeleteItem(ctx, cart.ID, itemID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Item not found in cart")
	}
	return nil
}

// IncreaseQuantity bumps the row by one, bounded by live product stock.
func (s *service) IncreaseQuantity(ctx context.Context, userID, itemID uuid.UUID) (*CartItemDTO, error) {
	if err := requirePrincipal(userID); err != nil {
		return nil, err
	}
	cart, err := s.findCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.incrementExisting(ctx, cart.ID, itemID)
}

// DecreaseQuantity lowers the row by one; a decrement from quantity 1
// removes the row and returns a nil item.
func (s *service) DecreaseQuantity(ctx context.Context, userID, itemID uuid.UUID) (*CartItemDTO, error) {
	if err := requirePrincipal(userID); err != nil {
		return nil, err
	}
	cart, err := s.findCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	affected, err := s.carts.DecrementAboveOne(ctx, cart.ID, itemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decrement cart item")
	}
	if affected > 0 {
		return s.loadItem(ctx, cart.ID, itemID)
	}

	// Zero rows: the item is either absent or sitting at quantity 1.
	if _, err := s.carts.FindItem(ctx, cart.ID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Item not found in cart")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find cart item")
	}
	if _, err := s.carts.DeleteItem(ctx, cart.ID, itemID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart item")
	}
	return nil, nil
}

// ListItems returns the cart's rows with product detail.
func (s *service) ListItems(ctx context.Context, userID uuid.UUID) ([]CartItemDetailDTO, error) {
	if err := requirePrincipal(userID); err != nil {
		return nil, err
	}
	cart, err := s.findCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.carts.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart items")
	}

	now := s.now()
	dtos := make([]CartItemDetailDTO, len(items))
	for i := range items {
		dtos[i] = itemDetailDTO(&items[i], now)
	}
	return dtos, nil
}

func (s *service) incrementExisting(ctx context.Context, cartID, itemID uuid.UUID) (*CartItemDTO, error) {
	affected, err := s.carts.IncrementUnderStock(ctx, cartID, itemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "increment cart item")
	}
	if affected > 0 {
		return s.loadItem(ctx, cartID, itemID)
	}

	// Zero rows: absent item versus quantity already at stock.
	if _, err := s.carts.FindItem(ctx, cartID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Item not found in cart")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find cart item")
	}
	return nil, pkgerrors.New(pkgerrors.CodeInsufficientStock, "Insufficient stock")
}

func (s *service) loadItem(ctx context.Context, cartID, itemID uuid.UUID) (*CartItemDTO, error) {
	item, err := s.carts.FindItem(ctx, cartID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Item not found in cart")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart item")
	}
	return itemDTO(item), nil
}

func (s *service) findCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Cart not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return cart, nil
}

func requirePrincipal(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeAuthentication, "authentication required")
	}
	return nil
}
