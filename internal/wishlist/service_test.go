package wishlist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-backend/pkg/db/models"
	pkgerrors "github.com/velora-commerce/velora-backend/pkg/errors"
)

type stubWishlistStore struct {
	wishlists map[uuid.UUID]*models.Wishlist // keyed by user id
	items     map[uuid.UUID]*models.WishlistItem

	calls int
}

func newStubWishlistStore() *stubWishlistStore {
	return &stubWishlistStore{
		wishlists: make(map[uuid.UUID]*models.Wishlist),
		items:     make(map[uuid.UUID]*models.WishlistItem),
	}
}

func (s *stubWishlistStore) FindByUser(ctx context.Context, userID uuid.UUID) (*models.Wishlist, error) {
	s.calls++
	if wl, ok := s.wishlists[userID]; ok {
		return wl, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubWishlistStore) UpsertForUser(ctx context.Context, userID uuid.UUID) (*models.Wishlist, error) {
	s.calls++
	if wl, ok := s.wishlists[userID]; ok {
		return wl, nil
	}
	wl := &models.Wishlist{ID: uuid.New(), UserID: userID}
	s.wishlists[userID] = wl
	return wl, nil
}

func (s *stubWishlistStore) FindItemByProduct(ctx context.Context, wishlistID, productID uuid.UUID) (*models.WishlistItem, error) {
	s.calls++
	for _, item := range s.items {
		if item.WishlistID == wishlistID && item.ProductID == productID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubWishlistStore) CreateItem(ctx context.Context, item *models.WishlistItem) error {
	s.calls++
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	copied := *item
	s.items[item.ID] = &copied
	return nil
}

func (s *stubWishlistStore) DeleteItem(ctx context.Context, wishlistID, itemID uuid.UUID) (int64, error) {
	s.calls++
	item, ok := s.items[itemID]
	if !ok || item.WishlistID != wishlistID {
		return 0, nil
	}
	delete(s.items, itemID)
	return 1, nil
}

func (s *stubWishlistStore) ListItems(ctx context.Context, wishlistID uuid.UUID) ([]models.WishlistItem, error) {
	s.calls++
	var out []models.WishlistItem
	for _, item := range s.items {
		if item.WishlistID == wishlistID {
			out = append(out, *item)
		}
	}
	return out, nil
}

type stubProductLoader struct {
	products map[uuid.UUID]*models.Product
	calls    int
}

func (s *stubProductLoader) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	s.calls++
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type wishlistFixture struct {
	svc     Service
	store   *stubWishlistStore
	loader  *stubProductLoader
	userID  uuid.UUID
	product *models.Product
}

func newWishlistFixture(t *testing.T) *wishlistFixture {
	t.Helper()

	store := newStubWishlistStore()
	productID := uuid.New()
	product := &models.Product{ID: productID, Name: "Lamp"}
	loader := &stubProductLoader{products: map[uuid.UUID]*models.Product{productID: product}}

	svc, err := NewService(ServiceParams{Wishlists: store, Products: loader})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return &wishlistFixture{svc: svc, store: store, loader: loader, userID: uuid.New(), product: product}
}

func assertErrorCode(t *testing.T, err error, code pkgerrors.Code) *pkgerrors.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s", code)
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected code %s, got %v", code, err)
	}
	return typed
}

func TestAuthGuardRunsBeforeStorage(t *testing.T) {
	t.Parallel()

	fx := newWishlistFixture(t)
	ctx := context.Background()

	if _, err := fx.svc.AddItem(ctx, uuid.Nil, fx.product.ID); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeAuthentication {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if err := fx.svc.RemoveItem(ctx, uuid.Nil, uuid.New()); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeAuthentication {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if _, err := fx.svc.ListItems(ctx, uuid.Nil); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeAuthentication {
		t.Fatalf("expected authentication error, got %v", err)
	}

	if fx.store.calls != 0 || fx.loader.calls != 0 {
		t.Fatalf("storage reached despite failed auth (store=%d loader=%d)", fx.store.calls, fx.loader.calls)
	}
}

func TestAddItemCreatesWishlistLazily(t *testing.T) {
	t.Parallel()

	fx := newWishlistFixture(t)

	dto, err := fx.svc.AddItem(context.Background(), fx.userID, fx.product.ID)
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if dto.AlreadyPresent {
		t.Fatal("fresh add must not report an existing item")
	}
	if len(fx.store.wishlists) != 1 {
		t.Fatal("expected wishlist to be lazily created")
	}
}

func TestAddItemDeduplicates(t *testing.T) {
	t.Parallel()

	fx := newWishlistFixture(t)
	ctx := context.Background()

	first, err := fx.svc.AddItem(ctx, fx.userID, fx.product.ID)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	second, err := fx.svc.AddItem(ctx, fx.userID, fx.product.ID)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if !second.AlreadyPresent {
		t.Fatal("second add must report the existing item")
	}
	if second.ID != first.ID {
		t.Fatal("second add must return the original item id")
	}
	if len(fx.store.items) != 1 {
		t.Fatalf("expected a single row, got %d", len(fx.store.items))
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	t.Parallel()

	fx := newWishlistFixture(t)

	_, err := fx.svc.AddItem(context.Background(), fx.userID, uuid.New())
	typed := assertErrorCode(t, err, pkgerrors.CodeNotFound)
	if typed.Message() != "Product not found" {
		t.Fatalf("unexpected message: %q", typed.Message())
	}
	if len(fx.store.wishlists) != 0 {
		t.Fatal("wishlist must not be created when the product is unknown")
	}
}

func TestRemoveItemScopedToOwner(t *testing.T) {
	t.Parallel()

	fx := newWishlistFixture(t)
	ctx := context.Background()

	added, err := fx.svc.AddItem(ctx, fx.userID, fx.product.ID)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// A second user holding their own wishlist cannot remove the first user's item.
	other := uuid.New()
	if _, err := fx.svc.AddItem(ctx, other, fx.product.ID); err != nil {
		t.Fatalf("other add: %v", err)
	}
	err = fx.svc.RemoveItem(ctx, other, added.ID)
	typed := assertErrorCode(t, err, pkgerrors.CodeNotFound)
	if typed.Message() != "Item not found in wishlist" {
		t.Fatalf("unexpected message: %q", typed.Message())
	}

	if err := fx.svc.RemoveItem(ctx, fx.userID, added.ID); err != nil {
		t.Fatalf("owner remove: %v", err)
	}
}

func TestRemoveItemWithoutWishlist(t *testing.T) {
	t.Parallel()

	fx := newWishlistFixture(t)

	err := fx.svc.RemoveItem(context.Background(), fx.userID, uuid.New())
	typed := assertErrorCode(t, err, pkgerrors.CodeNotFound)
	if typed.Message() != "Wishlist not found" {
		t.Fatalf("unexpected message: %q", typed.Message())
	}
}

func TestListItemsWithoutWishlist(t *testing.T) {
	t.Parallel()

	fx := newWishlistFixture(t)

	_, err := fx.svc.ListItems(context.Background(), fx.userID)
	typed := assertErrorCode(t, err, pkgerrors.CodeNotFound)
	if typed.Message() != "Wishlist not found" {
		t.Fatalf("unexpected message: %q", typed.Message())
	}
	if len(fx.store.wishlists) != 0 {
		t.Fatal("list must not create a wishlist")
	}
}

func TestListItemsEmptyWishlistIsSuccess(t *testing.T) {
	t.Parallel()

	fx := newWishlistFixture(t)
	ctx := context.Background()

	added, err := fx.svc.AddItem(ctx, fx.userID, fx.product.ID)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := fx.svc.RemoveItem(ctx, fx.userID, added.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	items, err := fx.svc.ListItems(ctx, fx.userID)
	if err != nil {
		t.Fatalf("list on empty wishlist: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(items))
	}
}
