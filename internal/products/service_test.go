package products

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-backend/pkg/db/models"
	pkgerrors "github.com/velora-commerce/velora-backend/pkg/errors"
)

type stubStore struct {
	product *models.Product
	list    []models.Product
	findErr error
	listErr error
}

func (s *stubStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.product, nil
}

func (s *stubStore) List(ctx context.Context, params ListParams) ([]models.Product, int64, error) {
	if s.listErr != nil {
		return nil, 0, s.listErr
	}
	return s.list, int64(len(s.list)), nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T, store Store) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Store: store, Now: fixedNow})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestGetProductNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubStore{findErr: gorm.ErrRecordNotFound})

	_, err := svc.GetProduct(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error for missing product")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error code: %v", err)
	}
	if typed.Message() != "Product not found" {
		t.Fatalf("unexpected message: %q", typed.Message())
	}
}

func TestGetProductRequiresID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubStore{})

	_, err := svc.GetProduct(context.Background(), uuid.Nil)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetProductAppliesActiveDiscount(t *testing.T) {
	t.Parallel()

	from := fixedNow().Add(-time.Hour)
	to := fixedNow().Add(time.Hour)
	discount := decimal.RequireFromString("0.25")
	product := &models.Product{
		ID:           uuid.New(),
		Name:         "Desk Lamp",
		Price:        decimal.NewFromInt(40),
		Discount:     &discount,
		DiscountFrom: &from,
		DiscountTo:   &to,
		Stock:        3,
	}
	svc := newTestService(t, &stubStore{product: product})

	dto, err := svc.GetProduct(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dto.EffectivePrice.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("expected effective price 30, got %s", dto.EffectivePrice)
	}
}

func TestEffectivePriceFractionalDiscount(t *testing.T) {
	t.Parallel()

	discount := decimal.RequireFromString("0.1")
	product := &models.Product{
		Price:    decimal.RequireFromString("699.99"),
		Discount: &discount,
	}

	got := EffectivePrice(product, fixedNow())
	if want := decimal.RequireFromString("629.991"); !got.Equal(want) {
		t.Fatalf("expected effective price %s, got %s", want, got)
	}
}

func TestEffectivePriceFloorsAtZero(t *testing.T) {
	t.Parallel()

	discount := decimal.RequireFromString("1.5")
	product := &models.Product{
		Price:    decimal.NewFromInt(40),
		Discount: &discount,
	}

	if got := EffectivePrice(product, fixedNow()); !got.Equal(decimal.Zero) {
		t.Fatalf("expected zero, got %s", got)
	}
}

func TestGetProductIgnoresExpiredDiscount(t *testing.T) {
	t.Parallel()

	from := fixedNow().Add(-48 * time.Hour)
	to := fixedNow().Add(-24 * time.Hour)
	discount := decimal.RequireFromString("0.25")
	product := &models.Product{
		ID:           uuid.New(),
		Name:         "Desk Lamp",
		Price:        decimal.NewFromInt(40),
		Discount:     &discount,
		DiscountFrom: &from,
		DiscountTo:   &to,
	}
	svc := newTestService(t, &stubStore{product: product})

	dto, err := svc.GetProduct(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dto.EffectivePrice.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected list price 40, got %s", dto.EffectivePrice)
	}
}

func TestListProducts(t *testing.T) {
	t.Parallel()

	list := []models.Product{
		{ID: uuid.New(), Name: "A", Price: decimal.NewFromInt(10)},
		{ID: uuid.New(), Name: "B", Price: decimal.NewFromInt(20)},
	}
	svc := newTestService(t, &stubStore{list: list})

	page, err := svc.ListProducts(context.Background(), ListParams{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Products) != 2 || page.Total != 2 {
		t.Fatalf("unexpected page %+v", page)
	}
}
