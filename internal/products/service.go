package products

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-backend/pkg/db/models"
	pkgerrors "github.com/velora-commerce/velora-backend/pkg/errors"
)

// Store defines the persistence surface required by the catalog service.
type Store interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, params ListParams) ([]models.Product, int64, error)
}

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Store Store
	Now   func() time.Time
}

// Service exposes read access to the catalog.
type Service interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	ListProducts(ctx context.Context, params ListParams) (ProductListDTO, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product store is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{store: params.Store, now: now}, nil
}

// GetProduct returns the catalog detail for one product.
func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return NewProductDTO(product, s.now()), nil
}

// ListProducts returns one page of the browsable catalog.
func (s *service) ListProducts(ctx context.Context, params ListParams) (ProductListDTO, error) {
	records, total, err := s.store.List(ctx, params)
	if err != nil {
		return ProductListDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	now := s.now()
	dtos := make([]ProductDTO, len(records))
	for i := range records {
		dtos[i] = *NewProductDTO(&records[i], now)
	}

	return ProductListDTO{
		Products: dtos,
		Total:    total,
		Limit:    params.Limit,
		Offset:   params.Offset,
	}, nil
}
