package products

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-backend/pkg/db/models"
)

// ListParams capture the supported knobs for the browse endpoint.
type ListParams struct {
	Limit      int
	Offset     int
	OnlyActive bool
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Repository encapsulates catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a products repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads a product with its attributes and images.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Attributes.Values").
		Preload("Images").
		First(&product, "id = ?", id).
		Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns a page of products plus the total row count.
func (r *Repository) List(ctx context.Context, params ListParams) ([]models.Product, int64, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	query := r.db.WithContext(ctx).Model(&models.Product{})
	if params.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.Product
	err := query.
		Preload("Attributes.Values").
		Preload("Images").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).
		Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
