package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velora-commerce/velora-backend/pkg/db/models"
)

// ProductDTO represents the catalog product payload returned to clients.
type ProductDTO struct {
	ID             uuid.UUID             `json:"id"`
	SellerID       uuid.UUID             `json:"seller_id"`
	Name           string                `json:"name"`
	Description    *string               `json:"description,omitempty"`
	Price          decimal.Decimal       `json:"price"`
	Discount       *decimal.Decimal      `json:"discount,omitempty"`
	DiscountFrom   *time.Time            `json:"discount_from,omitempty"`
	DiscountTo     *time.Time            `json:"discount_to,omitempty"`
	EffectivePrice decimal.Decimal       `json:"effective_price"`
	Stock          int                   `json:"stock"`
	IsActive       bool                  `json:"is_active"`
	Attributes     []ProductAttributeDTO `json:"attributes,omitempty"`
	Images         []ProductImageDTO     `json:"images,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ProductAttributeDTO groups the selectable values for one facet.
type ProductAttributeDTO struct {
	ID     uuid.UUID `json:"id"`
	Key    string    `json:"key"`
	Values []string  `json:"values"`
}

// ProductImageDTO captures product image metadata.
type ProductImageDTO struct {
	ID        uuid.UUID `json:"id"`
	Path      string    `json:"path"`
	IsPrimary bool      `json:"is_primary"`
}

// ProductListDTO wraps a page of products plus total count.
type ProductListDTO struct {
	Products []ProductDTO `json:"products"`
	Total    int64        `json:"total"`
	Limit    int          `json:"limit"`
	Offset   int          `json:"offset"`
}

// NewProductDTO builds a DTO from the persisted model, resolving the price
// effective at the supplied instant.
func NewProductDTO(product *models.Product, now time.Time) *ProductDTO {
	if product == nil {
		return nil
	}

	dto := &ProductDTO{
		ID:             product.ID,
		SellerID:       product.SellerID,
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price,
		Discount:       product.Discount,
		DiscountFrom:   product.DiscountFrom,
		DiscountTo:     product.DiscountTo,
		EffectivePrice: EffectivePrice(product, now),
		Stock:          product.Stock,
		IsActive:       product.IsActive,
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
	}

	if len(product.Attributes) > 0 {
		dto.Attributes = make([]ProductAttributeDTO, len(product.Attributes))
		for i, attr := range product.Attributes {
			values := make([]string, len(attr.Values))
			for j, v := range attr.Values {
				values[j] = v.Value
			}
			dto.Attributes[i] = ProductAttributeDTO{
				ID:     attr.ID,
				Key:    attr.Key,
				Values: values,
			}
		}
	}

	if len(product.Images) > 0 {
		dto.Images = make([]ProductImageDTO, len(product.Images))
		for i, img := range product.Images {
			dto.Images[i] = ProductImageDTO{
				ID:        img.ID,
				Path:      img.Path,
				IsPrimary: img.IsPrimary,
			}
		}
	}

	return dto
}

// EffectivePrice returns the discounted price when the discount window covers
// now, otherwise the list price. A window edge with a nil bound is open.
// Discount is a fraction of the list price (0.1 means 10% off), so the
// effective price is price * (1 - discount), floored at zero.
func EffectivePrice(product *models.Product, now time.Time) decimal.Decimal {
	if product == nil {
		return decimal.Zero
	}
	if product.Discount == nil {
		return product.Price
	}
	if product.DiscountFrom != nil && now.Before(*product.DiscountFrom) {
		return product.Price
	}
	if product.DiscountTo != nil && now.After(*product.DiscountTo) {
		return product.Price
	}
	discounted := product.Price.Mul(decimal.NewFromInt(1).Sub(*product.Discount))
	if discounted.IsNegative() {
		return decimal.Zero
	}
	return discounted
}
