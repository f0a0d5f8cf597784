package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents the canonical catalog listing.
type Product struct {
	ID           uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SellerID     uuid.UUID          `gorm:"column:seller_id;type:uuid;not null"`
	Name         string             `gorm:"column:name;not null"`
	Description  *string            `gorm:"column:description"`
	Price        decimal.Decimal    `gorm:"column:price;type:numeric(12,2);not null"`
	// Discount is a fraction of the price, e.g. 0.1 for 10% off.
	Discount     *decimal.Decimal   `gorm:"column:discount;type:numeric(5,4)"`
	DiscountFrom *time.Time         `gorm:"column:discount_from"`
	DiscountTo   *time.Time         `gorm:"column:discount_to"`
	Stock        int                `gorm:"column:stock;not null;default:0"`
	IsActive     bool               `gorm:"column:is_active;not null;default:true"`
	Attributes   []ProductAttribute `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images       []ProductImage     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

// ProductAttribute groups the selectable values for one product facet.
type ProductAttribute struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID        `gorm:"column:product_id;type:uuid;not null"`
	Key       string           `gorm:"column:key;not null"`
	Values    []AttributeValue `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// AttributeValue is one selectable option under a ProductAttribute.
type AttributeValue struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	AttributeID uuid.UUID `gorm:"column:attribute_id;type:uuid;not null"`
	Value       string    `gorm:"column:value;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// ProductImage stores a media path linked to a product.
type ProductImage struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Path      string    `gorm:"column:path;not null"`
	IsPrimary bool      `gorm:"column:is_primary;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
