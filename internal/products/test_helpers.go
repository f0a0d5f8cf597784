package products

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-backend/pkg/db/models"
	"github.com/velora-commerce/velora-backend/pkg/enums"
)

func mustCreateTestUser(t *testing.T, tx *gorm.DB, userType enums.UserType) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New(),
		Email:        fmt.Sprintf("velora_test_%s@example.com", uuid.NewString()),
		PasswordHash: "hash",
		Name:         "Repo Tester",
		UserType:     userType,
		IsActive:     true,
	}
	if err := tx.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func mustCreateTestProduct(t *testing.T, tx *gorm.DB, sellerID uuid.UUID, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:       uuid.New(),
		SellerID: sellerID,
		Name:     fmt.Sprintf("Test Product %s", uuid.NewString()[:8]),
		Price:    decimal.NewFromInt(25),
		Stock:    stock,
		IsActive: true,
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}
