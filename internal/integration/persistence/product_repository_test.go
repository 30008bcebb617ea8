package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("persists and reloads a product with its tags", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewProductRepository(db)

		product := entity.NewProduct(userID, "Ceylon Tea Premium", "TEA-001", "Beverages",
			"Loose leaf", decimal.NewFromInt(300), decimal.NewFromInt(500), 20, 5, "pcs")
		product.Tags = []string{"ceylon", "tea", "beverages"}
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := repo.FindByID(ctx, product.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Name != "Ceylon Tea Premium" || stored.SKU != "TEA-001" {
			t.Errorf("unexpected product: %+v", stored)
		}
		if len(stored.Tags) != 3 || stored.Tags[0] != "ceylon" {
			t.Errorf("expected tags to round-trip, got %v", stored.Tags)
		}
		if !stored.SellingPrice.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected selling price 500, got %s", stored.SellingPrice)
		}
	})

	t.Run("reports SKU existence per owner", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewProductRepository(db)

		product := entity.NewProduct(userID, "Tea", "TEA-001", "Beverages", "",
			decimal.NewFromInt(300), decimal.NewFromInt(500), 20, 5, "pcs")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		exists, err := repo.ExistsBySKU(ctx, userID, "TEA-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected the SKU to exist for its owner")
		}

		exists, err = repo.ExistsBySKU(ctx, uuid.New(), "TEA-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected the SKU not to exist for another owner")
		}
	})

	t.Run("lists products at or below the reorder threshold", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewProductRepository(db)

		low := entity.NewProduct(userID, "Tea", "TEA-001", "Beverages", "",
			decimal.NewFromInt(300), decimal.NewFromInt(500), 3, 5, "pcs")
		boundary := entity.NewProduct(userID, "Spice", "SPC-001", "Spices", "",
			decimal.NewFromInt(100), decimal.NewFromInt(200), 5, 5, "pcs")
		healthy := entity.NewProduct(userID, "Rice", "RCE-001", "Staples", "",
			decimal.NewFromInt(150), decimal.NewFromInt(250), 40, 5, "kg")
		for _, p := range []*entity.Product{low, boundary, healthy} {
			if err := repo.Create(ctx, p); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		lowStock, err := repo.FindLowStock(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lowStock) != 2 {
			t.Fatalf("expected 2 low stock products, got %d", len(lowStock))
		}
		if lowStock[0].SKU != "TEA-001" {
			t.Errorf("expected the lowest stock first, got %s", lowStock[0].SKU)
		}
	})

	t.Run("adjusts stock and clamps subtraction at zero", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewProductRepository(db)

		product := entity.NewProduct(userID, "Tea", "TEA-001", "Beverages", "",
			decimal.NewFromInt(300), decimal.NewFromInt(500), 4, 5, "pcs")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		adjusted, err := repo.AdjustStock(ctx, product.ID, userID, 10, adapter.StockAdjustmentAdd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if adjusted.CurrentStock != 14 {
			t.Errorf("expected stock 14, got %d", adjusted.CurrentStock)
		}

		adjusted, err = repo.AdjustStock(ctx, product.ID, userID, 20, adapter.StockAdjustmentSubtract)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if adjusted.CurrentStock != 0 {
			t.Errorf("expected stock clamped at 0, got %d", adjusted.CurrentStock)
		}
	})

	t.Run("soft deletes hide the product from lookups", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewProductRepository(db)

		product := entity.NewProduct(userID, "Tea", "TEA-001", "Beverages", "",
			decimal.NewFromInt(300), decimal.NewFromInt(500), 20, 5, "pcs")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.Delete(ctx, product.ID, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := repo.FindByID(ctx, product.ID, userID)
		var prodErr *domainerror.ProductError
		if !errors.As(err, &prodErr) || prodErr.Code != domainerror.ErrCodeProductNotFound {
			t.Errorf("expected product not found after delete, got %v", err)
		}

		// Deleting twice reports not found
		if err := repo.Delete(ctx, product.ID, userID); err == nil {
			t.Error("expected an error deleting a deleted product")
		}
	})
}
