package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
)

// InventoryReportInput represents the input for the inventory report.
type InventoryReportInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// InventoryReportOutput is the stock valuation and movement summary.
type InventoryReportOutput struct {
	StartDate      time.Time
	EndDate        time.Time
	StockValuation decimal.Decimal
	LowStockItems  []*entity.Product
	QuantitySold   []adapter.ProductSales
}

// InventoryReportUseCase computes stock valuation and sales movement.
type InventoryReportUseCase struct {
	reportRepo  adapter.ReportRepository
	productRepo adapter.ProductRepository
}

// NewInventoryReportUseCase creates a new InventoryReportUseCase instance.
func NewInventoryReportUseCase(reportRepo adapter.ReportRepository, productRepo adapter.ProductRepository) *InventoryReportUseCase {
	return &InventoryReportUseCase{
		reportRepo:  reportRepo,
		productRepo: productRepo,
	}
}

// Execute computes the inventory report. Valuation uses purchase price, not
// selling price.
func (uc *InventoryReportUseCase) Execute(ctx context.Context, input InventoryReportInput) (*InventoryReportOutput, error) {
	start, end, err := resolveRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	valuation, err := uc.reportRepo.InventoryValuation(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to value inventory: %w", err)
	}
	lowStock, err := uc.productRepo.FindLowStock(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	sold, err := uc.reportRepo.TopProducts(ctx, input.UserID, start, end, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to compute quantities sold: %w", err)
	}

	return &InventoryReportOutput{
		StartDate:      start,
		EndDate:        end,
		StockValuation: valuation,
		LowStockItems:  lowStock,
		QuantitySold:   sold,
	}, nil
}
