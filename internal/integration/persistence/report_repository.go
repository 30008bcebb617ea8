// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
)

// reportRepository implements the adapter.ReportRepository interface with raw
// aggregation queries. Every figure is recomputed per call; nothing is cached.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// RevenueTotal sums paid invoice totals in the window.
func (r *reportRepository) RevenueTotal(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("invoices").
		Select("COALESCE(SUM(total_amount), 0) as total").
		Where("user_id = ? AND status = ? AND paid_date >= ? AND paid_date <= ?",
			userID, string(entity.InvoiceStatusPaid), start, end).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return result.Total, nil
}

// ExpenseTotal sums expenses in the window.
func (r *reportRepository) ExpenseTotal(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("expenses").
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Where("deleted_at IS NULL").
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return result.Total, nil
}

// ExpensesByCategory groups expense totals by category, largest first.
func (r *reportRepository) ExpensesByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]adapter.CategoryAmount, error) {
	var results []struct {
		Category string          `gorm:"column:category"`
		Amount   decimal.Decimal `gorm:"column:amount"`
	}

	err := r.db.WithContext(ctx).
		Table("expenses").
		Select("category, SUM(amount) as amount").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Where("deleted_at IS NULL").
		Group("category").
		Order("amount DESC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses by category: %w", err)
	}

	categories := make([]adapter.CategoryAmount, 0, len(results))
	for _, row := range results {
		categories = append(categories, adapter.CategoryAmount{
			Category: row.Category,
			Amount:   row.Amount,
		})
	}
	return categories, nil
}

// MonthlyRevenue buckets paid invoice totals by calendar month.
func (r *reportRepository) MonthlyRevenue(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]adapter.MonthlyAmount, error) {
	var results []struct {
		PeriodStart time.Time       `gorm:"column:period_start"`
		Amount      decimal.Decimal `gorm:"column:amount"`
	}

	query := `
		SELECT
			date_trunc('month', paid_date)::date as period_start,
			SUM(total_amount) as amount
		FROM invoices
		WHERE user_id = ? AND status = ? AND paid_date >= ? AND paid_date <= ?
		GROUP BY date_trunc('month', paid_date)
		ORDER BY period_start ASC`

	err := r.db.WithContext(ctx).
		Raw(query, userID, string(entity.InvoiceStatusPaid), start, end).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to bucket revenue by month: %w", err)
	}

	return toMonthlyAmounts(results), nil
}

// MonthlyExpenses buckets expense totals by calendar month.
func (r *reportRepository) MonthlyExpenses(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]adapter.MonthlyAmount, error) {
	var results []struct {
		PeriodStart time.Time       `gorm:"column:period_start"`
		Amount      decimal.Decimal `gorm:"column:amount"`
	}

	query := `
		SELECT
			date_trunc('month', date)::date as period_start,
			SUM(amount) as amount
		FROM expenses
		WHERE user_id = ? AND date >= ? AND date <= ? AND deleted_at IS NULL
		GROUP BY date_trunc('month', date)
		ORDER BY period_start ASC`

	err := r.db.WithContext(ctx).
		Raw(query, userID, start, end).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to bucket expenses by month: %w", err)
	}

	return toMonthlyAmounts(results), nil
}

// TopProducts returns the best-selling products by quantity in the window.
// A limit of 0 means no limit.
func (r *reportRepository) TopProducts(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]adapter.ProductSales, error) {
	var results []struct {
		ProductID    uuid.UUID       `gorm:"column:product_id"`
		ProductName  string          `gorm:"column:product_name"`
		QuantitySold int             `gorm:"column:quantity_sold"`
		Revenue      decimal.Decimal `gorm:"column:revenue"`
	}

	query := r.db.WithContext(ctx).
		Table("invoice_items").
		Select("invoice_items.product_id, invoice_items.product_name, SUM(invoice_items.quantity) as quantity_sold, SUM(invoice_items.line_total) as revenue").
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Where("invoices.user_id = ? AND invoices.status != ? AND invoices.created_at >= ? AND invoices.created_at <= ?",
			userID, string(entity.InvoiceStatusCancelled), start, end).
		Group("invoice_items.product_id, invoice_items.product_name").
		Order("quantity_sold DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}

	products := make([]adapter.ProductSales, 0, len(results))
	for _, row := range results {
		products = append(products, adapter.ProductSales{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			QuantitySold: row.QuantitySold,
			Revenue:      row.Revenue,
		})
	}
	return products, nil
}

// TopCustomers returns the highest-revenue customers in the window.
func (r *reportRepository) TopCustomers(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]adapter.CustomerSales, error) {
	var results []struct {
		CustomerID   uuid.UUID       `gorm:"column:customer_id"`
		CustomerName string          `gorm:"column:customer_name"`
		InvoiceCount int             `gorm:"column:invoice_count"`
		Revenue      decimal.Decimal `gorm:"column:revenue"`
	}

	query := r.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.customer_id, customers.name as customer_name, COUNT(*) as invoice_count, SUM(invoices.total_amount) as revenue").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Where("invoices.user_id = ? AND invoices.status != ? AND invoices.created_at >= ? AND invoices.created_at <= ?",
			userID, string(entity.InvoiceStatusCancelled), start, end).
		Group("invoices.customer_id, customers.name").
		Order("revenue DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to rank customers: %w", err)
	}

	customers := make([]adapter.CustomerSales, 0, len(results))
	for _, row := range results {
		customers = append(customers, adapter.CustomerSales{
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			InvoiceCount: row.InvoiceCount,
			Revenue:      row.Revenue,
		})
	}
	return customers, nil
}

// OutstandingReceivables sums totals of sent and overdue invoices.
func (r *reportRepository) OutstandingReceivables(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("invoices").
		Select("COALESCE(SUM(total_amount), 0) as total").
		Where("user_id = ? AND status IN ?", userID,
			[]string{string(entity.InvoiceStatusSent), string(entity.InvoiceStatusOverdue)}).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum receivables: %w", err)
	}
	return result.Total, nil
}

// InvoiceStatusCounts counts invoices per lifecycle state in the window.
func (r *reportRepository) InvoiceStatusCounts(ctx context.Context, userID uuid.UUID, start, end time.Time) (*adapter.InvoiceCounts, error) {
	var results []struct {
		Status string `gorm:"column:status"`
		Count  int    `gorm:"column:count"`
	}

	err := r.db.WithContext(ctx).
		Table("invoices").
		Select("status, COUNT(*) as count").
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, start, end).
		Group("status").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count invoices: %w", err)
	}

	counts := &adapter.InvoiceCounts{}
	for _, row := range results {
		counts.Total += row.Count
		switch entity.InvoiceStatus(row.Status) {
		case entity.InvoiceStatusDraft:
			counts.Draft = row.Count
		case entity.InvoiceStatusSent:
			counts.Sent = row.Count
		case entity.InvoiceStatusPaid:
			counts.Paid = row.Count
		case entity.InvoiceStatusOverdue:
			counts.Overdue = row.Count
		case entity.InvoiceStatusCancelled:
			counts.Cancelled = row.Count
		}
	}
	return counts, nil
}

// InventoryValuation sums currentStock times purchasePrice over the catalog.
// Negative stock rows contribute zero rather than lowering the valuation.
func (r *reportRepository) InventoryValuation(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("products").
		Select("COALESCE(SUM(CASE WHEN current_stock > 0 THEN current_stock * purchase_price ELSE 0 END), 0) as total").
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to value inventory: %w", err)
	}
	return result.Total, nil
}

func toMonthlyAmounts(rows []struct {
	PeriodStart time.Time       `gorm:"column:period_start"`
	Amount      decimal.Decimal `gorm:"column:amount"`
}) []adapter.MonthlyAmount {
	months := make([]adapter.MonthlyAmount, 0, len(rows))
	for _, row := range rows {
		months = append(months, adapter.MonthlyAmount{
			PeriodStart: row.PeriodStart,
			Amount:      row.Amount,
		})
	}
	return months
}
