// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
	"github.com/lankagrow/backend/internal/integration/persistence/model"
)

// invoiceRepository implements the adapter.InvoiceRepository interface. Every
// multi-document workflow runs inside db.Transaction so the invoice, the
// stock movements and the customer aggregates commit or roll back together.
type invoiceRepository struct {
	db           *gorm.DB
	numberPrefix string
}

// NewInvoiceRepository creates a new invoice repository instance. numberPrefix
// is the human-readable invoice number prefix, e.g. "INV".
func NewInvoiceRepository(db *gorm.DB, numberPrefix string) adapter.InvoiceRepository {
	return &invoiceRepository{
		db:           db,
		numberPrefix: numberPrefix,
	}
}

// Create persists a draft invoice with its number, stock decrements and
// customer aggregate increments in one transaction.
func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := r.nextInvoiceNumber(tx, invoice.UserID)
		if err != nil {
			return fmt.Errorf("failed to assign invoice number: %w", err)
		}
		invoice.InvoiceNumber = number

		invoiceModel := model.InvoiceFromEntity(invoice)
		if err := tx.Create(invoiceModel).Error; err != nil {
			return err
		}

		if err := applyStockDecrements(tx, invoice.UserID, invoice.Items); err != nil {
			return err
		}

		now := time.Now().UTC()
		return adjustCustomerAggregates(tx, invoice.CustomerID, invoice.UserID,
			invoice.TotalAmount, invoice.TotalAmount, &now)
	})
}

// Update replaces the stored invoice, reversing the previously persisted
// stock movements and re-applying the new ones, and moves the customer
// aggregates by the delta. A customer change is handled on both sides.
func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stored model.InvoiceModel
		result := tx.Preload("Items").
			Where("id = ? AND user_id = ?", invoice.ID, invoice.UserID).
			First(&stored)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return invoiceNotFound()
			}
			return result.Error
		}
		previous := stored.ToEntity()

		if err := applyStockReversals(tx, invoice.UserID, previous.Items); err != nil {
			return err
		}
		if err := applyStockDecrements(tx, invoice.UserID, invoice.Items); err != nil {
			return err
		}

		if err := tx.Where("invoice_id = ?", invoice.ID).
			Delete(&model.InvoiceItemModel{}).Error; err != nil {
			return err
		}

		invoiceModel := model.InvoiceFromEntity(invoice)
		if err := tx.Omit("Items").Save(invoiceModel).Error; err != nil {
			return err
		}
		if len(invoiceModel.Items) > 0 {
			if err := tx.Create(&invoiceModel.Items).Error; err != nil {
				return err
			}
		}

		if previous.CustomerID != invoice.CustomerID {
			negPrev := previous.TotalAmount.Neg()
			if err := adjustCustomerAggregates(tx, previous.CustomerID, invoice.UserID,
				negPrev, negPrev, nil); err != nil {
				return err
			}
			now := time.Now().UTC()
			return adjustCustomerAggregates(tx, invoice.CustomerID, invoice.UserID,
				invoice.TotalAmount, invoice.TotalAmount, &now)
		}

		delta := invoice.TotalAmount.Sub(previous.TotalAmount)
		return adjustCustomerAggregates(tx, invoice.CustomerID, invoice.UserID, delta, delta, nil)
	})
}

// Delete removes an invoice with its items. Stock and customer aggregates are
// reversed unless the invoice was already cancelled, in which case the
// reversal happened at cancel time.
func (r *invoiceRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stored model.InvoiceModel
		result := tx.Preload("Items").
			Where("id = ? AND user_id = ?", id, userID).
			First(&stored)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return invoiceNotFound()
			}
			return result.Error
		}
		invoice := stored.ToEntity()

		if invoice.Status != entity.InvoiceStatusCancelled {
			if err := applyStockReversals(tx, userID, invoice.Items); err != nil {
				return err
			}
			neg := invoice.TotalAmount.Neg()
			if err := adjustCustomerAggregates(tx, invoice.CustomerID, userID, neg, neg, nil); err != nil {
				return err
			}
		}

		if err := tx.Where("invoice_id = ?", id).
			Delete(&model.InvoiceItemModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.InvoiceModel{}, "id = ?", id).Error
	})
}

// MarkPaid persists the paid transition and lowers the customer's outstanding
// balance by the invoice total, in one transaction.
func (r *invoiceRepository) MarkPaid(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateLifecycle(tx, invoice); err != nil {
			return err
		}
		return adjustCustomerAggregates(tx, invoice.CustomerID, invoice.UserID,
			decimal.Zero, invoice.TotalAmount.Neg(), nil)
	})
}

// Cancel persists the cancelled transition, restores stock and reverses the
// customer aggregates, in one transaction.
func (r *invoiceRepository) Cancel(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateLifecycle(tx, invoice); err != nil {
			return err
		}
		if err := applyStockReversals(tx, invoice.UserID, invoice.Items); err != nil {
			return err
		}
		neg := invoice.TotalAmount.Neg()
		return adjustCustomerAggregates(tx, invoice.CustomerID, invoice.UserID, neg, neg, nil)
	})
}

// UpdateStatus persists only the lifecycle fields.
func (r *invoiceRepository) UpdateStatus(ctx context.Context, invoice *entity.Invoice) error {
	return updateLifecycle(r.db.WithContext(ctx), invoice)
}

// FindByID retrieves an invoice with its items, scoped to the owner.
func (r *invoiceRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Invoice, error) {
	var invoiceModel model.InvoiceModel
	result := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&invoiceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, invoiceNotFound()
		}
		return nil, result.Error
	}
	return invoiceModel.ToEntity(), nil
}

// FindByIDWithCustomer retrieves an invoice with its customer resolved.
func (r *invoiceRepository) FindByIDWithCustomer(ctx context.Context, id, userID uuid.UUID) (*entity.InvoiceWithCustomer, error) {
	var invoiceModel model.InvoiceModel
	result := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		Where("invoices.id = ? AND invoices.user_id = ?", id, userID).
		First(&invoiceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, invoiceNotFound()
		}
		return nil, result.Error
	}
	return invoiceModel.ToEntityWithCustomer(), nil
}

// FindByFilter retrieves invoices based on filter criteria with pagination.
func (r *invoiceRepository) FindByFilter(ctx context.Context, filter adapter.InvoiceFilter, pagination adapter.Pagination) (*adapter.InvoiceListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.InvoiceModel{}).Where("user_id = ?", filter.UserID)

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var invoiceModels []model.InvoiceModel
	offset := (pagination.Page - 1) * pagination.Limit
	err := query.
		Preload("Items").
		Preload("Customer").
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(offset).
		Find(&invoiceModels).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]*entity.InvoiceWithCustomer, 0, len(invoiceModels))
	for i := range invoiceModels {
		invoices = append(invoices, invoiceModels[i].ToEntityWithCustomer())
	}

	return &adapter.InvoiceListResult{
		Invoices:   invoices,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(pagination.Limit))),
	}, nil
}

// FindOverdue retrieves sent or overdue invoices with a due date strictly
// before asOf, customers resolved, oldest debt first.
func (r *invoiceRepository) FindOverdue(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]*entity.InvoiceWithCustomer, error) {
	var invoiceModels []model.InvoiceModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		Where("user_id = ? AND status IN ? AND due_date < ?",
			userID, []string{string(entity.InvoiceStatusSent), string(entity.InvoiceStatusOverdue)}, asOf).
		Order("due_date ASC").
		Find(&invoiceModels).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]*entity.InvoiceWithCustomer, 0, len(invoiceModels))
	for i := range invoiceModels {
		invoices = append(invoices, invoiceModels[i].ToEntityWithCustomer())
	}
	return invoices, nil
}

// ExistsByProduct checks whether any invoice line references the product.
func (r *invoiceRepository) ExistsByProduct(ctx context.Context, productID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.InvoiceItemModel{}).
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Where("invoice_items.product_id = ? AND invoices.user_id = ?", productID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// ExistsByCustomer checks whether any invoice references the customer.
func (r *invoiceRepository) ExistsByCustomer(ctx context.Context, customerID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("customer_id = ? AND user_id = ?", customerID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// nextInvoiceNumber increments the owner's sequence row and formats the
// number, e.g. INV-000042. The row is created on first use.
func (r *invoiceRepository) nextInvoiceNumber(tx *gorm.DB, userID uuid.UUID) (string, error) {
	var seq model.InvoiceSequenceModel
	if err := tx.Where(model.InvoiceSequenceModel{UserID: userID}).
		FirstOrCreate(&seq).Error; err != nil {
		return "", err
	}

	seq.LastSeq++
	if err := tx.Model(&model.InvoiceSequenceModel{}).
		Where("user_id = ?", userID).
		Update("last_seq", seq.LastSeq).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%06d", r.numberPrefix, seq.LastSeq), nil
}

// applyStockDecrements subtracts each line quantity from its product's stock.
// A line whose product does not resolve under the owner fails the transaction.
// Invoice-driven decrements may take stock negative; only manual adjustments
// clamp.
func applyStockDecrements(tx *gorm.DB, userID uuid.UUID, items []*entity.InvoiceItem) error {
	for _, item := range items {
		result := tx.Model(&model.ProductModel{}).
			Where("id = ? AND user_id = ?", item.ProductID, userID).
			Updates(map[string]any{
				"current_stock": gorm.Expr("current_stock - ?", item.Quantity),
				"updated_at":    time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.NewInvoiceError(
				domainerror.ErrCodeInvoiceProductNotFound,
				fmt.Sprintf("product %s not found", item.ProductID),
				domainerror.ErrInvoiceProductNotFound,
			)
		}
	}
	return nil
}

// applyStockReversals restores each line quantity to its product's stock. A
// product deleted since the invoice was written is skipped; there is nothing
// left to restore to.
func applyStockReversals(tx *gorm.DB, userID uuid.UUID, items []*entity.InvoiceItem) error {
	for _, item := range items {
		result := tx.Model(&model.ProductModel{}).
			Where("id = ? AND user_id = ?", item.ProductID, userID).
			Updates(map[string]any{
				"current_stock": gorm.Expr("current_stock + ?", item.Quantity),
				"updated_at":    time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
	}
	return nil
}

// adjustCustomerAggregates moves the customer's lifetime value and
// outstanding balance by the given deltas and optionally stamps the last
// purchase time.
func adjustCustomerAggregates(tx *gorm.DB, customerID, userID uuid.UUID, lifetimeDelta, outstandingDelta decimal.Decimal, lastPurchase *time.Time) error {
	updates := map[string]any{
		"updated_at": time.Now().UTC(),
	}
	if !lifetimeDelta.IsZero() {
		updates["lifetime_value"] = gorm.Expr("lifetime_value + ?", lifetimeDelta)
	}
	if !outstandingDelta.IsZero() {
		updates["outstanding_balance"] = gorm.Expr("outstanding_balance + ?", outstandingDelta)
	}
	if lastPurchase != nil {
		updates["last_purchase"] = *lastPurchase
	}

	result := tx.Model(&model.CustomerModel{}).
		Where("id = ? AND user_id = ?", customerID, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceCustomerNotFound,
			"invoice customer not found",
			domainerror.ErrInvoiceCustomerNotFound,
		)
	}
	return nil
}

// updateLifecycle persists only the status, paid date and updated-at fields.
func updateLifecycle(tx *gorm.DB, invoice *entity.Invoice) error {
	result := tx.Model(&model.InvoiceModel{}).
		Where("id = ? AND user_id = ?", invoice.ID, invoice.UserID).
		Updates(map[string]any{
			"status":     string(invoice.Status),
			"paid_date":  invoice.PaidDate,
			"updated_at": invoice.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return invoiceNotFound()
	}
	return nil
}

func invoiceNotFound() error {
	return domainerror.NewInvoiceError(
		domainerror.ErrCodeInvoiceNotFound,
		"invoice not found",
		domainerror.ErrInvoiceNotFound,
	)
}
