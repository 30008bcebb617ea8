package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/config"
	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

// UpdateInvoiceInput represents the input for invoice updates. Nil fields are
// left unchanged; a non-nil Items replaces the whole line list.
type UpdateInvoiceInput struct {
	InvoiceID  uuid.UUID
	UserID     uuid.UUID
	CustomerID *uuid.UUID
	Items      []LineItemInput
	TaxRate    *decimal.Decimal
	DueDate    *time.Time
	Notes      *string
}

// UpdateInvoiceOutput represents the output of an invoice update.
type UpdateInvoiceOutput struct {
	Invoice *entity.Invoice
}

// UpdateInvoiceUseCase handles invoice update logic. Stock reversal for the
// old lines, decrements for the new ones and the customer aggregate delta
// commit atomically in the repository.
type UpdateInvoiceUseCase struct {
	invoiceRepo   adapter.InvoiceRepository
	productRepo   adapter.ProductRepository
	customerRepo  adapter.CustomerRepository
	pricingPolicy config.PricingPolicy
}

// NewUpdateInvoiceUseCase creates a new UpdateInvoiceUseCase instance.
func NewUpdateInvoiceUseCase(
	invoiceRepo adapter.InvoiceRepository,
	productRepo adapter.ProductRepository,
	customerRepo adapter.CustomerRepository,
	invoicing config.InvoicingConfig,
) *UpdateInvoiceUseCase {
	return &UpdateInvoiceUseCase{
		invoiceRepo:   invoiceRepo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		pricingPolicy: invoicing.PricingPolicy,
	}
}

// Execute performs the invoice update. Paid and cancelled invoices are
// immutable.
func (uc *UpdateInvoiceUseCase) Execute(ctx context.Context, input UpdateInvoiceInput) (*UpdateInvoiceOutput, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID, input.UserID)
	if err != nil {
		return nil, err
	}

	if inv.Status == entity.InvoiceStatusPaid || inv.Status == entity.InvoiceStatusCancelled {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("a %s invoice cannot be edited", inv.Status),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	if input.CustomerID != nil && *input.CustomerID != inv.CustomerID {
		if _, err := uc.customerRepo.FindByID(ctx, *input.CustomerID, input.UserID); err != nil {
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeInvoiceCustomerNotFound,
				"invoice customer not found",
				domainerror.ErrInvoiceCustomerNotFound,
			)
		}
		inv.CustomerID = *input.CustomerID
	}
	if input.Items != nil {
		items, err := buildLineItems(ctx, uc.productRepo, input.UserID, input.Items, uc.pricingPolicy)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			item.InvoiceID = inv.ID
		}
		inv.Items = items
	}
	if input.TaxRate != nil {
		if input.TaxRate.IsNegative() {
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeMissingInvoiceFields,
				"tax rate must not be negative",
				nil,
			)
		}
		inv.TaxRate = *input.TaxRate
	}
	if input.DueDate != nil {
		inv.DueDate = *input.DueDate
	}
	if input.Notes != nil {
		inv.Notes = *input.Notes
	}

	inv.Recalculate()
	inv.UpdatedAt = time.Now().UTC()

	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	return &UpdateInvoiceOutput{Invoice: inv}, nil
}
