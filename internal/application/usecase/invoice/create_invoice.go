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

// CreateInvoiceInput represents the input for invoice creation.
type CreateInvoiceInput struct {
	UserID     uuid.UUID
	CustomerID uuid.UUID
	Items      []LineItemInput
	TaxRate    *decimal.Decimal // nil means the configured default
	DueDate    time.Time
	Notes      string
}

// CreateInvoiceOutput represents the output of invoice creation.
type CreateInvoiceOutput struct {
	Invoice *entity.Invoice
}

// CreateInvoiceUseCase handles invoice creation. The invoice document, its
// stock decrements and the customer aggregate updates commit atomically in
// the repository; this use case validates, prices and assembles the draft.
type CreateInvoiceUseCase struct {
	invoiceRepo   adapter.InvoiceRepository
	productRepo   adapter.ProductRepository
	customerRepo  adapter.CustomerRepository
	pricingPolicy config.PricingPolicy
	defaultTax    decimal.Decimal
}

// NewCreateInvoiceUseCase creates a new CreateInvoiceUseCase instance.
func NewCreateInvoiceUseCase(
	invoiceRepo adapter.InvoiceRepository,
	productRepo adapter.ProductRepository,
	customerRepo adapter.CustomerRepository,
	invoicing config.InvoicingConfig,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		invoiceRepo:   invoiceRepo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		pricingPolicy: invoicing.PricingPolicy,
		defaultTax:    invoicing.DefaultTaxRate,
	}
}

// Execute performs the invoice creation.
func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, input CreateInvoiceInput) (*CreateInvoiceOutput, error) {
	if _, err := uc.customerRepo.FindByID(ctx, input.CustomerID, input.UserID); err != nil {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceCustomerNotFound,
			"invoice customer not found",
			domainerror.ErrInvoiceCustomerNotFound,
		)
	}
	if input.DueDate.IsZero() {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeMissingInvoiceFields,
			"due date is required",
			nil,
		)
	}

	items, err := buildLineItems(ctx, uc.productRepo, input.UserID, input.Items, uc.pricingPolicy)
	if err != nil {
		return nil, err
	}

	taxRate := uc.defaultTax
	if input.TaxRate != nil {
		if input.TaxRate.IsNegative() {
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeMissingInvoiceFields,
				"tax rate must not be negative",
				nil,
			)
		}
		taxRate = *input.TaxRate
	}

	inv := entity.NewInvoice(input.UserID, input.CustomerID, items, taxRate, input.DueDate, input.Notes)

	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	return &CreateInvoiceOutput{Invoice: inv}, nil
}
