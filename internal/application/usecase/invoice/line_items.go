// Package invoice contains invoice lifecycle use cases.
package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/config"
	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

// LineItemInput is one requested invoice line. UnitPrice and Discount are only
// honored under the trusted pricing policy; the server policy prices from the
// catalog and rejects client discounts.
type LineItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
}

// buildLineItems validates and prices the requested lines against the catalog.
// The product name is snapshotted here so later renames do not rewrite history.
func buildLineItems(ctx context.Context, productRepo adapter.ProductRepository, userID uuid.UUID, lines []LineItemInput, policy config.PricingPolicy) ([]*entity.InvoiceItem, error) {
	if len(lines) == 0 {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeEmptyInvoiceItems,
			"invoice must have at least one line item",
			domainerror.ErrEmptyInvoiceItems,
		)
	}

	items := make([]*entity.InvoiceItem, 0, len(lines))
	for i, line := range lines {
		if line.Quantity <= 0 {
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeInvalidLineItem,
				fmt.Sprintf("line %d: quantity must be positive", i+1),
				domainerror.ErrInvalidLineItem,
			)
		}
		if line.Discount.IsNegative() {
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeInvalidLineItem,
				fmt.Sprintf("line %d: discount must not be negative", i+1),
				domainerror.ErrInvalidLineItem,
			)
		}

		product, err := productRepo.FindByID(ctx, line.ProductID, userID)
		if err != nil {
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeInvoiceProductNotFound,
				fmt.Sprintf("line %d: product %s not found", i+1, line.ProductID),
				domainerror.ErrInvoiceProductNotFound,
			)
		}

		unitPrice := line.UnitPrice
		discount := line.Discount
		switch policy {
		case config.PricingPolicyServer:
			unitPrice = product.SellingPrice
			if !discount.IsZero() {
				return nil, domainerror.NewInvoiceError(
					domainerror.ErrCodeInvalidLineItem,
					fmt.Sprintf("line %d: discounts are not accepted under server pricing", i+1),
					domainerror.ErrInvalidLineItem,
				)
			}
		default:
			if unitPrice.IsNegative() {
				return nil, domainerror.NewInvoiceError(
					domainerror.ErrCodeInvalidLineItem,
					fmt.Sprintf("line %d: unit price must not be negative", i+1),
					domainerror.ErrInvalidLineItem,
				)
			}
		}

		item := entity.NewInvoiceItem(product.ID, product.Name, line.Quantity, unitPrice, discount)
		if item.LineTotal.IsNegative() {
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeInvalidLineItem,
				fmt.Sprintf("line %d: discount exceeds the line amount", i+1),
				domainerror.ErrInvalidLineItem,
			)
		}
		items = append(items, item)
	}

	return items, nil
}
