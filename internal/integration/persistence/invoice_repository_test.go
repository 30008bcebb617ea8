package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

func seedCustomer(t *testing.T, db interface {
	Create(ctx context.Context, customer *entity.Customer) error
}, userID uuid.UUID, name string) *entity.Customer {
	t.Helper()
	customer := entity.NewCustomer(userID, name, "customer@example.com", "0771234567", "Colombo")
	if err := db.Create(context.Background(), customer); err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return customer
}

func seedProduct(t *testing.T, db interface {
	Create(ctx context.Context, product *entity.Product) error
}, userID uuid.UUID, name string, stock int) *entity.Product {
	t.Helper()
	product := entity.NewProduct(userID, name, "SKU-"+name, "General", "",
		decimal.NewFromInt(300), decimal.NewFromInt(500), stock, 5, "pcs")
	if err := db.Create(context.Background(), product); err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func TestInvoiceRepository_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	// Creating an invoice assigns the number, moves stock and raises the
	// customer aggregates in one transaction
	t.Run("assigns sequential numbers per owner", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewInvoiceRepository(db, "INV")
		customerRepo := NewCustomerRepository(db)
		productRepo := NewProductRepository(db)

		customer := seedCustomer(t, customerRepo, userID, "Nimal Stores")
		product := seedProduct(t, productRepo, userID, "Tea", 20)

		first := entity.NewInvoice(userID, customer.ID, []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 3, decimal.NewFromInt(500), decimal.Zero),
		}, decimal.Zero, time.Now().UTC().AddDate(0, 0, 14), "")
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.InvoiceNumber != "INV-000001" {
			t.Errorf("expected INV-000001, got %s", first.InvoiceNumber)
		}

		second := entity.NewInvoice(userID, customer.ID, []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 2, decimal.NewFromInt(500), decimal.Zero),
		}, decimal.Zero, time.Now().UTC().AddDate(0, 0, 14), "")
		if err := repo.Create(ctx, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.InvoiceNumber != "INV-000002" {
			t.Errorf("expected INV-000002, got %s", second.InvoiceNumber)
		}

		// Another owner starts a fresh numbering space
		otherUser := uuid.New()
		otherCustomer := seedCustomer(t, customerRepo, otherUser, "Kasun Traders")
		otherProduct := seedProduct(t, productRepo, otherUser, "Spice", 10)
		other := entity.NewInvoice(otherUser, otherCustomer.ID, []*entity.InvoiceItem{
			entity.NewInvoiceItem(otherProduct.ID, otherProduct.Name, 1, decimal.NewFromInt(200), decimal.Zero),
		}, decimal.Zero, time.Now().UTC().AddDate(0, 0, 14), "")
		if err := repo.Create(ctx, other); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if other.InvoiceNumber != "INV-000001" {
			t.Errorf("expected INV-000001 for the second owner, got %s", other.InvoiceNumber)
		}
	})

	t.Run("decrements stock and raises customer aggregates", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewInvoiceRepository(db, "INV")
		customerRepo := NewCustomerRepository(db)
		productRepo := NewProductRepository(db)

		customer := seedCustomer(t, customerRepo, userID, "Nimal Stores")
		product := seedProduct(t, productRepo, userID, "Tea", 20)

		invoice := entity.NewInvoice(userID, customer.ID, []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 3, decimal.NewFromInt(500), decimal.Zero),
		}, decimal.Zero, time.Now().UTC().AddDate(0, 0, 14), "")
		if err := repo.Create(ctx, invoice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := productRepo.FindByID(ctx, product.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.CurrentStock != 17 {
			t.Errorf("expected stock 17, got %d", stored.CurrentStock)
		}

		updated, err := customerRepo.FindByID(ctx, customer.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.LifetimeValue.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected lifetime value 1500, got %s", updated.LifetimeValue)
		}
		if !updated.OutstandingBalance.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected outstanding balance 1500, got %s", updated.OutstandingBalance)
		}
		if updated.LastPurchase == nil {
			t.Error("expected last purchase to be stamped")
		}
	})

	t.Run("rolls back when the customer does not resolve", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewInvoiceRepository(db, "INV")
		productRepo := NewProductRepository(db)

		product := seedProduct(t, productRepo, userID, "Tea", 20)

		invoice := entity.NewInvoice(userID, uuid.New(), []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 3, decimal.NewFromInt(500), decimal.Zero),
		}, decimal.Zero, time.Now().UTC().AddDate(0, 0, 14), "")

		err := repo.Create(ctx, invoice)
		var invErr *domainerror.InvoiceError
		if !errors.As(err, &invErr) || invErr.Code != domainerror.ErrCodeInvoiceCustomerNotFound {
			t.Fatalf("expected invoice customer not found, got %v", err)
		}

		// The stock decrement inside the failed transaction must not stick
		stored, err := productRepo.FindByID(ctx, product.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.CurrentStock != 20 {
			t.Errorf("expected stock unchanged at 20, got %d", stored.CurrentStock)
		}
		if _, err := repo.FindByID(ctx, invoice.ID, userID); err == nil {
			t.Error("expected the invoice not to be persisted")
		}
	})
}

func TestInvoiceRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("marking paid lowers only the outstanding balance", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewInvoiceRepository(db, "INV")
		customerRepo := NewCustomerRepository(db)
		productRepo := NewProductRepository(db)

		customer := seedCustomer(t, customerRepo, userID, "Nimal Stores")
		product := seedProduct(t, productRepo, userID, "Tea", 20)

		invoice := entity.NewInvoice(userID, customer.ID, []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 3, decimal.NewFromInt(500), decimal.Zero),
		}, decimal.Zero, time.Now().UTC().AddDate(0, 0, 14), "")
		if err := repo.Create(ctx, invoice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		now := time.Now().UTC()
		invoice.Status = entity.InvoiceStatusPaid
		invoice.PaidDate = &now
		invoice.UpdatedAt = now
		if err := repo.MarkPaid(ctx, invoice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := repo.FindByID(ctx, invoice.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Status != entity.InvoiceStatusPaid {
			t.Errorf("expected paid status, got %s", stored.Status)
		}
		if stored.PaidDate == nil {
			t.Error("expected paid date to be persisted")
		}

		updated, err := customerRepo.FindByID(ctx, customer.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.OutstandingBalance.Equal(decimal.Zero) {
			t.Errorf("expected outstanding balance 0, got %s", updated.OutstandingBalance)
		}
		if !updated.LifetimeValue.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected lifetime value unchanged at 1500, got %s", updated.LifetimeValue)
		}
	})

	t.Run("cancelling restores stock and reverses aggregates", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewInvoiceRepository(db, "INV")
		customerRepo := NewCustomerRepository(db)
		productRepo := NewProductRepository(db)

		customer := seedCustomer(t, customerRepo, userID, "Nimal Stores")
		product := seedProduct(t, productRepo, userID, "Tea", 20)

		invoice := entity.NewInvoice(userID, customer.ID, []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 3, decimal.NewFromInt(500), decimal.Zero),
		}, decimal.Zero, time.Now().UTC().AddDate(0, 0, 14), "")
		if err := repo.Create(ctx, invoice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		invoice.Status = entity.InvoiceStatusCancelled
		invoice.UpdatedAt = time.Now().UTC()
		if err := repo.Cancel(ctx, invoice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := productRepo.FindByID(ctx, product.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.CurrentStock != 20 {
			t.Errorf("expected stock restored to 20, got %d", stored.CurrentStock)
		}

		updated, err := customerRepo.FindByID(ctx, customer.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.LifetimeValue.Equal(decimal.Zero) {
			t.Errorf("expected lifetime value reversed to 0, got %s", updated.LifetimeValue)
		}
		if !updated.OutstandingBalance.Equal(decimal.Zero) {
			t.Errorf("expected outstanding balance reversed to 0, got %s", updated.OutstandingBalance)
		}
	})
}

func TestInvoiceRepository_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("restores stock and reverses aggregates", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewInvoiceRepository(db, "INV")
		customerRepo := NewCustomerRepository(db)
		productRepo := NewProductRepository(db)

		customer := seedCustomer(t, customerRepo, userID, "Nimal Stores")
		product := seedProduct(t, productRepo, userID, "Tea", 20)

		invoice := entity.NewInvoice(userID, customer.ID, []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 10, decimal.NewFromInt(500), decimal.Zero),
		}, decimal.Zero, time.Now().UTC().AddDate(0, 0, 14), "")
		if err := repo.Create(ctx, invoice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.Delete(ctx, invoice.ID, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := productRepo.FindByID(ctx, product.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.CurrentStock != 20 {
			t.Errorf("expected stock restored to 20, got %d", stored.CurrentStock)
		}

		updated, err := customerRepo.FindByID(ctx, customer.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.LifetimeValue.Equal(decimal.Zero) {
			t.Errorf("expected lifetime value reversed to 0, got %s", updated.LifetimeValue)
		}
		if !updated.OutstandingBalance.Equal(decimal.Zero) {
			t.Errorf("expected outstanding balance reversed to 0, got %s", updated.OutstandingBalance)
		}

		if _, err := repo.FindByID(ctx, invoice.ID, userID); err == nil {
			t.Error("expected the invoice to be gone")
		}
	})

	t.Run("does not reverse again for a cancelled invoice", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewInvoiceRepository(db, "INV")
		customerRepo := NewCustomerRepository(db)
		productRepo := NewProductRepository(db)

		customer := seedCustomer(t, customerRepo, userID, "Nimal Stores")
		product := seedProduct(t, productRepo, userID, "Tea", 20)

		invoice := entity.NewInvoice(userID, customer.ID, []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 3, decimal.NewFromInt(500), decimal.Zero),
		}, decimal.Zero, time.Now().UTC().AddDate(0, 0, 14), "")
		if err := repo.Create(ctx, invoice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Cancel already restored stock and reversed the aggregates
		invoice.Status = entity.InvoiceStatusCancelled
		invoice.UpdatedAt = time.Now().UTC()
		if err := repo.Cancel(ctx, invoice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.Delete(ctx, invoice.ID, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := productRepo.FindByID(ctx, product.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.CurrentStock != 20 {
			t.Errorf("expected stock to stay at 20, got %d", stored.CurrentStock)
		}

		updated, err := customerRepo.FindByID(ctx, customer.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.LifetimeValue.Equal(decimal.Zero) {
			t.Errorf("expected lifetime value to stay at 0, got %s", updated.LifetimeValue)
		}
		if !updated.OutstandingBalance.Equal(decimal.Zero) {
			t.Errorf("expected outstanding balance to stay at 0, got %s", updated.OutstandingBalance)
		}
	})

	t.Run("deleting an unknown invoice errors", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewInvoiceRepository(db, "INV")

		err := repo.Delete(ctx, uuid.New(), userID)
		var invErr *domainerror.InvoiceError
		if !errors.As(err, &invErr) || invErr.Code != domainerror.ErrCodeInvoiceNotFound {
			t.Errorf("expected invoice not found, got %v", err)
		}
	})
}

func TestInvoiceRepository_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	// Updating replaces the item list, re-applies stock and moves the
	// customer aggregates by the total delta
	t.Run("moves stock and aggregates by the delta", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewInvoiceRepository(db, "INV")
		customerRepo := NewCustomerRepository(db)
		productRepo := NewProductRepository(db)

		customer := seedCustomer(t, customerRepo, userID, "Nimal Stores")
		product := seedProduct(t, productRepo, userID, "Tea", 20)

		invoice := entity.NewInvoice(userID, customer.ID, []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 3, decimal.NewFromInt(500), decimal.Zero),
		}, decimal.Zero, time.Now().UTC().AddDate(0, 0, 14), "")
		if err := repo.Create(ctx, invoice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		invoice.Items = []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 5, decimal.NewFromInt(500), decimal.Zero),
		}
		invoice.Items[0].InvoiceID = invoice.ID
		invoice.Recalculate()
		invoice.UpdatedAt = time.Now().UTC()
		if err := repo.Update(ctx, invoice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := productRepo.FindByID(ctx, product.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.CurrentStock != 15 {
			t.Errorf("expected stock 15 after re-applying, got %d", stored.CurrentStock)
		}

		updated, err := customerRepo.FindByID(ctx, customer.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.LifetimeValue.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("expected lifetime value 2500, got %s", updated.LifetimeValue)
		}
		if !updated.OutstandingBalance.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("expected outstanding balance 2500, got %s", updated.OutstandingBalance)
		}

		reloaded, err := repo.FindByID(ctx, invoice.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reloaded.Items) != 1 || reloaded.Items[0].Quantity != 5 {
			t.Errorf("expected one line with quantity 5, got %+v", reloaded.Items)
		}
	})
}

func TestInvoiceRepository_Queries(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("finds overdue invoices oldest debt first", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewInvoiceRepository(db, "INV")
		customerRepo := NewCustomerRepository(db)
		productRepo := NewProductRepository(db)

		customer := seedCustomer(t, customerRepo, userID, "Nimal Stores")
		product := seedProduct(t, productRepo, userID, "Tea", 50)
		now := time.Now().UTC()

		older := entity.NewInvoice(userID, customer.ID, []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 1, decimal.NewFromInt(500), decimal.Zero),
		}, decimal.Zero, now.AddDate(0, 0, -30), "")
		newer := entity.NewInvoice(userID, customer.ID, []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 1, decimal.NewFromInt(500), decimal.Zero),
		}, decimal.Zero, now.AddDate(0, 0, -5), "")
		future := entity.NewInvoice(userID, customer.ID, []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 1, decimal.NewFromInt(500), decimal.Zero),
		}, decimal.Zero, now.AddDate(0, 0, 14), "")

		for _, inv := range []*entity.Invoice{older, newer, future} {
			if err := repo.Create(ctx, inv); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			inv.Status = entity.InvoiceStatusSent
			inv.UpdatedAt = now
			if err := repo.UpdateStatus(ctx, inv); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		overdue, err := repo.FindOverdue(ctx, userID, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(overdue) != 2 {
			t.Fatalf("expected 2 overdue invoices, got %d", len(overdue))
		}
		if overdue[0].Invoice.ID != older.ID {
			t.Error("expected the oldest debt first")
		}
		if overdue[0].Customer == nil || overdue[0].Customer.Name != "Nimal Stores" {
			t.Error("expected the customer to be resolved")
		}
	})

	t.Run("reports product and customer references", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewInvoiceRepository(db, "INV")
		customerRepo := NewCustomerRepository(db)
		productRepo := NewProductRepository(db)

		customer := seedCustomer(t, customerRepo, userID, "Nimal Stores")
		product := seedProduct(t, productRepo, userID, "Tea", 20)

		invoice := entity.NewInvoice(userID, customer.ID, []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 1, decimal.NewFromInt(500), decimal.Zero),
		}, decimal.Zero, time.Now().UTC().AddDate(0, 0, 14), "")
		if err := repo.Create(ctx, invoice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		referenced, err := repo.ExistsByProduct(ctx, product.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !referenced {
			t.Error("expected the product to be referenced")
		}

		referenced, err = repo.ExistsByCustomer(ctx, customer.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !referenced {
			t.Error("expected the customer to be referenced")
		}

		referenced, err = repo.ExistsByProduct(ctx, uuid.New(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if referenced {
			t.Error("expected an unknown product to be unreferenced")
		}
	})

	t.Run("scopes lookups to the owner", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewInvoiceRepository(db, "INV")
		customerRepo := NewCustomerRepository(db)
		productRepo := NewProductRepository(db)

		customer := seedCustomer(t, customerRepo, userID, "Nimal Stores")
		product := seedProduct(t, productRepo, userID, "Tea", 20)

		invoice := entity.NewInvoice(userID, customer.ID, []*entity.InvoiceItem{
			entity.NewInvoiceItem(product.ID, product.Name, 1, decimal.NewFromInt(500), decimal.Zero),
		}, decimal.Zero, time.Now().UTC().AddDate(0, 0, 14), "")
		if err := repo.Create(ctx, invoice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := repo.FindByID(ctx, invoice.ID, uuid.New())
		var invErr *domainerror.InvoiceError
		if !errors.As(err, &invErr) || invErr.Code != domainerror.ErrCodeInvoiceNotFound {
			t.Errorf("expected invoice not found for a foreign owner, got %v", err)
		}
	})
}
