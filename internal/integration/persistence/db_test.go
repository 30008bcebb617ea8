package persistence

import (
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lankagrow/backend/internal/integration/persistence/model"
)

// openTestDB opens a fresh in-memory database with the full schema migrated.
// A single connection keeps the memory database alive for the test's lifetime.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.ProductModel{},
		&model.CustomerModel{},
		&model.SupplierModel{},
		&model.InvoiceModel{},
		&model.InvoiceItemModel{},
		&model.InvoiceSequenceModel{},
		&model.ExpenseModel{},
		&model.EmailQueueModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}
