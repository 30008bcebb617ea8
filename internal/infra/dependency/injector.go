// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lankagrow/backend/config"
	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/application/advisor"
	"github.com/lankagrow/backend/internal/application/usecase/auth"
	"github.com/lankagrow/backend/internal/application/usecase/customer"
	"github.com/lankagrow/backend/internal/application/usecase/expense"
	"github.com/lankagrow/backend/internal/application/usecase/invoice"
	"github.com/lankagrow/backend/internal/application/usecase/product"
	"github.com/lankagrow/backend/internal/application/usecase/report"
	"github.com/lankagrow/backend/internal/application/usecase/supplier"
	"github.com/lankagrow/backend/internal/infra/server/router"
	"github.com/lankagrow/backend/internal/integration/adapters"
	"github.com/lankagrow/backend/internal/integration/email"
	"github.com/lankagrow/backend/internal/integration/email/templates"
	"github.com/lankagrow/backend/internal/integration/entrypoint/controller"
	"github.com/lankagrow/backend/internal/integration/entrypoint/middleware"
	"github.com/lankagrow/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *slog.Logger) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	productRepo := persistence.NewProductRepository(db)
	customerRepo := persistence.NewCustomerRepository(db)
	supplierRepo := persistence.NewSupplierRepository(db)
	invoiceRepo := persistence.NewInvoiceRepository(db, cfg.Invoicing.NumberPrefix)
	expenseRepo := persistence.NewExpenseRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	emailService := email.NewService(emailQueueRepo)

	var aiClient adapter.AIClient
	if cfg.AI.GeminiAPIKey != "" {
		aiClient = adapters.NewGeminiAdvisor(cfg.AI.GeminiAPIKey, cfg.AI.Model)
	}
	advisorService := advisor.NewService(aiClient)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create product use cases
	createProductUseCase := product.NewCreateProductUseCase(productRepo, advisorService)
	getProductUseCase := product.NewGetProductUseCase(productRepo)
	listProductsUseCase := product.NewListProductsUseCase(productRepo)
	updateProductUseCase := product.NewUpdateProductUseCase(productRepo)
	deleteProductUseCase := product.NewDeleteProductUseCase(productRepo, invoiceRepo)
	adjustStockUseCase := product.NewAdjustStockUseCase(productRepo, advisorService)
	listLowStockUseCase := product.NewListLowStockUseCase(productRepo)

	// Create customer use cases
	createCustomerUseCase := customer.NewCreateCustomerUseCase(customerRepo)
	getCustomerUseCase := customer.NewGetCustomerUseCase(customerRepo)
	listCustomersUseCase := customer.NewListCustomersUseCase(customerRepo)
	updateCustomerUseCase := customer.NewUpdateCustomerUseCase(customerRepo)
	deleteCustomerUseCase := customer.NewDeleteCustomerUseCase(customerRepo, invoiceRepo)

	// Create supplier use cases
	createSupplierUseCase := supplier.NewCreateSupplierUseCase(supplierRepo)
	listSuppliersUseCase := supplier.NewListSuppliersUseCase(supplierRepo)
	updateSupplierUseCase := supplier.NewUpdateSupplierUseCase(supplierRepo)
	deleteSupplierUseCase := supplier.NewDeleteSupplierUseCase(supplierRepo)

	// Create invoice use cases
	createInvoiceUseCase := invoice.NewCreateInvoiceUseCase(invoiceRepo, productRepo, customerRepo, cfg.Invoicing)
	getInvoiceUseCase := invoice.NewGetInvoiceUseCase(invoiceRepo)
	listInvoicesUseCase := invoice.NewListInvoicesUseCase(invoiceRepo)
	updateInvoiceUseCase := invoice.NewUpdateInvoiceUseCase(invoiceRepo, productRepo, customerRepo, cfg.Invoicing)
	deleteInvoiceUseCase := invoice.NewDeleteInvoiceUseCase(invoiceRepo)
	sendInvoiceUseCase := invoice.NewSendInvoiceUseCase(invoiceRepo, customerRepo, userRepo, emailService, logger)
	markPaidUseCase := invoice.NewMarkPaidUseCase(invoiceRepo)
	cancelInvoiceUseCase := invoice.NewCancelInvoiceUseCase(invoiceRepo)
	listOverdueUseCase := invoice.NewListOverdueUseCase(invoiceRepo, userRepo, advisorService)
	sendReminderUseCase := invoice.NewSendReminderUseCase(invoiceRepo, customerRepo, userRepo, emailService, advisorService)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, advisorService)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create report use cases
	dashboardUseCase := report.NewDashboardUseCase(reportRepo, productRepo)
	profitLossUseCase := report.NewProfitLossUseCase(reportRepo)
	salesReportUseCase := report.NewSalesReportUseCase(reportRepo)
	cashflowUseCase := report.NewCashflowUseCase(reportRepo)
	inventoryReportUseCase := report.NewInventoryReportUseCase(reportRepo, productRepo)
	aiInsightsUseCase := report.NewAIInsightsUseCase(reportRepo, productRepo, userRepo, advisorService)

	// Create controllers
	advisorMode := "fallback"
	if aiClient != nil {
		advisorMode = "gemini"
	}
	mailerMode := "disabled"
	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		mailerMode = "resend"
	}
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, advisorMode, mailerMode)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	productController := controller.NewProductController(
		createProductUseCase,
		getProductUseCase,
		listProductsUseCase,
		updateProductUseCase,
		deleteProductUseCase,
		adjustStockUseCase,
		listLowStockUseCase,
	)

	customerController := controller.NewCustomerController(
		createCustomerUseCase,
		getCustomerUseCase,
		listCustomersUseCase,
		updateCustomerUseCase,
		deleteCustomerUseCase,
	)

	supplierController := controller.NewSupplierController(
		createSupplierUseCase,
		listSuppliersUseCase,
		updateSupplierUseCase,
		deleteSupplierUseCase,
	)

	invoiceController := controller.NewInvoiceController(
		createInvoiceUseCase,
		getInvoiceUseCase,
		listInvoicesUseCase,
		updateInvoiceUseCase,
		deleteInvoiceUseCase,
		sendInvoiceUseCase,
		markPaidUseCase,
		cancelInvoiceUseCase,
		listOverdueUseCase,
		sendReminderUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		getExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	reportController := controller.NewReportController(
		dashboardUseCase,
		profitLossUseCase,
		salesReportUseCase,
		cashflowUseCase,
		inventoryReportUseCase,
		aiInsightsUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(healthController, authController, productController, customerController, supplierController, invoiceController, expenseController, reportController, loginRateLimiter, authMiddleware)

	// Create email worker when sending is configured
	var emailWorker *email.Worker
	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			logger.Error("Failed to initialize email templates, worker disabled", "error", err)
		} else {
			sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			emailWorker = email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
				PollInterval: cfg.Email.PollInterval,
				BatchSize:    cfg.Email.BatchSize,
			})
		}
	}

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}
}
