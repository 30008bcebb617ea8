// Package router provides HTTP routing configuration for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lankagrow/backend/internal/integration/entrypoint/controller"
	"github.com/lankagrow/backend/internal/integration/entrypoint/middleware"
)

// Router holds the gin engine and the controllers it dispatches to.
type Router struct {
	engine *gin.Engine

	healthController   *controller.HealthController
	authController     *controller.AuthController
	productController  *controller.ProductController
	customerController *controller.CustomerController
	supplierController *controller.SupplierController
	invoiceController  *controller.InvoiceController
	expenseController  *controller.ExpenseController
	reportController   *controller.ReportController

	authMiddleware   *middleware.AuthMiddleware
	loginRateLimiter *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	productController *controller.ProductController,
	customerController *controller.CustomerController,
	supplierController *controller.SupplierController,
	invoiceController *controller.InvoiceController,
	expenseController *controller.ExpenseController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		productController:  productController,
		customerController: customerController,
		supplierController: supplierController,
		invoiceController:  invoiceController,
		expenseController:  expenseController,
		reportController:   reportController,
		authMiddleware:     authMiddleware,
		loginRateLimiter:   loginRateLimiter,
	}
}

// Setup configures the gin engine with all routes and middleware.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	r.engine = engine

	r.setupHealthRoutes(engine)
	r.setupAPIRoutes(engine)

	return engine
}

// Engine returns the configured gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	if r.healthController != nil {
		engine.GET("/health", r.healthController.Check)
	}
}

func (r *Router) setupAPIRoutes(engine *gin.Engine) {
	v1 := engine.Group("/api/v1")

	if r.authController != nil {
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			if r.loginRateLimiter != nil {
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			} else {
				auth.POST("/login", r.authController.Login)
			}
			auth.POST("/refresh", r.authController.Refresh)
			auth.POST("/logout", r.authController.Logout)
		}
	}

	if r.authMiddleware == nil {
		return
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	if r.productController != nil {
		products := protected.Group("/products")
		{
			products.POST("", r.productController.Create)
			products.GET("", r.productController.List)
			products.GET("/low-stock", r.productController.ListLowStock)
			products.GET("/:id", r.productController.Get)
			products.PUT("/:id", r.productController.Update)
			products.DELETE("/:id", r.productController.Delete)
			products.PUT("/:id/stock", r.productController.AdjustStock)
		}
	}

	if r.customerController != nil {
		customers := protected.Group("/customers")
		{
			customers.POST("", r.customerController.Create)
			customers.GET("", r.customerController.List)
			customers.GET("/:id", r.customerController.Get)
			customers.PUT("/:id", r.customerController.Update)
			customers.DELETE("/:id", r.customerController.Delete)
		}
	}

	if r.supplierController != nil {
		suppliers := protected.Group("/suppliers")
		{
			suppliers.POST("", r.supplierController.Create)
			suppliers.GET("", r.supplierController.List)
			suppliers.PUT("/:id", r.supplierController.Update)
			suppliers.DELETE("/:id", r.supplierController.Delete)
		}
	}

	if r.invoiceController != nil {
		invoices := protected.Group("/invoices")
		{
			invoices.POST("", r.invoiceController.Create)
			invoices.GET("", r.invoiceController.List)
			invoices.GET("/overdue", r.invoiceController.ListOverdue)
			invoices.GET("/:id", r.invoiceController.Get)
			invoices.PUT("/:id", r.invoiceController.Update)
			invoices.DELETE("/:id", r.invoiceController.Delete)
			invoices.POST("/:id/send", r.invoiceController.Send)
			invoices.POST("/:id/remind", r.invoiceController.Remind)
			invoices.PUT("/:id/pay", r.invoiceController.MarkPaid)
			invoices.PUT("/:id/cancel", r.invoiceController.Cancel)
		}
	}

	if r.expenseController != nil {
		expenses := protected.Group("/expenses")
		{
			expenses.POST("", r.expenseController.Create)
			expenses.GET("", r.expenseController.List)
			expenses.GET("/:id", r.expenseController.Get)
			expenses.PUT("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}
	}

	if r.reportController != nil {
		reports := protected.Group("/reports")
		{
			reports.GET("/dashboard", r.reportController.Dashboard)
			reports.GET("/profit-loss", r.reportController.ProfitLoss)
			reports.GET("/sales", r.reportController.Sales)
			reports.GET("/cashflow", r.reportController.Cashflow)
			reports.GET("/inventory", r.reportController.Inventory)
			reports.GET("/ai-insights", r.reportController.AIInsights)
		}
	}
}
