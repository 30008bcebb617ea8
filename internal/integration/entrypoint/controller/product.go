// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/application/usecase/product"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
	"github.com/lankagrow/backend/internal/integration/entrypoint/dto"
	"github.com/lankagrow/backend/internal/integration/entrypoint/middleware"
)

// ProductController handles product endpoints.
type ProductController struct {
	createUseCase       *product.CreateProductUseCase
	getUseCase          *product.GetProductUseCase
	listUseCase         *product.ListProductsUseCase
	updateUseCase       *product.UpdateProductUseCase
	deleteUseCase       *product.DeleteProductUseCase
	adjustStockUseCase  *product.AdjustStockUseCase
	listLowStockUseCase *product.ListLowStockUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	createUseCase *product.CreateProductUseCase,
	getUseCase *product.GetProductUseCase,
	listUseCase *product.ListProductsUseCase,
	updateUseCase *product.UpdateProductUseCase,
	deleteUseCase *product.DeleteProductUseCase,
	adjustStockUseCase *product.AdjustStockUseCase,
	listLowStockUseCase *product.ListLowStockUseCase,
) *ProductController {
	return &ProductController{
		createUseCase:       createUseCase,
		getUseCase:          getUseCase,
		listUseCase:         listUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		adjustStockUseCase:  adjustStockUseCase,
		listLowStockUseCase: listLowStockUseCase,
	}
}

// Create handles POST /products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingProductFields),
		})
		return
	}

	input := product.CreateProductInput{
		UserID:        userID,
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      req.Category,
		Description:   req.Description,
		PurchasePrice: decimal.NewFromFloat(req.PurchasePrice),
		SellingPrice:  decimal.NewFromFloat(req.SellingPrice),
		InitialStock:  req.InitialStock,
		MinStockLevel: req.MinStockLevel,
		Unit:          req.Unit,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateProductResponse{
		ProductResponse: dto.ToProductResponse(output.Product),
		TagSource:       string(output.TagSource),
	})
}

// Get handles GET /products/:id requests.
func (c *ProductController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), product.GetProductInput{
		ProductID: productID,
		UserID:    userID,
	})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := product.ListProductsInput{
		Filter: adapter.ProductFilter{
			UserID:   userID,
			Category: ctx.Query("category"),
			Search:   ctx.Query("search"),
			LowStock: ctx.Query("lowStock") == "true",
		},
	}

	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Pagination.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Pagination.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(output.Result.Products, dto.PaginationResponse{
		Page:       output.Result.Page,
		Limit:      output.Result.Limit,
		Total:      output.Result.Total,
		TotalPages: output.Result.TotalPages,
	}))
}

// Update handles PUT /products/:id requests.
func (c *ProductController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := product.UpdateProductInput{
		ProductID:     productID,
		UserID:        userID,
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      req.Category,
		Description:   req.Description,
		MinStockLevel: req.MinStockLevel,
		Unit:          req.Unit,
		Tags:          req.Tags,
	}
	if req.PurchasePrice != nil {
		price := decimal.NewFromFloat(*req.PurchasePrice)
		input.PurchasePrice = &price
	}
	if req.SellingPrice != nil {
		price := decimal.NewFromFloat(*req.SellingPrice)
		input.SellingPrice = &price
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Delete handles DELETE /products/:id requests.
func (c *ProductController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), product.DeleteProductInput{
		ProductID: productID,
		UserID:    userID,
	}); err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AdjustStock handles PUT /products/:id/stock requests.
func (c *ProductController) AdjustStock(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	var req dto.AdjustStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidStockAdjustment),
		})
		return
	}

	output, err := c.adjustStockUseCase.Execute(ctx.Request.Context(), product.AdjustStockInput{
		ProductID:  productID,
		UserID:     userID,
		Quantity:   req.Quantity,
		Adjustment: adapter.StockAdjustmentType(req.Type),
	})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	response := dto.AdjustStockResponse{
		Product: dto.ToProductResponse(output.Product),
	}
	if output.Reorder != nil {
		response.AISuggestion = &dto.ReorderSuggestionResponse{
			Quantity: output.Reorder.Quantity,
			Source:   string(output.Reorder.Source),
		}
	}

	ctx.JSON(http.StatusOK, response)
}

// ListLowStock handles GET /products/low-stock requests.
func (c *ProductController) ListLowStock(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listLowStockUseCase.Execute(ctx.Request.Context(), product.ListLowStockInput{
		UserID: userID,
	})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	products := make([]dto.ProductResponse, len(output.Products))
	for i, p := range output.Products {
		products[i] = dto.ToProductResponse(p)
	}
	ctx.JSON(http.StatusOK, dto.LowStockListResponse{Products: products})
}

// handleProductError handles product errors and returns appropriate HTTP responses.
func (c *ProductController) handleProductError(ctx *gin.Context, err error) {
	var productErr *domainerror.ProductError
	if errors.As(err, &productErr) {
		statusCode := c.getStatusCodeForProductError(productErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: productErr.Message,
			Code:  string(productErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProductError maps product error codes to HTTP status codes.
func (c *ProductController) getStatusCodeForProductError(code domainerror.ProductErrorCode) int {
	switch code {
	case domainerror.ErrCodeProductNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedProduct:
		return http.StatusForbidden
	case domainerror.ErrCodeSKUAlreadyExists,
		domainerror.ErrCodeProductReferenced:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidStockAdjustment,
		domainerror.ErrCodeMissingProductFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
