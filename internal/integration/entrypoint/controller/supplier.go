// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/usecase/supplier"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
	"github.com/lankagrow/backend/internal/integration/entrypoint/dto"
	"github.com/lankagrow/backend/internal/integration/entrypoint/middleware"
)

// SupplierController handles supplier endpoints.
type SupplierController struct {
	createUseCase *supplier.CreateSupplierUseCase
	listUseCase   *supplier.ListSuppliersUseCase
	updateUseCase *supplier.UpdateSupplierUseCase
	deleteUseCase *supplier.DeleteSupplierUseCase
}

// NewSupplierController creates a new supplier controller instance.
func NewSupplierController(
	createUseCase *supplier.CreateSupplierUseCase,
	listUseCase *supplier.ListSuppliersUseCase,
	updateUseCase *supplier.UpdateSupplierUseCase,
	deleteUseCase *supplier.DeleteSupplierUseCase,
) *SupplierController {
	return &SupplierController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /suppliers requests.
func (c *SupplierController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateSupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSupplierFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), supplier.CreateSupplierInput{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		c.handleSupplierError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(output.Supplier))
}

// List handles GET /suppliers requests.
func (c *SupplierController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), supplier.ListSuppliersInput{
		UserID: userID,
	})
	if err != nil {
		c.handleSupplierError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierListResponse(output.Suppliers))
}

// Update handles PUT /suppliers/:id requests.
func (c *SupplierController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	supplierID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid supplier ID format",
		})
		return
	}

	var req dto.UpdateSupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), supplier.UpdateSupplierInput{
		SupplierID: supplierID,
		UserID:     userID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		Notes:      req.Notes,
	})
	if err != nil {
		c.handleSupplierError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(output.Supplier))
}

// Delete handles DELETE /suppliers/:id requests.
func (c *SupplierController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	supplierID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid supplier ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), supplier.DeleteSupplierInput{
		SupplierID: supplierID,
		UserID:     userID,
	}); err != nil {
		c.handleSupplierError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleSupplierError handles supplier errors and returns appropriate HTTP responses.
func (c *SupplierController) handleSupplierError(ctx *gin.Context, err error) {
	var supplierErr *domainerror.SupplierError
	if errors.As(err, &supplierErr) {
		statusCode := c.getStatusCodeForSupplierError(supplierErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: supplierErr.Message,
			Code:  string(supplierErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSupplierError maps supplier error codes to HTTP status codes.
func (c *SupplierController) getStatusCodeForSupplierError(code domainerror.SupplierErrorCode) int {
	switch code {
	case domainerror.ErrCodeSupplierNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedSupplier:
		return http.StatusForbidden
	case domainerror.ErrCodeMissingSupplierFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
