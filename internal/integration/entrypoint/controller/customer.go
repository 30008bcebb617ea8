// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/application/usecase/customer"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
	"github.com/lankagrow/backend/internal/integration/entrypoint/dto"
	"github.com/lankagrow/backend/internal/integration/entrypoint/middleware"
)

// CustomerController handles customer endpoints.
type CustomerController struct {
	createUseCase *customer.CreateCustomerUseCase
	getUseCase    *customer.GetCustomerUseCase
	listUseCase   *customer.ListCustomersUseCase
	updateUseCase *customer.UpdateCustomerUseCase
	deleteUseCase *customer.DeleteCustomerUseCase
}

// NewCustomerController creates a new customer controller instance.
func NewCustomerController(
	createUseCase *customer.CreateCustomerUseCase,
	getUseCase *customer.GetCustomerUseCase,
	listUseCase *customer.ListCustomersUseCase,
	updateUseCase *customer.UpdateCustomerUseCase,
	deleteUseCase *customer.DeleteCustomerUseCase,
) *CustomerController {
	return &CustomerController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /customers requests.
func (c *CustomerController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingCustomerFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), customer.CreateCustomerInput{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		c.handleCustomerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(output.Customer))
}

// Get handles GET /customers/:id requests.
func (c *CustomerController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	customerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid customer ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), customer.GetCustomerInput{
		CustomerID: customerID,
		UserID:     userID,
	})
	if err != nil {
		c.handleCustomerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(output.Customer))
}

// List handles GET /customers requests.
func (c *CustomerController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := customer.ListCustomersInput{
		Filter: adapter.CustomerFilter{
			UserID: userID,
			Search: ctx.Query("search"),
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
		c.handleCustomerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(output.Result.Customers, dto.PaginationResponse{
		Page:       output.Result.Page,
		Limit:      output.Result.Limit,
		Total:      output.Result.Total,
		TotalPages: output.Result.TotalPages,
	}))
}

// Update handles PUT /customers/:id requests.
func (c *CustomerController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	customerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid customer ID format",
		})
		return
	}

	var req dto.UpdateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), customer.UpdateCustomerInput{
		CustomerID: customerID,
		UserID:     userID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
	})
	if err != nil {
		c.handleCustomerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(output.Customer))
}

// Delete handles DELETE /customers/:id requests.
func (c *CustomerController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	customerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid customer ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), customer.DeleteCustomerInput{
		CustomerID: customerID,
		UserID:     userID,
	}); err != nil {
		c.handleCustomerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCustomerError handles customer errors and returns appropriate HTTP responses.
func (c *CustomerController) handleCustomerError(ctx *gin.Context, err error) {
	var customerErr *domainerror.CustomerError
	if errors.As(err, &customerErr) {
		statusCode := c.getStatusCodeForCustomerError(customerErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: customerErr.Message,
			Code:  string(customerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCustomerError maps customer error codes to HTTP status codes.
func (c *CustomerController) getStatusCodeForCustomerError(code domainerror.CustomerErrorCode) int {
	switch code {
	case domainerror.ErrCodeCustomerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedCustomer:
		return http.StatusForbidden
	case domainerror.ErrCodeCustomerHasInvoices:
		return http.StatusConflict
	case domainerror.ErrCodeMissingCustomerFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
