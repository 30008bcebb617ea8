// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/application/usecase/invoice"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
	"github.com/lankagrow/backend/internal/integration/entrypoint/dto"
	"github.com/lankagrow/backend/internal/integration/entrypoint/middleware"
)

// InvoiceController handles invoice endpoints.
type InvoiceController struct {
	createUseCase      *invoice.CreateInvoiceUseCase
	getUseCase         *invoice.GetInvoiceUseCase
	listUseCase        *invoice.ListInvoicesUseCase
	updateUseCase      *invoice.UpdateInvoiceUseCase
	deleteUseCase      *invoice.DeleteInvoiceUseCase
	sendUseCase        *invoice.SendInvoiceUseCase
	markPaidUseCase    *invoice.MarkPaidUseCase
	cancelUseCase      *invoice.CancelInvoiceUseCase
	listOverdueUseCase *invoice.ListOverdueUseCase
	remindUseCase      *invoice.SendReminderUseCase
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(
	createUseCase *invoice.CreateInvoiceUseCase,
	getUseCase *invoice.GetInvoiceUseCase,
	listUseCase *invoice.ListInvoicesUseCase,
	updateUseCase *invoice.UpdateInvoiceUseCase,
	deleteUseCase *invoice.DeleteInvoiceUseCase,
	sendUseCase *invoice.SendInvoiceUseCase,
	markPaidUseCase *invoice.MarkPaidUseCase,
	cancelUseCase *invoice.CancelInvoiceUseCase,
	listOverdueUseCase *invoice.ListOverdueUseCase,
	remindUseCase *invoice.SendReminderUseCase,
) *InvoiceController {
	return &InvoiceController{
		createUseCase:      createUseCase,
		getUseCase:         getUseCase,
		listUseCase:        listUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		sendUseCase:        sendUseCase,
		markPaidUseCase:    markPaidUseCase,
		cancelUseCase:      cancelUseCase,
		listOverdueUseCase: listOverdueUseCase,
		remindUseCase:      remindUseCase,
	}
}

// Create handles POST /invoices requests.
func (c *InvoiceController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingInvoiceFields),
		})
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid customer ID format",
		})
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingInvoiceFields),
		})
		return
	}

	items, ok := c.parseLineItems(ctx, req.Items)
	if !ok {
		return
	}

	input := invoice.CreateInvoiceInput{
		UserID:     userID,
		CustomerID: customerID,
		Items:      items,
		DueDate:    dueDate,
		Notes:      req.Notes,
	}
	if req.TaxRate != nil {
		taxRate := decimal.NewFromFloat(*req.TaxRate)
		input.TaxRate = &taxRate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvoiceResponse(output.Invoice))
}

// Get handles GET /invoices/:id requests.
func (c *InvoiceController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), invoice.GetInvoiceInput{
		InvoiceID: invoiceID,
		UserID:    userID,
	})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceWithCustomerResponse(output.Invoice))
}

// List handles GET /invoices requests.
func (c *InvoiceController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := invoice.ListInvoicesInput{
		Filter: adapter.InvoiceFilter{UserID: userID},
	}

	if customerIDStr := ctx.Query("customerId"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			input.Filter.CustomerID = &customerID
		}
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.InvoiceStatus(statusStr)
		input.Filter.Status = &status
	}
	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			input.Filter.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			input.Filter.EndDate = &endDate
		}
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
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(output.Result.Invoices, dto.PaginationResponse{
		Page:       output.Result.Page,
		Limit:      output.Result.Limit,
		Total:      output.Result.Total,
		TotalPages: output.Result.TotalPages,
	}))
}

// Update handles PUT /invoices/:id requests.
func (c *InvoiceController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := invoice.UpdateInvoiceInput{
		InvoiceID: invoiceID,
		UserID:    userID,
		Notes:     req.Notes,
	}

	if req.CustomerID != nil {
		customerID, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid customer ID format",
			})
			return
		}
		input.CustomerID = &customerID
	}
	if req.Items != nil {
		items, ok := c.parseLineItems(ctx, req.Items)
		if !ok {
			return
		}
		input.Items = items
	}
	if req.TaxRate != nil {
		taxRate := decimal.NewFromFloat(*req.TaxRate)
		input.TaxRate = &taxRate
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format. Use YYYY-MM-DD",
			})
			return
		}
		input.DueDate = &dueDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// Delete handles DELETE /invoices/:id requests.
func (c *InvoiceController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), invoice.DeleteInvoiceInput{
		InvoiceID: invoiceID,
		UserID:    userID,
	}); err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Send handles POST /invoices/:id/send requests.
func (c *InvoiceController) Send(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	output, err := c.sendUseCase.Execute(ctx.Request.Context(), invoice.SendInvoiceInput{
		InvoiceID: invoiceID,
		UserID:    userID,
	})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// MarkPaid handles PUT /invoices/:id/pay requests.
func (c *InvoiceController) MarkPaid(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	input := invoice.MarkPaidInput{
		InvoiceID: invoiceID,
		UserID:    userID,
	}

	// Body is optional; absence means paid now.
	var req dto.MarkPaidRequest
	if err := ctx.ShouldBindJSON(&req); err == nil && req.PaidDate != nil {
		paidDate, err := time.Parse("2006-01-02", *req.PaidDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid paid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.PaidDate = &paidDate
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// Cancel handles PUT /invoices/:id/cancel requests.
func (c *InvoiceController) Cancel(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	output, err := c.cancelUseCase.Execute(ctx.Request.Context(), invoice.CancelInvoiceInput{
		InvoiceID: invoiceID,
		UserID:    userID,
	})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// Remind handles POST /invoices/:id/remind requests.
func (c *InvoiceController) Remind(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	output, err := c.remindUseCase.Execute(ctx.Request.Context(), invoice.SendReminderInput{
		InvoiceID: invoiceID,
		UserID:    userID,
	})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReminderResponse{
		InvoiceNumber: output.Invoice.InvoiceNumber,
		DaysPastDue:   output.DaysPastDue,
		Message:       output.Message,
	})
}

// ListOverdue handles GET /invoices/overdue requests.
func (c *InvoiceController) ListOverdue(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listOverdueUseCase.Execute(ctx.Request.Context(), invoice.ListOverdueInput{
		UserID: userID,
	})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverdueInvoiceListResponse(output.Invoices))
}

// parseLineItems converts request line items, writing a 400 response on bad input.
func (c *InvoiceController) parseLineItems(ctx *gin.Context, items []dto.InvoiceItemRequest) ([]invoice.LineItemInput, bool) {
	parsed := make([]invoice.LineItemInput, len(items))
	for i, item := range items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid product ID format: " + item.ProductID,
				Code:  string(domainerror.ErrCodeInvalidLineItem),
			})
			return nil, false
		}
		parsed[i] = invoice.LineItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: decimal.NewFromFloat(item.UnitPrice),
			Discount:  decimal.NewFromFloat(item.Discount),
		}
	}
	return parsed, true
}

// handleInvoiceError handles invoice errors and returns appropriate HTTP responses.
func (c *InvoiceController) handleInvoiceError(ctx *gin.Context, err error) {
	var invoiceErr *domainerror.InvoiceError
	if errors.As(err, &invoiceErr) {
		statusCode := c.getStatusCodeForInvoiceError(invoiceErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: invoiceErr.Message,
			Code:  string(invoiceErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInvoiceError maps invoice error codes to HTTP status codes.
func (c *InvoiceController) getStatusCodeForInvoiceError(code domainerror.InvoiceErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvoiceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedInvoice:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidStatusTransition:
		return http.StatusConflict
	case domainerror.ErrCodeInvoiceProductNotFound,
		domainerror.ErrCodeInvoiceCustomerNotFound,
		domainerror.ErrCodeEmptyInvoiceItems,
		domainerror.ErrCodeInvalidLineItem,
		domainerror.ErrCodeMissingInvoiceFields,
		domainerror.ErrCodeCustomerEmailMissing:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
