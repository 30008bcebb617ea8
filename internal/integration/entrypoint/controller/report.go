// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lankagrow/backend/internal/application/usecase/report"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
	"github.com/lankagrow/backend/internal/integration/entrypoint/dto"
	"github.com/lankagrow/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report endpoints.
type ReportController struct {
	dashboardUseCase  *report.DashboardUseCase
	profitLossUseCase *report.ProfitLossUseCase
	salesUseCase      *report.SalesReportUseCase
	cashflowUseCase   *report.CashflowUseCase
	inventoryUseCase  *report.InventoryReportUseCase
	aiInsightsUseCase *report.AIInsightsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	dashboardUseCase *report.DashboardUseCase,
	profitLossUseCase *report.ProfitLossUseCase,
	salesUseCase *report.SalesReportUseCase,
	cashflowUseCase *report.CashflowUseCase,
	inventoryUseCase *report.InventoryReportUseCase,
	aiInsightsUseCase *report.AIInsightsUseCase,
) *ReportController {
	return &ReportController{
		dashboardUseCase:  dashboardUseCase,
		profitLossUseCase: profitLossUseCase,
		salesUseCase:      salesUseCase,
		cashflowUseCase:   cashflowUseCase,
		inventoryUseCase:  inventoryUseCase,
		aiInsightsUseCase: aiInsightsUseCase,
	}
}

// Dashboard handles GET /reports/dashboard requests.
func (c *ReportController) Dashboard(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), report.DashboardInput{
		UserID: userID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// ProfitLoss handles GET /reports/profit-loss requests.
func (c *ReportController) ProfitLoss(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, endDate, ok := c.parseDateRange(ctx)
	if !ok {
		return
	}

	output, err := c.profitLossUseCase.Execute(ctx.Request.Context(), report.ProfitLossInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfitLossResponse(output))
}

// Sales handles GET /reports/sales requests.
func (c *ReportController) Sales(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, endDate, ok := c.parseDateRange(ctx)
	if !ok {
		return
	}

	output, err := c.salesUseCase.Execute(ctx.Request.Context(), report.SalesReportInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesReportResponse(output))
}

// Cashflow handles GET /reports/cashflow requests.
func (c *ReportController) Cashflow(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, endDate, ok := c.parseDateRange(ctx)
	if !ok {
		return
	}

	output, err := c.cashflowUseCase.Execute(ctx.Request.Context(), report.CashflowInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashflowResponse(output))
}

// Inventory handles GET /reports/inventory requests.
func (c *ReportController) Inventory(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, endDate, ok := c.parseDateRange(ctx)
	if !ok {
		return
	}

	output, err := c.inventoryUseCase.Execute(ctx.Request.Context(), report.InventoryReportInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInventoryReportResponse(output))
}

// AIInsights handles GET /reports/ai-insights requests.
func (c *ReportController) AIInsights(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.aiInsightsUseCase.Execute(ctx.Request.Context(), report.AIInsightsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAIInsightsResponse(output))
}

// parseDateRange parses optional startDate/endDate query parameters, writing
// a 400 response on malformed values. Zero values let the use case apply its
// default window.
func (c *ReportController) parseDateRange(ctx *gin.Context) (startDate, endDate time.Time, ok bool) {
	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		parsed, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format. Use YYYY-MM-DD",
			})
			return time.Time{}, time.Time{}, false
		}
		startDate = parsed
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		parsed, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format. Use YYYY-MM-DD",
			})
			return time.Time{}, time.Time{}, false
		}
		endDate = parsed
	}
	return startDate, endDate, true
}

// handleReportError handles report errors. Aggregation failures are opaque;
// only a bad date range surfaces detail to the caller.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrInvalidDateRange) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Start date must be before end date",
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
