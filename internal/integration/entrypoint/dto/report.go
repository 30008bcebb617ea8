// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/application/usecase/report"
)

// InvoiceCountsResponse represents invoice counts by status.
type InvoiceCountsResponse struct {
	Total     int `json:"total"`
	Draft     int `json:"draft"`
	Sent      int `json:"sent"`
	Paid      int `json:"paid"`
	Overdue   int `json:"overdue"`
	Cancelled int `json:"cancelled"`
}

// ProductSalesResponse represents per-product sales in report responses.
type ProductSalesResponse struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	QuantitySold int    `json:"quantity_sold"`
	Revenue      string `json:"revenue"`
}

// CustomerSalesResponse represents per-customer sales in report responses.
type CustomerSalesResponse struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	InvoiceCount int    `json:"invoice_count"`
	Revenue      string `json:"revenue"`
}

// MonthlyAmountResponse represents a month bucket in report responses.
type MonthlyAmountResponse struct {
	Period string `json:"period"`
	Amount string `json:"amount"`
}

// CategoryAmountResponse represents a per-category total in report responses.
type CategoryAmountResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// DashboardResponse represents the response for the dashboard report.
type DashboardResponse struct {
	Revenue       string                 `json:"revenue"`
	Expenses      string                 `json:"expenses"`
	Net           string                 `json:"net"`
	Outstanding   string                 `json:"outstanding"`
	InvoiceCounts InvoiceCountsResponse  `json:"invoice_counts"`
	TopProducts   []ProductSalesResponse `json:"top_products"`
	LowStockCount int                    `json:"low_stock_count"`
}

// ProfitLossResponse represents the response for the profit and loss report.
type ProfitLossResponse struct {
	StartDate          string                   `json:"start_date"`
	EndDate            string                   `json:"end_date"`
	Revenue            string                   `json:"revenue"`
	ExpensesByCategory []CategoryAmountResponse `json:"expenses_by_category"`
	TotalExpenses      string                   `json:"total_expenses"`
	Net                string                   `json:"net"`
}

// SalesReportResponse represents the response for the sales report.
type SalesReportResponse struct {
	StartDate      string                  `json:"start_date"`
	EndDate        string                  `json:"end_date"`
	MonthlyRevenue []MonthlyAmountResponse `json:"monthly_revenue"`
	TopProducts    []ProductSalesResponse  `json:"top_products"`
	TopCustomers   []CustomerSalesResponse `json:"top_customers"`
}

// CashflowMonthResponse represents a month in the cashflow report.
type CashflowMonthResponse struct {
	Period string `json:"period"`
	In     string `json:"in"`
	Out    string `json:"out"`
	Net    string `json:"net"`
}

// CashflowResponse represents the response for the cashflow report.
type CashflowResponse struct {
	StartDate string                  `json:"start_date"`
	EndDate   string                  `json:"end_date"`
	Months    []CashflowMonthResponse `json:"months"`
}

// InventoryReportResponse represents the response for the inventory report.
type InventoryReportResponse struct {
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	StockValuation string                 `json:"stock_valuation"`
	LowStockItems  []ProductResponse      `json:"low_stock_items"`
	QuantitySold   []ProductSalesResponse `json:"quantity_sold"`
}

// AIInsightsResponse represents the response for the AI insights report.
type AIInsightsResponse struct {
	Forecast       string `json:"forecast"`
	ForecastSource string `json:"forecast_source"`
	Insight        string `json:"insight"`
	InsightSource  string `json:"insight_source"`
}

func toProductSalesResponses(sales []adapter.ProductSales) []ProductSalesResponse {
	responses := make([]ProductSalesResponse, len(sales))
	for i, s := range sales {
		responses[i] = ProductSalesResponse{
			ProductID:    s.ProductID.String(),
			ProductName:  s.ProductName,
			QuantitySold: s.QuantitySold,
			Revenue:      s.Revenue.String(),
		}
	}
	return responses
}

func toCustomerSalesResponses(sales []adapter.CustomerSales) []CustomerSalesResponse {
	responses := make([]CustomerSalesResponse, len(sales))
	for i, s := range sales {
		responses[i] = CustomerSalesResponse{
			CustomerID:   s.CustomerID.String(),
			CustomerName: s.CustomerName,
			InvoiceCount: s.InvoiceCount,
			Revenue:      s.Revenue.String(),
		}
	}
	return responses
}

func toMonthlyAmountResponses(months []adapter.MonthlyAmount) []MonthlyAmountResponse {
	responses := make([]MonthlyAmountResponse, len(months))
	for i, m := range months {
		responses[i] = MonthlyAmountResponse{
			Period: m.PeriodStart.Format("2006-01"),
			Amount: m.Amount.String(),
		}
	}
	return responses
}

// ToDashboardResponse converts a dashboard output to its response DTO.
func ToDashboardResponse(output *report.DashboardOutput) DashboardResponse {
	counts := InvoiceCountsResponse{}
	if output.InvoiceCounts != nil {
		counts = InvoiceCountsResponse{
			Total:     output.InvoiceCounts.Total,
			Draft:     output.InvoiceCounts.Draft,
			Sent:      output.InvoiceCounts.Sent,
			Paid:      output.InvoiceCounts.Paid,
			Overdue:   output.InvoiceCounts.Overdue,
			Cancelled: output.InvoiceCounts.Cancelled,
		}
	}
	return DashboardResponse{
		Revenue:       output.Revenue.String(),
		Expenses:      output.Expenses.String(),
		Net:           output.Net.String(),
		Outstanding:   output.Outstanding.String(),
		InvoiceCounts: counts,
		TopProducts:   toProductSalesResponses(output.TopProducts),
		LowStockCount: output.LowStockCount,
	}
}

// ToProfitLossResponse converts a profit and loss output to its response DTO.
func ToProfitLossResponse(output *report.ProfitLossOutput) ProfitLossResponse {
	categories := make([]CategoryAmountResponse, len(output.ExpensesByCategory))
	for i, c := range output.ExpensesByCategory {
		categories[i] = CategoryAmountResponse{
			Category: c.Category,
			Amount:   c.Amount.String(),
		}
	}
	return ProfitLossResponse{
		StartDate:          output.StartDate.Format("2006-01-02"),
		EndDate:            output.EndDate.Format("2006-01-02"),
		Revenue:            output.Revenue.String(),
		ExpensesByCategory: categories,
		TotalExpenses:      output.TotalExpenses.String(),
		Net:                output.Net.String(),
	}
}

// ToSalesReportResponse converts a sales report output to its response DTO.
func ToSalesReportResponse(output *report.SalesReportOutput) SalesReportResponse {
	return SalesReportResponse{
		StartDate:      output.StartDate.Format("2006-01-02"),
		EndDate:        output.EndDate.Format("2006-01-02"),
		MonthlyRevenue: toMonthlyAmountResponses(output.MonthlyRevenue),
		TopProducts:    toProductSalesResponses(output.TopProducts),
		TopCustomers:   toCustomerSalesResponses(output.TopCustomers),
	}
}

// ToCashflowResponse converts a cashflow output to its response DTO.
func ToCashflowResponse(output *report.CashflowOutput) CashflowResponse {
	months := make([]CashflowMonthResponse, len(output.Months))
	for i, m := range output.Months {
		months[i] = CashflowMonthResponse{
			Period: m.PeriodStart.Format("2006-01"),
			In:     m.In.String(),
			Out:    m.Out.String(),
			Net:    m.Net.String(),
		}
	}
	return CashflowResponse{
		StartDate: output.StartDate.Format("2006-01-02"),
		EndDate:   output.EndDate.Format("2006-01-02"),
		Months:    months,
	}
}

// ToInventoryReportResponse converts an inventory report output to its response DTO.
func ToInventoryReportResponse(output *report.InventoryReportOutput) InventoryReportResponse {
	lowStock := make([]ProductResponse, len(output.LowStockItems))
	for i, product := range output.LowStockItems {
		lowStock[i] = ToProductResponse(product)
	}
	return InventoryReportResponse{
		StartDate:      output.StartDate.Format("2006-01-02"),
		EndDate:        output.EndDate.Format("2006-01-02"),
		StockValuation: output.StockValuation.String(),
		LowStockItems:  lowStock,
		QuantitySold:   toProductSalesResponses(output.QuantitySold),
	}
}

// ToAIInsightsResponse converts an AI insights output to its response DTO.
func ToAIInsightsResponse(output *report.AIInsightsOutput) AIInsightsResponse {
	return AIInsightsResponse{
		Forecast:       output.Forecast,
		ForecastSource: string(output.ForecastSource),
		Insight:        output.Insight,
		InsightSource:  string(output.InsightSource),
	}
}
