package projections

import (
	"context"
	"math"
	"sort"

	"datao/internal/domain/sales"
)

// SalesReportStore defines the sales store interface needed by the report
// projection.
type SalesReportStore interface {
	List(ctx context.Context) ([]sales.Sale, error)
}

// CategorySales is total sale amount grouped by category, with the
// "Productos " prefix stripped for display.
type CategorySales struct {
	Category string  `json:"category"`
	Sales    float64 `json:"sales"`
}

// CategoryMargin is the average profit margin per category, one decimal.
type CategoryMargin struct {
	Category string  `json:"category"`
	Margin   float64 `json:"margin"`
}

// MonthSales is total sale amount for one calendar month.
type MonthSales struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

// MonthTicket is the average ticket size for one calendar month.
type MonthTicket struct {
	Month  string  `json:"month"`
	Ticket float64 `json:"ticket"`
}

// SalesReportResult carries the output of the sales report projection.
type SalesReportResult struct {
	TotalSales       float64          `json:"totalSales"`
	TotalRows        int              `json:"totalRows"`
	AvgMargin        float64          `json:"avgMargin"`
	SalesByCategory  []CategorySales  `json:"salesByCategory"`
	MarginByCategory []CategoryMargin `json:"marginByCategory"`
	MonthlySales     []MonthSales     `json:"monthlySales"`
	AvgTicketByMonth []MonthTicket    `json:"avgTicketByMonth"`
}

// GetSalesReportDeps holds dependencies for the sales report projection.
type GetSalesReportDeps struct {
	SalesStore SalesReportStore
}

// QueryGetSalesReport aggregates the mock sales rows into the report view.
// Category tables are sorted by value descending; both monthly tables cover
// all twelve months in calendar order, zeroed where no rows fall. Peso
// amounts are rounded to whole pesos, margins to one decimal.
func QueryGetSalesReport(ctx context.Context, deps GetSalesReportDeps) (SalesReportResult, error) {
	rows, err := deps.SalesStore.List(ctx)
	if err != nil {
		return SalesReportResult{}, err
	}
	return AggregateSales(rows), nil
}

// AggregateSales reduces the row set into the report view.
func AggregateSales(rows []sales.Sale) SalesReportResult {
	result := SalesReportResult{}

	categoryTotals := map[string]float64{}
	marginSums := map[string]float64{}
	marginCounts := map[string]int{}
	monthTotals := make([]float64, len(sales.MonthNames))
	ticketSums := make([]float64, len(sales.MonthNames))
	ticketCounts := make([]int, len(sales.MonthNames))

	for _, row := range rows {
		result.TotalSales += row.SaleAmount
		result.TotalRows++

		categoryTotals[row.Category] += row.SaleAmount
		marginSums[row.Category] += row.ProfitMargin
		marginCounts[row.Category]++

		if row.MonthNum >= 1 && row.MonthNum <= len(sales.MonthNames) {
			monthTotals[row.MonthNum-1] += row.SaleAmount
			ticketSums[row.MonthNum-1] += row.TicketSize
			ticketCounts[row.MonthNum-1]++
		}
	}

	var marginTotal float64
	var marginTotalCount int
	for _, category := range sales.Categories {
		total, ok := categoryTotals[category]
		if !ok {
			continue
		}
		result.SalesByCategory = append(result.SalesByCategory, CategorySales{
			Category: sales.DisplayName(category),
			Sales:    math.Round(total),
		})
		avg := marginSums[category] / float64(marginCounts[category])
		result.MarginByCategory = append(result.MarginByCategory, CategoryMargin{
			Category: sales.DisplayName(category),
			Margin:   math.Round(avg*10) / 10,
		})
		marginTotal += marginSums[category]
		marginTotalCount += marginCounts[category]
	}
	sort.SliceStable(result.SalesByCategory, func(i, j int) bool {
		return result.SalesByCategory[i].Sales > result.SalesByCategory[j].Sales
	})
	sort.SliceStable(result.MarginByCategory, func(i, j int) bool {
		return result.MarginByCategory[i].Margin > result.MarginByCategory[j].Margin
	})
	if marginTotalCount > 0 {
		result.AvgMargin = math.Round(marginTotal/float64(marginTotalCount)*10) / 10
	}

	for i, name := range sales.MonthShortNames {
		result.MonthlySales = append(result.MonthlySales, MonthSales{Month: name, Sales: math.Round(monthTotals[i])})
		var avg float64
		if ticketCounts[i] > 0 {
			avg = ticketSums[i] / float64(ticketCounts[i])
		}
		result.AvgTicketByMonth = append(result.AvgTicketByMonth, MonthTicket{Month: name, Ticket: math.Round(avg)})
	}

	return result
}
