package domain

import (
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// NotAvailable é exibido quando não há melhor mês para o filtro atual
const NotAvailable = "N/A"

// DashboardFilters são as escolhas do usuário no painel
type DashboardFilters struct {
	Year      int       `json:"year"`
	Threshold int       `json:"threshold"`
	ChartType ChartType `json:"chart_type"`
}

// StatsCard é um cartão de resumo do painel
type StatsCard struct {
	Title      string     `json:"title"`
	Value      string     `json:"value"`
	Change     *int       `json:"change,omitempty"`
	ChangeType ChangeType `json:"change_type,omitempty"`
	Variant    string     `json:"variant"`
}

// YearComparison é uma linha do comparativo anual
type YearComparison struct {
	YearlyTotal
	Selected bool `json:"selected"`
}

// QuickInsights resume o recorte filtrado
type QuickInsights struct {
	BestMonth       string    `json:"best_month"`
	FilteredRecords int       `json:"filtered_records"`
	TotalRecords    int       `json:"total_records"`
	ChartType       ChartType `json:"chart_type"`
	Threshold       int       `json:"threshold"`
}

// DashboardView é tudo o que a camada de apresentação precisa para um filtro
type DashboardView struct {
	Title                    string           `json:"title"`
	Filters                  DashboardFilters `json:"filters"`
	Stats                    YearStats        `json:"stats"`
	GrowthRounded            int              `json:"growth_rounded"`
	AverageOrderValueRounded int              `json:"average_order_value_rounded"`
	Cards                    []StatsCard      `json:"cards"`
	YearlyComparison         []YearComparison `json:"yearly_comparison"`
	FilteredData             []SalesRecord    `json:"filtered_data"`
	Insights                 QuickInsights    `json:"insights"`
	Chart                    ChartSpec        `json:"chart"`
}

// ChartTitle é o título do gráfico para o ano selecionado
func ChartTitle(year int) string {
	return fmt.Sprintf("%d Sales Performance", year)
}

// BuildDashboard compõe a visão do painel a partir do conjunto de registros
func BuildDashboard(records []SalesRecord, filters DashboardFilters) *DashboardView {
	yearData := DataByYear(records, filters.Year)
	filtered := FilterByThreshold(yearData, filters.Threshold)
	stats := CalculateYearStats(records, filters.Year)

	growth := utils.RoundToInt(stats.SalesGrowth)
	aov := utils.RoundToInt(stats.AverageOrderValue)

	bestMonth := BestMonth(filtered)
	if bestMonth == "" {
		bestMonth = NotAvailable
	}

	totals := YearlyTotals(records)
	comparison := make([]YearComparison, 0, len(totals))
	for _, total := range totals {
		comparison = append(comparison, YearComparison{
			YearlyTotal: total,
			Selected:    total.Year == filters.Year,
		})
	}

	title := ChartTitle(filters.Year)

	return &DashboardView{
		Title:                    title,
		Filters:                  filters,
		Stats:                    stats.Rounded(),
		GrowthRounded:            growth,
		AverageOrderValueRounded: aov,
		Cards: []StatsCard{
			{
				Title:      "Total Sales",
				Value:      utils.FormatCurrency(stats.TotalSales),
				Change:     &growth,
				ChangeType: stats.ChangeType,
				Variant:    "gradient",
			},
			{Title: "Total Orders", Value: utils.FormatNumber(stats.TotalOrders), Variant: "glass"},
			{Title: "Total Revenue", Value: utils.FormatCurrency(stats.TotalRevenue), Variant: "gradient"},
			{Title: "Avg Order Value", Value: fmt.Sprintf("$%d", aov), Variant: "glass"},
		},
		YearlyComparison: comparison,
		FilteredData:     filtered,
		Insights: QuickInsights{
			BestMonth:       bestMonth,
			FilteredRecords: len(filtered),
			TotalRecords:    len(yearData),
			ChartType:       filters.ChartType,
			Threshold:       filters.Threshold,
		},
		Chart: BuildChart(filtered, filters.ChartType, title),
	}
}
