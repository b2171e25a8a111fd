package domain

import (
	"sort"

	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// ChangeType indica a direção do crescimento em relação ao ano anterior
type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
	ChangeNeutral  ChangeType = "neutral"
)

// YearStats reúne os totais de um ano e as métricas derivadas
type YearStats struct {
	Year              int        `json:"year"`
	TotalSales        int        `json:"total_sales"`
	TotalOrders       int        `json:"total_orders"`
	TotalRevenue      int        `json:"total_revenue"`
	AverageOrderValue float64    `json:"average_order_value"`
	PreviousSales     int        `json:"previous_sales"`
	SalesGrowth       float64    `json:"sales_growth"`
	ChangeType        ChangeType `json:"change_type"`
}

// DataByYear retorna os registros do ano informado, ou uma lista vazia
func DataByYear(records []SalesRecord, year int) []SalesRecord {
	result := make([]SalesRecord, 0, len(Months))
	for _, record := range records {
		if record.Year == year {
			result = append(result, record)
		}
	}
	return result
}

// YearlyTotals agrupa os registros por ano somando vendas, pedidos e receita.
// Retorna uma entrada por ano distinto, em ordem crescente de ano.
func YearlyTotals(records []SalesRecord) []YearlyTotal {
	byYear := make(map[int]*YearlyTotal)
	for _, record := range records {
		total, ok := byYear[record.Year]
		if !ok {
			total = &YearlyTotal{Year: record.Year}
			byYear[record.Year] = total
		}
		total.Sales += record.Sales
		total.Orders += record.Orders
		total.Revenue += record.Revenue
	}

	totals := make([]YearlyTotal, 0, len(byYear))
	for _, total := range byYear {
		totals = append(totals, *total)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Year < totals[j].Year })

	return totals
}

// SumRecords soma os campos de uma lista de registros
func SumRecords(records []SalesRecord) (sales, orders, revenue int) {
	for _, record := range records {
		sales += record.Sales
		orders += record.Orders
		revenue += record.Revenue
	}
	return sales, orders, revenue
}

// AverageOrderValue calcula receita / pedidos, retornando 0 quando não há pedidos
func AverageOrderValue(revenue, orders int) float64 {
	if orders <= 0 {
		return 0
	}
	return float64(revenue) / float64(orders)
}

// Growth calcula o crescimento percentual, retornando 0 quando o valor anterior é 0
func Growth(current, previous int) float64 {
	if previous <= 0 {
		return 0
	}
	return (float64(current-previous) / float64(previous)) * 100
}

// ChangeTypeOf classifica o crescimento
func ChangeTypeOf(growth float64) ChangeType {
	switch {
	case growth > 0:
		return ChangeIncrease
	case growth < 0:
		return ChangeDecrease
	default:
		return ChangeNeutral
	}
}

// CalculateYearStats calcula os totais do ano e o crescimento de vendas sobre year-1.
// Os valores saem sem arredondamento; use Rounded para exibição.
func CalculateYearStats(records []SalesRecord, year int) YearStats {
	totalSales, totalOrders, totalRevenue := SumRecords(DataByYear(records, year))
	previousSales, _, _ := SumRecords(DataByYear(records, year-1))

	growth := Growth(totalSales, previousSales)

	return YearStats{
		Year:              year,
		TotalSales:        totalSales,
		TotalOrders:       totalOrders,
		TotalRevenue:      totalRevenue,
		AverageOrderValue: AverageOrderValue(totalRevenue, totalOrders),
		PreviousSales:     previousSales,
		SalesGrowth:       growth,
		ChangeType:        ChangeTypeOf(growth),
	}
}

// Rounded devolve uma cópia com ticket médio e crescimento em duas casas decimais.
// ChangeType continua o calculado sobre o crescimento bruto.
func (s YearStats) Rounded() YearStats {
	s.AverageOrderValue = utils.RoundWithTwoDecimalPlace(s.AverageOrderValue)
	s.SalesGrowth = utils.RoundWithTwoDecimalPlace(s.SalesGrowth)
	return s
}

// FilterByThreshold mantém apenas os registros com sales >= threshold
func FilterByThreshold(records []SalesRecord, threshold int) []SalesRecord {
	result := make([]SalesRecord, 0, len(records))
	for _, record := range records {
		if record.Sales >= threshold {
			result = append(result, record)
		}
	}
	return result
}

// BestMonth retorna o mês com maior volume de vendas; em caso de empate vence o primeiro.
// Retorna "" quando não há registros.
func BestMonth(records []SalesRecord) string {
	if len(records) == 0 {
		return ""
	}

	best := records[0]
	for _, record := range records[1:] {
		if record.Sales > best.Sales {
			best = record
		}
	}
	return best.Month
}

// AvailableYears lista os anos distintos presentes nos registros, em ordem crescente
func AvailableYears(records []SalesRecord) []int {
	totals := YearlyTotals(records)
	years := make([]int, 0, len(totals))
	for _, total := range totals {
		years = append(years, total.Year)
	}
	return years
}
