package reporting

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Reporter expõe as agregações de vendas consumidas pela API e pelo painel
type Reporter interface {
	// GetDataByYear retorna os registros de um ano (lista vazia quando o ano não existe)
	GetDataByYear(year int) ([]domain.SalesRecord, error)

	// GetAllRecords retorna o conjunto completo de registros
	GetAllRecords() ([]domain.SalesRecord, error)

	// GetYearlyTotals retorna um total por ano, em ordem crescente
	GetYearlyTotals() ([]domain.YearlyTotal, error)

	// GetYearStats retorna os totais e o crescimento de um ano
	GetYearStats(year int) (*domain.YearStats, error)

	// GetFilteredData retorna os registros do ano com vendas >= threshold
	GetFilteredData(year, threshold int) ([]domain.SalesRecord, error)

	// GetAvailableYears lista os anos presentes na fonte de dados
	GetAvailableYears() ([]int, error)

	// GetDashboard compõe a visão completa do painel para os filtros
	GetDashboard(filters domain.DashboardFilters) (*domain.DashboardView, error)

	// DefaultFilters retorna os filtros iniciais configurados
	DefaultFilters() domain.DashboardFilters
}
