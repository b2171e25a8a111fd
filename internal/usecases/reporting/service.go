// Package reporting implementa as consultas agregadas do painel de vendas
package reporting

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

type Service struct {
	salesRepository repository.SalesRepository
	defaults        domain.DashboardFilters
}

func NewService(salesRepository repository.SalesRepository, cfg *config.Config) Reporter {
	defaults := domain.DashboardFilters{
		Year:      cfg.Dashboard.DefaultYear,
		Threshold: cfg.Dashboard.DefaultThreshold,
		ChartType: domain.ChartBar,
	}
	if chartType, ok := domain.ParseChartType(cfg.Dashboard.DefaultChart); ok {
		defaults.ChartType = chartType
	}

	return &Service{
		salesRepository: salesRepository,
		defaults:        defaults,
	}
}

func (s *Service) DefaultFilters() domain.DashboardFilters {
	return s.defaults
}

func (s *Service) GetAllRecords() ([]domain.SalesRecord, error) {
	records, err := s.salesRepository.ListRecords()
	if err != nil {
		return nil, repositoryError(err, "Falha ao listar registros de vendas")
	}
	return records, nil
}

func (s *Service) GetDataByYear(year int) ([]domain.SalesRecord, error) {
	records, err := s.salesRepository.ListByYear(year)
	if err != nil {
		return nil, repositoryError(err, fmt.Sprintf("Falha ao listar vendas de %d", year))
	}
	if records == nil {
		records = []domain.SalesRecord{}
	}
	return records, nil
}

func (s *Service) GetYearlyTotals() ([]domain.YearlyTotal, error) {
	records, err := s.GetAllRecords()
	if err != nil {
		return nil, err
	}
	return domain.YearlyTotals(records), nil
}

func (s *Service) GetYearStats(year int) (*domain.YearStats, error) {
	records, err := s.GetAllRecords()
	if err != nil {
		return nil, err
	}

	stats := domain.CalculateYearStats(records, year).Rounded()
	return &stats, nil
}

func (s *Service) GetFilteredData(year, threshold int) ([]domain.SalesRecord, error) {
	if threshold < 0 {
		return nil, NewReportingError(ErrInvalidThreshold, apiErrors.ErrInvalidThreshold, fmt.Sprintf("threshold=%d", threshold))
	}

	records, err := s.GetDataByYear(year)
	if err != nil {
		return nil, err
	}
	return domain.FilterByThreshold(records, threshold), nil
}

func (s *Service) GetAvailableYears() ([]int, error) {
	records, err := s.GetAllRecords()
	if err != nil {
		return nil, err
	}
	return domain.AvailableYears(records), nil
}

func (s *Service) GetDashboard(filters domain.DashboardFilters) (*domain.DashboardView, error) {
	if filters.Threshold < 0 {
		return nil, NewReportingError(ErrInvalidThreshold, apiErrors.ErrInvalidThreshold, fmt.Sprintf("threshold=%d", filters.Threshold))
	}

	chartType, ok := domain.ParseChartType(string(filters.ChartType))
	if !ok {
		return nil, NewReportingError(ErrInvalidChartType, apiErrors.ErrInvalidChartType, fmt.Sprintf("chart=%q", filters.ChartType))
	}
	filters.ChartType = chartType

	records, err := s.GetAllRecords()
	if err != nil {
		return nil, err
	}

	return domain.BuildDashboard(records, filters), nil
}

func repositoryError(err error, details string) error {
	return NewReportingError(ErrRepository, apiErrors.ErrDatabaseOperation, errors.Wrap(err, details).Error())
}
