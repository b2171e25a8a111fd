package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// parseDashboardFilters lê year, threshold e chart da query, usando os padrões quando ausentes
func parseDashboardFilters(r *http.Request, defaults domain.DashboardFilters) (domain.DashboardFilters, *apiErrors.APIError) {
	filters := defaults
	query := r.URL.Query()

	year, present, err := parseIntParam(query.Get("year"))
	if err != nil {
		return filters, &apiErrors.APIError{
			Code:    apiErrors.ErrInvalidFormat,
			Message: "O parâmetro year deve ser um número inteiro",
			Details: map[string]string{"year": query.Get("year")},
		}
	}
	if present {
		filters.Year = year
	}

	threshold, present, err := parseIntParam(query.Get("threshold"))
	if err != nil {
		return filters, &apiErrors.APIError{
			Code:    apiErrors.ErrInvalidFormat,
			Message: "O parâmetro threshold deve ser um número inteiro",
			Details: map[string]string{"threshold": query.Get("threshold")},
		}
	}
	if present {
		if threshold < 0 {
			return filters, &apiErrors.APIError{
				Code:    apiErrors.ErrInvalidThreshold,
				Message: "O parâmetro threshold não pode ser negativo",
				Details: map[string]int{"threshold": threshold},
			}
		}
		filters.Threshold = threshold
	}

	if chart := query.Get("chart"); chart != "" {
		chartType, ok := domain.ParseChartType(chart)
		if !ok {
			return filters, &apiErrors.APIError{
				Code:    apiErrors.ErrInvalidChartType,
				Message: "O parâmetro chart deve ser line, bar ou pie",
				Details: map[string]string{"chart": chart},
			}
		}
		filters.ChartType = chartType
	}

	return filters, nil
}

// parseYearParam lê apenas o ano; present indica se foi informado
func parseYearParam(r *http.Request) (year int, present bool, apiErr *apiErrors.APIError) {
	raw := r.URL.Query().Get("year")
	year, present, err := parseIntParam(raw)
	if err != nil {
		return 0, false, &apiErrors.APIError{
			Code:    apiErrors.ErrInvalidFormat,
			Message: "O parâmetro year deve ser um número inteiro",
			Details: map[string]string{"year": raw},
		}
	}
	return year, present, nil
}

func parseIntParam(raw string) (int, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}
