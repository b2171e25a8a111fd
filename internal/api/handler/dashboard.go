package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetDashboard retorna a visão completa do painel para os filtros da query
func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, apiErr := parseDashboardFilters(r, service.DefaultFilters())
		if apiErr != nil {
			writeAPIError(w, apiErr)
			return
		}

		view, err := service.GetDashboard(filters)
		if err != nil {
			writeReportingError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"year":      filters.Year,
			"threshold": filters.Threshold,
			"chart":     filters.ChartType,
		}).Debug("painel: visão montada")

		writeJSON(w, r, http.StatusOK, view)
	}
}

// GetDashboardStats retorna apenas os totais e o crescimento do ano
func GetDashboardStats(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, present, apiErr := parseYearParam(r)
		if apiErr != nil {
			writeAPIError(w, apiErr)
			return
		}
		if !present {
			year = service.DefaultFilters().Year
		}

		stats, err := service.GetYearStats(year)
		if err != nil {
			writeReportingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, stats)
	}
}

// GetDashboardChart retorna somente a especificação do gráfico
func GetDashboardChart(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, apiErr := parseDashboardFilters(r, service.DefaultFilters())
		if apiErr != nil {
			writeAPIError(w, apiErr)
			return
		}

		view, err := service.GetDashboard(filters)
		if err != nil {
			writeReportingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view.Chart)
	}
}
