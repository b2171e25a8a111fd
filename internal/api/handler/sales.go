package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetSales retorna os registros de um ano, ou todos quando year não é informado
func GetSales(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, present, apiErr := parseYearParam(r)
		if apiErr != nil {
			writeAPIError(w, apiErr)
			return
		}

		var (
			records []domain.SalesRecord
			err     error
		)
		if present {
			records, err = service.GetDataByYear(year)
		} else {
			records, err = service.GetAllRecords()
		}
		if err != nil {
			writeReportingError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("year", year).Debugf("vendas: %d registros", len(records))

		writeJSON(w, r, http.StatusOK, records)
	}
}

// GetYearlyTotals retorna um total por ano
func GetYearlyTotals(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		totals, err := service.GetYearlyTotals()
		if err != nil {
			writeReportingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, totals)
	}
}

// GetAvailableYears lista os anos disponíveis para o filtro do painel
func GetAvailableYears(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		years, err := service.GetAvailableYears()
		if err != nil {
			writeReportingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"years":   years,
			"default": service.DefaultFilters().Year,
		})
	}
}
