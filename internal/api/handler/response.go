package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

func writeAPIError(w http.ResponseWriter, apiErr *apiErrors.APIError) {
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}

// writeReportingError traduz erros do relatório para a resposta padronizada
func writeReportingError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var reportingErr *reporting.ReportingError
	if errors.As(err, &reportingErr) {
		if reporting.IsValidationError(err) {
			logger.Warn("relatório: filtro inválido")
		} else {
			logger.Error("relatório: falha ao montar resposta")
		}
		apiErr := apiErrors.FromError(reportingErr.Err, reportingErr.Code)
		writeAPIError(w, &apiErr)
		return
	}

	logger.Error("relatório: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar relatório", nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	if err := utils.WriteJSON(w, status, body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}
