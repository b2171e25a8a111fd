package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeYearlyTotals = "yearly-totals"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	YearlyTotalsSyncService scheduler.Job
}

func (s CronJobServices) byType(cronType string) (scheduler.Job, bool) {
	switch cronType {
	case CronJobTypeYearlyTotals:
		return s.YearlyTotalsSyncService, true
	default:
		return nil, false
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, known := services.byType(cronType)
		if !known {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypeYearlyTotals, nil)
			return
		}
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrJobUnavailable, "Serviço de sincronização não disponível (requer SALES_SOURCE=postgres)", nil)
			return
		}

		started := job.TriggerManualSync()
		logger.WithField("type", cronType).Infof("cron: disparo manual (iniciada=%t)", started)

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já está em execução"
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status de uma cron job
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, known := services.byType(cronType)
		if !known {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cron job desconhecida: "+cronType, nil)
			return
		}

		status := map[string]any{"available": false}
		if job != nil {
			status = job.GetStatus()
			status["available"] = true

			if lister, ok := job.(scheduler.SnapshotLister); ok {
				snapshots, err := lister.Snapshots()
				if err != nil {
					log.ForContext(r.Context()).WithError(err).Warn("cron: falha ao listar snapshots")
					status["snapshots_error"] = err.Error()
				} else {
					status["snapshots"] = snapshots
				}
			}
		}

		writeJSON(w, r, http.StatusOK, map[string]any{cronType: status})
	}
}
