package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
)

// CronJobTypeKarrotSync é o único job executável manualmente
const CronJobTypeKarrotSync = "karrot-sync"

// ManualSyncer é implementado pelos jobs agendados
type ManualSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	KarrotMetricsSyncService ManualSyncer
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeKarrotSync:
			if services.KarrotMetricsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "Serviço de sincronização do Karrot não disponível", nil)
				return
			}

			if !services.KarrotMetricsSyncService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "Sincronização do Karrot já está em execução", nil)
				return
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: karrot-sync", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.KarrotMetricsSyncService != nil {
			status[CronJobTypeKarrotSync] = services.KarrotMetricsSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
