package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-console-api/internal/scheduler"
	"github.com/vfg2006/ads-console-api/pkg/apiErrors"
)

// RunExportNow executa imediatamente um job de exportação específico,
// ignorando o horário agendado ("exportar agora" no console).
func RunExportNow(syncService *scheduler.ExportSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunExportNow")

		configID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if configID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do job de exportação não especificado", nil)
			return
		}

		if err := syncService.RunExportByID(r.Context(), configID); err != nil {
			logrus.WithError(err).WithField("config_id", configID).
				Error("Erro na execução manual do job de exportação")

			if errors.Is(err, scheduler.ErrExportConfigNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		response := map[string]any{
			"message":   "Exportação executada",
			"config_id": configID,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// TriggerExportTick inicia manualmente um tick de avaliação dos jobs
func TriggerExportTick(syncService *scheduler.ExportSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerExportTick")

		syncService.TriggerManualSync()

		response := map[string]any{
			"message": "Tick de exportações iniciado com sucesso",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetExportCronStatus retorna o status do agendador de exportações
func GetExportCronStatus(syncService *scheduler.ExportSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetExportCronStatus")

		json.NewEncoder(w).Encode(syncService.GetStatus())
	}
}
