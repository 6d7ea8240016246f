package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revops-analytics-api/internal/scheduler"
	"github.com/vfg2006/revops-analytics-api/pkg/apiErrors"
)

// RunDatasetRefresh dispara manualmente a regeneração dos datasets
func RunDatasetRefresh(service *scheduler.DatasetRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunDatasetRefresh")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de regeneração de datasets não disponível", nil)
			return
		}

		service.TriggerManualRefresh()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"status":  "accepted",
			"message": "Regeneração dos datasets iniciada",
		}); err != nil {
			logrus.WithError(err).Error("refresh: falha ao serializar resposta")
		}
	})
}

// GetDatasetRefreshStatus retorna o status do agendador de regeneração
func GetDatasetRefreshStatus(service *scheduler.DatasetRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de regeneração de datasets não disponível", nil)
			return
		}

		respondJSON(w, r, service.GetStatus())
	})
}
