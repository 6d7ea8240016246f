package handler

import (
	"net/http"

	"github.com/vfg2006/revops-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/revops-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/revops-analytics-api/pkg/log"
)

func GetInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("insights: filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		insights, err := service.GenerateInsights(filters)
		if err != nil {
			logger.WithError(err).Error("insights: falha ao gerar insights")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithField("insights", len(insights)).Info("insights: geração concluída")
		respondJSON(w, r, insights)
	})
}
