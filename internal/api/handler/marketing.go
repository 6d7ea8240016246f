package handler

import (
	"net/http"

	"github.com/vfg2006/revops-analytics-api/infrastructure/repository"
	"github.com/vfg2006/revops-analytics-api/internal/analytics"
	"github.com/vfg2006/revops-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/revops-analytics-api/pkg/log"
)

func GetMarketingKPIs(repo repository.MarketingRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("marketing: filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("marketing: falha ao carregar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
			return
		}

		respondJSON(w, r, analytics.ComputeMarketingKPIs(rows, filters))
	})
}

func GetChannelPerformance(repo repository.MarketingRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("marketing: filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("marketing: falha ao carregar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
			return
		}

		respondJSON(w, r, analytics.ComputeChannelPerformance(rows, filters))
	})
}

func GetFunnelBreakdown(repo repository.MarketingRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("marketing: filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("marketing: falha ao carregar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
			return
		}

		respondJSON(w, r, analytics.ComputeFunnelBreakdown(rows, filters))
	})
}

func GetTrendTimeseries(repo repository.MarketingRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("marketing: filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("marketing: falha ao carregar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
			return
		}

		respondJSON(w, r, analytics.ComputeTrendTimeseries(rows, filters))
	})
}
