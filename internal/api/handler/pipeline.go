package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/revops-analytics-api/infrastructure/repository"
	"github.com/vfg2006/revops-analytics-api/internal/analytics"
	"github.com/vfg2006/revops-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/revops-analytics-api/pkg/log"
)

func GetPipelineKPIs(repo repository.PipelineRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("pipeline: filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("pipeline: falha ao carregar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
			return
		}

		respondJSON(w, r, analytics.ComputePipelineKPIs(rows, filters))
	})
}

func GetStageDistribution(repo repository.PipelineRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("pipeline: filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("pipeline: falha ao carregar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
			return
		}

		respondJSON(w, r, analytics.ComputeStageDistribution(rows, filters))
	})
}

func GetOwnerPerformance(repo repository.PipelineRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("pipeline: filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("pipeline: falha ao carregar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
			return
		}

		respondJSON(w, r, analytics.ComputeOwnerPerformance(rows, filters))
	})
}

func GetStuckDeals(repo repository.PipelineRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("pipeline: filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		thresholdDays := analytics.DefaultStuckThresholdDays
		if raw := r.URL.Query().Get("threshold_days"); raw != "" {
			if thresholdDays, err = strconv.Atoi(raw); err != nil || thresholdDays < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "threshold_days inválido", nil)
				return
			}
		}

		minAmount := analytics.DefaultStuckMinAmount
		if raw := r.URL.Query().Get("min_amount"); raw != "" {
			if minAmount, err = strconv.ParseFloat(raw, 64); err != nil || minAmount < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "min_amount inválido", nil)
				return
			}
		}

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("pipeline: falha ao carregar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
			return
		}

		respondJSON(w, r, analytics.ComputeStuckDeals(rows, filters, thresholdDays, minAmount))
	})
}
