package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/revops-analytics-api/infrastructure/repository"
	"github.com/vfg2006/revops-analytics-api/internal/analytics"
	"github.com/vfg2006/revops-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/revops-analytics-api/pkg/log"
)

func GetRevenueKPIs(repo repository.RevenueRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("revenue: filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("revenue: falha ao carregar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
			return
		}

		respondJSON(w, r, analytics.ComputeRevenueKPIs(rows, filters))
	})
}

func GetSegmentBreakdown(repo repository.RevenueRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("revenue: filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("revenue: falha ao carregar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
			return
		}

		respondJSON(w, r, analytics.ComputeSegmentBreakdown(rows, filters))
	})
}

func GetMRRWaterfall(repo repository.RevenueRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("revenue: filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("revenue: falha ao carregar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
			return
		}

		respondJSON(w, r, analytics.ComputeMRRWaterfall(rows, filters))
	})
}

func GetChurnReasons(repo repository.RevenueRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("revenue: filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("revenue: falha ao carregar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
			return
		}

		respondJSON(w, r, analytics.ComputeChurnReasons(rows, filters))
	})
}

func GetCohortRetention(repo repository.RevenueRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("revenue: filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		months := analytics.DefaultCohortMonths
		if raw := r.URL.Query().Get("months"); raw != "" {
			if months, err = strconv.Atoi(raw); err != nil || months <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "months inválido", nil)
				return
			}
		}

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("revenue: falha ao carregar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
			return
		}

		respondJSON(w, r, analytics.ComputeCohortRetention(rows, filters, months, time.Now().UTC()))
	})
}
