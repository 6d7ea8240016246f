package handler

import (
	"net/http"

	"github.com/vfg2006/revops-analytics-api/infrastructure/repository"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
	"github.com/vfg2006/revops-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/revops-analytics-api/pkg/log"
)

// GetBenchmarks lista a tabela de benchmarks, com filtros opcionais por tipo
// de métrica e categoria
func GetBenchmarks(repo repository.BenchmarkRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("benchmarks: falha ao carregar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
			return
		}

		metricType := r.URL.Query().Get("metric_type")
		category := r.URL.Query().Get("category")

		if metricType == "" && category == "" {
			respondJSON(w, r, rows)
			return
		}

		filtered := make([]domain.Benchmark, 0, len(rows))
		for _, row := range rows {
			if metricType != "" && row.MetricType != metricType {
				continue
			}
			if category != "" && row.Category != category {
				continue
			}
			filtered = append(filtered, row)
		}

		respondJSON(w, r, filtered)
	})
}
