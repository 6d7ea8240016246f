package handler

import (
	"net/http"

	"github.com/vfg2006/revops-analytics-api/infrastructure/repository"
	"github.com/vfg2006/revops-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/revops-analytics-api/internal/scheduler"
	"github.com/vfg2006/revops-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/revops-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: middleware.MetricsHandler(),
		},
	}
}

func Marketing(repo repository.MarketingRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/marketing/kpis",
			Method:  http.MethodGet,
			Handler: GetMarketingKPIs(repo),
		},
		{
			Path:    "/v1/marketing/channels",
			Method:  http.MethodGet,
			Handler: GetChannelPerformance(repo),
		},
		{
			Path:    "/v1/marketing/funnel",
			Method:  http.MethodGet,
			Handler: GetFunnelBreakdown(repo),
		},
		{
			Path:    "/v1/marketing/trends",
			Method:  http.MethodGet,
			Handler: GetTrendTimeseries(repo),
		},
	}
}

func Pipeline(repo repository.PipelineRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/pipeline/kpis",
			Method:  http.MethodGet,
			Handler: GetPipelineKPIs(repo),
		},
		{
			Path:    "/v1/pipeline/stages",
			Method:  http.MethodGet,
			Handler: GetStageDistribution(repo),
		},
		{
			Path:    "/v1/pipeline/owners",
			Method:  http.MethodGet,
			Handler: GetOwnerPerformance(repo),
		},
		{
			Path:    "/v1/pipeline/stuck",
			Method:  http.MethodGet,
			Handler: GetStuckDeals(repo),
		},
	}
}

func Revenue(repo repository.RevenueRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/revenue/kpis",
			Method:  http.MethodGet,
			Handler: GetRevenueKPIs(repo),
		},
		{
			Path:    "/v1/revenue/segments",
			Method:  http.MethodGet,
			Handler: GetSegmentBreakdown(repo),
		},
		{
			Path:    "/v1/revenue/waterfall",
			Method:  http.MethodGet,
			Handler: GetMRRWaterfall(repo),
		},
		{
			Path:    "/v1/revenue/churn-reasons",
			Method:  http.MethodGet,
			Handler: GetChurnReasons(repo),
		},
		{
			Path:    "/v1/revenue/cohorts",
			Method:  http.MethodGet,
			Handler: GetCohortRetention(repo),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
	}
}

func Benchmarks(repo repository.BenchmarkRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/benchmarks",
			Method:  http.MethodGet,
			Handler: GetBenchmarks(repo),
		},
	}
}

func DatasetRefresh(service *scheduler.DatasetRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets/refresh/run",
			Method:  http.MethodPost,
			Handler: RunDatasetRefresh(service),
		},
		{
			Path:    "/v1/datasets/refresh/status",
			Method:  http.MethodGet,
			Handler: GetDatasetRefreshStatus(service),
		},
	}
}
