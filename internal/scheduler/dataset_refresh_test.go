package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revops-analytics-api/infrastructure/repository"
	"github.com/vfg2006/revops-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/revops-analytics-api/internal/config"
	"github.com/vfg2006/revops-analytics-api/internal/usecases/generating"
	"go.uber.org/mock/gomock"
)

func testAppConfig(enabled bool) *config.Config {
	return &config.Config{
		DatasetRefresh: config.DatasetRefresh{
			CronSchedule: "0 3 * * *",
			Enabled:      enabled,
		},
	}
}

func testGenerator() generating.Generator {
	return generating.NewService(generating.Params{
		Seed:          42,
		Days:          7,
		TopChannels:   2,
		NumDeals:      10,
		NumCustomers:  10,
		ReferenceDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})
}

func testDatasets(ctrl *gomock.Controller) (*repository.Datasets, *mocks.MockMarketingRepository, *mocks.MockPipelineRepository, *mocks.MockRevenueRepository, *mocks.MockBenchmarkRepository) {
	marketingRepo := mocks.NewMockMarketingRepository(ctrl)
	pipelineRepo := mocks.NewMockPipelineRepository(ctrl)
	revenueRepo := mocks.NewMockRevenueRepository(ctrl)
	benchmarkRepo := mocks.NewMockBenchmarkRepository(ctrl)

	datasets := &repository.Datasets{
		Marketing:  marketingRepo,
		Pipeline:   pipelineRepo,
		Revenue:    revenueRepo,
		Benchmarks: benchmarkRepo,
	}

	return datasets, marketingRepo, pipelineRepo, revenueRepo, benchmarkRepo
}

func TestRefreshDatasets_PersisteAsQuatroTabelas(t *testing.T) {
	ctrl := gomock.NewController(t)
	datasets, marketingRepo, pipelineRepo, revenueRepo, benchmarkRepo := testDatasets(ctrl)

	marketingRepo.EXPECT().SaveAll(gomock.Any()).Return(nil)
	pipelineRepo.EXPECT().SaveAll(gomock.Any()).Return(nil)
	revenueRepo.EXPECT().SaveAll(gomock.Any()).Return(nil)
	benchmarkRepo.EXPECT().SaveAll(gomock.Any()).Return(nil)

	service := NewDatasetRefreshService(datasets, testGenerator(), testAppConfig(true))
	service.refreshDatasets()

	assert.False(t, service.lastRefreshStartedAt.IsZero())
	assert.False(t, service.lastRefreshCompletedAt.IsZero())
	assert.False(t, service.refreshRunning)
}

func TestRefreshDatasets_ErroDePersistenciaNaoMarcaConclusao(t *testing.T) {
	ctrl := gomock.NewController(t)
	datasets, marketingRepo, _, _, _ := testDatasets(ctrl)

	marketingRepo.EXPECT().SaveAll(gomock.Any()).Return(assert.AnError)

	service := NewDatasetRefreshService(datasets, testGenerator(), testAppConfig(true))
	service.refreshDatasets()

	assert.False(t, service.lastRefreshStartedAt.IsZero())
	assert.True(t, service.lastRefreshCompletedAt.IsZero())
	assert.False(t, service.refreshRunning)
}

func TestStart_DesabilitadoNaoAgenda(t *testing.T) {
	ctrl := gomock.NewController(t)
	datasets, _, _, _, _ := testDatasets(ctrl)

	service := NewDatasetRefreshService(datasets, testGenerator(), testAppConfig(false))

	err := service.Start(context.Background())
	require.NoError(t, err)
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	datasets, _, _, _, _ := testDatasets(ctrl)

	service := NewDatasetRefreshService(datasets, testGenerator(), testAppConfig(true))
	status := service.GetStatus()

	assert.Equal(t, true, status["refresh_enabled"])
	assert.Equal(t, "0 3 * * *", status["refresh_cron"])
	assert.Contains(t, status, "last_refresh_started_at")
	assert.Contains(t, status, "last_refresh_completed_at")
}
