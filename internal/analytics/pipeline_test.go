package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
)

func pipelineFixture() []domain.PipelineDeal {
	return []domain.PipelineDeal{
		{
			DealID:        "D-001",
			Segment:       "ENT",
			Owner:         "Alice Chen",
			Stage:         domain.StageNegotiation,
			Status:        domain.StatusOpen,
			Amount:        100000,
			Probability:   0.6,
			ExpectedValue: 60000,
			DaysInStage:   50,
			CreatedAt:     day(2024, 1, 5),
		},
		{
			DealID:        "D-002",
			Segment:       "SMB",
			Owner:         "Alice Chen",
			Stage:         domain.StageDiscovery,
			Status:        domain.StatusOpen,
			Amount:        20000,
			Probability:   0.1,
			ExpectedValue: 2000,
			DaysInStage:   10,
			CreatedAt:     day(2024, 1, 10),
		},
		{
			DealID:      "D-003",
			Segment:     "MM",
			Owner:       "Bruno Dias",
			Stage:       domain.StageClosedWon,
			Status:      "Won",
			Amount:      50000,
			Probability: 1.0,
			DaysInStage: 5,
			CreatedAt:   day(2024, 2, 1),
		},
		{
			DealID:      "D-004",
			Segment:     "SMB",
			Owner:       "Bruno Dias",
			Stage:       domain.StageClosedLost,
			Status:      "Lost",
			Amount:      30000,
			Probability: 0.0,
			DaysInStage: 8,
			CreatedAt:   day(2024, 2, 10),
		},
	}
}

func TestComputePipelineKPIs(t *testing.T) {
	kpis := ComputePipelineKPIs(pipelineFixture(), nil)

	// Apenas negócios abertos compõem o pipeline
	assert.Equal(t, 120000.0, kpis.TotalPipeline)
	assert.Equal(t, 62000.0, kpis.WeightedPipeline)

	// O pipeline total nunca fica abaixo do ponderado
	assert.GreaterOrEqual(t, kpis.TotalPipeline, kpis.WeightedPipeline)

	// Ticket médio considera a tabela toda
	assert.Equal(t, 50000.0, kpis.AvgDealSize)

	// 1 ganho e 1 perdido
	assert.Equal(t, 50.0, kpis.WinRate)

	// Velocity = ponderado / média de dias parados dos abertos (50+10)/2 = 30
	assert.InDelta(t, 62000.0/30.0, kpis.Velocity, 1e-9)
}

func TestComputePipelineKPIs_TabelaVazia(t *testing.T) {
	kpis := ComputePipelineKPIs(nil, nil)

	assert.Zero(t, kpis.TotalPipeline)
	assert.Zero(t, kpis.WinRate)
	assert.Zero(t, kpis.Velocity)
}

func TestComputeStageDistribution(t *testing.T) {
	dist := ComputeStageDistribution(pipelineFixture(), nil)

	assert.Len(t, dist, 4)
	// Ordenado por valor decrescente
	assert.Equal(t, domain.StageNegotiation, dist[0].Stage)
	assert.Equal(t, 100000.0, dist[0].Amount)
	assert.Equal(t, domain.StageClosedWon, dist[1].Stage)
	assert.Equal(t, domain.StageClosedLost, dist[2].Stage)
	assert.Equal(t, domain.StageDiscovery, dist[3].Stage)
}

func TestComputeOwnerPerformance(t *testing.T) {
	perf := ComputeOwnerPerformance(pipelineFixture(), nil)

	assert.Len(t, perf, 2)

	// Alice lidera por valor total (120k contra 80k)
	assert.Equal(t, "Alice Chen", perf[0].Owner)
	assert.Equal(t, 2, perf[0].Deals)
	assert.Equal(t, 120000.0, perf[0].TotalAmount)
	assert.Zero(t, perf[0].WinRate)

	assert.Equal(t, "Bruno Dias", perf[1].Owner)
	assert.Equal(t, 1, perf[1].WonDeals)
	assert.Equal(t, 1, perf[1].LostDeals)
	assert.Equal(t, 50.0, perf[1].WinRate)
}

func TestComputeStuckDeals(t *testing.T) {
	tests := []struct {
		name          string
		thresholdDays int
		minAmount     float64
		validate      func(t *testing.T, result []domain.PipelineDeal)
	}{
		{
			name:          "Limiar padrão pega apenas o negócio grande e parado",
			thresholdDays: DefaultStuckThresholdDays,
			minAmount:     DefaultStuckMinAmount,
			validate: func(t *testing.T, result []domain.PipelineDeal) {
				assert.Len(t, result, 1)
				assert.Equal(t, "D-001", result[0].DealID)
			},
		},
		{
			name:          "Limiar baixo inclui os dois negócios abertos",
			thresholdDays: 5,
			minAmount:     0,
			validate: func(t *testing.T, result []domain.PipelineDeal) {
				assert.Len(t, result, 2)
				// Ordenado por tempo parado decrescente
				assert.Equal(t, "D-001", result[0].DealID)
				assert.Equal(t, "D-002", result[1].DealID)
			},
		},
		{
			name:          "Negócios fechados nunca aparecem",
			thresholdDays: 0,
			minAmount:     0,
			validate: func(t *testing.T, result []domain.PipelineDeal) {
				for _, deal := range result {
					assert.True(t, deal.IsOpen())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ComputeStuckDeals(pipelineFixture(), nil, tt.thresholdDays, tt.minAmount))
		})
	}
}

func TestComputeStuckDeals_FiltroDeCanalNaoSeAplica(t *testing.T) {
	// A tabela de pipeline não tem a dimensão de canal; o filtro é um no-op
	filters := &domain.FilterSet{Channels: []string{"Google Ads"}}
	result := ComputeStuckDeals(pipelineFixture(), filters, 5, 0)

	assert.Len(t, result, 2)
}
