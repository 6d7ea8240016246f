package insighting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revops-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func newServiceWithMocks(t *testing.T) (Insighter, *mocks.MockMarketingRepository, *mocks.MockPipelineRepository, *mocks.MockRevenueRepository) {
	ctrl := gomock.NewController(t)

	marketingRepo := mocks.NewMockMarketingRepository(ctrl)
	pipelineRepo := mocks.NewMockPipelineRepository(ctrl)
	revenueRepo := mocks.NewMockRevenueRepository(ctrl)

	return NewService(marketingRepo, pipelineRepo, revenueRepo), marketingRepo, pipelineRepo, revenueRepo
}

func TestGenerateInsights_TabelasVazias(t *testing.T) {
	service, marketingRepo, pipelineRepo, revenueRepo := newServiceWithMocks(t)

	marketingRepo.EXPECT().List().Return(nil, nil)
	pipelineRepo.EXPECT().List().Return(nil, nil)
	revenueRepo.EXPECT().List().Return(nil, nil)

	insights, err := service.GenerateInsights(nil)
	require.NoError(t, err)

	// Com KPIs zerados, as regras de limiar mínimo (win rate, velocity e NRR)
	// disparam mesmo sem dados; as regras que dependem de linhas não
	require.Len(t, insights, 3)

	assert.Equal(t, domain.InsightCategoryPipeline, insights[0].Category)
	assert.Contains(t, insights[0].Message, "Win rate at 0.0%")

	assert.Equal(t, domain.InsightCategoryPipeline, insights[1].Category)
	assert.Contains(t, insights[1].Message, "Pipeline velocity is low")

	assert.Equal(t, domain.InsightCategoryRevenue, insights[2].Category)
	assert.Contains(t, insights[2].Message, "Net revenue retention below 105%")
}

func TestMarketingInsights(t *testing.T) {
	rows := []domain.MarketingRecord{
		{
			Date:      day(2024, 1, 1),
			Channel:   "Google Ads",
			Spend:     10000,
			Leads:     100,
			ClosedWon: 2,
			CAC:       5000,
			ROI:       150,
		},
		{
			Date:      day(2024, 1, 2),
			Channel:   "LinkedIn",
			Spend:     2000,
			Leads:     50,
			ClosedWon: 5,
			CAC:       400,
			ROI:       200,
		},
	}

	service, marketingRepo, _, _ := newServiceWithMocks(t)
	marketingRepo.EXPECT().List().Return(rows, nil)

	insights, err := service.MarketingInsights(nil)
	require.NoError(t, err)

	// Maior gasto, pior conversão e eficiência abaixo da meta disparam juntos
	require.Len(t, insights, 3)

	best := insights[0]
	assert.Equal(t, domain.InsightCategoryMarketing, best.Category)
	assert.NotEmpty(t, best.ID)
	assert.Contains(t, best.Message, "Google Ads")
	assert.Contains(t, best.Message, "$10,000")
	assert.Equal(t, "Google Ads", best.DataPoints["channel"])
	assert.Equal(t, 10000.0, best.DataPoints["spend"])
	assert.Equal(t, 150.0, best.DataPoints["roi"])
	assert.InDelta(t, 0.3, best.Confidence, 1e-9)

	worst := insights[1]
	assert.Contains(t, worst.Message, "lowest lead→close conversion")
	assert.Equal(t, "Google Ads", worst.DataPoints["channel"])
	assert.Equal(t, 0.4, worst.Confidence)

	efficiency := insights[2]
	assert.Contains(t, efficiency.Message, "Average ROI is trending below 200%")
	assert.Equal(t, 0.35, efficiency.Confidence)
}

func TestPipelineInsights_NegociosTravados(t *testing.T) {
	deals := []domain.PipelineDeal{
		{
			DealID:      "DEAL_0001",
			Stage:       domain.StageNegotiation,
			Status:      domain.StatusOpen,
			Amount:      600000,
			DaysInStage: 90,
			CreatedAt:   day(2024, 1, 1),
		},
		{
			DealID:      "DEAL_0002",
			Stage:       domain.StageClosedLost,
			Status:      domain.StageClosedLost,
			Amount:      50000,
			DaysInStage: 10,
			CreatedAt:   day(2024, 2, 1),
		},
	}

	service, _, pipelineRepo, _ := newServiceWithMocks(t)
	pipelineRepo.EXPECT().List().Return(deals, nil)

	insights, err := service.PipelineInsights(nil)
	require.NoError(t, err)

	// Win rate 0%, um negócio travado e velocity baixa (nenhum ganho)
	require.Len(t, insights, 3)

	winRate := insights[0]
	assert.Contains(t, winRate.Message, "Win rate at 0.0%")
	assert.Equal(t, 0.45, winRate.Confidence)

	stuck := insights[1]
	assert.Equal(t, domain.InsightCategoryPipeline, stuck.Category)
	assert.Contains(t, stuck.Message, "1 deals worth $600,000")
	assert.Equal(t, []string{"DEAL_0001"}, stuck.DataPoints["deal_ids"])
	assert.Equal(t, 600000.0, stuck.DataPoints["total_amount"])
	// Confiança proporcional ao valor travado: 600k / 5M = 0.12
	assert.InDelta(t, 0.12, stuck.Confidence, 1e-9)
}

func TestRevenueInsights_ChurnElevado(t *testing.T) {
	churnDate := day(2024, 3, 1)
	customers := []domain.RevenueCustomer{
		{
			CustomerID: "CUST_0001", Segment: "SMB", StartDate: day(2024, 1, 1),
			MRR: 1000, NRR: 1.0,
		},
		{
			CustomerID: "CUST_0002", Segment: "SMB", StartDate: day(2024, 1, 15),
			ChurnedFlag: true, ChurnDate: &churnDate, ChurnReason: "Price",
		},
	}

	service, _, _, revenueRepo := newServiceWithMocks(t)
	revenueRepo.EXPECT().List().Return(customers, nil)

	insights, err := service.RevenueInsights(nil)
	require.NoError(t, err)

	// Churn de 50%, motivo principal "Price" e NRR média de 100%
	require.Len(t, insights, 3)

	churn := insights[0]
	assert.Equal(t, domain.InsightCategoryRevenue, churn.Category)
	assert.Contains(t, churn.Message, "Churn rate at 50.0%")
	assert.Equal(t, 0.5, churn.Confidence)

	reason := insights[1]
	assert.Contains(t, reason.Message, "Primary churn driver: Price (1 accounts)")
	assert.Equal(t, "SMB", reason.DataPoints["segment"])
	assert.Equal(t, 1, reason.DataPoints["count"])

	nrr := insights[2]
	assert.Contains(t, nrr.Message, "Net revenue retention below 105%")
}

func TestGenerateInsights_ErroDoRepositorio(t *testing.T) {
	service, marketingRepo, _, _ := newServiceWithMocks(t)

	marketingRepo.EXPECT().List().Return(nil, errors.New("arquivo de dataset não encontrado"))

	insights, err := service.GenerateInsights(nil)

	require.Error(t, err)
	assert.Nil(t, insights)
}

func TestInsights_ConfiancaDentroDosLimites(t *testing.T) {
	// ROI altíssimo não pode estourar o teto de confiança
	rows := []domain.MarketingRecord{
		{Date: day(2024, 1, 1), Channel: "Referral", Spend: 100, Leads: 10, ClosedWon: 5, CAC: 20, ROI: 5000},
	}

	service, marketingRepo, _, _ := newServiceWithMocks(t)
	marketingRepo.EXPECT().List().Return(rows, nil)

	insights, err := service.MarketingInsights(nil)
	require.NoError(t, err)
	require.NotEmpty(t, insights)

	for _, insight := range insights {
		assert.GreaterOrEqual(t, insight.Confidence, 0.05)
		assert.LessOrEqual(t, insight.Confidence, 0.95)
	}
}
