package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func marketingFixture() []domain.MarketingRecord {
	return []domain.MarketingRecord{
		{
			Date: day(2024, 1, 1), Channel: "Google Ads", Campaign: "Google Ads_Q1", Segment: "SMB", Geo: "NA",
			Spend: 1234.56, Impressions: 10000, Clicks: 250, Leads: 40,
			MQLs: 20, SQLs: 10, Opportunities: 5, ClosedWon: 2,
			CAC: 617.28, CPL: 30.86, CTR: 0.025, CVRStagewise: 0.5, ROI: 215.4,
		},
		{
			Date: day(2024, 1, 2), Channel: "LinkedIn", Campaign: "LinkedIn_Q1", Segment: "Enterprise", Geo: "EMEA",
			Spend: 980, Impressions: 4000, Clicks: 90, Leads: 12,
			MQLs: 6, SQLs: 3, Opportunities: 2, ClosedWon: 1,
			CAC: 980, CPL: 81.67, CTR: 0.0225, CVRStagewise: 0.5, ROI: 140,
		},
	}
}

func TestMarketingRepository_SalvarECarregar(t *testing.T) {
	path := filepath.Join(t.TempDir(), MarketingFileName)
	repo := NewMarketingRepository(path)

	records := marketingFixture()
	require.NoError(t, repo.SaveAll(records))

	loaded, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestMarketingRepository_ArquivoAusente(t *testing.T) {
	repo := NewMarketingRepository(filepath.Join(t.TempDir(), MarketingFileName))

	_, err := repo.List()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "arquivo de dataset não encontrado")
}

func TestMarketingRepository_ColunasAusentes(t *testing.T) {
	path := filepath.Join(t.TempDir(), MarketingFileName)
	require.NoError(t, os.WriteFile(path, []byte("date,channel,spend\n2024-01-01,Google Ads,1000\n"), 0o644))

	repo := NewMarketingRepository(path)
	_, err := repo.List()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "colunas obrigatórias ausentes")
	assert.Contains(t, err.Error(), "leads")
	assert.Contains(t, err.Error(), "CAC")
}

func TestMarketingRepository_CacheDeLeitura(t *testing.T) {
	path := filepath.Join(t.TempDir(), MarketingFileName)
	repo := NewMarketingRepository(path)
	require.NoError(t, repo.SaveAll(marketingFixture()))

	first, err := repo.List()
	require.NoError(t, err)

	// Com o cache quente, a remoção do arquivo não afeta a leitura
	require.NoError(t, os.Remove(path))

	second, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A invalidação força a releitura do disco, que agora falha
	repo.Invalidate()
	_, err = repo.List()
	require.Error(t, err)
}

func TestRevenueRepository_DataDeChurnOpcional(t *testing.T) {
	path := filepath.Join(t.TempDir(), RevenueFileName)
	repo := NewRevenueRepository(path)

	churnDate := day(2024, 4, 15)
	customers := []domain.RevenueCustomer{
		{
			CustomerID: "CUST_0001", Account: "Account 1", Segment: "Enterprise", Plan: "Enterprise",
			StartDate: day(2023, 11, 1), MRR: 9800.5, NewMRR: 9800.5, ExpansionMRR: 1200,
			ARPA: 9800.5, NRR: 1.122,
		},
		{
			CustomerID: "CUST_0002", Account: "Account 2", Segment: "SMB", Plan: "Starter",
			StartDate: day(2024, 1, 20), ChurnedFlag: true, ChurnDate: &churnDate, ChurnReason: "Price",
		},
	}

	require.NoError(t, repo.SaveAll(customers))

	loaded, err := repo.List()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, customers, loaded)
	assert.Nil(t, loaded[0].ChurnDate)
	require.NotNil(t, loaded[1].ChurnDate)
	assert.Equal(t, churnDate, *loaded[1].ChurnDate)
}

func TestDatasets_SalvarECarregarTudo(t *testing.T) {
	datasets := NewDatasets(t.TempDir())

	created := day(2024, 2, 1)
	payload := &domain.Datasets{
		Marketing: marketingFixture(),
		Pipeline: []domain.PipelineDeal{
			{
				DealID: "DEAL_0001", Account: "Account 1", Segment: "MidMarket", Owner: "Rep 1",
				Stage: domain.StageNegotiation, Amount: 120000, CreatedAt: created,
				ExpectedClose: created.AddDate(0, 2, 0), LastStageChange: created.AddDate(0, 0, 20),
				DaysInStage: 20, Probability: 0.6, ExpectedValue: 72000,
				Status: domain.StatusOpen, SourceChannel: "Webinar",
			},
		},
		Revenue: []domain.RevenueCustomer{
			{
				CustomerID: "CUST_0001", Account: "Account 1", Segment: "SMB", Plan: "Pro",
				StartDate: day(2024, 1, 5), MRR: 450, NewMRR: 450, ARPA: 450, NRR: 1.0,
			},
		},
		Benchmarks: []domain.Benchmark{
			{
				BenchmarkID: "BM_001", MetricType: "CAC", Category: "SMB", Subcategory: "Paid Search",
				TargetValue: 1200, MinValue: 960, MaxValue: 1440,
				Unit: domain.UnitCurrency, Description: "Custo de aquisição alvo para SMB",
			},
		},
	}

	require.NoError(t, datasets.SaveAll(payload))

	loaded, err := datasets.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)
}

func TestDatasets_ArquivoAusenteEhFatal(t *testing.T) {
	dir := t.TempDir()
	datasets := NewDatasets(dir)

	payload := &domain.Datasets{Marketing: marketingFixture()}
	require.NoError(t, datasets.Marketing.SaveAll(payload.Marketing))

	// As demais tabelas não existem em disco
	_, err := datasets.LoadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), PipelineFileName)
}
