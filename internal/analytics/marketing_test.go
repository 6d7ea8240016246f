package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(t time.Time) *time.Time {
	return &t
}

func TestComputeMarketingKPIs(t *testing.T) {
	rows := []domain.MarketingRecord{
		{Date: day(2024, 1, 1), Channel: "Google Ads", Spend: 100, Leads: 10, MQLs: 6, SQLs: 3, CAC: 50, ROI: 200},
		{Date: day(2024, 1, 2), Channel: "LinkedIn", Spend: 300, Leads: 4, MQLs: 2, SQLs: 1, CAC: 150, ROI: 100},
	}

	kpis := ComputeMarketingKPIs(rows, nil)

	assert.Equal(t, 400.0, kpis.TotalSpend)
	assert.Equal(t, 14, kpis.TotalLeads)
	assert.Equal(t, 8, kpis.TotalMQLs)
	assert.Equal(t, 4, kpis.TotalSQLs)
	assert.Equal(t, 100.0, kpis.AvgCAC)
	assert.Equal(t, 150.0, kpis.AvgROI)
}

func TestComputeMarketingKPIs_TabelaVazia(t *testing.T) {
	kpis := ComputeMarketingKPIs(nil, nil)

	assert.Zero(t, kpis.TotalSpend)
	assert.Zero(t, kpis.AvgCAC)
	assert.Zero(t, kpis.AvgROI)
}

func TestComputeChannelPerformance(t *testing.T) {
	tests := []struct {
		name     string
		rows     []domain.MarketingRecord
		filters  *domain.FilterSet
		validate func(t *testing.T, result []ChannelPerformance)
	}{
		{
			name: "Registro único de Google Ads com métricas derivadas exatas",
			rows: []domain.MarketingRecord{
				{
					Date:      day(2024, 1, 1),
					Channel:   "Google Ads",
					Spend:     1000,
					Leads:     100,
					ClosedWon: 10,
					CAC:       100,
					ROI:       250,
				},
			},
			validate: func(t *testing.T, result []ChannelPerformance) {
				assert.Len(t, result, 1)
				assert.Equal(t, "Google Ads", result[0].Channel)
				assert.Equal(t, 10.0, result[0].ConversionRate)
				assert.Equal(t, 100.0, result[0].CAC)
				assert.Equal(t, 250.0, result[0].ROIPercentage)
			},
		},
		{
			name: "Ordenado por gasto decrescente com desempate por canal",
			rows: []domain.MarketingRecord{
				{Date: day(2024, 1, 1), Channel: "LinkedIn", Spend: 500, Leads: 10, ClosedWon: 1},
				{Date: day(2024, 1, 2), Channel: "Google Ads", Spend: 800, Leads: 20, ClosedWon: 4},
				{Date: day(2024, 1, 3), Channel: "Meta Ads", Spend: 500, Leads: 15, ClosedWon: 2},
			},
			validate: func(t *testing.T, result []ChannelPerformance) {
				assert.Len(t, result, 3)
				assert.Equal(t, "Google Ads", result[0].Channel)
				assert.Equal(t, "LinkedIn", result[1].Channel)
				assert.Equal(t, "Meta Ads", result[2].Channel)
			},
		},
		{
			name: "Filtro de canal único restringe o resultado àquele canal",
			rows: []domain.MarketingRecord{
				{Date: day(2024, 1, 1), Channel: "Google Ads", Spend: 800, Leads: 20, ClosedWon: 4},
				{Date: day(2024, 1, 2), Channel: "LinkedIn", Spend: 500, Leads: 10, ClosedWon: 1},
			},
			filters: &domain.FilterSet{Channels: []string{"LinkedIn"}},
			validate: func(t *testing.T, result []ChannelPerformance) {
				assert.Len(t, result, 1)
				assert.Equal(t, "LinkedIn", result[0].Channel)
				assert.Equal(t, 500.0, result[0].Spend)
			},
		},
		{
			name: "Canal sem leads não divide por zero",
			rows: []domain.MarketingRecord{
				{Date: day(2024, 1, 1), Channel: "Events", Spend: 200, Leads: 0, ClosedWon: 0},
			},
			validate: func(t *testing.T, result []ChannelPerformance) {
				assert.Len(t, result, 1)
				assert.Zero(t, result[0].ConversionRate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ComputeChannelPerformance(tt.rows, tt.filters))
		})
	}
}

func TestComputeFunnelBreakdown(t *testing.T) {
	rows := []domain.MarketingRecord{
		{Date: day(2024, 1, 1), Leads: 100, MQLs: 60, SQLs: 30, Opportunities: 15, ClosedWon: 5},
		{Date: day(2024, 1, 2), Leads: 50, MQLs: 30, SQLs: 12, Opportunities: 6, ClosedWon: 2},
	}

	funnel := ComputeFunnelBreakdown(rows, nil)

	expected := []FunnelStage{
		{Stage: "Leads", Count: 150},
		{Stage: "MQLs", Count: 90},
		{Stage: "SQLs", Count: 42},
		{Stage: "Opportunities", Count: 21},
		{Stage: "Closed Won", Count: 7},
	}
	assert.Equal(t, expected, funnel)
}

func TestComputeTrendTimeseries(t *testing.T) {
	// Semanas ISO: 2024-01-01 e 2024-01-15 são segundas-feiras, com uma
	// semana sem registros entre elas
	rows := []domain.MarketingRecord{
		{Date: day(2024, 1, 2), Leads: 10, MQLs: 6, SQLs: 3},
		{Date: day(2024, 1, 3), Leads: 5, MQLs: 3, SQLs: 1},
		{Date: day(2024, 1, 16), Leads: 8, MQLs: 4, SQLs: 2},
	}

	trend := ComputeTrendTimeseries(rows, nil)

	assert.Len(t, trend, 3)
	assert.Equal(t, day(2024, 1, 1), trend[0].Date)
	assert.Equal(t, 15, trend[0].Leads)
	assert.Equal(t, 9, trend[0].MQLs)

	// A semana intermediária aparece zerada
	assert.Equal(t, day(2024, 1, 8), trend[1].Date)
	assert.Zero(t, trend[1].Leads)

	assert.Equal(t, day(2024, 1, 15), trend[2].Date)
	assert.Equal(t, 8, trend[2].Leads)
}

func TestComputeTrendTimeseries_TabelaVazia(t *testing.T) {
	assert.Empty(t, ComputeTrendTimeseries(nil, nil))
}
