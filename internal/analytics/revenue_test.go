package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
)

func revenueFixture() []domain.RevenueCustomer {
	churn1 := day(2024, 3, 10)
	churn2 := day(2024, 4, 2)
	return []domain.RevenueCustomer{
		{
			CustomerID: "C-001", Segment: "ENT", Plan: "Enterprise",
			StartDate: day(2024, 1, 5), MRR: 10000, NewMRR: 10000,
			ExpansionMRR: 2000, NRR: 1.2,
		},
		{
			CustomerID: "C-002", Segment: "SMB", Plan: "Starter",
			StartDate: day(2024, 1, 20), MRR: 500, NewMRR: 500,
			ContractionMRR: 100, NRR: 0.8,
		},
		{
			CustomerID: "C-003", Segment: "SMB", Plan: "Starter",
			StartDate: day(2024, 2, 1), ChurnedFlag: true,
			ChurnDate: &churn1, ChurnReason: "Price",
		},
		{
			CustomerID: "C-004", Segment: "SMB", Plan: "Growth",
			StartDate: day(2024, 2, 15), ChurnedFlag: true,
			ChurnDate: &churn2, ChurnReason: "Price",
		},
		{
			CustomerID: "C-005", Segment: "MM", Plan: "Growth",
			StartDate: day(2024, 4, 10), ChurnedFlag: true,
			ChurnDate: nil, ChurnReason: "Competitor",
		},
	}
}

func TestComputeRevenueKPIs(t *testing.T) {
	kpis := ComputeRevenueKPIs(revenueFixture(), nil)

	// MRR e ARR somam apenas os clientes ativos
	assert.Equal(t, 10500.0, kpis.TotalMRR)
	assert.Equal(t, 126000.0, kpis.TotalARR)

	// NRR média dos ativos, em percentual
	assert.InDelta(t, 100.0, kpis.AvgNRR, 1e-9)

	// Churn sobre a base inteira: 3 de 5
	assert.Equal(t, 60.0, kpis.ChurnRate)
}

func TestComputeRevenueKPIs_TabelaVazia(t *testing.T) {
	kpis := ComputeRevenueKPIs(nil, nil)

	assert.Zero(t, kpis.TotalMRR)
	assert.Zero(t, kpis.AvgNRR)
	assert.Zero(t, kpis.ChurnRate)
}

func TestComputeSegmentBreakdown(t *testing.T) {
	breakdown := ComputeSegmentBreakdown(revenueFixture(), nil)

	assert.Len(t, breakdown, 3)

	// Ordenado por MRR decrescente
	assert.Equal(t, "ENT", breakdown[0].Segment)
	assert.Equal(t, 10000.0, breakdown[0].MRR)
	assert.Equal(t, 2000.0, breakdown[0].Expansion)

	assert.Equal(t, "SMB", breakdown[1].Segment)
	assert.Equal(t, 3, breakdown[1].Customers)
	assert.Equal(t, 2, breakdown[1].Churned)

	assert.Equal(t, "MM", breakdown[2].Segment)
	assert.Equal(t, 1, breakdown[2].Churned)
}

func TestComputeMRRWaterfall(t *testing.T) {
	waterfall := ComputeMRRWaterfall(revenueFixture(), nil)

	// Janeiro a abril, com março vazio preenchido com zeros
	assert.Len(t, waterfall, 4)
	assert.Equal(t, "2024-01", waterfall[0].Period)
	assert.Equal(t, "2024-03", waterfall[2].Period)
	assert.Zero(t, waterfall[2].StartingMRR)

	// A identidade aditiva vale para toda linha
	for _, entry := range waterfall {
		expected := entry.StartingMRR + entry.ExpansionMRR - entry.ContractionMRR + entry.NewMRR - entry.ChurnMRR
		assert.InDelta(t, expected, entry.EndingMRR, 1e-9, "período %s", entry.Period)
	}
}

func TestComputeMRRWaterfall_TabelaVazia(t *testing.T) {
	assert.Empty(t, ComputeMRRWaterfall(nil, nil))
}

func TestComputeChurnReasons(t *testing.T) {
	reasons := ComputeChurnReasons(revenueFixture(), nil)

	assert.Len(t, reasons, 2)

	// Ordenado por contagem decrescente
	assert.Equal(t, ChurnReason{Segment: "SMB", Reason: "Price", Count: 2}, reasons[0])
	assert.Equal(t, ChurnReason{Segment: "MM", Reason: "Competitor", Count: 1}, reasons[1])
}

func TestComputeChurnReasons_ClientesAtivosIgnorados(t *testing.T) {
	rows := []domain.RevenueCustomer{
		{CustomerID: "C-001", Segment: "SMB", StartDate: day(2024, 1, 1)},
	}

	assert.Empty(t, ComputeChurnReasons(rows, nil))
}

func TestComputeRevenueKPIs_FiltroDePlano(t *testing.T) {
	filters := &domain.FilterSet{Plans: []string{"Starter"}}
	kpis := ComputeRevenueKPIs(revenueFixture(), filters)

	// Dois clientes Starter, um ativo e um com churn
	assert.Equal(t, 500.0, kpis.TotalMRR)
	assert.Equal(t, 50.0, kpis.ChurnRate)
}
