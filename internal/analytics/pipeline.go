package analytics

import (
	"sort"

	"github.com/vfg2006/revops-analytics-api/internal/domain"
	"github.com/vfg2006/revops-analytics-api/pkg/utils"
)

const pipelineDateColumn = "created_at"

// Limiares padrão para negócios travados
const (
	DefaultStuckThresholdDays = 45
	DefaultStuckMinAmount     = 50000.0
)

// PipelineKPIs resume os indicadores do pipeline de vendas
type PipelineKPIs struct {
	TotalPipeline    float64 `json:"total_pipeline"`
	WeightedPipeline float64 `json:"weighted_pipeline"`
	AvgDealSize      float64 `json:"avg_deal_size"`
	WinRate          float64 `json:"win_rate"`
	Velocity         float64 `json:"velocity"`
}

// StageDistribution agrega contagem e valor por estágio
type StageDistribution struct {
	Stage  string  `json:"stage"`
	Deals  int     `json:"deals"`
	Amount float64 `json:"amount"`
}

// OwnerPerformance agrega a performance de vendas por responsável
type OwnerPerformance struct {
	Owner       string  `json:"owner"`
	Deals       int     `json:"deals"`
	TotalAmount float64 `json:"total_amount"`
	WonDeals    int     `json:"won_deals"`
	LostDeals   int     `json:"lost_deals"`
	AvgCycle    float64 `json:"avg_cycle"`
	WinRate     float64 `json:"win_rate"`
}

// ComputePipelineKPIs calcula pipeline total e ponderado, ticket médio,
// win rate percentual e velocity. O total é sempre maior ou igual ao
// ponderado, já que o ponderado desconta pela probabilidade.
func ComputePipelineKPIs(rows []domain.PipelineDeal, filters *domain.FilterSet) PipelineKPIs {
	filtered := domain.ApplyFilter(filters, rows, pipelineDateColumn)

	var (
		totalPipeline    float64
		weightedPipeline float64
		totalAmount      float64
		won, lost        int
		openDays         float64
		openDaysCount    int
	)

	for _, deal := range filtered {
		totalAmount += deal.Amount

		switch deal.Stage {
		case domain.StageClosedWon:
			won++
		case domain.StageClosedLost:
			lost++
		}

		if deal.IsOpen() {
			totalPipeline += deal.Amount
			weightedPipeline += deal.ExpectedValue
			if deal.DaysInStage > 0 {
				openDays += float64(deal.DaysInStage)
				openDaysCount++
			}
		}
	}

	// Negócios parados há zero dias não entram na média; sem amostra, o
	// divisor assume 1.0 para não zerar a velocity artificialmente
	avgDays := 1.0
	if openDaysCount > 0 {
		avgDays = openDays / float64(openDaysCount)
	}

	return PipelineKPIs{
		TotalPipeline:    totalPipeline,
		WeightedPipeline: weightedPipeline,
		AvgDealSize:      utils.SafeDivide(totalAmount, float64(len(filtered))),
		WinRate:          utils.SafeDivide(float64(won), float64(won+lost)) * 100,
		Velocity:         utils.SafeDivide(weightedPipeline, avgDays),
	}
}

// ComputeStageDistribution agrupa o pipeline por estágio, ordenado por valor
// decrescente
func ComputeStageDistribution(rows []domain.PipelineDeal, filters *domain.FilterSet) []StageDistribution {
	filtered := domain.ApplyFilter(filters, rows, pipelineDateColumn)

	byStage := make(map[string]*StageDistribution)
	for _, deal := range filtered {
		dist, ok := byStage[deal.Stage]
		if !ok {
			dist = &StageDistribution{Stage: deal.Stage}
			byStage[deal.Stage] = dist
		}
		dist.Deals++
		dist.Amount += deal.Amount
	}

	out := make([]StageDistribution, 0, len(byStage))
	for _, dist := range byStage {
		out = append(out, *dist)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Stage < out[j].Stage
	})

	return out
}

// ComputeOwnerPerformance agrupa o pipeline por responsável com win rate
// derivado, ordenado por valor total decrescente
func ComputeOwnerPerformance(rows []domain.PipelineDeal, filters *domain.FilterSet) []OwnerPerformance {
	filtered := domain.ApplyFilter(filters, rows, pipelineDateColumn)

	type accumulator struct {
		perf      OwnerPerformance
		cycleDays float64
	}

	byOwner := make(map[string]*accumulator)
	for _, deal := range filtered {
		acc, ok := byOwner[deal.Owner]
		if !ok {
			acc = &accumulator{perf: OwnerPerformance{Owner: deal.Owner}}
			byOwner[deal.Owner] = acc
		}

		acc.perf.Deals++
		acc.perf.TotalAmount += deal.Amount
		acc.cycleDays += float64(deal.DaysInStage)

		switch deal.Stage {
		case domain.StageClosedWon:
			acc.perf.WonDeals++
		case domain.StageClosedLost:
			acc.perf.LostDeals++
		}
	}

	out := make([]OwnerPerformance, 0, len(byOwner))
	for _, acc := range byOwner {
		perf := acc.perf
		perf.AvgCycle = utils.SafeDivide(acc.cycleDays, float64(perf.Deals))
		perf.WinRate = utils.SafeDivide(float64(perf.WonDeals), float64(perf.WonDeals+perf.LostDeals)) * 100
		out = append(out, perf)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalAmount != out[j].TotalAmount {
			return out[i].TotalAmount > out[j].TotalAmount
		}
		return out[i].Owner < out[j].Owner
	})

	return out
}

// ComputeStuckDeals retorna os negócios abertos parados há pelo menos
// thresholdDays e com valor mínimo minAmount, ordenados pelo tempo parado
// decrescente
func ComputeStuckDeals(rows []domain.PipelineDeal, filters *domain.FilterSet, thresholdDays int, minAmount float64) []domain.PipelineDeal {
	filtered := domain.ApplyFilter(filters, rows, pipelineDateColumn)

	stuck := make([]domain.PipelineDeal, 0)
	for _, deal := range filtered {
		if deal.IsOpen() && deal.DaysInStage >= thresholdDays && deal.Amount >= minAmount {
			stuck = append(stuck, deal)
		}
	}

	sort.Slice(stuck, func(i, j int) bool {
		if stuck[i].DaysInStage != stuck[j].DaysInStage {
			return stuck[i].DaysInStage > stuck[j].DaysInStage
		}
		return stuck[i].DealID < stuck[j].DealID
	})

	return stuck
}
