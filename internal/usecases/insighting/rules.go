package insighting

import (
	"fmt"

	"github.com/vfg2006/revops-analytics-api/internal/analytics"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
	"github.com/vfg2006/revops-analytics-api/pkg/utils"
)

const (
	minConfidence = 0.05
	maxConfidence = 0.95
)

// snapshot agrega os resultados de analytics necessários para a avaliação das
// regras. Somente os campos da categoria avaliada são preenchidos.
type snapshot struct {
	marketingKPIs analytics.MarketingKPIs
	channels      []analytics.ChannelPerformance

	pipelineKPIs analytics.PipelineKPIs
	stuckDeals   []domain.PipelineDeal

	revenueKPIs  analytics.RevenueKPIs
	churnReasons []analytics.ChurnReason
}

type rule struct {
	category string
	eval     func(snap *snapshot) *domain.Insight
}

// clampConfidence limita a confiança ao intervalo permitido
func clampConfidence(c float64) float64 {
	if c < minConfidence {
		return minConfidence
	}
	if c > maxConfidence {
		return maxConfidence
	}
	return c
}

var marketingRules = []rule{
	{category: domain.InsightCategoryMarketing, eval: bestSpendChannel},
	{category: domain.InsightCategoryMarketing, eval: lowestConversionChannel},
	{category: domain.InsightCategoryMarketing, eval: lowROIEfficiency},
}

var pipelineRules = []rule{
	{category: domain.InsightCategoryPipeline, eval: lowWinRate},
	{category: domain.InsightCategoryPipeline, eval: stuckDealsAtRisk},
	{category: domain.InsightCategoryPipeline, eval: lowVelocity},
}

var revenueRules = []rule{
	{category: domain.InsightCategoryRevenue, eval: elevatedChurn},
	{category: domain.InsightCategoryRevenue, eval: topChurnReason},
	{category: domain.InsightCategoryRevenue, eval: weakNetRetention},
}

// bestSpendChannel aponta o canal com maior investimento e seu ROI. A lista de
// canais já vem ordenada por investimento decrescente.
func bestSpendChannel(snap *snapshot) *domain.Insight {
	if len(snap.channels) == 0 {
		return nil
	}

	best := snap.channels[0]
	return &domain.Insight{
		Message: fmt.Sprintf(
			"%s is driving the highest spend (%s) with ROI %.1f%%. Consider reallocating budget toward it.",
			best.Channel, utils.FormatMoney(best.Spend), best.ROIPercentage,
		),
		Confidence: clampConfidence(best.ROIPercentage / 500),
		DataPoints: map[string]any{
			"channel": best.Channel,
			"roi":     best.ROIPercentage,
			"spend":   best.Spend,
		},
	}
}

// lowestConversionChannel identifica o canal com pior conversão lead→won
func lowestConversionChannel(snap *snapshot) *domain.Insight {
	if len(snap.channels) == 0 {
		return nil
	}

	worst := snap.channels[0]
	for _, ch := range snap.channels[1:] {
		if ch.ConversionRate < worst.ConversionRate {
			worst = ch
		}
	}

	return &domain.Insight{
		Message: fmt.Sprintf(
			"%s has the lowest lead→close conversion (%.1f%%). Review campaign targeting or nurturing flows.",
			worst.Channel, worst.ConversionRate,
		),
		Confidence: 0.4,
		DataPoints: map[string]any{
			"channel":         worst.Channel,
			"conversion_rate": worst.ConversionRate,
		},
	}
}

// lowROIEfficiency dispara quando a aquisição está cara e o retorno baixo
func lowROIEfficiency(snap *snapshot) *domain.Insight {
	kpis := snap.marketingKPIs
	if kpis.AvgCAC <= 0 || kpis.AvgROI >= 200 {
		return nil
	}

	return &domain.Insight{
		Message:    "Average ROI is trending below 200%. Investigate messaging and segmentation to improve efficiency.",
		Confidence: 0.35,
	}
}

// lowWinRate dispara quando a taxa de ganho fica abaixo de 20%
func lowWinRate(snap *snapshot) *domain.Insight {
	if snap.pipelineKPIs.WinRate >= 20 {
		return nil
	}

	return &domain.Insight{
		Message: fmt.Sprintf(
			"Win rate at %.1f%% is below target. Prioritize coaching and deal reviews for late-stage opportunities.",
			snap.pipelineKPIs.WinRate,
		),
		Confidence: 0.45,
	}
}

// stuckDealsAtRisk destaca negociações de alto valor paradas há muito tempo
func stuckDealsAtRisk(snap *snapshot) *domain.Insight {
	if len(snap.stuckDeals) == 0 {
		return nil
	}

	totalStuck := 0.0
	dealIDs := make([]string, 0, 5)
	for _, deal := range snap.stuckDeals {
		totalStuck += deal.Amount
		if len(dealIDs) < 5 {
			dealIDs = append(dealIDs, deal.DealID)
		}
	}

	confidence := totalStuck / 5_000_000
	if confidence > 0.9 {
		confidence = 0.9
	}

	return &domain.Insight{
		Message: fmt.Sprintf(
			"%d deals worth %s have been stuck over %d days. Escalate executive support.",
			len(snap.stuckDeals), utils.FormatMoney(totalStuck), analytics.DefaultStuckThresholdDays,
		),
		Confidence: clampConfidence(confidence),
		DataPoints: map[string]any{
			"deal_ids":     dealIDs,
			"total_amount": totalStuck,
		},
	}
}

// lowVelocity dispara quando o valor esperado médio por dia está baixo
func lowVelocity(snap *snapshot) *domain.Insight {
	if snap.pipelineKPIs.Velocity >= 1000 {
		return nil
	}

	return &domain.Insight{
		Message:    "Pipeline velocity is low relative to expected value. Re-evaluate stage progression criteria and SLA adherence.",
		Confidence: 0.3,
	}
}

// elevatedChurn dispara quando o churn passa de 5%
func elevatedChurn(snap *snapshot) *domain.Insight {
	if snap.revenueKPIs.ChurnRate <= 5 {
		return nil
	}

	return &domain.Insight{
		Message: fmt.Sprintf(
			"Churn rate at %.1f%% exceeds comfort threshold. Implement renewal playbooks for at-risk segments.",
			snap.revenueKPIs.ChurnRate,
		),
		Confidence: 0.5,
	}
}

// topChurnReason aponta o motivo de cancelamento mais frequente. A lista já
// vem ordenada por contagem decrescente.
func topChurnReason(snap *snapshot) *domain.Insight {
	if len(snap.churnReasons) == 0 {
		return nil
	}

	top := snap.churnReasons[0]
	return &domain.Insight{
		Message: fmt.Sprintf(
			"Primary churn driver: %s (%d accounts). Collaborate with product and success teams on targeted remediation.",
			top.Reason, top.Count,
		),
		Confidence: 0.55,
		DataPoints: map[string]any{
			"segment": top.Segment,
			"reason":  top.Reason,
			"count":   top.Count,
		},
	}
}

// weakNetRetention dispara quando a NRR média fica abaixo de 105%
func weakNetRetention(snap *snapshot) *domain.Insight {
	if snap.revenueKPIs.AvgNRR >= 105 {
		return nil
	}

	return &domain.Insight{
		Message:    "Net revenue retention below 105%. Expand account growth programs and monitor contraction trends closely.",
		Confidence: 0.35,
	}
}
