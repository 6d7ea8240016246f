// Package analytics contém as funções puras de agregação sobre os datasets.
// Todas recebem a tabela (filtrada ou não) e um FilterSet opcional, aplicam o
// filtro internamente e retornam KPIs escalares ou tabelas derivadas, sem
// jamais mutar a entrada. Entradas vazias degradam para valores zerados.
package analytics

import (
	"sort"
	"time"

	"github.com/vfg2006/revops-analytics-api/internal/domain"
	"github.com/vfg2006/revops-analytics-api/pkg/utils"
)

// MarketingKPIs resume os indicadores principais da tabela de marketing
type MarketingKPIs struct {
	TotalSpend float64 `json:"total_spend"`
	TotalLeads int     `json:"total_leads"`
	TotalMQLs  int     `json:"total_mqls"`
	TotalSQLs  int     `json:"total_sqls"`
	AvgCAC     float64 `json:"avg_cac"`
	AvgROI     float64 `json:"avg_roi"`
}

// ChannelPerformance agrega volume, gasto e conversão por canal
type ChannelPerformance struct {
	Channel        string  `json:"channel"`
	Spend          float64 `json:"spend"`
	Leads          int     `json:"leads"`
	MQLs           int     `json:"mqls"`
	SQLs           int     `json:"sqls"`
	Opportunities  int     `json:"opportunities"`
	ClosedWon      int     `json:"closed_won"`
	AvgCAC         float64 `json:"avg_cac"`
	AvgROI         float64 `json:"avg_roi"`
	ConversionRate float64 `json:"conversion_rate"`
	ROIPercentage  float64 `json:"roi_percentage"`
	CAC            float64 `json:"cac"`
}

// FunnelStage é uma etapa do funil com seu total acumulado
type FunnelStage struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// TrendPoint é um ponto da série semanal de volume do funil
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Leads int       `json:"leads"`
	MQLs  int       `json:"mqls"`
	SQLs  int       `json:"sqls"`
}

// ComputeMarketingKPIs calcula somas e médias sobre a tabela de marketing
func ComputeMarketingKPIs(rows []domain.MarketingRecord, filters *domain.FilterSet) MarketingKPIs {
	filtered := domain.ApplyFilter(filters, rows, domain.DefaultDateColumn)

	kpis := MarketingKPIs{}
	var sumCAC, sumROI float64

	for _, row := range filtered {
		kpis.TotalSpend += row.Spend
		kpis.TotalLeads += row.Leads
		kpis.TotalMQLs += row.MQLs
		kpis.TotalSQLs += row.SQLs
		sumCAC += row.CAC
		sumROI += row.ROI
	}

	kpis.AvgCAC = utils.SafeDivide(sumCAC, float64(len(filtered)))
	kpis.AvgROI = utils.SafeDivide(sumROI, float64(len(filtered)))

	return kpis
}

// ComputeChannelPerformance agrupa a tabela de marketing por canal, com
// conversion_rate = closed_won/leads em percentual, ordenado por gasto
// decrescente
func ComputeChannelPerformance(rows []domain.MarketingRecord, filters *domain.FilterSet) []ChannelPerformance {
	filtered := domain.ApplyFilter(filters, rows, domain.DefaultDateColumn)

	type accumulator struct {
		perf ChannelPerformance
		n    int
	}

	byChannel := make(map[string]*accumulator)
	for _, row := range filtered {
		acc, ok := byChannel[row.Channel]
		if !ok {
			acc = &accumulator{perf: ChannelPerformance{Channel: row.Channel}}
			byChannel[row.Channel] = acc
		}

		acc.perf.Spend += row.Spend
		acc.perf.Leads += row.Leads
		acc.perf.MQLs += row.MQLs
		acc.perf.SQLs += row.SQLs
		acc.perf.Opportunities += row.Opportunities
		acc.perf.ClosedWon += row.ClosedWon
		acc.perf.AvgCAC += row.CAC
		acc.perf.AvgROI += row.ROI
		acc.n++
	}

	out := make([]ChannelPerformance, 0, len(byChannel))
	for _, acc := range byChannel {
		perf := acc.perf
		perf.AvgCAC = utils.SafeDivide(perf.AvgCAC, float64(acc.n))
		perf.AvgROI = utils.SafeDivide(perf.AvgROI, float64(acc.n))
		perf.ConversionRate = utils.SafeDivide(float64(perf.ClosedWon), float64(perf.Leads)) * 100
		perf.ROIPercentage = perf.AvgROI
		perf.CAC = perf.AvgCAC
		out = append(out, perf)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Spend != out[j].Spend {
			return out[i].Spend > out[j].Spend
		}
		return out[i].Channel < out[j].Channel
	})

	return out
}

// ComputeFunnelBreakdown totaliza cada etapa do funil na ordem fixa
// Leads → MQLs → SQLs → Opportunities → Closed Won
func ComputeFunnelBreakdown(rows []domain.MarketingRecord, filters *domain.FilterSet) []FunnelStage {
	filtered := domain.ApplyFilter(filters, rows, domain.DefaultDateColumn)

	stages := []FunnelStage{
		{Stage: "Leads"},
		{Stage: "MQLs"},
		{Stage: "SQLs"},
		{Stage: "Opportunities"},
		{Stage: "Closed Won"},
	}

	for _, row := range filtered {
		stages[0].Count += row.Leads
		stages[1].Count += row.MQLs
		stages[2].Count += row.SQLs
		stages[3].Count += row.Opportunities
		stages[4].Count += row.ClosedWon
	}

	return stages
}

// ComputeTrendTimeseries agrega leads/MQLs/SQLs por semana ISO. Semanas sem
// registros dentro do intervalo observado aparecem com valores zerados.
func ComputeTrendTimeseries(rows []domain.MarketingRecord, filters *domain.FilterSet) []TrendPoint {
	filtered := domain.ApplyFilter(filters, rows, domain.DefaultDateColumn)
	if len(filtered) == 0 {
		return []TrendPoint{}
	}

	byWeek := make(map[time.Time]*TrendPoint)
	minWeek := utils.StartOfISOWeek(filtered[0].Date)
	maxWeek := minWeek

	for _, row := range filtered {
		week := utils.StartOfISOWeek(row.Date)
		if week.Before(minWeek) {
			minWeek = week
		}
		if week.After(maxWeek) {
			maxWeek = week
		}

		point, ok := byWeek[week]
		if !ok {
			point = &TrendPoint{Date: week}
			byWeek[week] = point
		}
		point.Leads += row.Leads
		point.MQLs += row.MQLs
		point.SQLs += row.SQLs
	}

	out := make([]TrendPoint, 0, len(byWeek))
	for week := minWeek; !week.After(maxWeek); week = week.AddDate(0, 0, 7) {
		if point, ok := byWeek[week]; ok {
			out = append(out, *point)
		} else {
			out = append(out, TrendPoint{Date: week})
		}
	}

	return out
}
