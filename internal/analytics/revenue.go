package analytics

import (
	"sort"
	"time"

	"github.com/vfg2006/revops-analytics-api/internal/domain"
	"github.com/vfg2006/revops-analytics-api/pkg/utils"
)

const revenueDateColumn = "start_date"

// RevenueKPIs resume os indicadores de receita recorrente
type RevenueKPIs struct {
	TotalMRR  float64 `json:"total_mrr"`
	TotalARR  float64 `json:"total_arr"`
	AvgNRR    float64 `json:"avg_nrr"`
	ChurnRate float64 `json:"churn_rate"`
}

// SegmentBreakdown agrega a base de clientes por segmento
type SegmentBreakdown struct {
	Segment     string  `json:"segment"`
	Customers   int     `json:"customers"`
	MRR         float64 `json:"mrr"`
	Expansion   float64 `json:"expansion"`
	Contraction float64 `json:"contraction"`
	Churned     int     `json:"churned"`
}

// WaterfallEntry é uma linha da ponte mensal de MRR. A identidade
// ending = starting + expansion - contraction + new - churn vale exatamente
// para toda linha.
type WaterfallEntry struct {
	Period         string  `json:"period"`
	StartingMRR    float64 `json:"starting_mrr"`
	NewMRR         float64 `json:"new_mrr"`
	ExpansionMRR   float64 `json:"expansion_mrr"`
	ContractionMRR float64 `json:"contraction_mrr"`
	ChurnMRR       float64 `json:"churn_mrr"`
	EndingMRR      float64 `json:"ending_mrr"`
}

// ChurnReason agrega motivos de churn por segmento
type ChurnReason struct {
	Segment string `json:"segment"`
	Reason  string `json:"churn_reason"`
	Count   int    `json:"count"`
}

// ComputeRevenueKPIs calcula MRR/ARR sobre clientes ativos, NRR média em
// percentual e churn rate percentual sobre a base toda
func ComputeRevenueKPIs(rows []domain.RevenueCustomer, filters *domain.FilterSet) RevenueKPIs {
	filtered := domain.ApplyFilter(filters, rows, revenueDateColumn)

	var (
		totalMRR float64
		sumNRR   float64
		active   int
		churned  int
	)

	for _, customer := range filtered {
		if customer.ChurnedFlag {
			churned++
			continue
		}
		active++
		totalMRR += customer.MRR
		sumNRR += customer.NRR
	}

	return RevenueKPIs{
		TotalMRR:  totalMRR,
		TotalARR:  totalMRR * 12,
		AvgNRR:    utils.SafeDivide(sumNRR, float64(active)) * 100,
		ChurnRate: utils.SafeDivide(float64(churned), float64(len(filtered))) * 100,
	}
}

// ComputeSegmentBreakdown agrupa a base por segmento, ordenado por MRR
// decrescente
func ComputeSegmentBreakdown(rows []domain.RevenueCustomer, filters *domain.FilterSet) []SegmentBreakdown {
	filtered := domain.ApplyFilter(filters, rows, revenueDateColumn)

	bySegment := make(map[string]*SegmentBreakdown)
	for _, customer := range filtered {
		breakdown, ok := bySegment[customer.Segment]
		if !ok {
			breakdown = &SegmentBreakdown{Segment: customer.Segment}
			bySegment[customer.Segment] = breakdown
		}

		breakdown.Customers++
		breakdown.MRR += customer.MRR
		breakdown.Expansion += customer.ExpansionMRR
		breakdown.Contraction += customer.ContractionMRR
		if customer.ChurnedFlag {
			breakdown.Churned++
		}
	}

	out := make([]SegmentBreakdown, 0, len(bySegment))
	for _, breakdown := range bySegment {
		out = append(out, *breakdown)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MRR != out[j].MRR {
			return out[i].MRR > out[j].MRR
		}
		return out[i].Segment < out[j].Segment
	})

	return out
}

// ComputeMRRWaterfall monta a ponte mensal de MRR, agrupando por mês de
// início do cliente. Meses sem clientes dentro do intervalo observado
// aparecem zerados.
func ComputeMRRWaterfall(rows []domain.RevenueCustomer, filters *domain.FilterSet) []WaterfallEntry {
	filtered := domain.ApplyFilter(filters, rows, revenueDateColumn)
	if len(filtered) == 0 {
		return []WaterfallEntry{}
	}

	byMonth := make(map[time.Time]*WaterfallEntry)
	minMonth := utils.StartOfMonth(filtered[0].StartDate)
	maxMonth := minMonth

	for _, customer := range filtered {
		month := utils.StartOfMonth(customer.StartDate)
		if month.Before(minMonth) {
			minMonth = month
		}
		if month.After(maxMonth) {
			maxMonth = month
		}

		entry, ok := byMonth[month]
		if !ok {
			entry = &WaterfallEntry{Period: month.Format("2006-01")}
			byMonth[month] = entry
		}

		entry.StartingMRR += customer.MRR
		entry.NewMRR += customer.NewMRR
		entry.ExpansionMRR += customer.ExpansionMRR
		entry.ContractionMRR += customer.ContractionMRR
		if customer.ChurnedFlag {
			entry.ChurnMRR += customer.MRR
		}
	}

	out := make([]WaterfallEntry, 0, len(byMonth))
	for month := minMonth; !month.After(maxMonth); month = month.AddDate(0, 1, 0) {
		entry, ok := byMonth[month]
		if !ok {
			entry = &WaterfallEntry{Period: month.Format("2006-01")}
		}
		entry.EndingMRR = entry.StartingMRR + entry.ExpansionMRR - entry.ContractionMRR + entry.NewMRR - entry.ChurnMRR
		out = append(out, *entry)
	}

	return out
}

// ComputeChurnReasons conta motivos de churn por segmento, ordenado por
// contagem decrescente
func ComputeChurnReasons(rows []domain.RevenueCustomer, filters *domain.FilterSet) []ChurnReason {
	filtered := domain.ApplyFilter(filters, rows, revenueDateColumn)

	type key struct {
		segment string
		reason  string
	}

	counts := make(map[key]int)
	for _, customer := range filtered {
		if !customer.ChurnedFlag || customer.ChurnReason == "" {
			continue
		}
		counts[key{customer.Segment, customer.ChurnReason}]++
	}

	out := make([]ChurnReason, 0, len(counts))
	for k, count := range counts {
		out = append(out, ChurnReason{Segment: k.segment, Reason: k.reason, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Segment != out[j].Segment {
			return out[i].Segment < out[j].Segment
		}
		return out[i].Reason < out[j].Reason
	})

	return out
}
