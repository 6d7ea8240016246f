package generating

import (
	"fmt"
	"strings"

	"github.com/vfg2006/revops-analytics-api/internal/domain"
)

// benchmarkSeed é a forma autoral de uma linha de benchmark; os campos
// opcionais ausentes são derivados na montagem
type benchmarkSeed struct {
	metric    string
	channel   string
	segment   string
	stageFrom string
	stageTo   string
	target    float64
	min       float64
	max       float64
	hasRange  bool
}

var benchmarkSeeds = buildBenchmarkSeeds()

func buildBenchmarkSeeds() []benchmarkSeed {
	seeds := []benchmarkSeed{
		// Faixas de CPL por canal
		{metric: "channel_cpl_range", channel: "Google Ads", segment: "SMB", target: 25, min: 15, max: 50, hasRange: true},
		{metric: "channel_cpl_range", channel: "Google Ads", segment: "MM", target: 45, min: 25, max: 80, hasRange: true},
		{metric: "channel_cpl_range", channel: "Google Ads", segment: "ENT", target: 100, min: 50, max: 200, hasRange: true},
		{metric: "channel_cpl_range", channel: "Facebook Ads", segment: "SMB", target: 20, min: 10, max: 35, hasRange: true},
		{metric: "channel_cpl_range", channel: "Facebook Ads", segment: "MM", target: 35, min: 20, max: 60, hasRange: true},
		{metric: "channel_cpl_range", channel: "LinkedIn", segment: "ENT", target: 150, min: 75, max: 300, hasRange: true},
	}

	// Conversão entre etapas do funil
	stageConversions := []struct {
		from, to string
		smb      float64
		mm       float64
		ent      float64
	}{
		{"Lead", "MQL", 0.65, 0.60, 0.55},
		{"MQL", "SQL", 0.30, 0.25, 0.20},
		{"SQL", "Opportunity", 0.80, 0.75, 0.70},
		{"Discovery", "Demo", 0.60, 0.55, 0.50},
		{"Demo", "Negotiation", 0.45, 0.40, 0.35},
		{"Negotiation", "Closed_Won", 0.65, 0.60, 0.55},
	}
	for _, sc := range stageConversions {
		seeds = append(seeds,
			benchmarkSeed{metric: "stage_conversion_benchmarks", stageFrom: sc.from, stageTo: sc.to, segment: "SMB", target: sc.smb},
			benchmarkSeed{metric: "stage_conversion_benchmarks", stageFrom: sc.from, stageTo: sc.to, segment: "MM", target: sc.mm},
			benchmarkSeed{metric: "stage_conversion_benchmarks", stageFrom: sc.from, stageTo: sc.to, segment: "ENT", target: sc.ent},
		)
	}

	seeds = append(seeds,
		// Duração do ciclo de vendas em dias
		benchmarkSeed{metric: "sales_cycle_by_segment", segment: "SMB", target: 60, min: 30, max: 90, hasRange: true},
		benchmarkSeed{metric: "sales_cycle_by_segment", segment: "MM", target: 120, min: 90, max: 180, hasRange: true},
		benchmarkSeed{metric: "sales_cycle_by_segment", segment: "ENT", target: 240, min: 180, max: 360, hasRange: true},

		// Metas de NRR
		benchmarkSeed{metric: "nrr_targets", segment: "SMB", target: 1.05, min: 0.95, max: 1.15, hasRange: true},
		benchmarkSeed{metric: "nrr_targets", segment: "MM", target: 1.08, min: 1.00, max: 1.20, hasRange: true},
		benchmarkSeed{metric: "nrr_targets", segment: "ENT", target: 1.12, min: 1.05, max: 1.25, hasRange: true},

		// Metas de LTV/CAC
		benchmarkSeed{metric: "ltv_cac_targets", segment: "SMB", target: 3.0, min: 2.5, max: 5.0, hasRange: true},
		benchmarkSeed{metric: "ltv_cac_targets", segment: "MM", target: 4.0, min: 3.0, max: 6.0, hasRange: true},
		benchmarkSeed{metric: "ltv_cac_targets", segment: "ENT", target: 5.0, min: 3.5, max: 8.0, hasRange: true},

		// Metas de win rate
		benchmarkSeed{metric: "win_rate_targets", segment: "SMB", target: 0.25, min: 0.20, max: 0.35, hasRange: true},
		benchmarkSeed{metric: "win_rate_targets", segment: "MM", target: 0.20, min: 0.15, max: 0.30, hasRange: true},
		benchmarkSeed{metric: "win_rate_targets", segment: "ENT", target: 0.15, min: 0.10, max: 0.25, hasRange: true},

		// Metas de payback de CAC em meses
		benchmarkSeed{metric: "cac_payback_targets", segment: "SMB", target: 12, min: 6, max: 18, hasRange: true},
		benchmarkSeed{metric: "cac_payback_targets", segment: "MM", target: 18, min: 12, max: 24, hasRange: true},
		benchmarkSeed{metric: "cac_payback_targets", segment: "ENT", target: 24, min: 18, max: 36, hasRange: true},
	)

	return seeds
}

// Benchmarks monta a tabela estática de faixas de referência, com unidade
// inferida do nome da métrica e da magnitude do valor alvo
func (s *Service) Benchmarks() []domain.Benchmark {
	benchmarks := make([]domain.Benchmark, 0, len(benchmarkSeeds))

	for idx, seed := range benchmarkSeeds {
		minValue := seed.min
		maxValue := seed.max
		if !seed.hasRange {
			minValue = seed.target * 0.8
			maxValue = seed.target * 1.2
		}

		benchmarks = append(benchmarks, domain.Benchmark{
			BenchmarkID: fmt.Sprintf("BENCH_%03d", idx+1),
			MetricType:  seed.metric,
			Category:    firstNonEmpty(seed.channel, seed.segment, seed.stageFrom, "General"),
			Subcategory: firstNonEmpty(seed.segment, seed.stageTo, "All"),
			TargetValue: seed.target,
			MinValue:    minValue,
			MaxValue:    maxValue,
			Unit:        inferUnit(seed.metric, seed.target),
			Description: describeBenchmark(seed),
		})
	}

	return benchmarks
}

func inferUnit(metric string, target float64) string {
	switch {
	case target <= 1 && !strings.Contains(metric, "ltv_cac"):
		return domain.UnitPercentage
	case strings.Contains(strings.ToLower(metric), "cpl"):
		return domain.UnitCurrency
	case strings.Contains(metric, "ltv_cac"):
		return domain.UnitRatio
	case strings.Contains(metric, "cycle") || strings.Contains(metric, "payback"):
		return domain.UnitDays
	default:
		return domain.UnitNumber
	}
}

func describeBenchmark(seed benchmarkSeed) string {
	scope := firstNonEmpty(seed.segment, seed.channel, "all segments")
	return fmt.Sprintf("%s benchmark for %s", titleCase(seed.metric), scope)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func titleCase(metric string) string {
	words := strings.Split(strings.ReplaceAll(metric, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
