package domain

import "time"

// Unidades possíveis de um benchmark
const (
	UnitPercentage = "percentage"
	UnitCurrency   = "currency"
	UnitRatio      = "ratio"
	UnitDays       = "days"
	UnitNumber     = "number"
)

// Benchmark representa uma faixa de referência de mercado para uma métrica.
// A tabela é estática e não deriva dos demais datasets.
type Benchmark struct {
	BenchmarkID string  `json:"benchmark_id" csv:"benchmark_id"`
	MetricType  string  `json:"metric_type" csv:"metric_type"`
	Category    string  `json:"category" csv:"category"`
	Subcategory string  `json:"subcategory" csv:"subcategory"`
	TargetValue float64 `json:"target_value" csv:"target_value"`
	MinValue    float64 `json:"min_value" csv:"min_value"`
	MaxValue    float64 `json:"max_value" csv:"max_value"`
	Unit        string  `json:"unit" csv:"unit"`
	Description string  `json:"description" csv:"description"`
}

func (b Benchmark) FieldDate(column string) (time.Time, bool) {
	return time.Time{}, false
}

func (b Benchmark) FieldValue(field FilterField) (string, bool) {
	return "", false
}
