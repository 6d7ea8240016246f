package repository

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
)

// BenchmarkFileName é o nome do arquivo da tabela de benchmarks
const BenchmarkFileName = "benchmarks.csv"

var benchmarkColumns = []string{
	"benchmark_id", "metric_type", "category", "subcategory",
	"target_value", "min_value", "max_value", "unit", "description",
}

// BenchmarkRepository dá acesso à tabela de benchmarks de referência
type BenchmarkRepository interface {
	List() ([]domain.Benchmark, error)
	SaveAll(benchmarks []domain.Benchmark) error
	Invalidate()
}

type benchmarkRepository struct {
	path  string
	mu    sync.Mutex
	cache []domain.Benchmark
}

// NewBenchmarkRepository cria um repositório CSV da tabela de benchmarks
func NewBenchmarkRepository(path string) BenchmarkRepository {
	return &benchmarkRepository{path: path}
}

func (r *benchmarkRepository) List() ([]domain.Benchmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache != nil {
		return r.cache, nil
	}

	index, rows, err := readCSVFile(r.path, benchmarkColumns)
	if err != nil {
		return nil, err
	}

	benchmarks := make([]domain.Benchmark, 0, len(rows))
	for i, row := range rows {
		reader := rowReader{index: index, row: row, line: i + 2}

		benchmark := domain.Benchmark{
			BenchmarkID: reader.stringField("benchmark_id"),
			MetricType:  reader.stringField("metric_type"),
			Category:    reader.stringField("category"),
			Subcategory: reader.stringField("subcategory"),
			Unit:        reader.stringField("unit"),
			Description: reader.stringField("description"),
		}

		if benchmark.TargetValue, err = reader.floatField("target_value"); err != nil {
			return nil, err
		}
		if benchmark.MinValue, err = reader.floatField("min_value"); err != nil {
			return nil, err
		}
		if benchmark.MaxValue, err = reader.floatField("max_value"); err != nil {
			return nil, err
		}

		benchmarks = append(benchmarks, benchmark)
	}

	r.cache = benchmarks
	logrus.WithFields(logrus.Fields{
		"path": r.path,
		"rows": len(benchmarks),
	}).Debug("Tabela de benchmarks carregada")

	return benchmarks, nil
}

func (r *benchmarkRepository) SaveAll(benchmarks []domain.Benchmark) error {
	rows := make([][]string, 0, len(benchmarks))
	for _, benchmark := range benchmarks {
		rows = append(rows, []string{
			benchmark.BenchmarkID,
			benchmark.MetricType,
			benchmark.Category,
			benchmark.Subcategory,
			formatFloat(benchmark.TargetValue),
			formatFloat(benchmark.MinValue),
			formatFloat(benchmark.MaxValue),
			benchmark.Unit,
			benchmark.Description,
		})
	}

	if err := writeCSVFile(r.path, benchmarkColumns, rows); err != nil {
		return err
	}

	r.Invalidate()
	return nil
}

func (r *benchmarkRepository) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = nil
}
