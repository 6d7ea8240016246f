package repository

import (
	"path/filepath"

	"github.com/vfg2006/revops-analytics-api/internal/domain"
)

// Datasets agrupa os quatro repositórios de tabelas sob um mesmo diretório
type Datasets struct {
	Marketing  MarketingRepository
	Pipeline   PipelineRepository
	Revenue    RevenueRepository
	Benchmarks BenchmarkRepository
}

// NewDatasets cria os repositórios CSV no diretório informado, com os nomes
// de arquivo padrão da aplicação
func NewDatasets(dir string) *Datasets {
	return &Datasets{
		Marketing:  NewMarketingRepository(filepath.Join(dir, MarketingFileName)),
		Pipeline:   NewPipelineRepository(filepath.Join(dir, PipelineFileName)),
		Revenue:    NewRevenueRepository(filepath.Join(dir, RevenueFileName)),
		Benchmarks: NewBenchmarkRepository(filepath.Join(dir, BenchmarkFileName)),
	}
}

// LoadAll carrega as quatro tabelas. Qualquer arquivo ausente é fatal.
func (d *Datasets) LoadAll() (*domain.Datasets, error) {
	marketing, err := d.Marketing.List()
	if err != nil {
		return nil, err
	}

	pipeline, err := d.Pipeline.List()
	if err != nil {
		return nil, err
	}

	revenue, err := d.Revenue.List()
	if err != nil {
		return nil, err
	}

	benchmarks, err := d.Benchmarks.List()
	if err != nil {
		return nil, err
	}

	return &domain.Datasets{
		Marketing:  marketing,
		Pipeline:   pipeline,
		Revenue:    revenue,
		Benchmarks: benchmarks,
	}, nil
}

// SaveAll grava as quatro tabelas
func (d *Datasets) SaveAll(datasets *domain.Datasets) error {
	if err := d.Marketing.SaveAll(datasets.Marketing); err != nil {
		return err
	}
	if err := d.Pipeline.SaveAll(datasets.Pipeline); err != nil {
		return err
	}
	if err := d.Revenue.SaveAll(datasets.Revenue); err != nil {
		return err
	}
	return d.Benchmarks.SaveAll(datasets.Benchmarks)
}

// Invalidate descarta o cache das quatro tabelas. Necessário entre execuções
// lógicas de teste e após regeneração dos arquivos.
func (d *Datasets) Invalidate() {
	d.Marketing.Invalidate()
	d.Pipeline.Invalidate()
	d.Revenue.Invalidate()
	d.Benchmarks.Invalidate()
}
