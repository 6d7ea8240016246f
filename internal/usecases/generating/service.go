// Package generating produz os datasets sintéticos de marketing, pipeline,
// receita e benchmarks. A geração é uma função pura da seed e dos parâmetros:
// reexecutar com os mesmos valores reproduz as tabelas byte a byte.
package generating

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revops-analytics-api/internal/config"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
)

// Params parametriza a geração dos datasets. ReferenceDate substitui o "hoje"
// dos cálculos de recência e tenure para que a saída seja reprodutível.
type Params struct {
	Seed          int64
	Days          int
	TopChannels   int
	NumDeals      int
	NumCustomers  int
	ReferenceDate time.Time
}

// DefaultParams retorna os parâmetros padrão de geração
func DefaultParams() Params {
	now := time.Now().UTC()
	return Params{
		Seed:          42,
		Days:          365,
		TopChannels:   4,
		NumDeals:      2000,
		NumCustomers:  1500,
		ReferenceDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// Generator define a interface do gerador de datasets sintéticos
type Generator interface {
	Marketing() []domain.MarketingRecord
	Pipeline() []domain.PipelineDeal
	Revenue() []domain.RevenueCustomer
	Benchmarks() []domain.Benchmark
	All() *domain.Datasets
}

// Service implementa a interface Generator
type Service struct {
	params Params
}

// NewService cria um gerador com os parâmetros informados
func NewService(params Params) Generator {
	return &Service{params: params}
}

// FromConfig monta os parâmetros de geração a partir da configuração global
func FromConfig(cfg *config.Config) Params {
	params := DefaultParams()

	if cfg.Generator.Seed != 0 {
		params.Seed = cfg.Generator.Seed
	}
	if cfg.Generator.Days > 0 {
		params.Days = cfg.Generator.Days
	}
	if cfg.Generator.TopChannels > 0 {
		params.TopChannels = cfg.Generator.TopChannels
	}
	if cfg.Generator.NumDeals > 0 {
		params.NumDeals = cfg.Generator.NumDeals
	}
	if cfg.Generator.NumCustomers > 0 {
		params.NumCustomers = cfg.Generator.NumCustomers
	}
	if cfg.Generator.ReferenceDate != "" {
		if ref, err := time.Parse("2006-01-02", cfg.Generator.ReferenceDate); err == nil {
			params.ReferenceDate = ref
		} else {
			logrus.WithField("reference_date", cfg.Generator.ReferenceDate).
				Warn("Data de referência inválida na configuração, usando a data atual")
		}
	}

	return params
}

// All gera as quatro tabelas
func (s *Service) All() *domain.Datasets {
	logrus.WithFields(logrus.Fields{
		"seed":          s.params.Seed,
		"days":          s.params.Days,
		"num_deals":     s.params.NumDeals,
		"num_customers": s.params.NumCustomers,
	}).Info("Gerando datasets sintéticos")

	return &domain.Datasets{
		Marketing:  s.Marketing(),
		Pipeline:   s.Pipeline(),
		Revenue:    s.Revenue(),
		Benchmarks: s.Benchmarks(),
	}
}
