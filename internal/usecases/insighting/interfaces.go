package insighting

import (
	"github.com/vfg2006/revops-analytics-api/internal/domain"
)

// Insighter define a interface do gerador de insights baseado em regras
type Insighter interface {
	// GenerateInsights avalia todas as regras sobre os três datasets
	GenerateInsights(filters *domain.FilterSet) ([]domain.Insight, error)

	// MarketingInsights avalia apenas as regras de marketing
	MarketingInsights(filters *domain.FilterSet) ([]domain.Insight, error)

	// PipelineInsights avalia apenas as regras de pipeline
	PipelineInsights(filters *domain.FilterSet) ([]domain.Insight, error)

	// RevenueInsights avalia apenas as regras de receita
	RevenueInsights(filters *domain.FilterSet) ([]domain.Insight, error)
}
