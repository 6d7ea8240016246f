// Package insighting gera observações em linguagem natural a partir dos KPIs
// computados pela camada de analytics. As regras são avaliadas de forma
// independente e em ordem fixa; várias podem disparar para o mesmo snapshot,
// e um snapshot vazio não dispara regra alguma.
package insighting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revops-analytics-api/infrastructure/repository"
	"github.com/vfg2006/revops-analytics-api/internal/analytics"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
	"github.com/vfg2006/revops-analytics-api/pkg/utils"
)

// Service implementa a interface Insighter
type Service struct {
	marketingRepo repository.MarketingRepository
	pipelineRepo  repository.PipelineRepository
	revenueRepo   repository.RevenueRepository
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	marketingRepo repository.MarketingRepository,
	pipelineRepo repository.PipelineRepository,
	revenueRepo repository.RevenueRepository,
) Insighter {
	return &Service{
		marketingRepo: marketingRepo,
		pipelineRepo:  pipelineRepo,
		revenueRepo:   revenueRepo,
	}
}

// GenerateInsights avalia as regras das três categorias na ordem
// marketing → pipeline → receita
func (s *Service) GenerateInsights(filters *domain.FilterSet) ([]domain.Insight, error) {
	insights := make([]domain.Insight, 0)

	marketing, err := s.MarketingInsights(filters)
	if err != nil {
		return nil, err
	}
	insights = append(insights, marketing...)

	pipeline, err := s.PipelineInsights(filters)
	if err != nil {
		return nil, err
	}
	insights = append(insights, pipeline...)

	revenue, err := s.RevenueInsights(filters)
	if err != nil {
		return nil, err
	}
	insights = append(insights, revenue...)

	logrus.WithField("insights", len(insights)).Debug("Insights gerados")
	return insights, nil
}

// MarketingInsights avalia as regras de marketing
func (s *Service) MarketingInsights(filters *domain.FilterSet) ([]domain.Insight, error) {
	rows, err := s.marketingRepo.List()
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		marketingKPIs: analytics.ComputeMarketingKPIs(rows, filters),
		channels:      analytics.ComputeChannelPerformance(rows, filters),
	}

	return evaluate(marketingRules, snap), nil
}

// PipelineInsights avalia as regras de pipeline
func (s *Service) PipelineInsights(filters *domain.FilterSet) ([]domain.Insight, error) {
	rows, err := s.pipelineRepo.List()
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		pipelineKPIs: analytics.ComputePipelineKPIs(rows, filters),
		stuckDeals: analytics.ComputeStuckDeals(
			rows,
			filters,
			analytics.DefaultStuckThresholdDays,
			analytics.DefaultStuckMinAmount,
		),
	}

	return evaluate(pipelineRules, snap), nil
}

// RevenueInsights avalia as regras de receita
func (s *Service) RevenueInsights(filters *domain.FilterSet) ([]domain.Insight, error) {
	rows, err := s.revenueRepo.List()
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		revenueKPIs:  analytics.ComputeRevenueKPIs(rows, filters),
		churnReasons: analytics.ComputeChurnReasons(rows, filters),
	}

	return evaluate(revenueRules, snap), nil
}

// evaluate percorre as regras em ordem fixa, atribuindo um ID curto a cada
// insight emitido
func evaluate(rules []rule, snap *snapshot) []domain.Insight {
	insights := make([]domain.Insight, 0)

	for _, r := range rules {
		insight := r.eval(snap)
		if insight == nil {
			continue
		}

		insight.Category = r.category
		if id, err := utils.GenerateID(); err == nil {
			insight.ID = id
		} else {
			logrus.WithError(err).Warn("Falha ao gerar ID de insight")
		}

		insights = append(insights, *insight)
	}

	return insights
}
