package generating

import (
	"fmt"

	"github.com/vfg2006/revops-analytics-api/internal/domain"
	"github.com/vfg2006/revops-analytics-api/pkg/utils"
)

var (
	pipelineStages = []string{
		domain.StageDiscovery,
		domain.StageDemo,
		domain.StageNegotiation,
		domain.StageClosedWon,
		domain.StageClosedLost,
	}

	dealOwners = []string{
		"Alice Johnson",
		"Bob Smith",
		"Carol Davis",
		"David Wilson",
		"Eva Brown",
		"Frank Miller",
	}

	sourceChannels = []string{
		"Google Ads",
		"Facebook Ads",
		"LinkedIn",
		"Content Marketing",
		"Referral",
		"Inbound",
	}

	// Mediana e sigma da log-normal de valor de negócio por segmento
	dealAmountDistributions = map[string]struct {
		median float64
		sigma  float64
	}{
		"SMB": {median: 25000, sigma: 0.5},
		"MM":  {median: 75000, sigma: 0.6},
		"ENT": {median: 200000, sigma: 0.7},
	}

	// Probabilidade base de fechamento por estágio
	stageProbabilities = map[string]float64{
		domain.StageDiscovery:   0.25,
		domain.StageDemo:        0.45,
		domain.StageNegotiation: 0.75,
		domain.StageClosedWon:   1.0,
		domain.StageClosedLost:  0.0,
	}
)

const minDealAmount = 5000.0

// Pipeline gera o snapshot de negócios do pipeline de vendas. Estágio,
// probabilidade e valor esperado são fixados aqui e não sofrem mutação
// posterior.
func (s *Service) Pipeline() []domain.PipelineDeal {
	rng := newRNG(s.params.Seed)
	now := s.params.ReferenceDate

	deals := make([]domain.PipelineDeal, 0, s.params.NumDeals)

	for i := 0; i < s.params.NumDeals; i++ {
		segment := rng.pick(segments)
		stage := rng.pick(pipelineStages)

		dist := dealAmountDistributions[segment]
		amount := rng.logNormal(dist.median, dist.sigma)
		if amount < minDealAmount {
			amount = minDealAmount
		}

		createdAt := now.AddDate(0, 0, -rng.between(0, 540))

		var expectedClose = createdAt
		switch stage {
		case domain.StageClosedWon:
			expectedClose = createdAt.AddDate(0, 0, rng.between(30, 180))
		case domain.StageClosedLost:
			expectedClose = createdAt.AddDate(0, 0, rng.between(20, 120))
		default:
			expectedClose = createdAt.AddDate(0, 0, rng.between(60, 300))
		}

		probability := stageProbabilities[stage] * rng.normal(1, 0.1)
		if probability < 0 {
			probability = 0
		}
		if probability > 1 {
			probability = 1
		}

		lastStageChange := createdAt.AddDate(0, 0, rng.between(0, 60))
		daysInStage := int(now.Sub(lastStageChange).Hours() / 24)
		if daysInStage < 0 {
			daysInStage = 0
		}

		status := domain.StatusOpen
		if stage == domain.StageClosedWon || stage == domain.StageClosedLost {
			status = stage
		}

		// Arredonda valor e probabilidade antes de derivar o valor esperado,
		// para que expected_value == amount * probability valha sobre os
		// campos persistidos
		roundedAmount := utils.RoundWithTwoDecimalPlace(amount)
		roundedProbability := utils.RoundWithDecimalPlaces(probability, 3)

		deals = append(deals, domain.PipelineDeal{
			DealID:          fmt.Sprintf("DEAL_%04d", i+1),
			Account:         fmt.Sprintf("Account_%03d", rng.between(1, 500)),
			Segment:         segment,
			Owner:           rng.pick(dealOwners),
			Stage:           stage,
			Amount:          roundedAmount,
			CreatedAt:       createdAt,
			ExpectedClose:   expectedClose,
			LastStageChange: lastStageChange,
			DaysInStage:     daysInStage,
			Probability:     roundedProbability,
			ExpectedValue:   utils.RoundWithTwoDecimalPlace(roundedAmount * roundedProbability),
			Status:          status,
			SourceChannel:   rng.pick(sourceChannels),
		})
	}

	return deals
}
