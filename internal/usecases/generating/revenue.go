package generating

import (
	"fmt"
	"math"

	"github.com/vfg2006/revops-analytics-api/internal/domain"
	"github.com/vfg2006/revops-analytics-api/pkg/utils"
)

var (
	plansBySegment = map[string][]string{
		"SMB": {"Starter", "Professional", "Business"},
		"MM":  {"Professional", "Business", "Enterprise"},
		"ENT": {"Business", "Enterprise", "Custom"},
	}

	churnReasons = []string{
		"Price",
		"Competition",
		"Feature Gap",
		"Support",
		"Business Closure",
		"Merger",
		"Budget Cut",
	}

	// Faixa de MRR inicial por (segmento, plano)
	baseMRRRanges = map[string]map[string][2]float64{
		"SMB": {
			"Starter":      {500, 1500},
			"Professional": {1500, 3000},
			"Business":     {3000, 8000},
		},
		"MM": {
			"Professional": {3000, 8000},
			"Business":     {8000, 20000},
			"Enterprise":   {20000, 50000},
		},
		"ENT": {
			"Business":   {15000, 40000},
			"Enterprise": {40000, 100000},
			"Custom":     {100000, 500000},
		},
	}

	// Taxa mensal de churn por segmento
	monthlyChurnRates = map[string]float64{
		"SMB": 0.05,
		"MM":  0.03,
		"ENT": 0.02,
	}
)

// daysPerMonth converte tenure em dias para meses usando o mês médio do
// calendário gregoriano
const daysPerMonth = 30.44

// Revenue gera a base de clientes de receita recorrente. A probabilidade de
// churn é um decaimento composto da taxa mensal elevada ao tenure em meses;
// clientes com churn têm todos os movimentos de MRR zerados.
func (s *Service) Revenue() []domain.RevenueCustomer {
	rng := newRNG(s.params.Seed)
	now := s.params.ReferenceDate

	customers := make([]domain.RevenueCustomer, 0, s.params.NumCustomers)

	for i := 0; i < s.params.NumCustomers; i++ {
		segment := rng.pick(segments)
		plan := rng.pick(plansBySegment[segment])
		startDate := now.AddDate(0, 0, -rng.between(0, 1095))

		mrrRange := baseMRRRanges[segment][plan]
		startingMRR := rng.uniform(mrrRange[0], mrrRange[1])

		daysSinceStart := int(now.Sub(startDate).Hours() / 24)
		monthsSinceStart := math.Max(1, float64(daysSinceStart)/daysPerMonth)
		churnProbability := 1 - math.Pow(1-monthlyChurnRates[segment], monthsSinceStart)

		churned := rng.chance() < churnProbability

		customer := domain.RevenueCustomer{
			CustomerID:  fmt.Sprintf("CUST_%04d", i+1),
			Account:     fmt.Sprintf("Account_%03d", i+1),
			Segment:     segment,
			Plan:        plan,
			StartDate:   startDate,
			ChurnedFlag: churned,
		}

		if churned {
			tenureDays := daysSinceStart
			if tenureDays < 30 {
				tenureDays = 30
			}
			churnDate := startDate.AddDate(0, 0, rng.between(30, tenureDays))
			customer.ChurnDate = &churnDate
			customer.ChurnReason = rng.pick(churnReasons)
			// Todos os campos de MRR permanecem zerados
			customers = append(customers, customer)
			continue
		}

		newMRR := 0.0
		if daysSinceStart <= 30 {
			newMRR = startingMRR
		}

		expansionMRR := 0.0
		expansionProbability := math.Min(0.2, monthsSinceStart*0.2/12)
		if rng.chance() < expansionProbability {
			expansionMRR = startingMRR * 0.3 * rng.chance()
		}

		contractionMRR := 0.0
		contractionProbability := math.Min(0.1, monthsSinceStart*0.1/12)
		if rng.chance() < contractionProbability {
			contractionMRR = startingMRR * 0.2 * rng.chance()
		}

		currentMRR := startingMRR + expansionMRR - contractionMRR

		customer.MRR = utils.RoundWithTwoDecimalPlace(currentMRR)
		customer.NewMRR = utils.RoundWithTwoDecimalPlace(newMRR)
		customer.ExpansionMRR = utils.RoundWithTwoDecimalPlace(expansionMRR)
		customer.ContractionMRR = utils.RoundWithTwoDecimalPlace(contractionMRR)
		customer.ARPA = customer.MRR

		// O denominador usa um piso absoluto de 1.0; para clientes de MRR
		// muito baixo isso aproxima a NRR do próprio MRR
		if customer.MRR > 0 {
			base := math.Max(1.0, customer.MRR-customer.ExpansionMRR+customer.ContractionMRR)
			customer.NRR = utils.RoundWithDecimalPlaces(customer.MRR/base, 3)
		}

		customers = append(customers, customer)
	}

	return customers
}
