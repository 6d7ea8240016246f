package analytics

import (
	"sort"
	"time"

	"github.com/vfg2006/revops-analytics-api/internal/domain"
	"github.com/vfg2006/revops-analytics-api/pkg/utils"
)

// DefaultCohortMonths é o horizonte padrão da matriz de retenção
const DefaultCohortMonths = 12

// CohortRow é a linha da matriz de retenção de um cohort mensal. Retention[m]
// é o percentual do cohort ainda ativo (ou cujo churn ocorreu no offset m ou
// depois) no mês m desde a aquisição.
type CohortRow struct {
	Cohort    string    `json:"cohort"`
	Customers int       `json:"customers"`
	Retention []float64 `json:"retention"`
}

// ComputeCohortRetention calcula a retenção mensal por cohort de data de
// início. A data "as-of" é o end_date do filtro, quando presente, ou a data
// de referência informada. A dimensão de geografia é ignorada nesta visão.
func ComputeCohortRetention(rows []domain.RevenueCustomer, filters *domain.FilterSet, maxMonths int, referenceDate time.Time) []CohortRow {
	if maxMonths <= 0 {
		maxMonths = DefaultCohortMonths
	}

	asOf := referenceDate
	if filters != nil && filters.EndDate != nil {
		asOf = *filters.EndDate
	}

	filtered := domain.ApplyFilter(filters.WithoutGeo(), rows, revenueDateColumn)
	if len(filtered) == 0 {
		return []CohortRow{}
	}

	byCohort := make(map[string][]domain.RevenueCustomer)
	for _, customer := range filtered {
		cohort := customer.StartDate.Format("2006-01")
		byCohort[cohort] = append(byCohort[cohort], customer)
	}

	cohorts := make([]string, 0, len(byCohort))
	for cohort := range byCohort {
		cohorts = append(cohorts, cohort)
	}
	sort.Strings(cohorts)

	out := make([]CohortRow, 0, len(cohorts))
	for _, cohort := range cohorts {
		customers := byCohort[cohort]
		cohortStart, err := time.Parse("2006-01", cohort)
		if err != nil {
			continue
		}

		row := CohortRow{
			Cohort:    cohort,
			Customers: len(customers),
			Retention: make([]float64, maxMonths),
		}

		for offset := 0; offset < maxMonths; offset++ {
			retained := 0
			for _, customer := range customers {
				effectiveEnd := asOf
				if customer.ChurnDate != nil {
					effectiveEnd = *customer.ChurnDate
				}

				if !customer.ChurnedFlag || utils.MonthsBetween(cohortStart, effectiveEnd) >= offset {
					retained++
				}
			}

			pct := 100 * utils.SafeDivide(float64(retained), float64(len(customers)))
			row.Retention[offset] = utils.RoundWithDecimalPlaces(pct, 1)
		}

		out = append(out, row)
	}

	return out
}
