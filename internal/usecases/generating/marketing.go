package generating

import (
	"time"

	"github.com/vfg2006/revops-analytics-api/internal/domain"
	"github.com/vfg2006/revops-analytics-api/pkg/utils"
)

// marketingStartDate ancora a série diária de marketing
var marketingStartDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

var (
	marketingChannels = []string{
		"Google Ads",
		"Facebook Ads",
		"LinkedIn",
		"Content Marketing",
		"Email Marketing",
		"Organic Search",
		"Referral",
	}

	marketingCampaigns = []string{
		"Q1 Brand",
		"Q2 Demo",
		"Q3 Feature",
		"Q4 Holiday",
		"Webinar Series",
		"Product Launch",
	}

	segments = []string{"SMB", "MM", "ENT"}
	geos     = []string{"US", "EU", "APAC", "Canada"}

	// Multiplicadores estilo CPM por canal (impressões por unidade de gasto)
	cpmMultipliers = map[string]float64{
		"Google Ads":        15,
		"Facebook Ads":      8,
		"LinkedIn":          25,
		"Content Marketing": 5,
	}

	// Taxas de clique base por canal
	ctrBaselines = map[string]float64{
		"Google Ads":        0.035,
		"Facebook Ads":      0.02,
		"LinkedIn":          0.045,
		"Content Marketing": 0.015,
	}

	// Conversão clique → lead por segmento
	leadConversionRates = map[string]float64{
		"SMB": 0.12,
		"MM":  0.08,
		"ENT": 0.05,
	}

	// Conversão oportunidade → fechamento por segmento
	closeRates = map[string]float64{
		"SMB": 0.25,
		"MM":  0.20,
		"ENT": 0.15,
	}

	// Valor médio de contrato por segmento, usado na estimativa de ROI
	avgContractValues = map[string]float64{
		"SMB": 25000,
		"MM":  75000,
		"ENT": 200000,
	}
)

// Marketing gera a série diária de performance por (dia, canal, segmento).
// A matemática intermediária fica em ponto flutuante; o arredondamento para a
// precisão de saída acontece só na montagem do registro. O ruído independente
// de cada etapa do funil pode, ocasionalmente, inverter a monotonicidade
// entre etapas adjacentes; isso é intencional.
func (s *Service) Marketing() []domain.MarketingRecord {
	rng := newRNG(s.params.Seed)

	channels := marketingChannels
	if s.params.TopChannels > 0 && s.params.TopChannels < len(channels) {
		channels = channels[:s.params.TopChannels]
	}

	records := make([]domain.MarketingRecord, 0, s.params.Days*len(channels)*len(segments))

	for dayOffset := 0; dayOffset < s.params.Days; dayOffset++ {
		date := marketingStartDate.AddDate(0, 0, dayOffset)

		for _, channel := range channels {
			for _, segment := range segments {
				var spend float64
				switch channel {
				case "Google Ads":
					spend = rng.normal(5000, 1500)
				case "Facebook Ads":
					spend = rng.normal(3000, 1000)
				case "LinkedIn":
					if segment == "ENT" {
						spend = rng.normal(2000, 500)
					} else {
						spend = rng.normal(500, 200)
					}
				default:
					spend = rng.normal(1000, 300)
				}

				if spend < 0 {
					spend = 0
				}

				cpm, ok := cpmMultipliers[channel]
				if !ok {
					cpm = 10
				}
				impressions := (spend * 1000) / cpm

				ctrBase, ok := ctrBaselines[channel]
				if !ok {
					ctrBase = 0.02
				}
				ctr := ctrBase * rng.normal(1, 0.2)
				if ctr < 0.005 {
					ctr = 0.005
				}
				clicks := impressions * ctr

				leads := clicks * leadConversionRates[segment] * rng.normal(1, 0.3)
				mqls := leads * rng.uniform(0.6, 0.8)
				sqls := mqls * rng.uniform(0.2, 0.4)
				opportunities := sqls * rng.uniform(0.7, 0.9)
				closedWon := opportunities * closeRates[segment] * rng.normal(1, 0.2)

				cac := spend
				if closedWon > 0 {
					cac = spend / maxFloat(1, closedWon)
				}

				cpl := 0.0
				if leads > 0 {
					cpl = spend / maxFloat(1, leads)
				}

				roi := 0.0
				if spend > 0 {
					roi = (closedWon*avgContractValues[segment] - spend) / spend
				}

				records = append(records, domain.MarketingRecord{
					Date:          date,
					Channel:       channel,
					Campaign:      rng.pick(marketingCampaigns),
					Segment:       segment,
					Geo:           rng.pick(geos),
					Spend:         utils.RoundWithTwoDecimalPlace(spend),
					Impressions:   int(impressions),
					Clicks:        int(clicks),
					Leads:         int(leads),
					MQLs:          int(mqls),
					SQLs:          int(sqls),
					Opportunities: int(opportunities),
					ClosedWon:     int(closedWon),
					CAC:           utils.RoundWithTwoDecimalPlace(cac),
					CPL:           utils.RoundWithTwoDecimalPlace(cpl),
					CTR:           utils.RoundWithDecimalPlaces(utils.SafeDivide(clicks, impressions), 4),
					CVRStagewise:  utils.RoundWithDecimalPlaces(utils.SafeDivide(leads, clicks), 4),
					ROI:           utils.RoundWithTwoDecimalPlace(roi * 100),
				})
			}
		}
	}

	return records
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
