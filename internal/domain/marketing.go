package domain

import "time"

// MarketingRecord representa um registro diário de performance de marketing
// por canal e segmento. Os nomes das colunas do CSV preservam a capitalização
// original (MQLs, SQLs, CAC...) por compatibilidade com os consumidores.
type MarketingRecord struct {
	Date          time.Time `json:"date" csv:"date"`
	Channel       string    `json:"channel" csv:"channel"`
	Campaign      string    `json:"campaign" csv:"campaign"`
	Segment       string    `json:"segment" csv:"segment"`
	Geo           string    `json:"geo" csv:"geo"`
	Spend         float64   `json:"spend" csv:"spend"`
	Impressions   int       `json:"impressions" csv:"impressions"`
	Clicks        int       `json:"clicks" csv:"clicks"`
	Leads         int       `json:"leads" csv:"leads"`
	MQLs          int       `json:"MQLs" csv:"MQLs"`
	SQLs          int       `json:"SQLs" csv:"SQLs"`
	Opportunities int       `json:"opportunities" csv:"opportunities"`
	ClosedWon     int       `json:"closed_won" csv:"closed_won"`
	CAC           float64   `json:"CAC" csv:"CAC"`
	CPL           float64   `json:"CPL" csv:"CPL"`
	CTR           float64   `json:"CTR" csv:"CTR"`
	CVRStagewise  float64   `json:"CVR_stagewise" csv:"CVR_stagewise"`
	ROI           float64   `json:"ROI" csv:"ROI"`
}

func (r MarketingRecord) FieldDate(column string) (time.Time, bool) {
	if column == DefaultDateColumn {
		return r.Date, true
	}
	return time.Time{}, false
}

func (r MarketingRecord) FieldValue(field FilterField) (string, bool) {
	switch field {
	case FieldSegment:
		return r.Segment, true
	case FieldChannel:
		return r.Channel, true
	case FieldGeo:
		return r.Geo, true
	}
	return "", false
}
