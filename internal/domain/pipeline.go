package domain

import "time"

// Estágios possíveis de um negócio no pipeline
const (
	StageDiscovery   = "Discovery"
	StageDemo        = "Demo"
	StageNegotiation = "Negotiation"
	StageClosedWon   = "Closed_Won"
	StageClosedLost  = "Closed_Lost"
)

// StatusOpen indica um negócio ainda não fechado
const StatusOpen = "Open"

// PipelineDeal representa um negócio do pipeline de vendas. O registro é um
// snapshot: estágio, probabilidade e valor esperado são fixados na geração.
type PipelineDeal struct {
	DealID          string    `json:"deal_id" csv:"deal_id"`
	Account         string    `json:"account" csv:"account"`
	Segment         string    `json:"segment" csv:"segment"`
	Owner           string    `json:"owner" csv:"owner"`
	Stage           string    `json:"stage" csv:"stage"`
	Amount          float64   `json:"amount" csv:"amount"`
	CreatedAt       time.Time `json:"created_at" csv:"created_at"`
	ExpectedClose   time.Time `json:"expected_close" csv:"expected_close"`
	LastStageChange time.Time `json:"last_stage_change" csv:"last_stage_change"`
	DaysInStage     int       `json:"days_in_stage" csv:"days_in_stage"`
	Probability     float64   `json:"probability" csv:"probability"`
	ExpectedValue   float64   `json:"expected_value" csv:"expected_value"`
	Status          string    `json:"status" csv:"status"`
	SourceChannel   string    `json:"source_channel" csv:"source_channel"`
}

// IsOpen indica se o negócio ainda está em andamento
func (d PipelineDeal) IsOpen() bool {
	return d.Status == StatusOpen
}

func (d PipelineDeal) FieldDate(column string) (time.Time, bool) {
	switch column {
	case "created_at":
		return d.CreatedAt, true
	case "expected_close":
		return d.ExpectedClose, true
	case "last_stage_change":
		return d.LastStageChange, true
	}
	return time.Time{}, false
}

func (d PipelineDeal) FieldValue(field FilterField) (string, bool) {
	// A tabela de pipeline não tem coluna "channel" (somente source_channel),
	// então o filtro de canal não se aplica a ela
	if field == FieldSegment {
		return d.Segment, true
	}
	return "", false
}
