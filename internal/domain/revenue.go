package domain

import "time"

// RevenueCustomer representa um cliente de receita recorrente. Para clientes
// com churn, todos os campos de movimento de MRR são zerados e churn_date e
// churn_reason ficam preenchidos.
type RevenueCustomer struct {
	CustomerID     string     `json:"customer_id" csv:"customer_id"`
	Account        string     `json:"account" csv:"account"`
	Segment        string     `json:"segment" csv:"segment"`
	Plan           string     `json:"plan" csv:"plan"`
	StartDate      time.Time  `json:"start_date" csv:"start_date"`
	MRR            float64    `json:"mrr" csv:"mrr"`
	NewMRR         float64    `json:"new_mrr" csv:"new_mrr"`
	ExpansionMRR   float64    `json:"expansion_mrr" csv:"expansion_mrr"`
	ContractionMRR float64    `json:"contraction_mrr" csv:"contraction_mrr"`
	ChurnedFlag    bool       `json:"churned_flag" csv:"churned_flag"`
	ChurnDate      *time.Time `json:"churn_date,omitempty" csv:"churn_date"`
	ChurnReason    string     `json:"churn_reason,omitempty" csv:"churn_reason"`
	ARPA           float64    `json:"arpa" csv:"arpa"`
	NRR            float64    `json:"nrr" csv:"nrr"`
}

func (c RevenueCustomer) FieldDate(column string) (time.Time, bool) {
	switch column {
	case "start_date":
		return c.StartDate, true
	case "churn_date":
		if c.ChurnDate != nil {
			return *c.ChurnDate, true
		}
	}
	return time.Time{}, false
}

func (c RevenueCustomer) FieldValue(field FilterField) (string, bool) {
	switch field {
	case FieldSegment:
		return c.Segment, true
	case FieldPlan:
		return c.Plan, true
	}
	return "", false
}
