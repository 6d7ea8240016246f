package domain

import "time"

// FilterField identifica uma dimensão filtrável dos datasets
type FilterField string

const (
	FieldSegment FilterField = "segment"
	FieldChannel FilterField = "channel"
	FieldGeo     FilterField = "geo"
	FieldPlan    FilterField = "plan"
)

// DefaultDateColumn é a coluna de data usada quando nenhuma é informada
const DefaultDateColumn = "date"

// Filterable é implementada pelos registros dos datasets. Cada tipo informa
// quais colunas de data e dimensões ele possui; dimensões ausentes fazem o
// predicado correspondente virar um no-op, permitindo reutilizar o mesmo
// FilterSet em tabelas com esquemas diferentes.
type Filterable interface {
	// FieldDate retorna o valor da coluna de data informada, se o registro a possuir
	FieldDate(column string) (time.Time, bool)
	// FieldValue retorna o valor da dimensão informada, se o registro a possuir
	FieldValue(field FilterField) (string, bool)
}

// FilterSet é um conjunto imutável de predicados aplicados antes de qualquer
// agregação. Campos nil significam "sem restrição"; uma lista vazia não-nil
// significa "nenhum valor permitido" e zera o resultado.
type FilterSet struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Segments  []string   `json:"segments,omitempty"`
	Channels  []string   `json:"channels,omitempty"`
	Geos      []string   `json:"geos,omitempty"`
	Plans     []string   `json:"plans,omitempty"`
}

// WithoutGeo retorna uma cópia do FilterSet sem a restrição de geografia.
// Usado pela análise de cohort, que ignora geografia por definição.
func (f *FilterSet) WithoutGeo() *FilterSet {
	if f == nil {
		return nil
	}

	copied := *f
	copied.Geos = nil
	return &copied
}

// ApplyFilter aplica o FilterSet sobre uma tabela sem mutá-la. As datas são
// limites inclusivos sobre a coluna informada ("" usa DefaultDateColumn).
// Reaplicar o mesmo filtro sobre o resultado é idempotente.
func ApplyFilter[T Filterable](filters *FilterSet, rows []T, dateColumn string) []T {
	if filters == nil {
		out := make([]T, len(rows))
		copy(out, rows)
		return out
	}

	if dateColumn == "" {
		dateColumn = DefaultDateColumn
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if filters.matches(row, dateColumn) {
			out = append(out, row)
		}
	}

	return out
}

func (f *FilterSet) matches(row Filterable, dateColumn string) bool {
	if date, ok := row.FieldDate(dateColumn); ok {
		if f.StartDate != nil && date.Before(truncateToDay(*f.StartDate)) {
			return false
		}
		if f.EndDate != nil && date.After(endOfDay(*f.EndDate)) {
			return false
		}
	}

	dimensions := []struct {
		field   FilterField
		allowed []string
	}{
		{FieldSegment, f.Segments},
		{FieldChannel, f.Channels},
		{FieldGeo, f.Geos},
		{FieldPlan, f.Plans},
	}

	for _, dim := range dimensions {
		if dim.allowed == nil {
			continue
		}

		value, ok := row.FieldValue(dim.field)
		if !ok {
			// A tabela não possui esta dimensão; o predicado é um no-op
			continue
		}

		if !contains(dim.allowed, value) {
			return false
		}
	}

	return true
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
