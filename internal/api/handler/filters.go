package handler

import (
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
	"github.com/vfg2006/revops-analytics-api/pkg/log"
	"github.com/vfg2006/revops-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseFilters monta o FilterSet a partir dos query params. Datas chegam como
// YYYY-MM-DD e as dimensões como listas separadas por vírgula. Um param de
// lista presente mas vazio vira lista vazia, que zera o resultado; um param
// ausente deixa a dimensão sem restrição.
func parseFilters(query url.Values) (*domain.FilterSet, error) {
	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return nil, errors.Wrap(err, "start_date inválido")
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return nil, errors.Wrap(err, "end_date inválido")
	}

	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, errors.New("end_date anterior a start_date")
	}

	return &domain.FilterSet{
		StartDate: startDate,
		EndDate:   endDate,
		Segments:  parseList(query, "segments"),
		Channels:  parseList(query, "channels"),
		Geos:      parseList(query, "geos"),
		Plans:     parseList(query, "plans"),
	}, nil
}

// parseList devolve nil quando o param está ausente e uma lista (possivelmente
// vazia) quando presente
func parseList(query url.Values, key string) []string {
	if !query.Has(key) {
		return nil
	}

	raw := query.Get(key)
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// respondJSON serializa o payload como JSON para a resposta
func respondJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Falha ao serializar resposta")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
