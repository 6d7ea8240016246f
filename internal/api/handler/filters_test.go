package handler

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
)

func TestParseFilters(t *testing.T) {
	date := func(value string) *time.Time {
		parsed, err := time.Parse("2006-01-02", value)
		require.NoError(t, err)
		return &parsed
	}

	testCases := []struct {
		name     string
		query    url.Values
		expected *domain.FilterSet
		wantErr  string
	}{
		{
			name:     "sem parametros, nenhuma restricao",
			query:    url.Values{},
			expected: &domain.FilterSet{},
		},
		{
			name: "datas validas",
			query: url.Values{
				"start_date": {"2024-01-01"},
				"end_date":   {"2024-03-31"},
			},
			expected: &domain.FilterSet{
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-03-31"),
			},
		},
		{
			name: "lista separada por virgula com espacos",
			query: url.Values{
				"channels": {"Google Ads, LinkedIn ,Webinar"},
			},
			expected: &domain.FilterSet{
				Channels: []string{"Google Ads", "LinkedIn", "Webinar"},
			},
		},
		{
			name: "param de lista presente mas vazio vira lista vazia",
			query: url.Values{
				"segments": {""},
			},
			expected: &domain.FilterSet{
				Segments: []string{},
			},
		},
		{
			name: "todas as dimensoes juntas",
			query: url.Values{
				"segments": {"SMB"},
				"channels": {"Google Ads"},
				"geos":     {"NA,EMEA"},
				"plans":    {"Pro"},
			},
			expected: &domain.FilterSet{
				Segments: []string{"SMB"},
				Channels: []string{"Google Ads"},
				Geos:     []string{"NA", "EMEA"},
				Plans:    []string{"Pro"},
			},
		},
		{
			name: "start_date invalido",
			query: url.Values{
				"start_date": {"01/01/2024"},
			},
			wantErr: "start_date inválido",
		},
		{
			name: "end_date invalido",
			query: url.Values{
				"end_date": {"2024-13-40"},
			},
			wantErr: "end_date inválido",
		},
		{
			name: "end_date anterior a start_date",
			query: url.Values{
				"start_date": {"2024-06-01"},
				"end_date":   {"2024-01-01"},
			},
			wantErr: "end_date anterior a start_date",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filters, err := parseFilters(tc.query)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, filters)
		})
	}
}

func TestParseList_AusenteVersusVazio(t *testing.T) {
	query := url.Values{"channels": {""}}

	assert.Nil(t, parseList(query, "segments"))
	assert.Equal(t, []string{}, parseList(query, "channels"))
}
