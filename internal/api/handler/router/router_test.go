package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_RegistraGruposDeRotas(t *testing.T) {
	ping := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rt := New(
		WithRoutes(Route{Path: "/ping", Method: http.MethodGet, Handler: ping}),
		WithRoutes(Route{Path: "/pong", Method: http.MethodPost, Handler: ping}),
	)

	testCases := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
	}{
		{
			name:           "rota registrada responde",
			method:         http.MethodGet,
			target:         "/ping",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metodo errado retorna 405",
			method:         http.MethodGet,
			target:         "/pong",
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "rota desconhecida retorna 404",
			method:         http.MethodGet,
			target:         "/nada",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			rt.ServeHTTP(recorder, httptest.NewRequest(tc.method, tc.target, nil))

			assert.Equal(t, tc.expectedStatus, recorder.Code)
		})
	}
}
