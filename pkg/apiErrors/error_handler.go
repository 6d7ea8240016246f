package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidFilter  = "VAL_002" // Filtro inválido (datas, listas)
	ErrInvalidFormat  = "VAL_003" // Formato de dados inválido

	// Erros de dados (DATA)
	ErrDatasetNotFound = "DATA_001" // Arquivo de dataset não encontrado
	ErrMissingColumns  = "DATA_002" // Colunas obrigatórias ausentes no dataset
	ErrMalformedRow    = "DATA_003" // Linha com valor que não pôde ser interpretado

	// Erros do servidor (SRV)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrJobConflict    = "SRV_002" // Job de atualização já em execução
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrInvalidFilter:   http.StatusBadRequest,
	ErrInvalidFormat:   http.StatusBadRequest,
	ErrDatasetNotFound: http.StatusNotFound,
	ErrMissingColumns:  http.StatusInternalServerError,
	ErrMalformedRow:    http.StatusInternalServerError,
	ErrInternalServer:  http.StatusInternalServerError,
	ErrJobConflict:     http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
