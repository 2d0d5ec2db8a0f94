package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pelo gateway
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken          = "AUTH_002" // Token inválido ou expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrConfirmationNeeded  = "VAL_003" // Exclusão sem confirmação explícita

	// Erros de catálogo (3000-3999)
	ErrCategoryOperation = "CAT_001" // Falha ao operar sobre categorias
	ErrProductOperation  = "CAT_002" // Falha ao operar sobre produtos
	ErrImageOperation    = "CAT_003" // Falha ao operar sobre imagens de produto
	ErrImageNotFound     = "CAT_004" // Produto sem imagem

	// Erros de relatórios (4000-4999)
	ErrReportGeneration = "REP_001" // Falha ao gerar relatório
	ErrReportExport     = "REP_002" // Nenhum relatório carregado para exportar
	ErrUnknownReport    = "REP_003" // Tipo de relatório desconhecido

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_002" // Erro no núcleo do POS
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrConfirmationNeeded:    http.StatusBadRequest,
	ErrCategoryOperation:     http.StatusBadGateway,
	ErrProductOperation:      http.StatusBadGateway,
	ErrImageOperation:        http.StatusBadGateway,
	ErrImageNotFound:         http.StatusNotFound,
	ErrReportGeneration:      http.StatusBadGateway,
	ErrReportExport:          http.StatusConflict,
	ErrUnknownReport:         http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
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
