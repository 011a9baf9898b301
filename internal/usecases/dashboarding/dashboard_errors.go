package dashboarding

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrInvalidGroupBy  = errors.New("groupBy inválido")
	ErrInvalidLimit    = errors.New("limit inválido")
	ErrInvalidPriority = errors.New("prioridade inválida")
	ErrInvalidStatus   = errors.New("status inválido")

	// Erros de recurso
	ErrInsightNotFound = errors.New("insight não encontrado")

	// Erros de banco de dados
	ErrMetricsSource = errors.New("erro ao consultar a fonte de métricas")
	ErrInsightUpdate = errors.New("erro ao atualizar insight")
)

// DashboardError é um erro com contexto adicional para o dashboard
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsValidationError verifica se o erro foi causado por parâmetros do cliente
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidGroupBy) ||
		errors.Is(err, ErrInvalidLimit) ||
		errors.Is(err, ErrInvalidPriority) ||
		errors.Is(err, ErrInvalidStatus)
}
