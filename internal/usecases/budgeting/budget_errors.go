package budgeting

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeBudget    = errors.New("orçamento não pode ser negativo")
	ErrDatabaseOperation = errors.New("erro de operação no banco de dados")
)

// BudgetError é um erro com contexto adicional para orçamento
type BudgetError struct {
	Err     error
	Code    string
	Details string
}

func (e *BudgetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BudgetError) Unwrap() error {
	return e.Err
}

func NewBudgetError(err error, code string, details string) *BudgetError {
	return &BudgetError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
