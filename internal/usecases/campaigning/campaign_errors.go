package campaigning

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrMissingRequiredFields = errors.New("campos obrigatórios ausentes")
	ErrInvalidPlatform       = errors.New("plataforma inválida")
	ErrInvalidStatus         = errors.New("status inválido")
	ErrInvalidPagination     = errors.New("paginação inválida")
	ErrNegativeBudget        = errors.New("orçamento não pode ser negativo")
	ErrInvalidDates          = errors.New("datas inválidas")

	// Erros de recurso
	ErrCampaignNotFound  = errors.New("campanha não encontrada")
	ErrAccountNotFound   = errors.New("conta não encontrada")
	ErrAccountForbidden  = errors.New("conta pertence a outro usuário")
	ErrDuplicateCampaign = errors.New("campanha já cadastrada")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro de operação no banco de dados")
	ErrGenerateID        = errors.New("erro ao gerar identificador")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // ID da campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCampaignErrorWithID(err error, code string, campaignID string, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
