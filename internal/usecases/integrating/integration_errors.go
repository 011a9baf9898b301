package integrating

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignIDRequired = errors.New("campaign_id é obrigatório")
	ErrCampaignNotFound   = errors.New("campanha não encontrada")
	ErrNotKarrotCampaign  = errors.New("campanha não pertence ao Karrot")
	ErrMissingResultURL   = errors.New("url da página de resultado não informada")
	ErrMissingSession     = errors.New("cookie de sessão do Karrot não informado")
	ErrInvalidScrapeInput = errors.New("parâmetros de scraping inválidos")
	ErrScrapeFailed       = errors.New("falha ao coletar métricas do Karrot")
	ErrDatabaseOperation  = errors.New("erro de operação no banco de dados")
)

// IntegrationError é um erro com contexto adicional para integrações
type IntegrationError struct {
	Err        error
	Code       string
	CampaignID string
	Details    string
}

func (e *IntegrationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}

func NewIntegrationError(err error, code string, campaignID string, details string) *IntegrationError {
	return &IntegrationError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
