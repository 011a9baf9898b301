package karrotdomain

import (
	"errors"
	"fmt"
)

type ScrapeErrorKind string

const (
	KindFetch   ScrapeErrorKind = "fetch"
	KindTimeout ScrapeErrorKind = "timeout"
	KindStatus  ScrapeErrorKind = "status"
	KindParse   ScrapeErrorKind = "parse"
)

var (
	ErrScrapeFetch   = errors.New("falha de rede ao acessar a página do Karrot")
	ErrScrapeTimeout = errors.New("tempo limite excedido ao acessar a página do Karrot")
	ErrScrapeStatus  = errors.New("página do Karrot respondeu com status inesperado")
	ErrScrapeParse   = errors.New("não foi possível extrair os dados da página do Karrot")

	// ErrInvalidInput é retornado antes de qualquer requisição
	ErrInvalidInput = errors.New("parâmetros de scraping inválidos")
)

// ScrapeError descreve a falha de um scraping. StatusCode só é preenchido para KindStatus
// e Field só para KindParse.
type ScrapeError struct {
	Kind       ScrapeErrorKind
	URL        string
	StatusCode int
	Field      string
	Err        error
}

func (e *ScrapeError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("karrot scrape %s: status %d", e.URL, e.StatusCode)
	case KindParse:
		if e.Err != nil {
			return fmt.Sprintf("karrot scrape %s: campo %q inválido: %v", e.URL, e.Field, e.Err)
		}
		return fmt.Sprintf("karrot scrape %s: campo %q inválido", e.URL, e.Field)
	default:
		if e.Err != nil {
			return fmt.Sprintf("karrot scrape %s (%s): %v", e.URL, e.Kind, e.Err)
		}
		return fmt.Sprintf("karrot scrape %s (%s)", e.URL, e.Kind)
	}
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrScrapeStatus) e equivalentes
func (e *ScrapeError) Is(target error) bool {
	return target == e.Sentinel()
}

func (e *ScrapeError) Sentinel() error {
	switch e.Kind {
	case KindFetch:
		return ErrScrapeFetch
	case KindTimeout:
		return ErrScrapeTimeout
	case KindStatus:
		return ErrScrapeStatus
	case KindParse:
		return ErrScrapeParse
	default:
		return nil
	}
}

// AdResult são os valores lidos da página de resultado, antes da conversão para o domínio
type AdResult struct {
	CampaignName string
	Impressions  int64
	Clicks       int64
	Cost         int64
	Conversions  int64
}
