package karrotclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	karrotdomain "github.com/vfg2006/channel-marketing-api/infrastructure/integrator/karrot/domain"
	"github.com/vfg2006/channel-marketing-api/internal/config"
)

const sessionCookieName = "daangn.sid"

// Campos numéricos obrigatórios da página de resultado
var numericFields = []string{"impressions", "clicks", "cost", "conversions"}

var nonDigits = regexp.MustCompile(`[^\d]`)

type Client interface {
	GetAdResult(ctx context.Context, pageURL, sessionToken string) (*karrotdomain.AdResult, error)
}

type KarrotClient struct {
	httpClient *http.Client
	config     config.Karrot
}

func NewClient(cfg config.Karrot) Client {
	return &KarrotClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		config: cfg,
	}
}

func (c *KarrotClient) GetAdResult(ctx context.Context, pageURL, sessionToken string) (*karrotdomain.AdResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &karrotdomain.ScrapeError{Kind: karrotdomain.KindFetch, URL: pageURL, Err: err}
	}

	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionToken})
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept-Language", c.config.AcceptLanguage)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &karrotdomain.ScrapeError{
			Kind:       karrotdomain.KindStatus,
			URL:        pageURL,
			StatusCode: resp.StatusCode,
		}
	}

	result, err := ParseAdResult(resp.Body, pageURL)
	if err != nil {
		// Timeout durante a leitura do corpo
		if isTimeout(err) {
			return nil, &karrotdomain.ScrapeError{Kind: karrotdomain.KindTimeout, URL: pageURL, Err: err}
		}
		return nil, err
	}

	return result, nil
}

// ParseAdResult extrai nome e métricas da página. Qualquer campo numérico ausente
// ou sem dígitos invalida o resultado inteiro.
func ParseAdResult(body io.Reader, pageURL string) (*karrotdomain.AdResult, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		if isTimeout(err) {
			return nil, err
		}
		return nil, &karrotdomain.ScrapeError{Kind: karrotdomain.KindParse, URL: pageURL, Field: "document", Err: err}
	}

	values := make(map[string]int64, len(numericFields))
	for _, field := range numericFields {
		value, err := extractNumber(doc, field)
		if err != nil {
			return nil, &karrotdomain.ScrapeError{Kind: karrotdomain.KindParse, URL: pageURL, Field: field, Err: err}
		}
		values[field] = value
	}

	return &karrotdomain.AdResult{
		CampaignName: strings.TrimSpace(doc.Find("h1").First().Text()),
		Impressions:  values["impressions"],
		Clicks:       values["clicks"],
		Cost:         values["cost"],
		Conversions:  values["conversions"],
	}, nil
}

func extractNumber(doc *goquery.Document, field string) (int64, error) {
	selection := doc.Find(fmt.Sprintf(`[data-testid=%q]`, field)).First()
	if selection.Length() == 0 {
		return 0, errors.New("elemento não encontrado")
	}

	digits := nonDigits.ReplaceAllString(selection.Text(), "")
	if digits == "" {
		return 0, fmt.Errorf("valor sem dígitos: %q", strings.TrimSpace(selection.Text()))
	}

	return strconv.ParseInt(digits, 10, 64)
}

func classifyTransportError(pageURL string, err error) error {
	if isTimeout(err) {
		return &karrotdomain.ScrapeError{Kind: karrotdomain.KindTimeout, URL: pageURL, Err: err}
	}
	return &karrotdomain.ScrapeError{Kind: karrotdomain.KindFetch, URL: pageURL, Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
