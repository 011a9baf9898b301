package karrot

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	karrotdomain "github.com/vfg2006/channel-marketing-api/infrastructure/integrator/karrot/domain"
	"github.com/vfg2006/channel-marketing-api/infrastructure/integrator/karrot/karrotclient"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/pkg/metrics"
)

type KarrotIntegrator interface {
	Scrape(ctx context.Context, pageURL, sessionToken string) (domain.ScrapeResult, error)
}

type KarrotService struct {
	Client karrotclient.Client
}

func New(client karrotclient.Client) KarrotIntegrator {
	return &KarrotService{
		Client: client,
	}
}

// Scrape busca uma única página de resultado, sem retry e sem cache de sessão
func (s *KarrotService) Scrape(ctx context.Context, pageURL, sessionToken string) (domain.ScrapeResult, error) {
	pageURL = strings.TrimSpace(pageURL)
	sessionToken = strings.TrimSpace(sessionToken)

	if err := ValidateInput(pageURL, sessionToken); err != nil {
		metrics.ObserveScrape("invalid")
		return domain.ScrapeResult{}, err
	}

	resp, err := s.Client.GetAdResult(ctx, pageURL, sessionToken)
	if err != nil {
		fields := logrus.Fields{"url": pageURL}

		var scrapeErr *karrotdomain.ScrapeError
		if errors.As(err, &scrapeErr) {
			fields["kind"] = scrapeErr.Kind
			fields["status_code"] = scrapeErr.StatusCode
			fields["field"] = scrapeErr.Field
			metrics.ObserveScrape(string(scrapeErr.Kind))
		} else {
			metrics.ObserveScrape(string(karrotdomain.KindFetch))
		}

		logrus.WithFields(fields).WithError(err).Error("karrot: failed to scrape ad result page")
		return domain.ScrapeResult{}, err
	}

	metrics.ObserveScrape("success")

	logrus.WithFields(logrus.Fields{
		"url":         pageURL,
		"campaign":    resp.CampaignName,
		"impressions": resp.Impressions,
	}).Debug("karrot: ad result page scraped")

	return domain.ScrapeResult{
		CampaignName: resp.CampaignName,
		Impressions:  resp.Impressions,
		Clicks:       resp.Clicks,
		Cost:         resp.Cost,
		Conversions:  resp.Conversions,
	}, nil
}

// ValidateInput rejeita URL ou token vazios e URLs que não sejam http(s)
func ValidateInput(pageURL, sessionToken string) error {
	if pageURL == "" {
		return fmt.Errorf("%w: url é obrigatória", karrotdomain.ErrInvalidInput)
	}

	if sessionToken == "" {
		return fmt.Errorf("%w: cookie de sessão é obrigatório", karrotdomain.ErrInvalidInput)
	}

	parsed, err := url.Parse(pageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: url inválida %q", karrotdomain.ErrInvalidInput, pageURL)
	}

	return nil
}
