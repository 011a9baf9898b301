package integrating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/channel-marketing-api/infrastructure/integrator/karrot"
	karrotdomain "github.com/vfg2006/channel-marketing-api/infrastructure/integrator/karrot/domain"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/channel-marketing-api/pkg/log"
	"github.com/vfg2006/channel-marketing-api/pkg/utils"
)

type Integrator interface {
	ScrapeKarrotCampaign(ctx context.Context, userID int, request *domain.ScrapeRequest) (*domain.ScrapeResponse, error)
	SyncKarrotTarget(ctx context.Context, target *domain.KarrotSyncTarget) (*domain.DailyMetric, error)
}

type Service struct {
	karrotService karrot.KarrotIntegrator
	campaignRepo  repository.CampaignRepository
	accountRepo   repository.AccountRepository
	metricRepo    repository.MetricRepository
	today         func() time.Time
}

func NewService(
	karrotService karrot.KarrotIntegrator,
	campaignRepo repository.CampaignRepository,
	accountRepo repository.AccountRepository,
	metricRepo repository.MetricRepository,
) Integrator {
	return &Service{
		karrotService: karrotService,
		campaignRepo:  campaignRepo,
		accountRepo:   accountRepo,
		metricRepo:    metricRepo,
		today:         utils.Today,
	}
}

// ScrapeKarrotCampaign coleta a página de resultado de uma campanha do usuário
// e, se solicitado, grava a diferença do dia
func (s *Service) ScrapeKarrotCampaign(ctx context.Context, userID int, request *domain.ScrapeRequest) (*domain.ScrapeResponse, error) {
	campaignID := strings.TrimSpace(request.CampaignID)
	if campaignID == "" {
		return nil, NewIntegrationError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	campaign, err := s.campaignRepo.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("campaign_id", campaignID).Error("integrations: failed to get campaign")
		return nil, NewIntegrationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "")
	}
	if campaign == nil {
		return nil, NewIntegrationError(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID, "")
	}
	if campaign.Platform != domain.PlatformKarrot {
		return nil, NewIntegrationError(ErrNotKarrotCampaign, apiErrors.ErrInvalidRequest, campaignID, string(campaign.Platform))
	}

	pageURL := firstNonEmpty(request.URL, campaign.ResultURL)
	if pageURL == "" {
		return nil, NewIntegrationError(ErrMissingResultURL, apiErrors.ErrMissingRequiredData, campaignID, "")
	}

	sessionCookie := firstNonEmpty(request.SessionCookie)
	if sessionCookie == "" {
		account, err := s.accountRepo.GetAccount(ctx, userID, campaign.MarketingAccountID)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithFields(log.Fields{
				"campaign_id": campaignID,
				"account_id":  campaign.MarketingAccountID,
			}).Error("integrations: failed to get account")
			return nil, NewIntegrationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "")
		}
		if account != nil {
			sessionCookie = firstNonEmpty(account.SessionCookie)
		}
	}
	if sessionCookie == "" {
		return nil, NewIntegrationError(ErrMissingSession, apiErrors.ErrMissingRequiredData, campaignID, "")
	}

	result, err := s.scrape(ctx, campaignID, pageURL, sessionCookie)
	if err != nil {
		return nil, err
	}

	response := &domain.ScrapeResponse{Result: result}
	if !request.Save {
		return response, nil
	}

	daily, err := s.storeCumulative(ctx, campaignID, result)
	if err != nil {
		return nil, err
	}

	response.Saved = true
	response.Daily = daily

	return response, nil
}

// SyncKarrotTarget é usado pelo job de sincronização: coleta e grava sempre
func (s *Service) SyncKarrotTarget(ctx context.Context, target *domain.KarrotSyncTarget) (*domain.DailyMetric, error) {
	result, err := s.scrape(ctx, target.CampaignID, target.ResultURL, target.SessionCookie)
	if err != nil {
		return nil, err
	}

	return s.storeCumulative(ctx, target.CampaignID, result)
}

func (s *Service) scrape(ctx context.Context, campaignID, pageURL, sessionCookie string) (domain.ScrapeResult, error) {
	result, err := s.karrotService.Scrape(ctx, pageURL, sessionCookie)
	if err == nil {
		return result, nil
	}

	if errors.Is(err, karrotdomain.ErrInvalidInput) {
		return domain.ScrapeResult{}, NewIntegrationError(fmt.Errorf("%w: %w", ErrInvalidScrapeInput, err), apiErrors.ErrInvalidRequest, campaignID, err.Error())
	}

	log.ForContext(ctx).WithError(err).WithField("campaign_id", campaignID).Warn("integrations: karrot scrape failed")
	return domain.ScrapeResult{}, NewIntegrationError(fmt.Errorf("%w: %w", ErrScrapeFailed, err), apiErrors.ErrExternalService, campaignID, "Falha ao coletar a página do Karrot")
}

func (s *Service) storeCumulative(ctx context.Context, campaignID string, result domain.ScrapeResult) (*domain.DailyMetric, error) {
	today := s.today()

	stored, err := s.metricRepo.TotalsBefore(ctx, campaignID, today)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("campaign_id", campaignID).Error("integrations: failed to get stored totals")
		return nil, NewIntegrationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "")
	}

	daily := domain.DailyMetricFromCumulative(campaignID, today, result, stored)

	if err := s.metricRepo.UpsertDaily(ctx, &daily); err != nil {
		log.ForContext(ctx).WithError(err).WithField("campaign_id", campaignID).Error("integrations: failed to save daily metric")
		return nil, NewIntegrationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "")
	}

	return &daily, nil
}

func firstNonEmpty(values ...*string) string {
	for _, value := range values {
		if value != nil && strings.TrimSpace(*value) != "" {
			return strings.TrimSpace(*value)
		}
	}
	return ""
}
