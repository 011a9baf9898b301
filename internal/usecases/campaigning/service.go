package campaigning

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/channel-marketing-api/pkg/utils"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListQuery carrega os parâmetros crus da listagem de campanhas
type ListQuery struct {
	Platform string
	Status   string
	Page     string
	Limit    string
}

type CampaignService interface {
	ListCampaigns(ctx context.Context, userID int, query ListQuery) (*domain.CampaignListResponse, error)
	GetCampaign(ctx context.Context, userID int, campaignID string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, userID int, request *domain.CreateCampaignRequest) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, userID int, request *domain.UpdateCampaignRequest) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, userID int, campaignID string) error
	GetCampaignMetrics(ctx context.Context, userID int, campaignID string, filters domain.MetricsFilters) (*domain.CampaignMetricsResponse, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
	accountRepo  repository.AccountRepository
	metricRepo   repository.MetricRepository
}

func NewService(
	campaignRepo repository.CampaignRepository,
	accountRepo repository.AccountRepository,
	metricRepo repository.MetricRepository,
) CampaignService {
	return &Service{
		campaignRepo: campaignRepo,
		accountRepo:  accountRepo,
		metricRepo:   metricRepo,
	}
}

func (s *Service) ListCampaigns(ctx context.Context, userID int, query ListQuery) (*domain.CampaignListResponse, error) {
	filters, err := parseListQuery(query)
	if err != nil {
		return nil, err
	}

	campaigns, total, err := s.campaignRepo.ListCampaigns(ctx, userID, filters)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Error listing campaigns")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas")
	}

	if campaigns == nil {
		campaigns = make([]*domain.Campaign, 0)
	}

	return &domain.CampaignListResponse{
		Campaigns:  campaigns,
		Pagination: domain.NewPagination(filters.Page, filters.Limit, total),
	}, nil
}

func parseListQuery(query ListQuery) (domain.CampaignListFilters, error) {
	filters := domain.CampaignListFilters{Page: defaultPage, Limit: defaultLimit}

	if query.Platform != "" {
		platform, ok := domain.ParsePlatform(query.Platform)
		if !ok {
			return filters, NewCampaignError(ErrInvalidPlatform, apiErrors.ErrInvalidRequest, query.Platform)
		}
		filters.Platform = &platform
	}

	if query.Status != "" {
		status := domain.CampaignStatus(query.Status)
		if !status.IsValid() {
			return filters, NewCampaignError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, query.Status)
		}
		filters.Status = &status
	}

	if query.Page != "" {
		page, err := strconv.Atoi(query.Page)
		if err != nil || page < 1 {
			return filters, NewCampaignError(ErrInvalidPagination, apiErrors.ErrInvalidRequest, "page deve ser um inteiro positivo")
		}
		filters.Page = page
	}

	if query.Limit != "" {
		limit, err := strconv.Atoi(query.Limit)
		if err != nil || limit < 1 {
			return filters, NewCampaignError(ErrInvalidPagination, apiErrors.ErrInvalidRequest, "limit deve ser um inteiro positivo")
		}
		filters.Limit = min(limit, maxLimit)
	}

	return filters, nil
}

func (s *Service) GetCampaign(ctx context.Context, userID int, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Error getting campaign")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao buscar campanha")
	}

	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID, "")
	}

	return campaign, nil
}

func (s *Service) CreateCampaign(ctx context.Context, userID int, request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	request.MarketingAccountID = strings.TrimSpace(request.MarketingAccountID)
	request.Name = strings.TrimSpace(request.Name)
	request.ExternalCampaignID = strings.TrimSpace(request.ExternalCampaignID)

	if request.MarketingAccountID == "" || request.Name == "" || request.ExternalCampaignID == "" {
		return nil, NewCampaignError(ErrMissingRequiredFields, apiErrors.ErrMissingRequiredData, "marketing_account_id, campaign_name e campaign_id são obrigatórios")
	}

	if request.DailyBudget < 0 || request.TotalBudget < 0 {
		return nil, NewCampaignError(ErrNegativeBudget, apiErrors.ErrInvalidRequest, "")
	}

	status := request.Status
	if status == "" {
		status = domain.CampaignStatusActive
	}
	if !status.IsValid() {
		return nil, NewCampaignError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, string(status))
	}

	startDate, endDate, err := parseDates(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	account, err := s.ownedAccount(ctx, userID, request.MarketingAccountID)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "")
	}

	campaign := &domain.Campaign{
		ID:                 id,
		MarketingAccountID: account.ID,
		Platform:           account.Platform,
		Name:               request.Name,
		ExternalCampaignID: request.ExternalCampaignID,
		Objective:          request.Objective,
		DailyBudget:        request.DailyBudget,
		TotalBudget:        request.TotalBudget,
		StartDate:          startDate,
		EndDate:            endDate,
		Status:             status,
		ResultURL:          request.ResultURL,
		AccountName:        account.AccountName,
	}

	if err := s.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewCampaignError(ErrDuplicateCampaign, apiErrors.ErrResourceConflict, request.ExternalCampaignID)
		}
		logrus.WithError(err).Error("Error creating campaign")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar campanha")
	}

	logrus.WithField("campaign_id", campaign.ID).Info("Campaign created")

	return campaign, nil
}

// ownedAccount diferencia conta inexistente (404) de conta de outro usuário (403)
func (s *Service) ownedAccount(ctx context.Context, userID int, accountID string) (*domain.MarketingAccount, error) {
	account, err := s.accountRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Error getting account")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar conta")
	}

	if account == nil {
		return nil, NewCampaignError(ErrAccountNotFound, apiErrors.ErrResourceNotFound, accountID)
	}

	if account.UserID != userID {
		return nil, NewCampaignError(ErrAccountForbidden, apiErrors.ErrResourceAccess, accountID)
	}

	return account, nil
}

func parseDates(start, end string) (*time.Time, *time.Time, error) {
	startDate, err := utils.ParseDate(start)
	if err != nil {
		return nil, nil, NewCampaignError(ErrInvalidDates, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD")
	}

	endDate, err := utils.ParseDate(end)
	if err != nil {
		return nil, nil, NewCampaignError(ErrInvalidDates, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD")
	}

	if err := validateDateOrder(startDate, endDate); err != nil {
		return nil, nil, err
	}

	return startDate, endDate, nil
}

func validateDateOrder(startDate, endDate *time.Time) error {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return NewCampaignError(ErrInvalidDates, apiErrors.ErrInvalidRequest, "end_date não pode ser anterior a start_date")
	}
	return nil
}

func (s *Service) UpdateCampaign(ctx context.Context, userID int, request *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	campaign, err := s.GetCampaign(ctx, userID, request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, NewCampaignErrorWithID(ErrMissingRequiredFields, apiErrors.ErrMissingRequiredData, request.ID, "campaign_name não pode ser vazio")
		}
		campaign.Name = name
	}

	if request.Objective != nil {
		campaign.Objective = request.Objective
	}

	if request.DailyBudget != nil {
		campaign.DailyBudget = *request.DailyBudget
	}

	if request.TotalBudget != nil {
		campaign.TotalBudget = *request.TotalBudget
	}

	if campaign.DailyBudget < 0 || campaign.TotalBudget < 0 {
		return nil, NewCampaignErrorWithID(ErrNegativeBudget, apiErrors.ErrInvalidRequest, request.ID, "")
	}

	if request.StartDate != nil {
		if campaign.StartDate, err = utils.ParseDate(*request.StartDate); err != nil {
			return nil, NewCampaignErrorWithID(ErrInvalidDates, apiErrors.ErrInvalidFormat, request.ID, "start_date deve estar no formato YYYY-MM-DD")
		}
	}

	if request.EndDate != nil {
		if campaign.EndDate, err = utils.ParseDate(*request.EndDate); err != nil {
			return nil, NewCampaignErrorWithID(ErrInvalidDates, apiErrors.ErrInvalidFormat, request.ID, "end_date deve estar no formato YYYY-MM-DD")
		}
	}

	if err := validateDateOrder(campaign.StartDate, campaign.EndDate); err != nil {
		return nil, err
	}

	if request.Status != nil {
		if !request.Status.IsValid() {
			return nil, NewCampaignErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, request.ID, string(*request.Status))
		}
		campaign.Status = *request.Status
	}

	if request.ResultURL != nil {
		campaign.ResultURL = request.ResultURL
	}

	if err := s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
		logrus.WithError(err).WithField("campaign_id", request.ID).Error("Error updating campaign")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar campanha")
	}

	return campaign, nil
}

func (s *Service) DeleteCampaign(ctx context.Context, userID int, campaignID string) error {
	deleted, err := s.campaignRepo.DeleteCampaign(ctx, userID, campaignID)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Error deleting campaign")
		return NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao remover campanha")
	}

	if !deleted {
		return NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID, "")
	}

	return nil
}

// GetCampaignMetrics retorna as linhas diárias da campanha com os totais do período
func (s *Service) GetCampaignMetrics(ctx context.Context, userID int, campaignID string, filters domain.MetricsFilters) (*domain.CampaignMetricsResponse, error) {
	if _, err := s.GetCampaign(ctx, userID, campaignID); err != nil {
		return nil, err
	}

	daily, err := s.metricRepo.ListCampaignDaily(ctx, campaignID, filters)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Error listing campaign metrics")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao consultar métricas")
	}

	totals := domain.MetricRow{CampaignID: campaignID}
	reports := make([]domain.DailyMetricReport, 0, len(daily))
	for _, metric := range daily {
		row := metric.Row()
		totals = totals.Add(row)
		reports = append(reports, domain.NewDailyMetricReport(metric.Date, row))
	}

	return &domain.CampaignMetricsResponse{
		CampaignID: campaignID,
		Period:     filters.Period(),
		Totals:     domain.NewMetricsReport(totals),
		Daily:      reports,
	}, nil
}
