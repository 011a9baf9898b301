package budgeting

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository"
	"github.com/vfg2006/channel-marketing-api/internal/config"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
)

type BudgetService interface {
	SaveSettings(ctx context.Context, userID int, request domain.BudgetSettingsRequest) (*domain.BudgetSettings, error)
	GetSummary(ctx context.Context, userID int, filters domain.MetricsFilters) (*domain.BudgetSummaryResponse, error)
}

type Service struct {
	settingsRepo repository.BudgetSettingsRepository
	metricRepo   repository.MetricRepository
	thresholds   domain.BudgetThresholds
}

func NewService(
	settingsRepo repository.BudgetSettingsRepository,
	metricRepo repository.MetricRepository,
	cfg config.Dashboard,
) BudgetService {
	return &Service{
		settingsRepo: settingsRepo,
		metricRepo:   metricRepo,
		thresholds: domain.BudgetThresholds{
			Warning:   cfg.BudgetWarningThreshold,
			Overspent: cfg.BudgetOverspentThreshold,
		},
	}
}

func (s *Service) SaveSettings(ctx context.Context, userID int, request domain.BudgetSettingsRequest) (*domain.BudgetSettings, error) {
	if request.TotalBudget < 0 || request.DailyBudget < 0 {
		return nil, NewBudgetError(ErrNegativeBudget, apiErrors.ErrInvalidRequest, "total_budget e daily_budget devem ser maiores ou iguais a zero")
	}

	settings := &domain.BudgetSettings{
		UserID:      userID,
		TotalBudget: domain.Round2(request.TotalBudget),
		DailyBudget: domain.Round2(request.DailyBudget),
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Error saving budget settings")
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar configurações de orçamento")
	}

	return settings, nil
}

// GetSummary compara o orçamento alvo do usuário com o gasto registrado no período
func (s *Service) GetSummary(ctx context.Context, userID int, filters domain.MetricsFilters) (*domain.BudgetSummaryResponse, error) {
	settings, err := s.settingsRepo.GetSettings(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Error getting budget settings")
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar configurações de orçamento")
	}

	// Sem configuração, o orçamento alvo é zero
	if settings == nil {
		settings = &domain.BudgetSettings{UserID: userID}
	}

	totals, err := s.metricRepo.SumMetrics(ctx, userID, filters)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Error summing metrics")
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar gasto")
	}

	activeCampaigns, err := s.settingsRepo.CountActiveCampaigns(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Error counting active campaigns")
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao contar campanhas ativas")
	}

	record := domain.BudgetRecord{
		OwnerKey:    "total",
		Campaigns:   activeCampaigns,
		DailyBudget: settings.DailyBudget,
		TotalBudget: settings.TotalBudget,
		Spent:       totals.Cost,
	}

	return &domain.BudgetSummaryResponse{
		Period:          filters.Period(),
		Budget:          domain.NewBudgetReport(record, s.thresholds),
		ActiveCampaigns: activeCampaigns,
	}, nil
}
