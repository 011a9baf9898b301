package budgeting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/channel-marketing-api/internal/config"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var testConfig = config.Dashboard{BudgetWarningThreshold: 80, BudgetOverspentThreshold: 100}

func TestService_SaveSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settingsRepo := mocks.NewMockBudgetSettingsRepository(ctrl)
	service := NewService(settingsRepo, mocks.NewMockMetricRepository(ctrl), testConfig)

	settingsRepo.EXPECT().
		SaveSettings(gomock.Any(), &domain.BudgetSettings{UserID: 4, TotalBudget: 1000000, DailyBudget: 50000.01}).
		Return(nil)

	settings, err := service.SaveSettings(context.Background(), 4, domain.BudgetSettingsRequest{TotalBudget: 1000000, DailyBudget: 50000.005})
	require.NoError(t, err)
	assert.Equal(t, 50000.01, settings.DailyBudget)
}

func TestService_SaveSettings_Negative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockBudgetSettingsRepository(ctrl), mocks.NewMockMetricRepository(ctrl), testConfig)

	_, err := service.SaveSettings(context.Background(), 4, domain.BudgetSettingsRequest{TotalBudget: -1})

	var budgetErr *BudgetError
	require.True(t, errors.As(err, &budgetErr))
	assert.ErrorIs(t, err, ErrNegativeBudget)
	assert.Equal(t, apiErrors.ErrInvalidRequest, budgetErr.Code)
}

func TestService_GetSummary(t *testing.T) {
	tests := []struct {
		name           string
		settings       *domain.BudgetSettings
		spent          float64
		expectedStatus domain.BudgetStatus
		expectedRate   float64
	}{
		{
			name:           "Gasto dentro do orçamento",
			settings:       &domain.BudgetSettings{UserID: 1, TotalBudget: 5000000, DailyBudget: 100000},
			spent:          3750000,
			expectedStatus: domain.BudgetStatusHealthy,
			expectedRate:   75,
		},
		{
			name:           "Gasto igual ao orçamento",
			settings:       &domain.BudgetSettings{UserID: 1, TotalBudget: 1000},
			spent:          1000,
			expectedStatus: domain.BudgetStatusWarning,
			expectedRate:   100,
		},
		{
			name:           "Sem configuração e com gasto",
			settings:       nil,
			spent:          10,
			expectedStatus: domain.BudgetStatusOverspent,
			expectedRate:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			settingsRepo := mocks.NewMockBudgetSettingsRepository(ctrl)
			metricRepo := mocks.NewMockMetricRepository(ctrl)
			service := NewService(settingsRepo, metricRepo, testConfig)

			settingsRepo.EXPECT().GetSettings(gomock.Any(), 1).Return(tt.settings, nil)
			metricRepo.EXPECT().SumMetrics(gomock.Any(), 1, domain.MetricsFilters{}).Return(domain.MetricRow{Cost: tt.spent}, nil)
			settingsRepo.EXPECT().CountActiveCampaigns(gomock.Any(), 1).Return(2, nil)

			result, err := service.GetSummary(context.Background(), 1, domain.MetricsFilters{})
			require.NoError(t, err)

			assert.Equal(t, 2, result.ActiveCampaigns)
			assert.Equal(t, tt.expectedStatus, result.Budget.Status)
			assert.Equal(t, tt.expectedRate, result.Budget.UtilizationRate)
			assert.Equal(t, tt.spent, result.Budget.Spent)
		})
	}
}

func TestService_GetSummary_DatabaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settingsRepo := mocks.NewMockBudgetSettingsRepository(ctrl)
	service := NewService(settingsRepo, mocks.NewMockMetricRepository(ctrl), testConfig)

	settingsRepo.EXPECT().GetSettings(gomock.Any(), 1).Return(nil, errors.New("timeout"))

	_, err := service.GetSummary(context.Background(), 1, domain.MetricsFilters{})
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}
