package campaigning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	campaignRepo *mocks.MockCampaignRepository
	accountRepo  *mocks.MockAccountRepository
	metricRepo   *mocks.MockMetricRepository
}

func newTestService(ctrl *gomock.Controller) (CampaignService, testMocks) {
	m := testMocks{
		campaignRepo: mocks.NewMockCampaignRepository(ctrl),
		accountRepo:  mocks.NewMockAccountRepository(ctrl),
		metricRepo:   mocks.NewMockMetricRepository(ctrl),
	}
	return NewService(m.campaignRepo, m.accountRepo, m.metricRepo), m
}

func stringPtr(s string) *string {
	return &s
}

func TestService_ListCampaigns(t *testing.T) {
	platform := domain.PlatformKarrot
	status := domain.CampaignStatusActive

	tests := []struct {
		name          string
		query         ListQuery
		expected      domain.CampaignListFilters
		expectedError error
	}{
		{
			name:     "Paginação padrão",
			query:    ListQuery{},
			expected: domain.CampaignListFilters{Page: 1, Limit: 10},
		},
		{
			name:     "Filtros e limite máximo",
			query:    ListQuery{Platform: "Karrot", Status: "active", Page: "3", Limit: "1000"},
			expected: domain.CampaignListFilters{Platform: &platform, Status: &status, Page: 3, Limit: 100},
		},
		{
			name:          "Plataforma desconhecida",
			query:         ListQuery{Platform: "tiktok"},
			expectedError: ErrInvalidPlatform,
		},
		{
			name:          "Status desconhecido",
			query:         ListQuery{Status: "running"},
			expectedError: ErrInvalidStatus,
		},
		{
			name:          "Página inválida",
			query:         ListQuery{Page: "0"},
			expectedError: ErrInvalidPagination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl)

			if tt.expectedError == nil {
				m.campaignRepo.EXPECT().
					ListCampaigns(gomock.Any(), 1, tt.expected).
					Return([]*domain.Campaign{{ID: "c1"}}, 21, nil)
			}

			result, err := service.ListCampaigns(context.Background(), 1, tt.query)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Len(t, result.Campaigns, 1)
			assert.Equal(t, 21, result.Pagination.Total)
			assert.Equal(t, (21+tt.expected.Limit-1)/tt.expected.Limit, result.Pagination.TotalPages)
		})
	}
}

func TestService_GetCampaign_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	m.campaignRepo.EXPECT().GetCampaign(gomock.Any(), 1, "missing").Return(nil, nil)

	_, err := service.GetCampaign(context.Background(), 1, "missing")

	var campaignErr *CampaignError
	require.True(t, errors.As(err, &campaignErr))
	assert.Equal(t, apiErrors.ErrResourceNotFound, campaignErr.Code)
	assert.Equal(t, "missing", campaignErr.CampaignID)
}

func TestService_CreateCampaign(t *testing.T) {
	validRequest := func() *domain.CreateCampaignRequest {
		return &domain.CreateCampaignRequest{
			MarketingAccountID: "acc1",
			Name:               " Promoção de verão ",
			ExternalCampaignID: "ext-1",
			TotalBudget:        100000,
			StartDate:          "2024-01-01",
			EndDate:            "2024-01-31",
		}
	}

	tests := []struct {
		name          string
		request       func() *domain.CreateCampaignRequest
		setup         func(m testMocks)
		expectedError error
		expectedCode  string
		validate      func(t *testing.T, campaign *domain.Campaign)
	}{
		{
			name:    "Cria campanha herdando a plataforma da conta",
			request: validRequest,
			setup: func(m testMocks) {
				m.accountRepo.EXPECT().
					GetAccountByID(gomock.Any(), "acc1").
					Return(&domain.MarketingAccount{ID: "acc1", UserID: 1, Platform: domain.PlatformKarrot, AccountName: "Loja"}, nil)
				m.campaignRepo.EXPECT().
					CreateCampaign(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, campaign *domain.Campaign) error {
						campaign.CreatedAt = time.Now()
						return nil
					})
			},
			validate: func(t *testing.T, campaign *domain.Campaign) {
				assert.Len(t, campaign.ID, 12)
				assert.Equal(t, domain.PlatformKarrot, campaign.Platform)
				assert.Equal(t, "Promoção de verão", campaign.Name)
				assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
				assert.Equal(t, "2024-01-31", campaign.EndDate.Format(time.DateOnly))
			},
		},
		{
			name: "Campos obrigatórios ausentes",
			request: func() *domain.CreateCampaignRequest {
				r := validRequest()
				r.ExternalCampaignID = ""
				return r
			},
			expectedError: ErrMissingRequiredFields,
			expectedCode:  apiErrors.ErrMissingRequiredData,
		},
		{
			name: "Orçamento negativo",
			request: func() *domain.CreateCampaignRequest {
				r := validRequest()
				r.DailyBudget = -10
				return r
			},
			expectedError: ErrNegativeBudget,
			expectedCode:  apiErrors.ErrInvalidRequest,
		},
		{
			name: "Data final anterior à inicial",
			request: func() *domain.CreateCampaignRequest {
				r := validRequest()
				r.EndDate = "2023-12-31"
				return r
			},
			expectedError: ErrInvalidDates,
			expectedCode:  apiErrors.ErrInvalidRequest,
		},
		{
			name:    "Conta de outro usuário",
			request: validRequest,
			setup: func(m testMocks) {
				m.accountRepo.EXPECT().
					GetAccountByID(gomock.Any(), "acc1").
					Return(&domain.MarketingAccount{ID: "acc1", UserID: 2}, nil)
			},
			expectedError: ErrAccountForbidden,
			expectedCode:  apiErrors.ErrResourceAccess,
		},
		{
			name:    "Conta inexistente",
			request: validRequest,
			setup: func(m testMocks) {
				m.accountRepo.EXPECT().GetAccountByID(gomock.Any(), "acc1").Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
			expectedCode:  apiErrors.ErrResourceNotFound,
		},
		{
			name:    "Campanha duplicada",
			request: validRequest,
			setup: func(m testMocks) {
				m.accountRepo.EXPECT().
					GetAccountByID(gomock.Any(), "acc1").
					Return(&domain.MarketingAccount{ID: "acc1", UserID: 1, Platform: domain.PlatformNaver}, nil)
				m.campaignRepo.EXPECT().
					CreateCampaign(gomock.Any(), gomock.Any()).
					Return(repository.ErrDuplicate)
			},
			expectedError: ErrDuplicateCampaign,
			expectedCode:  apiErrors.ErrResourceConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl)
			if tt.setup != nil {
				tt.setup(m)
			}

			campaign, err := service.CreateCampaign(context.Background(), 1, tt.request())
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)

				var campaignErr *CampaignError
				require.True(t, errors.As(err, &campaignErr))
				assert.Equal(t, tt.expectedCode, campaignErr.Code)
				return
			}

			require.NoError(t, err)
			tt.validate(t, campaign)
		})
	}
}

func TestService_UpdateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.campaignRepo.EXPECT().
		GetCampaign(gomock.Any(), 1, "c1").
		Return(&domain.Campaign{ID: "c1", Name: "Antiga", StartDate: &start, Status: domain.CampaignStatusActive}, nil)
	m.campaignRepo.EXPECT().
		UpdateCampaign(gomock.Any(), gomock.Any()).
		Return(nil)

	paused := domain.CampaignStatusPaused
	budget := 5000.0
	campaign, err := service.UpdateCampaign(context.Background(), 1, &domain.UpdateCampaignRequest{
		ID:          "c1",
		Name:        stringPtr("Nova"),
		TotalBudget: &budget,
		Status:      &paused,
		ResultURL:   stringPtr("https://business.daangn.com/result/1"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Nova", campaign.Name)
	assert.Equal(t, budget, campaign.TotalBudget)
	assert.Equal(t, domain.CampaignStatusPaused, campaign.Status)
	assert.Equal(t, "https://business.daangn.com/result/1", *campaign.ResultURL)
}

func TestService_UpdateCampaign_EndBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	m.campaignRepo.EXPECT().
		GetCampaign(gomock.Any(), 1, "c1").
		Return(&domain.Campaign{ID: "c1", StartDate: &start}, nil)

	_, err := service.UpdateCampaign(context.Background(), 1, &domain.UpdateCampaignRequest{
		ID:      "c1",
		EndDate: stringPtr("2024-01-15"),
	})
	assert.ErrorIs(t, err, ErrInvalidDates)
}

func TestService_DeleteCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.campaignRepo.EXPECT().DeleteCampaign(gomock.Any(), 1, "c1").Return(true, nil)
	m.campaignRepo.EXPECT().DeleteCampaign(gomock.Any(), 1, "c2").Return(false, nil)

	assert.NoError(t, service.DeleteCampaign(context.Background(), 1, "c1"))
	assert.ErrorIs(t, service.DeleteCampaign(context.Background(), 1, "c2"), ErrCampaignNotFound)
}

func TestService_GetCampaignMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	m.campaignRepo.EXPECT().GetCampaign(gomock.Any(), 1, "c1").Return(&domain.Campaign{ID: "c1"}, nil)
	m.metricRepo.EXPECT().
		ListCampaignDaily(gomock.Any(), "c1", domain.MetricsFilters{}).
		Return([]*domain.DailyMetric{
			{CampaignID: "c1", Date: day1, Impressions: 1000, Clicks: 25, Cost: 5000, Conversions: 3, Revenue: 15000},
			{CampaignID: "c1", Date: day2, Impressions: 0, Clicks: 0, Cost: 0},
		}, nil)

	result, err := service.GetCampaignMetrics(context.Background(), 1, "c1", domain.MetricsFilters{})
	require.NoError(t, err)

	require.Len(t, result.Daily, 2)
	assert.Equal(t, "2024-01-01", result.Daily[0].Date)
	assert.Equal(t, 2.5, result.Daily[0].CTR)
	assert.Equal(t, float64(200), result.Daily[0].CPC)
	assert.Equal(t, float64(3), result.Daily[0].ROAS)
	assert.Equal(t, domain.DerivedMetrics{}, result.Daily[1].DerivedMetrics)
	assert.Equal(t, int64(1000), result.Totals.Impressions)
}
