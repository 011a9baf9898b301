package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/account"
	accountmocks "github.com/vfg2006/channel-marketing-api/internal/usecases/account/mocks"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/campaigning"
	campaignmocks "github.com/vfg2006/channel-marketing-api/internal/usecases/campaigning/mocks"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := campaignmocks.NewMockCampaignService(ctrl)

	service.EXPECT().
		ListCampaigns(gomock.Any(), 7, campaigning.ListQuery{Platform: "karrot", Page: "2", Limit: "5"}).
		Return(&domain.CampaignListResponse{
			Campaigns:  []*domain.Campaign{{ID: "cmp-1", Platform: domain.PlatformKarrot}},
			Pagination: domain.NewPagination(2, 5, 6),
		}, nil)

	rec := serve(Campaigns(service), newRequest(http.MethodGet, "/v1/campaigns?platform=karrot&page=2&limit=5", "", userClaims))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCampaign_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := campaignmocks.NewMockCampaignService(ctrl)

	service.EXPECT().
		GetCampaign(gomock.Any(), 7, "cmp-9").
		Return(nil, campaigning.NewCampaignErrorWithID(campaigning.ErrCampaignNotFound, apiErrors.ErrResourceNotFound, "cmp-9", ""))

	rec := serve(Campaigns(service), newRequest(http.MethodGet, "/v1/campaigns/cmp-9", "", userClaims))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeAPIError(t, rec)
	assert.Equal(t, apiErrors.ErrResourceNotFound, body.Code)
	assert.Equal(t, map[string]any{"campaign_id": "cmp-9"}, body.Details)
}

func TestCreateCampaign(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "Criada", expectedStatus: http.StatusCreated},
		{
			name:           "Conta de outro usuário",
			serviceErr:     campaigning.NewCampaignError(campaigning.ErrAccountForbidden, apiErrors.ErrResourceAccess, ""),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Campanha duplicada",
			serviceErr:     campaigning.NewCampaignError(campaigning.ErrDuplicateCampaign, apiErrors.ErrResourceConflict, ""),
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := campaignmocks.NewMockCampaignService(ctrl)

			var created *domain.Campaign
			if tt.serviceErr == nil {
				created = &domain.Campaign{ID: "cmp-1", Name: "Promo"}
			}

			service.EXPECT().
				CreateCampaign(gomock.Any(), 7, &domain.CreateCampaignRequest{MarketingAccountID: "acc-1", Name: "Promo", ExternalCampaignID: "ext-1"}).
				Return(created, tt.serviceErr)

			body := `{"marketing_account_id":"acc-1","campaign_name":"Promo","campaign_id":"ext-1"}`
			rec := serve(Campaigns(service), newRequest(http.MethodPost, "/v1/campaigns", body, userClaims))

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestUpdateCampaign_UsesPathID(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := campaignmocks.NewMockCampaignService(ctrl)

	service.EXPECT().
		UpdateCampaign(gomock.Any(), 7, gomock.Any()).
		DoAndReturn(func(_ any, _ int, req *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
			assert.Equal(t, "cmp-1", req.ID)
			require.NotNil(t, req.Status)
			assert.Equal(t, domain.CampaignStatusPaused, *req.Status)
			return &domain.Campaign{ID: req.ID, Status: *req.Status}, nil
		})

	rec := serve(Campaigns(service), newRequest(http.MethodPut, "/v1/campaigns/cmp-1", `{"status":"paused"}`, userClaims))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := campaignmocks.NewMockCampaignService(ctrl)

	service.EXPECT().DeleteCampaign(gomock.Any(), 7, "cmp-1").Return(nil)

	rec := serve(Campaigns(service), newRequest(http.MethodDelete, "/v1/campaigns/cmp-1", "", userClaims))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetCampaignMetrics_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := campaignmocks.NewMockCampaignService(ctrl)

	rec := serve(Campaigns(service), newRequest(http.MethodGet, "/v1/campaigns/cmp-1/metrics?end_date=2024-01-31", "", userClaims))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAccount_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := accountmocks.NewMockAccountService(ctrl)

	service.EXPECT().
		CreateAccount(gomock.Any(), 7, gomock.Any()).
		Return(nil, account.NewAccountError(account.ErrDuplicateAccount, apiErrors.ErrResourceConflict, ""))

	body := `{"platform":"karrot","account_name":"Loja","account_id":"k-1"}`
	rec := serve(Accounts(service), newRequest(http.MethodPost, "/v1/accounts", body, userClaims))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceConflict, decodeAPIError(t, rec).Code)
}

func TestListAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := accountmocks.NewMockAccountService(ctrl)

	service.EXPECT().
		ListAccounts(gomock.Any(), 7, "karrot").
		Return([]*domain.MarketingAccount{{ID: "acc-1"}}, nil)

	rec := serve(Accounts(service), newRequest(http.MethodGet, "/v1/accounts?platform=karrot", "", userClaims))

	require.Equal(t, http.StatusOK, rec.Code)

	var body []domain.MarketingAccount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 1)
}
