package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestService_ListAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	service := NewService(mockRepo)

	naver := domain.PlatformNaver
	mockRepo.EXPECT().
		ListAccounts(gomock.Any(), 1, &naver).
		Return(nil, nil)

	accounts, err := service.ListAccounts(context.Background(), 1, "NAVER")
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)

	_, err = service.ListAccounts(context.Background(), 1, "tiktok")
	assert.ErrorIs(t, err, ErrInvalidPlatform)
}

func TestService_CreateAccount(t *testing.T) {
	tests := []struct {
		name          string
		request       *domain.CreateAccountRequest
		setup         func(repo *mocks.MockAccountRepository)
		expectedError error
		expectedCode  string
	}{
		{
			name: "Conta criada",
			request: &domain.CreateAccountRequest{
				Platform:          "karrot",
				AccountName:       "Loja Centro",
				ExternalAccountID: "K-100",
				SessionCookie:     stringPtr("sid"),
			},
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, account *domain.MarketingAccount) error {
						assert.Equal(t, 1, account.UserID)
						assert.Equal(t, domain.PlatformKarrot, account.Platform)
						assert.True(t, account.HasSession())
						return nil
					})
			},
		},
		{
			name:          "Campos obrigatórios ausentes",
			request:       &domain.CreateAccountRequest{Platform: "google", AccountName: "  "},
			expectedError: ErrMissingRequiredFields,
			expectedCode:  apiErrors.ErrMissingRequiredData,
		},
		{
			name:          "Plataforma inválida",
			request:       &domain.CreateAccountRequest{Platform: "tiktok", AccountName: "A", ExternalAccountID: "1"},
			expectedError: ErrInvalidPlatform,
			expectedCode:  apiErrors.ErrInvalidRequest,
		},
		{
			name:    "Conta duplicada",
			request: &domain.CreateAccountRequest{Platform: "google", AccountName: "A", ExternalAccountID: "1"},
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)
			},
			expectedError: ErrDuplicateAccount,
			expectedCode:  apiErrors.ErrResourceConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockAccountRepository(ctrl)
			if tt.setup != nil {
				tt.setup(mockRepo)
			}

			account, err := NewService(mockRepo).CreateAccount(context.Background(), 1, tt.request)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)

				var accountErr *AccountError
				require.True(t, errors.As(err, &accountErr))
				assert.Equal(t, tt.expectedCode, accountErr.Code)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, account.ID)
			assert.True(t, account.Connected)
		})
	}
}

func TestService_UpdateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		GetAccount(gomock.Any(), 1, "acc1").
		Return(&domain.MarketingAccount{ID: "acc1", UserID: 1, AccountName: "Antiga", Connected: true}, nil)
	mockRepo.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).Return(nil)

	disconnected := false
	account, err := service.UpdateAccount(context.Background(), 1, &domain.UpdateAccountRequest{
		ID:            "acc1",
		AccountName:   stringPtr("Nova"),
		SessionCookie: stringPtr("new-sid"),
		Connected:     &disconnected,
	})
	require.NoError(t, err)

	assert.Equal(t, "Nova", account.AccountName)
	assert.Equal(t, "new-sid", *account.SessionCookie)
	assert.False(t, account.Connected)
}

func TestService_UpdateAccount_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	mockRepo.EXPECT().GetAccount(gomock.Any(), 1, "acc1").Return(nil, nil)

	_, err := NewService(mockRepo).UpdateAccount(context.Background(), 1, &domain.UpdateAccountRequest{ID: "acc1"})
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestService_DeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().DeleteAccount(gomock.Any(), 1, "acc1").Return(false, errors.New("connection reset"))

	err := service.DeleteAccount(context.Background(), 1, "acc1")
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}
