package account

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/channel-marketing-api/pkg/utils"
)

type AccountService interface {
	ListAccounts(ctx context.Context, userID int, platform string) ([]*domain.MarketingAccount, error)
	GetAccount(ctx context.Context, userID int, accountID string) (*domain.MarketingAccount, error)
	CreateAccount(ctx context.Context, userID int, request *domain.CreateAccountRequest) (*domain.MarketingAccount, error)
	UpdateAccount(ctx context.Context, userID int, request *domain.UpdateAccountRequest) (*domain.MarketingAccount, error)
	DeleteAccount(ctx context.Context, userID int, accountID string) error
}

type Service struct {
	accountRepository repository.AccountRepository
}

func NewService(accountRepository repository.AccountRepository) AccountService {
	return &Service{
		accountRepository: accountRepository,
	}
}

func (s *Service) ListAccounts(ctx context.Context, userID int, platform string) ([]*domain.MarketingAccount, error) {
	var platformFilter *domain.Platform
	if platform != "" {
		parsed, ok := domain.ParsePlatform(platform)
		if !ok {
			return nil, NewAccountError(ErrInvalidPlatform, apiErrors.ErrInvalidRequest, platform)
		}
		platformFilter = &parsed
	}

	accounts, err := s.accountRepository.ListAccounts(ctx, userID, platformFilter)
	if err != nil {
		logrus.WithError(err).Error("Error listing accounts on the repository")
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	if accounts == nil {
		accounts = make([]*domain.MarketingAccount, 0)
	}

	return accounts, nil
}

func (s *Service) GetAccount(ctx context.Context, userID int, accountID string) (*domain.MarketingAccount, error) {
	if accountID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	account, err := s.accountRepository.GetAccount(ctx, userID, accountID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, accountID, "Conta não encontrada")
	}

	return account, nil
}

func (s *Service) CreateAccount(ctx context.Context, userID int, request *domain.CreateAccountRequest) (*domain.MarketingAccount, error) {
	accountName := strings.TrimSpace(request.AccountName)
	externalID := strings.TrimSpace(request.ExternalAccountID)

	if request.Platform == "" || accountName == "" || externalID == "" {
		return nil, NewAccountError(ErrMissingRequiredFields, apiErrors.ErrMissingRequiredData, "")
	}

	platform, ok := domain.ParsePlatform(request.Platform)
	if !ok {
		return nil, NewAccountError(ErrInvalidPlatform, apiErrors.ErrInvalidRequest, request.Platform)
	}

	accountID, err := utils.GenerateID()
	if err != nil {
		return nil, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
	}

	account := &domain.MarketingAccount{
		ID:                accountID,
		UserID:            userID,
		Platform:          platform,
		ExternalAccountID: externalID,
		AccountName:       accountName,
		AccessToken:       request.AccessToken,
		RefreshToken:      request.RefreshToken,
		SessionCookie:     request.SessionCookie,
		Connected:         true,
	}

	if err := s.accountRepository.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewAccountError(ErrDuplicateAccount, apiErrors.ErrResourceConflict, "Conta já conectada para esta plataforma")
		}
		logrus.Error("Error creating account on the repository:", err)
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar conta no banco de dados")
	}

	logrus.Infof("account %s connected for platform %s", account.ID, account.Platform)

	return account, nil
}

func (s *Service) UpdateAccount(ctx context.Context, userID int, request *domain.UpdateAccountRequest) (*domain.MarketingAccount, error) {
	// Busca a conta para verificar se existe e pertence ao usuário
	account, err := s.GetAccount(ctx, userID, request.ID)
	if err != nil {
		return nil, err
	}

	if request.AccountName != nil {
		name := strings.TrimSpace(*request.AccountName)
		if name == "" {
			return nil, NewAccountErrorWithID(ErrMissingRequiredFields, apiErrors.ErrMissingRequiredData, request.ID, "account_name não pode ser vazio")
		}
		account.AccountName = name
	}

	if request.AccessToken != nil {
		account.AccessToken = request.AccessToken
	}

	if request.RefreshToken != nil {
		account.RefreshToken = request.RefreshToken
	}

	if request.SessionCookie != nil {
		account.SessionCookie = request.SessionCookie
	}

	if request.Connected != nil {
		account.Connected = *request.Connected
	}

	err = s.accountRepository.UpdateAccount(ctx, account)
	if err != nil {
		logrus.Error("Error updating account on the repository:", err)
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	return account, nil
}

func (s *Service) DeleteAccount(ctx context.Context, userID int, accountID string) error {
	deleted, err := s.accountRepository.DeleteAccount(ctx, userID, accountID)
	if err != nil {
		logrus.Error("Error deleting account on the repository:", err)
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao remover conta")
	}

	if !deleted {
		return NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, accountID, "Conta não encontrada")
	}

	return nil
}
