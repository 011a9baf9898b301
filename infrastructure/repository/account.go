package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/channel-marketing-api/infrastructure/database/postgres"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
)

const accountColumns = "ma.id, ma.user_id, ma.platform, ma.account_id, ma.account_name, ma.access_token, ma.refresh_token, " +
	"ma.session_cookie, ma.is_connected, ma.created_at, ma.updated_at, " +
	"(SELECT COUNT(*) FROM campaigns c WHERE c.marketing_account_id = ma.id)"

type AccountRepository interface {
	ListAccounts(ctx context.Context, userID int, platform *domain.Platform) ([]*domain.MarketingAccount, error)
	GetAccount(ctx context.Context, userID int, accountID string) (*domain.MarketingAccount, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.MarketingAccount, error)
	CreateAccount(ctx context.Context, account *domain.MarketingAccount) error
	UpdateAccount(ctx context.Context, account *domain.MarketingAccount) error
	DeleteAccount(ctx context.Context, userID int, accountID string) (bool, error)
}

type accountRepository struct {
	db postgres.Queryer
}

func NewAccountRepository(db postgres.Queryer) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) ListAccounts(ctx context.Context, userID int, platform *domain.Platform) ([]*domain.MarketingAccount, error) {
	queryBuilder := squirrel.
		Select(accountColumns).
		From("marketing_accounts ma").
		Where(squirrel.Eq{"ma.user_id": userID}).
		OrderBy("ma.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if platform != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"ma.platform": *platform})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.MarketingAccount, 0)
	for rows.Next() {
		acc, err := deserializeAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (a *accountRepository) GetAccount(ctx context.Context, userID int, accountID string) (*domain.MarketingAccount, error) {
	return a.getAccount(ctx, squirrel.Eq{"ma.id": accountID, "ma.user_id": userID})
}

func (a *accountRepository) GetAccountByID(ctx context.Context, accountID string) (*domain.MarketingAccount, error) {
	return a.getAccount(ctx, squirrel.Eq{"ma.id": accountID})
}

func (a *accountRepository) getAccount(ctx context.Context, whereClause squirrel.Eq) (*domain.MarketingAccount, error) {
	query, args, err := squirrel.
		Select(accountColumns).
		From("marketing_accounts ma").
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	acc, err := deserializeAccount(a.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) CreateAccount(ctx context.Context, account *domain.MarketingAccount) error {
	query, args, err := squirrel.
		Insert("marketing_accounts").
		Columns("id", "user_id", "platform", "account_id", "account_name", "access_token", "refresh_token", "session_cookie", "is_connected").
		Values(
			account.ID,
			account.UserID,
			account.Platform,
			account.ExternalAccountID,
			account.AccountName,
			account.AccessToken,
			account.RefreshToken,
			account.SessionCookie,
			account.Connected,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = a.db.QueryRowContext(ctx, query, args...).Scan(&account.CreatedAt, &account.UpdatedAt)
	return translateError(err)
}

func (a *accountRepository) UpdateAccount(ctx context.Context, account *domain.MarketingAccount) error {
	query, args, err := squirrel.
		Update("marketing_accounts").
		Set("account_name", account.AccountName).
		Set("access_token", account.AccessToken).
		Set("refresh_token", account.RefreshToken).
		Set("session_cookie", account.SessionCookie).
		Set("is_connected", account.Connected).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": account.ID, "user_id": account.UserID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return a.db.QueryRowContext(ctx, query, args...).Scan(&account.UpdatedAt)
}

func (a *accountRepository) DeleteAccount(ctx context.Context, userID int, accountID string) (bool, error) {
	query, args, err := squirrel.
		Delete("marketing_accounts").
		Where(squirrel.Eq{"id": accountID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := a.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func deserializeAccount(row scanner) (*domain.MarketingAccount, error) {
	var (
		acc           domain.MarketingAccount
		accessToken   sql.NullString
		refreshToken  sql.NullString
		sessionCookie sql.NullString
	)

	if err := row.Scan(
		&acc.ID,
		&acc.UserID,
		&acc.Platform,
		&acc.ExternalAccountID,
		&acc.AccountName,
		&accessToken,
		&refreshToken,
		&sessionCookie,
		&acc.Connected,
		&acc.CreatedAt,
		&acc.UpdatedAt,
		&acc.CampaignCount,
	); err != nil {
		return nil, err
	}

	acc.AccessToken = nullStringPtr(accessToken)
	acc.RefreshToken = nullStringPtr(refreshToken)
	acc.SessionCookie = nullStringPtr(sessionCookie)

	return &acc, nil
}
