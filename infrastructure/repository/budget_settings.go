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

type BudgetSettingsRepository interface {
	GetSettings(ctx context.Context, userID int) (*domain.BudgetSettings, error)
	SaveSettings(ctx context.Context, settings *domain.BudgetSettings) error
	CountActiveCampaigns(ctx context.Context, userID int) (int, error)
}

type budgetSettingsRepository struct {
	db postgres.Queryer
}

func NewBudgetSettingsRepository(db postgres.Queryer) BudgetSettingsRepository {
	return &budgetSettingsRepository{
		db: db,
	}
}

func (r *budgetSettingsRepository) GetSettings(ctx context.Context, userID int) (*domain.BudgetSettings, error) {
	query, args, err := squirrel.
		Select("user_id, total_budget, daily_budget, updated_at").
		From("budget_settings").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var settings domain.BudgetSettings
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&settings.UserID,
		&settings.TotalBudget,
		&settings.DailyBudget,
		&settings.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *budgetSettingsRepository) SaveSettings(ctx context.Context, settings *domain.BudgetSettings) error {
	query, args, err := squirrel.
		Insert("budget_settings").
		Columns("user_id", "total_budget", "daily_budget").
		Values(settings.UserID, settings.TotalBudget, settings.DailyBudget).
		Suffix(`
			ON CONFLICT (user_id) DO UPDATE SET
				total_budget = EXCLUDED.total_budget,
				daily_budget = EXCLUDED.daily_budget,
				updated_at = CURRENT_TIMESTAMP
			RETURNING updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return r.db.QueryRowContext(ctx, query, args...).Scan(&settings.UpdatedAt)
}

func (r *budgetSettingsRepository) CountActiveCampaigns(ctx context.Context, userID int) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("campaigns c").
		Join("marketing_accounts ma ON ma.id = c.marketing_account_id").
		Where(squirrel.Eq{"ma.user_id": userID, "c.status": domain.CampaignStatusActive}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}
