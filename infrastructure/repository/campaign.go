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

const campaignColumns = "c.id, c.marketing_account_id, c.platform, c.campaign_name, c.campaign_id, c.objective, " +
	"c.daily_budget, c.total_budget, c.start_date, c.end_date, c.status, c.result_url, ma.account_name, c.created_at, c.updated_at"

type CampaignRepository interface {
	ListCampaigns(ctx context.Context, userID int, filters domain.CampaignListFilters) ([]*domain.Campaign, int, error)
	GetCampaign(ctx context.Context, userID int, campaignID string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, campaign *domain.Campaign) error
	UpdateCampaign(ctx context.Context, campaign *domain.Campaign) error
	DeleteCampaign(ctx context.Context, userID int, campaignID string) (bool, error)
	ListKarrotSyncTargets(ctx context.Context) ([]*domain.KarrotSyncTarget, error)
}

type campaignRepository struct {
	db postgres.Queryer
}

func NewCampaignRepository(db postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

func campaignFilters(builder squirrel.SelectBuilder, userID int, filters domain.CampaignListFilters) squirrel.SelectBuilder {
	builder = builder.Where(squirrel.Eq{"ma.user_id": userID})

	if filters.Platform != nil {
		builder = builder.Where(squirrel.Eq{"c.platform": *filters.Platform})
	}

	if filters.Status != nil {
		builder = builder.Where(squirrel.Eq{"c.status": *filters.Status})
	}

	return builder
}

func listCampaignsQuery(userID int, filters domain.CampaignListFilters) squirrel.SelectBuilder {
	builder := squirrel.
		Select(campaignColumns).
		From("campaigns c").
		Join("marketing_accounts ma ON ma.id = c.marketing_account_id").
		OrderBy("c.created_at DESC", "c.id DESC").
		PlaceholderFormat(squirrel.Dollar)

	builder = campaignFilters(builder, userID, filters)

	if filters.Limit > 0 {
		builder = builder.Limit(uint64(filters.Limit)).Offset(uint64(filters.Offset()))
	}

	return builder
}

func (r *campaignRepository) ListCampaigns(ctx context.Context, userID int, filters domain.CampaignListFilters) ([]*domain.Campaign, int, error) {
	countSQL, countArgs, err := campaignFilters(
		squirrel.Select("COUNT(*)").
			From("campaigns c").
			Join("marketing_accounts ma ON ma.id = c.marketing_account_id").
			PlaceholderFormat(squirrel.Dollar),
		userID,
		filters,
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query, args, err := listCampaignsQuery(userID, filters).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := deserializeCampaign(rows)
		if err != nil {
			return nil, 0, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, total, rows.Err()
}

func (r *campaignRepository) GetCampaign(ctx context.Context, userID int, campaignID string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From("campaigns c").
		Join("marketing_accounts ma ON ma.id = c.marketing_account_id").
		Where(squirrel.Eq{"c.id": campaignID, "ma.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	campaign, err := deserializeCampaign(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return campaign, nil
}

func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Insert("campaigns").
		Columns("id", "marketing_account_id", "platform", "campaign_name", "campaign_id", "objective",
			"daily_budget", "total_budget", "start_date", "end_date", "status", "result_url").
		Values(
			campaign.ID,
			campaign.MarketingAccountID,
			campaign.Platform,
			campaign.Name,
			campaign.ExternalCampaignID,
			campaign.Objective,
			campaign.DailyBudget,
			campaign.TotalBudget,
			campaign.StartDate,
			campaign.EndDate,
			campaign.Status,
			campaign.ResultURL,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&campaign.CreatedAt, &campaign.UpdatedAt)
	return translateError(err)
}

func (r *campaignRepository) UpdateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("campaign_name", campaign.Name).
		Set("objective", campaign.Objective).
		Set("daily_budget", campaign.DailyBudget).
		Set("total_budget", campaign.TotalBudget).
		Set("start_date", campaign.StartDate).
		Set("end_date", campaign.EndDate).
		Set("status", campaign.Status).
		Set("result_url", campaign.ResultURL).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": campaign.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return r.db.QueryRowContext(ctx, query, args...).Scan(&campaign.UpdatedAt)
}

func (r *campaignRepository) DeleteCampaign(ctx context.Context, userID int, campaignID string) (bool, error) {
	query, args, err := squirrel.
		Delete("campaigns").
		Where(squirrel.Eq{"id": campaignID}).
		Where(squirrel.Expr("marketing_account_id IN (SELECT id FROM marketing_accounts WHERE user_id = ?)", userID)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// ListKarrotSyncTargets lista campanhas ativas do Karrot com página de resultado e sessão conectada
func (r *campaignRepository) ListKarrotSyncTargets(ctx context.Context) ([]*domain.KarrotSyncTarget, error) {
	query, args, err := squirrel.
		Select("c.id, c.campaign_name, ma.user_id, c.result_url, ma.session_cookie").
		From("campaigns c").
		Join("marketing_accounts ma ON ma.id = c.marketing_account_id").
		Where(squirrel.Eq{
			"c.platform":      domain.PlatformKarrot,
			"c.status":        domain.CampaignStatusActive,
			"ma.is_connected": true,
		}).
		Where(squirrel.NotEq{"c.result_url": nil, "ma.session_cookie": nil}).
		OrderBy("c.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targets := make([]*domain.KarrotSyncTarget, 0)
	for rows.Next() {
		var target domain.KarrotSyncTarget
		if err := rows.Scan(
			&target.CampaignID,
			&target.CampaignName,
			&target.UserID,
			&target.ResultURL,
			&target.SessionCookie,
		); err != nil {
			return nil, err
		}

		if target.ResultURL == "" || target.SessionCookie == "" {
			continue
		}

		targets = append(targets, &target)
	}

	return targets, rows.Err()
}

func deserializeCampaign(row scanner) (*domain.Campaign, error) {
	var (
		campaign  domain.Campaign
		objective sql.NullString
		startDate sql.NullTime
		endDate   sql.NullTime
		resultURL sql.NullString
	)

	if err := row.Scan(
		&campaign.ID,
		&campaign.MarketingAccountID,
		&campaign.Platform,
		&campaign.Name,
		&campaign.ExternalCampaignID,
		&objective,
		&campaign.DailyBudget,
		&campaign.TotalBudget,
		&startDate,
		&endDate,
		&campaign.Status,
		&resultURL,
		&campaign.AccountName,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	campaign.Objective = nullStringPtr(objective)
	campaign.StartDate = nullTimePtr(startDate)
	campaign.EndDate = nullTimePtr(endDate)
	campaign.ResultURL = nullStringPtr(resultURL)

	return &campaign, nil
}
