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

const insightColumns = "i.id, i.user_id, i.campaign_id, i.type, i.priority, i.title, i.description, i.status, i.created_at, c.campaign_name, c.platform"

type InsightRepository interface {
	ListInsights(ctx context.Context, userID int, filters domain.InsightFilters) ([]*domain.Insight, error)
	GetInsight(ctx context.Context, userID int, insightID int64) (*domain.Insight, error)
	UpdateStatus(ctx context.Context, userID int, insightID int64, status domain.InsightStatus) (bool, error)
}

type insightRepository struct {
	db postgres.Queryer
}

func NewInsightRepository(db postgres.Queryer) InsightRepository {
	return &insightRepository{
		db: db,
	}
}

func listInsightsQuery(userID int, filters domain.InsightFilters) squirrel.SelectBuilder {
	builder := squirrel.
		Select(insightColumns).
		From("insights i").
		LeftJoin("campaigns c ON c.id = i.campaign_id").
		Where(squirrel.Eq{"i.user_id": userID}).
		OrderBy("i.created_at DESC", "i.id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Priority != nil {
		builder = builder.Where(squirrel.Eq{"i.priority": *filters.Priority})
	}

	if filters.Status != nil {
		builder = builder.Where(squirrel.Eq{"i.status": *filters.Status})
	}

	return builder
}

func (r *insightRepository) ListInsights(ctx context.Context, userID int, filters domain.InsightFilters) ([]*domain.Insight, error) {
	query, args, err := listInsightsQuery(userID, filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	insights := make([]*domain.Insight, 0)
	for rows.Next() {
		insight, err := deserializeInsight(rows)
		if err != nil {
			return nil, err
		}
		insights = append(insights, insight)
	}

	return insights, rows.Err()
}

func (r *insightRepository) GetInsight(ctx context.Context, userID int, insightID int64) (*domain.Insight, error) {
	query, args, err := squirrel.
		Select(insightColumns).
		From("insights i").
		LeftJoin("campaigns c ON c.id = i.campaign_id").
		Where(squirrel.Eq{"i.user_id": userID, "i.id": insightID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	insight, err := deserializeInsight(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return insight, nil
}

func (r *insightRepository) UpdateStatus(ctx context.Context, userID int, insightID int64, status domain.InsightStatus) (bool, error) {
	query, args, err := squirrel.
		Update("insights").
		Set("status", status).
		Where(squirrel.Eq{"id": insightID, "user_id": userID}).
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

type scanner interface {
	Scan(dest ...any) error
}

func deserializeInsight(row scanner) (*domain.Insight, error) {
	var (
		insight      domain.Insight
		campaignID   sql.NullString
		campaignName sql.NullString
		platform     sql.NullString
	)

	if err := row.Scan(
		&insight.ID,
		&insight.UserID,
		&campaignID,
		&insight.Type,
		&insight.Priority,
		&insight.Title,
		&insight.Description,
		&insight.Status,
		&insight.CreatedAt,
		&campaignName,
		&platform,
	); err != nil {
		return nil, err
	}

	insight.CampaignID = nullStringPtr(campaignID)
	if campaignName.Valid {
		insight.Campaign = &domain.InsightCampaign{
			Name:     campaignName.String,
			Platform: domain.Platform(platform.String),
		}
	}

	return &insight, nil
}
