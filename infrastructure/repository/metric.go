package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/channel-marketing-api/infrastructure/database/postgres"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
)

const metricTotalsColumns = "COALESCE(SUM(cm.impressions), 0), COALESCE(SUM(cm.clicks), 0), COALESCE(SUM(cm.cost), 0), " +
	"COALESCE(SUM(cm.conversions), 0), COALESCE(SUM(cm.revenue), 0)"

type MetricRepository interface {
	ListCampaignMetrics(ctx context.Context, userID int, filters domain.MetricsFilters) ([]*domain.CampaignMetricRow, error)
	ListDailyTotals(ctx context.Context, userID int, filters domain.MetricsFilters) ([]*domain.DailyTotals, error)
	SumMetrics(ctx context.Context, userID int, filters domain.MetricsFilters) (domain.MetricRow, error)
	ListCampaignDaily(ctx context.Context, campaignID string, filters domain.MetricsFilters) ([]*domain.DailyMetric, error)
	TotalsBefore(ctx context.Context, campaignID string, date time.Time) (domain.MetricRow, error)
	UpsertDaily(ctx context.Context, metric *domain.DailyMetric) error
}

type metricRepository struct {
	db postgres.Queryer
}

func NewMetricRepository(db postgres.Queryer) MetricRepository {
	return &metricRepository{
		db: db,
	}
}

// campaignMetricsQuery lista todas as campanhas do usuário com os totais do período.
// O filtro de data fica no LEFT JOIN para que campanhas sem métricas continuem na lista.
func campaignMetricsQuery(userID int, filters domain.MetricsFilters) squirrel.SelectBuilder {
	joinClause := "campaign_metrics cm ON cm.campaign_id = c.id"
	joinArgs := make([]any, 0, 2)
	if filters.HasRange() {
		joinClause += " AND cm.date >= ? AND cm.date <= ?"
		joinArgs = append(joinArgs, filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))
	}

	return squirrel.
		Select(
			"c.id, c.campaign_name, c.platform, c.marketing_account_id, c.status, c.daily_budget, c.total_budget, c.start_date, c.end_date",
			metricTotalsColumns,
		).
		From("campaigns c").
		Join("marketing_accounts ma ON ma.id = c.marketing_account_id").
		LeftJoin(joinClause, joinArgs...).
		Where(squirrel.Eq{"ma.user_id": userID}).
		GroupBy("c.id").
		OrderBy("c.created_at ASC", "c.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *metricRepository) ListCampaignMetrics(ctx context.Context, userID int, filters domain.MetricsFilters) ([]*domain.CampaignMetricRow, error) {
	query, args, err := campaignMetricsQuery(userID, filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.CampaignMetricRow, 0)
	for rows.Next() {
		var (
			row       domain.CampaignMetricRow
			startDate sql.NullTime
			endDate   sql.NullTime
		)

		if err := rows.Scan(
			&row.CampaignID,
			&row.CampaignName,
			&row.Platform,
			&row.AccountID,
			&row.Status,
			&row.DailyBudget,
			&row.TotalBudget,
			&startDate,
			&endDate,
			&row.Impressions,
			&row.Clicks,
			&row.Cost,
			&row.Conversions,
			&row.Revenue,
		); err != nil {
			return nil, err
		}

		row.StartDate = nullTimePtr(startDate)
		row.EndDate = nullTimePtr(endDate)
		result = append(result, &row)
	}

	return result, rows.Err()
}

func ownerMetricsQuery(userID int, filters domain.MetricsFilters, columns ...string) squirrel.SelectBuilder {
	builder := squirrel.
		Select(columns...).
		From("campaign_metrics cm").
		Join("campaigns c ON c.id = cm.campaign_id").
		Join("marketing_accounts ma ON ma.id = c.marketing_account_id").
		Where(squirrel.Eq{"ma.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	return withDateRange(builder, filters)
}

func withDateRange(builder squirrel.SelectBuilder, filters domain.MetricsFilters) squirrel.SelectBuilder {
	if filters.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"cm.date": filters.StartDate.Format(time.DateOnly)})
	}
	if filters.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"cm.date": filters.EndDate.Format(time.DateOnly)})
	}
	return builder
}

func (r *metricRepository) ListDailyTotals(ctx context.Context, userID int, filters domain.MetricsFilters) ([]*domain.DailyTotals, error) {
	query, args, err := ownerMetricsQuery(userID, filters, "cm.date", metricTotalsColumns).
		GroupBy("cm.date").
		OrderBy("cm.date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.DailyTotals, 0)
	for rows.Next() {
		var day domain.DailyTotals
		if err := rows.Scan(
			&day.Date,
			&day.Impressions,
			&day.Clicks,
			&day.Cost,
			&day.Conversions,
			&day.Revenue,
		); err != nil {
			return nil, err
		}
		result = append(result, &day)
	}

	return result, rows.Err()
}

func (r *metricRepository) SumMetrics(ctx context.Context, userID int, filters domain.MetricsFilters) (domain.MetricRow, error) {
	var totals domain.MetricRow

	query, args, err := ownerMetricsQuery(userID, filters, metricTotalsColumns).ToSql()
	if err != nil {
		return totals, fmt.Errorf("failed to build query: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&totals.Impressions,
		&totals.Clicks,
		&totals.Cost,
		&totals.Conversions,
		&totals.Revenue,
	)

	return totals, err
}

func (r *metricRepository) ListCampaignDaily(ctx context.Context, campaignID string, filters domain.MetricsFilters) ([]*domain.DailyMetric, error) {
	builder := squirrel.
		Select("cm.campaign_id, cm.date, cm.impressions, cm.clicks, cm.cost, cm.conversions, cm.revenue").
		From("campaign_metrics cm").
		Where(squirrel.Eq{"cm.campaign_id": campaignID}).
		OrderBy("cm.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := withDateRange(builder, filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.DailyMetric, 0)
	for rows.Next() {
		var metric domain.DailyMetric
		if err := rows.Scan(
			&metric.CampaignID,
			&metric.Date,
			&metric.Impressions,
			&metric.Clicks,
			&metric.Cost,
			&metric.Conversions,
			&metric.Revenue,
		); err != nil {
			return nil, err
		}
		result = append(result, &metric)
	}

	return result, rows.Err()
}

func (r *metricRepository) TotalsBefore(ctx context.Context, campaignID string, date time.Time) (domain.MetricRow, error) {
	totals := domain.MetricRow{CampaignID: campaignID}

	query, args, err := squirrel.
		Select(metricTotalsColumns).
		From("campaign_metrics cm").
		Where(squirrel.Eq{"cm.campaign_id": campaignID}).
		Where(squirrel.Lt{"cm.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return totals, fmt.Errorf("failed to build query: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&totals.Impressions,
		&totals.Clicks,
		&totals.Cost,
		&totals.Conversions,
		&totals.Revenue,
	)

	return totals, err
}

func upsertDailyQuery(metric *domain.DailyMetric) squirrel.InsertBuilder {
	return squirrel.
		Insert("campaign_metrics").
		Columns("campaign_id", "date", "impressions", "clicks", "cost", "conversions", "revenue").
		Values(
			metric.CampaignID,
			metric.Date.Format(time.DateOnly),
			metric.Impressions,
			metric.Clicks,
			metric.Cost,
			metric.Conversions,
			metric.Revenue,
		).
		Suffix(`
			ON CONFLICT (campaign_id, date) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				cost = EXCLUDED.cost,
				conversions = EXCLUDED.conversions,
				revenue = EXCLUDED.revenue,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *metricRepository) UpsertDaily(ctx context.Context, metric *domain.DailyMetric) error {
	query, args, err := upsertDailyQuery(metric).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
