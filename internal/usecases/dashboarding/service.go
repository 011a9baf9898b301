package dashboarding

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/channel-marketing-api/infrastructure/repository"
	"github.com/vfg2006/channel-marketing-api/internal/config"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/channel-marketing-api/pkg/log"
	"github.com/vfg2006/channel-marketing-api/pkg/utils"
)

const defaultWindowDays = 30

// InsightsQuery carrega os parâmetros crus da consulta de insights
type InsightsQuery struct {
	Limit    string
	Priority string
	Status   string
}

type Dashboarder interface {
	GetSummary(ctx context.Context, userID int, filters domain.MetricsFilters) (*domain.SummaryResponse, error)
	GetChannelPerformance(ctx context.Context, userID int, filters domain.MetricsFilters) (*domain.ChannelPerformanceResponse, error)
	GetBudget(ctx context.Context, userID int, groupBy string, filters domain.MetricsFilters) (*domain.BudgetResponse, error)
	GetInsights(ctx context.Context, userID int, query InsightsQuery) (*domain.InsightsResponse, error)
	GetTrends(ctx context.Context, userID int, filters domain.MetricsFilters) (*domain.TrendsResponse, error)
	UpdateInsightStatus(ctx context.Context, userID int, insightID int64, status string) (*domain.Insight, error)
	GetComparison(ctx context.Context, userID int, filters domain.MetricsFilters) (*domain.ComparisonResponse, error)
	GetRecommendations(ctx context.Context, userID int, filters domain.MetricsFilters) (*domain.RecommendationsResponse, error)
}

type Service struct {
	metricRepo  repository.MetricRepository
	insightRepo repository.InsightRepository
	thresholds  domain.BudgetThresholds
	cfg         config.Dashboard
	now         func() time.Time
	clock       func() time.Time
}

func NewService(
	metricRepo repository.MetricRepository,
	insightRepo repository.InsightRepository,
	cfg config.Dashboard,
) Dashboarder {
	return &Service{
		metricRepo:  metricRepo,
		insightRepo: insightRepo,
		thresholds: domain.BudgetThresholds{
			Warning:   cfg.BudgetWarningThreshold,
			Overspent: cfg.BudgetOverspentThreshold,
		},
		cfg:   cfg,
		now:   utils.Today,
		clock: time.Now,
	}
}

func (s *Service) listCampaignMetrics(ctx context.Context, userID int, filters domain.MetricsFilters) ([]*domain.CampaignMetricRow, error) {
	rows, err := s.metricRepo.ListCampaignMetrics(ctx, userID, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: failed to list campaign metrics")
		return nil, NewDashboardError(ErrMetricsSource, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas")
	}
	return rows, nil
}

// GetSummary soma as métricas e o orçamento das campanhas ativas e conta todas as campanhas por status
func (s *Service) GetSummary(ctx context.Context, userID int, filters domain.MetricsFilters) (*domain.SummaryResponse, error) {
	rows, err := s.listCampaignMetrics(ctx, userID, filters)
	if err != nil {
		return nil, err
	}

	status := map[domain.CampaignStatus]int{
		domain.CampaignStatusActive: 0,
		domain.CampaignStatusPaused: 0,
		domain.CampaignStatusEnded:  0,
	}

	var (
		totals    domain.MetricRow
		campaigns int
		accounts  = make(map[string]struct{})
		budget    = domain.BudgetRecord{OwnerKey: "total"}
	)

	for _, row := range rows {
		status[row.Status]++

		if row.Status != domain.CampaignStatusActive {
			continue
		}

		totals = totals.Add(row.MetricRow)
		campaigns++
		accounts[row.AccountID] = struct{}{}

		budget.Campaigns++
		budget.DailyBudget += row.DailyBudget
		budget.TotalBudget += row.TotalBudget
		budget.Spent += row.Cost
	}

	return &domain.SummaryResponse{
		Period: filters.Period(),
		Metrics: domain.SummaryMetrics{
			MetricsReport: domain.NewMetricsReport(totals),
			Campaigns:     campaigns,
			Accounts:      len(accounts),
		},
		Status: status,
		Budget: domain.NewBudgetReport(budget, s.thresholds),
	}, nil
}

// GetChannelPerformance agrupa por plataforma na ordem em que cada uma aparece
func (s *Service) GetChannelPerformance(ctx context.Context, userID int, filters domain.MetricsFilters) (*domain.ChannelPerformanceResponse, error) {
	rows, err := s.listCampaignMetrics(ctx, userID, filters)
	if err != nil {
		return nil, err
	}

	order := make([]domain.Platform, 0)
	totals := make(map[domain.Platform]domain.MetricRow)
	counts := make(map[domain.Platform]int)

	for _, row := range rows {
		if _, exists := totals[row.Platform]; !exists {
			order = append(order, row.Platform)
			totals[row.Platform] = domain.MetricRow{Platform: row.Platform}
		}

		totals[row.Platform] = totals[row.Platform].Add(row.MetricRow)
		counts[row.Platform]++
	}

	performance := make([]domain.ChannelPerformance, 0, len(order))
	for _, platform := range order {
		performance = append(performance, domain.ChannelPerformance{
			Platform:  platform,
			Campaigns: counts[platform],
			Metrics:   domain.NewMetricsReport(totals[platform]),
		})
	}

	return &domain.ChannelPerformanceResponse{
		Performance: performance,
		Period:      filters.Period(),
	}, nil
}

// GetBudget retorna o orçamento das campanhas ativas agrupado por plataforma ou campanha
func (s *Service) GetBudget(ctx context.Context, userID int, groupBy string, filters domain.MetricsFilters) (*domain.BudgetResponse, error) {
	group, err := parseGroupBy(groupBy)
	if err != nil {
		return nil, err
	}

	rows, err := s.listCampaignMetrics(ctx, userID, filters)
	if err != nil {
		return nil, err
	}

	order := make([]string, 0)
	records := make(map[string]*domain.BudgetRecord)

	for _, row := range rows {
		if row.Status != domain.CampaignStatusActive {
			continue
		}

		key := string(row.Platform)
		if group == domain.BudgetGroupByCampaign {
			key = row.CampaignID
		}

		record, exists := records[key]
		if !exists {
			record = &domain.BudgetRecord{OwnerKey: key, Platform: row.Platform}
			if group == domain.BudgetGroupByCampaign {
				record.Name = row.CampaignName
				record.StartDate = row.StartDate
				record.EndDate = row.EndDate
			}
			records[key] = record
			order = append(order, key)
		}

		record.Campaigns++
		record.DailyBudget += row.DailyBudget
		record.TotalBudget += row.TotalBudget
		record.Spent += row.Cost
	}

	budgets := make([]domain.BudgetReport, 0, len(order))
	for _, key := range order {
		budgets = append(budgets, domain.NewBudgetReport(*records[key], s.thresholds))
	}

	return &domain.BudgetResponse{
		GroupBy: group,
		Budgets: budgets,
	}, nil
}

func parseGroupBy(groupBy string) (domain.BudgetGroupBy, error) {
	switch domain.BudgetGroupBy(strings.TrimSpace(groupBy)) {
	case "", domain.BudgetGroupByPlatform:
		return domain.BudgetGroupByPlatform, nil
	case domain.BudgetGroupByCampaign:
		return domain.BudgetGroupByCampaign, nil
	default:
		return "", NewDashboardError(ErrInvalidGroupBy, apiErrors.ErrInvalidRequest, "valores aceitos: platform, campaign")
	}
}

// GetInsights aplica filtros e o seletor de prioridade/recência
func (s *Service) GetInsights(ctx context.Context, userID int, query InsightsQuery) (*domain.InsightsResponse, error) {
	limit, err := s.parseLimit(query.Limit)
	if err != nil {
		return nil, err
	}

	var filters domain.InsightFilters

	if query.Priority != "" {
		priority := domain.InsightPriority(query.Priority)
		if !priority.IsValid() {
			return nil, NewDashboardError(ErrInvalidPriority, apiErrors.ErrInvalidRequest, "valores aceitos: high, medium, low")
		}
		filters.Priority = &priority
	}

	if query.Status != "" {
		status := domain.InsightStatus(query.Status)
		if !status.IsValid() {
			return nil, NewDashboardError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, "valores aceitos: new, read, archived")
		}
		filters.Status = &status
	}

	insights, err := s.insightRepo.ListInsights(ctx, userID, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: failed to list insights")
		return nil, NewDashboardError(ErrMetricsSource, apiErrors.ErrDatabaseOperation, "Erro ao consultar insights")
	}

	selected := domain.SelectInsights(insights, limit)

	return &domain.InsightsResponse{
		Total:    len(selected),
		Insights: selected,
	}, nil
}

func (s *Service) parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.cfg.InsightsDefaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, NewDashboardError(ErrInvalidLimit, apiErrors.ErrInvalidRequest, "limit deve ser um inteiro positivo")
	}

	if limit > s.cfg.InsightsMaxLimit {
		return s.cfg.InsightsMaxLimit, nil
	}

	return limit, nil
}

// GetTrends compara o período com o período anterior de mesmo tamanho
func (s *Service) GetTrends(ctx context.Context, userID int, filters domain.MetricsFilters) (*domain.TrendsResponse, error) {
	filters = s.withDefaultWindow(filters)

	days := windowDays(filters)
	previousEnd := filters.StartDate.AddDate(0, 0, -1)
	previousStart := previousEnd.AddDate(0, 0, -(days - 1))

	daily, err := s.metricRepo.ListDailyTotals(ctx, userID, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: failed to list daily totals")
		return nil, NewDashboardError(ErrMetricsSource, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas diárias")
	}

	previous, err := s.metricRepo.SumMetrics(ctx, userID, domain.MetricsFilters{StartDate: &previousStart, EndDate: &previousEnd})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: failed to sum previous period")
		return nil, NewDashboardError(ErrMetricsSource, apiErrors.ErrDatabaseOperation, "Erro ao consultar o período anterior")
	}

	var current domain.MetricRow
	timeline := make([]domain.DailyMetricReport, 0, len(daily))
	for _, day := range daily {
		current = current.Add(day.MetricRow)
		timeline = append(timeline, domain.NewDailyMetricReport(day.Date, day.MetricRow))
	}

	currentReport := domain.NewMetricsReport(current)
	previousReport := domain.NewMetricsReport(previous)

	return &domain.TrendsResponse{
		Period:   *filters.Period(),
		Current:  currentReport,
		Previous: previousReport,
		Changes:  domain.NewTrendChanges(currentReport, previousReport),
		Timeline: timeline,
	}, nil
}

func (s *Service) UpdateInsightStatus(ctx context.Context, userID int, insightID int64, status string) (*domain.Insight, error) {
	newStatus := domain.InsightStatus(status)
	if !newStatus.IsValid() {
		return nil, NewDashboardError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, "valores aceitos: new, read, archived")
	}

	updated, err := s.insightRepo.UpdateStatus(ctx, userID, insightID, newStatus)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("insights: failed to update status")
		return nil, NewDashboardError(ErrInsightUpdate, apiErrors.ErrDatabaseOperation, "Erro ao atualizar insight")
	}

	if !updated {
		return nil, NewDashboardError(ErrInsightNotFound, apiErrors.ErrResourceNotFound, "")
	}

	insight, err := s.insightRepo.GetInsight(ctx, userID, insightID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("insights: failed to get insight")
		return nil, NewDashboardError(ErrMetricsSource, apiErrors.ErrDatabaseOperation, "Erro ao consultar insight")
	}
	if insight == nil {
		return nil, NewDashboardError(ErrInsightNotFound, apiErrors.ErrResourceNotFound, "")
	}

	return insight, nil
}

// GetComparison soma o período por plataforma com a participação de cada uma no custo, receita e conversões
func (s *Service) GetComparison(ctx context.Context, userID int, filters domain.MetricsFilters) (*domain.ComparisonResponse, error) {
	filters = s.withDefaultWindow(filters)

	rows, err := s.listCampaignMetrics(ctx, userID, filters)
	if err != nil {
		return nil, err
	}

	platforms, totals := domain.ComparePlatforms(rows)

	return &domain.ComparisonResponse{
		Period:    *filters.Period(),
		Platforms: platforms,
		Totals:    totals,
	}, nil
}

// GetRecommendations aplica as regras de orçamento, criativo e diversificação sobre o período
func (s *Service) GetRecommendations(ctx context.Context, userID int, filters domain.MetricsFilters) (*domain.RecommendationsResponse, error) {
	filters = s.withDefaultWindow(filters)

	rows, err := s.listCampaignMetrics(ctx, userID, filters)
	if err != nil {
		return nil, err
	}

	recommendations, summary := domain.BuildRecommendations(rows, windowDays(filters))

	return &domain.RecommendationsResponse{
		GeneratedAt:     s.clock().UTC(),
		AnalysisPeriod:  *filters.Period(),
		Recommendations: recommendations,
		Summary:         summary,
	}, nil
}

// withDefaultWindow usa os últimos 30 dias até hoje quando o período não foi informado
func (s *Service) withDefaultWindow(filters domain.MetricsFilters) domain.MetricsFilters {
	if filters.HasRange() {
		return filters
	}

	end := s.now()
	start := end.AddDate(0, 0, -defaultWindowDays)
	return domain.MetricsFilters{StartDate: &start, EndDate: &end}
}

func windowDays(filters domain.MetricsFilters) int {
	return int(filters.EndDate.Sub(*filters.StartDate).Hours()/24) + 1
}
