package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusPaused CampaignStatus = "paused"
	CampaignStatusEnded  CampaignStatus = "ended"
)

func (s CampaignStatus) IsValid() bool {
	return s == CampaignStatusActive || s == CampaignStatusPaused || s == CampaignStatusEnded
}

type Campaign struct {
	ID                 string         `json:"id"`
	MarketingAccountID string         `json:"marketing_account_id"`
	Platform           Platform       `json:"platform"`
	Name               string         `json:"campaign_name"`
	ExternalCampaignID string         `json:"campaign_id"`
	Objective          *string        `json:"objective,omitempty"`
	DailyBudget        float64        `json:"daily_budget"`
	TotalBudget        float64        `json:"total_budget"`
	StartDate          *time.Time     `json:"start_date,omitempty"`
	EndDate            *time.Time     `json:"end_date,omitempty"`
	Status             CampaignStatus `json:"status"`
	ResultURL          *string        `json:"result_url,omitempty"`
	AccountName        string         `json:"account_name,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type CreateCampaignRequest struct {
	MarketingAccountID string         `json:"marketing_account_id"`
	Name               string         `json:"campaign_name"`
	ExternalCampaignID string         `json:"campaign_id"`
	Objective          *string        `json:"objective"`
	DailyBudget        float64        `json:"daily_budget"`
	TotalBudget        float64        `json:"total_budget"`
	StartDate          string         `json:"start_date"`
	EndDate            string         `json:"end_date"`
	Status             CampaignStatus `json:"status"`
	ResultURL          *string        `json:"result_url"`
}

type UpdateCampaignRequest struct {
	ID          string          `json:"-"`
	Name        *string         `json:"campaign_name"`
	Objective   *string         `json:"objective"`
	DailyBudget *float64        `json:"daily_budget"`
	TotalBudget *float64        `json:"total_budget"`
	StartDate   *string         `json:"start_date"`
	EndDate     *string         `json:"end_date"`
	Status      *CampaignStatus `json:"status"`
	ResultURL   *string         `json:"result_url"`
}

type CampaignListFilters struct {
	Platform *Platform
	Status   *CampaignStatus
	Page     int
	Limit    int
}

func (f CampaignListFilters) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

type CampaignListResponse struct {
	Campaigns  []*Campaign `json:"campaigns"`
	Pagination Pagination  `json:"pagination"`
}

// CampaignMetricRow é a linha retornada pela fonte de métricas: totais da campanha no período
type CampaignMetricRow struct {
	MetricRow
	AccountID   string         `json:"account_id"`
	Status      CampaignStatus `json:"status"`
	DailyBudget float64        `json:"daily_budget"`
	TotalBudget float64        `json:"total_budget"`
	StartDate   *time.Time     `json:"start_date,omitempty"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
}

// DailyMetric é o registro diário persistido em campaign_metrics
type DailyMetric struct {
	CampaignID  string    `json:"campaign_id"`
	Date        time.Time `json:"date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Cost        float64   `json:"cost"`
	Conversions int64     `json:"conversions"`
	Revenue     float64   `json:"revenue"`
}

func (d DailyMetric) Row() MetricRow {
	return MetricRow{
		CampaignID:  d.CampaignID,
		Impressions: d.Impressions,
		Clicks:      d.Clicks,
		Cost:        d.Cost,
		Conversions: d.Conversions,
		Revenue:     d.Revenue,
	}
}

// DailyMetricReport é a linha diária com as razões derivadas
type DailyMetricReport struct {
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Cost        float64 `json:"cost"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	DerivedMetrics
}

func NewDailyMetricReport(date time.Time, row MetricRow) DailyMetricReport {
	report := NewMetricsReport(row)
	return DailyMetricReport{
		Date:           date.Format(time.DateOnly),
		Impressions:    report.Impressions,
		Clicks:         report.Clicks,
		Cost:           report.Cost,
		Conversions:    report.Conversions,
		Revenue:        report.Revenue,
		DerivedMetrics: report.DerivedMetrics,
	}
}

type CampaignMetricsResponse struct {
	CampaignID string              `json:"campaign_id"`
	Period     *Period             `json:"period"`
	Totals     MetricsReport       `json:"totals"`
	Daily      []DailyMetricReport `json:"daily"`
}
