package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/channel-marketing-api/pkg/utils"
)

var ErrInvalidPeriod = errors.New("período inválido")

// MetricsFilters é o intervalo de datas opcional das consultas de métricas
type MetricsFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// NewMetricsFilters valida start_date/end_date: ambos ou nenhum, início até o fim
func NewMetricsFilters(startDate, endDate string) (MetricsFilters, error) {
	var filters MetricsFilters

	if (startDate == "") != (endDate == "") {
		return filters, fmt.Errorf("%w: start_date e end_date devem ser informados juntos", ErrInvalidPeriod)
	}

	start, err := utils.ParseDate(startDate)
	if err != nil {
		return filters, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return filters, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	if start != nil && end != nil && start.After(*end) {
		return filters, fmt.Errorf("%w: start_date posterior a end_date", ErrInvalidPeriod)
	}

	filters.StartDate = start
	filters.EndDate = end

	return filters, nil
}

func (f MetricsFilters) HasRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}

func (f MetricsFilters) Period() *Period {
	if !f.HasRange() {
		return nil
	}
	return &Period{
		Start: f.StartDate.Format(time.DateOnly),
		End:   f.EndDate.Format(time.DateOnly),
	}
}

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BudgetGroupBy string

const (
	BudgetGroupByPlatform BudgetGroupBy = "platform"
	BudgetGroupByCampaign BudgetGroupBy = "campaign"
)

// SummaryMetrics são os totais das campanhas ativas com as contagens de campanhas e contas
type SummaryMetrics struct {
	MetricsReport
	Campaigns int `json:"campaigns"`
	Accounts  int `json:"accounts"`
}

type SummaryResponse struct {
	Period  *Period                `json:"period"`
	Metrics SummaryMetrics         `json:"metrics"`
	Status  map[CampaignStatus]int `json:"status"`
	Budget  BudgetReport           `json:"budget"`
}

type ChannelPerformance struct {
	Platform  Platform      `json:"platform"`
	Campaigns int           `json:"campaigns"`
	Metrics   MetricsReport `json:"metrics"`
}

type ChannelPerformanceResponse struct {
	Performance []ChannelPerformance `json:"performance"`
	Period      *Period              `json:"period"`
}

type BudgetResponse struct {
	GroupBy BudgetGroupBy  `json:"groupBy"`
	Budgets []BudgetReport `json:"budgets"`
}

// DailyTotals é a soma de todas as campanhas do dono em um dia
type DailyTotals struct {
	Date time.Time
	MetricRow
}

type TrendChanges struct {
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Conversions float64 `json:"conversions"`
	Cost        float64 `json:"cost"`
	Revenue     float64 `json:"revenue"`
	CTR         float64 `json:"ctr"`
	ROAS        float64 `json:"roas"`
}

type TrendsResponse struct {
	Period   Period              `json:"period"`
	Current  MetricsReport       `json:"current"`
	Previous MetricsReport       `json:"previous"`
	Changes  TrendChanges        `json:"changes"`
	Timeline []DailyMetricReport `json:"timeline"`
}

// NewTrendChanges calcula a variação percentual entre dois períodos
func NewTrendChanges(current, previous MetricsReport) TrendChanges {
	ctr := RatioChange(
		float64(current.Clicks), float64(current.Impressions),
		float64(previous.Clicks), float64(previous.Impressions),
	)

	return TrendChanges{
		Impressions: PercentChange(float64(current.Impressions), float64(previous.Impressions)),
		Clicks:      PercentChange(float64(current.Clicks), float64(previous.Clicks)),
		Conversions: PercentChange(float64(current.Conversions), float64(previous.Conversions)),
		Cost:        PercentChange(current.Cost, previous.Cost),
		Revenue:     PercentChange(current.Revenue, previous.Revenue),
		CTR:         ctr,
		ROAS:        RatioChange(current.Revenue, current.Cost, previous.Revenue, previous.Cost),
	}
}
