package domain

import (
	"sort"
	"time"
)

type InsightPriority string

const (
	InsightPriorityHigh   InsightPriority = "high"
	InsightPriorityMedium InsightPriority = "medium"
	InsightPriorityLow    InsightPriority = "low"
)

type InsightStatus string

const (
	InsightStatusNew      InsightStatus = "new"
	InsightStatusRead     InsightStatus = "read"
	InsightStatusArchived InsightStatus = "archived"
)

func (p InsightPriority) IsValid() bool {
	return p == InsightPriorityHigh || p == InsightPriorityMedium || p == InsightPriorityLow
}

func (s InsightStatus) IsValid() bool {
	return s == InsightStatusNew || s == InsightStatusRead || s == InsightStatusArchived
}

// rank retorna o peso da prioridade; valores desconhecidos ficam por último
func (p InsightPriority) rank() int {
	switch p {
	case InsightPriorityHigh:
		return 3
	case InsightPriorityMedium:
		return 2
	case InsightPriorityLow:
		return 1
	default:
		return 0
	}
}

type InsightCampaign struct {
	Name     string   `json:"name"`
	Platform Platform `json:"platform"`
}

type Insight struct {
	ID          int64            `json:"id"`
	UserID      int              `json:"-"`
	CampaignID  *string          `json:"campaign_id,omitempty"`
	Type        string           `json:"type"`
	Priority    InsightPriority  `json:"priority"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      InsightStatus    `json:"status"`
	Campaign    *InsightCampaign `json:"campaign,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type InsightFilters struct {
	Priority *InsightPriority
	Status   *InsightStatus
}

type InsightsResponse struct {
	Total    int        `json:"total"`
	Insights []*Insight `json:"insights"`
}

// SelectInsights ordena por prioridade e depois pelos mais recentes, mantendo a
// ordem de entrada nos empates, e retorna no máximo limit itens.
// A slice recebida não é alterada.
func SelectInsights(insights []*Insight, limit int) []*Insight {
	if len(insights) == 0 || limit <= 0 {
		return []*Insight{}
	}

	sorted := make([]*Insight, len(insights))
	copy(sorted, insights)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Priority.rank(), sorted[j].Priority.rank()
		if ri != rj {
			return ri > rj
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if limit < len(sorted) {
		sorted = sorted[:limit]
	}

	return sorted
}
