package domain

import "time"

type BudgetStatus string

const (
	BudgetStatusHealthy   BudgetStatus = "healthy"
	BudgetStatusWarning   BudgetStatus = "warning"
	BudgetStatusOverspent BudgetStatus = "overspent"
)

// BudgetThresholds define os limites (em %) de utilização usados em todos os endpoints
type BudgetThresholds struct {
	Warning   float64
	Overspent float64
}

// DefaultBudgetThresholds são os valores usados quando nada é configurado
var DefaultBudgetThresholds = BudgetThresholds{Warning: 80, Overspent: 100}

// Classify converte um registro de orçamento em status.
// Sem orçamento definido, qualquer gasto é considerado estouro.
func (t BudgetThresholds) Classify(totalBudget, spent, utilizationRate float64) BudgetStatus {
	if totalBudget == 0 {
		if spent > 0 {
			return BudgetStatusOverspent
		}
		return BudgetStatusHealthy
	}

	switch {
	case utilizationRate > t.Overspent:
		return BudgetStatusOverspent
	case utilizationRate >= t.Warning:
		return BudgetStatusWarning
	default:
		return BudgetStatusHealthy
	}
}

// BudgetRecord agrupa orçamento e gasto por plataforma ou campanha.
// Spent maior que TotalBudget é um estado válido.
type BudgetRecord struct {
	OwnerKey    string     `json:"key"`
	Name        string     `json:"name,omitempty"`
	Platform    Platform   `json:"platform,omitempty"`
	Campaigns   int        `json:"campaigns"`
	DailyBudget float64    `json:"daily_budget"`
	TotalBudget float64    `json:"total_budget"`
	Spent       float64    `json:"spent"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// BudgetReport é o registro de orçamento com os valores derivados
type BudgetReport struct {
	BudgetRecord
	Remaining       float64      `json:"remaining"`
	UtilizationRate float64      `json:"utilization_rate"`
	Status          BudgetStatus `json:"status"`
}

// NewBudgetReport calcula restante, utilização e status de um registro
func NewBudgetReport(record BudgetRecord, thresholds BudgetThresholds) BudgetReport {
	record.DailyBudget = Round2(record.DailyBudget)
	record.TotalBudget = Round2(record.TotalBudget)
	record.Spent = Round2(record.Spent)

	rate := Percentage(record.Spent, record.TotalBudget)

	return BudgetReport{
		BudgetRecord:    record,
		Remaining:       Round2(record.TotalBudget - record.Spent),
		UtilizationRate: rate,
		Status:          thresholds.Classify(record.TotalBudget, record.Spent, rate),
	}
}

// BudgetSettings é o orçamento alvo definido pelo próprio usuário
type BudgetSettings struct {
	UserID      int       `json:"user_id"`
	TotalBudget float64   `json:"total_budget"`
	DailyBudget float64   `json:"daily_budget"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BudgetSummaryResponse é a visão do orçamento alvo contra o gasto real
type BudgetSummaryResponse struct {
	Period          *Period      `json:"period"`
	Budget          BudgetReport `json:"budget"`
	ActiveCampaigns int          `json:"active_campaigns"`
}

type BudgetSettingsRequest struct {
	TotalBudget float64 `json:"total_budget"`
	DailyBudget float64 `json:"daily_budget"`
}
