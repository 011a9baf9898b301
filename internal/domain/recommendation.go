package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type RecommendationType string

const (
	RecommendationBudgetIncrease          RecommendationType = "budget_increase"
	RecommendationBudgetDecrease          RecommendationType = "budget_decrease"
	RecommendationCreativeOptimization    RecommendationType = "creative_optimization"
	RecommendationPlatformDiversification RecommendationType = "platform_diversification"
)

// Regras das recomendações
const (
	highROASThreshold     = 3
	lowROASThreshold      = 1
	lowROASMinCost        = 10000
	lowCTRThreshold       = 1
	lowCTRMinImpressions  = 1000
	minPlatforms          = 3
	maxBudgetIncreases    = 3
	maxBudgetDecreases    = 3
	maxCreativeReviews    = 2
	budgetIncreaseFactor  = 1.5
	budgetDecreaseFactor  = 0.5
	targetCTRForCreatives = 2
)

type Recommendation struct {
	Type               RecommendationType `json:"type"`
	Priority           InsightPriority    `json:"priority"`
	CampaignID         string             `json:"campaign_id,omitempty"`
	CampaignName       string             `json:"campaign_name,omitempty"`
	Platform           Platform           `json:"platform,omitempty"`
	CurrentBudget      *float64           `json:"current_budget,omitempty"`
	SuggestedBudget    *float64           `json:"suggested_budget,omitempty"`
	CurrentCTR         *float64           `json:"current_ctr,omitempty"`
	SuggestedPlatforms []Platform         `json:"suggested_platforms,omitempty"`
	Reason             string             `json:"reason"`
	ExpectedImpact     string             `json:"expected_impact"`
}

type RecommendationSummary struct {
	TotalCampaigns    int `json:"total_campaigns"`
	HighPerformers    int `json:"high_performers"`
	NeedsOptimization int `json:"needs_optimization"`
}

type RecommendationsResponse struct {
	GeneratedAt     time.Time             `json:"generated_at"`
	AnalysisPeriod  Period                `json:"analysis_period"`
	Recommendations []Recommendation      `json:"recommendations"`
	Summary         RecommendationSummary `json:"summary"`
}

// spendingCampaign é uma campanha com gasto no período e suas razões sem arredondamento
type spendingCampaign struct {
	row  *CampaignMetricRow
	roas decimal.Decimal
	ctr  decimal.Decimal
}

// BuildRecommendations aplica as regras sobre as campanhas de um período de days dias.
// Só campanhas com custo entram nas regras de campanha; a diversificação olha todas.
func BuildRecommendations(rows []*CampaignMetricRow, days int) ([]Recommendation, RecommendationSummary) {
	if days <= 0 {
		days = 1
	}

	spending := make([]spendingCampaign, 0, len(rows))
	used := make(map[Platform]struct{})

	for _, row := range rows {
		used[row.Platform] = struct{}{}
		if row.Cost <= 0 {
			continue
		}
		spending = append(spending, spendingCampaign{
			row:  row,
			roas: exactRatio(row.Revenue, row.Cost),
			ctr:  exactRatio(float64(row.Clicks)*100, float64(row.Impressions)),
		})
	}

	sort.SliceStable(spending, func(i, j int) bool {
		return spending[i].roas.GreaterThan(spending[j].roas)
	})

	var increases, decreases, creatives []Recommendation
	for _, campaign := range spending {
		if campaign.row.Status != CampaignStatusActive {
			continue
		}

		if len(increases) < maxBudgetIncreases && campaign.roas.GreaterThan(decimal.NewFromInt(highROASThreshold)) {
			increases = append(increases, budgetIncrease(campaign))
		}

		if len(decreases) < maxBudgetDecreases &&
			campaign.roas.LessThan(decimal.NewFromInt(lowROASThreshold)) &&
			campaign.row.Cost > lowROASMinCost {
			decreases = append(decreases, budgetDecrease(campaign, days))
		}

		if len(creatives) < maxCreativeReviews &&
			campaign.ctr.LessThan(decimal.NewFromInt(lowCTRThreshold)) &&
			campaign.row.Impressions > lowCTRMinImpressions {
			creatives = append(creatives, creativeOptimization(campaign))
		}
	}

	recommendations := make([]Recommendation, 0, len(increases)+len(decreases)+len(creatives)+1)
	recommendations = append(recommendations, increases...)
	recommendations = append(recommendations, decreases...)
	recommendations = append(recommendations, creatives...)

	if len(used) < minPlatforms {
		recommendations = append(recommendations, platformDiversification(used))
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Priority.rank() > recommendations[j].Priority.rank()
	})

	return recommendations, RecommendationSummary{
		TotalCampaigns:    len(spending),
		HighPerformers:    len(increases),
		NeedsOptimization: len(decreases) + len(creatives),
	}
}

func budgetIncrease(campaign spendingCampaign) Recommendation {
	current := Round2(campaign.row.DailyBudget)
	suggested := Round2(campaign.row.DailyBudget * budgetIncreaseFactor)
	roas := campaign.roas.Round(2).InexactFloat64()
	extraRevenue := decimal.NewFromFloat(campaign.row.DailyBudget * (budgetIncreaseFactor - 1)).
		Mul(campaign.roas).
		Round(0).
		InexactFloat64()

	return Recommendation{
		Type:            RecommendationBudgetIncrease,
		Priority:        InsightPriorityHigh,
		CampaignID:      campaign.row.CampaignID,
		CampaignName:    campaign.row.CampaignName,
		Platform:        campaign.row.Platform,
		CurrentBudget:   &current,
		SuggestedBudget: &suggested,
		Reason:          fmt.Sprintf("ROAS alto (%.2fx): aumentar o orçamento tende a elevar a receita", roas),
		ExpectedImpact:  fmt.Sprintf("receita diária estimada em +%.0f", extraRevenue),
	}
}

func budgetDecrease(campaign spendingCampaign, days int) Recommendation {
	current := Round2(campaign.row.DailyBudget)
	suggested := Round2(campaign.row.DailyBudget * budgetDecreaseFactor)
	roas := campaign.roas.Round(2).InexactFloat64()
	saving := decimal.NewFromFloat(campaign.row.Cost).
		Div(decimal.NewFromInt(int64(days))).
		Mul(decimal.NewFromFloat(budgetDecreaseFactor)).
		Round(0).
		InexactFloat64()

	return Recommendation{
		Type:            RecommendationBudgetDecrease,
		Priority:        InsightPriorityMedium,
		CampaignID:      campaign.row.CampaignID,
		CampaignName:    campaign.row.CampaignName,
		Platform:        campaign.row.Platform,
		CurrentBudget:   &current,
		SuggestedBudget: &suggested,
		Reason:          fmt.Sprintf("ROAS baixo (%.2fx): otimizar ou reduzir o orçamento", roas),
		ExpectedImpact:  fmt.Sprintf("redução estimada de %.0f na perda diária", saving),
	}
}

func creativeOptimization(campaign spendingCampaign) Recommendation {
	ctr := campaign.ctr.Round(2).InexactFloat64()

	return Recommendation{
		Type:           RecommendationCreativeOptimization,
		Priority:       InsightPriorityMedium,
		CampaignID:     campaign.row.CampaignID,
		CampaignName:   campaign.row.CampaignName,
		Platform:       campaign.row.Platform,
		CurrentCTR:     &ctr,
		Reason:         fmt.Sprintf("CTR baixo (%.2f%%): revisar os criativos do anúncio", ctr),
		ExpectedImpact: fmt.Sprintf("CTR de %d%% aumentaria os cliques mensais", targetCTRForCreatives),
	}
}

func platformDiversification(used map[Platform]struct{}) Recommendation {
	suggested := make([]Platform, 0, len(platforms))
	for _, platform := range platforms {
		if _, ok := used[platform]; !ok {
			suggested = append(suggested, platform)
		}
	}

	return Recommendation{
		Type:               RecommendationPlatformDiversification,
		Priority:           InsightPriorityLow,
		SuggestedPlatforms: suggested,
		Reason:             "poucas plataformas em uso: distribuir o investimento reduz o risco",
		ExpectedImpact:     "novas plataformas ampliam o alcance das campanhas",
	}
}
