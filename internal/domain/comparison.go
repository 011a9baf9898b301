package domain

import "sort"

// PlatformComparison são os totais de uma plataforma e sua participação no total do usuário
type PlatformComparison struct {
	Campaigns int `json:"campaign_count"`
	MetricsReport
	CostShare       float64 `json:"cost_share"`
	RevenueShare    float64 `json:"revenue_share"`
	ConversionShare float64 `json:"conversion_share"`
}

type ComparisonResponse struct {
	Period    Period               `json:"period"`
	Platforms []PlatformComparison `json:"platforms"`
	Totals    MetricsReport        `json:"totals"`
}

// ComparePlatforms soma todas as campanhas por plataforma, ordenando por custo decrescente.
// Empates mantêm a ordem em que a plataforma apareceu.
func ComparePlatforms(rows []*CampaignMetricRow) ([]PlatformComparison, MetricsReport) {
	order := make([]Platform, 0)
	sums := make(map[Platform]MetricRow)
	counts := make(map[Platform]int)

	var totals MetricRow
	for _, row := range rows {
		if _, exists := sums[row.Platform]; !exists {
			order = append(order, row.Platform)
			sums[row.Platform] = MetricRow{Platform: row.Platform}
		}

		sums[row.Platform] = sums[row.Platform].Add(row.MetricRow)
		counts[row.Platform]++
		totals = totals.Add(row.MetricRow)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return sums[order[i]].Cost > sums[order[j]].Cost
	})

	comparison := make([]PlatformComparison, 0, len(order))
	for _, platform := range order {
		sum := sums[platform]
		comparison = append(comparison, PlatformComparison{
			Campaigns:       counts[platform],
			MetricsReport:   NewMetricsReport(sum),
			CostShare:       Percentage(sum.Cost, totals.Cost),
			RevenueShare:    Percentage(sum.Revenue, totals.Revenue),
			ConversionShare: Percentage(float64(sum.Conversions), float64(totals.Conversions)),
		})
	}

	return comparison, NewMetricsReport(totals)
}
