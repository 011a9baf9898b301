package domain

import (
	"github.com/shopspring/decimal"
)

// MetricRow representa as métricas somadas de uma campanha, plataforma ou dono
type MetricRow struct {
	Platform     Platform `json:"platform,omitempty"`
	CampaignID   string   `json:"campaign_id,omitempty"`
	CampaignName string   `json:"campaign_name,omitempty"`
	Impressions  int64    `json:"impressions"`
	Clicks       int64    `json:"clicks"`
	Cost         float64  `json:"cost"`
	Conversions  int64    `json:"conversions"`
	Revenue      float64  `json:"revenue"`
}

// Add soma os contadores de outra linha, mantendo a identificação da linha atual
func (m MetricRow) Add(other MetricRow) MetricRow {
	m.Impressions += other.Impressions
	m.Clicks += other.Clicks
	m.Cost += other.Cost
	m.Conversions += other.Conversions
	m.Revenue += other.Revenue
	return m
}

func (m MetricRow) IsEmpty() bool {
	return m.Impressions == 0 && m.Clicks == 0 && m.Cost == 0 && m.Conversions == 0 && m.Revenue == 0
}

// DerivedMetrics são as razões calculadas a cada requisição, nunca persistidas
type DerivedMetrics struct {
	CTR  float64 `json:"ctr"`
	CPC  float64 `json:"cpc"`
	ROAS float64 `json:"roas"`
}

// MetricsReport é a linha de métricas junto com as razões derivadas
type MetricsReport struct {
	MetricRow
	DerivedMetrics
}

// NewMetricsReport é o único ponto de construção das razões de uma linha
func NewMetricsReport(row MetricRow) MetricsReport {
	row.Cost = Round2(row.Cost)
	row.Revenue = Round2(row.Revenue)

	return MetricsReport{
		MetricRow:      row,
		DerivedMetrics: CalculateDerivedMetrics(row),
	}
}

// CalculateDerivedMetrics calcula CTR, CPC e ROAS. Divisor zero resulta em zero.
func CalculateDerivedMetrics(row MetricRow) DerivedMetrics {
	return DerivedMetrics{
		CTR:  Percentage(float64(row.Clicks), float64(row.Impressions)),
		CPC:  Ratio(row.Cost, float64(row.Clicks)),
		ROAS: Ratio(row.Revenue, row.Cost),
	}
}

// Ratio retorna numerator/denominator com duas casas decimais, ou zero se o divisor for zero
func Ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return decimal.NewFromFloat(numerator).
		DivRound(decimal.NewFromFloat(denominator), 16).
		Round(2).
		InexactFloat64()
}

// Percentage retorna part/total*100 com duas casas decimais, ou zero se total for zero
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	return decimal.NewFromFloat(part).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromFloat(total), 16).
		Round(2).
		InexactFloat64()
}

// PercentChange retorna a variação percentual entre dois períodos (previous = 0 resulta em zero)
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	return Percentage(current-previous, previous)
}

// RatioChange compara duas razões sem arredondá-las antes; só a variação final é arredondada
func RatioChange(currentNum, currentDen, previousNum, previousDen float64) float64 {
	previous := exactRatio(previousNum, previousDen)
	if previous.IsZero() {
		return 0
	}

	return exactRatio(currentNum, currentDen).
		Sub(previous).
		Mul(decimal.NewFromInt(100)).
		DivRound(previous, 16).
		Round(2).
		InexactFloat64()
}

func exactRatio(numerator, denominator float64) decimal.Decimal {
	if denominator == 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(numerator).DivRound(decimal.NewFromFloat(denominator), 16)
}

// Round2 arredonda para duas casas decimais, metade para longe do zero
func Round2(value float64) float64 {
	if value == 0 {
		return 0
	}

	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}
