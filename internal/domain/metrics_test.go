package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDerivedMetrics(t *testing.T) {
	tests := []struct {
		name     string
		row      MetricRow
		expected DerivedMetrics
	}{
		{
			name:     "valores de referência",
			row:      MetricRow{Impressions: 1000, Clicks: 25, Cost: 5000, Conversions: 3, Revenue: 15000},
			expected: DerivedMetrics{CTR: 2.5, CPC: 200, ROAS: 3},
		},
		{
			name:     "sem impressões o CTR é zero",
			row:      MetricRow{Impressions: 0, Clicks: 10, Cost: 100},
			expected: DerivedMetrics{CTR: 0, CPC: 10, ROAS: 0},
		},
		{
			name:     "sem cliques o CPC é zero",
			row:      MetricRow{Impressions: 100, Clicks: 0, Cost: 100, Revenue: 50},
			expected: DerivedMetrics{CTR: 0, CPC: 0, ROAS: 0.5},
		},
		{
			name:     "sem custo o ROAS é zero",
			row:      MetricRow{Impressions: 100, Clicks: 3, Cost: 0, Revenue: 500},
			expected: DerivedMetrics{CTR: 3, CPC: 0, ROAS: 0},
		},
		{
			name:     "linha vazia",
			row:      MetricRow{},
			expected: DerivedMetrics{},
		},
		{
			name:     "arredonda para duas casas",
			row:      MetricRow{Impressions: 3, Clicks: 1, Cost: 10, Revenue: 20},
			expected: DerivedMetrics{CTR: 33.33, CPC: 10, ROAS: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateDerivedMetrics(tt.row))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, -1.01, Round2(-1.005))
	assert.Equal(t, 2.5, Round2(2.5))
	assert.Equal(t, 0.67, Round2(2.0/3.0))
	assert.Equal(t, float64(0), Round2(0))
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, float64(0), PercentChange(100, 0))
	assert.Equal(t, float64(50), PercentChange(150, 100))
	assert.Equal(t, float64(-25), PercentChange(75, 100))
}

func TestMetricRowAdd(t *testing.T) {
	a := MetricRow{Platform: PlatformGoogle, Impressions: 10, Clicks: 1, Cost: 1.5, Conversions: 1, Revenue: 3}
	b := MetricRow{Platform: PlatformNaver, Impressions: 5, Clicks: 2, Cost: 2.5, Conversions: 0, Revenue: 1}

	sum := a.Add(b)

	assert.Equal(t, PlatformGoogle, sum.Platform)
	assert.Equal(t, int64(15), sum.Impressions)
	assert.Equal(t, int64(3), sum.Clicks)
	assert.Equal(t, 4.0, sum.Cost)
	assert.Equal(t, int64(1), sum.Conversions)
	assert.Equal(t, 4.0, sum.Revenue)
	assert.Equal(t, int64(10), a.Impressions)
}

func TestParsePlatform(t *testing.T) {
	p, ok := ParsePlatform(" Karrot ")
	assert.True(t, ok)
	assert.Equal(t, PlatformKarrot, p)

	_, ok = ParsePlatform("tiktok")
	assert.False(t, ok)
}
