package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDailyMetricFromCumulative(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("desconta o que já foi gravado", func(t *testing.T) {
		result := ScrapeResult{Impressions: 1500, Clicks: 40, Cost: 12000, Conversions: 5}
		stored := MetricRow{Impressions: 1000, Clicks: 25, Cost: 8000, Conversions: 3}

		daily := DailyMetricFromCumulative("cmp1", today, result, stored)

		assert.Equal(t, "cmp1", daily.CampaignID)
		assert.Equal(t, today, daily.Date)
		assert.Equal(t, int64(500), daily.Impressions)
		assert.Equal(t, int64(15), daily.Clicks)
		assert.Equal(t, 4000.0, daily.Cost)
		assert.Equal(t, int64(2), daily.Conversions)
	})

	t.Run("totais menores que o gravado resultam em zero", func(t *testing.T) {
		result := ScrapeResult{Impressions: 10, Clicks: 1, Cost: 5, Conversions: 0}
		stored := MetricRow{Impressions: 100, Clicks: 5, Cost: 50, Conversions: 1}

		daily := DailyMetricFromCumulative("cmp1", today, result, stored)

		assert.Zero(t, daily.Impressions)
		assert.Zero(t, daily.Clicks)
		assert.Zero(t, daily.Cost)
		assert.Zero(t, daily.Conversions)
	})
}
