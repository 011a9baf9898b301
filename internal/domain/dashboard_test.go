package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsFilters(t *testing.T) {
	filters, err := NewMetricsFilters("", "")
	require.NoError(t, err)
	assert.False(t, filters.HasRange())
	assert.Nil(t, filters.Period())

	filters, err = NewMetricsFilters("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, &Period{Start: "2024-01-01", End: "2024-01-31"}, filters.Period())

	invalid := [][2]string{
		{"2024-01-01", ""},
		{"", "2024-01-31"},
		{"2024-02-01", "2024-01-31"},
		{"01-01-2024", "2024-01-31"},
	}
	for _, dates := range invalid {
		_, err := NewMetricsFilters(dates[0], dates[1])
		assert.True(t, errors.Is(err, ErrInvalidPeriod), dates)
	}
}

func TestNewTrendChanges(t *testing.T) {
	current := NewMetricsReport(MetricRow{Impressions: 200, Clicks: 10, Cost: 100, Revenue: 300})
	previous := NewMetricsReport(MetricRow{Impressions: 100, Clicks: 10, Cost: 0, Revenue: 0})

	changes := NewTrendChanges(current, previous)

	assert.Equal(t, float64(100), changes.Impressions)
	assert.Equal(t, float64(0), changes.Clicks)
	assert.Equal(t, float64(0), changes.Cost)
	assert.Equal(t, float64(-50), changes.CTR)
	assert.Equal(t, float64(0), changes.ROAS)
}

func TestNewTrendChanges_SmallRatios(t *testing.T) {
	// CTR de 0,002% contra 0,003% e ROAS de 0,001 contra 0,0015 arredondam para zero no relatório
	current := NewMetricsReport(MetricRow{Impressions: 100000, Clicks: 2, Cost: 1000, Revenue: 1})
	previous := NewMetricsReport(MetricRow{Impressions: 100000, Clicks: 3, Cost: 1000, Revenue: 1.5})

	require.Equal(t, float64(0), current.CTR)
	require.Equal(t, float64(0), previous.ROAS)

	changes := NewTrendChanges(current, previous)

	assert.Equal(t, -33.33, changes.CTR)
	assert.Equal(t, -33.33, changes.ROAS)
}
