package domain

import "time"

// ScrapeResult são os totais acumulados lidos da página de resultado do anúncio
type ScrapeResult struct {
	CampaignName string `json:"campaign_name"`
	Impressions  int64  `json:"impressions"`
	Clicks       int64  `json:"clicks"`
	Cost         int64  `json:"cost"`
	Conversions  int64  `json:"conversions"`
}

// DailyMetricFromCumulative converte os totais acumulados do scraping no
// registro do dia, descontando o que já foi gravado antes de date.
// Quedas nos totais resultam em zero.
func DailyMetricFromCumulative(campaignID string, date time.Time, result ScrapeResult, stored MetricRow) DailyMetric {
	return DailyMetric{
		CampaignID:  campaignID,
		Date:        date,
		Impressions: clampDelta(result.Impressions, stored.Impressions),
		Clicks:      clampDelta(result.Clicks, stored.Clicks),
		Cost:        Round2(max(float64(result.Cost)-stored.Cost, 0)),
		Conversions: clampDelta(result.Conversions, stored.Conversions),
	}
}

func clampDelta(current, stored int64) int64 {
	if current < stored {
		return 0
	}
	return current - stored
}

type ScrapeRequest struct {
	CampaignID    string  `json:"campaign_id"`
	URL           *string `json:"url"`
	SessionCookie *string `json:"session_cookie"`
	Save          bool    `json:"save"`
}

type ScrapeResponse struct {
	Result ScrapeResult `json:"result"`
	Saved  bool         `json:"saved"`
	Daily  *DailyMetric `json:"daily,omitempty"`
}

// KarrotSyncTarget é uma campanha do Karrot apta à sincronização automática
type KarrotSyncTarget struct {
	CampaignID    string
	CampaignName  string
	UserID        int
	ResultURL     string
	SessionCookie string
}
