package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "channel_marketing"

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP por rota e status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP por rota",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ScrapeResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "karrot_scrape_total",
			Help:      "Resultados do scraping do Karrot por tipo",
		},
		[]string{"result"},
	)

	SyncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "karrot_sync_runs_total",
			Help:      "Execuções da sincronização do Karrot por origem",
		},
		[]string{"trigger"},
	)
)

// ObserveHTTP registra uma requisição atendida pela rota informada
func ObserveHTTP(method, route string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveScrape registra o resultado de um scraping ("success" ou o tipo do erro)
func ObserveScrape(result string) {
	ScrapeResults.WithLabelValues(result).Inc()
}

func ObserveSyncRun(trigger string) {
	SyncRuns.WithLabelValues(trigger).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
