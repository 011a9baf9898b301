package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

const healthcheckTimeout = 2 * time.Second

// HealthCheck verifica uma dependência externa (banco, redis)
type HealthCheck func(ctx context.Context) error

type HealthcheckResponse struct {
	Status string            `json:"status"`
	Time   time.Time         `json:"time"`
	Checks map[string]string `json:"checks,omitempty"`
}

func HealthcheckHandler(checks map[string]HealthCheck) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		names := make([]string, 0, len(checks))
		for name := range checks {
			names = append(names, name)
		}
		sort.Strings(names)

		resp := HealthcheckResponse{
			Status: "ok",
			Time:   time.Now(),
			Checks: make(map[string]string, len(checks)),
		}

		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				logrus.WithError(err).WithField("dependency", name).Warn("error responding to healthcheck")
				resp.Checks[name] = "down"
				resp.Status = "degraded"
				continue
			}
			resp.Checks[name] = "up"
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, resp)
	})
}
