package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSyncer struct {
	accept    bool
	triggered int
}

func (f *fakeSyncer) TriggerManualSync() bool {
	f.triggered++
	return f.accept
}

func (f *fakeSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_running": !f.accept}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		accept         bool
		expectedStatus int
		expectedCalls  int
	}{
		{name: "Dispara sincronização", path: "/v1/cron/karrot-sync/run", accept: true, expectedStatus: http.StatusAccepted, expectedCalls: 1},
		{name: "Já em execução", path: "/v1/cron/karrot-sync/run", accept: false, expectedStatus: http.StatusConflict, expectedCalls: 1},
		{name: "Tipo desconhecido", path: "/v1/cron/meta/run", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncer := &fakeSyncer{accept: tt.accept}

			rec := serve(CronJobs(CronJobServices{KarrotMetricsSyncService: syncer}), newRequest(http.MethodPost, tt.path, "", adminClaims))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCalls, syncer.triggered)
		})
	}
}

func TestRunCronJob_AdminOnly(t *testing.T) {
	syncer := &fakeSyncer{accept: true}

	rec := serve(CronJobs(CronJobServices{KarrotMetricsSyncService: syncer}), newRequest(http.MethodPost, "/v1/cron/karrot-sync/run", "", userClaims))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, syncer.triggered)
}

func TestGetCronStatus(t *testing.T) {
	syncer := &fakeSyncer{accept: true}

	rec := serve(CronJobs(CronJobServices{KarrotMetricsSyncService: syncer}), newRequest(http.MethodGet, "/v1/cron/status", "", adminClaims))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body[CronJobTypeKarrotSync]["sync_running"])
}

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name           string
		checks         map[string]HealthCheck
		expectedStatus int
		expectedBody   HealthcheckResponse
	}{
		{
			name: "Dependências disponíveis",
			checks: map[string]HealthCheck{
				"database": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return nil },
			},
			expectedStatus: http.StatusOK,
			expectedBody:   HealthcheckResponse{Status: "ok", Checks: map[string]string{"database": "up", "redis": "up"}},
		},
		{
			name: "Redis fora do ar",
			checks: map[string]HealthCheck{
				"database": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return errors.New("connection refused") },
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   HealthcheckResponse{Status: "degraded", Checks: map[string]string{"database": "up", "redis": "down"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(Healthcheck(tt.checks), newRequest(http.MethodGet, "/healthcheck", "", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body HealthcheckResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody.Status, body.Status)
			assert.Equal(t, tt.expectedBody.Checks, body.Checks)
		})
	}
}
