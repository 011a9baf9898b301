package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	karrotdomain "github.com/vfg2006/channel-marketing-api/infrastructure/integrator/karrot/domain"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/channel-marketing-api/internal/config"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	integratingmocks "github.com/vfg2006/channel-marketing-api/internal/usecases/integrating/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(ctrl *gomock.Controller, delay int) (*KarrotMetricsSyncService, *mocks.MockCampaignRepository, *integratingmocks.MockIntegrator, *[]time.Duration) {
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	integrator := integratingmocks.NewMockIntegrator(ctrl)

	service := NewKarrotMetricsSyncService(campaignRepo, integrator, &config.Config{
		KarrotSync: config.KarrotSync{CronSchedule: "0 6 * * *", RequestDelaySeconds: delay, Enabled: true},
	})

	sleeps := make([]time.Duration, 0)
	service.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	return service, campaignRepo, integrator, &sleeps
}

func TestKarrotMetricsSyncService_syncKarrotMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, campaignRepo, integrator, sleeps := newTestSyncService(ctrl, 2)

	targets := []*domain.KarrotSyncTarget{
		{CampaignID: "c1", UserID: 1, ResultURL: "https://business.daangn.com/r/1", SessionCookie: "sid1"},
		{CampaignID: "c2", UserID: 1, ResultURL: "https://business.daangn.com/r/2", SessionCookie: "sid1"},
		{CampaignID: "c3", UserID: 2, ResultURL: "https://business.daangn.com/r/3", SessionCookie: "sid2"},
	}

	campaignRepo.EXPECT().ListKarrotSyncTargets(gomock.Any()).Return(targets, nil)

	// Falha na segunda campanha não interrompe a execução
	gomock.InOrder(
		integrator.EXPECT().SyncKarrotTarget(gomock.Any(), targets[0]).
			Return(&domain.DailyMetric{CampaignID: "c1", Date: time.Now()}, nil),
		integrator.EXPECT().SyncKarrotTarget(gomock.Any(), targets[1]).
			Return(nil, &karrotdomain.ScrapeError{Kind: karrotdomain.KindStatus, StatusCode: 500}),
		integrator.EXPECT().SyncKarrotTarget(gomock.Any(), targets[2]).
			Return(&domain.DailyMetric{CampaignID: "c3", Date: time.Now()}, nil),
	)

	service.syncKarrotMetrics(context.Background(), triggerManual)

	assert.Equal(t, KarrotSyncResult{Campaigns: 3, Saved: 2, Failed: 1}, service.lastResult)
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, *sleeps)
	assert.False(t, service.syncRunning)
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestKarrotMetricsSyncService_syncKarrotMetrics_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, campaignRepo, _, _ := newTestSyncService(ctrl, 0)

	campaignRepo.EXPECT().ListKarrotSyncTargets(gomock.Any()).Return(nil, errors.New("connection refused"))

	service.syncKarrotMetrics(context.Background(), triggerScheduled)

	assert.True(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)
}

func TestKarrotMetricsSyncService_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _ := newTestSyncService(ctrl, 0)
	service.syncRunning = true

	// Nenhuma chamada ao repositório é esperada
	service.syncKarrotMetrics(context.Background(), triggerScheduled)
	assert.False(t, service.TriggerManualSync())
}

func TestKarrotMetricsSyncService_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, campaignRepo, _, _ := newTestSyncService(ctrl, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	campaignRepo.EXPECT().
		ListKarrotSyncTargets(gomock.Any()).
		Return([]*domain.KarrotSyncTarget{{CampaignID: "c1"}}, nil)

	service.syncKarrotMetrics(ctx, triggerScheduled)
	assert.Equal(t, KarrotSyncResult{Campaigns: 1}, service.lastResult)
}

func TestKarrotMetricsSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _ := newTestSyncService(ctrl, 5)
	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 6 * * *", status["sync_cron"])
	assert.Equal(t, 5, status["sync_request_delay_s"])
	assert.Equal(t, false, status["sync_running"])
}
