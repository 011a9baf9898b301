package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository"
	"github.com/vfg2006/channel-marketing-api/internal/config"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/integrating"
	"github.com/vfg2006/channel-marketing-api/pkg/metrics"
)

const (
	triggerScheduled = "scheduled"
	triggerManual    = "manual"
)

// KarrotSyncConfig representa a configuração do agendador de métricas do Karrot
type KarrotSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// KarrotSyncResult resume a última execução
type KarrotSyncResult struct {
	Campaigns int `json:"campaigns"`
	Saved     int `json:"saved"`
	Failed    int `json:"failed"`
}

// KarrotMetricsSyncService gerencia o agendamento e execução da coleta de métricas do Karrot
type KarrotMetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              KarrotSyncConfig
	campaignRepo        repository.CampaignRepository
	integrator          integrating.Integrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          KarrotSyncResult
	sleep               func(time.Duration)
}

// NewKarrotMetricsSyncService cria uma nova instância do serviço de sincronização do Karrot
func NewKarrotMetricsSyncService(
	campaignRepo repository.CampaignRepository,
	integrator integrating.Integrator,
	appConfig *config.Config,
) *KarrotMetricsSyncService {
	syncConfig := KarrotSyncConfig{
		CronSchedule:        appConfig.KarrotSync.CronSchedule,
		RequestDelaySeconds: appConfig.KarrotSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.KarrotSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do Karrot carregada")

	return &KarrotMetricsSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		campaignRepo: campaignRepo,
		integrator:   integrator,
		sleep:        time.Sleep,
	}
}

// Start inicia o agendador
func (s *KarrotMetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do Karrot desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do Karrot")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncKarrotMetrics(ctx, triggerScheduled)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do Karrot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do Karrot")
		s.scheduler.Stop()
	}()

	return nil
}

// syncKarrotMetrics coleta todas as campanhas aptas em sequência.
// Falhas de uma campanha são registradas e não interrompem a execução.
func (s *KarrotMetricsSyncService) syncKarrotMetrics(ctx context.Context, trigger string) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do Karrot já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	metrics.ObserveSyncRun(trigger)
	startTime := time.Now()

	targets, err := s.campaignRepo.ListKarrotSyncTargets(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas do Karrot para sincronização")
		return
	}

	result := KarrotSyncResult{Campaigns: len(targets)}

	for i, target := range targets {
		if ctx.Err() != nil {
			logrus.Warn("Sincronização do Karrot interrompida")
			break
		}

		daily, err := s.integrator.SyncKarrotTarget(ctx, target)
		if err != nil {
			result.Failed++
			logrus.WithFields(logrus.Fields{
				"campaign_id": target.CampaignID,
				"user_id":     target.UserID,
				"error":       err.Error(),
			}).Error("Erro ao sincronizar campanha do Karrot")
		} else {
			result.Saved++
			logrus.WithFields(logrus.Fields{
				"campaign_id": target.CampaignID,
				"date":        daily.Date.Format(time.DateOnly),
				"impressions": daily.Impressions,
			}).Info("Métricas do Karrot salvas")
		}

		// Aguardar antes da próxima requisição
		if i < len(targets)-1 && s.config.RequestDelaySeconds > 0 {
			s.sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	s.syncMutex.Lock()
	s.lastResult = result
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"campaigns": result.Campaigns,
		"saved":     result.Saved,
		"failed":    result.Failed,
		"trigger":   trigger,
	}).Info("Sincronização do Karrot concluída")
}

// TriggerManualSync inicia manualmente uma sincronização. Retorna false se já houver uma em andamento.
func (s *KarrotMetricsSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do Karrot já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do Karrot")
	go s.syncKarrotMetrics(context.Background(), triggerManual)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *KarrotMetricsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
