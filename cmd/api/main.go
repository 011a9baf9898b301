package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/infrastructure/database/postgres"
	"github.com/vfg2006/channel-marketing-api/infrastructure/database/redis"
	"github.com/vfg2006/channel-marketing-api/infrastructure/integrator/karrot"
	"github.com/vfg2006/channel-marketing-api/infrastructure/integrator/karrot/karrotclient"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository"
	"github.com/vfg2006/channel-marketing-api/internal/api"
	"github.com/vfg2006/channel-marketing-api/internal/api/handler"
	"github.com/vfg2006/channel-marketing-api/internal/config"
	"github.com/vfg2006/channel-marketing-api/internal/scheduler"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/account"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/authenticating"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/budgeting"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/campaigning"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/dashboarding"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/integrating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	healthChecks := map[string]handler.HealthCheck{
		"database": pgConn.Ping,
	}

	denylist := authenticating.TokenDenylist(authenticating.NoopDenylist{})
	if redisClient := redisconn(ctx, cfg.Redis); redisClient != nil {
		defer redisClient.Close()

		denylist = authenticating.NewRedisDenylist(redisClient)
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	accountRepo := repository.NewAccountRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)
	insightRepo := repository.NewInsightRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	budgetSettingsRepo := repository.NewBudgetSettingsRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, denylist, cfg)

	karrotClient := karrotclient.NewClient(cfg.Karrot)
	karrotIntegrator := karrot.New(karrotClient)

	integrator := integrating.NewService(karrotIntegrator, campaignRepo, accountRepo, metricRepo)

	karrotSyncService := scheduler.NewKarrotMetricsSyncService(campaignRepo, integrator, cfg)
	if err := karrotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do Karrot")
	} else {
		logrus.Info("Agendador de sincronização do Karrot iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Dashboard:     dashboarding.NewService(metricRepo, insightRepo, cfg.Dashboard),
		Budget:        budgeting.NewService(budgetSettingsRepo, metricRepo, cfg.Dashboard),
		Campaign:      campaigning.NewService(campaignRepo, accountRepo, metricRepo),
		Account:       account.NewService(accountRepo),
		Authenticator: authenticator,
		Integrator:    integrator,
		KarrotSync:    karrotSyncService,
		HealthChecks:  healthChecks,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisconn retorna nil quando o Redis não está configurado ou está indisponível
func redisconn(ctx context.Context, redisConfig config.Redis) *goredis.Client {
	if !redisConfig.Enabled() {
		logrus.Info("Redis não configurado, revogação de tokens desativada")
		return nil
	}

	client, err := redis.NewClient(ctx, redisConfig)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, revogação de tokens desativada")
		return nil
	}

	return client
}
