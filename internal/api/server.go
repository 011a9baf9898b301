package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/internal/api/handler"
	"github.com/vfg2006/channel-marketing-api/internal/api/handler/router"
	"github.com/vfg2006/channel-marketing-api/internal/config"
	"github.com/vfg2006/channel-marketing-api/internal/scheduler"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/account"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/authenticating"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/budgeting"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/campaigning"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/dashboarding"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/integrating"
	"github.com/vfg2006/channel-marketing-api/pkg/middleware"
)

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Dashboard     dashboarding.Dashboarder
	Budget        budgeting.BudgetService
	Campaign      campaigning.CampaignService
	Account       account.AccountService
	Authenticator authenticating.Authenticator
	Integrator    integrating.Integrator
	KarrotSync    *scheduler.KarrotMetricsSyncService
	HealthChecks  map[string]handler.HealthCheck
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if services.KarrotSync != nil {
		cronServices.KarrotMetricsSyncService = services.KarrotSync
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.HealthChecks)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard)...),
		router.WithRoutes(handler.Integrations(services.Integrator)...),
		router.WithRoutes(handler.Accounts(services.Account)...),
		router.WithRoutes(handler.Campaigns(services.Campaign)...),
		router.WithRoutes(handler.Budget(services.Budget)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	handler := NewHandler(config, services.Authenticator, rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler aplica a cadeia global de middlewares ao router
func NewHandler(config *config.Config, authenticator authenticating.Authenticator, rt http.Handler) http.Handler {
	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
