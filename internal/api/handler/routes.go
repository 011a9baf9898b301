package handler

import (
	"net/http"

	"github.com/vfg2006/channel-marketing-api/internal/api/handler/router"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/account"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/authenticating"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/budgeting"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/campaigning"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/dashboarding"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/integrating"
	"github.com/vfg2006/channel-marketing-api/pkg/metrics"
	"github.com/vfg2006/channel-marketing-api/pkg/middleware"
)

func Healthcheck(checks map[string]HealthCheck) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checks),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     GetDashboardSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/channel-performance",
			Method:      http.MethodGet,
			Handler:     GetChannelPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/insights",
			Method:      http.MethodGet,
			Handler:     GetDashboardInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/budget",
			Method:      http.MethodGet,
			Handler:     GetDashboardBudget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/trends",
			Method:      http.MethodGet,
			Handler:     GetTrends(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/comparison",
			Method:      http.MethodGet,
			Handler:     GetComparison(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/recommendations",
			Method:      http.MethodGet,
			Handler:     GetRecommendations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/:id/status",
			Method:      http.MethodPut,
			Handler:     UpdateInsightStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Integrations(service integrating.Integrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/integrations/karrot/scrape",
			Method:      http.MethodPost,
			Handler:     ScrapeKarrotCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Accounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     ListAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts",
			Method:      http.MethodPost,
			Handler:     CreateAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodGet,
			Handler:     GetAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetCampaignMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Budget(service budgeting.BudgetService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/budget/settings",
			Method:      http.MethodPost,
			Handler:     SaveBudgetSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/budget/summary",
			Method:      http.MethodGet,
			Handler:     GetBudgetSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/auth/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/auth/check-email",
			Method:  http.MethodGet,
			Handler: CheckEmail(service),
		},
		{
			Path:        "/v1/auth/logout",
			Method:      http.MethodPost,
			Handler:     Logout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
