package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/dashboarding"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
)

func GetDashboardSummary(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDashboardSummary")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		filters, ok := parseMetricsFilters(w, r)
		if !ok {
			return
		}

		summary, err := service.GetSummary(r.Context(), claims.UserID, filters)
		if err != nil {
			handleDashboardError(w, err, "Erro ao obter resumo do dashboard")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func GetChannelPerformance(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetChannelPerformance")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		filters, ok := parseMetricsFilters(w, r)
		if !ok {
			return
		}

		performance, err := service.GetChannelPerformance(r.Context(), claims.UserID, filters)
		if err != nil {
			handleDashboardError(w, err, "Erro ao obter desempenho por canal")
			return
		}

		writeJSON(w, http.StatusOK, performance)
	}
}

func GetDashboardBudget(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDashboardBudget")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		filters, ok := parseMetricsFilters(w, r)
		if !ok {
			return
		}

		budget, err := service.GetBudget(r.Context(), claims.UserID, r.URL.Query().Get("groupBy"), filters)
		if err != nil {
			handleDashboardError(w, err, "Erro ao obter orçamento")
			return
		}

		writeJSON(w, http.StatusOK, budget)
	}
}

func GetDashboardInsights(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDashboardInsights")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		insights, err := service.GetInsights(r.Context(), claims.UserID, dashboarding.InsightsQuery{
			Limit:    query.Get("limit"),
			Priority: query.Get("priority"),
			Status:   query.Get("status"),
		})
		if err != nil {
			handleDashboardError(w, err, "Erro ao obter insights")
			return
		}

		writeJSON(w, http.StatusOK, insights)
	}
}

// handleDashboardError traduz os erros do dashboard para a resposta da API
func handleDashboardError(w http.ResponseWriter, err error, fallback string) {
	logrus.WithError(err).Error(fallback)

	var dashboardErr *dashboarding.DashboardError
	if errors.As(err, &dashboardErr) {
		apiErrors.WriteError(w, dashboardErr.Code, clientMessage(dashboardErr.Code, dashboardErr, dashboardErr.Details, fallback), nil)
		return
	}

	switch {
	case dashboarding.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, dashboarding.ErrInsightNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Insight não encontrado", nil)

	case errors.Is(err, dashboarding.ErrMetricsSource):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
