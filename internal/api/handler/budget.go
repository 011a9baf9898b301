package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/budgeting"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
)

func SaveBudgetSettings(service budgeting.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SaveBudgetSettings")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req domain.BudgetSettingsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		settings, err := service.SaveSettings(r.Context(), claims.UserID, req)
		if err != nil {
			handleBudgetError(w, err, "Erro ao salvar configurações de orçamento")
			return
		}

		writeJSON(w, http.StatusOK, settings)
	}
}

func GetBudgetSummary(service budgeting.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetBudgetSummary")

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
			handleBudgetError(w, err, "Erro ao obter resumo do orçamento")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func handleBudgetError(w http.ResponseWriter, err error, fallback string) {
	logrus.WithError(err).Error(fallback)

	var budgetErr *budgeting.BudgetError
	if errors.As(err, &budgetErr) {
		apiErrors.WriteError(w, budgetErr.Code, clientMessage(budgetErr.Code, budgetErr, budgetErr.Details, fallback), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
