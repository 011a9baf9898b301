package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/dashboarding"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
)

type UpdateInsightStatusRequest struct {
	Status string `json:"status"`
}

func GetTrends(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetTrends")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		filters, ok := parseMetricsFilters(w, r)
		if !ok {
			return
		}

		trends, err := service.GetTrends(r.Context(), claims.UserID, filters)
		if err != nil {
			handleDashboardError(w, err, "Erro ao obter tendências")
			return
		}

		writeJSON(w, http.StatusOK, trends)
	}
}

func GetComparison(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetComparison")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		filters, ok := parseMetricsFilters(w, r)
		if !ok {
			return
		}

		comparison, err := service.GetComparison(r.Context(), claims.UserID, filters)
		if err != nil {
			handleDashboardError(w, err, "Erro ao comparar plataformas")
			return
		}

		writeJSON(w, http.StatusOK, comparison)
	}
}

func GetRecommendations(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetRecommendations")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		filters, ok := parseMetricsFilters(w, r)
		if !ok {
			return
		}

		recommendations, err := service.GetRecommendations(r.Context(), claims.UserID, filters)
		if err != nil {
			handleDashboardError(w, err, "Erro ao gerar recomendações")
			return
		}

		writeJSON(w, http.StatusOK, recommendations)
	}
}

func UpdateInsightStatus(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateInsightStatus")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		insightID, err := strconv.ParseInt(httprouter.ParamsFromContext(r.Context()).ByName("id"), 10, 64)
		if err != nil || insightID <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do insight inválido", nil)
			return
		}

		var req UpdateInsightStatusRequest
		if !decodeBody(w, r, &req) {
			return
		}

		insight, err := service.UpdateInsightStatus(r.Context(), claims.UserID, insightID, req.Status)
		if err != nil {
			handleDashboardError(w, err, "Erro ao atualizar status do insight")
			return
		}

		writeJSON(w, http.StatusOK, insight)
	}
}
