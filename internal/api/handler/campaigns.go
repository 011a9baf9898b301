package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/campaigning"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
)

func ListCampaigns(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListCampaigns")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		campaigns, err := service.ListCampaigns(r.Context(), claims.UserID, campaigning.ListQuery{
			Platform: query.Get("platform"),
			Status:   query.Get("status"),
			Page:     query.Get("page"),
			Limit:    query.Get("limit"),
		})
		if err != nil {
			handleCampaignError(w, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	}
}

func GetCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCampaign")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.GetCampaign(r.Context(), claims.UserID, id)
		if err != nil {
			handleCampaignError(w, err, "Erro ao obter campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func CreateCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaign")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateCampaignRequest
		if !decodeBody(w, r, &req) {
			return
		}

		campaign, err := service.CreateCampaign(r.Context(), claims.UserID, &req)
		if err != nil {
			handleCampaignError(w, err, "Erro ao criar campanha")
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	}
}

func UpdateCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCampaign")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		var req domain.UpdateCampaignRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = id

		campaign, err := service.UpdateCampaign(r.Context(), claims.UserID, &req)
		if err != nil {
			handleCampaignError(w, err, "Erro ao atualizar campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func DeleteCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCampaign")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteCampaign(r.Context(), claims.UserID, id); err != nil {
			handleCampaignError(w, err, "Erro ao remover campanha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetCampaignMetrics(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCampaignMetrics")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		filters, ok := parseMetricsFilters(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		metrics, err := service.GetCampaignMetrics(r.Context(), claims.UserID, id, filters)
		if err != nil {
			handleCampaignError(w, err, "Erro ao obter métricas da campanha")
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	}
}

func handleCampaignError(w http.ResponseWriter, err error, fallback string) {
	logrus.WithError(err).Error(fallback)

	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		var details map[string]any
		if campaignErr.CampaignID != "" {
			details = map[string]any{"campaign_id": campaignErr.CampaignID}
		}
		apiErrors.WriteError(w, campaignErr.Code, clientMessage(campaignErr.Code, campaignErr, campaignErr.Details, fallback), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
