package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	karrotdomain "github.com/vfg2006/channel-marketing-api/infrastructure/integrator/karrot/domain"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/integrating"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
)

func ScrapeKarrotCampaign(service integrating.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ScrapeKarrotCampaign")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req domain.ScrapeRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.ScrapeKarrotCampaign(r.Context(), claims.UserID, &req)
		if err != nil {
			handleIntegrationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func handleIntegrationError(w http.ResponseWriter, err error) {
	logrus.WithError(err).Error("Error scraping Karrot campaign")

	var integrationErr *integrating.IntegrationError
	if !errors.As(err, &integrationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao coletar métricas do Karrot", nil)
		return
	}

	// Falhas do scraping levam o tipo e o status para o cliente
	var scrapeErr *karrotdomain.ScrapeError
	if errors.As(err, &scrapeErr) {
		details := map[string]any{
			"kind":        scrapeErr.Kind,
			"campaign_id": integrationErr.CampaignID,
		}
		if scrapeErr.StatusCode != 0 {
			details["status_code"] = scrapeErr.StatusCode
		}
		if scrapeErr.Field != "" {
			details["field"] = scrapeErr.Field
		}

		apiErrors.WriteError(w, integrationErr.Code, clientMessage(integrationErr.Code, integrationErr, integrationErr.Details, "Erro ao coletar métricas do Karrot"), details)
		return
	}

	var details map[string]any
	if integrationErr.CampaignID != "" {
		details = map[string]any{"campaign_id": integrationErr.CampaignID}
	}

	apiErrors.WriteError(w, integrationErr.Code, clientMessage(integrationErr.Code, integrationErr, integrationErr.Details, "Erro ao coletar métricas do Karrot"), details)
}
