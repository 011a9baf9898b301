package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/channel-marketing-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// clientMessage escolhe a mensagem exposta ao cliente; erros 5xx só levam os detalhes fixos
func clientMessage(code string, err error, details string, fallback string) string {
	if apiErrors.StatusFor(code) < http.StatusInternalServerError {
		return err.Error()
	}
	if details != "" {
		return details
	}
	return fallback
}

// requireClaims obtém o usuário autenticado ou escreve AUTH_006
func requireClaims(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// parseMetricsFilters lê start_date e end_date da query
func parseMetricsFilters(w http.ResponseWriter, r *http.Request) (domain.MetricsFilters, bool) {
	query := r.URL.Query()

	filters, err := domain.NewMetricsFilters(query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPeriod) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return filters, false
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetros de data inválidos", nil)
		return filters, false
	}

	return filters, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
		return false
	}
	return true
}
