package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-marketing-api/internal/api/handler/router"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/channel-marketing-api/pkg/middleware"
)

var (
	userClaims  = &domain.Claims{UserID: 7, UserRole: domain.UserRoleUser}
	adminClaims = &domain.Claims{UserID: 1, UserRole: domain.UserRoleAdmin}
)

func newRequest(method, target, body string, claims *domain.Claims) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(middleware.ContextWithClaims(req.Context(), claims))
	}
	return req
}

func serve(routes []router.Route, req *http.Request) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
