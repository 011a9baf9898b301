package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/channel-marketing-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func okHandler(t *testing.T, expectedUserID int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if expectedUserID > 0 {
			claims, ok := ClaimsFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, expectedUserID, claims.UserID)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		header         string
		setup          func(auth *authmocks.MockAuthenticator)
		expectedStatus int
		expectedUserID int
	}{
		{
			name:           "Rota pública",
			path:           "/v1/auth/login",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Verificação de email sem token",
			path:           "/v1/auth/check-email",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Métricas sem token",
			path:           "/metrics",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Sem header",
			path:           "/v1/dashboard/summary",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Header sem Bearer",
			path:           "/v1/dashboard/summary",
			header:         "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token inválido",
			path:   "/v1/dashboard/summary",
			header: "Bearer abc",
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().
					ValidateToken(gomock.Any(), "abc").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token válido",
			path:   "/v1/dashboard/summary",
			header: "Bearer good",
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().
					ValidateToken(gomock.Any(), "good").
					Return(&domain.Claims{UserID: 42, UserRole: domain.UserRoleUser}, nil)
			},
			expectedStatus: http.StatusNoContent,
			expectedUserID: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := authmocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(auth)
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler(t, tt.expectedUserID)).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		expectedStatus int
	}{
		{name: "Sem claims", expectedStatus: http.StatusUnauthorized},
		{name: "Usuário comum", claims: &domain.Claims{UserID: 1, UserRole: domain.UserRoleUser}, expectedStatus: http.StatusForbidden},
		{name: "Administrador", claims: &domain.Claims{UserID: 1, UserRole: domain.UserRoleAdmin}, expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/cron/karrot-sync/run", nil)
			if tt.claims != nil {
				req = req.WithContext(ContextWithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOnly()(okHandler(t, 0)).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler(t, 0))

	req := httptest.NewRequest(http.MethodOptions, "/v1/campaigns", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
