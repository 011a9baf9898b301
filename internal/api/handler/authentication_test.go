package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/channel-marketing-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Sucesso",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Credenciais inválidas",
			serviceErr:     authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""),
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:           "Usuário desativado",
			serviceErr:     authenticating.NewUserAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, 3, ""),
			expectedStatus: http.StatusForbidden,
			expectedCode:   apiErrors.ErrUserDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authmocks.NewMockAuthenticator(ctrl)

			var resp *domain.AuthResponse
			if tt.serviceErr == nil {
				resp = &domain.AuthResponse{Token: "jwt", User: &domain.User{ID: 3}}
			}
			service.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "Secreta#1").Return(resp, tt.serviceErr)

			rec := serve(Authentication(service), newRequest(http.MethodPost, "/v1/auth/login", `{"email":"ana@example.com","password":"Secreta#1"}`, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
				return
			}

			var body domain.AuthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "jwt", body.Token)
		})
	}
}

func TestRegister_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authmocks.NewMockAuthenticator(ctrl)

	service.EXPECT().
		Register(gomock.Any(), &domain.RegisterRequest{Email: "ana@example.com", Password: "Secreta#1", Name: "Ana"}).
		Return(nil, authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, ""))

	body := `{"email":"ana@example.com","password":"Secreta#1","name":"Ana"}`
	rec := serve(Authentication(service), newRequest(http.MethodPost, "/v1/auth/register", body, nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authmocks.NewMockAuthenticator(ctrl)

	service.EXPECT().Logout(gomock.Any(), userClaims).Return(nil)

	rec := serve(Authentication(service), newRequest(http.MethodPost, "/v1/auth/logout", "", userClaims))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestChangePassword_WeakPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authmocks.NewMockAuthenticator(ctrl)

	service.EXPECT().
		ChangePassword(gomock.Any(), 7, "Atual#123", "fraca").
		Return(authenticating.NewUserAuthError(authenticating.ErrWeakPassword, apiErrors.ErrWeakPassword, 7, "a senha deve conter pelo menos 8 caracteres"))

	body := `{"current_password":"Atual#123","new_password":"fraca"}`
	rec := serve(Authentication(service), newRequest(http.MethodPost, "/v1/me/change-password", body, userClaims))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrWeakPassword, decodeAPIError(t, rec).Code)
}

func TestGetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authmocks.NewMockAuthenticator(ctrl)

	service.EXPECT().GetUserProfile(gomock.Any(), 7).Return(&domain.User{ID: 7, Email: "ana@example.com"}, nil)

	rec := serve(Authentication(service), newRequest(http.MethodGet, "/v1/me", "", userClaims))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")
}

func TestCheckEmail(t *testing.T) {
	tests := []struct {
		name            string
		available       bool
		serviceErr      error
		expectedStatus  int
		expectedMessage string
		expectedCode    string
	}{
		{
			name:            "Disponível",
			available:       true,
			expectedStatus:  http.StatusOK,
			expectedMessage: "Email disponível",
		},
		{
			name:            "Já cadastrado",
			expectedStatus:  http.StatusOK,
			expectedMessage: "Email já cadastrado",
		},
		{
			name:           "Sem email",
			serviceErr:     authenticating.NewAuthError(authenticating.ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email é obrigatório"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authmocks.NewMockAuthenticator(ctrl)

			service.EXPECT().CheckEmail(gomock.Any(), "ana@example.com").Return(tt.available, tt.serviceErr)

			rec := serve(Authentication(service), newRequest(http.MethodGet, "/v1/auth/check-email?email=ana@example.com", "", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
				return
			}

			var body CheckEmailResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.available, body.Available)
			assert.Equal(t, tt.expectedMessage, body.Message)
		})
	}
}
