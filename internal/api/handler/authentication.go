package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/authenticating"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CheckEmailResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Register")

		var req domain.RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.Register(r.Context(), &req)
		if err != nil {
			handleAuthError(w, err, "Erro interno ao registrar usuário")
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Login")

		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			handleAuthError(w, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// CheckEmail verifica se o email pode ser usado em um novo cadastro
func CheckEmail(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CheckEmail")

		available, err := service.CheckEmail(r.Context(), r.URL.Query().Get("email"))
		if err != nil {
			handleAuthError(w, err, "Erro ao verificar email")
			return
		}

		message := "Email já cadastrado"
		if available {
			message = "Email disponível"
		}

		writeJSON(w, http.StatusOK, CheckEmailResponse{Available: available, Message: message})
	}
}

func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Logout")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		if err := service.Logout(r.Context(), claims); err != nil {
			handleAuthError(w, err, "Erro ao encerrar sessão")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetMe")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			handleAuthError(w, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// ChangePassword permite que o usuário altere sua própria senha
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ChangePassword")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req ChangePasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.ChangePassword(r.Context(), claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			handleAuthError(w, err, "Erro ao alterar senha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleAuthError trata erros de autenticação e retorna a resposta apropriada
func handleAuthError(w http.ResponseWriter, err error, fallback string) {
	logrus.WithError(err).Warn(fallback)

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		// Credenciais inválidas não expõem o usuário
		if authErr.UserID == 0 || authenticating.IsCredentialsError(err) {
			apiErrors.WriteError(w, authErr.Code, clientMessage(authErr.Code, authErr, authErr.Details, fallback), nil)
			return
		}
		apiErrors.WriteError(w, authErr.Code, clientMessage(authErr.Code, authErr, authErr.Details, fallback), map[string]any{
			"user_id": authErr.UserID,
		})
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
