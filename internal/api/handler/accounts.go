package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/internal/usecases/account"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
)

func ListAccounts(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListAccounts")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		accounts, err := service.ListAccounts(r.Context(), claims.UserID, r.URL.Query().Get("platform"))
		if err != nil {
			handleAccountError(w, err, "Erro ao listar contas")
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	}
}

func GetAccount(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAccount")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		marketingAccount, err := service.GetAccount(r.Context(), claims.UserID, id)
		if err != nil {
			handleAccountError(w, err, "Erro ao obter conta")
			return
		}

		writeJSON(w, http.StatusOK, marketingAccount)
	}
}

func CreateAccount(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateAccount")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateAccountRequest
		if !decodeBody(w, r, &req) {
			return
		}

		marketingAccount, err := service.CreateAccount(r.Context(), claims.UserID, &req)
		if err != nil {
			handleAccountError(w, err, "Erro ao criar conta")
			return
		}

		writeJSON(w, http.StatusCreated, marketingAccount)
	}
}

func UpdateAccount(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAccount")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var req domain.UpdateAccountRequest
		if !decodeBody(w, r, &req) {
			return
		}

		// Garante que o ID da URL seja usado
		req.ID = id

		marketingAccount, err := service.UpdateAccount(r.Context(), claims.UserID, &req)
		if err != nil {
			handleAccountError(w, err, "Erro ao atualizar conta")
			return
		}

		writeJSON(w, http.StatusOK, marketingAccount)
	}
}

func DeleteAccount(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteAccount")

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteAccount(r.Context(), claims.UserID, id); err != nil {
			handleAccountError(w, err, "Erro ao remover conta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleAccountError(w http.ResponseWriter, err error, fallback string) {
	logrus.WithError(err).Error(fallback)

	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		var details map[string]any
		if accountErr.AccountID != "" {
			details = map[string]any{"account_id": accountErr.AccountID}
		}
		apiErrors.WriteError(w, accountErr.Code, clientMessage(accountErr.Code, accountErr, accountErr.Details, fallback), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
