package domain

import "time"

// MarketingAccount é uma conta de anúncios conectada por um usuário.
// Tokens e cookie de sessão nunca são serializados.
type MarketingAccount struct {
	ID                string    `json:"id"`
	UserID            int       `json:"user_id"`
	Platform          Platform  `json:"platform"`
	ExternalAccountID string    `json:"account_id"`
	AccountName       string    `json:"account_name"`
	AccessToken       *string   `json:"-"`
	RefreshToken      *string   `json:"-"`
	SessionCookie     *string   `json:"-"`
	Connected         bool      `json:"is_connected"`
	CampaignCount     int       `json:"campaign_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (a *MarketingAccount) HasSession() bool {
	return a.SessionCookie != nil && *a.SessionCookie != ""
}

type CreateAccountRequest struct {
	Platform          string  `json:"platform"`
	AccountName       string  `json:"account_name"`
	ExternalAccountID string  `json:"account_id"`
	AccessToken       *string `json:"access_token"`
	RefreshToken      *string `json:"refresh_token"`
	SessionCookie     *string `json:"session_cookie"`
}

type UpdateAccountRequest struct {
	ID            string  `json:"-"`
	AccountName   *string `json:"account_name"`
	AccessToken   *string `json:"access_token"`
	RefreshToken  *string `json:"refresh_token"`
	SessionCookie *string `json:"session_cookie"`
	Connected     *bool   `json:"is_connected"`
}
