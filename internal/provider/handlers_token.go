package provider

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

type TokenHandler struct {
	registry     *ClientRegistry
	store        Store
	tokenService *TokenService
	accessTTL    time.Duration
	nowFn        func() time.Time
}

func NewTokenHandler(registry *ClientRegistry, store Store, tokenService *TokenService, config Config) *TokenHandler {
	return &TokenHandler{
		registry:     registry,
		store:        store,
		tokenService: tokenService,
		accessTTL:    config.normalize().AccessTokenTTL,
		nowFn:        func() time.Time { return time.Now().UTC() },
	}
}

func (h *TokenHandler) Handle(ctx HTTPContext) {
	grantType := strings.TrimSpace(ctx.PostForm("grant_type"))
	if grantType != "authorization_code" {
		writeOAuthError(ctx, http.StatusBadRequest, "unsupported_grant_type", "grant_type is not supported")
		return
	}

	clientID := strings.TrimSpace(ctx.PostForm("client_id"))
	code := strings.TrimSpace(ctx.PostForm("code"))
	redirectURI := strings.TrimSpace(ctx.PostForm("redirect_uri"))
	if clientID == "" || code == "" || redirectURI == "" {
		writeOAuthError(ctx, http.StatusBadRequest, "invalid_request", "missing required parameters")
		return
	}

	client, err := h.registry.Lookup(clientID)
	if err != nil {
		writeOAuthError(ctx, http.StatusUnauthorized, "invalid_client", "client is invalid")
		return
	}
	record, err := h.store.ConsumeAuthCode(code, h.nowFn())
	if err != nil {
		h.mapCodeError(ctx, err)
		return
	}
	if !constantTimeEquals(record.ClientID, client.ClientID) || !constantTimeEquals(record.RedirectURI, redirectURI) {
		writeOAuthError(ctx, http.StatusBadRequest, "invalid_grant", "authorization code does not match client or redirect_uri")
		return
	}

	accessToken, err := h.tokenService.IssueAccessToken(client, record.Scope, record.Vtr, record.Claims)
	if err != nil {
		writeOAuthError(ctx, http.StatusInternalServerError, "server_error", "failed to issue access token")
		return
	}
	ctx.JSON(http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.accessTTL / time.Second),
		Scope:       joinScope(record.Scope),
	})
}

func (h *TokenHandler) mapCodeError(ctx HTTPContext, err error) {
	if errors.Is(err, ErrAuthCodeNotFound) || errors.Is(err, ErrAuthCodeExpired) || errors.Is(err, ErrAuthCodeConsumed) {
		writeOAuthError(ctx, http.StatusBadRequest, "invalid_grant", "authorization code is invalid")
		return
	}
	writeOAuthError(ctx, http.StatusInternalServerError, "server_error", "failed to consume authorization code")
}
