package provider

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

func parseAuthorizationRequest(ctx HTTPContext) AuthorizationRequest {
	return AuthorizationRequest{
		ClientID:     strings.TrimSpace(ctx.Query("client_id")),
		RedirectURI:  strings.TrimSpace(ctx.Query("redirect_uri")),
		Scope:        splitScope(ctx.Query("scope")),
		RawVtr:       ctx.Query("vtr"),
		RawClaims:    ctx.Query("claims"),
		State:        ctx.Query("state"),
		Nonce:        ctx.Query("nonce"),
		ResponseType: ctx.Query("response_type"),
	}
}

type AuthorizeHandler struct {
	registry  *ClientRegistry
	validator *RequestValidator
	store     Store
	config    Config
	nowFn     func() time.Time
	newUID    func() string
}

func NewAuthorizeHandler(registry *ClientRegistry, validator *RequestValidator, store Store, config Config) *AuthorizeHandler {
	return &AuthorizeHandler{
		registry:  registry,
		validator: validator,
		store:     store,
		config:    config.normalize(),
		nowFn:     func() time.Time { return time.Now().UTC() },
		newUID:    uuid.NewString,
	}
}

// Handle runs the authorization pipeline: redirect-target trust gate first,
// then the fixed-order policy checks. Trust-gate failures get a bare 400;
// policy failures are sent back to the now-verified redirect URI; a valid
// request is parked and the browser is sent to the interaction path.
func (h *AuthorizeHandler) Handle(ctx HTTPContext) {
	req := parseAuthorizationRequest(ctx)

	client, failure := ValidateRedirectTarget(h.registry, req.ClientID, req.RedirectURI)
	if failure != nil {
		writeBadRequest(ctx)
		return
	}

	validated, failure := h.validator.Validate(req, client)
	if failure != nil {
		ctx.Redirect(http.StatusSeeOther, BuildErrorRedirect(req.RedirectURI, req.State, h.config.Issuer, failure))
		return
	}

	now := h.nowFn()
	uid := h.newUID()
	if err := h.store.SavePendingRequest(AuthRequestRecord{
		UID:       uid,
		Request:   validated,
		ExpiresAt: now.Add(h.config.InteractionTTL),
		CreatedAt: now,
	}); err != nil {
		writeOAuthError(ctx, http.StatusInternalServerError, "server_error", "failed to persist authorization request")
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/interaction/"+uid)
}

// InteractionHandler simulates the login step. A real deployment would hand
// off to the interactive UI here; the simulator treats every interaction as a
// successful authentication and immediately issues the code.
type InteractionHandler struct {
	store   Store
	config  Config
	nowFn   func() time.Time
	newCode func() (string, error)
}

func NewInteractionHandler(store Store, config Config) *InteractionHandler {
	return &InteractionHandler{
		store:   store,
		config:  config.normalize(),
		nowFn:   func() time.Time { return time.Now().UTC() },
		newCode: func() (string, error) { return randomURLSafe(32) },
	}
}

func (h *InteractionHandler) Handle(ctx HTTPContext) {
	uid := ctx.Param("uid")
	now := h.nowFn()
	record, err := h.store.ConsumePendingRequest(uid, now)
	if err != nil {
		writeBadRequest(ctx)
		return
	}

	rawCode, err := h.newCode()
	if err != nil {
		writeOAuthError(ctx, http.StatusInternalServerError, "server_error", "failed to create authorization code")
		return
	}
	if err = h.store.SaveAuthCode(AuthCodeRecord{
		CodeHash:    sha256Hex(rawCode),
		ClientID:    record.Request.ClientID,
		RedirectURI: record.Request.RedirectURI,
		Scope:       record.Request.Scope,
		Vtr:         record.Request.Vtr,
		Claims:      record.Request.Claims,
		State:       record.Request.State,
		Nonce:       record.Request.Nonce,
		ExpiresAt:   now.Add(h.config.AuthorizationCodeTTL),
		CreatedAt:   now,
	}); err != nil {
		writeOAuthError(ctx, http.StatusInternalServerError, "server_error", "failed to persist authorization code")
		return
	}
	ctx.Redirect(http.StatusSeeOther, BuildCodeRedirect(record.Request.RedirectURI, rawCode, record.Request.State, h.config.Issuer))
}
