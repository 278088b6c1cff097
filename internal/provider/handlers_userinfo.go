package provider

import (
	"net/http"
	"strings"
)

// Simulated account data returned to resource servers.
const (
	userinfoEmail = "test@example.com"
	userinfoPhone = "07700900000"
)

type UserInfoHandler struct {
	verifier *SignatureVerifier
}

func NewUserInfoHandler(verifier *SignatureVerifier) *UserInfoHandler {
	return &UserInfoHandler{verifier: verifier}
}

func (h *UserInfoHandler) Handle(ctx HTTPContext) {
	rawAuthorization := strings.TrimSpace(ctx.Header("Authorization"))
	if !strings.HasPrefix(strings.ToLower(rawAuthorization), "bearer ") {
		unauthorized(ctx)
		return
	}
	rawToken := strings.TrimSpace(rawAuthorization[len("Bearer "):])

	result := h.verifier.Verify(rawToken)
	if !result.Valid {
		unauthorized(ctx)
		return
	}
	sub, _ := result.Payload["sub"].(string)
	if sub == "" {
		unauthorized(ctx)
		return
	}

	body := map[string]any{"sub": sub}
	for _, scope := range payloadScopes(result.Payload) {
		switch scope {
		case "email":
			body["email"] = userinfoEmail
			body["email_verified"] = true
		case "phone":
			body["phone_number"] = userinfoPhone
			body["phone_number_verified"] = true
		}
	}
	ctx.JSON(http.StatusOK, body)
}

func payloadScopes(payload map[string]any) []string {
	raw, ok := payload["scope"].([]any)
	if !ok {
		return nil
	}
	scopes := make([]string, 0, len(raw))
	for _, value := range raw {
		if s, ok := value.(string); ok {
			scopes = append(scopes, s)
		}
	}
	return scopes
}
