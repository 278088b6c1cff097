package provider

import (
	"net/http"
	"strings"
)

func splitScope(scope string) []string {
	if strings.TrimSpace(scope) == "" {
		return nil
	}
	return strings.Fields(scope)
}

func joinScope(scopes []string) string {
	return strings.Join(scopes, " ")
}

func writeOAuthError(ctx HTTPContext, status int, errCode, description string) {
	ctx.JSON(status, OAuthError{
		Error:            errCode,
		ErrorDescription: description,
	})
}

// writeBadRequest answers trust-gate failures: a fixed body, nothing from the
// request reflected.
func writeBadRequest(ctx HTTPContext) {
	ctx.String(http.StatusBadRequest, "Bad Request")
}

func unauthorized(ctx HTTPContext) {
	writeOAuthError(ctx, http.StatusUnauthorized, "invalid_token", "access token is invalid")
}
