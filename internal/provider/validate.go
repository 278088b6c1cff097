package provider

// ValidateRedirectTarget is the trust gate: it confirms the client exists and
// that the redirect URI exactly matches one registered for it. Until both
// hold, no other failure may be redirected, so callers must answer trust-gate
// failures with a plain 400 and reflect nothing from the request.
func ValidateRedirectTarget(registry *ClientRegistry, clientID, redirectURI string) (ClientConfiguration, *ValidationFailure) {
	client, err := registry.Lookup(clientID)
	if err != nil {
		return ClientConfiguration{}, &ValidationFailure{Kind: FailureUnknownClient}
	}
	if redirectURI == "" {
		return ClientConfiguration{}, &ValidationFailure{Kind: FailureUntrustedRedirect}
	}
	for _, registered := range client.RedirectURIs {
		if constantTimeEquals(registered, redirectURI) {
			return client, nil
		}
	}
	return ClientConfiguration{}, &ValidationFailure{Kind: FailureUntrustedRedirect}
}

type RequestValidator struct {
	supportedScopes []string
}

func NewRequestValidator(config Config) *RequestValidator {
	normalized := config.normalize()
	return &RequestValidator{
		supportedScopes: append([]string(nil), normalized.SupportedScopes...),
	}
}

// Validate runs the policy checks in their fixed order: claims shape, then
// vtr, then scope. The order is externally observable because each failure
// carries a distinct error message, so it must not change.
func (v *RequestValidator) Validate(req AuthorizationRequest, client ClientConfiguration) (ValidatedRequest, *ValidationFailure) {
	claims, failure := ValidateClaimsRequest(req.RawClaims, client)
	if failure != nil {
		return ValidatedRequest{}, failure
	}
	vot, failure := ResolveVectorOfTrust(req.RawVtr, client)
	if failure != nil {
		return ValidatedRequest{}, failure
	}
	if failure = ValidateScopes(req.Scope, v.supportedScopes, client); failure != nil {
		return ValidatedRequest{}, failure
	}
	return ValidatedRequest{
		ClientID:    client.ClientID,
		RedirectURI: req.RedirectURI,
		Scope:       append([]string(nil), req.Scope...),
		Vtr:         vot,
		Claims:      ResolveClaimsRequest(vot, claims),
		State:       req.State,
		Nonce:       req.Nonce,
	}, nil
}
