package provider

// ValidateScopes checks each requested scope against the provider's scope
// vocabulary first and the client's permitted scopes second. Requested scopes
// are evaluated in request order and the first violation of each check is the
// one reported.
func ValidateScopes(requested, supported []string, client ClientConfiguration) *ValidationFailure {
	supportedSet := make(map[string]struct{}, len(supported))
	for _, value := range supported {
		supportedSet[value] = struct{}{}
	}
	for _, scope := range requested {
		if _, ok := supportedSet[scope]; !ok {
			return &ValidationFailure{
				Kind:        FailureInvalidScope,
				Description: descScopeUnknown,
				Scope:       scope,
			}
		}
	}
	permittedSet := make(map[string]struct{}, len(client.Scopes))
	for _, value := range client.Scopes {
		permittedSet[value] = struct{}{}
	}
	for _, scope := range requested {
		if _, ok := permittedSet[scope]; !ok {
			return &ValidationFailure{
				Kind:        FailureInvalidScope,
				Description: descScopeNotAllowed,
				Scope:       scope,
			}
		}
	}
	return nil
}
