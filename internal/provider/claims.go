package provider

import (
	"encoding/json"
	"sort"
	"strings"
)

type claimsRequestPayload struct {
	UserInfo map[string]json.RawMessage `json:"userinfo"`
}

func invalidClaims() *ValidationFailure {
	return &ValidationFailure{Kind: FailureInvalidClaims, Description: descInvalidClaims}
}

// ValidateClaimsRequest parses the claims request parameter, a JSON object
// whose userinfo member keys are the requested claim names, and checks every
// name against the client's supported claims. Names are returned sorted so
// downstream output is deterministic.
func ValidateClaimsRequest(raw string, client ClientConfiguration) ([]string, *ValidationFailure) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	payload := claimsRequestPayload{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, invalidClaims()
	}
	if len(payload.UserInfo) == 0 {
		return nil, nil
	}
	supported := make(map[string]struct{}, len(client.Claims))
	for _, name := range client.Claims {
		supported[name] = struct{}{}
	}
	names := make([]string, 0, len(payload.UserInfo))
	for name := range payload.UserInfo {
		if _, ok := supported[name]; !ok {
			return nil, invalidClaims()
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ResolveClaimsRequest decides the claim set actually honored on the issued
// token. Claims pass through only when the vector of trust carries a level of
// confidence; otherwise the result is nil, which the signer must render as an
// absent field rather than an empty list.
func ResolveClaimsRequest(vot VectorOfTrust, claims []string) []string {
	if !vot.RequiresIdentityVerification() {
		return nil
	}
	if len(claims) == 0 {
		return nil
	}
	return claims
}
