package provider

import (
	"encoding/json"
	"strings"
)

var locRank = map[LevelOfConfidence]int{
	LevelOfConfidenceNone: 0,
	LevelOfConfidenceP0:   1,
	LevelOfConfidenceP1:   2,
	LevelOfConfidenceP2:   3,
}

func invalidVtr() *ValidationFailure {
	return &ValidationFailure{Kind: FailureInvalidVtr, Description: descVtrNotValid}
}

// ResolveVectorOfTrust parses the vtr request parameter, a JSON array of
// trust expressions, and validates every expression against the combinations
// the provider supports for the client. When several expressions are valid,
// the one with the highest level of confidence wins; ties keep request order.
// An absent vtr defaults to medium credential trust with no identity
// verification.
func ResolveVectorOfTrust(raw string, client ClientConfiguration) (VectorOfTrust, *ValidationFailure) {
	if strings.TrimSpace(raw) == "" {
		return VectorOfTrust{CredentialTrust: CredentialTrustMedium}, nil
	}
	var expressions []string
	if err := json.Unmarshal([]byte(raw), &expressions); err != nil {
		return VectorOfTrust{}, invalidVtr()
	}
	if len(expressions) == 0 {
		return VectorOfTrust{CredentialTrust: CredentialTrustMedium}, nil
	}
	candidates := make([]VectorOfTrust, 0, len(expressions))
	for _, expression := range expressions {
		vot, ok := parseVector(expression)
		if !ok {
			return VectorOfTrust{}, invalidVtr()
		}
		if !vectorSupported(vot, client) {
			return VectorOfTrust{}, invalidVtr()
		}
		candidates = append(candidates, vot)
	}
	selected := candidates[0]
	for _, candidate := range candidates[1:] {
		if locRank[candidate.LevelOfConfidence] > locRank[selected.LevelOfConfidence] {
			selected = candidate
		}
	}
	return selected, nil
}

func parseVector(expression string) (VectorOfTrust, bool) {
	parts := strings.Split(strings.TrimSpace(expression), ".")
	credential := make([]string, 0, len(parts))
	loc := LevelOfConfidenceNone
	for _, part := range parts {
		switch {
		case part == "":
			return VectorOfTrust{}, false
		case strings.HasPrefix(part, "C"):
			credential = append(credential, part)
		case strings.HasPrefix(part, "P"):
			if loc != LevelOfConfidenceNone {
				return VectorOfTrust{}, false
			}
			loc = LevelOfConfidence(part)
		default:
			return VectorOfTrust{}, false
		}
	}
	return VectorOfTrust{
		CredentialTrust:   CredentialTrustLevel(strings.Join(credential, ".")),
		LevelOfConfidence: loc,
	}, true
}

func vectorSupported(vot VectorOfTrust, client ClientConfiguration) bool {
	if vot.CredentialTrust != CredentialTrustLow && vot.CredentialTrust != CredentialTrustMedium {
		return false
	}
	if vot.LevelOfConfidence == LevelOfConfidenceNone {
		return true
	}
	if !client.IdentityVerificationSupported {
		return false
	}
	if _, known := locRank[vot.LevelOfConfidence]; !known {
		return false
	}
	for _, supported := range client.LevelsOfConfidence {
		if supported == vot.LevelOfConfidence {
			return true
		}
	}
	return false
}
