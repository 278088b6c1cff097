package provider

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"go.uber.org/zap"
)

// VerificationResult is the outcome of verifying a signed token. Payload is
// set only when Valid is true; no partial payload ever escapes on failure.
type VerificationResult struct {
	Valid   bool
	Payload jwt.MapClaims
}

// SignatureVerifier checks compact signed tokens against the provider's
// published key set and pinned issuer. Every failure cause collapses to the
// same invalid result; detail is kept to the logs.
type SignatureVerifier struct {
	issuer string
	keys   jwk.Set
	logger *zap.Logger
}

func NewSignatureVerifier(config Config, keyService *KeyService, logger *zap.Logger) (*SignatureVerifier, error) {
	keys, err := keyService.VerificationKeySet()
	if err != nil {
		return nil, err
	}
	return &SignatureVerifier{
		issuer: config.normalize().Issuer,
		keys:   keys,
		logger: logger,
	}, nil
}

func (v *SignatureVerifier) Verify(raw string) VerificationResult {
	token, err := jwt.ParseWithClaims(raw, jwt.MapClaims{}, v.resolveKey,
		jwt.WithIssuer(v.issuer),
		jwt.WithValidMethods([]string{"RS256"}),
	)
	if err != nil || !token.Valid {
		v.logger.Error("error validating signature", zap.Error(err))
		return VerificationResult{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		v.logger.Error("error validating signature", zap.String("reason", "unexpected claims type"))
		return VerificationResult{}
	}
	return VerificationResult{Valid: true, Payload: claims}
}

func (v *SignatureVerifier) resolveKey(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	kid, ok := token.Header["kid"].(string)
	if !ok {
		return nil, errors.New("token header missing kid")
	}
	key, found := v.keys.LookupKeyID(kid)
	if !found {
		return nil, fmt.Errorf("key %q not found in key set", kid)
	}
	var rawKey any
	if err := jwk.Export(key, &rawKey); err != nil {
		return nil, fmt.Errorf("failed to export raw key: %w", err)
	}
	return rawKey, nil
}
