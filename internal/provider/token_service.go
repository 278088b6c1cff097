package provider

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenService assembles and signs access tokens. Claim-set construction and
// signing are split so each is testable on its own; IssueAccessToken is the
// composition used by the token endpoint.
type TokenService struct {
	issuer     string
	accessTTL  time.Duration
	sessionID  string
	keyService *KeyService
	logger     *zap.Logger
	nowFn      func() time.Time
	newJTI     func() string
}

func NewTokenService(config Config, keyService *KeyService, logger *zap.Logger) *TokenService {
	normalized := config.normalize()
	return &TokenService{
		issuer:     normalized.Issuer,
		accessTTL:  normalized.AccessTokenTTL,
		sessionID:  normalized.SessionID,
		keyService: keyService,
		logger:     logger,
		nowFn:      func() time.Time { return time.Now().UTC() },
		newJTI:     uuid.NewString,
	}
}

// BuildAccessTokenClaims creates the claim set for one issuance. Claims stays
// nil unless identity claims were actually granted.
func (s *TokenService) BuildAccessTokenClaims(client ClientConfiguration, scope []string, claims []string) AccessTokenClaims {
	iat := s.nowFn().Unix()
	return AccessTokenClaims{
		Iat:      iat,
		Exp:      iat + int64(s.accessTTL/time.Second),
		Iss:      s.issuer,
		Jti:      s.newJTI(),
		ClientID: client.ClientID,
		Sub:      client.Sub,
		Sid:      s.sessionID,
		Scope:    append([]string(nil), scope...),
		Claims:   claims,
	}
}

// SignAccessToken serializes and signs the claim set with the active signing
// key. The claims field is written only when present; an absent claim set and
// an empty one are different things and only the former may appear.
func (s *TokenService) SignAccessToken(claims AccessTokenClaims) (string, error) {
	jwtClaims := jwt.MapClaims{
		"iat":       claims.Iat,
		"exp":       claims.Exp,
		"iss":       claims.Iss,
		"jti":       claims.Jti,
		"client_id": claims.ClientID,
		"sub":       claims.Sub,
		"sid":       claims.Sid,
		"scope":     claims.Scope,
	}
	if claims.Claims != nil {
		jwtClaims["claims"] = claims.Claims
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwtClaims)
	token.Header["kid"] = s.keyService.KID()
	return token.SignedString(s.keyService.PrivateKey())
}

// IssueAccessToken gates the requested claims on the vector of trust, builds
// the claim set and signs it.
func (s *TokenService) IssueAccessToken(client ClientConfiguration, scope []string, vot VectorOfTrust, requestedClaims []string) (string, error) {
	s.logger.Info("creating access token",
		zap.String("client_id", client.ClientID),
		zap.String("loc", string(vot.LevelOfConfidence)),
	)
	granted := ResolveClaimsRequest(vot, requestedClaims)
	claimSet := s.BuildAccessTokenClaims(client, scope, granted)
	signed, err := s.SignAccessToken(claimSet)
	if err != nil {
		s.logger.Error("failed to sign access token", zap.Error(err))
		return "", err
	}
	return signed, nil
}
