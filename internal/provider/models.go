package provider

import "time"

type CredentialTrustLevel string

const (
	CredentialTrustLow    CredentialTrustLevel = "Cl"
	CredentialTrustMedium CredentialTrustLevel = "Cl.Cm"
)

type LevelOfConfidence string

const (
	LevelOfConfidenceNone LevelOfConfidence = ""
	LevelOfConfidenceP0   LevelOfConfidence = "P0"
	LevelOfConfidenceP1   LevelOfConfidence = "P1"
	LevelOfConfidenceP2   LevelOfConfidence = "P2"
)

// VectorOfTrust is the resolved combination of the credential-trust and
// level-of-confidence components of a vtr expression.
type VectorOfTrust struct {
	CredentialTrust   CredentialTrustLevel
	LevelOfConfidence LevelOfConfidence
}

func (v VectorOfTrust) RequiresIdentityVerification() bool {
	return v.LevelOfConfidence != LevelOfConfidenceNone
}

type AuthorizationRequest struct {
	ClientID     string
	RedirectURI  string
	Scope        []string
	RawVtr       string
	RawClaims    string
	State        string
	Nonce        string
	ResponseType string
}

// ValidatedRequest is the context handed to the interaction and code-issuance
// steps once every validation check has passed.
type ValidatedRequest struct {
	ClientID    string
	RedirectURI string
	Scope       []string
	Vtr         VectorOfTrust
	Claims      []string
	State       string
	Nonce       string
}

type FailureKind int

const (
	FailureUnknownClient FailureKind = iota
	FailureUntrustedRedirect
	FailureInvalidScope
	FailureInvalidVtr
	FailureInvalidClaims
)

const (
	descScopeUnknown    = "Invalid, unknown or malformed scope"
	descScopeNotAllowed = "requested scope is not allowed"
	descVtrNotValid     = "Request vtr not valid"
	descInvalidClaims   = "Request contains invalid claims"
)

// ValidationFailure classifies a rejected authorization request. Scope carries
// the single offending scope value for invalid-scope failures.
type ValidationFailure struct {
	Kind        FailureKind
	Description string
	Scope       string
}

// Redirectable reports whether the failure may be returned to the client via
// an error redirect. Trust-gate failures must never be, because the redirect
// target itself is unverified at that point.
func (f *ValidationFailure) Redirectable() bool {
	return f.Kind != FailureUnknownClient && f.Kind != FailureUntrustedRedirect
}

func (f *ValidationFailure) ErrorCode() string {
	if f.Kind == FailureInvalidScope {
		return "invalid_scope"
	}
	return "invalid_request"
}

// AccessTokenClaims is the claim set of an issued access token. Claims is nil
// when no identity claims were granted; the signed token must then omit the
// field entirely.
type AccessTokenClaims struct {
	Iat      int64
	Exp      int64
	Iss      string
	Jti      string
	ClientID string
	Sub      string
	Sid      string
	Scope    []string
	Claims   []string
}

type AuthRequestRecord struct {
	UID       string
	Request   ValidatedRequest
	ExpiresAt time.Time
	CreatedAt time.Time
}

type AuthCodeRecord struct {
	CodeHash    string
	ClientID    string
	RedirectURI string
	Scope       []string
	Vtr         VectorOfTrust
	Claims      []string
	State       string
	Nonce       string
	ExpiresAt   time.Time
	ConsumedAt  *time.Time
	CreatedAt   time.Time
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope,omitempty"`
}

type OAuthError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}
