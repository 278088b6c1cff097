package provider

import (
	"errors"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

var ErrClientNotFound = errors.New("client not found")

// ClientConfiguration is the registered relying party. It is loaded once at
// startup and read-only while requests are served.
type ClientConfiguration struct {
	ClientID                      string
	Sub                           string
	Scopes                        []string
	RedirectURIs                  []string
	Claims                        []string
	IdentityVerificationSupported bool
	IDTokenSigningAlgorithm       string
	LevelsOfConfidence            []LevelOfConfidence
}

type Config struct {
	Issuer               string
	ListenAddr           string
	AccessTokenTTL       time.Duration
	AuthorizationCodeTTL time.Duration
	InteractionTTL       time.Duration
	SessionID            string
	SupportedScopes      []string
	PrivateKeyPEM        string
	Client               ClientConfiguration
}

type configPayload struct {
	Issuer                        string   `env:"ISSUER"`
	ListenAddr                    string   `env:"LISTEN_ADDR" envDefault:":3000"`
	AccessTokenTTLSeconds         int64    `env:"ACCESS_TOKEN_TTL_SECONDS" envDefault:"180"`
	PrivateKeyPEM                 string   `env:"PRIVATE_KEY_PEM"`
	ClientID                      string   `env:"CLIENT_ID" envDefault:"HGIOgho9HIRhgoepdIOPFdIUWgewi0jw"`
	Sub                           string   `env:"SUB" envDefault:"urn:fdc:gov.uk:2022:56P4CMsGh_02YOlWpd8PAOI-2sVlB2nsNU7mcLZYhYw="`
	Scopes                        []string `env:"SCOPES" envSeparator:"," envDefault:"openid,email,phone"`
	RedirectURLs                  []string `env:"REDIRECT_URLS" envSeparator:"," envDefault:"http://localhost:8080/authorization-code/callback"`
	Claims                        []string `env:"CLAIMS" envSeparator:"," envDefault:"https://vocab.account.gov.uk/v1/coreIdentityJWT"`
	IdentityVerificationSupported bool     `env:"IDENTITY_VERIFICATION_SUPPORTED" envDefault:"true"`
	IDTokenSigningAlgorithm       string   `env:"ID_TOKEN_SIGNING_ALGORITHM" envDefault:"RS256"`
	ClientLoCs                    []string `env:"CLIENT_LOCS" envSeparator:"," envDefault:"P2"`
}

func DefaultConfig() Config {
	return Config{
		Issuer:               "https://oidc.account.gov.uk/",
		ListenAddr:           ":3000",
		AccessTokenTTL:       180 * time.Second,
		AuthorizationCodeTTL: 5 * time.Minute,
		InteractionTTL:       10 * time.Minute,
		SessionID:            "736c53cd-f5b0-4d6d-a736-3a9ea4a8783f",
		SupportedScopes:      []string{"openid", "email", "phone"},
	}
}

// LoadConfig reads the provider and client configuration from the
// environment. The result is immutable for the lifetime of the process.
func LoadConfig() (Config, error) {
	payload := configPayload{}
	if err := env.Parse(&payload); err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if strings.TrimSpace(payload.Issuer) != "" {
		cfg.Issuer = payload.Issuer
	}
	if strings.TrimSpace(payload.ListenAddr) != "" {
		cfg.ListenAddr = payload.ListenAddr
	}
	if payload.AccessTokenTTLSeconds > 0 {
		cfg.AccessTokenTTL = time.Duration(payload.AccessTokenTTLSeconds) * time.Second
	}
	cfg.PrivateKeyPEM = payload.PrivateKeyPEM
	cfg.Client = ClientConfiguration{
		ClientID:                      payload.ClientID,
		Sub:                           payload.Sub,
		Scopes:                        normalizeScopes(payload.Scopes),
		RedirectURIs:                  normalizeScopes(payload.RedirectURLs),
		Claims:                        normalizeScopes(payload.Claims),
		IdentityVerificationSupported: payload.IdentityVerificationSupported,
		IDTokenSigningAlgorithm:       payload.IDTokenSigningAlgorithm,
		LevelsOfConfidence:            parseLoCs(payload.ClientLoCs),
	}
	return cfg.normalize(), nil
}

func (c Config) normalize() Config {
	out := c
	out.Issuer = strings.TrimSpace(out.Issuer)
	if out.Issuer == "" {
		out.Issuer = DefaultConfig().Issuer
	}
	if out.AccessTokenTTL <= 0 {
		out.AccessTokenTTL = 180 * time.Second
	}
	if out.AuthorizationCodeTTL <= 0 {
		out.AuthorizationCodeTTL = 5 * time.Minute
	}
	if out.InteractionTTL <= 0 {
		out.InteractionTTL = 10 * time.Minute
	}
	if out.SessionID == "" {
		out.SessionID = DefaultConfig().SessionID
	}
	if len(out.SupportedScopes) == 0 {
		out.SupportedScopes = []string{"openid", "email", "phone"}
	}
	return out
}

func (c Config) Normalize() Config {
	return c.normalize()
}

func parseLoCs(values []string) []LevelOfConfidence {
	out := make([]LevelOfConfidence, 0, len(values))
	for _, value := range values {
		t := strings.TrimSpace(value)
		if t == "" {
			continue
		}
		out = append(out, LevelOfConfidence(t))
	}
	return out
}

// ClientRegistry is the read-only client configuration provider consumed by
// the trust gate.
type ClientRegistry struct {
	clients map[string]ClientConfiguration
}

func NewClientRegistry(clients ...ClientConfiguration) *ClientRegistry {
	byID := make(map[string]ClientConfiguration, len(clients))
	for _, client := range clients {
		byID[client.ClientID] = client
	}
	return &ClientRegistry{clients: byID}
}

func (r *ClientRegistry) Lookup(clientID string) (ClientConfiguration, error) {
	client, ok := r.clients[clientID]
	if !ok {
		return ClientConfiguration{}, ErrClientNotFound
	}
	return client, nil
}
