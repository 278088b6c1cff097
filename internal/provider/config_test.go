package provider

import (
	"testing"
	"time"
)

func TestLoadConfigAppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Issuer != "https://oidc.account.gov.uk/" {
		t.Fatalf("unexpected issuer: %s", cfg.Issuer)
	}
	if cfg.AccessTokenTTL != 180*time.Second {
		t.Fatalf("unexpected access token ttl: %s", cfg.AccessTokenTTL)
	}
	if cfg.Client.ClientID == "" || cfg.Client.Sub == "" {
		t.Fatalf("expected default client, got %+v", cfg.Client)
	}
	if len(cfg.Client.Scopes) != 3 {
		t.Fatalf("unexpected default scopes: %v", cfg.Client.Scopes)
	}
	if !cfg.Client.IdentityVerificationSupported {
		t.Fatal("identity verification must default on")
	}
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("CLIENT_ID", "env-client")
	t.Setenv("SCOPES", "openid,email")
	t.Setenv("REDIRECT_URLS", "https://a.example.com/cb,https://b.example.com/cb")
	t.Setenv("CLIENT_LOCS", "P1,P2")
	t.Setenv("IDENTITY_VERIFICATION_SUPPORTED", "false")
	t.Setenv("ACCESS_TOKEN_TTL_SECONDS", "600")
	t.Setenv("ISSUER", "https://issuer.example.com/")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Client.ClientID != "env-client" {
		t.Fatalf("unexpected client id: %s", cfg.Client.ClientID)
	}
	if len(cfg.Client.Scopes) != 2 || cfg.Client.Scopes[1] != "email" {
		t.Fatalf("unexpected scopes: %v", cfg.Client.Scopes)
	}
	if len(cfg.Client.RedirectURIs) != 2 {
		t.Fatalf("unexpected redirect uris: %v", cfg.Client.RedirectURIs)
	}
	if len(cfg.Client.LevelsOfConfidence) != 2 || cfg.Client.LevelsOfConfidence[0] != LevelOfConfidenceP1 {
		t.Fatalf("unexpected locs: %v", cfg.Client.LevelsOfConfidence)
	}
	if cfg.Client.IdentityVerificationSupported {
		t.Fatal("expected identity verification off")
	}
	if cfg.AccessTokenTTL != 600*time.Second {
		t.Fatalf("unexpected ttl: %s", cfg.AccessTokenTTL)
	}
	if cfg.Issuer != "https://issuer.example.com/" {
		t.Fatalf("unexpected issuer: %s", cfg.Issuer)
	}
}

func TestClientRegistryLookup(t *testing.T) {
	registry := NewClientRegistry(testClient())
	if _, err := registry.Lookup("TEST_CLIENT_ID"); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if _, err := registry.Lookup("missing"); err != ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}
