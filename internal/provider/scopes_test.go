package provider

import "testing"

var globalScopes = []string{"openid", "email", "phone"}

func TestValidateScopesAcceptsPermittedScopes(t *testing.T) {
	if failure := ValidateScopes([]string{"openid", "email"}, globalScopes, testClient()); failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}
	if failure := ValidateScopes(nil, globalScopes, testClient()); failure != nil {
		t.Fatalf("unexpected failure for empty scope: %+v", failure)
	}
}

func TestValidateScopesRejectsUnknownScope(t *testing.T) {
	failure := ValidateScopes([]string{"openid", "unknown"}, globalScopes, testClient())
	if failure == nil {
		t.Fatal("expected failure")
	}
	if failure.Description != "Invalid, unknown or malformed scope" {
		t.Fatalf("unexpected description: %s", failure.Description)
	}
	if failure.Scope != "unknown" {
		t.Fatalf("unexpected offending scope: %s", failure.Scope)
	}
	if failure.ErrorCode() != "invalid_scope" {
		t.Fatalf("unexpected error code: %s", failure.ErrorCode())
	}
}

func TestValidateScopesRejectsScopeOutsideClientPolicy(t *testing.T) {
	client := testClient()
	client.Scopes = []string{"openid"}

	failure := ValidateScopes([]string{"openid", "phone"}, globalScopes, client)
	if failure == nil {
		t.Fatal("expected failure")
	}
	if failure.Description != "requested scope is not allowed" {
		t.Fatalf("unexpected description: %s", failure.Description)
	}
	if failure.Scope != "phone" {
		t.Fatalf("unexpected offending scope: %s", failure.Scope)
	}
}

func TestValidateScopesChecksVocabularyBeforeClientPolicy(t *testing.T) {
	client := testClient()
	client.Scopes = []string{"openid"}

	// "phone" violates client policy and "bogus" the vocabulary; the
	// vocabulary check runs first even though "phone" comes earlier.
	failure := ValidateScopes([]string{"openid", "phone", "bogus"}, globalScopes, client)
	if failure == nil {
		t.Fatal("expected failure")
	}
	if failure.Description != "Invalid, unknown or malformed scope" || failure.Scope != "bogus" {
		t.Fatalf("unexpected failure: %+v", failure)
	}
}

func TestValidateScopesReportsFirstOffenderInRequestOrder(t *testing.T) {
	failure := ValidateScopes([]string{"openid", "first", "second"}, globalScopes, testClient())
	if failure == nil {
		t.Fatal("expected failure")
	}
	if failure.Scope != "first" {
		t.Fatalf("expected first offending scope, got %s", failure.Scope)
	}
}
