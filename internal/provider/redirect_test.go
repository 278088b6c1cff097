package provider

import "testing"

const (
	testRedirectURI = "http://localhost:8080/authorization-code/callback"
	testIssuer      = "https://oidc.account.gov.uk/"
	encodedIssuer   = "https%3A%2F%2Foidc.account.gov.uk%2F"
)

func TestBuildErrorRedirectForInvalidClaims(t *testing.T) {
	location := BuildErrorRedirect(testRedirectURI, "state-1", testIssuer, invalidClaims())
	want := testRedirectURI +
		"?error=invalid_request" +
		"&error_description=Request%20contains%20invalid%20claims" +
		"&state=state-1" +
		"&iss=" + encodedIssuer
	if location != want {
		t.Fatalf("unexpected location:\n got %s\nwant %s", location, want)
	}
}

func TestBuildErrorRedirectForInvalidVtr(t *testing.T) {
	location := BuildErrorRedirect(testRedirectURI, "state-1", testIssuer, invalidVtr())
	want := testRedirectURI +
		"?error=invalid_request" +
		"&error_description=Request%20vtr%20not%20valid" +
		"&state=state-1" +
		"&iss=" + encodedIssuer
	if location != want {
		t.Fatalf("unexpected location:\n got %s\nwant %s", location, want)
	}
}

func TestBuildErrorRedirectForInvalidScopeCarriesOffendingScope(t *testing.T) {
	failure := &ValidationFailure{
		Kind:        FailureInvalidScope,
		Description: descScopeUnknown,
		Scope:       "unknown",
	}
	location := BuildErrorRedirect(testRedirectURI, "state-1", testIssuer, failure)
	want := testRedirectURI +
		"?error=invalid_scope" +
		"&error_description=Invalid%2C%20unknown%20or%20malformed%20scope" +
		"&scope=unknown" +
		"&state=state-1" +
		"&iss=" + encodedIssuer
	if location != want {
		t.Fatalf("unexpected location:\n got %s\nwant %s", location, want)
	}
}

func TestBuildErrorRedirectEscapesState(t *testing.T) {
	location := BuildErrorRedirect(testRedirectURI, "st&te=1", testIssuer, invalidVtr())
	want := testRedirectURI +
		"?error=invalid_request" +
		"&error_description=Request%20vtr%20not%20valid" +
		"&state=st%26te%3D1" +
		"&iss=" + encodedIssuer
	if location != want {
		t.Fatalf("unexpected location:\n got %s\nwant %s", location, want)
	}
}

func TestBuildCodeRedirect(t *testing.T) {
	location := BuildCodeRedirect(testRedirectURI, "code-1", "state-1", testIssuer)
	want := testRedirectURI + "?code=code-1&state=state-1&iss=" + encodedIssuer
	if location != want {
		t.Fatalf("unexpected location:\n got %s\nwant %s", location, want)
	}
}

func TestAppendRedirectParamsKeepsExistingQuery(t *testing.T) {
	location := appendRedirectParams("https://client.example.com/cb?app=1", []redirectParam{{"code", "abc"}})
	want := "https://client.example.com/cb?app=1&code=abc"
	if location != want {
		t.Fatalf("unexpected location: %s", location)
	}
}
