package provider

type fakeContext struct {
	query      map[string]string
	form       map[string]string
	params     map[string]string
	headers    map[string]string
	statusCode int
	jsonBody   any
	textBody   string
	redirect   string
}

func (f *fakeContext) Query(key string) string {
	if f.query == nil {
		return ""
	}
	return f.query[key]
}

func (f *fakeContext) PostForm(key string) string {
	if f.form == nil {
		return ""
	}
	return f.form[key]
}

func (f *fakeContext) Param(key string) string {
	if f.params == nil {
		return ""
	}
	return f.params[key]
}

func (f *fakeContext) Header(key string) string {
	if f.headers == nil {
		return ""
	}
	return f.headers[key]
}

func (f *fakeContext) JSON(status int, value any) {
	f.statusCode = status
	f.jsonBody = value
}

func (f *fakeContext) String(status int, body string) {
	f.statusCode = status
	f.textBody = body
}

func (f *fakeContext) Redirect(status int, location string) {
	f.statusCode = status
	f.redirect = location
}

func (f *fakeContext) Status(status int) {
	f.statusCode = status
}

func testClient() ClientConfiguration {
	return ClientConfiguration{
		ClientID:                      "TEST_CLIENT_ID",
		Sub:                           "urn:fdc:gov.uk:2022:test-subject",
		Scopes:                        []string{"openid", "email", "phone"},
		RedirectURIs:                  []string{"http://localhost:8080/authorization-code/callback"},
		Claims:                        []string{"https://vocab.account.gov.uk/v1/coreIdentityJWT"},
		IdentityVerificationSupported: true,
		IDTokenSigningAlgorithm:       "RS256",
		LevelsOfConfidence:            []LevelOfConfidence{LevelOfConfidenceP2},
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Client = testClient()
	return cfg.Normalize()
}
