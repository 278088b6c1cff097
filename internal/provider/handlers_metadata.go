package provider

import (
	"fmt"
	"net/http"
	"strings"
)

type MetadataHandler struct {
	config     Config
	keyService *KeyService
}

func NewMetadataHandler(config Config, keyService *KeyService) *MetadataHandler {
	return &MetadataHandler{
		config:     config.normalize(),
		keyService: keyService,
	}
}

func (h *MetadataHandler) HandleDiscovery(ctx HTTPContext) {
	base := strings.TrimRight(h.config.Issuer, "/")
	ctx.JSON(http.StatusOK, map[string]any{
		"issuer":                                h.config.Issuer,
		"authorization_endpoint":                fmt.Sprintf("%s/authorize", base),
		"token_endpoint":                        fmt.Sprintf("%s/token", base),
		"userinfo_endpoint":                     fmt.Sprintf("%s/userinfo", base),
		"jwks_uri":                              fmt.Sprintf("%s/.well-known/jwks.json", base),
		"response_types_supported":              []string{"code"},
		"subject_types_supported":               []string{"public"},
		"id_token_signing_alg_values_supported": []string{"RS256"},
		"grant_types_supported":                 []string{"authorization_code"},
		"scopes_supported":                      h.config.SupportedScopes,
		"claims_supported":                      h.config.Client.Claims,
		"vot_values_supported":                  []string{"Cl", "Cl.Cm", "Cl.Cm.P2"},
	})
}

func (h *MetadataHandler) HandleJWKS(ctx HTTPContext) {
	ctx.JSON(http.StatusOK, h.keyService.JWKS())
}
