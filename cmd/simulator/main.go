package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/govuk-one-login/test-harness/internal/provider"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	loadDotEnv(logger)

	config, err := provider.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	keyService, err := provider.NewKeyService(config.PrivateKeyPEM)
	if err != nil {
		logger.Fatal("failed to initialise signing key", zap.Error(err))
	}
	verifier, err := provider.NewSignatureVerifier(config, keyService, logger)
	if err != nil {
		logger.Fatal("failed to initialise verifier", zap.Error(err))
	}

	registry := provider.NewClientRegistry(config.Client)
	store := provider.NewInMemoryStore()
	validator := provider.NewRequestValidator(config)
	tokenService := provider.NewTokenService(config, keyService, logger)

	authorize := provider.NewAuthorizeHandler(registry, validator, store, config)
	interaction := provider.NewInteractionHandler(store, config)
	token := provider.NewTokenHandler(registry, store, tokenService, config)
	userinfo := provider.NewUserInfoHandler(verifier)
	metadata := provider.NewMetadataHandler(config, keyService)

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/authorize", func(ctx *gin.Context) { authorize.Handle(provider.WrapGinContext(ctx)) })
	engine.GET("/interaction/:uid", func(ctx *gin.Context) { interaction.Handle(provider.WrapGinContext(ctx)) })
	engine.POST("/token", func(ctx *gin.Context) { token.Handle(provider.WrapGinContext(ctx)) })
	engine.GET("/userinfo", func(ctx *gin.Context) { userinfo.Handle(provider.WrapGinContext(ctx)) })
	engine.GET("/.well-known/openid-configuration", func(ctx *gin.Context) { metadata.HandleDiscovery(provider.WrapGinContext(ctx)) })
	engine.GET("/.well-known/jwks.json", func(ctx *gin.Context) { metadata.HandleJWKS(provider.WrapGinContext(ctx)) })

	logger.Info("starting identity provider", zap.String("addr", config.ListenAddr), zap.String("issuer", config.Issuer))
	if err := engine.Run(config.ListenAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func loadDotEnv(logger *zap.Logger) {
	filename, err := filepath.Abs(filepath.Join(".", ".env"))
	if err != nil {
		return
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return
	}
	if err := godotenv.Load(filename); err != nil {
		logger.Warn("failed to load .env", zap.Error(err))
	}
}
