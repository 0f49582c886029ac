package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kenyaamazon/storefront-api/internal/router"
	"github.com/kenyaamazon/storefront-api/pkg/ai"
	"github.com/kenyaamazon/storefront-api/pkg/global"
	"github.com/kenyaamazon/storefront-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	logger.Initialize(global.GetEnvOrDefault("ENV", "development"))
	defer logger.Sync()

	ai.InitializeGenerationService()
	router.InitStores()
	router.InitEngine()
	router.InitializeRoutes()

	port := global.GetEnvOrDefault("PORT", "8000")
	logger.Log.Info("server is running", zap.String("port", port))

	if err := router.Router.Run(":" + port); err != nil {
		logger.Log.Fatal("failed to run server", zap.Error(err))
	}
}
