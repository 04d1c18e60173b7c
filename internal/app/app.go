package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hris-onboarding/internal/config"
	"hris-onboarding/internal/middleware"
	"hris-onboarding/internal/shared/connection"
)

// BuildApp connects postgres and redis and registers every module on router.
func BuildApp(router *gin.Engine, cfg *config.Configuration) error {
	logger := zap.L()

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	if cfg.JWT.Secret != "" {
		middleware.SetJWTSecret(cfg.JWT.Secret)
	}

	// 2. Register Modules & Routes
	return registerModules(router, cfg, sqlDB, gormDB, redisClient, logger)
}
