package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hris-onboarding/internal/app"
	"hris-onboarding/internal/bootstrap"
	"hris-onboarding/internal/config"
	"hris-onboarding/internal/shared/apperror"
	"hris-onboarding/internal/shared/audit"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	apperror.Init()
	r := gin.Default()

	// build dependency + routes
	if err := app.BuildApp(r, cfg); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	read, write, idle := cfg.ServerTimeouts()
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.App.Port,
			ReadTimeout:  read,
			WriteTimeout: write,
			IdleTimeout:  idle,
		},
		audit.NewLogger(),
	)
}
