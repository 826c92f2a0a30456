package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"interior_estimator/internal/adapter/http/routes"
	"interior_estimator/internal/infrastructure/config"
	"interior_estimator/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Interior Estimator API
// @version         1.0
// @description     Interior design estimate wizard and pricing engine.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat, "interior-estimator")
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, zl); err != nil {
		zl.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
	zl.Info("server exited")
}
