// @title NurVo Backend API
// @version 1.0
// @description Backend of the NurVo nursing conversation learning app.

// @host localhost:4000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"flag"
	"log"

	"nurvo_backend/internal/app"
	"nurvo_backend/internal/config"
	"nurvo_backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "run database migrations on startup, also in release mode")
	configDir := flag.String("config", "configs", "directory holding config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application, err := app.NewApp(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to start application", zap.Error(err))
	}
	defer logger.Log.Sync()

	if *migrateOnly {
		logger.Log.Info("Database migration completed, exiting")
		application.Close(context.Background())
		return
	}

	if err := application.Run(); err != nil {
		logger.Log.Fatal("Server error", zap.Error(err))
	}
}
