// Loads topics, chapters and conversations from a YAML file.
//
// Usage: go run scripts/seed_content.go -file scripts/content.example.yaml

package main

import (
	"context"
	"flag"
	"log"

	"nurvo_backend/internal/config"
	"nurvo_backend/internal/seed"
	"nurvo_backend/internal/service"
	"nurvo_backend/pkg/database"
	"nurvo_backend/pkg/logger"
)

func main() {
	file := flag.String("file", "scripts/content.example.yaml", "content file")
	configDir := flag.String("config", "configs", "directory holding config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.InitLogger(cfg)

	content, err := seed.LoadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read content: %v", err)
	}

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	res, err := seed.Apply(context.Background(), db, content)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d topics, %d chapters, %d conversations", res.Topics, res.Chapters, res.Conversations)

	if !cfg.Redis.Enabled {
		return
	}
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, cached content expires after %s: %v", cfg.Cache.ContentTTL, err)
		return
	}
	defer rdb.Close()

	if err := service.NewRedisContentCache(rdb).Clear(context.Background()); err != nil {
		log.Fatalf("Failed to clear content cache: %v", err)
	}
	log.Printf("Content cache cleared")
}
