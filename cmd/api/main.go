package main

import (
	"context"
	"log"

	"github.com/freshkeep/backend/config"
	"github.com/freshkeep/backend/internal/api"
	"github.com/freshkeep/backend/internal/database"
	"github.com/freshkeep/backend/internal/middleware"
	"github.com/freshkeep/backend/internal/router"
	"github.com/freshkeep/backend/internal/server"
	"github.com/freshkeep/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis backs the AI response cache and the rate limiter. The app
	// works without it, it just pays for every AI call.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache: %v", err)
		redisClient = nil
	}

	// Optional photo archive.
	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Printf("S3 unavailable, photo archival disabled: %v", err)
		s3Config = nil
	}

	llmService, err := service.NewLLMService(cfg, redisClient)
	if err != nil {
		log.Fatalf("Failed to initialize AI gateway: %v", err)
	}

	storageService := service.NewStorageService(db, llmService)
	if err := storageService.Seed(); err != nil {
		log.Fatalf("Failed to seed storage registry: %v", err)
	}

	inventoryService := service.NewInventoryService(db)
	cookbookService := service.NewCookbookService(db)
	shoppingService := service.NewShoppingService(db)
	imageService := service.NewImageService(s3Config)

	aiLimiter := middleware.NewAIRateLimiter(redisClient)

	engine := router.SetupRouter(
		api.NewInventoryHandler(inventoryService, storageService),
		api.NewCookingHandler(inventoryService, llmService, aiLimiter),
		api.NewAnalyzeHandler(llmService, storageService, imageService, aiLimiter),
		api.NewCookbookHandler(cookbookService),
		api.NewShoppingHandler(shoppingService),
		cfg.AllowedOrigins,
	)

	srv := server.New(engine)
	if err := srv.Start(cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
