package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sellstack/pipeline-api/internal/application/service"
	"github.com/sellstack/pipeline-api/internal/config"
	"github.com/sellstack/pipeline-api/internal/infrastructure/database"
	"github.com/sellstack/pipeline-api/internal/infrastructure/repository"
	"github.com/sellstack/pipeline-api/internal/presentation/http/handler"
	"github.com/sellstack/pipeline-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	leadRepo := repository.NewLeadRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	contactRepo := repository.NewContactRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	txRunner := repository.NewTxRunner(db)

	// Purge expired idempotency keys in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Failed to purge expired idempotency keys: %v", err)
			}
		}
	}()

	// Initialize services
	leadService := service.NewLeadService(leadRepo)
	accountService := service.NewAccountService(accountRepo)
	contactService := service.NewContactService(contactRepo, accountRepo)
	opportunityService := service.NewOpportunityService(opportunityRepo, accountRepo)
	convertService := service.NewConvertService(leadRepo, accountRepo, contactRepo, opportunityRepo, txRunner, cfg.CRM)

	// Initialize handlers
	handlers := &routes.Handlers{
		Lead:        handler.NewLeadHandler(leadService, convertService),
		Account:     handler.NewAccountHandler(accountService),
		Contact:     handler.NewContactHandler(contactService),
		Opportunity: handler.NewOpportunityHandler(opportunityService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
