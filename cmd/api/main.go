package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/kbhatta/quotify-api/internal/application/service"
	"github.com/kbhatta/quotify-api/internal/config"
	"github.com/kbhatta/quotify-api/internal/infrastructure/database"
	"github.com/kbhatta/quotify-api/internal/infrastructure/repository"
	"github.com/kbhatta/quotify-api/internal/presentation/http/handler"
	"github.com/kbhatta/quotify-api/internal/presentation/http/routes"
	"github.com/kbhatta/quotify-api/pkg/utils"
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

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	itemRepo := repository.NewItemRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	// Initialize services
	authService, err := service.NewAuthService(cfg.Auth.OwnerPIN, cfg.Auth.UserPIN, jwtManager)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	catalogService := service.NewCatalogService(itemRepo)
	customerService := service.NewCustomerService(customerRepo)
	documentService := service.NewDocumentService(documentRepo, itemRepo)
	dashboardService := service.NewDashboardService(itemRepo, customerRepo, documentRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Item:      handler.NewItemHandler(catalogService),
		Customer:  handler.NewCustomerHandler(customerService),
		Document:  handler.NewDocumentHandler(documentService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Start server
	port := cfg.App.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Printf("Starting %s on port %s", cfg.App.Name, port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
