package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbhatta/quotify-api/internal/application/service"
	"github.com/kbhatta/quotify-api/internal/config"
	"github.com/kbhatta/quotify-api/internal/presentation/http/handler"
	"github.com/kbhatta/quotify-api/internal/presentation/http/middleware"
	"github.com/kbhatta/quotify-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Item      *handler.ItemHandler
	Customer  *handler.CustomerHandler
	Document  *handler.DocumentHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Session introspection
	protected.GET("/auth/me", h.Auth.Me)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)

	// Catalog reads are open to both roles; mutations are owner-only
	registerItemRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Quotations and bills
	registerDocumentRoutes(protected, h)
}

func registerItemRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/items")
	{
		items.GET("", h.Item.List)
		items.GET("/suggest", h.Item.Suggest)
		items.GET("/:id", h.Item.Get)
	}

	owner := protected.Group("/items")
	owner.Use(middleware.RequireRole(service.RoleOwner))
	{
		owner.POST("", h.Item.Create)
		owner.PUT("/:id", h.Item.Update)
		owner.PATCH("/:id/stock", h.Item.AdjustStock)
		owner.DELETE("/:id", h.Item.Delete)
		owner.DELETE("", h.Item.DeleteAll)
		owner.POST("/import", h.Item.Import)
		owner.GET("/export", h.Item.Export)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/suggest", h.Customer.Suggest)
		customers.GET("/:id", h.Customer.Get)
		customers.POST("", h.Customer.Create)
		customers.PUT("/:id", h.Customer.Update)
	}

	owner := protected.Group("/customers")
	owner.Use(middleware.RequireRole(service.RoleOwner))
	{
		owner.DELETE("/:id", h.Customer.Delete)
		owner.DELETE("", h.Customer.DeleteAll)
		owner.POST("/import", h.Customer.Import)
	}
}

func registerDocumentRoutes(protected *gin.RouterGroup, h *Handlers) {
	documents := protected.Group("/documents")
	{
		documents.GET("", h.Document.List)
		documents.POST("", h.Document.Create)
		documents.POST("/preview", h.Document.Preview)
		documents.GET("/:id", h.Document.Get)
		documents.PUT("/:id", h.Document.Update)
		documents.DELETE("/:id", h.Document.Delete)
		documents.GET("/:id/pdf", h.Document.PDF)
	}

	owner := protected.Group("/documents")
	owner.Use(middleware.RequireRole(service.RoleOwner))
	{
		owner.GET("/export", h.Document.Export)
	}
}
