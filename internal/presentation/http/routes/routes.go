package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sellstack/pipeline-api/internal/config"
	domainRepo "github.com/sellstack/pipeline-api/internal/domain/repository"
	"github.com/sellstack/pipeline-api/internal/presentation/http/handler"
	"github.com/sellstack/pipeline-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Lead        *handler.LeadHandler
	Account     *handler.AccountHandler
	Contact     *handler.ContactHandler
	Opportunity *handler.OpportunityHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
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
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerLeadRoutes(v1, h, deps)
		registerAccountRoutes(v1, h)
		registerContactRoutes(v1, h)
		registerOpportunityRoutes(v1, h)
	}

	return router
}

func registerLeadRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	leads := v1.Group("/leads")
	{
		leads.GET("", h.Lead.List)
		leads.POST("", h.Lead.Create)
		// Conversion honors idempotency keys so a double submit replays the
		// original response instead of failing on the converted-status guard
		leads.POST("/convert", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Lead.Convert)
		leads.GET("/:id", h.Lead.Get)
		leads.PUT("/:id", h.Lead.Update)
		leads.DELETE("/:id", h.Lead.Delete)
	}
}

func registerAccountRoutes(v1 *gin.RouterGroup, h *Handlers) {
	accounts := v1.Group("/accounts")
	{
		accounts.GET("", h.Account.List)
		accounts.POST("", h.Account.Create)
		accounts.GET("/:id", h.Account.Get)
		accounts.PUT("/:id", h.Account.Update)
		accounts.DELETE("/:id", h.Account.Delete)
	}
}

func registerContactRoutes(v1 *gin.RouterGroup, h *Handlers) {
	contacts := v1.Group("/contacts")
	{
		contacts.GET("", h.Contact.List)
		contacts.POST("", h.Contact.Create)
		contacts.GET("/:id", h.Contact.Get)
		contacts.PUT("/:id", h.Contact.Update)
		contacts.DELETE("/:id", h.Contact.Delete)
	}
}

func registerOpportunityRoutes(v1 *gin.RouterGroup, h *Handlers) {
	opportunities := v1.Group("/opportunities")
	{
		opportunities.GET("", h.Opportunity.List)
		opportunities.POST("", h.Opportunity.Create)
		opportunities.GET("/:id", h.Opportunity.Get)
		opportunities.PUT("/:id", h.Opportunity.Update)
		opportunities.DELETE("/:id", h.Opportunity.Delete)
	}
}
