package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chynybekuuludastan/creator_toolkit/internal/api/handlers"
	"github.com/chynybekuuludastan/creator_toolkit/internal/api/middleware"
	ws "github.com/chynybekuuludastan/creator_toolkit/internal/api/websocket"
	"github.com/chynybekuuludastan/creator_toolkit/internal/database"
	"github.com/chynybekuuludastan/creator_toolkit/internal/repository"
	"github.com/chynybekuuludastan/creator_toolkit/internal/service/generator"
	"github.com/chynybekuuludastan/creator_toolkit/internal/service/session"
	"github.com/chynybekuuludastan/creator_toolkit/internal/service/usage"
)

// Dependencies are the collaborators the routes are built from. DB, Redis
// and Limiter are optional.
type Dependencies struct {
	DB        *database.DatabaseClient
	Redis     *database.RedisClient
	Generator *generator.Service
	Sessions  *session.Registry
	Usage     *usage.Tracker
	Hub       *ws.Hub
	Limiter   *middleware.RateLimiter
}

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, deps Dependencies) {
	var repoFactory *repository.Factory
	if deps.DB != nil {
		repoFactory = repository.NewRepositoryFactory(deps.DB.DB)
	}

	generatorHandler := handlers.NewGeneratorHandler(deps.Generator, deps.Sessions, deps.Usage, repoFactory)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Redis)
	wsHandler := handlers.NewWebSocketHandler(deps.Hub, deps.Sessions)

	app.Use(middleware.RequestID(), middleware.Session(), middleware.Metrics())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API group
	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)
	api.Get("/options", generatorHandler.GetOptions)
	api.Get("/stats", generatorHandler.GetStats)
	api.Get("/sessions/:id/status", generatorHandler.GetSessionStatus)

	// Generators
	limiter := deps.Limiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(0, 0)
	}
	rateLimit := limiter.Handler()
	api.Post("/titles", rateLimit, generatorHandler.GenerateTitles)
	api.Post("/descriptions", rateLimit, generatorHandler.GenerateDescription)
	api.Post("/seo/analyze", rateLimit, generatorHandler.AnalyzeSEO)

	// WebSocket endpoint for session status updates
	app.Use("/ws", wsHandler.Upgrade)
	app.Get("/ws/sessions/:id", websocket.New(wsHandler.HandleSessionWebSocket))
}
