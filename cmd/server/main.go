package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/chynybekuuludastan/creator_toolkit/internal/api"
	"github.com/chynybekuuludastan/creator_toolkit/internal/api/middleware"
	ws "github.com/chynybekuuludastan/creator_toolkit/internal/api/websocket"
	"github.com/chynybekuuludastan/creator_toolkit/internal/config"
	"github.com/chynybekuuludastan/creator_toolkit/internal/database"
	"github.com/chynybekuuludastan/creator_toolkit/internal/logger"
	"github.com/chynybekuuludastan/creator_toolkit/internal/service/generator"
	"github.com/chynybekuuludastan/creator_toolkit/internal/service/session"
	"github.com/chynybekuuludastan/creator_toolkit/internal/service/usage"
)

const (
	janitorInterval = 5 * time.Minute
	sessionIdleTTL  = time.Hour
)

// @title Creator Toolkit API
// @version 1.0
// @description Title, description and SEO helpers for video creators

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found")
	}

	cfg := config.NewConfig()
	logger.SetLogger(logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat))

	var db *database.DatabaseClient
	if cfg.PostgresURI != "" {
		var err error
		db, err = database.InitPostgreSQL(cfg.PostgresURI)
		if err != nil {
			logger.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		defer db.Close()
	} else {
		logger.Info("POSTGRES_URI not set, generation event log disabled")
	}

	var redisClient *database.RedisClient
	tracker := usage.TrackerOptions{DailyTTL: cfg.StatsTTL}
	if cfg.RedisURI != "" {
		var err error
		redisClient, err = database.InitRedis(cfg.RedisURI)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisClient.Close()
		tracker.RedisClient = redisClient.Client
	} else {
		logger.Info("REDIS_URI not set, usage counters kept in memory")
	}

	hub := ws.NewHub()
	go hub.Run()
	defer hub.Stop()

	// a zero delay in config means none; the service treats zero as "default"
	delay := cfg.GenerationDelay
	if delay == 0 {
		delay = -1
	}

	sessions := session.NewRegistry(hub)
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	app := api.NewApp(cfg)

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, X-Request-ID, X-Session-ID",
		AllowMethods:  "GET, POST",
		ExposeHeaders: "X-Request-ID, X-Session-ID",
	}))

	api.SetupSwagger(app)
	api.SetupRoutes(app, api.Dependencies{
		DB:    db,
		Redis: redisClient,
		Generator: generator.NewService(generator.ServiceOptions{
			Delay:  delay,
			Logger: logger.NewKV(nil),
		}),
		Sessions: sessions,
		Usage:    usage.NewTracker(tracker),
		Hub:      hub,
		Limiter:  limiter,
	})

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go runJanitor(ctx, sessions, limiter)

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
}

// runJanitor drops idle session states and rate-limit buckets
func runJanitor(ctx context.Context, sessions *session.Registry, limiter *middleware.RateLimiter) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			states := sessions.Prune(sessionIdleTTL)
			buckets := limiter.Cleanup(sessionIdleTTL)
			if states > 0 || buckets > 0 {
				logger.Debug("Janitor pruned idle entries", "session_states", states, "rate_buckets", buckets)
			}
		case <-ctx.Done():
			return
		}
	}
}
