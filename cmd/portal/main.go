package main

import (
	"log/slog"
	"os"

	"github.com/egabank/egabank_portal/internal/backend"
	"github.com/egabank/egabank_portal/internal/core/services"
	"github.com/egabank/egabank_portal/internal/handlers"
	"github.com/egabank/egabank_portal/internal/middleware"
	"github.com/egabank/egabank_portal/internal/platform/config"
	"github.com/egabank/egabank_portal/internal/session"
	"github.com/egabank/egabank_portal/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Session store, the persisted equivalent of the browser's stored user
	store := session.NewStore(cfg.SessionFile, logger)

	// Backend gateway. The store supplies the bearer token, and a 401/403 on
	// any non-auth call tears the session down through the hook.
	gateway := backend.New(
		cfg.BackendBaseURL,
		cfg.BackendTimeout,
		store,
		logger,
		backend.WithUnauthorizedHook(store.Clear),
	)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	serviceContainer := services.NewServiceContainer(gateway, store, posthogClient)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Use(middleware.PosthogMiddleware(posthogClient))

	handlers.RegisterRoutes(r, serviceContainer, store)

	logger.Info("Portal starting", slog.String("port", cfg.Port), slog.String("backend", cfg.BackendBaseURL))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
