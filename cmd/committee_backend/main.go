package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/aymanouf/committee-finance/internal/core/ports/services"
	"github.com/aymanouf/committee-finance/internal/core/policy"
	"github.com/aymanouf/committee-finance/internal/core/services"
	"github.com/aymanouf/committee-finance/internal/handlers"
	"github.com/aymanouf/committee-finance/internal/middleware"
	"github.com/aymanouf/committee-finance/internal/platform/config"
	"github.com/aymanouf/committee-finance/internal/repositories/memory"
)

// @title Committee Finance API
// @version 1.0
// @description Ledger, budgets, events and fundraising for a small committee.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register binding validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store := memory.NewStore()
	if cfg.SnapshotPath != "" {
		data, err := os.ReadFile(cfg.SnapshotPath)
		if err != nil {
			logger.Error("Failed to read snapshot file", slog.String("path", cfg.SnapshotPath), slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := store.ImportSnapshot(data); err != nil {
			logger.Error("Failed to restore snapshot", slog.String("path", cfg.SnapshotPath), slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("State restored from snapshot", slog.String("path", cfg.SnapshotPath))
	}

	ledgerRepo := memory.NewLedgerRepository(store)
	eventRepo := memory.NewEventRepository(store)
	fundraisingRepo := memory.NewFundraisingRepository(store)
	userRepo := memory.NewUserRepository(store)

	if err := services.SeedUsers(context.Background(), userRepo, cfg); err != nil {
		logger.Error("Failed to seed committee logins", slog.String("error", err.Error()))
		os.Exit(1)
	}

	approval := policy.ApprovalPolicy{VoteAdvisoryOnly: cfg.VoteAdvisoryOnly}
	ledgerService := services.NewLedgerService(ledgerRepo, ledgerRepo, approval)
	container := &portssvc.ServiceContainer{
		Auth:        services.NewAuthService(cfg, userRepo),
		Ledger:      ledgerService,
		Event:       services.NewEventService(eventRepo, ledgerService),
		Fundraising: services.NewFundraisingService(fundraisingRepo),
		Reporting:   services.NewReportingService(ledgerRepo, eventRepo, ledgerService),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, store)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
