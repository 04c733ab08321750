// Package main is the entry point for the trivia API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"

	"trivia/internal/cache"
	"trivia/internal/config"
	"trivia/internal/database"
	"trivia/internal/handlers"
	"trivia/internal/logging"
	"trivia/internal/middleware"
	"trivia/internal/quiz"
	"trivia/internal/router"
	"trivia/internal/store"
)

func main() {
	seedOnly := pflag.Bool("seed", false, "load the fixture questions into an empty database and exit")
	migrateOnly := pflag.Bool("migrate-only", false, "apply pending migrations and exit")
	pflag.Parse()

	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to read .env", "error", err)
		os.Exit(1)
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(os.Stdout, cfg.LogLevel, cfg.IsDev()))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"log_level", cfg.LogLevel.String(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	if *migrateOnly {
		slog.Info("migrations applied")
		return
	}

	// Connect to Valkey. The API serves uncached when it is unreachable.
	var valkeyClient *redis.Client
	valkeyClient, err = cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, category cache disabled", "error", err)
		valkeyClient = nil
	} else {
		defer valkeyClient.Close()
	}

	// Initialize data stores and the category cache.
	questionStore := store.NewQuestionStore(db)
	categoryStore := store.NewCategoryStore(db)
	categoryCache := cache.NewCategories(valkeyClient, categoryStore, cfg.CacheTTL)

	// Seed the fixture (no-op if categories already exist).
	if cfg.IsDev() || *seedOnly {
		seeded, err := database.Seed(context.Background(), db)
		if err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
		if seeded {
			categoryCache.Invalidate(context.Background())
		}
		if *seedOnly {
			slog.Info("seed finished", "inserted", seeded)
			return
		}
	}

	api := handlers.NewAPI(questionStore, categoryCache, quiz.NewPicker(questionStore))

	opts := router.Options{CORSOrigins: cfg.CORSOrigins}
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
		defer limiter.Stop()
		opts.RateLimiter = limiter
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(api, handlers.Health(db), opts)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
