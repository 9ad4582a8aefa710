package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai_manager_backend/internal/assistant"
	"ai_manager_backend/internal/config"
	"ai_manager_backend/internal/database"
	"ai_manager_backend/internal/fixtures"
	"ai_manager_backend/internal/metrics"
	"ai_manager_backend/internal/middleware"
	"ai_manager_backend/internal/ratelimit"
	"ai_manager_backend/internal/repositories"
	"ai_manager_backend/internal/router"
	"ai_manager_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(utils.Getenv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		utils.LogError(err, "Server stopped with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.SeedDemoData {
		if err := fixtures.Seed(ctx, repos, time.Now()); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}

	var generator assistant.TextGenerator
	if cfg.AIEnabled() {
		generator = assistant.NewOpenAIGenerator(assistant.GeneratorConfig{
			BaseURL:     cfg.OpenAIBaseURL,
			APIKey:      cfg.OpenAIAPIKey,
			Model:       cfg.OpenAIModel,
			MaxTokens:   cfg.OpenAIMaxTokens,
			Temperature: cfg.OpenAITemperature,
			Timeout:     cfg.OpenAITimeout(),
		})
		utils.LogInfo("AI assistant enabled", map[string]interface{}{"model": cfg.OpenAIModel})
	} else {
		utils.LogInfo("AI assistant running in demo mode (OPENAI_API_KEY not set)")
	}

	m := metrics.New()
	opts := router.Options{
		Assistant: assistant.New(generator),
		Metrics:   m,
	}
	if cfg.RedisAddr != "" {
		limiter, err := ratelimit.NewRedisFixedWindowLimiter(cfg.RedisAddr, cfg.RedisPassword, "", cfg.AIChatRateLimitPerMinute, time.Minute)
		if err != nil {
			return fmt.Errorf("init chat rate limiter: %w", err)
		}
		defer limiter.Close()
		opts.ChatLimiter = limiter
		utils.LogInfo("AI chat rate limit enabled", map[string]interface{}{"per_minute": limiter.Limit()})
	}

	engine := gin.New()
	engine.Use(middleware.Recovery(), middleware.RequestID(), utils.GinLogger(), middleware.Metrics(m))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-Id"}
	corsConfig.ExposeHeaders = []string{"X-Request-Id"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	router.Setup(engine, repos, opts)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		utils.LogInfo("AI Manager Backend running", map[string]interface{}{"port": cfg.Port, "store": cfg.StoreDriver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		utils.LogInfo("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openStore returns the record collections for the configured driver and a
// function releasing them.
func openStore(ctx context.Context, cfg config.Config) (*repositories.Repositories, func(), error) {
	if cfg.StoreDriver == config.DriverMemory {
		utils.LogInfo("Using in-memory store; data resets on restart")
		return repositories.NewMemoryRepositories(), func() {}, nil
	}

	dialect, err := repositories.DialectFromDriver(cfg.StoreDriver)
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(ctx, cfg.StoreDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			utils.LogError(err, "Failed to close database")
		}
	}
	return repositories.NewSQLRepositories(db, dialect), closeDB, nil
}
