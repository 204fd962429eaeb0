package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-task-assistant/config"
	_ "ai-task-assistant/docs" // Swagger docs
	"ai-task-assistant/internal/httpserver"
	"ai-task-assistant/internal/middleware"
	"ai-task-assistant/internal/summary/repository"
	memoryRepo "ai-task-assistant/internal/summary/repository/memory"
	redisRepo "ai-task-assistant/internal/summary/repository/redis"
	summaryUC "ai-task-assistant/internal/summary/usecase"
	taskUC "ai-task-assistant/internal/task/usecase"
	"ai-task-assistant/pkg/datemath"
	"ai-task-assistant/pkg/llmprovider"
	"ai-task-assistant/pkg/log"
)

// @title       AI Task Assistant API
// @description Natural-language task parsing, task analytics and AI generated summaries.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Task Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.App.Timezone)

	// 3. Date resolution
	dateMathParser, err := datemath.NewParser(cfg.App.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid timezone: ", err)
		return
	}

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
		CircuitBreaker: llmprovider.CircuitBreakerConfig{
			Enabled:          cfg.LLM.CircuitBreaker.Enabled,
			MaxRequests:      cfg.LLM.CircuitBreaker.MaxRequests,
			Interval:         cfg.LLM.CircuitBreaker.Interval,
			Timeout:          cfg.LLM.CircuitBreaker.Timeout,
			FailureThreshold: cfg.LLM.CircuitBreaker.FailureThreshold,
		},
	}, logger)
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	// 5. Summary cache (optional)
	var (
		cache     repository.Repository
		readiness func(context.Context) error
	)
	switch cfg.Cache.Driver {
	case config.CacheDriverMemory:
		cache = memoryRepo.New(cfg.Cache.Size, cfg.Cache.TTL)
		logger.Infof(ctx, "Summary cache: memory (size %d, ttl %s)", cfg.Cache.Size, cfg.Cache.TTL)
	case config.CacheDriverRedis:
		redisClient, rErr := redisRepo.Connect(ctx, cfg.Cache.Redis.Addr, cfg.Cache.Redis.Password, cfg.Cache.Redis.DB)
		if rErr != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", rErr)
			return
		}
		defer redisClient.Close()
		cache = redisRepo.New(redisClient, cfg.Cache.TTL, logger)
		readiness = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
		logger.Infof(ctx, "Summary cache: redis at %s (ttl %s)", cfg.Cache.Redis.Addr, cfg.Cache.TTL)
	default:
		logger.Info(ctx, "Summary cache disabled")
	}

	// 6. Use cases
	taskUseCase := taskUC.New(logger, manager, dateMathParser)
	summaryUseCase := summaryUC.New(logger, manager, cache, dateMathParser.Location())

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		Middleware:      middleware.New(logger, cfg.RateLimit),
		TaskUseCase:     taskUseCase,
		SummaryUseCase:  summaryUseCase,
		ReadinessCheck:  readiness,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
