package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"project-planner/config"
	_ "project-planner/docs" // Swagger docs
	"project-planner/internal/httpserver"
	"project-planner/internal/middleware"
	recHTTP "project-planner/internal/recommendation/delivery/http"
	"project-planner/internal/recommendation/repository"
	"project-planner/internal/recommendation/repository/memory"
	"project-planner/internal/recommendation/usecase"
	"project-planner/pkg/llmprovider"
	"project-planner/pkg/log"
)

// @title       Project Planner API
// @description LLM-backed project recommendations with per-user conversation memory and structured plan extraction.
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

	logger.Info(ctx, "Starting Project Planner API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers: one manager for recommendations, one for extraction
	generator, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	extractCfg := cfg.LLM.ForExtraction()
	extractor, err := llmprovider.NewManagerFromConfig(&extractCfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize extraction providers: ", err)
		return
	}

	// 4. Per-user state
	userTTL, err := parseUserTTL(cfg.Conversation.UserTTL)
	if err != nil {
		logger.Error(ctx, "Invalid conversation.user_ttl: ", err)
		return
	}
	storeOpts := repository.Options{
		MaxHistory: cfg.Conversation.MaxHistory,
		MaxUsers:   cfg.Conversation.MaxUsers,
		UserTTL:    userTTL,
	}
	history := memory.NewConversationStore(storeOpts)
	results := memory.NewResultStore(storeOpts)
	logger.Infof(ctx, "Conversation cache: max_history=%d max_users=%d user_ttl=%s",
		storeOpts.MaxHistory, storeOpts.MaxUsers, userTTL)

	// 5. Recommendation domain
	recUC := usecase.New(logger, generator, extractor, history, results)
	recHandler := recHTTP.New(logger, recUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:                  cfg.HTTPServer.Port,
		Mode:                  cfg.HTTPServer.Mode,
		Environment:           cfg.Environment.Name,
		Middleware:            middleware.New(logger, cfg.RateLimit),
		RecommendationHandler: recHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseUserTTL(s string) (time.Duration, error) {
	if s == "" || s == "0" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
