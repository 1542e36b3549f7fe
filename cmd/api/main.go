package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "modernc.org/sqlite"

	"github.com/rainerkim/ai-todo-manager/config"
	_ "github.com/rainerkim/ai-todo-manager/docs" // Swagger docs
	"github.com/rainerkim/ai-todo-manager/internal/httpserver"
	"github.com/rainerkim/ai-todo-manager/internal/middleware"
	todoHTTP "github.com/rainerkim/ai-todo-manager/internal/todo/delivery/http"
	sqliteRepo "github.com/rainerkim/ai-todo-manager/internal/todo/repository/sqlite"
	"github.com/rainerkim/ai-todo-manager/internal/todo/usecase"
	"github.com/rainerkim/ai-todo-manager/pkg/datemath"
	"github.com/rainerkim/ai-todo-manager/pkg/gemini"
	"github.com/rainerkim/ai-todo-manager/pkg/log"
)

// @title       AI Todo Manager API
// @description Natural-language todo management backed by the Gemini LLM.
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

	logger.Info(ctx, "Starting AI Todo Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sql.Open("sqlite", cfg.SQLite.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open sqlite database: %v", err)
	}
	defer db.Close()

	if err := sqliteRepo.Migrate(db); err != nil {
		logger.Fatalf(ctx, "Failed to migrate sqlite database: %v", err)
	}

	todoRepo := sqliteRepo.New(db, logger)

	// 4. Date anchors
	resolver, err := datemath.NewResolver(cfg.Gemini.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Gemini.Timezone, err)
		resolver, _ = datemath.NewResolver("UTC")
	}

	// 5. Gemini LLM client (optional: without it the parse endpoint
	// reports the service as not configured)
	var llm usecase.LLMClient
	if cfg.Gemini.APIKey != "" {
		geminiClient, gErr := gemini.NewClient(gemini.Config{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.Model,
		})
		if gErr != nil {
			logger.Fatalf(ctx, "Failed to create Gemini client: %v", gErr)
		}
		llm = geminiClient
		logger.Infof(ctx, "Gemini client initialized (model=%s)", geminiClient.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY is missing, natural-language parsing disabled")
	}

	// 6. Todo domain
	todoUC := usecase.New(logger, llm, todoRepo, resolver)
	todoHandler := todoHTTP.New(logger, todoUC)

	// 7. HTTP server
	mw := middleware.New(logger, cfg)

	srv, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TodoHandler: todoHandler,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped with error: %v", err)
	}

	logger.Info(ctx, "Shutdown complete")
}
