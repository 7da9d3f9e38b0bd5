package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/evaluatehub/backend/internal/api"
	"github.com/evaluatehub/backend/internal/events"
	"github.com/evaluatehub/backend/internal/inference"
	"github.com/evaluatehub/backend/internal/infrastructure/config"
	"github.com/evaluatehub/backend/internal/service"
	"github.com/evaluatehub/backend/internal/store"

	_ "github.com/evaluatehub/backend/docs" // swagger docs
)

// @title           EvaluateHub API
// @version         1.0
// @description     Relays essays to a local language model for IELTS, SAT and GRE grading, and generates writing prompts.

// @host      localhost:8000
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// ── Dependencies ────────────────────────────────────────────────
	var history store.Store = store.NopStore{}
	if cfg.DBPath != "" {
		db, err := store.NewSQLite(cfg.DBPath)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		history = db
	} else {
		logger.Info("history disabled")
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.NATSURL != "" {
		nats, err := events.NewNATSPublisher(cfg.NATSURL, cfg.NATSSubjectPrefix)
		if err != nil {
			logger.Error("failed to connect event bus", "error", err)
			os.Exit(1)
		}
		defer nats.Close()
		publisher = nats
	}

	recorder := service.NewRecorder(history, publisher, cfg.HistoryWorkers, logger)
	defer recorder.Close()

	llm := inference.NewOllamaClient(cfg.LLMURL, cfg.LLMModel, cfg.LLMTimeout)
	relay := service.NewEvaluationService(llm, recorder, logger)
	handler := api.NewHandler(relay, history, logger, api.Options{
		ModelName:    cfg.LLMModel,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	// No WriteTimeout: a model call may take minutes and is bounded only by
	// LLM_TIMEOUT and the client's connection.
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("starting server",
		"address", cfg.ServerAddress,
		"llm_url", cfg.LLMURL,
		"llm_model", cfg.LLMModel,
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}

	<-idleConnsClosed
}
