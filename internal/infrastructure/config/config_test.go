package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"SERVER_ADDRESS", "SHUTDOWN_TIMEOUT", "MAX_BODY_BYTES", "LOG_LEVEL",
		"LLM_URL", "LLM_MODEL", "LLM_TIMEOUT", "HISTORY_WORKERS",
		"NATS_URL", "NATS_SUBJECT_PREFIX",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.ServerAddress != ":8000" {
		t.Errorf("expected default address :8000, got %s", cfg.ServerAddress)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected 10s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Errorf("expected 1 MiB body limit, got %d", cfg.MaxBodyBytes)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.LLMURL != "http://localhost:11434" || cfg.LLMModel != "llama2" {
		t.Errorf("unexpected model server defaults: %s %s", cfg.LLMURL, cfg.LLMModel)
	}
	if cfg.LLMTimeout != 0 {
		t.Errorf("expected no LLM timeout by default, got %v", cfg.LLMTimeout)
	}
	if cfg.HistoryWorkers != 2 {
		t.Errorf("expected 2 history workers, got %d", cfg.HistoryWorkers)
	}
	if cfg.NATSURL != "" || cfg.NATSSubjectPrefix != "evaluatehub.relay" {
		t.Errorf("unexpected NATS defaults: %q %q", cfg.NATSURL, cfg.NATSSubjectPrefix)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")
	t.Setenv("LLM_TIMEOUT", "90s")
	t.Setenv("LLM_MODEL", "llama3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("DB_PATH", "")

	cfg := Load()

	if cfg.ServerAddress != "127.0.0.1:9000" {
		t.Errorf("unexpected address %s", cfg.ServerAddress)
	}
	if cfg.LLMTimeout != 90*time.Second {
		t.Errorf("expected 90s timeout, got %v", cfg.LLMTimeout)
	}
	if cfg.LLMModel != "llama3" {
		t.Errorf("expected llama3, got %s", cfg.LLMModel)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.MaxBodyBytes != 2048 {
		t.Errorf("expected 2048, got %d", cfg.MaxBodyBytes)
	}
	if cfg.DBPath != "" {
		t.Errorf("expected explicitly empty DB_PATH to disable history, got %q", cfg.DBPath)
	}
}
