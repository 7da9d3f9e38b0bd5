package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	LogLevel        slog.Level

	// Model server
	LLMURL     string        // Ollama base URL, e.g. "http://localhost:11434"
	LLMModel   string        // model name, e.g. "llama2"
	LLMTimeout time.Duration // 0 means no client timeout

	// History; an empty DBPath disables it
	DBPath         string
	HistoryWorkers int

	// Event bus; an empty NATSURL disables it
	NATSURL           string
	NATSSubjectPrefix string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:     getenvDefault("SERVER_ADDRESS", ":8000"),
		ShutdownTimeout:   mustGetDuration("SHUTDOWN_TIMEOUT", "10s"),
		MaxBodyBytes:      int64(mustGetInt("MAX_BODY_BYTES", 1<<20)),
		LogLevel:          mustGetLevel("LOG_LEVEL", "info"),
		LLMURL:            getenvDefault("LLM_URL", "http://localhost:11434"),
		LLMModel:          getenvDefault("LLM_MODEL", "llama2"),
		LLMTimeout:        mustGetDuration("LLM_TIMEOUT", "0s"),
		DBPath:            getenvLookup("DB_PATH", "evaluatehub.db"),
		HistoryWorkers:    mustGetInt("HISTORY_WORKERS", 2),
		NATSURL:           os.Getenv("NATS_URL"),
		NATSSubjectPrefix: getenvDefault("NATS_SUBJECT_PREFIX", "evaluatehub.relay"),
	}
}

func mustGetDuration(k, fallback string) time.Duration {
	v := getenvDefault(k, fallback)
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func mustGetInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Fatalf("config: %s=%q is not a valid non-negative integer", k, v)
	}
	return n
}

func mustGetLevel(k, fallback string) slog.Level {
	v := getenvDefault(k, fallback)
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
		log.Fatalf("config: %s=%q is not a valid log level: %v", k, v, err)
	}
	return level
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

// getenvLookup is like getenvDefault but keeps an explicitly empty value.
func getenvLookup(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return fallback
}
