package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	BackendVADER  = "vader"
	BackendRemote = "remote"

	DEFAULT_SENTIMENT_ENDPOINT = "https://spacesedan-sentiment-analyzer.hf.space/analyze_batch"
	DEFAULT_HEALTH_ENDPOINT    = "https://spacesedan-sentiment-analyzer.hf.space/health"
	DEFAULT_SCORER_WORKERS     = 4
	DEFAULT_CACHE_TTL          = 24 * time.Hour
)

// Settings is everything the analyzer reads from the environment.
type Settings struct {
	Env      string
	LogLevel slog.Level

	PolarityBackend   string
	SentimentEndpoint string
	HealthEndpoint    string
	HTTPTimeout       time.Duration
	ScorerWorkers     int

	ValkeyAddress  string
	ValkeyPassword string
	ValkeyTLS      bool
	CacheTTL       time.Duration
}

// CacheEnabled reports whether a Valkey address was configured.
func (s Settings) CacheEnabled() bool {
	return s.ValkeyAddress != ""
}

// FromEnv builds Settings from the process environment. LoadEnv should run first.
func FromEnv() (Settings, error) {
	s := Settings{
		Env:               AppEnv(),
		PolarityBackend:   BackendVADER,
		SentimentEndpoint: DEFAULT_SENTIMENT_ENDPOINT,
		HealthEndpoint:    DEFAULT_HEALTH_ENDPOINT,
		ScorerWorkers:     DEFAULT_SCORER_WORKERS,
		CacheTTL:          DEFAULT_CACHE_TTL,
		ValkeyAddress:     os.Getenv("VALKEY_INIT_ADDRESS"),
		ValkeyPassword:    os.Getenv("VALKEY_PASSWORD"),
		ValkeyTLS:         os.Getenv("VALKEY_TLS") == "true",
	}

	if s.Env == "production" {
		s.HTTPTimeout = 10 * time.Second
	} else {
		s.HTTPTimeout = 60 * time.Second
	}

	level, err := parseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return s, err
	}
	s.LogLevel = level

	if v := os.Getenv("POLARITY_BACKEND"); v != "" {
		v = strings.ToLower(v)
		if v != BackendVADER && v != BackendRemote {
			return s, fmt.Errorf("invalid POLARITY_BACKEND %q: must be %q or %q", v, BackendVADER, BackendRemote)
		}
		s.PolarityBackend = v
	}
	if v := os.Getenv("SENTIMENT_ANALYSIS_ENDPOINT"); v != "" {
		s.SentimentEndpoint = v
	}
	if v := os.Getenv("SENTIMENT_HEALTH_ENDPOINT"); v != "" {
		s.HealthEndpoint = v
	}

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return s, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
		}
		s.HTTPTimeout = d
	}
	if v := os.Getenv("SCORER_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return s, fmt.Errorf("invalid SCORER_WORKERS %q: must be a positive integer", v)
		}
		s.ScorerWorkers = n
	}
	if v := os.Getenv("POLARITY_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return s, fmt.Errorf("invalid POLARITY_CACHE_TTL: %w", err)
		}
		s.CacheTTL = d
	}

	return s, nil
}

func parseLevel(v string) (slog.Level, error) {
	switch strings.ToLower(v) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q", v)
	}
}
