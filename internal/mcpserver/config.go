package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Validate tool defaults.
	ValidateLimit      int
	ValidateNoWarnings bool
	Rules              []string

	// Hard limits.
	MaxLimit       int
	MaxContentSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASLINT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("OASLINT_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("OASLINT_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("OASLINT_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("OASLINT_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("OASLINT_CACHE_SWEEP_INTERVAL", 60*time.Second),
		ValidateLimit:      envInt("OASLINT_VALIDATE_LIMIT", 100),
		ValidateNoWarnings: envBool("OASLINT_VALIDATE_NO_WARNINGS", false),
		Rules:              envList("OASLINT_RULES"),
		MaxLimit:           envInt("OASLINT_MAX_LIMIT", 1000),
		MaxContentSize:     int64(envInt("OASLINT_MAX_CONTENT_SIZE", 10*1024*1024)),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

// envList splits a comma-separated value, dropping empty entries.
// Rule names are checked when a tool builds its rule set.
func envList(key string) []string {
	return splitList(os.Getenv(key))
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
