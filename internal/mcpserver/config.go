package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
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

	// Inspect tool defaults.
	ClassLimit int
	MaxLimit   int

	// Generation defaults.
	Strict bool

	// MaxInlineSize bounds inline schema content in bytes.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from JSONSCHEMA2POJO_MCP_* environment
// variables. Invalid values log a warning and fall back to the default.
// Generation settings themselves come from config.Load.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("JSONSCHEMA2POJO_MCP_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("JSONSCHEMA2POJO_MCP_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("JSONSCHEMA2POJO_MCP_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("JSONSCHEMA2POJO_MCP_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("JSONSCHEMA2POJO_MCP_CACHE_SWEEP_INTERVAL", 60*time.Second),
		ClassLimit:         envInt("JSONSCHEMA2POJO_MCP_CLASS_LIMIT", 100),
		MaxLimit:           envInt("JSONSCHEMA2POJO_MCP_MAX_LIMIT", 1000),
		Strict:             envBool("JSONSCHEMA2POJO_MCP_STRICT", false),
		MaxInlineSize:      int64(envInt("JSONSCHEMA2POJO_MCP_MAX_INLINE_SIZE", 10*1024*1024)),
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
