package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearServerEnv clears all JSONSCHEMA2POJO_MCP_* env vars to isolate tests
// from the ambient environment.
func clearServerEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"JSONSCHEMA2POJO_MCP_CACHE_ENABLED", "JSONSCHEMA2POJO_MCP_CACHE_MAX_SIZE",
		"JSONSCHEMA2POJO_MCP_CACHE_FILE_TTL", "JSONSCHEMA2POJO_MCP_CACHE_CONTENT_TTL",
		"JSONSCHEMA2POJO_MCP_CACHE_SWEEP_INTERVAL", "JSONSCHEMA2POJO_MCP_CLASS_LIMIT",
		"JSONSCHEMA2POJO_MCP_MAX_LIMIT", "JSONSCHEMA2POJO_MCP_STRICT",
		"JSONSCHEMA2POJO_MCP_MAX_INLINE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearServerEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 100, c.ClassLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.False(t, c.Strict)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("JSONSCHEMA2POJO_MCP_CACHE_ENABLED", "false")
	t.Setenv("JSONSCHEMA2POJO_MCP_CACHE_MAX_SIZE", "50")
	t.Setenv("JSONSCHEMA2POJO_MCP_CACHE_FILE_TTL", "30m")
	t.Setenv("JSONSCHEMA2POJO_MCP_CACHE_CONTENT_TTL", "10m")
	t.Setenv("JSONSCHEMA2POJO_MCP_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("JSONSCHEMA2POJO_MCP_CLASS_LIMIT", "20")
	t.Setenv("JSONSCHEMA2POJO_MCP_MAX_LIMIT", "500")
	t.Setenv("JSONSCHEMA2POJO_MCP_STRICT", "true")
	t.Setenv("JSONSCHEMA2POJO_MCP_MAX_INLINE_SIZE", "4096")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 20, c.ClassLimit)
	assert.Equal(t, 500, c.MaxLimit)
	assert.True(t, c.Strict)
	assert.Equal(t, int64(4096), c.MaxInlineSize)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("JSONSCHEMA2POJO_MCP_CACHE_ENABLED", "maybe")
	t.Setenv("JSONSCHEMA2POJO_MCP_CACHE_MAX_SIZE", "-3")
	t.Setenv("JSONSCHEMA2POJO_MCP_CACHE_FILE_TTL", "soon")
	t.Setenv("JSONSCHEMA2POJO_MCP_CLASS_LIMIT", "abc")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 100, c.ClassLimit)
}
