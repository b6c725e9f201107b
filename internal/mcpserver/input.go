package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/jsonschema2pojo/config"
	"github.com/erraggy/jsonschema2pojo/generator"
	"github.com/erraggy/jsonschema2pojo/internal/options"
)

// defaultContentName names inline content when the caller gives no name.
const defaultContentName = "schema.json"

// schemaInput represents the two ways a schema can be provided to a tool.
// Exactly one of File or Content must be set.
type schemaInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a schema file or a directory of schema files on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline schema document (JSON or YAML)"`
	Name    string `json:"name,omitempty"    jsonschema:"Document name for inline content; its base name becomes the root class name (default: schema.json)"`
}

// generationInput carries the per-call generation settings. Unset fields
// keep the values resolved by config.Load.
type generationInput struct {
	PackageName      string `json:"package_name,omitempty"      jsonschema:"Package of the generated classes (e.g. com.example.model)"`
	Language         string `json:"language,omitempty"          jsonschema:"Target language: java (default) or go"`
	SourceType       string `json:"source_type,omitempty"       jsonschema:"Input kind: jsonschema (default), yamlschema or openapi"`
	TargetVersion    string `json:"target_version,omitempty"    jsonschema:"Java source level, e.g. 1.6 or 11 (default 1.8)"`
	GenerateBuilders bool   `json:"generate_builders,omitempty" jsonschema:"Add fluent with<Name> builder methods"`
	UseLongIntegers  bool   `json:"use_long_integers,omitempty" jsonschema:"Map integer to long instead of int"`
	Strict           bool   `json:"strict,omitempty"            jsonschema:"Fail when generation reports warnings or errors"`
}

// generationConfig layers g over the environment-resolved configuration.
func (g generationInput) generationConfig() (config.GenerationConfig, error) {
	c, err := config.Load("")
	if err != nil {
		return config.GenerationConfig{}, err
	}
	if g.PackageName != "" {
		c.TargetPackage = g.PackageName
	}
	if g.Language != "" {
		c.TargetLanguage = config.Language(g.Language)
	}
	if g.SourceType != "" {
		c.SourceType = config.SourceType(g.SourceType)
	}
	if g.TargetVersion != "" {
		c.TargetVersion = g.TargetVersion
	}
	if g.GenerateBuilders {
		c.GenerateBuilders = true
	}
	if g.UseLongIntegers {
		c.UseLongIntegers = true
	}
	return c, c.Validate()
}

// cacheEntry holds a cached generation result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *generator.GenerateResult
	insertAt  time.Time
	expiresAt time.Time
}

// resultCacheStore provides a session-scoped cache of generation results.
// File inputs are keyed by (absolutePath, modTime) and content inputs by a
// SHA-256 hash, each combined with the generation settings.
type resultCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var resultCache = &resultCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *resultCacheStore) get(key string) *generator.GenerateResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		e.insertAt = time.Now()
		return e.result
	}
	return nil
}

// putWithTTL stores a result, evicting the least recently used entry at capacity.
func (c *resultCacheStore) putWithTTL(key string, result *generator.GenerateResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *resultCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a goroutine that periodically removes expired
// entries until ctx is cancelled. Only the first call spawns a sweeper.
func (c *resultCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *resultCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *resultCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the input and settings. Directories
// are not cached since their mtime does not track edits to the files inside.
func makeCacheKey(s schemaInput, gc config.GenerationConfig, strict bool) string {
	settings := fmt.Sprintf("%+v|strict=%t", gc, strict)
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil || info.IsDir() {
			return ""
		}
		return fmt.Sprintf("file:%s:%d|%s", absPath, info.ModTime().UnixNano(), settings)
	case s.Content != "":
		h := sha256.Sum256([]byte(s.contentName() + "\x00" + s.Content))
		return fmt.Sprintf("content:%s|%s", hex.EncodeToString(h[:]), settings)
	default:
		return ""
	}
}

func (s schemaInput) contentName() string {
	if s.Name == "" {
		return defaultContentName
	}
	return s.Name
}

// resolve generates classes from whichever input was provided, using the
// cache for repeated calls with the same input and settings.
func (s schemaInput) resolve(ctx context.Context, g generationInput) (*generator.GenerateResult, error) {
	if err := options.ValidateSingleInputSource(
		"exactly one of file or content must be provided (got none)",
		"exactly one of file or content must be provided (got both)",
		s.File != "", s.Content != "",
	); err != nil {
		return nil, err
	}

	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set JSONSCHEMA2POJO_MCP_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	gc, err := g.generationConfig()
	if err != nil {
		return nil, err
	}
	strict := g.Strict || cfg.Strict

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = makeCacheKey(s, gc, strict)
		ttl = cfg.CacheContentTTL
		if s.File != "" {
			ttl = cfg.CacheFileTTL
		}
	}
	if key != "" {
		if cached := resultCache.get(key); cached != nil {
			return cached, nil
		}
	}

	opts := []generator.Option{
		generator.WithContext(ctx),
		generator.WithConfig(gc),
		generator.WithStrictMode(strict),
	}
	if s.File != "" {
		opts = append(opts, generator.WithFilePath(s.File))
	} else {
		opts = append(opts, generator.WithContent(s.contentName(), []byte(s.Content)))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return nil, err
	}

	if key != "" {
		resultCache.putWithTTL(key, result, ttl)
	}
	return result, nil
}
