package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearOASLINTEnv clears all OASLINT_* env vars to isolate tests from the ambient environment.
func clearOASLINTEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASLINT_CACHE_ENABLED", "OASLINT_CACHE_MAX_SIZE",
		"OASLINT_CACHE_FILE_TTL", "OASLINT_CACHE_CONTENT_TTL",
		"OASLINT_CACHE_SWEEP_INTERVAL",
		"OASLINT_VALIDATE_LIMIT", "OASLINT_VALIDATE_NO_WARNINGS",
		"OASLINT_RULES", "OASLINT_MAX_LIMIT", "OASLINT_MAX_CONTENT_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOASLINTEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 100, c.ValidateLimit)
	assert.False(t, c.ValidateNoWarnings)
	assert.Empty(t, c.Rules)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxContentSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOASLINTEnv(t)
	t.Setenv("OASLINT_CACHE_ENABLED", "false")
	t.Setenv("OASLINT_CACHE_MAX_SIZE", "50")
	t.Setenv("OASLINT_CACHE_FILE_TTL", "30m")
	t.Setenv("OASLINT_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("OASLINT_VALIDATE_LIMIT", "20")
	t.Setenv("OASLINT_VALIDATE_NO_WARNINGS", "true")
	t.Setenv("OASLINT_RULES", "TypeMismatch, ValidateOneOfDiscriminator,,")
	t.Setenv("OASLINT_MAX_LIMIT", "500")
	t.Setenv("OASLINT_MAX_CONTENT_SIZE", "2048")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 20, c.ValidateLimit)
	assert.True(t, c.ValidateNoWarnings)
	assert.Equal(t, []string{"TypeMismatch", "ValidateOneOfDiscriminator"}, c.Rules)
	assert.Equal(t, 500, c.MaxLimit)
	assert.Equal(t, int64(2048), c.MaxContentSize)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearOASLINTEnv(t)
	t.Setenv("OASLINT_CACHE_ENABLED", "maybe")
	t.Setenv("OASLINT_VALIDATE_LIMIT", "-5")
	t.Setenv("OASLINT_MAX_LIMIT", "lots")
	t.Setenv("OASLINT_CACHE_FILE_TTL", "soon")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 100, c.ValidateLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , ,"))
	assert.Equal(t, []string{"a", "b"}, splitList("a, b"))
}
