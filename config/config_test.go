package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "secret-from-env")

	path := writeConfig(t, `
environment:
  name: staging
http_server:
  port: 9090
  trusted_proxies: ["10.0.0.0/8"]
app:
  timezone: UTC
cache:
  driver: redis
  ttl: 2m
  redis:
    addr: redis:6379
    db: 2
llm:
  retry_attempts: 2
  retry_delay: 500ms
  circuit_breaker:
    failure_threshold: 3
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: ${TEST_GEMINI_KEY}
      model: gemini-2.5-flash
      timeout: 20s
    - name: deepseek
      enabled: false
      priority: 2
      model: deepseek-chat
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment.Name)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ShutdownTimeout)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.HTTPServer.TrustedProxies)
	assert.Equal(t, "UTC", cfg.App.Timezone)

	assert.Equal(t, CacheDriverRedis, cfg.Cache.Driver)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, 2, cfg.Cache.Redis.DB)

	assert.Equal(t, 2, cfg.LLM.RetryAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.LLM.RetryDelay)
	assert.Equal(t, 60*time.Second, cfg.LLM.MaxTotalTimeout)
	assert.True(t, cfg.LLM.CircuitBreaker.Enabled)
	assert.Equal(t, uint32(3), cfg.LLM.CircuitBreaker.FailureThreshold)

	require.Len(t, cfg.LLM.Providers, 2)
	assert.Equal(t, "secret-from-env", cfg.LLM.Providers[0].APIKey)
	assert.Equal(t, "20s", cfg.LLM.Providers[0].Timeout)
	assert.False(t, cfg.LLM.Providers[1].Enabled)
}

func TestLoadFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
llm:
  providers:
    - name: gemini
      enabled: true
      priority: 1
      model: gemini-2.5-flash
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Asia/Seoul", cfg.App.Timezone)
	assert.Equal(t, CacheDriverMemory, cfg.Cache.Driver)
	assert.Equal(t, 1, cfg.LLM.RetryAttempts)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerMin)
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	tests := []struct {
		name string
		body string
	}{
		{
			name: "no providers",
			body: "app:\n  timezone: UTC\n",
		},
		{
			name: "bad timezone",
			body: "app:\n  timezone: Mars/Olympus\nllm:\n  providers:\n    - {name: gemini, enabled: true, priority: 1}\n",
		},
		{
			name: "bad cache driver",
			body: "cache:\n  driver: disk\nllm:\n  providers:\n    - {name: gemini, enabled: true, priority: 1}\n",
		},
		{
			name: "duplicate priority",
			body: "llm:\n  providers:\n    - {name: gemini, enabled: true, priority: 1}\n    - {name: deepseek, enabled: true, priority: 1}\n",
		},
		{
			name: "nothing enabled",
			body: "llm:\n  providers:\n    - {name: gemini, enabled: false, priority: 1}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_GeminiKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, err := LoadFile(writeConfig(t, "app:\n  timezone: UTC\n"))
	require.NoError(t, err)

	require.Len(t, cfg.LLM.Providers, 1)
	assert.Equal(t, "gemini", cfg.LLM.Providers[0].Name)
	assert.Equal(t, "k", cfg.LLM.Providers[0].APIKey)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
