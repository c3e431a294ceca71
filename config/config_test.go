package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  log:
    level: info
http:
  port: 8080
  cors:
    allowOrigins: http://a.test
paypal:
  clientId: from-file
  timeout: 5s
openFoodFacts:
  retryWait: 2s
`

func TestLoadWithEnv_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("PAYPAL_CLIENTID", "from-env")
	t.Setenv("HTTP_CORS_ALLOWORIGINS", "http://a.test,http://b.test")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.CORS.AllowOrigins)
	require.NotNil(t, cfg.PayPal)
	assert.Equal(t, "from-env", cfg.PayPal.ClientID)
	assert.Equal(t, 5*time.Second, cfg.PayPal.Timeout)
	require.NotNil(t, cfg.OpenFoodFacts)
	assert.Equal(t, 2*time.Second, cfg.OpenFoodFacts.RetryWait)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "https://world.openfoodfacts.org", cfg.OpenFoodFacts.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.OpenFoodFacts.SearchTimeout)
	assert.Equal(t, 2, cfg.OpenFoodFacts.RetryCount)
	assert.Equal(t, time.Second, cfg.OpenFoodFacts.RetryWait)
	assert.Equal(t, "USD", cfg.PayPal.Currency)
	assert.Equal(t, "Trinity", cfg.PayPal.BrandName)
	assert.Equal(t, 10, cfg.Report.LowStockThreshold)
	assert.Equal(t, 8081, cfg.Worker.Port)
	assert.Equal(t, 10*time.Minute, cfg.Worker.StaleAfter)
	assert.Equal(t, 50, cfg.Worker.BatchSize)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "ro")

	replicas := buildReplicasFromEnv()
	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "ro", replicas[0].UserName)
}
