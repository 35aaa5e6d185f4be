package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/swapi-mock/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestConfigLoad_FromYAMLAndEnv(t *testing.T) {
	yaml := `
server:
  name: swapi-mock
  env: test
  port: 18080
  read_header_timeout: 2s

data:
  seed_base: "2024-05-04T00:00:00Z"

logger:
  level: info
  format: json
  output_target: stdout
`
	path := writeTempConfig(t, yaml)
	t.Setenv("APP_SERVER_BASE_URL", "http://mock.internal:8080")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 18080, cfg.Server.Port)
	assert.Equal(t, ":18080", cfg.Server.Addr())
	assert.Equal(t, 2*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://mock.internal:8080", cfg.Server.PublicURL())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "stdout", cfg.Logger.OutputTarget)

	want := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)
	assert.True(t, cfg.Data.Base(time.Now()).Equal(want))
}

func TestConfigLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "4000")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "swapi-mock", cfg.Server.Name)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "http://localhost:4000", cfg.Server.PublicURL())

	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, now, cfg.Data.Base(now))
}

func TestConfigLoad_MissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfigLoad_ValidationFails(t *testing.T) {
	cases := map[string]string{
		"bad port": `
server:
  port: 70000
`,
		"bad env": `
server:
  env: moon
`,
		"bad seed": `
data:
  seed_base: yesterday
`,
		"bad base url": `
server:
  base_url: "not a url"
`,
	}
	for name, yaml := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeTempConfig(t, yaml))
			assert.Error(t, err)
		})
	}
}
