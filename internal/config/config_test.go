// ABOUTME: Tests for configuration loading
// ABOUTME: Covers defaults, env expansion, and validation failures

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inkwell.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Complete(t *testing.T) {
	path := writeConfigFile(t, `
server:
  http_addr: "127.0.0.1:4000"
seed:
  path: "/tmp/seed.yaml"
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:4000", cfg.Server.HTTPAddr)
	assert.Equal(t, "/tmp/seed.yaml", cfg.Seed.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_DefaultsApply(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: warn
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:4000", cfg.Server.HTTPAddr)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Seed.Path)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("INKWELL_TEST_ADDR", "10.0.0.1:9999")

	path := writeConfigFile(t, `
server:
  http_addr: "${INKWELL_TEST_ADDR}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:9999", cfg.Server.HTTPAddr)
}

func TestLoad_InvalidLevel(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: loud
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestLoad_InvalidFormat(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  format: xml
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_UnsetEnvBecomesEmptyAddr(t *testing.T) {
	path := writeConfigFile(t, `
server:
  http_addr: "${INKWELL_DEFINITELY_UNSET_VAR}"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http_addr")
}
