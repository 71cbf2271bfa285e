package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func writeConfig(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.NotEmpty(t, cfg.Session.Secret)
}

func TestLoadExpandsEnvReferences(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	writeConfig(t, dir, "session:\n  secret: ${TEST_SESSION_SECRET}\n")
	chdir(t, dir)
	t.Setenv("TEST_SESSION_SECRET", "from-the-environment")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-the-environment", cfg.Session.Secret)
}

func TestLoadUnresolvedSecretFallsBack(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	writeConfig(t, dir, "session:\n  secret: ${TEST_SESSION_SECRET}\n")
	chdir(t, dir)
	os.Unsetenv("TEST_SESSION_SECRET")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "default-secret-key-change-in-production", cfg.Session.Secret)
}
