package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", config.Redis.Addr)
	assert.Equal(t, "syncline:", config.Redis.Prefix)
	assert.Equal(t, "localhost:4400", config.Inspector.Addr)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)

	content := []byte("redis:\n  addr: localhost:6379\n  prefix: \"crm:\"\ninspector:\n  addr: localhost:9999\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "syncline.yml"), content, 0o644))

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", config.Redis.Addr)
	assert.Equal(t, "crm:", config.Redis.Prefix)
	assert.Equal(t, "localhost:9999", config.Inspector.Addr)
}

func TestLoad_InvalidConfig(t *testing.T) {
	dir := chdirTemp(t)

	content := []byte("redis:\n  db: -1\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "syncline.yml"), content, 0o644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis.db")
}

func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(previous) })
	return dir
}
