package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, SourceFile, cfg.Source)
	assert.Equal(t, "./workspace.json", cfg.WorkspaceFile)
	assert.Equal(t, uint64(1), cfg.WorkspaceId)
	assert.Equal(t, "0.0.0.0:8089", cfg.Listen)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"source": "mysql",
		"db_url": "127.0.0.1:3306",
		"db_scheme": "anchor",
		"workspace_id": 7,
		"listen": "127.0.0.1:9000"
	}`), 0644))

	os.Setenv("ANCHOR_LISTEN", "127.0.0.1:9100")
	defer os.Unsetenv("ANCHOR_LISTEN")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SourceMysql, cfg.Source)
	assert.Equal(t, "127.0.0.1:3306", cfg.DBUrl)
	assert.Equal(t, "anchor", cfg.DBScheme)
	assert.Equal(t, uint64(7), cfg.WorkspaceId)
	assert.Equal(t, "127.0.0.1:9100", cfg.Listen)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"source": "etcd"}`), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}
