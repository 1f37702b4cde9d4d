package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, BackendBolt, cfg.Storage.Backend)
	assert.Equal(t, "development", cfg.Logger.Mode)
	assert.False(t, cfg.Snapshot.Enable)
	assert.Equal(t, "@daily", cfg.Snapshot.Cron)
	assert.Equal(t, 14, cfg.Snapshot.Keep)
	assert.Contains(t, cfg.System.Workdir, ".vendora")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, BackendBolt, cfg.Storage.Backend)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendora.yml")
	require.NoError(t, os.WriteFile(path, []byte("storage: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadYamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendora.yml")
	content := `
system:
  workdir: /tmp/vendora-test
storage:
  backend: file
  path: /tmp/vendora-test/custom.json
logger:
  mode: production
snapshot:
  enable: true
  cron: "@hourly"
  keep: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/vendora-test", cfg.System.Workdir)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/vendora-test/custom.json", cfg.Storage.Path)
	assert.Equal(t, "production", cfg.Logger.Mode)
	assert.True(t, cfg.Snapshot.Enable)
	assert.Equal(t, "@hourly", cfg.Snapshot.Cron)
	assert.Equal(t, 3, cfg.Snapshot.Keep)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendora.yml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: file\n"), 0o644))

	t.Setenv("VENDORA_STORAGE_BACKEND", "memory")
	t.Setenv("VENDORA_SNAPSHOT_ENABLE", "true")
	t.Setenv("VENDORA_SNAPSHOT_KEEP", "5")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.True(t, cfg.Snapshot.Enable)
	assert.Equal(t, 5, cfg.Snapshot.Keep)
}

func TestDataPathDefaults(t *testing.T) {
	cfg := Default()
	cfg.System.Workdir = "/data"

	cfg.Storage.Backend = BackendBolt
	assert.Equal(t, filepath.Join("/data", "vendora.db"), cfg.DataPath())

	cfg.Storage.Backend = BackendFile
	assert.Equal(t, filepath.Join("/data", "vendora.json"), cfg.DataPath())

	cfg.Storage.Path = "/elsewhere/x.json"
	assert.Equal(t, "/elsewhere/x.json", cfg.DataPath())
}

func TestBackupDir(t *testing.T) {
	cfg := Default()
	cfg.System.Workdir = "/data"
	assert.Equal(t, filepath.Join("/data", "backups"), cfg.BackupDir())
}
