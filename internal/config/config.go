// Package config loads the application configuration. Precedence:
// built-in defaults, then the YAML file, then VENDORA_* environment
// variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Storage backend names accepted in config.
const (
	BackendBolt   = "bolt"
	BackendFile   = "file"
	BackendMemory = "memory"
)

type SystemConfig struct {
	Workdir string `yaml:"workdir" json:"workdir"`
}

type StorageConfig struct {
	Backend string `yaml:"backend" json:"backend"`
	Path    string `yaml:"path" json:"path"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type SnapshotConfig struct {
	Enable bool   `yaml:"enable" json:"enable"`
	Cron   string `yaml:"cron" json:"cron"`
	Keep   int    `yaml:"keep" json:"keep"`
}

type AppConfig struct {
	System   SystemConfig   `yaml:"system" json:"system"`
	Storage  StorageConfig  `yaml:"storage" json:"storage"`
	Logger   LoggerConfig   `yaml:"logger" json:"logger"`
	Snapshot SnapshotConfig `yaml:"snapshot" json:"snapshot"`
}

// Default returns the built-in configuration: a bolt-backed store under
// ~/.vendora with console logging.
func Default() *AppConfig {
	workdir := ".vendora"
	if home, err := os.UserHomeDir(); err == nil {
		workdir = filepath.Join(home, ".vendora")
	}
	return &AppConfig{
		System:  SystemConfig{Workdir: workdir},
		Storage: StorageConfig{Backend: BackendBolt},
		Logger:  LoggerConfig{Mode: "development"},
		Snapshot: SnapshotConfig{
			Cron: "@daily",
			Keep: 14,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (or
// <workdir>/vendora.yml when path is empty) and environment overrides. A
// missing file is not an error; a malformed one is.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path == "" {
		path = filepath.Join(cfg.System.Workdir, "vendora.yml")
	}
	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, errors.Wrap(err, "read config file")
	default:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrap(err, "parse config file")
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("VENDORA_WORKDIR"); v != "" {
		c.System.Workdir = v
	}
	if v := os.Getenv("VENDORA_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("VENDORA_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("VENDORA_LOGGER_MODE"); v != "" {
		c.Logger.Mode = v
	}
	if v := os.Getenv("VENDORA_LOGGER_FILE_ENABLE"); v != "" {
		c.Logger.FileEnable = cast.ToBool(v)
	}
	if v := os.Getenv("VENDORA_LOGGER_FILENAME"); v != "" {
		c.Logger.Filename = v
	}
	if v := os.Getenv("VENDORA_SNAPSHOT_ENABLE"); v != "" {
		c.Snapshot.Enable = cast.ToBool(v)
	}
	if v := os.Getenv("VENDORA_SNAPSHOT_CRON"); v != "" {
		c.Snapshot.Cron = v
	}
	if v := os.Getenv("VENDORA_SNAPSHOT_KEEP"); v != "" {
		c.Snapshot.Keep = cast.ToInt(v)
	}
}

// DataPath resolves the storage file location, defaulting into the workdir
// by backend type.
func (c *AppConfig) DataPath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	switch c.Storage.Backend {
	case BackendFile:
		return filepath.Join(c.System.Workdir, "vendora.json")
	default:
		return filepath.Join(c.System.Workdir, "vendora.db")
	}
}

// LogFile resolves the log file location when file logging is enabled.
func (c *AppConfig) LogFile() string {
	if c.Logger.Filename != "" {
		return c.Logger.Filename
	}
	return filepath.Join(c.System.Workdir, "vendora.log")
}

// BackupDir is where scheduled snapshots are written.
func (c *AppConfig) BackupDir() string {
	return filepath.Join(c.System.Workdir, "backups")
}
