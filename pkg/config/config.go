// Package config resolves the active runtime environment and the operational
// settings that derive from it: data file location, autosave cadence, and
// backup policy.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the resolver's config file, stored at the config root.
const ConfigFileName = "config.yaml"

// Config is the on-disk configuration document.
type Config struct {
	Environment      string            `yaml:"environment"`
	DataFiles        map[string]string `yaml:"data_files"`
	AutoSaveInterval int               `yaml:"auto_save_interval"`
	BackupEnabled    *bool             `yaml:"backup_enabled"`
	BackupDirectory  string            `yaml:"backup_directory"`
	MaxBackups       int               `yaml:"max_backups"`
	DebugMode        bool              `yaml:"debug_mode"`
}

// Default returns the default configuration.
func Default() *Config {
	enabled := true
	return &Config{
		Environment: string(EnvDevelopment),
		DataFiles: map[string]string{
			string(EnvDevelopment): "ticktock_projects_dev.json",
			string(EnvTest):        "ticktock_projects_test.json",
			string(EnvProduction):  "ticktock_projects.json",
			string(EnvDistributed): "ticktock_projects_distributed.json",
		},
		AutoSaveInterval: 300,
		BackupEnabled:    &enabled,
		BackupDirectory:  "backups",
		MaxBackups:       10,
		DebugMode:        false,
	}
}

// Load loads configuration from <root>/config.yaml.
// Returns default config if the file doesn't exist. Environment variable
// overrides (TICKTOCK_ENV, TICKTOCK_DEBUG, TICKTOCK_AUTO_SAVE,
// TICKTOCK_DATA_FILE) are applied after the file.
func Load(root string) (*Config, error) {
	cfg := Default()
	cfgPath := filepath.Join(root, ConfigFileName)

	data, err := os.ReadFile(cfgPath)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes configuration to <root>/config.yaml.
func Save(root string, cfg *Config) error {
	cfgPath := filepath.Join(root, ConfigFileName)

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(cfgPath, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvVarEnvironment); v != "" {
		c.Environment = strings.TrimSpace(v)
	}
	if v := os.Getenv("TICKTOCK_DEBUG"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes":
			c.DebugMode = true
		default:
			c.DebugMode = false
		}
	}
	if v := os.Getenv("TICKTOCK_AUTO_SAVE"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.AutoSaveInterval = secs
		}
	}
	if v := os.Getenv("TICKTOCK_DATA_FILE"); v != "" {
		if c.DataFiles == nil {
			c.DataFiles = map[string]string{}
		}
		c.DataFiles[c.Environment] = v
	}
}

// BackupsOn reports whether backups are enabled, defaulting to true when
// the config file leaves the field unset.
func (c *Config) BackupsOn() bool {
	return c.BackupEnabled == nil || *c.BackupEnabled
}
