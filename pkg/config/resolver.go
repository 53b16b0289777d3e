package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ticktock-project/ticktock/pkg/errclass"
	"github.com/ticktock-project/ticktock/pkg/fsutil"
	"github.com/ticktock-project/ticktock/pkg/logging"
)

// Settings is the fully resolved operational configuration handed to the
// ledger store and timer engine at construction. It is a value, not an
// ambient global.
type Settings struct {
	Environment      Environment
	DataFilePath     string
	BackupDir        string
	AutoSaveInterval int
	BackupEnabled    bool
	MaxBackups       int
	DebugMode        bool
	Distributed      bool
}

// Resolver maps an environment to its data file path and persistence
// policy, backed by the config file at Root.
type Resolver struct {
	Root string
	cfg  *Config
}

// NewResolver loads the config file under root and returns a resolver.
func NewResolver(root string) (*Resolver, error) {
	cfg, err := Load(root)
	if err != nil {
		return nil, err
	}
	return &Resolver{Root: root, cfg: cfg}, nil
}

// Config exposes the backing configuration document.
func (r *Resolver) Config() *Config {
	return r.cfg
}

// Resolve selects the active environment and returns its settings.
// Precedence: explicit hint > ambient distributed-build signal > configured
// default. The TICKTOCK_ENV variable was already folded into the configured
// value at load time, so it acts as an explicit override too.
func (r *Resolver) Resolve(hint string) (*Settings, error) {
	distributed := IsDistributedBuild()

	var env Environment
	switch {
	case hint != "":
		parsed, err := ParseEnvironment(hint)
		if err != nil {
			return nil, err
		}
		env = parsed
	case distributed && os.Getenv(EnvVarEnvironment) == "":
		env = EnvDistributed
	default:
		parsed, err := ParseEnvironment(r.cfg.Environment)
		if err != nil {
			logging.Warn("configured environment invalid, using development",
				map[string]any{"environment": r.cfg.Environment})
			parsed = EnvDevelopment
		}
		env = parsed
	}

	settings := &Settings{
		Environment:      env,
		DataFilePath:     r.DataFilePath(env),
		BackupDir:        filepath.Join(r.Root, r.cfg.BackupDirectory),
		AutoSaveInterval: r.cfg.AutoSaveInterval,
		BackupEnabled:    r.cfg.BackupsOn(),
		MaxBackups:       r.cfg.MaxBackups,
		DebugMode:        r.cfg.DebugMode,
		Distributed:      distributed,
	}
	if settings.AutoSaveInterval <= 0 {
		settings.AutoSaveInterval = Default().AutoSaveInterval
	}
	if settings.MaxBackups <= 0 {
		settings.MaxBackups = Default().MaxBackups
	}
	return settings, nil
}

// DataFilePath returns the data file for an environment, relative paths
// anchored at the resolver root.
func (r *Resolver) DataFilePath(env Environment) string {
	name, ok := r.cfg.DataFiles[string(env)]
	if !ok || name == "" {
		name = Default().DataFiles[string(env)]
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.Root, name)
}

// SetEnvironment updates the configured default environment and persists
// the config file.
func (r *Resolver) SetEnvironment(env Environment) error {
	if _, err := ParseEnvironment(string(env)); err != nil {
		return err
	}
	r.cfg.Environment = string(env)
	if err := Save(r.Root, r.cfg); err != nil {
		return errclass.ErrIOFailure.WithMessagef("save config: %v", err)
	}
	logging.Info("environment changed", map[string]any{"environment": string(env)})
	return nil
}

// Migrate copies the source environment's data file over the target's. The
// existing target file, if any, is moved into the backup directory first.
func (r *Resolver) Migrate(source, target Environment) error {
	srcPath := r.DataFilePath(source)
	dstPath := r.DataFilePath(target)

	if _, err := os.Stat(srcPath); err != nil {
		return errclass.ErrIOFailure.WithMessagef("source data file %s: %v", srcPath, err)
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return errclass.ErrIOFailure.WithMessagef("create data dir: %v", err)
	}

	if _, err := os.Stat(dstPath); err == nil && r.cfg.BackupsOn() {
		backupDir := filepath.Join(r.Root, r.cfg.BackupDirectory)
		if err := os.MkdirAll(backupDir, 0755); err != nil {
			return errclass.ErrIOFailure.WithMessagef("create backup dir: %v", err)
		}
		stem := stemOf(dstPath)
		backupPath := filepath.Join(backupDir, fmt.Sprintf("%s_backup_%s.json", stem, time.Now().Format("20060102_150405")))
		if err := os.Rename(dstPath, backupPath); err != nil {
			return errclass.ErrIOFailure.WithMessagef("back up target data file: %v", err)
		}
	}

	if err := fsutil.CopyFile(srcPath, dstPath, 0644); err != nil {
		return errclass.ErrIOFailure.WithMessagef("migrate data file: %v", err)
	}
	logging.Info("data migrated", map[string]any{"from": string(source), "to": string(target)})
	return nil
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// DefaultRoot returns the per-user data directory for the current OS:
// LOCALAPPDATA on Windows, Application Support on macOS, XDG data home
// elsewhere.
func DefaultRoot() string {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			return filepath.Join(appData, "TickTock")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "AppData", "Local", "TickTock")
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "TickTock")
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "ticktock")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "ticktock")
	}
}
