// Package secure enforces the locked-settings policy for distributed
// builds: operational settings are frozen to build-time values while a
// small whitelist of UI preferences stays user-editable.
package secure

import (
	"path/filepath"

	"github.com/ticktock-project/ticktock/pkg/config"
	"github.com/ticktock-project/ticktock/pkg/errclass"
	"github.com/ticktock-project/ticktock/pkg/logging"
)

// Values every distributed build runs with, regardless of what the config
// file or a user override says.
var distributedLocked = struct {
	backupEnabled    bool
	maxBackups       int
	autoSaveInterval int
	debugMode        bool
}{
	backupEnabled:    true,
	maxBackups:       10,
	autoSaveInterval: 300,
	debugMode:        false,
}

// Guard wraps a resolver and its resolved settings. In distributed mode it
// freezes the locked partition; otherwise it is transparent.
type Guard struct {
	resolver  *config.Resolver
	settings  *config.Settings
	prefsPath string
	prefs     *Preferences
}

// NewGuard wraps the given resolver output. When the settings indicate a
// distributed build, the locked subset is replaced by the hardcoded policy
// values before anything downstream sees them.
func NewGuard(resolver *config.Resolver, settings *config.Settings) (*Guard, error) {
	effective := *settings
	if settings.Distributed {
		effective.Environment = config.EnvDistributed
		effective.DataFilePath = resolver.DataFilePath(config.EnvDistributed)
		effective.BackupEnabled = distributedLocked.backupEnabled
		effective.MaxBackups = distributedLocked.maxBackups
		effective.AutoSaveInterval = distributedLocked.autoSaveInterval
		effective.DebugMode = distributedLocked.debugMode
		logging.Info("locked configuration active for distributed build")
	}

	prefsPath := filepath.Join(resolver.Root, PrefsFileName)
	prefs, err := loadPreferences(prefsPath)
	if err != nil {
		// Unreadable preferences never block startup; they are cosmetic.
		logging.ErrorErr("preferences unreadable, starting with defaults", err)
		prefs = &Preferences{TreeStates: map[string]map[string]bool{}}
	}

	return &Guard{
		resolver:  resolver,
		settings:  &effective,
		prefsPath: prefsPath,
		prefs:     prefs,
	}, nil
}

// Settings returns the effective settings, with the locked partition
// already enforced.
func (g *Guard) Settings() *config.Settings {
	return g.settings
}

// Get returns the value of a known setting. Locked keys always report the
// effective (possibly frozen) value.
func (g *Guard) Get(key Key) (any, error) {
	switch key {
	case KeyEnvironment:
		return string(g.settings.Environment), nil
	case KeyBackupEnabled:
		return g.settings.BackupEnabled, nil
	case KeyMaxBackups:
		return g.settings.MaxBackups, nil
	case KeyAutoSaveInterval:
		return g.settings.AutoSaveInterval, nil
	case KeyDebugMode:
		return g.settings.DebugMode, nil
	case KeyTreeStates:
		return g.prefs.TreeStates, nil
	case KeyWindowGeometry:
		return g.prefs.WindowGeometry, nil
	default:
		return nil, errclass.ErrSettingUnknown.WithMessagef("unknown setting %q", key)
	}
}

// Set writes a setting. Locked keys are rejected in distributed mode with
// no state change; user keys go to the preferences store. Unknown keys are
// rejected in every mode.
func (g *Guard) Set(key Key, value any) error {
	if !key.Known() {
		return errclass.ErrSettingUnknown.WithMessagef("unknown setting %q", key)
	}
	if key.Locked() {
		if g.settings.Distributed {
			logging.Warn("write to locked setting refused", map[string]any{"key": string(key)})
			return errclass.ErrSettingLocked.WithMessagef("setting %q is locked in distributed builds", key)
		}
		return g.setOperational(key, value)
	}

	switch key {
	case KeyTreeStates:
		states, ok := value.(map[string]map[string]bool)
		if !ok {
			return errclass.ErrSettingUnknown.WithMessagef("tree_states expects map[string]map[string]bool")
		}
		g.prefs.TreeStates = states
	case KeyWindowGeometry:
		geom, ok := value.(Geometry)
		if !ok {
			return errclass.ErrSettingUnknown.WithMessagef("window_geometry expects secure.Geometry")
		}
		g.prefs.WindowGeometry = geom
	}
	return g.flushPreferences()
}

func (g *Guard) setOperational(key Key, value any) error {
	cfg := g.resolver.Config()
	switch key {
	case KeyEnvironment:
		s, ok := value.(string)
		if !ok {
			return errclass.ErrEnvUnknown.WithMessagef("environment expects a string")
		}
		env, err := config.ParseEnvironment(s)
		if err != nil {
			return err
		}
		return g.SetEnvironment(env)
	case KeyBackupEnabled:
		b, ok := value.(bool)
		if !ok {
			return errclass.ErrSettingUnknown.WithMessagef("backup_enabled expects a bool")
		}
		cfg.BackupEnabled = &b
		g.settings.BackupEnabled = b
	case KeyMaxBackups:
		n, ok := value.(int)
		if !ok || n <= 0 {
			return errclass.ErrSettingUnknown.WithMessagef("max_backups expects a positive int")
		}
		cfg.MaxBackups = n
		g.settings.MaxBackups = n
	case KeyAutoSaveInterval:
		n, ok := value.(int)
		if !ok || n <= 0 {
			return errclass.ErrSettingUnknown.WithMessagef("auto_save_interval expects a positive int")
		}
		cfg.AutoSaveInterval = n
		g.settings.AutoSaveInterval = n
	case KeyDebugMode:
		b, ok := value.(bool)
		if !ok {
			return errclass.ErrSettingUnknown.WithMessagef("debug_mode expects a bool")
		}
		cfg.DebugMode = b
		g.settings.DebugMode = b
	}
	if err := config.Save(g.resolver.Root, cfg); err != nil {
		return errclass.ErrIOFailure.WithMessagef("save config: %v", err)
	}
	return nil
}

// SetEnvironment switches the active environment. Rejected unconditionally
// in distributed mode.
func (g *Guard) SetEnvironment(env config.Environment) error {
	if g.settings.Distributed {
		return errclass.ErrSettingLocked.WithMessage("environment switching is disabled in distributed builds")
	}
	if err := g.resolver.SetEnvironment(env); err != nil {
		return err
	}
	g.settings.Environment = env
	g.settings.DataFilePath = g.resolver.DataFilePath(env)
	return nil
}

// Migrate copies one environment's data file over another's. Disabled in
// distributed builds along with the rest of environment management.
func (g *Guard) Migrate(source, target config.Environment) error {
	if g.settings.Distributed {
		return errclass.ErrSettingLocked.WithMessage("data migration is disabled in distributed builds")
	}
	return g.resolver.Migrate(source, target)
}

// TreeState returns the saved expansion state for a window type.
func (g *Guard) TreeState(windowType string) map[string]bool {
	return g.prefs.TreeStates[windowType]
}

// SaveTreeState persists the expansion state for a window type.
func (g *Guard) SaveTreeState(windowType string, state map[string]bool) error {
	copied := make(map[string]bool, len(state))
	for k, v := range state {
		copied[k] = v
	}
	g.prefs.TreeStates[windowType] = copied
	return g.flushPreferences()
}

func (g *Guard) flushPreferences() error {
	if err := savePreferences(g.prefsPath, g.prefs); err != nil {
		return errclass.ErrIOFailure.WithMessagef("save preferences: %v", err)
	}
	return nil
}
