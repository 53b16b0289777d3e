package secure

// Key identifies a configuration setting. The set of keys is closed:
// anything outside it is rejected outright rather than stored dynamically.
type Key string

// Locked operational settings. Under a distributed build their values are
// fixed at build policy and every write is refused.
const (
	KeyEnvironment      Key = "environment"
	KeyBackupEnabled    Key = "backup_enabled"
	KeyMaxBackups       Key = "max_backups"
	KeyAutoSaveInterval Key = "auto_save_interval"
	KeyDebugMode        Key = "debug_mode"
)

// User-editable preference keys. Always writable; persisted to the
// preferences file, never to the main configuration.
const (
	KeyTreeStates     Key = "tree_states"
	KeyWindowGeometry Key = "window_geometry"
)

var lockedKeys = map[Key]bool{
	KeyEnvironment:      true,
	KeyBackupEnabled:    true,
	KeyMaxBackups:       true,
	KeyAutoSaveInterval: true,
	KeyDebugMode:        true,
}

var userKeys = map[Key]bool{
	KeyTreeStates:     true,
	KeyWindowGeometry: true,
}

// Locked reports whether the key belongs to the locked partition.
func (k Key) Locked() bool { return lockedKeys[k] }

// Known reports whether the key is part of the closed setting set.
func (k Key) Known() bool { return lockedKeys[k] || userKeys[k] }
