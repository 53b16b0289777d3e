package secure

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ticktock-project/ticktock/pkg/fsutil"
)

// PrefsFileName is the user preferences store, disjoint from the main
// configuration file so user edits can never alter operational settings.
const PrefsFileName = "user_preferences.toml"

// Geometry is a saved window placement.
type Geometry struct {
	X      int `toml:"x"`
	Y      int `toml:"y"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Preferences holds the whitelisted UI-preference keys. Absent or empty on
// first run.
type Preferences struct {
	// TreeStates records panel expansion per window type, keyed by node.
	TreeStates     map[string]map[string]bool `toml:"tree_states"`
	WindowGeometry Geometry                   `toml:"window_geometry"`
}

func loadPreferences(path string) (*Preferences, error) {
	prefs := &Preferences{TreeStates: map[string]map[string]bool{}}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return prefs, nil
	}
	if _, err := toml.DecodeFile(path, prefs); err != nil {
		return nil, fmt.Errorf("decode preferences %s: %w", path, err)
	}
	if prefs.TreeStates == nil {
		prefs.TreeStates = map[string]map[string]bool{}
	}
	return prefs, nil
}

func savePreferences(path string, prefs *Preferences) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(prefs); err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	return fsutil.AtomicWrite(path, buf.Bytes(), 0644)
}
