// Package ledger owns the on-disk representation of the project hierarchy:
// atomic load and save of the ledger document plus bounded backup rotation.
package ledger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ticktock-project/ticktock/pkg/config"
	"github.com/ticktock-project/ticktock/pkg/errclass"
	"github.com/ticktock-project/ticktock/pkg/fsutil"
	"github.com/ticktock-project/ticktock/pkg/logging"
	"github.com/ticktock-project/ticktock/pkg/model"
)

// Store is the sole writer of the ledger file and its backup directory.
type Store struct {
	settings *config.Settings

	// mu serializes the save path so autosave ticks never interleave with
	// an explicit save mid-write.
	mu sync.Mutex
}

// NewStore creates a store for the resolved settings.
func NewStore(settings *config.Settings) *Store {
	return &Store{settings: settings}
}

// DataFilePath returns the ledger file location.
func (s *Store) DataFilePath() string {
	return s.settings.DataFilePath
}

// LoadResult is a loaded ledger plus whether it came from a backup
// fallback instead of a clean load.
type LoadResult struct {
	Ledger     *model.Ledger
	FromBackup bool
	BackupPath string
}

// Load reads the ledger file. A missing file yields a fresh empty ledger.
// Structurally invalid content falls back through backups newest-first;
// when all are exhausted the load fails with E_LEDGER_CORRUPT rather than
// fabricating data.
func (s *Store) Load() (*LoadResult, error) {
	data, err := os.ReadFile(s.settings.DataFilePath)
	if os.IsNotExist(err) {
		logging.Info("no ledger file, starting fresh", map[string]any{"path": s.settings.DataFilePath})
		return &LoadResult{Ledger: model.NewLedger()}, nil
	}
	if err != nil {
		return nil, errclass.ErrIOFailure.WithMessagef("read ledger: %v", err)
	}

	if l, decodeErr := decodeLedger(data); decodeErr == nil {
		return &LoadResult{Ledger: l}, nil
	} else {
		logging.ErrorErr("ledger file invalid, trying backups", decodeErr,
			map[string]any{"path": s.settings.DataFilePath})
	}

	backups, err := s.Backups()
	if err != nil {
		return nil, err
	}
	for _, b := range backups {
		data, err := os.ReadFile(b.Path)
		if err != nil {
			continue
		}
		l, decodeErr := decodeLedger(data)
		if decodeErr != nil {
			logging.Warn("backup invalid, trying older one", map[string]any{"path": b.Path})
			continue
		}
		logging.Info("recovered ledger from backup", map[string]any{"path": b.Path})
		return &LoadResult{Ledger: l, FromBackup: true, BackupPath: b.Path}, nil
	}

	return nil, errclass.ErrLedgerCorrupt.WithMessagef(
		"ledger file %s unparseable and no valid backup remains", s.settings.DataFilePath)
}

func decodeLedger(data []byte) (*model.Ledger, error) {
	var l model.Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, errclass.ErrLedgerCorrupt.WithMessagef("decode ledger: %v", err)
	}
	l.Normalize()
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Save atomically persists the ledger, then captures a backup and prunes
// old ones when backups are enabled. On return the ledger is durably on
// disk; all failures on the write path surface as E_IO_FAILURE.
func (s *Store) Save(l *model.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := l.Validate(); err != nil {
		return err
	}
	l.LastSaved = time.Now().UTC()
	l.Environment = string(s.settings.Environment)

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return errclass.ErrIOFailure.WithMessagef("encode ledger: %v", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.settings.DataFilePath), 0755); err != nil {
		return errclass.ErrIOFailure.WithMessagef("create data dir: %v", err)
	}
	if err := fsutil.AtomicWrite(s.settings.DataFilePath, data, 0644); err != nil {
		return errclass.ErrIOFailure.WithMessagef("write ledger: %v", err)
	}

	if s.settings.BackupEnabled {
		if err := s.captureBackup(); err != nil {
			return err
		}
	}

	logging.Debug("ledger saved", map[string]any{"path": s.settings.DataFilePath, "projects": len(l.Projects)})
	return nil
}
