package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ticktock-project/ticktock/pkg/errclass"
	"github.com/ticktock-project/ticktock/pkg/fsutil"
	"github.com/ticktock-project/ticktock/pkg/logging"
)

// backupTimeLayout embeds the capture instant in the backup filename at
// nanosecond resolution, so retention order is deterministic even when
// several saves land within one second or filesystem mtimes are skewed.
const backupTimeLayout = "20060102_150405.000000000"

// Backup is an immutable timestamped snapshot of a previously saved ledger
// file.
type Backup struct {
	Path       string
	CapturedAt time.Time
}

func (s *Store) backupStem() string {
	base := filepath.Base(s.settings.DataFilePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Backups lists backups of the current data file, newest first, ordered by
// the timestamp embedded in the filename.
func (s *Store) Backups() ([]Backup, error) {
	entries, err := os.ReadDir(s.settings.BackupDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errclass.ErrIOFailure.WithMessagef("read backup dir: %v", err)
	}

	prefix := s.backupStem() + "_backup_"
	var backups []Backup
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".json")
		capturedAt, err := time.Parse(backupTimeLayout, stamp)
		if err != nil {
			// Not one of ours; leave it alone.
			continue
		}
		backups = append(backups, Backup{
			Path:       filepath.Join(s.settings.BackupDir, name),
			CapturedAt: capturedAt,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CapturedAt.After(backups[j].CapturedAt)
	})
	return backups, nil
}

// captureBackup copies the just-saved ledger file into the backup directory
// and evicts the oldest backups beyond the retention count.
func (s *Store) captureBackup() error {
	if err := os.MkdirAll(s.settings.BackupDir, 0755); err != nil {
		return errclass.ErrIOFailure.WithMessagef("create backup dir: %v", err)
	}

	name := fmt.Sprintf("%s_backup_%s.json", s.backupStem(), time.Now().Format(backupTimeLayout))
	dst := filepath.Join(s.settings.BackupDir, name)
	if err := fsutil.CopyFile(s.settings.DataFilePath, dst, 0644); err != nil {
		return errclass.ErrIOFailure.WithMessagef("backup copy: %v", err)
	}

	s.pruneBackups()
	return nil
}

// pruneBackups enforces the retention count, oldest evicted first. A prune
// failure is logged; the backup copy itself is already durable.
func (s *Store) pruneBackups() {
	backups, err := s.Backups()
	if err != nil {
		logging.ErrorErr("backup prune skipped", err)
		return
	}
	for _, old := range backups[min(len(backups), s.settings.MaxBackups):] {
		if err := os.Remove(old.Path); err != nil {
			logging.ErrorErr("failed to evict old backup", err, map[string]any{"path": old.Path})
			continue
		}
		logging.Debug("evicted old backup", map[string]any{"path": old.Path})
	}
}
