package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/zone-keeper/internal/logger"
	"github.com/MKhiriev/zone-keeper/models"
)

// backupSnapshot is the JSON layout of one backup file.
type backupSnapshot struct {
	WrittenAt time.Time      `json:"written_at"`
	Shapes    []models.Shape `json:"shapes"`
}

// fileBackupStore writes timestamped JSON snapshots of the full shape
// array into a directory and restores from the newest one. Snapshots are
// written opportunistically before risky operations; older snapshots
// beyond keepLast are pruned on every write.
type fileBackupStore struct {
	dir      string
	keepLast int
	logger   *logger.Logger

	mu sync.Mutex
}

const defaultKeepLast = 5

func NewFileBackupStore(dir string, log *logger.Logger) BackupStore {
	return &fileBackupStore{
		dir:      dir,
		keepLast: defaultKeepLast,
		logger:   log,
	}
}

func (b *fileBackupStore) Write(ctx context.Context, shapes []models.Shape) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	now := time.Now().UTC()
	snapshot := backupSnapshot{WrittenAt: now, Shapes: shapes}
	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup snapshot: %w", err)
	}

	name := fmt.Sprintf("shapes-%s.json", now.Format("20060102T150405.000000000"))
	path := filepath.Join(b.dir, name)
	if err = os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write backup snapshot: %w", err)
	}

	b.logger.Debug().
		Str("func", "fileBackupStore.Write").
		Str("path", path).
		Int("shapes", len(shapes)).
		Msg("backup snapshot written")

	b.prune()
	return nil
}

func (b *fileBackupStore) Restore(ctx context.Context) ([]models.Shape, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names, err := b.snapshotNames()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrNoBackupFound
	}

	// newest snapshot last: names sort lexicographically by timestamp
	path := filepath.Join(b.dir, names[len(names)-1])
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup snapshot: %w", err)
	}

	var snapshot backupSnapshot
	if err = json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode backup snapshot %s: %w", path, err)
	}

	b.logger.Info().
		Str("func", "fileBackupStore.Restore").
		Str("path", path).
		Int("shapes", len(snapshot.Shapes)).
		Msg("restored shapes from backup snapshot")

	return snapshot.Shapes, nil
}

func (b *fileBackupStore) snapshotNames() ([]string, error) {
	entries, err := os.ReadDir(b.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list backup dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (b *fileBackupStore) prune() {
	names, err := b.snapshotNames()
	if err != nil || len(names) <= b.keepLast {
		return
	}
	for _, name := range names[:len(names)-b.keepLast] {
		if rmErr := os.Remove(filepath.Join(b.dir, name)); rmErr != nil {
			b.logger.Warn().Err(rmErr).Str("name", name).Msg("failed to prune old backup snapshot")
		}
	}
}
