// Package storage coordinates the snapshot and watchlist stores.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bobmcallan/myxview/internal/common"
	"github.com/bobmcallan/myxview/internal/interfaces"
	"github.com/bobmcallan/myxview/internal/storage/snapshotfs"
	"github.com/bobmcallan/myxview/internal/storage/watchlistdb"
)

// Compile-time interface check
var _ interfaces.StorageManager = (*Manager)(nil)

// Manager owns the storage backends: the read-only snapshot directory and
// the BadgerHold watchlist database.
type Manager struct {
	snapshots  *snapshotfs.Store
	watchlists *watchlistdb.Store
	basePath   string
	logger     *common.Logger
}

// NewManager opens all storage areas from config.
func NewManager(logger *common.Logger, config *common.StorageConfig) (*Manager, error) {
	snapshots, err := snapshotfs.NewStore(logger, config.Snapshots.Path, config.MaxCachedSnapshots)
	if err != nil {
		return nil, err
	}

	watchlists, err := watchlistdb.NewStore(logger, config.Watchlist.Path)
	if err != nil {
		return nil, err
	}

	return &Manager{
		snapshots:  snapshots,
		watchlists: watchlists,
		basePath:   config.Snapshots.Path,
		logger:     logger,
	}, nil
}

// SnapshotStore returns the snapshot store.
func (m *Manager) SnapshotStore() interfaces.SnapshotStore {
	return m.snapshots
}

// WatchlistStore returns the watchlist store.
func (m *Manager) WatchlistStore() interfaces.WatchlistStore {
	return m.watchlists
}

// DataPath returns the base data path.
func (m *Manager) DataPath() string {
	return m.basePath
}

// WriteRaw writes arbitrary binary data to a subdirectory atomically.
func (m *Manager) WriteRaw(subdir, key string, data []byte) error {
	dir := filepath.Join(m.basePath, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	target := filepath.Join(dir, sanitizeKey(key))

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Close closes all storage backends.
func (m *Manager) Close() error {
	return m.watchlists.Close()
}

func sanitizeKey(key string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_")
	return r.Replace(key)
}
