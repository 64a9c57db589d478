// Package interfaces defines service contracts for myxview
package interfaces

import (
	"context"

	"github.com/bobmcallan/myxview/internal/models"
)

// StorageManager coordinates the storage backends.
type StorageManager interface {
	SnapshotStore() SnapshotStore
	WatchlistStore() WatchlistStore

	// DataPath returns the base data directory path.
	DataPath() string

	// WriteRaw writes arbitrary binary data to a subdirectory atomically.
	// Key is sanitized for safe filenames (e.g. "AAX-3m.png").
	WriteRaw(subdir, key string, data []byte) error

	// Lifecycle
	Close() error
}

// SnapshotStore enumerates and loads the dated end-of-day snapshot files.
// Snapshot files are immutable once published; repeated loads of the same
// date yield equal results.
type SnapshotStore interface {
	// ListDates returns the available snapshot dates as YYYYMMDD strings,
	// ascending.
	ListDates(ctx context.Context) ([]string, error)

	// Load returns the parsed snapshot for a date. Fails with ErrNoSnapshot
	// when no file matches.
	Load(ctx context.Context, date string) (*models.SnapshotFile, error)

	// LatestDate returns the most recent available date. Fails with
	// ErrEmptyStore when no snapshot files exist.
	LatestDate(ctx context.Context) (string, error)
}

// WatchlistStore persists user watchlists.
type WatchlistStore interface {
	GetWatchlist(ctx context.Context, name string) (*models.Watchlist, error)
	SaveWatchlist(ctx context.Context, watchlist *models.Watchlist) error
	DeleteWatchlist(ctx context.Context, name string) error
	ListWatchlists(ctx context.Context) ([]string, error)
	Close() error
}
