// Package watchlistdb provides BadgerHold-based persistence for user
// watchlists.
package watchlistdb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/bobmcallan/myxview/internal/common"
	"github.com/bobmcallan/myxview/internal/interfaces"
	"github.com/bobmcallan/myxview/internal/models"
)

// ErrNotFound indicates no watchlist exists under the requested name.
// Callers treat it as a legitimate empty state, distinct from read faults.
var ErrNotFound = errors.New("watchlist not found")

// Compile-time interface check
var _ interfaces.WatchlistStore = (*Store)(nil)

// Store wraps badgerhold for typed watchlist storage.
type Store struct {
	store  *badgerhold.Store
	logger *common.Logger
}

// NewStore opens the watchlist database at the given path.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	opts := badgerhold.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.Logger = nil // disable badger's internal logging

	store, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open watchlist store: %w", err)
	}

	logger.Debug().Str("path", path).Msg("Watchlist store opened")

	return &Store{store: store, logger: logger}, nil
}

// GetWatchlist retrieves a watchlist by name.
func (s *Store) GetWatchlist(_ context.Context, name string) (*models.Watchlist, error) {
	var wl models.Watchlist
	if err := s.store.Get(name, &wl); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("watchlist '%s': %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get watchlist: %w", err)
	}
	return &wl, nil
}

// SaveWatchlist upserts a watchlist.
func (s *Store) SaveWatchlist(_ context.Context, watchlist *models.Watchlist) error {
	watchlist.UpdatedAt = time.Now()
	if watchlist.CreatedAt.IsZero() {
		watchlist.CreatedAt = watchlist.UpdatedAt
	}
	if err := s.store.Upsert(watchlist.Name, watchlist); err != nil {
		return fmt.Errorf("failed to save watchlist: %w", err)
	}
	s.logger.Debug().Str("name", watchlist.Name).Int("items", len(watchlist.Items)).Msg("Watchlist saved")
	return nil
}

// DeleteWatchlist removes a watchlist. Deleting a missing list is not an
// error.
func (s *Store) DeleteWatchlist(_ context.Context, name string) error {
	err := s.store.Delete(name, &models.Watchlist{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete watchlist: %w", err)
	}
	return nil
}

// ListWatchlists returns the names of all stored watchlists, sorted.
func (s *Store) ListWatchlists(_ context.Context) ([]string, error) {
	var lists []models.Watchlist
	if err := s.store.Find(&lists, nil); err != nil {
		return nil, fmt.Errorf("failed to list watchlists: %w", err)
	}
	names := make([]string, 0, len(lists))
	for _, wl := range lists {
		names = append(names, wl.Name)
	}
	sort.Strings(names)
	return names, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
