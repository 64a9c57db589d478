// Package watchlist provides watchlist management services
package watchlist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bobmcallan/myxview/internal/common"
	"github.com/bobmcallan/myxview/internal/interfaces"
	"github.com/bobmcallan/myxview/internal/models"
	"github.com/bobmcallan/myxview/internal/storage/watchlistdb"
)

// Compile-time interface check
var _ interfaces.WatchlistService = (*Service)(nil)

// Service implements WatchlistService
type Service struct {
	storage interfaces.StorageManager
	logger  *common.Logger
}

// NewService creates a new watchlist service
func NewService(storage interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// GetWatchlist retrieves a watchlist by name. A missing watchlist reads as
// an empty list, never as an error; store faults still propagate so a
// failed read is never mistaken for an empty list.
func (s *Service) GetWatchlist(ctx context.Context, name string) (*models.Watchlist, error) {
	wl, err := s.storage.WatchlistStore().GetWatchlist(ctx, name)
	if errors.Is(err, watchlistdb.ErrNotFound) {
		return &models.Watchlist{Name: name, Items: []models.WatchlistItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read watchlist: %w", err)
	}
	return wl, nil
}

// AddItem adds a new item or updates an existing one (upsert keyed on
// ticker). An update refreshes the stored snapshot but preserves CreatedAt.
func (s *Service) AddItem(ctx context.Context, name string, item *models.WatchlistItem) (*models.Watchlist, error) {
	if item.Ticker == "" {
		item.Ticker = item.Snapshot.Ticker
	}
	item.Ticker = strings.ToUpper(strings.TrimSpace(item.Ticker))
	if item.Ticker == "" {
		return nil, fmt.Errorf("watchlist item requires a ticker")
	}

	wl, err := s.GetWatchlist(ctx, name)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	existing, idx := wl.FindByTicker(item.Ticker)
	if idx >= 0 {
		item.CreatedAt = existing.CreatedAt
		item.UpdatedAt = now
		wl.Items[idx] = *item
	} else {
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
		item.UpdatedAt = now
		wl.Items = append(wl.Items, *item)
	}

	if err := s.storage.WatchlistStore().SaveWatchlist(ctx, wl); err != nil {
		return nil, fmt.Errorf("failed to save watchlist: %w", err)
	}

	s.logger.Info().Str("watchlist", name).Str("ticker", item.Ticker).Msg("Watchlist item upserted")
	return wl, nil
}

// RemoveItem removes an instrument from the watchlist by ticker.
func (s *Service) RemoveItem(ctx context.Context, name, ticker string) (*models.Watchlist, error) {
	wl, err := s.GetWatchlist(ctx, name)
	if err != nil {
		return nil, err
	}

	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	_, idx := wl.FindByTicker(ticker)
	if idx < 0 {
		return nil, fmt.Errorf("ticker '%s' not found in watchlist", ticker)
	}

	wl.Items = append(wl.Items[:idx], wl.Items[idx+1:]...)

	if err := s.storage.WatchlistStore().SaveWatchlist(ctx, wl); err != nil {
		return nil, fmt.Errorf("failed to save watchlist: %w", err)
	}

	s.logger.Info().Str("watchlist", name).Str("ticker", ticker).Msg("Watchlist item removed")
	return wl, nil
}

// ClearWatchlist removes a watchlist entirely.
func (s *Service) ClearWatchlist(ctx context.Context, name string) error {
	if err := s.storage.WatchlistStore().DeleteWatchlist(ctx, name); err != nil {
		return fmt.Errorf("failed to clear watchlist: %w", err)
	}
	s.logger.Info().Str("watchlist", name).Msg("Watchlist cleared")
	return nil
}
