package interfaces

import (
	"context"

	"github.com/bobmcallan/myxview/internal/models"
)

// FilterOptions narrows a universe. Empty fields mean "no constraint".
// Name matches case-insensitively as a substring; Sector and Industry
// match exactly.
type FilterOptions struct {
	Name     string
	Sector   string
	Industry string
}

// MarketService answers cross-sectional and time-ranged queries over the
// snapshot store.
type MarketService interface {
	// GetUniverse returns the latest snapshot's records, excluding rows
	// with missing or negative volume, in file order.
	GetUniverse(ctx context.Context) ([]models.InstrumentSnapshot, error)

	// GetDetail returns the full extended record for one instrument from
	// the latest snapshot. Fails with ErrTickerNotFound when the instrument
	// is absent; callers treat that as a legitimate empty state.
	GetDetail(ctx context.Context, ticker string) (*models.SnapshotDetail, error)

	// GetRange returns the instrument's OHLCV series over [from, to]
	// inclusive, ascending by date, at most one point per date. Dates where
	// the instrument is absent are skipped. Fails with ErrInvalidRange when
	// from > to.
	GetRange(ctx context.Context, ticker, from, to string) ([]models.HistoricalPoint, error)

	// GetRangeWindow is GetRange with to fixed at the latest available date
	// and from computed by subtracting the given number of calendar months.
	GetRangeWindow(ctx context.Context, ticker string, months int) ([]models.HistoricalPoint, error)

	// ListDates exposes the store's available snapshot dates, ascending.
	ListDates(ctx context.Context) ([]string, error)
}

// WatchlistService manages user watchlists. A missing watchlist reads as
// empty, never as an error.
type WatchlistService interface {
	GetWatchlist(ctx context.Context, name string) (*models.Watchlist, error)
	AddItem(ctx context.Context, name string, item *models.WatchlistItem) (*models.Watchlist, error)
	RemoveItem(ctx context.Context, name, ticker string) (*models.Watchlist, error)
	ClearWatchlist(ctx context.Context, name string) error
}
