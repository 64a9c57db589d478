package models

import "time"

// Watchlist is a user-curated set of instruments, keyed by name so multiple
// lists can coexist. Items carry the last-known snapshot so a list can be
// rendered without reloading the universe.
type Watchlist struct {
	Name      string          `json:"name" badgerhold:"key"`
	Items     []WatchlistItem `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WatchlistItem is one tracked instrument.
type WatchlistItem struct {
	Ticker    string             `json:"ticker"`
	Snapshot  InstrumentSnapshot `json:"snapshot"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// FindByTicker returns the item with the given ticker and its index,
// or nil and -1 when absent.
func (w *Watchlist) FindByTicker(ticker string) (*WatchlistItem, int) {
	for i := range w.Items {
		if w.Items[i].Ticker == ticker {
			return &w.Items[i], i
		}
	}
	return nil, -1
}

// Tickers returns the instrument identifiers in list order.
func (w *Watchlist) Tickers() []string {
	tickers := make([]string, len(w.Items))
	for i, item := range w.Items {
		tickers[i] = item.Ticker
	}
	return tickers
}

// Universe returns the last-known snapshots in list order, for use as a
// filter input alongside the full market universe.
func (w *Watchlist) Universe() []InstrumentSnapshot {
	universe := make([]InstrumentSnapshot, len(w.Items))
	for i, item := range w.Items {
		universe[i] = item.Snapshot
	}
	return universe
}
