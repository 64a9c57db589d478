// Package market answers cross-sectional and time-ranged queries over the
// daily snapshot store.
package market

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bobmcallan/myxview/internal/common"
	"github.com/bobmcallan/myxview/internal/interfaces"
	"github.com/bobmcallan/myxview/internal/models"
	"github.com/bobmcallan/myxview/internal/storage/snapshotfs"
)

var (
	// ErrInvalidRange indicates a range query with start after end. Rejected
	// before any I/O.
	ErrInvalidRange = errors.New("invalid date range: start after end")

	// ErrTickerNotFound indicates the instrument is absent from the latest
	// snapshot. A legitimate empty state, not a fault.
	ErrTickerNotFound = errors.New("ticker not found")
)

// maxConcurrentLoads bounds parallel per-date file loads during a range
// scan, keeping simultaneous open file handles in check.
const maxConcurrentLoads = 5

const dateLayout = "20060102"

// Compile-time interface check
var _ interfaces.MarketService = (*Service)(nil)

// Service implements MarketService.
type Service struct {
	storage interfaces.StorageManager
	logger  *common.Logger
}

// NewService creates a new market service.
func NewService(storage interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// GetUniverse returns the latest snapshot's records with the volume
// validity rule applied, in file order.
func (s *Service) GetUniverse(ctx context.Context) ([]models.InstrumentSnapshot, error) {
	store := s.storage.SnapshotStore()

	date, err := store.LatestDate(ctx)
	if err != nil {
		return nil, err
	}
	file, err := store.Load(ctx, date)
	if err != nil {
		return nil, err
	}

	universe := make([]models.InstrumentSnapshot, 0, len(file.Records))
	for i := range file.Records {
		if file.Records[i].HasValidVolume() {
			universe = append(universe, file.Records[i].InstrumentSnapshot)
		}
	}

	s.logger.Debug().
		Str("date", date).
		Int("instruments", len(universe)).
		Msg("Universe loaded")

	return universe, nil
}

// GetDetail returns the full extended record for one instrument from the
// latest snapshot. Detail bypasses the volume filter: an instrument with
// invalid volume is still inspectable.
func (s *Service) GetDetail(ctx context.Context, ticker string) (*models.SnapshotDetail, error) {
	store := s.storage.SnapshotStore()

	date, err := store.LatestDate(ctx)
	if err != nil {
		return nil, err
	}
	file, err := store.Load(ctx, date)
	if err != nil {
		return nil, err
	}

	record := file.FindByTicker(ticker)
	if record == nil {
		return nil, fmt.Errorf("%w: %s", ErrTickerNotFound, ticker)
	}
	return record, nil
}

// GetRange returns the instrument's OHLCV series over the inclusive date
// range [from, to], ascending by date. Dates where the instrument is absent
// are silently skipped, so the series may hold fewer points than the range
// spans. Per-date loads run with bounded concurrency; results are merged
// and sorted after all loads complete.
func (s *Service) GetRange(ctx context.Context, ticker, from, to string) ([]models.HistoricalPoint, error) {
	if from > to {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, from, to)
	}

	store := s.storage.SnapshotStore()
	dates, err := store.ListDates(ctx)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, snapshotfs.ErrEmptyStore
	}

	var inRange []string
	for _, date := range dates {
		if date >= from && date <= to {
			inRange = append(inRange, date)
		}
	}

	sem := make(chan struct{}, maxConcurrentLoads)
	var wg sync.WaitGroup
	var mu sync.Mutex
	points := make([]models.HistoricalPoint, 0, len(inRange))

	for _, date := range inRange {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(date string) {
			defer wg.Done()
			defer func() { <-sem }()

			file, err := store.Load(ctx, date)
			if err != nil {
				s.logger.Warn().Str("date", date).Err(err).Msg("Skipping unloadable snapshot in range scan")
				return
			}
			record := file.FindByTicker(ticker)
			if record == nil {
				return
			}
			point := record.ToHistoricalPoint(date)

			mu.Lock()
			points = append(points, point)
			mu.Unlock()
		}(date)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

// GetRangeWindow returns the series for a fixed window of calendar months
// ending at the latest available snapshot date. Same inclusive-range,
// skip-missing, ascending-sort semantics as GetRange.
func (s *Service) GetRangeWindow(ctx context.Context, ticker string, months int) ([]models.HistoricalPoint, error) {
	if months <= 0 {
		return nil, fmt.Errorf("%w: window of %d months", ErrInvalidRange, months)
	}

	to, err := s.storage.SnapshotStore().LatestDate(ctx)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("malformed latest date %q: %w", to, err)
	}
	from := end.AddDate(0, -months, 0).Format(dateLayout)

	return s.GetRange(ctx, ticker, from, to)
}

// ListDates exposes the store's available snapshot dates, ascending.
func (s *Service) ListDates(ctx context.Context) ([]string, error) {
	return s.storage.SnapshotStore().ListDates(ctx)
}
