// Package snapshotfs implements the file-based store of dated end-of-day
// snapshot files. One CSV file per trading day, filename YYYYMMDD plus
// extension; files are immutable once published.
package snapshotfs

import (
	"container/list"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bobmcallan/myxview/internal/common"
	"github.com/bobmcallan/myxview/internal/interfaces"
	"github.com/bobmcallan/myxview/internal/models"
)

var (
	// ErrEmptyStore indicates the snapshot directory holds no dated files
	// at all. Fatal to any query: there is no data to serve.
	ErrEmptyStore = errors.New("no snapshot files available")

	// ErrNoSnapshot indicates no file exists for a requested date.
	ErrNoSnapshot = errors.New("no snapshot for date")
)

// Compile-time interface check
var _ interfaces.SnapshotStore = (*Store)(nil)

// Store reads dated snapshot files from a directory and keeps a bounded
// LRU cache of parsed files keyed by date. Files never mutate, so cached
// entries never invalidate; eviction only bounds memory.
type Store struct {
	dir       string
	logger    *common.Logger
	maxCached int

	mu    sync.Mutex
	cache map[string]*list.Element
	lru   *list.List // front = most recently used
}

type cacheEntry struct {
	date string
	file *models.SnapshotFile
}

// NewStore opens a snapshot store over the given directory.
func NewStore(logger *common.Logger, dir string, maxCached int) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot path %s: %w", dir, err)
	}
	if maxCached <= 0 {
		maxCached = 64
	}

	logger.Info().Str("path", dir).Msg("Snapshot store opened")
	return &Store{
		dir:       dir,
		logger:    logger,
		maxCached: maxCached,
		cache:     make(map[string]*list.Element),
		lru:       list.New(),
	}, nil
}

// dateFromFilename extracts the YYYYMMDD date key from a snapshot filename.
// Extension is ignored, so 20241017.csv, 20241017.CSV and 20241017.txt all
// map to the same date. Returns false for files that don't carry a valid
// calendar date.
func dateFromFilename(name string) (string, bool) {
	base := name
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if len(base) != 8 {
		return "", false
	}
	if _, err := time.Parse("20060102", base); err != nil {
		return "", false
	}
	return base, true
}

// scan enumerates the directory and returns a date -> filename map.
func (s *Store) scan() (map[string]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot directory %s: %w", s.dir, err)
	}

	files := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		date, ok := dateFromFilename(e.Name())
		if !ok {
			continue
		}
		files[date] = e.Name()
	}
	return files, nil
}

// ListDates returns the available snapshot dates, ascending.
func (s *Store) ListDates(_ context.Context) ([]string, error) {
	files, err := s.scan()
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(files))
	for date := range files {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}

// LatestDate returns the most recent available snapshot date.
func (s *Store) LatestDate(ctx context.Context) (string, error) {
	dates, err := s.ListDates(ctx)
	if err != nil {
		return "", err
	}
	if len(dates) == 0 {
		return "", ErrEmptyStore
	}
	return dates[len(dates)-1], nil
}

// Load returns the parsed snapshot for a date, from cache when possible.
// Repeated loads of the same date yield equal results.
func (s *Store) Load(_ context.Context, date string) (*models.SnapshotFile, error) {
	if file := s.cached(date); file != nil {
		return file, nil
	}

	files, err := s.scan()
	if err != nil {
		return nil, err
	}
	name, ok := files[date]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSnapshot, date)
	}

	file, err := s.loadFile(filepath.Join(s.dir, name), date)
	if err != nil {
		return nil, err
	}

	s.store(date, file)
	return file, nil
}

// cached returns the cached snapshot for a date, promoting it to the front
// of the LRU, or nil.
func (s *Store) cached(date string) *models.SnapshotFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.cache[date]; ok {
		s.lru.MoveToFront(el)
		return el.Value.(*cacheEntry).file
	}
	return nil
}

// store inserts a parsed snapshot into the cache, evicting the least
// recently used entry when over capacity.
func (s *Store) store(date string, file *models.SnapshotFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.cache[date]; ok {
		s.lru.MoveToFront(el)
		el.Value.(*cacheEntry).file = file
		return
	}
	el := s.lru.PushFront(&cacheEntry{date: date, file: file})
	s.cache[date] = el
	for s.lru.Len() > s.maxCached {
		oldest := s.lru.Back()
		s.lru.Remove(oldest)
		delete(s.cache, oldest.Value.(*cacheEntry).date)
	}
}

// loadFile reads and parses one snapshot CSV. Malformed rows are logged and
// dropped; they never abort the rest of the file.
func (s *Store) loadFile(path, date string) (*models.SnapshotFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows; parser degrades per field

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot header %s: %w", path, err)
	}
	parser := NewRowParser(header)

	file := &models.SnapshotFile{Date: date}
	dropped := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.logger.Warn().Str("date", date).Err(err).Msg("Skipping unreadable snapshot row")
			dropped++
			continue
		}
		record, err := parser.Parse(row)
		if err != nil {
			s.logger.Warn().Str("date", date).Err(err).Msg("Dropping malformed snapshot row")
			dropped++
			continue
		}
		file.Records = append(file.Records, *record)
	}

	s.logger.Debug().
		Str("date", date).
		Int("records", len(file.Records)).
		Int("dropped", dropped).
		Msg("Snapshot loaded")

	return file, nil
}
