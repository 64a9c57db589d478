package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bobmcallan/myxview/internal/common"
	"github.com/bobmcallan/myxview/internal/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	base := t.TempDir()
	m, err := NewManager(common.NewSilentLogger(), &common.StorageConfig{
		Snapshots: common.AreaConfig{Path: filepath.Join(base, "eod")},
		Watchlist: common.AreaConfig{Path: filepath.Join(base, "watchlist")},
	})
	if err != nil {
		t.Fatalf("failed to open manager: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestManager_OpensBothStores(t *testing.T) {
	m := newTestManager(t)
	if m.SnapshotStore() == nil || m.WatchlistStore() == nil {
		t.Fatal("stores must be non-nil")
	}

	// Both backends must be usable.
	if _, err := m.SnapshotStore().ListDates(context.Background()); err != nil {
		t.Errorf("snapshot store unusable: %v", err)
	}
	err := m.WatchlistStore().SaveWatchlist(context.Background(), &models.Watchlist{Name: "default"})
	if err != nil {
		t.Errorf("watchlist store unusable: %v", err)
	}
}

func TestWriteRaw_Atomic(t *testing.T) {
	m := newTestManager(t)

	if err := m.WriteRaw("charts", "TENAGA-3m.png", []byte("png-bytes")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(m.DataPath(), "charts", "TENAGA-3m.png"))
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("content = %q", data)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Join(m.DataPath(), "charts"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 file, found %d", len(entries))
	}
}

func TestWriteRaw_SanitizesKey(t *testing.T) {
	m := newTestManager(t)

	if err := m.WriteRaw("charts", "../escape:attempt.png", []byte("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(m.DataPath(), "charts"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 file, found %d", len(entries))
	}
	name := entries[0].Name()
	if filepath.Dir(filepath.Join("charts", name)) != "charts" {
		t.Errorf("key escaped its directory: %s", name)
	}
}
