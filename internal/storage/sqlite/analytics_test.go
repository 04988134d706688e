package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestAnalytics(t *testing.T) *AnalyticsStore {
	t.Helper()
	store, err := OpenAnalytics(filepath.Join(t.TempDir(), "data", "analytics.db"))
	if err != nil {
		t.Fatalf("open analytics: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init analytics: %v", err)
	}
	return store
}

func TestAnalyticsInitIsIdempotent(t *testing.T) {
	store := newTestAnalytics(t)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("second init: %v", err)
	}
}

func TestRecordAndCountCommandUsage(t *testing.T) {
	store := newTestAnalytics(t)
	ctx := context.Background()
	now := time.Now().UTC()

	usages := []struct {
		command string
		userID  int64
		at      time.Time
	}{
		{"price", 1, now},
		{"price", 2, now},
		{"alert", 1, now},
		{"price", 3, now.Add(-48 * time.Hour)}, // outside window
	}
	for _, u := range usages {
		if err := store.RecordCommandUsage(ctx, u.command, u.userID, u.at); err != nil {
			t.Fatalf("record %s: %v", u.command, err)
		}
	}

	counts, err := store.CommandCounts(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts["price"] != 2 || counts["alert"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestRecordCommandUsageRequiresCommand(t *testing.T) {
	store := newTestAnalytics(t)
	if err := store.RecordCommandUsage(context.Background(), "", 1, time.Now()); err == nil {
		t.Error("expected error for empty command")
	}
}
