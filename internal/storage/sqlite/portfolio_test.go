package sqlite

import (
	"context"
	"testing"
)

func TestHoldings(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SetHolding(ctx, Holding{UserID: 1, Symbol: "BTC", Amount: 0.5}); err != nil {
		t.Fatalf("set holding: %v", err)
	}
	// Upsert replaces the amount.
	if err := store.SetHolding(ctx, Holding{UserID: 1, Symbol: "BTC", Amount: 0.75}); err != nil {
		t.Fatalf("update holding: %v", err)
	}
	if err := store.SetHolding(ctx, Holding{UserID: 1, Symbol: "ETH", Amount: 10}); err != nil {
		t.Fatalf("set second holding: %v", err)
	}

	holdings, err := store.Holdings(ctx, 1)
	if err != nil {
		t.Fatalf("list holdings: %v", err)
	}
	if len(holdings) != 2 {
		t.Fatalf("got %d holdings, want 2", len(holdings))
	}
	amounts := map[string]float64{}
	for _, h := range holdings {
		amounts[h.Symbol] = h.Amount
	}
	if amounts["BTC"] != 0.75 || amounts["ETH"] != 10 {
		t.Errorf("unexpected amounts: %v", amounts)
	}

	// Zero amount removes the position.
	if err := store.SetHolding(ctx, Holding{UserID: 1, Symbol: "ETH", Amount: 0}); err != nil {
		t.Fatalf("zero holding: %v", err)
	}
	holdings, err = store.Holdings(ctx, 1)
	if err != nil {
		t.Fatalf("list holdings: %v", err)
	}
	if len(holdings) != 1 || holdings[0].Symbol != "BTC" {
		t.Errorf("got %+v after removal, want only BTC", holdings)
	}
}

func TestPortfolioLimits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	limits, err := store.GetPortfolioLimits(ctx, 1)
	if err != nil {
		t.Fatalf("get limits: %v", err)
	}
	if limits != nil {
		t.Errorf("got %+v, want nil before set", limits)
	}

	want := PortfolioLimits{UserID: 1, MaxAlerts: 10, LossLimit: 500, ProfitTarget: 2000}
	if err := store.SetPortfolioLimits(ctx, want); err != nil {
		t.Fatalf("set limits: %v", err)
	}
	// Upsert path.
	want.MaxAlerts = 20
	if err := store.SetPortfolioLimits(ctx, want); err != nil {
		t.Fatalf("update limits: %v", err)
	}

	limits, err = store.GetPortfolioLimits(ctx, 1)
	if err != nil {
		t.Fatalf("get limits: %v", err)
	}
	if limits == nil || *limits != want {
		t.Errorf("got %+v, want %+v", limits, want)
	}
}

func TestWatchlistLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.AddWatch(ctx, WatchEntry{UserID: 1, Symbol: "BTC", BasePrice: 48000, ThresholdPercent: 2})
	if err != nil {
		t.Fatalf("add watch: %v", err)
	}

	entries, err := store.Watchlist(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Timeframe != "1h" {
		t.Errorf("timeframe = %q, want default 1h", entries[0].Timeframe)
	}

	if err := store.RemoveWatch(ctx, 1, id); err != nil {
		t.Fatalf("remove: %v", err)
	}
	entries, err = store.Watchlist(ctx, 1)
	if err != nil {
		t.Fatalf("list after remove: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries after remove, want 0", len(entries))
	}
}
