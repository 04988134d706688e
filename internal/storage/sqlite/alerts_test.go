package sqlite

import (
	"context"
	"testing"
)

func TestPriceAlertLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreatePriceAlert(ctx, PriceAlert{
		UserID:      1,
		Symbol:      "BTC",
		Condition:   "above",
		TargetPrice: 50000,
		Repeat:      1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	alerts, err := store.PriceAlerts(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	got := alerts[0]
	if got.ID != id || got.Symbol != "BTC" || got.Condition != "above" || got.TargetPrice != 50000 || got.Repeat != 1 {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if err := store.DeletePriceAlert(ctx, 1, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	alerts, err = store.PriceAlerts(ctx, 1)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("got %d alerts after delete, want 0", len(alerts))
	}
}

func TestVolumeAlertDefaultsTimeframe(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.CreateVolumeAlert(ctx, VolumeAlert{UserID: 2, Symbol: "ETH", Multiplier: 3}); err != nil {
		t.Fatalf("create: %v", err)
	}
	alerts, err := store.VolumeAlerts(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(alerts) != 1 || alerts[0].Timeframe != "1h" {
		t.Errorf("got %+v, want default 1h timeframe", alerts)
	}
}

func TestListScansLegacyNullRepeat(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Rows written by old releases can have NULL repeat.
	if _, err := store.db.ExecContext(ctx, `
INSERT INTO alerts (user_id, symbol, condition, target_price, repeat)
VALUES (3, 'SOL', 'below', 100, NULL)`); err != nil {
		t.Fatalf("seed legacy row: %v", err)
	}

	alerts, err := store.PriceAlerts(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(alerts) != 1 || alerts[0].Repeat != 0 {
		t.Errorf("got %+v, want repeat 0 for NULL", alerts)
	}
}

func TestCountAndClearUserAlerts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const userID = 4
	if _, err := store.CreatePriceAlert(ctx, PriceAlert{UserID: userID, Symbol: "BTC", Condition: "above", TargetPrice: 1}); err != nil {
		t.Fatalf("create price alert: %v", err)
	}
	if _, err := store.CreatePercentAlert(ctx, PercentAlert{UserID: userID, Symbol: "ETH", BasePrice: 2000, ThresholdPercent: 5}); err != nil {
		t.Fatalf("create percent alert: %v", err)
	}
	if _, err := store.CreateRiskAlert(ctx, RiskAlert{UserID: userID, Symbol: "SOL", StopPrice: 90, TakePrice: 120}); err != nil {
		t.Fatalf("create risk alert: %v", err)
	}
	if _, err := store.CreateCustomAlert(ctx, CustomAlert{UserID: userID, Symbol: "BTC", PriceCondition: "above", PriceValue: 1, RSICondition: "below", RSIValue: 30}); err != nil {
		t.Fatalf("create custom alert: %v", err)
	}
	if _, err := store.CreatePortfolioAlert(ctx, PortfolioAlert{UserID: userID, Symbol: "BTC", Amount: 0.5, Direction: "above", TargetValue: 100000}); err != nil {
		t.Fatalf("create portfolio alert: %v", err)
	}
	// Another user's alert must not count or be cleared.
	otherID, err := store.CreatePriceAlert(ctx, PriceAlert{UserID: 5, Symbol: "BTC", Condition: "above", TargetPrice: 1})
	if err != nil {
		t.Fatalf("create other user's alert: %v", err)
	}

	n, err := store.CountUserAlerts(ctx, userID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 5 {
		t.Errorf("got %d alerts, want 5", n)
	}

	if err := store.ClearUserAlerts(ctx, userID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	n, err = store.CountUserAlerts(ctx, userID)
	if err != nil {
		t.Fatalf("count after clear: %v", err)
	}
	if n != 0 {
		t.Errorf("got %d alerts after clear, want 0", n)
	}

	others, err := store.PriceAlerts(ctx, 5)
	if err != nil {
		t.Fatalf("list other user: %v", err)
	}
	if len(others) != 1 || others[0].ID != otherID {
		t.Errorf("other user's alerts affected by clear: %+v", others)
	}
}
