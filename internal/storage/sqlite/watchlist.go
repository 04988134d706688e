package sqlite

import (
	"context"
	"fmt"
)

// WatchEntry is a tracked symbol on a user's watchlist.
type WatchEntry struct {
	ID               int64
	UserID           int64
	Symbol           string
	BasePrice        float64
	ThresholdPercent float64
	Timeframe        string
}

// AddWatch puts a symbol on the user's watchlist.
func (s *Store) AddWatch(ctx context.Context, w WatchEntry) (int64, error) {
	if w.Timeframe == "" {
		w.Timeframe = "1h"
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO watchlist (user_id, symbol, base_price, threshold_percent, timeframe)
VALUES (?, ?, ?, ?, ?)`,
		w.UserID, w.Symbol, w.BasePrice, w.ThresholdPercent, w.Timeframe)
	if err != nil {
		return 0, fmt.Errorf("add watch %s: %w", w.Symbol, err)
	}
	return res.LastInsertId()
}

// Watchlist lists the user's tracked symbols.
func (s *Store) Watchlist(ctx context.Context, userID int64) ([]WatchEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, user_id, symbol, base_price, threshold_percent, timeframe
FROM watchlist WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	defer rows.Close()

	var out []WatchEntry
	for rows.Next() {
		var w WatchEntry
		if err := rows.Scan(&w.ID, &w.UserID, &w.Symbol, &w.BasePrice, &w.ThresholdPercent, &w.Timeframe); err != nil {
			return nil, fmt.Errorf("scan watch entry: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// RemoveWatch drops a watchlist entry by id.
func (s *Store) RemoveWatch(ctx context.Context, userID, entryID int64) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM watchlist WHERE user_id = ? AND id = ?`, userID, entryID); err != nil {
		return fmt.Errorf("remove watch: %w", err)
	}
	return nil
}
