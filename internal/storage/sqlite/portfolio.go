package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Holding is a held quantity of one symbol.
type Holding struct {
	UserID int64
	Symbol string
	Amount float64
}

// PortfolioLimits caps a user's alerts and portfolio loss/profit thresholds.
type PortfolioLimits struct {
	UserID       int64
	MaxAlerts    int
	LossLimit    float64
	ProfitTarget float64
}

// SetHolding upserts the held amount for a symbol. A zero amount removes the
// position.
func (s *Store) SetHolding(ctx context.Context, h Holding) error {
	if h.Amount == 0 {
		if _, err := s.db.ExecContext(ctx,
			`DELETE FROM portfolio WHERE user_id = ? AND symbol = ?`, h.UserID, h.Symbol); err != nil {
			return fmt.Errorf("remove holding %s: %w", h.Symbol, err)
		}
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO portfolio (user_id, symbol, amount) VALUES (?, ?, ?)
ON CONFLICT(user_id, symbol) DO UPDATE SET amount=excluded.amount`,
		h.UserID, h.Symbol, h.Amount)
	if err != nil {
		return fmt.Errorf("set holding %s: %w", h.Symbol, err)
	}
	return nil
}

// Holdings lists the user's positions.
func (s *Store) Holdings(ctx context.Context, userID int64) ([]Holding, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, symbol, amount FROM portfolio WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	defer rows.Close()

	var out []Holding
	for rows.Next() {
		var h Holding
		if err := rows.Scan(&h.UserID, &h.Symbol, &h.Amount); err != nil {
			return nil, fmt.Errorf("scan holding: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// GetPortfolioLimits returns the user's limits, or nil if none are set.
func (s *Store) GetPortfolioLimits(ctx context.Context, userID int64) (*PortfolioLimits, error) {
	var l PortfolioLimits
	err := s.db.QueryRowContext(ctx, `
SELECT user_id, max_alerts, loss_limit, profit_target
FROM portfolio_limits WHERE user_id = ?`, userID).Scan(
		&l.UserID, &l.MaxAlerts, &l.LossLimit, &l.ProfitTarget)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get portfolio limits: %w", err)
	}
	return &l, nil
}

// SetPortfolioLimits upserts the user's limits.
func (s *Store) SetPortfolioLimits(ctx context.Context, l PortfolioLimits) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO portfolio_limits (user_id, max_alerts, loss_limit, profit_target)
VALUES (?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
	max_alerts=excluded.max_alerts,
	loss_limit=excluded.loss_limit,
	profit_target=excluded.profit_target`,
		l.UserID, l.MaxAlerts, l.LossLimit, l.ProfitTarget)
	if err != nil {
		return fmt.Errorf("set portfolio limits: %w", err)
	}
	return nil
}
