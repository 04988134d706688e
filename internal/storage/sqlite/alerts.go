package sqlite

import (
	"context"
	"fmt"
)

// PriceAlert fires when a symbol crosses a target price.
type PriceAlert struct {
	ID          int64
	UserID      int64
	Symbol      string
	Condition   string
	TargetPrice float64
	Repeat      int
}

// PercentAlert fires on a percent move from a base price.
type PercentAlert struct {
	ID               int64
	UserID           int64
	Symbol           string
	BasePrice        float64
	ThresholdPercent float64
	Repeat           int
}

// VolumeAlert fires on a volume spike within a timeframe.
type VolumeAlert struct {
	ID         int64
	UserID     int64
	Symbol     string
	Multiplier float64
	Timeframe  string
	Repeat     int
}

// RiskAlert fires at a stop or take price.
type RiskAlert struct {
	ID        int64
	UserID    int64
	Symbol    string
	StopPrice float64
	TakePrice float64
	Repeat    int
}

// CustomAlert combines a price condition with an RSI condition.
type CustomAlert struct {
	ID             int64
	UserID         int64
	Symbol         string
	PriceCondition string
	PriceValue     float64
	RSICondition   string
	RSIValue       float64
	Repeat         int
}

// PortfolioAlert fires when the value of a held position crosses a target.
type PortfolioAlert struct {
	ID          int64
	UserID      int64
	Symbol      string
	Amount      float64
	Direction   string
	TargetValue float64
	Repeat      int
}

func (s *Store) CreatePriceAlert(ctx context.Context, a PriceAlert) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO alerts (user_id, symbol, condition, target_price, repeat)
VALUES (?, ?, ?, ?, ?)`,
		a.UserID, a.Symbol, a.Condition, a.TargetPrice, a.Repeat)
	if err != nil {
		return 0, fmt.Errorf("create price alert: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) CreatePercentAlert(ctx context.Context, a PercentAlert) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO percent_alerts (user_id, symbol, base_price, threshold_percent, repeat)
VALUES (?, ?, ?, ?, ?)`,
		a.UserID, a.Symbol, a.BasePrice, a.ThresholdPercent, a.Repeat)
	if err != nil {
		return 0, fmt.Errorf("create percent alert: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) CreateVolumeAlert(ctx context.Context, a VolumeAlert) (int64, error) {
	if a.Timeframe == "" {
		a.Timeframe = "1h"
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO volume_alerts (user_id, symbol, multiplier, timeframe, repeat)
VALUES (?, ?, ?, ?, ?)`,
		a.UserID, a.Symbol, a.Multiplier, a.Timeframe, a.Repeat)
	if err != nil {
		return 0, fmt.Errorf("create volume alert: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) CreateRiskAlert(ctx context.Context, a RiskAlert) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO risk_alerts (user_id, symbol, stop_price, take_price, repeat)
VALUES (?, ?, ?, ?, ?)`,
		a.UserID, a.Symbol, a.StopPrice, a.TakePrice, a.Repeat)
	if err != nil {
		return 0, fmt.Errorf("create risk alert: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) CreateCustomAlert(ctx context.Context, a CustomAlert) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO custom_alerts (user_id, symbol, price_condition, price_value, rsi_condition, rsi_value, repeat)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.UserID, a.Symbol, a.PriceCondition, a.PriceValue, a.RSICondition, a.RSIValue, a.Repeat)
	if err != nil {
		return 0, fmt.Errorf("create custom alert: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) CreatePortfolioAlert(ctx context.Context, a PortfolioAlert) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO portfolio_alerts (user_id, symbol, amount, direction, target_value, repeat)
VALUES (?, ?, ?, ?, ?, ?)`,
		a.UserID, a.Symbol, a.Amount, a.Direction, a.TargetValue, a.Repeat)
	if err != nil {
		return 0, fmt.Errorf("create portfolio alert: %w", err)
	}
	return res.LastInsertId()
}

// PriceAlerts lists a user's price alerts.
func (s *Store) PriceAlerts(ctx context.Context, userID int64) ([]PriceAlert, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, user_id, symbol, condition, target_price, repeat
FROM alerts WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("list price alerts: %w", err)
	}
	defer rows.Close()

	var out []PriceAlert
	for rows.Next() {
		var a PriceAlert
		var repeat nullInt
		if err := rows.Scan(&a.ID, &a.UserID, &a.Symbol, &a.Condition, &a.TargetPrice, &repeat); err != nil {
			return nil, fmt.Errorf("scan price alert: %w", err)
		}
		a.Repeat = repeat.value()
		out = append(out, a)
	}
	return out, rows.Err()
}

// PercentAlerts lists a user's percent-move alerts.
func (s *Store) PercentAlerts(ctx context.Context, userID int64) ([]PercentAlert, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, user_id, symbol, base_price, threshold_percent, repeat
FROM percent_alerts WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("list percent alerts: %w", err)
	}
	defer rows.Close()

	var out []PercentAlert
	for rows.Next() {
		var a PercentAlert
		var repeat nullInt
		if err := rows.Scan(&a.ID, &a.UserID, &a.Symbol, &a.BasePrice, &a.ThresholdPercent, &repeat); err != nil {
			return nil, fmt.Errorf("scan percent alert: %w", err)
		}
		a.Repeat = repeat.value()
		out = append(out, a)
	}
	return out, rows.Err()
}

// VolumeAlerts lists a user's volume-spike alerts.
func (s *Store) VolumeAlerts(ctx context.Context, userID int64) ([]VolumeAlert, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, user_id, symbol, multiplier, timeframe, repeat
FROM volume_alerts WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("list volume alerts: %w", err)
	}
	defer rows.Close()

	var out []VolumeAlert
	for rows.Next() {
		var a VolumeAlert
		var repeat nullInt
		if err := rows.Scan(&a.ID, &a.UserID, &a.Symbol, &a.Multiplier, &a.Timeframe, &repeat); err != nil {
			return nil, fmt.Errorf("scan volume alert: %w", err)
		}
		a.Repeat = repeat.value()
		out = append(out, a)
	}
	return out, rows.Err()
}

// RiskAlerts lists a user's stop/take alerts.
func (s *Store) RiskAlerts(ctx context.Context, userID int64) ([]RiskAlert, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, user_id, symbol, stop_price, take_price, repeat
FROM risk_alerts WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("list risk alerts: %w", err)
	}
	defer rows.Close()

	var out []RiskAlert
	for rows.Next() {
		var a RiskAlert
		var repeat nullInt
		if err := rows.Scan(&a.ID, &a.UserID, &a.Symbol, &a.StopPrice, &a.TakePrice, &repeat); err != nil {
			return nil, fmt.Errorf("scan risk alert: %w", err)
		}
		a.Repeat = repeat.value()
		out = append(out, a)
	}
	return out, rows.Err()
}

// alertTables are the per-user alert tables used for deletes and counting.
var alertTables = []string{
	"alerts", "percent_alerts", "volume_alerts",
	"risk_alerts", "custom_alerts", "portfolio_alerts",
}

func (s *Store) DeletePriceAlert(ctx context.Context, userID, alertID int64) error {
	return s.deleteAlert(ctx, "alerts", userID, alertID)
}

func (s *Store) DeletePercentAlert(ctx context.Context, userID, alertID int64) error {
	return s.deleteAlert(ctx, "percent_alerts", userID, alertID)
}

func (s *Store) DeleteVolumeAlert(ctx context.Context, userID, alertID int64) error {
	return s.deleteAlert(ctx, "volume_alerts", userID, alertID)
}

func (s *Store) DeleteRiskAlert(ctx context.Context, userID, alertID int64) error {
	return s.deleteAlert(ctx, "risk_alerts", userID, alertID)
}

func (s *Store) DeleteCustomAlert(ctx context.Context, userID, alertID int64) error {
	return s.deleteAlert(ctx, "custom_alerts", userID, alertID)
}

func (s *Store) DeletePortfolioAlert(ctx context.Context, userID, alertID int64) error {
	return s.deleteAlert(ctx, "portfolio_alerts", userID, alertID)
}

func (s *Store) deleteAlert(ctx context.Context, table string, userID, alertID int64) error {
	stmt := fmt.Sprintf("DELETE FROM %s WHERE user_id = ? AND id = ?", table)
	if _, err := s.db.ExecContext(ctx, stmt, userID, alertID); err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return nil
}

// CountUserAlerts sums the user's alerts across every alert table, used to
// enforce plan limits.
func (s *Store) CountUserAlerts(ctx context.Context, userID int64) (int, error) {
	total := 0
	for _, table := range alertTables {
		stmt := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE user_id = ?", table)
		var n int
		if err := s.db.QueryRowContext(ctx, stmt, userID).Scan(&n); err != nil {
			return 0, fmt.Errorf("count %s: %w", table, err)
		}
		total += n
	}
	return total, nil
}

// ClearUserAlerts removes every alert the user has, across all alert tables.
func (s *Store) ClearUserAlerts(ctx context.Context, userID int64) error {
	for _, table := range alertTables {
		stmt := fmt.Sprintf("DELETE FROM %s WHERE user_id = ?", table)
		if _, err := s.db.ExecContext(ctx, stmt, userID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
