package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// AIAlert is a compound alert whose conditions were parsed from natural
// language. Conditions holds the JSON condition list.
type AIAlert struct {
	ID         int64
	UserID     int64
	Symbol     string
	Conditions string
	Summary    string
	CreatedAt  string
	Active     bool
}

// CreateAIAlert stores a parsed alert, active by default.
func (s *Store) CreateAIAlert(ctx context.Context, a AIAlert) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO ai_alerts (user_id, symbol, conditions, summary, active)
VALUES (?, ?, ?, ?, 1)`,
		a.UserID, a.Symbol, a.Conditions, a.Summary)
	if err != nil {
		return 0, fmt.Errorf("create ai alert: %w", err)
	}
	return res.LastInsertId()
}

// AIAlerts lists a user's AI alerts, optionally only the active ones.
func (s *Store) AIAlerts(ctx context.Context, userID int64, activeOnly bool) ([]AIAlert, error) {
	query := `
SELECT id, user_id, symbol, conditions, summary, created_at, active
FROM ai_alerts WHERE user_id = ?`
	if activeOnly {
		query += ` AND active = 1`
	}
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list ai alerts: %w", err)
	}
	defer rows.Close()

	var out []AIAlert
	for rows.Next() {
		var (
			a         AIAlert
			summary   sql.NullString
			createdAt sql.NullString
			active    int
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.Symbol, &a.Conditions, &summary, &createdAt, &active); err != nil {
			return nil, fmt.Errorf("scan ai alert: %w", err)
		}
		a.Summary = summary.String
		a.CreatedAt = createdAt.String
		a.Active = active != 0
		out = append(out, a)
	}
	return out, rows.Err()
}

// SetAIAlertActive pauses or resumes an AI alert.
func (s *Store) SetAIAlertActive(ctx context.Context, userID, alertID int64, active bool) error {
	val := 0
	if active {
		val = 1
	}
	if _, err := s.db.ExecContext(ctx,
		`UPDATE ai_alerts SET active = ? WHERE user_id = ? AND id = ?`, val, userID, alertID); err != nil {
		return fmt.Errorf("set ai alert active: %w", err)
	}
	return nil
}
