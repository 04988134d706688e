package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// User is a row in the users table.
type User struct {
	UserID            int64
	Plan              string
	AlertsUsed        int
	LastReset         string
	AutoDeleteMinutes int
	JoinedAt          string
	ExpiryDate        string
	Username          string
}

// UpsertUser records a user the first time they interact and keeps the
// username current afterwards. Plan and counters are left untouched.
func (s *Store) UpsertUser(ctx context.Context, userID int64, username string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO users (user_id, username) VALUES (?, ?)
ON CONFLICT(user_id) DO UPDATE SET username=excluded.username`,
		userID, username)
	if err != nil {
		return fmt.Errorf("upsert user %d: %w", userID, err)
	}
	return nil
}

// GetUserPlan returns the user's plan, defaulting to "free" for unknown users.
func (s *Store) GetUserPlan(ctx context.Context, userID int64) (string, error) {
	var plan string
	err := s.db.QueryRowContext(ctx,
		`SELECT plan FROM users WHERE user_id = ?`, userID).Scan(&plan)
	if errors.Is(err, sql.ErrNoRows) {
		return "free", nil
	}
	if err != nil {
		return "", fmt.Errorf("get plan for user %d: %w", userID, err)
	}
	return plan, nil
}

// SetUserPlan updates the plan, and the expiry date when one is given.
// An empty expiry clears any previous expiry (permanent plan).
func (s *Store) SetUserPlan(ctx context.Context, userID int64, plan, expiryDate string) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO users (user_id, plan) VALUES (?, ?)`, userID, plan); err != nil {
		return fmt.Errorf("ensure user %d: %w", userID, err)
	}
	var err error
	if expiryDate != "" {
		_, err = s.db.ExecContext(ctx,
			`UPDATE users SET plan = ?, expiry_date = ? WHERE user_id = ?`,
			plan, expiryDate, userID)
	} else {
		_, err = s.db.ExecContext(ctx,
			`UPDATE users SET plan = ?, expiry_date = NULL WHERE user_id = ?`,
			plan, userID)
	}
	if err != nil {
		return fmt.Errorf("set plan for user %d: %w", userID, err)
	}
	return nil
}

// GetUser loads a full user row.
func (s *Store) GetUser(ctx context.Context, userID int64) (*User, error) {
	var (
		u          User
		lastReset  sql.NullString
		expiryDate sql.NullString
		username   sql.NullString
		joinedAt   sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
SELECT user_id, plan, alerts_used, last_reset, auto_delete_minutes, joined_at, expiry_date, username
FROM users WHERE user_id = ?`, userID).Scan(
		&u.UserID, &u.Plan, &u.AlertsUsed, &lastReset,
		&u.AutoDeleteMinutes, &joinedAt, &expiryDate, &username,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}
	u.LastReset = lastReset.String
	u.JoinedAt = joinedAt.String
	u.ExpiryDate = expiryDate.String
	u.Username = username.String
	return &u, nil
}

// SetAutoDeleteMinutes stores the user's message auto-delete preference.
func (s *Store) SetAutoDeleteMinutes(ctx context.Context, userID int64, minutes int) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO users (user_id) VALUES (?)`, userID); err != nil {
		return fmt.Errorf("ensure user %d: %w", userID, err)
	}
	if _, err := s.db.ExecContext(ctx,
		`UPDATE users SET auto_delete_minutes = ? WHERE user_id = ?`, minutes, userID); err != nil {
		return fmt.Errorf("set auto delete for user %d: %w", userID, err)
	}
	return nil
}

// CountUsers returns the total number of registered users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
