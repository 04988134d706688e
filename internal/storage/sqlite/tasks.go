package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// UserTasks tracks referral and task-completion progress for the rewards
// program.
type UserTasks struct {
	UserID         int64
	InvitedCount   int
	Task2Submitted bool
	Task3Submitted bool
	RewardClaimed  bool
}

// GetUserTasks returns the user's task progress, zero-valued if none recorded.
func (s *Store) GetUserTasks(ctx context.Context, userID int64) (UserTasks, error) {
	t := UserTasks{UserID: userID}
	var task2, task3, claimed int
	err := s.db.QueryRowContext(ctx, `
SELECT invited_count, task2_submitted, task3_submitted, reward_claimed
FROM user_tasks WHERE user_id = ?`, userID).Scan(
		&t.InvitedCount, &task2, &task3, &claimed)
	if errors.Is(err, sql.ErrNoRows) {
		return t, nil
	}
	if err != nil {
		return t, fmt.Errorf("get tasks for user %d: %w", userID, err)
	}
	t.Task2Submitted = task2 != 0
	t.Task3Submitted = task3 != 0
	t.RewardClaimed = claimed != 0
	return t, nil
}

// IncrementInvites bumps the referral counter, creating the row on first use.
func (s *Store) IncrementInvites(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO user_tasks (user_id, invited_count) VALUES (?, 1)
ON CONFLICT(user_id) DO UPDATE SET invited_count = invited_count + 1`, userID)
	if err != nil {
		return fmt.Errorf("increment invites for user %d: %w", userID, err)
	}
	return nil
}

// MarkTaskSubmitted records completion of task 2 or 3.
func (s *Store) MarkTaskSubmitted(ctx context.Context, userID int64, task int) error {
	var column string
	switch task {
	case 2:
		column = "task2_submitted"
	case 3:
		column = "task3_submitted"
	default:
		return fmt.Errorf("unknown task %d", task)
	}
	stmt := fmt.Sprintf(`
INSERT INTO user_tasks (user_id, %s) VALUES (?, 1)
ON CONFLICT(user_id) DO UPDATE SET %s = 1`, column, column)
	if _, err := s.db.ExecContext(ctx, stmt, userID); err != nil {
		return fmt.Errorf("mark task %d for user %d: %w", task, userID, err)
	}
	return nil
}

// ClaimReward marks the reward claimed so it cannot be claimed twice.
func (s *Store) ClaimReward(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO user_tasks (user_id, reward_claimed) VALUES (?, 1)
ON CONFLICT(user_id) DO UPDATE SET reward_claimed = 1`, userID)
	if err != nil {
		return fmt.Errorf("claim reward for user %d: %w", userID, err)
	}
	return nil
}

// SetTrackedWallet stores the single wallet address a user tracks.
func (s *Store) SetTrackedWallet(ctx context.Context, userID int64, address string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO tracked_wallets (user_id, wallet_address) VALUES (?, ?)
ON CONFLICT(user_id) DO UPDATE SET wallet_address=excluded.wallet_address`,
		userID, address)
	if err != nil {
		return fmt.Errorf("set tracked wallet for user %d: %w", userID, err)
	}
	return nil
}

// TrackedWallet returns the user's tracked wallet address, empty if none.
func (s *Store) TrackedWallet(ctx context.Context, userID int64) (string, error) {
	var address string
	err := s.db.QueryRowContext(ctx,
		`SELECT wallet_address FROM tracked_wallets WHERE user_id = ?`, userID).Scan(&address)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get tracked wallet for user %d: %w", userID, err)
	}
	return address, nil
}
