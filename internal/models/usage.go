package models

import (
	"strings"
	"time"
)

// UsageEvent is the payload bot processes place on the usage Kafka topic,
// one per handled command.
type UsageEvent struct {
	Command string    `json:"command"`
	UserID  int64     `json:"user_id"`
	UsedAt  time.Time `json:"used_at"`
}

// NewUsageEvent normalizes the command name (bare, lowercase) and stamps the
// event.
func NewUsageEvent(command string, userID int64, usedAt time.Time) UsageEvent {
	command = strings.TrimPrefix(strings.TrimSpace(command), "/")
	command = strings.ToLower(command)
	if usedAt.IsZero() {
		usedAt = time.Now().UTC()
	}
	return UsageEvent{
		Command: command,
		UserID:  userID,
		UsedAt:  usedAt.UTC(),
	}
}
