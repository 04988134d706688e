package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/JAFAR47dev/PricePulse2/internal/models"
)

// PublishUsageEvents places command-usage events on the usage topic. Bot
// processes call this fire-and-forget after handling a command; the usage
// worker drains the topic into the analytics database.
func PublishUsageEvents(ctx context.Context, writer *kafka.Writer, events []models.UsageEvent) error {
	if writer == nil || len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		if ev.Command == "" {
			continue
		}
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("marshal usage event %s: %w", ev.Command, err)
		}
		key := fmt.Sprintf("%d-%s-%d", ev.UserID, ev.Command, ev.UsedAt.UnixNano())
		msgs = append(msgs, kafka.Message{Key: []byte(key), Value: payload})
	}

	if len(msgs) == 0 {
		return nil
	}
	return writer.WriteMessages(ctx, msgs...)
}
