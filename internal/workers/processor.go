package workers

import (
	"context"
	"fmt"
	"strings"

	"github.com/JAFAR47dev/PricePulse2/internal/models"
	"github.com/JAFAR47dev/PricePulse2/internal/storage/sqlite"
)

// Processor writes consumed usage events into the analytics store.
type Processor struct {
	store *sqlite.AnalyticsStore
}

func NewProcessor(store *sqlite.AnalyticsStore) *Processor {
	return &Processor{store: store}
}

// Handle validates and records one usage event.
func (p *Processor) Handle(ctx context.Context, ev *models.UsageEvent) error {
	if ev == nil {
		return fmt.Errorf("nil usage event")
	}
	command := strings.TrimPrefix(strings.TrimSpace(ev.Command), "/")
	if command == "" {
		return fmt.Errorf("usage event missing command")
	}
	if err := p.store.RecordCommandUsage(ctx, command, ev.UserID, ev.UsedAt); err != nil {
		return fmt.Errorf("record usage: %w", err)
	}
	return nil
}
