package workers

import (
	"context"
	"encoding/json"
	"sync"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/JAFAR47dev/PricePulse2/internal/kafka"
	"github.com/JAFAR47dev/PricePulse2/internal/logging"
	"github.com/JAFAR47dev/PricePulse2/internal/models"
)

type Handler func(context.Context, *models.UsageEvent) error

// Run consumes the usage topic with workerCount concurrent readers until the
// context is cancelled.
func Run(ctx context.Context, brokers []string, topic, group string, workerCount int, handler Handler) {
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			reader := kafka.NewReader(brokers, topic, group)
			defer reader.Close()
			consume(ctx, reader, handler)
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
}

func consume(ctx context.Context, reader *kafkago.Reader, handler Handler) {
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logging.Errorf("usage worker read error: %v", err)
			continue
		}

		var event models.UsageEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logging.Errorf("usage worker unmarshal error: %v", err)
			continue
		}

		if handler != nil {
			if err := handler(ctx, &event); err != nil {
				logging.Errorf("usage worker handler error: %v", err)
			}
		}
	}
}
