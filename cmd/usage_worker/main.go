package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/JAFAR47dev/PricePulse2/internal/config"
	"github.com/JAFAR47dev/PricePulse2/internal/kafka"
	"github.com/JAFAR47dev/PricePulse2/internal/logging"
	"github.com/JAFAR47dev/PricePulse2/internal/storage/sqlite"
	"github.com/JAFAR47dev/PricePulse2/internal/workers"
)

func main() {
	godotenv.Load()
	logging.InitFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	brokers := kafka.Brokers()
	topic := kafka.TopicFromEnv("USAGE_KAFKA_TOPIC", kafka.DefaultUsageTopic)
	group := config.String("USAGE_WORKER_GROUP", "usage-workers")
	workerCount := config.Int("USAGE_WORKERS", 2)

	analytics, err := sqlite.OpenAnalytics(config.AnalyticsDBPath())
	if err != nil {
		log.Fatalf("[usage-worker] open analytics sqlite: %v", err)
	}
	defer analytics.Close()

	if err := analytics.Init(ctx); err != nil {
		log.Fatalf("[usage-worker] init analytics schema: %v", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, 45*time.Second)
	if err := kafka.WaitForBroker(waitCtx, brokers); err != nil {
		log.Fatalf("[usage-worker] wait for broker: %v", err)
	}
	cancel()

	ensureCtx, cancelEnsure := context.WithTimeout(ctx, 30*time.Second)
	if err := kafka.EnsureTopic(ensureCtx, brokers, topic); err != nil {
		log.Printf("[usage-worker] ensure topic warning: %v", err)
	}
	cancelEnsure()

	processor := workers.NewProcessor(analytics)

	log.Printf("[usage-worker] consuming %s with group %s (%d workers)", topic, group, workerCount)
	workers.Run(ctx, brokers, topic, group, workerCount, processor.Handle)
}
