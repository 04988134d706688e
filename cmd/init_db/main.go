package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/JAFAR47dev/PricePulse2/internal/config"
	"github.com/JAFAR47dev/PricePulse2/internal/storage/sqlite"
)

// Ensures the alerts and analytics schemas exist. The bot runs this before
// anything else touches the database; a failure here must halt startup.
func main() {
	godotenv.Load()

	store, err := sqlite.Open(config.DBPath())
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		log.Fatalf("init schema: %v", err)
	}
	log.Printf("alerts schema ready at %s", store.Path())

	analytics, err := sqlite.OpenAnalytics(config.AnalyticsDBPath())
	if err != nil {
		log.Fatalf("open analytics sqlite: %v", err)
	}
	defer analytics.Close()

	if err := analytics.Init(ctx); err != nil {
		log.Fatalf("init analytics schema: %v", err)
	}
	log.Printf("analytics schema ready at %s", analytics.Path())
}
