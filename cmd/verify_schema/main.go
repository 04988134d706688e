package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/JAFAR47dev/PricePulse2/internal/config"
	"github.com/JAFAR47dev/PricePulse2/internal/storage/sqlite"
)

func main() {
	godotenv.Load()

	store, err := sqlite.Open(config.DBPath())
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	missing, err := store.VerifySchema(context.Background())
	if err != nil {
		log.Fatalf("verify schema: %v", err)
	}
	if len(missing) > 0 {
		log.Fatalf("schema incomplete at %s, missing: %v (run init_db)", store.Path(), missing)
	}
	log.Printf("schema complete at %s", store.Path())
}
