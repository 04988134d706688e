package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/JAFAR47dev/PricePulse2/internal/ai"
	"github.com/JAFAR47dev/PricePulse2/internal/config"
	"github.com/JAFAR47dev/PricePulse2/internal/storage/sqlite"
)

func main() {
	godotenv.Load()
	text := flag.String("text", "", "The alert request to parse")
	userID := flag.Int64("user", 0, "User id to save the alert under (with -save)")
	save := flag.Bool("save", false, "Insert the parsed alert into ai_alerts")
	flag.Parse()

	if *text == "" {
		log.Fatal("Please provide an alert request using -text")
	}

	client := mustClient()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	spec, err := ai.ParseAlert(ctx, client, *text)
	if err != nil {
		log.Fatalf("Failed to parse alert: %v", err)
	}

	out, _ := json.MarshalIndent(spec, "", "  ")
	fmt.Println(string(out))

	if !*save {
		return
	}
	if *userID == 0 {
		log.Fatal("Please provide -user when using -save")
	}

	store, err := sqlite.Open(config.DBPath())
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	conditions, err := spec.ConditionsJSON()
	if err != nil {
		log.Fatalf("encode conditions: %v", err)
	}
	id, err := store.CreateAIAlert(ctx, sqlite.AIAlert{
		UserID:     *userID,
		Symbol:     spec.Symbol,
		Conditions: conditions,
		Summary:    spec.Summary,
	})
	if err != nil {
		log.Fatalf("save ai alert: %v", err)
	}
	log.Printf("saved ai alert %d for user %d", id, *userID)
}

func mustClient() *ai.Client {
	client, err := ai.New(ai.Config{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Model:   os.Getenv("OPENAI_MODEL"),
	})
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}
	return client
}
