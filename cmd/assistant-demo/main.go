package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"greentours/internal/ai"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	contextMap := map[string]string{
		"current_time": time.Now().Format(time.RFC3339),
		"route_ids":    "nadi-airport-denarau, nadi-airport-coral-coast, nadi-airport-suva",
	}

	message := "Hi! How much is a private transfer from Nadi airport to Denarau tomorrow at 2pm for 4 of us?"
	fmt.Printf("Visitor: %s\n", message)

	result, err := provider.ParseTransferIntent(ctx, message, contextMap)
	if err != nil {
		log.Fatalf("Error parsing intent: %v", err)
	}

	fmt.Printf("Reply: %s\n", result.Reply)
	fmt.Printf("Intent: %s\n", result.Intent)
	if result.RouteID != nil {
		fmt.Printf("Route: %s\n", *result.RouteID)
	}
	if result.Date != nil && result.Time != nil {
		fmt.Printf("When: %s %s\n", *result.Date, *result.Time)
	}
	fmt.Printf("Passengers: %d\n", result.Passengers)
}
