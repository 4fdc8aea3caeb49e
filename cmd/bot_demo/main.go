package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"tripmate/internal/ai"
	"tripmate/internal/bot"
)

// Interactive terminal session against the real Gemini collaborator; type a
// trip request and answer the bot's questions.
func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	collab, err := ai.NewGeminiCollaborator(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI collaborator: %v", err)
	}
	defer collab.Close()

	userName := os.Getenv("TRIPMATE_DEMO_NAME")
	if userName == "" {
		userName = "Traveler"
	}

	engine := bot.NewEngine(collab, userName)
	for _, t := range engine.Turns() {
		printTurn(t)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text == "quit" {
			return
		}

		turns, err := engine.HandleMessage(ctx, text)
		if err != nil {
			log.Printf("error: %v", err)
			continue
		}
		for _, t := range turns {
			printTurn(t)
		}
	}
}

func printTurn(t bot.Turn) {
	switch t.Kind {
	case bot.TurnUser:
		// The user already sees their own input.
	case bot.TurnBotPrompt:
		fmt.Printf("Bot: %s\n", t.Text)
		if len(t.Options) > 0 {
			fmt.Printf("     options: %s\n", strings.Join(t.Options, " | "))
		}
	case bot.TurnBotError:
		fmt.Printf("Bot: %s\n", t.Text)
	case bot.TurnBotAnswer:
		a := t.Answer
		fmt.Printf("Bot: %s\n", a.Introduction)
		fmt.Printf("     Getting there: %s (%s %s - %s)\n",
			a.InitialTransport.Name, a.InitialTransport.Type,
			a.InitialTransport.DepartureTime, a.InitialTransport.ArrivalTime)
		fmt.Printf("     Stay: %s - %s\n", a.HotelRecommendation.Name, a.HotelRecommendation.Description)
		for _, day := range a.Itinerary {
			fmt.Printf("     Day %d:\n", day.Day)
			for _, item := range day.Activities {
				fmt.Printf("       %s  %s - %s\n", item.Time, item.Place.Name, item.Place.Description)
				if item.TransportToNext != nil {
					fmt.Printf("             next: %s (%s)\n", item.TransportToNext.Name, item.TransportToNext.Type)
				}
			}
		}
	}
}
