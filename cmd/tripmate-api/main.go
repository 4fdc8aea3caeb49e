// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tripmate/internal/ai"
	"tripmate/internal/bot"
	"tripmate/internal/config"
	httptransport "tripmate/internal/http"
	"tripmate/internal/infra"
	"tripmate/internal/modules/history"
	"tripmate/internal/modules/itinerary"
	"tripmate/internal/modules/quota"
	"tripmate/internal/places"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("TRIPMATE_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	var collab bot.Collaborator
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiCollaborator(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		collab = gemini
	} else {
		log.Printf("GEMINI_API_KEY not set; using the OpenAI backend")
		collab = ai.NewOpenAICollaborator(cfg.AI.OpenAIKey)
	}

	var placesSvc *places.Service
	if cfg.Maps.APIKey != "" {
		placesSvc, err = places.NewService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("places init: %v", err)
		}
	} else {
		log.Printf("MAPS_API_KEY not set; destination highlights disabled")
	}

	sessions := bot.NewManager(collab)
	quotaSvc := quota.NewService(quota.NewStore(dbPool))
	historyStore := history.NewStore(redisClient)
	itinerarySvc := itinerary.NewService(itinerary.NewStore(dbPool))

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Sessions:    sessions,
		Quota:       quotaSvc,
		History:     historyStore,
		Itineraries: itinerarySvc,
		Places:      placesSvc,
		Verifier:    verifier,
		AITimeout:   cfg.AI.Timeout,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
