// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tripweaver/internal/ai"
	"tripweaver/internal/config"
	httptransport "tripweaver/internal/http"
	"tripweaver/internal/infra"
	"tripweaver/internal/maps"
	"tripweaver/internal/modules/itinerary"
	"tripweaver/internal/modules/profile"
	"tripweaver/internal/modules/trips"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("TRIPWEAVER_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	provider, closeProvider, err := ai.NewProvider(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("ai provider init: %v", err)
	}
	defer closeProvider()

	var cache *itinerary.Cache
	if cfg.Redis.CacheTTL > 0 {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		cache = itinerary.NewCache(redisClient, time.Duration(cfg.Redis.CacheTTL)*time.Second)
	}

	var enricher itinerary.Enricher
	if cfg.Maps.APIKey != "" {
		placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		enricher = placesSvc
	}

	itinerarySvc := itinerary.NewService(provider, cache, enricher)
	tripsSvc := trips.NewService(trips.NewStore(dbPool))
	profileStore := profile.NewStore(dbPool)

	router := httptransport.NewRouter(httptransport.ServerDeps{
		Itinerary: itinerarySvc,
		Trips:     tripsSvc,
		Profiles:  profileStore,
		Verifier:  verifier,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
