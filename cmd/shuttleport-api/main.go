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

	"shuttleport/internal/config"
	httptransport "shuttleport/internal/http"
	"shuttleport/internal/infra"
	"shuttleport/internal/maps"
	"shuttleport/internal/modules/catalog"
	"shuttleport/internal/modules/pricing"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	catalogStore := catalog.NewStore(dbPool)
	catalogSvc := catalog.NewService(catalogStore)

	pricingStore := pricing.NewStore(dbPool)
	pricingSvc := pricing.NewService(catalogSvc, pricingStore)

	deps := httptransport.RouterDeps{
		Engine:  pricingSvc,
		Catalog: catalogSvc,
	}
	if cfg.Maps.APIKey != "" {
		distanceSvc, err := maps.NewDistanceService(cfg.Maps.APIKey, redisClient, cfg.Maps.CacheTTL)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		deps.Distance = distanceSvc
		deps.Places = placesSvc
	} else {
		log.Printf("GOOGLE_MAPS_API_KEY not set; /api/maps endpoints disabled")
	}

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(deps)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("shuttleport api listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
