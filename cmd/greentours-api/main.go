// README: Entry point; loads config, builds the immutable catalog/rule
// indexes, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"greentours/internal/ai"
	"greentours/internal/config"
	httptransport "greentours/internal/http"
	"greentours/internal/infra"
	gmaps "greentours/internal/maps"
	"greentours/internal/modules/aiusage"
	"greentours/internal/modules/availability"
	"greentours/internal/modules/catalog"
	"greentours/internal/modules/holiday"
	"greentours/internal/modules/pricing"
	"greentours/internal/modules/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Reference data: Postgres when configured, the built-in Fiji seed
	// otherwise. Either way it is loaded once and indexed immutably.
	zones := catalog.SeedZones()
	routes := catalog.SeedRoutes()
	rules := pricing.SeedRules()
	holidays := holiday.Seed()

	var usageSvc *aiusage.Service
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		if zones, routes, err = catalog.NewStore(dbPool).Load(ctx); err != nil {
			log.Fatalf("load catalog: %v", err)
		}
		if rules, err = pricing.NewStore(dbPool).Load(ctx); err != nil {
			log.Fatalf("load pricing rules: %v", err)
		}
		if holidays, err = holiday.NewStore(dbPool).Load(ctx); err != nil {
			log.Fatalf("load holidays: %v", err)
		}
		usageSvc = aiusage.NewService(aiusage.NewStore(dbPool))
	}

	cat := catalog.New(zones, routes)
	calendar := holiday.NewCalendar(holidays)

	var quoteCache *pricing.QuoteCache
	if cfg.Redis.Addr != "" {
		quoteCache = pricing.NewQuoteCache(infra.NewRedis(cfg.Redis.Addr))
	}

	pricingSvc := pricing.NewService(cat, rules, calendar, quoteCache, cfg.Quote)
	availabilitySvc := availability.NewService(cat, pricingSvc, cfg.Quote.SlotIntervalMin)
	searchSvc := search.NewService(cat, pricingSvc, availabilitySvc)

	var provider ai.LLMProvider
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		provider = gemini
	}

	var routeSvc *gmaps.RouteService
	var placesSvc *gmaps.PlacesService
	if cfg.Maps.APIKey != "" {
		if routeSvc, err = gmaps.NewRouteService(cfg.Maps.APIKey); err != nil {
			log.Fatalf("maps init: %v", err)
		}
		if placesSvc, err = gmaps.NewPlacesService(cfg.Maps.APIKey); err != nil {
			log.Fatalf("places init: %v", err)
		}
	}

	var verifier infra.TokenVerifier
	if cfg.Firebase.ProjectID != "" {
		if verifier, err = infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile); err != nil {
			log.Fatalf("firebase init: %v", err)
		}
	}

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Catalog:      cat,
		Pricing:      pricingSvc,
		Availability: availabilitySvc,
		Search:       searchSvc,
		Rules:        rules,
		Holidays:     holidays,
		Assistant:    provider,
		Usage:        usageSvc,
		Routes:       routeSvc,
		Places:       placesSvc,
		Verifier:     verifier,
		CORSOrigin:   cfg.HTTP.CORSOrigin,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
