package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"gigbook/internal/config"
	"gigbook/internal/database"
	"gigbook/internal/handler"
	"gigbook/internal/middleware"
	"gigbook/internal/queue"
	"gigbook/internal/repository"
	"gigbook/internal/router"
)

func main() {
	// A missing .env is fine; containerized deployments inject real env vars.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("apply schema: %v", err)
	}
	cancel()

	venues := repository.NewVenueRepo(db)
	artists := repository.NewArtistRepo(db)
	shows := repository.NewShowRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler

	// Redis is optional; with no client both middlewares pass through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterSite(e, handler.NewSiteHandler(venues, artists, shows))
	router.RegisterVenues(e, handler.NewVenueHandler(venues, shows, cfg.TerritoryGroupKey))
	router.RegisterArtists(e, handler.NewArtistHandler(artists, shows))
	router.RegisterShows(e, handler.NewShowHandler(shows, venues, artists, cfg.AMQPURL))

	// The consumer owns its reconnect loop and never returns in
	// normal operation.
	go func() {
		if err := queue.StartShowConsumer(cfg.AMQPURL); err != nil {
			log.Printf("show consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, territory_group_key=%s)", addr, cfg.Env, cfg.TerritoryGroupKey)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
