package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/stayhub/suites-api/internal/config"
	"github.com/stayhub/suites-api/internal/database"
	"github.com/stayhub/suites-api/internal/handler"
	"github.com/stayhub/suites-api/internal/middleware"
	"github.com/stayhub/suites-api/internal/queue"
	"github.com/stayhub/suites-api/internal/repository"
	"github.com/stayhub/suites-api/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()
	rlCfg := config.LoadRateLimitConfig()

	// Monetary rates serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema bootstrap failed: %v", err)
	}
	cancel()

	suiteRepo := repository.NewSuiteRepo(db)
	amenityRepo := repository.NewAmenityRepo(db)
	linkRepo := repository.NewLinkRepo(db)
	userRepo := repository.NewUserRepo(db)

	events := queue.NewPublisher(cfg.AMQPURL)
	if cfg.AMQPURL != "" {
		go queue.StartCatalogConsumer(cfg.AMQPURL)
	}

	e := echo.New()
	e.HideBanner = true
	if rdb := config.NewRedisClient(); rdb != nil {
		e.Use(middleware.RateLimit(rlCfg, rdb))
	} else if rlCfg.Enabled {
		log.Println("redis unreachable, rate limiting disabled")
	}

	router.Register(e,
		handler.NewSuiteHandler(suiteRepo, amenityRepo, linkRepo, events),
		handler.NewAmenityHandler(amenityRepo, events),
		handler.NewAuthHandler(cfg, userRepo),
		cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
