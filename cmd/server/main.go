package main // Entry point package

import (
	"log"  // Logging library
	"time" // Session TTL and sweep interval

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/rifadigital/raffle/internal/auth"
	"github.com/rifadigital/raffle/internal/config"
	"github.com/rifadigital/raffle/internal/database"
	"github.com/rifadigital/raffle/internal/handler"
	"github.com/rifadigital/raffle/internal/middleware"
	"github.com/rifadigital/raffle/internal/queue"
	"github.com/rifadigital/raffle/internal/repository"
	"github.com/rifadigital/raffle/internal/router"
	"github.com/rifadigital/raffle/internal/service"
	"github.com/rifadigital/raffle/internal/session"
)

func main() {
	cfg := config.Load()

	store := openStore(cfg)
	sessionTTL := time.Duration(cfg.AccessTTLMin) * time.Minute
	sessions := session.NewManager(store, sessionTTL)
	registry := auth.NewRegistry(cfg.Sellers)
	svc := service.NewReservation(store, queue.PublishSaleCommitted)

	// Reclaim sessions whose tokens expired without a logout.
	if sessionTTL > 0 {
		go func() {
			for range time.Tick(sessionTTL) {
				if n := sessions.Sweep(); n > 0 {
					log.Printf("swept %d expired session(s)", n)
				}
			}
		}()
	}

	// Background consumer writes committed sales to logs/sales.log. It
	// reconnects forever on its own; failures never block the server.
	go func() {
		if err := queue.StartSalesConsumer(); err != nil {
			log.Printf("sales-consumer stopped: %v", err)
		}
	}()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting disabled")
	}
	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	router.RegisterPublic(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, registry, sessions), cfg.JWTSecret, sessions)
	router.RegisterSeller(e, handler.NewSaleHandler(svc), cfg.JWTSecret, sessions, rateLimit)
	router.RegisterAdmin(e, handler.NewAdminHandler(svc), cfg.JWTSecret, sessions)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s store=%s)", addr, cfg.Env, cfg.Store)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// openStore builds the configured LedgerStore adapter.
func openStore(cfg config.Config) repository.LedgerStore {
	switch cfg.Store {
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("open mysql: %v", err)
		}
		return repository.NewMySQLStore(db)
	case "sheet":
		return repository.NewSheetStore(cfg.SheetURL)
	case "memory":
		log.Printf("using in-memory ledger store; data is lost on restart")
		return repository.NewMemoryStore()
	default:
		log.Fatalf("unknown store kind %q", cfg.Store)
		return nil
	}
}
