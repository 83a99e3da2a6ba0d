package main // Entry point package

import (
	"context" // Request-scoped cancellation
	"log"     // Logging library

	"github.com/joho/godotenv"    // Loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/debtiq/debtiq/internal/auth"       // Credential providers
	"github.com/debtiq/debtiq/internal/config"     // Internal config loader
	"github.com/debtiq/debtiq/internal/database"   // MySQL connection pool
	"github.com/debtiq/debtiq/internal/handler"    // HTTP handlers
	"github.com/debtiq/debtiq/internal/middleware" // HTTP middleware
	"github.com/debtiq/debtiq/internal/model"      // Domain types
	"github.com/debtiq/debtiq/internal/queue"      // Activity event consumer
	"github.com/debtiq/debtiq/internal/repository" // Record stores
	"github.com/debtiq/debtiq/internal/router"     // Internal router setup
	"github.com/debtiq/debtiq/internal/session"    // Server-side session store
	"github.com/debtiq/debtiq/internal/utils"      // Token helpers
)

func main() {
	_ = godotenv.Load() // Load .env if present; ignore when absent
	cfg := config.Load()

	// Pick the record source.  The memory driver ships with seeded demo
	// data and a slow demo credential provider; the mysql driver is the
	// real backend with bcrypt verification.
	var (
		clients  repository.ClientStore
		vendors  repository.VendorStore
		users    repository.UserStore
		tokens   repository.TokenStore
		provider auth.Provider
	)
	switch cfg.StoreDriver {
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		clients = repository.NewMySQLClientStore(db)
		vendors = repository.NewMySQLVendorStore(db)
		users = repository.NewMySQLUserStore(db)
		tokens = repository.NewMySQLTokenStore(db)
		provider = auth.NewStoreProvider(users, cfg.BcryptCost)
	default:
		clients = repository.NewMemoryClientStore(repository.SeedClients())
		vendors = repository.NewMemoryVendorStore(repository.SeedVendors())
		users = repository.NewMemoryUserStore(repository.SeedUsers())
		tokens = repository.NewMemoryTokenStore()
		provider = auth.NewMemoryProvider(users, cfg.AuthDelay, cfg.BcryptCost)
	}

	// Sessions survive restarts when Redis is reachable; otherwise they
	// fall back to process memory and every boot starts signed out.
	var kv session.KV
	rdb := config.NewRedisClient()
	if rdb != nil {
		kv = session.NewRedisKV(rdb)
	} else {
		log.Println("redis unavailable, sessions held in memory only")
		kv = session.NewMemoryKV()
	}
	sessions := session.NewStore(provider, kv, func(u model.User) (string, error) {
		at, err := utils.NewAccessToken(cfg.JWTSecret, u.ID, u.Email, u.Role, cfg.AccessTTLMin)
		return at.Token, err
	})
	sessions.Initialize(context.Background())

	// Activity events are consumed off RabbitMQ into the audit log.  The
	// consumer reconnects on its own; a startup failure is not fatal.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer: %v", err)
		}
	}()

	e := echo.New()
	authH := handler.NewAuthHandler(cfg, sessions, users, tokens)
	clientH := handler.NewClientHandler(clients)
	vendorH := handler.NewVendorHandler(vendors)

	router.RegisterRoutes(e) // Register application routes
	if rdb != nil {
		router.RegisterAuth(e, authH, cfg.JWTSecret, middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	} else {
		router.RegisterAuth(e, authH, cfg.JWTSecret)
	}
	router.RegisterAPI(e, router.APIDeps{
		Cfg:       cfg,
		Auth:      authH,
		Clients:   clientH,
		Vendors:   vendorH,
		Dashboard: handler.NewDashboardHandler(clients, vendors),
		Users:     handler.NewUserHandler(users),
		Redis:     rdb,
	})
	router.RegisterPages(e, sessions, clientH, vendorH)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
