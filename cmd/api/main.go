package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/drevmart/drevmart-backend/api/routes"
	authsvc "github.com/drevmart/drevmart-backend/internal/auth"
	"github.com/drevmart/drevmart-backend/internal/cart"
	"github.com/drevmart/drevmart-backend/internal/catalog"
	"github.com/drevmart/drevmart-backend/internal/orders"
	"github.com/drevmart/drevmart-backend/internal/search"
	"github.com/drevmart/drevmart-backend/pkg/config"
	"github.com/drevmart/drevmart-backend/pkg/db"
	"github.com/drevmart/drevmart-backend/pkg/logger"
	"github.com/drevmart/drevmart-backend/pkg/metrics"
	"github.com/drevmart/drevmart-backend/pkg/migrate"
	"github.com/drevmart/drevmart-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var (
		store   catalog.Store
		dbP     db.Pinger
		redisP  redis.Pinger
		history *search.History
	)

	if cfg.FeatureFlags.MockCatalog {
		fixtureStore, err := catalog.NewFixtureStore(cfg.Catalog.MockLatency)
		if err != nil {
			logg.Error(context.Background(), "failed to build fixture catalog", err)
			os.Exit(1)
		}
		store = fixtureStore
		logg.Info(context.Background(), "catalog running on fixtures")
	} else {
		dbClient, err := db.New(context.Background(), cfg.DB, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap database", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}()

		if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
			logg.Error(context.Background(), "failed to run dev migrations", err)
			os.Exit(1)
		}

		store = catalog.NewRepository(dbClient)
		dbP = dbClient
	}

	if cfg.Redis.URL != "" || cfg.Redis.Address != "" {
		redisClient, err := redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()

		history = search.NewHistory(search.NewRedisHistoryStore(redisClient))
		redisP = redisClient
	} else {
		history = search.NewHistory(search.NewMemoryHistoryStore())
		logg.Warn(context.Background(), "redis not configured, search history is in-memory only")
	}

	catalogService := catalog.NewService(store, logg)
	searchService := search.NewService(store, history, logg)
	cartService := cart.NewService(store, cart.DefaultTiers(), cfg.Catalog.MockLatency, logg)
	authService := authsvc.NewService(cfg.JWT, cfg.Password, logg)
	ordersService := orders.NewService(cartService, logg)

	httpMetrics := metrics.NewHTTPMetrics()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg, logg, httpMetrics, dbP, redisP,
			catalogService, searchService, cartService, authService, ordersService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
