package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"BrewStore/internal/cart"
	"BrewStore/internal/catalog"
	"BrewStore/internal/storefront"
	"BrewStore/internal/wishlist"
	"BrewStore/pkg/kit"
)

const service = "storefront"

func main() {
	cfg, err := storefront.LoadConfig()
	if err != nil {
		kit.NewLogger(service, "info").Fatal("load config", zap.Error(err))
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	stores, cleanup, err := buildStores(cfg, log)
	if err != nil {
		log.Fatal("build stores", zap.Error(err))
	}
	defer cleanup()

	h := storefront.NewHandler(stores, storefront.HTTPDeps{
		Log:      log,
		Service:  service,
		Registry: prometheus.NewRegistry(),

		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(fmt.Sprintf(":%d", cfg.Port), h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func buildStores(cfg *storefront.Config, log *zap.Logger) (storefront.Stores, func(), error) {
	switch {
	case cfg.DatabaseURL != "":
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return storefront.Stores{}, nil, fmt.Errorf("connect postgres: %w", err)
		}
		log.Info("using postgres stores")
		return storefront.Stores{
			Catalog:  catalog.NewPostgresStore(pool),
			Cart:     cart.NewPostgresStore(pool),
			Wishlist: wishlist.NewPostgresStore(pool),
		}, pool.Close, nil

	case cfg.RedisAddr != "":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		log.Info("using redis cart/wishlist stores", zap.String("addr", cfg.RedisAddr))
		return storefront.Stores{
			Catalog:  catalog.NewStore(),
			Cart:     cart.NewRedisStore(client),
			Wishlist: wishlist.NewRedisStore(client),
		}, func() { _ = client.Close() }, nil

	default:
		log.Info("using in-memory stores")
		return storefront.Stores{
			Catalog:  catalog.NewStore(),
			Cart:     cart.NewStore(),
			Wishlist: wishlist.NewStore(),
		}, func() {}, nil
	}
}
