package main

import (
	"context"
	"log"
	"time"

	"parcel-lookup/internal/core/cache"
	"parcel-lookup/internal/core/config"
	"parcel-lookup/internal/core/logger"
	"parcel-lookup/internal/core/server"
	orderadapter "parcel-lookup/internal/features/orders/adapters"
	orderhandler "parcel-lookup/internal/features/orders/handler"
	"parcel-lookup/internal/features/orders/ports"
	orderservice "parcel-lookup/internal/features/orders/service"
	trackinghandler "parcel-lookup/internal/features/tracking/handler"
	trackingservice "parcel-lookup/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title Parcel Lookup API
// @version 1.0
// @description Parcel-tracking lookup: derived delivery status, explanations and ZIP-gated shipment details by order number.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Shipment dataset is the single fetch boundary.
	fileStore, err := orderadapter.NewFileStore(cfg.Shipments.File)
	if err != nil {
		l.Fatal("Failed to load shipment dataset", zap.Error(err))
	}

	var store ports.ShipmentStore = fileStore
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
		if err != nil {
			l.Fatal("Failed to create Redis cache", zap.Error(err))
		}
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisCache.Ping(ctx); err != nil {
			l.Fatal("Redis health check failed", zap.Error(err))
		}
		l.Info("Redis connection verified")

		ttl := time.Duration(cfg.Redis.CacheTTLSeconds) * time.Second
		store = orderadapter.NewCachedStore(fileStore, redisCache, ttl)
	}

	// Initialize Lookup Service & Handler
	lookupService := orderservice.NewLookupService(store)
	orderHandler := orderhandler.NewOrderHandler(lookupService)

	// Initialize Tracking Service & Handler
	trackingSvc := trackingservice.NewTrackingService(lookupService)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/orders/:orderNumber", orderHandler.GetOrders)
	srv.App.Get("/orders/:orderNumber/status", trackingHdl.GetStatus)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
