package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"belleza/internal/auth"
	"belleza/internal/cart"
	"belleza/internal/commons"
	"belleza/internal/config"
	"belleza/internal/infrastructure/kafka"
	"belleza/internal/infrastructure/logger"
	"belleza/internal/infrastructure/mysql"
	redisinfra "belleza/internal/infrastructure/redis"
	"belleza/internal/inventory"
	"belleza/internal/notification"
	"belleza/internal/order"
	"belleza/internal/product"
	"belleza/internal/reservation"
	"belleza/internal/server"
	"belleza/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	redisClient, err := redisinfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("connecting to redis", zap.Error(err))
	}
	defer redisClient.Close()
	zapLogger.Info("redis connected")

	var events inventory.EventPublisher
	if cfg.Kafka.Enabled {
		writer := kafka.NewWriter(cfg.Kafka)
		defer writer.Close()
		events = inventory.NewKafkaPublisher(writer)
		zapLogger.Info("kafka producer ready", zap.String("topic", cfg.Kafka.Topic))
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authMw := auth.NewMiddleware(jwtManager, zapLogger)

	reservationModule := reservation.NewModule(db, zapLogger)
	cartModule := cart.NewModule(db, redisClient, zapLogger)

	ctrls := server.Controllers{
		Users:         user.NewModule(db, jwtManager, zapLogger),
		Products:      product.NewModule(db, reservationModule.Service, zapLogger),
		Carts:         cartModule.Controller,
		Reservations:  reservationModule.Controller,
		Inventory:     inventory.NewModule(db, events, zapLogger),
		Notifications: notification.NewModule(db, zapLogger),
		Orders:        order.NewModule(db, cartModule.Service, cfg.Checkout, zapLogger).Controller,
	}

	router := server.NewRouter(ctrls, authMw, zapLogger)
	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
