package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/leohylee/tes-companion/internal/clock"
	"github.com/leohylee/tes-companion/internal/config"
	"github.com/leohylee/tes-companion/internal/handlers/rest"
	"github.com/leohylee/tes-companion/internal/provinces"
	"github.com/leohylee/tes-companion/internal/repositories/campaigns"
	"github.com/leohylee/tes-companion/internal/repositories/characters"
	"github.com/leohylee/tes-companion/internal/repositories/overland"
	"github.com/leohylee/tes-companion/internal/services"
	"github.com/leohylee/tes-companion/internal/storage/sqlite"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalog, err := provinces.Default()
	if err != nil {
		log.Fatalf("Failed to load province catalog: %v", err)
	}
	if cfg.Server.MapsFile != "" {
		catalog, err = provinces.Load(cfg.Server.MapsFile)
		if err != nil {
			log.Fatalf("Failed to load maps file: %v", err)
		}
		log.Printf("Loaded %d maps from %s", len(catalog.Maps), cfg.Server.MapsFile)
	}

	providerConfig := &services.ProviderConfig{}
	closeStorage := configureStorage(cfg.Storage, providerConfig)
	defer closeStorage()

	handler := rest.NewHandler(&rest.HandlerConfig{
		ServiceProvider: services.NewProvider(providerConfig),
		Catalog:         catalog,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Companion API listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Failed to shut down cleanly: %v", err)
	}
}

// configureStorage fills the repositories for the chosen backend and returns
// a cleanup func. A Redis backend that cannot be reached falls back to memory.
func configureStorage(cfg config.StorageConfig, providerConfig *services.ProviderConfig) func() {
	switch cfg.Backend {
	case config.StorageRedis:
		log.Printf("Connecting to Redis at: %s", cfg.RedisURL)

		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("Failed to parse Redis URL: %v", err)
			log.Println("Falling back to in-memory repositories")
			return func() {}
		}
		redisClient := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			log.Println("Falling back to in-memory repositories")
			_ = redisClient.Close()
			return func() {}
		}
		log.Println("Successfully connected to Redis")

		providerConfig.CharacterRepository = characters.NewRedis(redisClient)
		providerConfig.CampaignRepository = campaigns.NewRedis(redisClient)
		providerConfig.OverlandRepository = overland.NewRedis(redisClient)
		log.Println("Using Redis for persistence")

		return func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}

	case config.StorageSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open SQLite database: %v", err)
		}
		useSQLite(db, providerConfig)
		log.Printf("Using SQLite at %s for persistence", cfg.SQLitePath)

		return func() {
			if err := db.Close(); err != nil {
				log.Printf("Error closing SQLite database: %v", err)
			}
		}

	default:
		log.Println("Using in-memory repositories")
		return func() {}
	}
}

func useSQLite(db *sql.DB, providerConfig *services.ProviderConfig) {
	providerConfig.CharacterRepository = characters.NewSQLite(db, clock.System{})
	providerConfig.CampaignRepository = campaigns.NewSQLite(db, clock.System{})
	providerConfig.OverlandRepository = overland.NewSQLite(db, clock.System{})
}
