package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thansohoc/numerology-api/internal/api"
	"github.com/thansohoc/numerology-api/internal/cache"
	"github.com/thansohoc/numerology-api/internal/config"
	"github.com/thansohoc/numerology-api/internal/repository/postgres"
	"github.com/thansohoc/numerology-api/internal/service/conversation"
	"github.com/thansohoc/numerology-api/internal/service/profile"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("DATABASE_URL") != "" {
		log.Println("[config] DATABASE_URL env override active")
	}

	if cfg.Database.URL == "" {
		log.Fatal("database url is required (config database.url or DATABASE_URL)")
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		pingCancel()
		log.Fatalf("Database ping failed: %v", err)
	}
	pingCancel()
	log.Println("Connected to database")

	// Redis is optional; without it every read goes to Postgres.
	var redisClient *redis.Client
	var profileCache profile.Cache
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("Warning: Redis connection failed (%s): %v - continuing without cache", cfg.Redis.Addr, err)
			redisClient.Close()
			redisClient = nil
		} else {
			profileCache = cache.NewProfileCache(redisClient, cfg.Redis.ProfileTTL())
			log.Printf("Redis connected: %s (profile cache TTL %s)", cfg.Redis.Addr, cfg.Redis.ProfileTTL())
		}
		pingCancel()
	} else {
		log.Println("Redis not configured - profile caching disabled")
	}

	profileRepo := postgres.NewProfileRepo(db)
	conversationRepo := postgres.NewConversationRepo(db)

	profileService := profile.NewService(profileRepo, profileCache, profile.Config{
		Locale:        cfg.Numerology.Locale,
		MaxNameLength: cfg.Numerology.MaxNameLength,
		MinBirthYear:  cfg.Numerology.MinBirthYear,
	})
	conversationService := conversation.NewService(conversationRepo)

	handlers := api.NewHandlers(profileService, conversationService)
	health := api.NewHealthChecker(db, redisClient)
	router := api.SetupRoutes(handlers, health, cfg.Server.AllowedOrigins)
	server := api.NewServer(router)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if redisClient != nil {
		redisClient.Close()
	}

	log.Println("Server stopped")
}
