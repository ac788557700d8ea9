package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"readnest/internal/openlibrary"
	"readnest/internal/snapshot"
)

func main() {
	log.Println("=== Open Library Sync Service ===")

	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisPassword := getEnv("REDIS_PASSWORD", "")
	redisDB := getEnvInt("REDIS_DB", 0)
	baseURL := getEnv("OPEN_LIBRARY_URL", "https://openlibrary.org")
	workers := getEnvInt("SYNC_WORKERS", 4)
	interval := getEnvDuration("SYNC_INTERVAL", 0)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	snapshots, err := snapshot.NewRedisStore(redisAddr, redisPassword, redisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer snapshots.Close()

	log.Println("Connected to Redis")

	client := openlibrary.NewClient(baseURL, logger)
	enricher := openlibrary.NewEnricher(client, snapshots, workers, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Shutdown signal received, stopping sync service...")
		cancel()
	}()

	runOnce(ctx, enricher)

	// With no interval the service is a one-shot backfill.
	if interval <= 0 {
		log.Println("Open Library sync finished")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Open Library sync running every %s. Press Ctrl+C to stop.", interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("Open Library sync service stopped")
			return
		case <-ticker.C:
			runOnce(ctx, enricher)
		}
	}
}

func runOnce(ctx context.Context, enricher *openlibrary.Enricher) {
	updated, err := enricher.Run(ctx)
	if err != nil {
		if err == context.Canceled {
			log.Println("Sync cancelled")
			return
		}
		log.Printf("Sync failed: %v", err)
		return
	}
	log.Printf("Sync complete, %d books enriched", updated)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
