package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"readnest/database"
	"readnest/internal/config"
	"readnest/internal/handler"
	"readnest/internal/middleware"
	"readnest/internal/openlibrary"
	"readnest/internal/repository"
	"readnest/internal/service"
	"readnest/internal/snapshot"
	"readnest/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// Accounts and refresh tokens live in Postgres.
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("could not get database handle: %v", err)
	}
	defer sqlDB.Close()

	// Reading data is mirrored to the snapshot store on every mutation.
	snapshots, cleanup, err := newSnapshotStore(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to snapshot store: %v", err)
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	readingStore := store.NewReadingStore(snapshots, logger)
	if err := readingStore.Load(ctx); err != nil {
		log.Fatalf("could not load reading data: %v", err)
	}
	readingStore.SeedIfEmpty()

	userStore := store.NewUserStore(snapshots, logger)
	userStore.SetUser(store.DefaultProfile())
	if err := userStore.Load(ctx); err != nil {
		log.Fatalf("could not load user settings: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	authService := service.NewAuthService(userRepo, tokenRepo, cfg)

	olClient := openlibrary.NewClient(cfg.OpenLibraryURL, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public surface: auth, the showcase portfolio and the weekly quote.
	api := r.Group("/api")
	handler.NewAuthHandler(authService).RegisterRoutes(api.Group("/auth"))
	handler.NewPortfolioHandler(readingStore, userStore).RegisterRoutes(api)
	handler.NewQuoteHandler().RegisterRoutes(api)

	// Everything else needs a signed-in reader or parent.
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authService))
	handler.NewBookHandler(readingStore).RegisterRoutes(authed)
	handler.NewWishlistHandler(readingStore).RegisterRoutes(authed)
	handler.NewBlogHandler(readingStore).RegisterRoutes(authed)
	handler.NewPoemHandler(readingStore).RegisterRoutes(authed)
	handler.NewChallengeHandler(readingStore).RegisterRoutes(authed)
	handler.NewSettingsHandler(userStore).RegisterRoutes(authed)
	handler.NewSearchHandler(olClient, logger).RegisterRoutes(authed)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		logger.Info("API server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received, stopping server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func newSnapshotStore(cfg *config.Config, logger *slog.Logger) (snapshot.Store, func(), error) {
	if cfg.UseMockSnapshots {
		logger.Warn("using in-memory snapshot store, data is lost on restart")
		return snapshot.NewMemoryStore(), func() {}, nil
	}

	rs, err := snapshot.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("connected to Redis snapshot store", "addr", cfg.RedisAddr)
	return rs, func() { rs.Close() }, nil
}
