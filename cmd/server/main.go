package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"

	"github.com/skyreserve/booking-system/internal/database"
	"github.com/skyreserve/booking-system/internal/generator"
	"github.com/skyreserve/booking-system/internal/handlers"
	"github.com/skyreserve/booking-system/internal/router"
	"github.com/skyreserve/booking-system/internal/service"
	"github.com/skyreserve/booking-system/internal/store"
	"github.com/skyreserve/booking-system/internal/websocket"
)

const (
	DefaultPort         = "8080"
	DefaultTemporalHost = "localhost:7233"
	DefaultStateDir     = "./data"
)

func main() {
	ctx := context.Background()

	port := getEnv("API_PORT", DefaultPort)
	temporalHost := getEnv("TEMPORAL_HOST", DefaultTemporalHost)

	// Pick the persistence backend: Postgres when configured, the
	// file-backed state dir otherwise.
	st, cleanup, err := openStore(ctx)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer cleanup()

	// Create Temporal client
	temporalClient, err := client.Dial(client.Options{
		HostPort: temporalHost,
	})
	if err != nil {
		log.Fatalf("Failed to create Temporal client: %v", err)
	}
	defer temporalClient.Close()

	// Initialize services
	bookingService := service.NewBookingService(temporalClient, generator.New(), st)

	// WebSocket hub for live checkout updates
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize handlers and router
	h := handlers.NewHandler(bookingService, hub)
	r := router.NewRouter(h)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("API server starting on port %s", port)
		log.Printf("Connected to Temporal server at %s", temporalHost)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

func openStore(ctx context.Context) (store.Store, func(), error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pool, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		repo := database.NewRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Println("Using Postgres store")
		return repo, pool.Close, nil
	}

	stateDir := getEnv("STATE_DIR", DefaultStateDir)
	fs, err := store.NewFileStore(stateDir)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Using file store at %s", stateDir)
	return fs, func() {}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
