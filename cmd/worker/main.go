package main

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/skyreserve/booking-system/internal/activities"
	"github.com/skyreserve/booking-system/internal/database"
	"github.com/skyreserve/booking-system/internal/generator"
	"github.com/skyreserve/booking-system/internal/service"
	"github.com/skyreserve/booking-system/internal/store"
	"github.com/skyreserve/booking-system/internal/workflows"
)

func main() {
	ctx := context.Background()

	temporalHost := getEnv("TEMPORAL_HOST", "localhost:7233")

	// The worker persists bookings through the same store as the server.
	st, cleanup, err := openStore(ctx)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer cleanup()

	// Connect to Temporal
	log.Printf("Connecting to Temporal at %s...", temporalHost)
	c, err := client.Dial(client.Options{
		HostPort: temporalHost,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Temporal: %v", err)
	}
	defer c.Close()
	log.Println("Connected to Temporal")

	// Create worker
	w := worker.New(c, service.TaskQueue, worker.Options{})

	// Register workflows
	w.RegisterWorkflow(workflows.CheckoutWorkflow)

	// Create and register activities
	acts := activities.NewActivities(st, generator.New())
	w.RegisterActivityWithOptions(acts.ProcessPayment, activity.RegisterOptions{Name: "ProcessPayment"})
	w.RegisterActivityWithOptions(acts.PersistBooking, activity.RegisterOptions{Name: "PersistBooking"})
	w.RegisterActivityWithOptions(acts.SendConfirmation, activity.RegisterOptions{Name: "SendConfirmation"})

	// Start worker
	log.Println("Starting Temporal worker...")
	err = w.Run(worker.InterruptCh())
	if err != nil {
		log.Fatalf("Worker failed: %v", err)
	}
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

	stateDir := getEnv("STATE_DIR", "./data")
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
