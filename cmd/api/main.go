package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	fileRepo "chat-activity-service/internal/activity/adapters/file"
	activityHttp "chat-activity-service/internal/activity/adapters/http/fiber"
	activityRepoPg "chat-activity-service/internal/activity/adapters/postgres"
	snapshotCodec "chat-activity-service/internal/activity/adapters/snapshot"
	activityPorts "chat-activity-service/internal/activity/core/ports"
	activityUsecase "chat-activity-service/internal/activity/core/usecase"

	queryHttp "chat-activity-service/internal/query/adapters/http/fiber"
	queryMemory "chat-activity-service/internal/query/adapters/memory"
	queryUsecase "chat-activity-service/internal/query/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "chat-activity-service/docs"
)

func main() {
	// Config
	_ = godotenv.Load()

	storeKey := getenv("STORE_KEY", "workspace")
	listenAddr := getenv("LISTEN_ADDR", ":8080")
	snapshotDir := getenv("SNAPSHOT_DIR", "./data")
	snapshotInterval := getenvDuration("SNAPSHOT_INTERVAL", 5*time.Minute)

	// Snapshot storage: Postgres when a DSN is configured, otherwise
	// one JSON document per store key on disk.
	var snapshotRepo activityPorts.SnapshotRepositoryPort

	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatalf("failed to open postgres: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(20)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err := db.Ping(); err != nil {
			log.Fatalf("failed to ping postgres: %v", err)
		}

		snapshotRepo = activityRepoPg.NewSnapshotRepository(activityRepoPg.NewSQLDB(db))
		log.Println("snapshots: postgres")
	} else {
		snapshotRepo = fileRepo.NewSnapshotRepository(snapshotDir)
		log.Printf("snapshots: %s", snapshotDir)
	}

	// One mutex serializes ingestion, snapshotting and store reads.
	var mu sync.RWMutex

	codec := snapshotCodec.NewCodec()
	snapshotUC := activityUsecase.NewSnapshotUseCase(&mu, snapshotRepo, codec, storeKey)

	// A missing snapshot starts an empty store; a corrupt one is fatal.
	store, err := snapshotUC.Restore(context.Background())
	if err != nil {
		log.Fatalf("failed to restore store %q: %v", storeKey, err)
	}
	log.Printf("store %q: %d days, %d users, %d channels",
		storeKey, len(store.Days), len(store.AllTimeUsers), len(store.AllTimeChannels))

	// Usecases
	registerUC := activityUsecase.NewRegisterEventUseCase(&mu, store)

	reader := queryMemory.NewReader(&mu, store)
	heatmapUC := queryUsecase.NewGetHeatmapUseCase(reader)
	hoursUC := queryUsecase.NewGetHourlyDistributionUseCase(reader)
	topUC := queryUsecase.NewGetTopRankedUseCase(reader)
	recentUC := queryUsecase.NewGetRecentRankedUseCase(reader)
	summaryUC := queryUsecase.NewGetSummaryUseCase(reader)
	activeUC := queryUsecase.NewGetActiveUsersUseCase(reader)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	// ingest endpoints
	eventsHandler := activityHttp.NewEventHandler(registerUC)
	app.Post("/events", eventsHandler.CreateEvent)
	app.Post("/events/bulk", eventsHandler.BulkCreateEvents)

	// stats endpoints
	statsHandler := queryHttp.NewStatsHandler(heatmapUC, hoursUC, topUC, recentUC, summaryUC, activeUC)
	app.Get("/stats/:scope/:id/heatmap", statsHandler.GetHeatmap)
	app.Get("/stats/:scope/:id/hours", statsHandler.GetHours)
	app.Get("/stats/:scope/:id/top", statsHandler.GetTop)
	app.Get("/stats/:scope/:id/recent", statsHandler.GetRecent)
	app.Get("/stats/:scope/:id/summary", statsHandler.GetSummary)
	app.Get("/channels/:id/active", statsHandler.GetActiveUsers)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Periodic snapshots
	snapshotDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(snapshotInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := snapshotUC.Persist(context.Background()); err != nil {
					log.Printf("snapshot failed: %v", err)
				}
			case <-snapshotDone:
				return
			}
		}
	}()

	// Graceful shutdown
	go func() {
		if err := app.Listen(listenAddr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", listenAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")
	close(snapshotDone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	// Final snapshot so a clean shutdown never loses events.
	if err := snapshotUC.Persist(context.Background()); err != nil {
		log.Printf("final snapshot failed: %v", err)
	}

	log.Println("server exiting")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}
