package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airinventory/api"
	"github.com/Domenick1991/airinventory/config"
	"github.com/Domenick1991/airinventory/internal/airline"
	"github.com/Domenick1991/airinventory/internal/archive"
	"github.com/Domenick1991/airinventory/internal/bootstrap"
	"github.com/Domenick1991/airinventory/internal/cache"
	"github.com/Domenick1991/airinventory/internal/kafka"
	"github.com/Domenick1991/airinventory/internal/persistence"
	"github.com/Domenick1991/airinventory/internal/service/fleet"
	"github.com/Domenick1991/airinventory/internal/service/flights"
	"github.com/Domenick1991/airinventory/internal/service/tickets"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	codec, err := persistence.CodecFor(cfg.Inventory.SnapshotFormat)
	if err != nil {
		log.Fatalf("snapshot format: %v", err)
	}

	var snapshots archive.SnapshotArchive
	if cfg.Database.Host != "" {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		snapshots = archive.NewSnapshotArchive(pool)
	}

	inventory := restoreOrNew(ctx, snapshots, codec)

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Inventory.FlightsCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	fleetService := fleet.NewFleetService(inventory)
	flightService := flights.NewFlightService(inventory, redisCache, producer, cfg.Kafka.EventsTopic,
		flights.WithNotificationsTopic(cfg.Kafka.NotificationsTopic))
	ticketService := tickets.NewTicketService(inventory, redisCache, redisCache, producer,
		cfg.Kafka.EventsTopic, time.Duration(cfg.Inventory.SaleLockTTLSeconds)*time.Second)

	if snapshots != nil && cfg.Inventory.SnapshotIntervalMinutes > 0 {
		go snapshotSweep(ctx, inventory, snapshots, codec,
			time.Duration(cfg.Inventory.SnapshotIntervalMinutes)*time.Minute)
	}

	router := api.NewRouter(fleetService, flightService, ticketService)
	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func restoreOrNew(ctx context.Context, snapshots archive.SnapshotArchive, codec persistence.Codec) *airline.Airline {
	if snapshots == nil {
		return airline.New()
	}

	payload, takenAt, err := snapshots.LoadLatest(ctx, codec.Name())
	if err != nil {
		log.Printf("no snapshot restored: %v", err)
		return airline.New()
	}

	snap, err := codec.Decode(payload)
	if err != nil {
		log.Printf("decode snapshot: %v", err)
		return airline.New()
	}
	inventory, err := airline.FromSnapshot(snap)
	if err != nil {
		log.Printf("restore snapshot: %v", err)
		return airline.New()
	}
	log.Printf("restored inventory snapshot from %s", takenAt.Format(time.RFC3339))
	return inventory
}

func snapshotSweep(ctx context.Context, inventory *airline.Airline, snapshots archive.SnapshotArchive, codec persistence.Codec, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			payload, err := codec.Encode(inventory.Snapshot())
			if err != nil {
				log.Printf("encode snapshot: %v", err)
				continue
			}
			if err := snapshots.Save(ctx, codec.Name(), payload); err != nil {
				log.Printf("archive snapshot: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
