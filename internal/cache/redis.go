package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/airinventory/config"
	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.FlightInfo, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.FlightInfo
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.FlightInfo) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

// InvalidateFlights drops the cached listing after a schedule, sale or
// completion changed seat counts or flags.
func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

// AcquireSaleLock takes a best-effort cross-instance lock on one flight
// occurrence. The in-process flight mutex already serializes sales within
// one instance; this keeps replicas of the same logical inventory from
// interleaving.
func (c *RedisCache) AcquireSaleLock(ctx context.Context, key domain.FlightKey, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, saleLockKey(key), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseSaleLock(ctx context.Context, key domain.FlightKey) error {
	return c.client.Del(ctx, saleLockKey(key)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func saleLockKey(key domain.FlightKey) string {
	return fmt.Sprintf("lock:flight:%s:%s", key.RouteCode, key.Date)
}
