package common

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"openskies/airfield/internal/logging"
)

// NewRedisClient connects to the session backend. A failed ping is
// logged but the client is still returned; the pool reconnects on use.
func NewRedisClient(host, port, password string) *redis.Client {
	addr := fmt.Sprintf("%s:%s", host, port)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn("Failed to ping Redis", "addr", addr, "error", err.Error())
		return client
	}

	logging.Info("Connected to Redis", "addr", addr)
	return client
}
