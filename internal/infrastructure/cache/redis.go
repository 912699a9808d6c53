package cache

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"fieldops/internal/usecase/interfaces"
)

// NewRedisClient builds the Redis client backing the dashboard query cache.
//
// Env vars:
//   - REDIS_ADDR (default localhost:6379), REDIS_PASSWORD, REDIS_DB
//
// Returns nil when the server cannot be reached; callers degrade gracefully by
// skipping caching and invalidation.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	dbNum := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if n, err := strconv.Atoi(dbStr); err == nil {
			dbNum = n
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[cache][redis] unreachable addr=%s err=%v; caching disabled", addr, err)
		return nil
	}
	return client
}

// completionViewKeys are the dashboard resources that must be refetched after
// a successful dispatch. The keys mirror the dashboard's query paths.
var completionViewKeys = []string{
	"/api/tech/jobs/today",
	"/api/tech-deposits/today",
}

// DashboardInvalidator deletes the cached completion views.

type DashboardInvalidator struct {
	rdb *redis.Client
}

var _ interfaces.ICacheInvalidator = (*DashboardInvalidator)(nil)

func NewDashboardInvalidator(rdb *redis.Client) *DashboardInvalidator {
	return &DashboardInvalidator{rdb: rdb}
}

func (i *DashboardInvalidator) InvalidateCompletionViews(ctx context.Context) error {
	if i == nil || i.rdb == nil {
		return nil
	}
	if err := i.rdb.Del(ctx, completionViewKeys...).Err(); err != nil {
		return err
	}
	log.Printf("[cache][redis] invalidated completion views keys=%d", len(completionViewKeys))
	return nil
}
