package ratelimit

import (
	"context"
	"fmt"

	"codeberg.org/moneyapi/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const keyPrefix = "moneyapi:ratelimit"

// Store keeps the per-client counters and whatever connection backs them
type Store struct {
	limiter.Store
	client *redis.Client
}

// returns a Redis-backed store when redisURL is set, otherwise an in-process one
func NewStore(ctx context.Context, redisURL string) (*Store, error) {
	if redisURL == "" {
		return &Store{Store: memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: keyPrefix})}, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix:   keyPrefix,
		MaxRetry: 3,
	})
	if err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}

	return &Store{Store: store, client: client}, nil
}

// releases the Redis connection, if any
func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}

	return s.client.Close()
}

// limits requests per client IP. rate uses the limiter format, e.g. "300-M".
func Middleware(store *Store, rate string) (gin.HandlerFunc, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", rate, err)
	}

	return mgin.NewMiddleware(
		limiter.New(store, r),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			errors.TooManyRequests(c, "")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			errors.InternalError(c, "rate limiter unavailable", err)
		}),
	), nil
}
