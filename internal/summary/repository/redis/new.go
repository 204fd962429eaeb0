package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"ai-task-assistant/internal/summary"
	"ai-task-assistant/internal/summary/repository"
	"ai-task-assistant/pkg/log"
)

const keyPrefix = "taskassist:summary:"

type implRepository struct {
	client *goredis.Client
	ttl    time.Duration
	l      log.Logger
}

// New creates a Redis-backed summary cache. A zero ttl keeps entries forever.
func New(client *goredis.Client, ttl time.Duration, l log.Logger) repository.Repository {
	if client == nil {
		panic("summary/repository/redis: client is required")
	}
	return &implRepository{client: client, ttl: ttl, l: l}
}

// Connect opens a client and checks it with PING.
func Connect(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (r *implRepository) Get(ctx context.Context, key string) (summary.Insight, error) {
	raw, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return summary.Insight{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "summary/repository/redis.Get: %v", err)
		return summary.Insight{}, fmt.Errorf("%w: %w", repository.ErrFailedToGet, err)
	}

	var insight summary.Insight
	if err := json.Unmarshal(raw, &insight); err != nil {
		r.l.Errorf(ctx, "summary/repository/redis.Get: decode: %v", err)
		return summary.Insight{}, fmt.Errorf("%w: %w", repository.ErrFailedToGet, err)
	}
	return insight, nil
}

func (r *implRepository) Set(ctx context.Context, key string, insight summary.Insight) error {
	raw, err := json.Marshal(insight)
	if err != nil {
		return fmt.Errorf("%w: %w", repository.ErrFailedToSet, err)
	}

	if err := r.client.Set(ctx, keyPrefix+key, raw, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "summary/repository/redis.Set: %v", err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToSet, err)
	}
	return nil
}
