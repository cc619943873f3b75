package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

// Publisher is the subset of the redis client used by the bridge.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// NewRedisClient creates a redis client for the bridge.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Channel returns the redis channel a signal is published on.
func Channel(prefix, park string, event Event) string {
	return fmt.Sprintf("%s:%s:%s", prefix, park, event)
}

// RedisBridge forwards bus signals to redis pub/sub as JSON.
type RedisBridge struct {
	client Publisher
	prefix string
	logger *zap.Logger
}

// NewRedisBridge creates a bridge publishing under prefix.
func NewRedisBridge(client Publisher, prefix string, logger *zap.Logger) *RedisBridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisBridge{client: client, prefix: prefix, logger: logger}
}

// Attach subscribes the bridge to every event on bus.
func (r *RedisBridge) Attach(bus *Bus) *Subscription {
	return bus.SubscribeAll(r.Forward)
}

// Forward publishes one signal. Failures are logged, never returned.
func (r *RedisBridge) Forward(sig Signal) {
	payload, err := json.Marshal(sig)
	if err != nil {
		r.logger.Error("Failed to encode signal", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	channel := Channel(r.prefix, sig.Park, sig.Event)
	if err := r.client.Publish(ctx, channel, string(payload)).Err(); err != nil {
		r.logger.Warn("Failed to publish signal",
			zap.String("channel", channel),
			zap.String("cycle_id", sig.CycleID),
			zap.Error(err))
	}
}
