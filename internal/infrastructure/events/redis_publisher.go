// Package events fans domain events out to per-shop Redis pub/sub channels.
// Subscribers (websocket gateways, notification workers) listen on
// shop:<shopID>:events.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alexsagar/teantea-api/internal/domain/event"
	"github.com/alexsagar/teantea-api/pkg/logger"
)

const publishTimeout = 2 * time.Second

// RedisPublisher implements event.Publisher over Redis pub/sub. Delivery is
// best-effort: failures are logged and swallowed, never returned to the caller.
type RedisPublisher struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisPublisher builds the publisher around an existing client.
func NewRedisPublisher(client *redis.Client, log *logger.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, log: log}
}

// Channel returns the pub/sub channel name for a shop.
func Channel(shopID string) string {
	return "shop:" + shopID + ":events"
}

// Publish implements event.Publisher.
func (p *RedisPublisher) Publish(ctx context.Context, shopID string, ev event.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		p.log.Error().Err(err).Str("type", ev.Type).Msg("encode event")
		return
	}

	// Detach from the request context so an aborted request does not drop the
	// event; bound the publish itself instead.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.client.Publish(ctx, Channel(shopID), payload).Err(); err != nil {
		p.log.Warn().Err(err).
			Str("shop_id", shopID).
			Str("type", ev.Type).
			Msg("publish event")
	}
}

// Ping verifies connectivity at startup.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
