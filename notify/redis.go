// Package notify announces stored submissions to whoever follows them up.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"contact-service/models"

	"github.com/redis/go-redis/v9"
)

// Publisher sends a submission notification somewhere.
type Publisher interface {
	Publish(ctx context.Context, n models.SubmissionNotification) error
}

// RedisPublisher publishes notifications as JSON on a Redis channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

var _ Publisher = (*RedisPublisher)(nil)

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, n models.SubmissionNotification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.channel, err)
	}
	return nil
}
