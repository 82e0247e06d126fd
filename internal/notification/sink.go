package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSink appends notifications to a Redis stream for the delivery workers.
type RedisSink struct {
	client *redis.Client
	stream string
}

func NewRedisSink(client *redis.Client, stream string) *RedisSink {
	return &RedisSink{client: client, stream: stream}
}

type event struct {
	Type      string        `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
	Data      *Notification `json:"data"`
}

func (s *RedisSink) Send(ctx context.Context, n *Notification) error {
	payload, err := json.Marshal(event{
		Type:      "notification." + string(n.Channel),
		Timestamp: time.Now().UTC(),
		Data:      n,
	})
	if err != nil {
		return fmt.Errorf("marshaling notification: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"event": payload,
		},
	}

	if err := s.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("publishing notification: %w", err)
	}

	return nil
}

// LogSink only logs notifications. It stands in when no stream is configured.
type LogSink struct{}

func (LogSink) Send(_ context.Context, n *Notification) error {
	slog.Info("notification",
		"account_id", n.AccountID, "channel", n.Channel, "content", n.Content)

	return nil
}
