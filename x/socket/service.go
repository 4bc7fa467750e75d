package socket

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/totegamma/chronicle/core"
)

type service struct {
	rdb *redis.Client
}

// NewService creates an event service publishing on redis pub/sub
func NewService(rdb *redis.Client) core.EventService {
	return &service{rdb}
}

// Publish sends the event to every socket listening on its channel
func (s *service) Publish(ctx context.Context, event core.Event) error {
	ctx, span := tracer.Start(ctx, "Socket.Service.Publish")
	defer span.End()

	if event.Channel == "" {
		event.Channel = core.MapChannel(event.MapID)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = s.rdb.Publish(ctx, event.Channel, payload).Err()
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
