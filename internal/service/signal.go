package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
)

// EventChannel is the redis channel carrying election audit events.
const EventChannel = "darmasr:events"

// SignalService publishes election audit events over redis pub/sub so
// operators and sibling processes can follow state changes.
type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func (s *SignalService) Publish(ctx context.Context, event domain.Event) error {
	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, EventChannel, jsonstr).Err()
	if err != nil {
		return err
	}

	return nil
}
