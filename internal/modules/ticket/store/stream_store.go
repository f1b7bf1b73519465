package store

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const (
	// TicketStream is the write-behind queue between the API and the DB
	// worker. The API acknowledges the purchase once the entry is queued.
	TicketStream = "stream:tickets"

	EventTicket = "TICKET"
)

type RedisTicketStore struct {
	rdb redis.UniversalClient
}

func NewRedisTicketStore(rdb redis.UniversalClient) *RedisTicketStore {
	return &RedisTicketStore{rdb: rdb}
}

// Publish queues one ticket for the stream worker. Deduplication happens at
// insert time on tx_hash, so double publishes are harmless.
func (s *RedisTicketStore) Publish(ctx context.Context, eventID, buyerAddress, amount, txHash string) (string, error) {
	return s.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: TicketStream,
		Values: map[string]any{
			"type":          EventTicket,
			"event_id":      eventID,
			"buyer_address": buyerAddress,
			"amount":        amount,
			"tx_hash":       txHash,
		},
	}).Result()
}
