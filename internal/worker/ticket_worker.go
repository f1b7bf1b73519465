package worker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/somewherelostt/KaizenX/internal/infrastructure/repository"
	"github.com/somewherelostt/KaizenX/internal/modules/ticket/model"
	"github.com/somewherelostt/KaizenX/internal/modules/ticket/store"
	"github.com/somewherelostt/KaizenX/pkg/logger"
)

type Options struct {
	Stream       string        // default: store.TicketStream
	Group        string        // default: "tickets_cg"
	Block        time.Duration // default: 5s
	Batch        int64         // default: 100
	MinIdle      time.Duration // default: 30s
	TrimAfterAck bool          // optional: XDEL after ack
}

// TicketStreamWorker drains the ticket stream into Postgres. Inserts are
// keyed on tx_hash, so redelivered messages never double-count a seat.
type TicketStreamWorker struct {
	rdb        redis.UniversalClient
	ticketRepo *repository.TicketRepository
	eventRepo  *repository.EventRepository
	opt        Options
}

func NewTicketStreamWorker(rdb redis.UniversalClient, ticketRepo *repository.TicketRepository, eventRepo *repository.EventRepository, opt *Options) *TicketStreamWorker {
	o := Options{
		Stream:  store.TicketStream,
		Group:   "tickets_cg",
		Block:   5 * time.Second,
		Batch:   100,
		MinIdle: 30 * time.Second,
	}
	if opt != nil {
		if opt.Stream != "" {
			o.Stream = opt.Stream
		}
		if opt.Group != "" {
			o.Group = opt.Group
		}
		if opt.Block != 0 {
			o.Block = opt.Block
		}
		if opt.Batch != 0 {
			o.Batch = opt.Batch
		}
		if opt.MinIdle != 0 {
			o.MinIdle = opt.MinIdle
		}
		o.TrimAfterAck = opt.TrimAfterAck
	}
	return &TicketStreamWorker{rdb: rdb, ticketRepo: ticketRepo, eventRepo: eventRepo, opt: o}
}

func (w *TicketStreamWorker) ensureGroup(ctx context.Context) {
	err := w.rdb.XGroupCreateMkStream(ctx, w.opt.Stream, w.opt.Group, "$").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		logger.Errorf("❌ XGroupCreateMkStream error: %v", err)
	} else if err == nil {
		logger.Infof("✅ Created group %q on %s", w.opt.Group, w.opt.Stream)
	}
}

func (w *TicketStreamWorker) reclaimPending(ctx context.Context, consumer string) {
	start := "0-0"
	for {
		msgs, next, err := w.rdb.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   w.opt.Stream,
			Group:    w.opt.Group,
			Consumer: consumer,
			MinIdle:  w.opt.MinIdle,
			Start:    start,
			Count:    w.opt.Batch,
		}).Result()
		if err != nil {
			if err != redis.Nil {
				logger.Errorf("❌ XAutoClaim error: %v", err)
			}
			return
		}
		if len(msgs) == 0 {
			return
		}
		for _, m := range msgs {
			w.handleMessage(ctx, consumer, m)
		}
		start = next
	}
}

func (w *TicketStreamWorker) handleMessage(ctx context.Context, consumer string, m redis.XMessage) {
	f := m.Values

	ev, _ := getStr(f, "type")
	if ev != store.EventTicket {
		w.ack(ctx, m.ID)
		return
	}

	eventID, _ := getStr(f, "event_id")
	buyer, _ := getStr(f, "buyer_address")
	amount, _ := getStr(f, "amount")
	txHash, _ := getStr(f, "tx_hash")
	if eventID == "" || txHash == "" {
		logger.Errorf("❌ worker dropping malformed message %s", m.ID)
		w.ack(ctx, m.ID)
		return
	}

	ticket := &model.Ticket{
		ID:           uuid.NewString(),
		EventID:      eventID,
		BuyerAddress: buyer,
		Amount:       amount,
		TxHash:       txHash,
	}
	applied, err := w.ticketRepo.InsertIfNew(ctx, ticket)
	if err != nil {
		logger.Errorf("❌ InsertIfNew error (tx=%s msg=%s): %v", txHash, m.ID, err)
		return // no ack -> retry later
	}

	if applied {
		if err := w.eventRepo.IncrementSeatsTaken(ctx, eventID); err != nil {
			logger.Errorf("❌ IncrementSeatsTaken error (event=%s msg=%s): %v", eventID, m.ID, err)
			// ticket row exists; the dedup on tx_hash makes the retry safe
			return
		}
	}

	w.ack(ctx, m.ID)
	logger.Infof("✅ Handled message %s for consumer %s", m.ID, consumer)
}

func (w *TicketStreamWorker) ack(ctx context.Context, id string) {
	if err := w.rdb.XAck(ctx, w.opt.Stream, w.opt.Group, id).Err(); err != nil {
		logger.Errorf("❌ XAck error (msg=%s): %v", id, err)
	}
	if w.opt.TrimAfterAck {
		_ = w.rdb.XDel(ctx, w.opt.Stream, id).Err()
	}
}

func getStr(m map[string]interface{}, key string) (string, bool) {
	if v, ok := m[key]; ok {
		switch t := v.(type) {
		case string:
			return t, true
		case []byte:
			return string(t), true
		}
	}
	return "", false
}

func (w *TicketStreamWorker) Run(ctx context.Context, consumerName string) {
	w.ensureGroup(ctx)
	w.reclaimPending(ctx, consumerName)

	backoff := 200 * time.Millisecond
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		res, err := w.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    w.opt.Group,
			Consumer: consumerName,
			Streams:  []string{w.opt.Stream, ">"},
			Count:    w.opt.Batch,
			Block:    w.opt.Block,
		}).Result()
		if err != nil {
			if err != redis.Nil {
				logger.Errorf("❌ XReadGroup error: %v", err)
				time.Sleep(backoff)
				if backoff < 5*time.Second {
					backoff *= 2
				}
			}
			continue
		}
		backoff = 200 * time.Millisecond
		for _, strm := range res {
			for _, msg := range strm.Messages {
				w.handleMessage(ctx, consumerName, msg)
			}
		}
	}
}

func ConsumerName(instance string, i int) string {
	if instance == "" {
		instance = "app"
	}
	return fmt.Sprintf("%s-%d", instance, i)
}
