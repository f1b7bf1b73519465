package usecase

import (
	"context"

	"github.com/somewherelostt/KaizenX/internal/infrastructure/repository"
	"github.com/somewherelostt/KaizenX/internal/modules/ticket/dto"
	"github.com/somewherelostt/KaizenX/internal/modules/ticket/model"
	"github.com/somewherelostt/KaizenX/internal/modules/ticket/store"
)

type TicketUsecase struct {
	eventRepo  *repository.EventRepository
	ticketRepo *repository.TicketRepository
	rds        *store.RedisTicketStore
}

func NewTicketUsecase(eventRepo *repository.EventRepository, ticketRepo *repository.TicketRepository, rds *store.RedisTicketStore) *TicketUsecase {
	return &TicketUsecase{eventRepo: eventRepo, ticketRepo: ticketRepo, rds: rds}
}

// Record verifies the event exists and queues the ticket for the stream
// worker. The DB write happens asynchronously; tx_hash keeps it idempotent.
func (u *TicketUsecase) Record(ctx context.Context, in dto.RecordTicketInput) (dto.RecordTicketOutput, error) {
	if _, err := u.eventRepo.GetByID(ctx, in.EventID); err != nil {
		return dto.RecordTicketOutput{}, err
	}

	if _, err := u.rds.Publish(ctx, in.EventID, in.BuyerAddress, in.Amount, in.TxHash); err != nil {
		return dto.RecordTicketOutput{}, err
	}
	return dto.RecordTicketOutput{Queued: true, TxHash: in.TxHash}, nil
}

func (u *TicketUsecase) ListByEvent(ctx context.Context, eventID string) ([]model.Ticket, error) {
	return u.ticketRepo.ListByEvent(ctx, eventID)
}
