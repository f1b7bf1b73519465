package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/somewherelostt/KaizenX/internal/modules/ticket/model"
)

type TicketRepository struct {
	dbWrite *gorm.DB
	dbRead  *gorm.DB
}

func NewTicketRepository(dbWrite *gorm.DB, dbRead *gorm.DB) *TicketRepository {
	return &TicketRepository{dbWrite: dbWrite, dbRead: dbRead}
}

// InsertIfNew records the ticket unless its tx hash was seen before.
// Returns whether a row was actually written, so the caller knows whether to
// bump the event's seat counter.
func (r *TicketRepository) InsertIfNew(ctx context.Context, ticket *model.Ticket) (bool, error) {
	amount, err := decimal.NewFromString(ticket.Amount)
	if err != nil {
		return false, err
	}
	amount = amount.Round(7) // match NUMERIC(20,7) column

	const sql = `
		INSERT INTO tickets (id, event_id, buyer_address, amount, tx_hash)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (tx_hash) DO NOTHING
	`
	res := r.dbWrite.WithContext(ctx).
		Exec(sql, ticket.ID, ticket.EventID, ticket.BuyerAddress, amount.String(), ticket.TxHash)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *TicketRepository) ListByEvent(ctx context.Context, eventID string) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := r.dbRead.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&tickets).Error
	return tickets, err
}
