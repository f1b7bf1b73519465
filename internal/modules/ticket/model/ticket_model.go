package model

import "time"

// Ticket is one recorded purchase. TxHash is unique so the same ledger
// transaction is never counted twice.
type Ticket struct {
	ID           string    `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	EventID      string    `json:"event_id" gorm:"column:event_id;type:uuid;not null;index"`
	BuyerAddress string    `json:"buyer_address" gorm:"column:buyer_address;type:VARCHAR(64);not null"`
	Amount       string    `json:"amount" gorm:"column:amount;type:NUMERIC(20,7);not null"`
	TxHash       string    `json:"tx_hash" gorm:"column:tx_hash;type:VARCHAR(64);not null;uniqueIndex"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}
