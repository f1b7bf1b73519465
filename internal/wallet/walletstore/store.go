// Package walletstore persists the lightweight wallet session record across
// application reloads, plus the "manually disconnected" marker that
// suppresses silent restore.
package walletstore

import (
	"context"
	"errors"
	"time"
)

// Fixed record names, shared by every backend.
const (
	RecordKey       = "kaizen-wallet"
	DisconnectedKey = "kaizen-wallet-disconnected"
)

// ErrNotFound means no session record is persisted.
var ErrNotFound = errors.New("wallet session record not found")

// Record is the serialized session snapshot. Balance is not persisted; it is
// refreshed from the ledger on restore.
type Record struct {
	Provider string    `json:"provider"`
	Address  string    `json:"address"`
	SavedAt  time.Time `json:"saved_at"`
}

// Age reports how old the record is.
func (r Record) Age(now time.Time) time.Duration {
	return now.Sub(r.SavedAt)
}

// Store is client-local storage for exactly one session record. Writes are
// last-writer-wins; only one logical session exists per client.
type Store interface {
	Load(ctx context.Context) (Record, error)
	Save(ctx context.Context, rec Record) error
	Delete(ctx context.Context) error

	// SetDisconnected persists the manual-disconnect marker.
	SetDisconnected(ctx context.Context, disconnected bool) error
	Disconnected(ctx context.Context) (bool, error)
}
