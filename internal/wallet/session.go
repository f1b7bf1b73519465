// Package wallet owns the UI-visible wallet connection state: who is
// connected, through which provider, with what balance. It mediates between
// the wallet bridge and the remote ledger gateway and persists a lightweight
// session record across reloads.
package wallet

import (
	"errors"
	"time"
)

// State of the session manager.
type State string

const (
	StateDisconnected      State = "disconnected"
	StateConnecting        State = "connecting"
	StateConnected         State = "connected"
	StateRefreshingBalance State = "refreshing_balance"
)

// Supported and placeholder providers. Placeholders surface
// ErrProviderNotImplemented, distinctly from a real connect failure.
const (
	ProviderFreighter = "Freighter"
	ProviderAlbedo    = "Albedo"
	ProviderLobstr    = "Lobstr"
)

var (
	// ErrWalletUnavailable means the wallet extension/bridge is not present.
	ErrWalletUnavailable = errors.New("wallet unavailable")
	// ErrAccessDenied means the user declined the access prompt.
	ErrAccessDenied = errors.New("wallet access denied")
	// ErrProviderNotImplemented means a placeholder provider was chosen.
	ErrProviderNotImplemented = errors.New("wallet provider not implemented")
	// ErrConnectInFlight rejects a connect while another one is pending.
	ErrConnectInFlight = errors.New("wallet connect already in flight")
	// ErrBalanceUnavailable is non-fatal: the refresh failed and the prior
	// balance snapshot was retained.
	ErrBalanceUnavailable = errors.New("balance unavailable")
	// ErrSessionExpired marks a stale or manually disconnected persisted
	// record. Never surfaced by RestoreSession; silent restore just stays
	// disconnected.
	ErrSessionExpired = errors.New("wallet session expired")
)

// Session is the snapshot owned by the Manager.
type Session struct {
	Connected       bool      `json:"connected"`
	Provider        string    `json:"provider"`
	Address         string    `json:"address"`
	Balance         string    `json:"balance"`
	BalanceStale    bool      `json:"balance_stale"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

func emptySession() Session {
	return Session{Balance: "0.00"}
}
