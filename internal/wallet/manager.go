package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/somewherelostt/KaizenX/internal/wallet/bridge"
	"github.com/somewherelostt/KaizenX/internal/wallet/walletstore"
	"github.com/somewherelostt/KaizenX/pkg/helper"
	"github.com/somewherelostt/KaizenX/pkg/logger"
)

// Gateway is the slice of the remote ledger gateway the session manager
// needs: a balance snapshot and account id validation.
type Gateway interface {
	NativeBalance(ctx context.Context, accountID string) (string, error)
	ValidAddress(addr string) bool
}

const (
	defaultFreshnessWindow = 24 * time.Hour
	defaultRestoreTimeout  = 5 * time.Second
)

// Options tune the restore behavior. Zero values fall back to defaults.
type Options struct {
	FreshnessWindow time.Duration
	RestoreTimeout  time.Duration
}

// Manager is the single source of truth for the wallet session. It is
// constructed explicitly and passed to whatever needs it; there is no
// package-level instance.
type Manager struct {
	bridge  bridge.Bridge
	gateway Gateway
	store   walletstore.Store

	freshness      time.Duration
	restoreTimeout time.Duration
	now            func() time.Time

	mu      sync.Mutex
	state   State
	session Session
}

func NewManager(b bridge.Bridge, g Gateway, store walletstore.Store, opts Options) *Manager {
	if opts.FreshnessWindow <= 0 {
		opts.FreshnessWindow = defaultFreshnessWindow
	}
	if opts.RestoreTimeout <= 0 {
		opts.RestoreTimeout = defaultRestoreTimeout
	}
	return &Manager{
		bridge:         b,
		gateway:        g,
		store:          store,
		freshness:      opts.FreshnessWindow,
		restoreTimeout: opts.RestoreTimeout,
		now:            time.Now,
		state:          StateDisconnected,
		session:        emptySession(),
	}
}

// Session returns a copy of the current snapshot.
func (m *Manager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// RestoreSession attempts a silent restore from the persisted record. Every
// failure path is silent: the session just stays disconnected. Only storage
// I/O errors are reported.
func (m *Manager) RestoreSession(ctx context.Context) error {
	m.mu.Lock()
	if m.state != StateDisconnected {
		m.mu.Unlock()
		return nil
	}
	// Hold the connecting state for the whole restore so a Connect cannot
	// interleave and get its session overwritten by the persisted record.
	m.state = StateConnecting
	m.mu.Unlock()

	rec, ok, err := m.loadRestorable(ctx)
	if !ok {
		m.mu.Lock()
		m.state = StateDisconnected
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	m.session = Session{
		Connected: true,
		Provider:  rec.Provider,
		Address:   rec.Address,
		Balance:   "0.00",
	}
	m.state = StateConnected
	m.mu.Unlock()

	logger.Infof("✅ Wallet session restored for %s", helper.ShortAddress(rec.Address))

	if err := m.RefreshBalance(ctx); err != nil && !errors.Is(err, ErrBalanceUnavailable) {
		return err
	}
	return nil
}

// loadRestorable reports whether a fresh record with a still-connected
// bridge is persisted. Stale or orphaned records are deleted on the way out.
func (m *Manager) loadRestorable(ctx context.Context) (walletstore.Record, bool, error) {
	disconnected, err := m.store.Disconnected(ctx)
	if err != nil {
		return walletstore.Record{}, false, err
	}
	if disconnected {
		logger.Debug("wallet restore skipped: manually disconnected")
		return walletstore.Record{}, false, nil
	}

	rec, err := m.store.Load(ctx)
	if err != nil {
		if errors.Is(err, walletstore.ErrNotFound) {
			return walletstore.Record{}, false, nil
		}
		return walletstore.Record{}, false, err
	}

	if rec.Age(m.now()) > m.freshness || rec.Provider != ProviderFreighter {
		logger.Debugf("wallet restore skipped: %v", ErrSessionExpired)
		_ = m.store.Delete(ctx)
		return walletstore.Record{}, false, nil
	}

	// The bridge check must not hang a page load; bound it and give up.
	checkCtx, cancel := context.WithTimeout(ctx, m.restoreTimeout)
	defer cancel()
	connected, err := m.bridge.Connected(checkCtx)
	if err != nil || !connected {
		logger.Debug("wallet restore skipped: bridge no longer connected")
		_ = m.store.Delete(ctx)
		return walletstore.Record{}, false, nil
	}
	return rec, true, nil
}

// Connect establishes a session through the named provider. Exactly one
// connect may be in flight; concurrent calls get ErrConnectInFlight.
func (m *Manager) Connect(ctx context.Context, provider string) error {
	if provider != ProviderFreighter {
		// Albedo and Lobstr are placeholders for now, and anything else is
		// unknown; either way the session must not be mutated.
		return fmt.Errorf("%w: %s", ErrProviderNotImplemented, provider)
	}

	m.mu.Lock()
	if m.state == StateConnecting {
		m.mu.Unlock()
		return ErrConnectInFlight
	}
	m.state = StateConnecting
	m.mu.Unlock()

	address, err := m.requestAccess(ctx)
	if err != nil {
		m.mu.Lock()
		m.state = StateDisconnected
		m.mu.Unlock()
		return err
	}

	rec := walletstore.Record{Provider: provider, Address: address, SavedAt: m.now()}
	if err := m.store.SetDisconnected(ctx, false); err != nil {
		logger.Warnf("⚠️ Could not clear disconnect marker: %v", err)
	}
	if err := m.store.Save(ctx, rec); err != nil {
		logger.Warnf("⚠️ Could not persist wallet session: %v", err)
	}

	m.mu.Lock()
	m.session = Session{
		Connected: true,
		Provider:  provider,
		Address:   address,
		Balance:   "0.00",
	}
	m.state = StateConnected
	m.mu.Unlock()

	logger.Infof("✅ Wallet connected via %s: %s", provider, helper.ShortAddress(address))

	if err := m.RefreshBalance(ctx); err != nil && !errors.Is(err, ErrBalanceUnavailable) {
		return err
	}
	return nil
}

func (m *Manager) requestAccess(ctx context.Context) (string, error) {
	if !m.bridge.Available(ctx) {
		return "", ErrWalletUnavailable
	}
	address, err := m.bridge.RequestAccess(ctx)
	if err != nil {
		if errors.Is(err, bridge.ErrAccessDenied) {
			return "", fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
		return "", fmt.Errorf("%w: %v", ErrWalletUnavailable, err)
	}
	if !m.gateway.ValidAddress(address) {
		return "", fmt.Errorf("%w: bridge returned invalid account id", ErrAccessDenied)
	}
	return address, nil
}

// Disconnect clears the session, removes the persisted record and marks the
// session manually disconnected so the next reload does not silently restore.
func (m *Manager) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	m.session = emptySession()
	m.state = StateDisconnected
	m.mu.Unlock()

	if err := m.store.Delete(ctx); err != nil {
		return err
	}
	return m.store.SetDisconnected(ctx, true)
}

// RefreshBalance queries the gateway for the current snapshot. A failed
// refresh keeps the last known balance and returns ErrBalanceUnavailable;
// the session stays connected either way.
func (m *Manager) RefreshBalance(ctx context.Context) error {
	m.mu.Lock()
	if !m.session.Connected {
		m.mu.Unlock()
		return nil
	}
	address := m.session.Address
	m.state = StateRefreshingBalance
	m.mu.Unlock()

	balance, err := m.gateway.NativeBalance(ctx, address)

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.session.Connected {
		// Disconnected while the lookup was in flight; drop the result.
		return nil
	}
	m.state = StateConnected
	if err != nil {
		m.session.BalanceStale = true
		logger.Warnf("⚠️ Balance refresh failed for %s: %v", helper.ShortAddress(address), err)
		return fmt.Errorf("%w: %v", ErrBalanceUnavailable, err)
	}
	m.session.Balance = balance
	m.session.BalanceStale = false
	m.session.LastRefreshedAt = m.now()
	return nil
}
