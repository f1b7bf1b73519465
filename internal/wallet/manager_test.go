package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somewherelostt/KaizenX/internal/wallet/bridge"
	"github.com/somewherelostt/KaizenX/internal/wallet/walletstore"
)

const testAddress = "GABCDEFGHIJKLMNOPQRSTUVWXYZ234567ABCDEFGHIJKLMNOPQRSTUVABC"

type fakeBridge struct {
	available    bool
	connected    bool
	address      string
	accessErr    error
	release      chan struct{} // when set, RequestAccess blocks until closed
	checkRelease chan struct{} // when set, Connected blocks until closed
}

func (b *fakeBridge) Available(ctx context.Context) bool { return b.available }

func (b *fakeBridge) Connected(ctx context.Context) (bool, error) {
	if b.checkRelease != nil {
		<-b.checkRelease
	}
	return b.connected, nil
}

func (b *fakeBridge) RequestAccess(ctx context.Context) (string, error) {
	if b.release != nil {
		<-b.release
	}
	if b.accessErr != nil {
		return "", b.accessErr
	}
	return b.address, nil
}

func (b *fakeBridge) SignTransaction(ctx context.Context, unsignedXDR, account string) (string, error) {
	return unsignedXDR, nil
}

type fakeGateway struct {
	balance    string
	balanceErr error
	valid      bool
}

func (g *fakeGateway) NativeBalance(ctx context.Context, accountID string) (string, error) {
	if g.balanceErr != nil {
		return "", g.balanceErr
	}
	return g.balance, nil
}

func (g *fakeGateway) ValidAddress(addr string) bool { return g.valid }

func newTestManager(b *fakeBridge, g *fakeGateway) (*Manager, *walletstore.MemoryStore) {
	store := walletstore.NewMemoryStore()
	return NewManager(b, g, store, Options{}), store
}

func TestConnectHappyPath(t *testing.T) {
	b := &fakeBridge{available: true, connected: true, address: testAddress}
	g := &fakeGateway{balance: "123.45", valid: true}
	m, store := newTestManager(b, g)

	require.NoError(t, m.Connect(context.Background(), ProviderFreighter))

	session := m.Session()
	assert.True(t, session.Connected)
	assert.Equal(t, ProviderFreighter, session.Provider)
	assert.Equal(t, testAddress, session.Address)
	assert.Equal(t, "123.45", session.Balance)
	assert.False(t, session.BalanceStale)
	assert.Equal(t, StateConnected, m.State())

	rec, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAddress, rec.Address)
}

func TestConnectPlaceholderProviders(t *testing.T) {
	b := &fakeBridge{available: true, address: testAddress}
	g := &fakeGateway{balance: "1.00", valid: true}
	m, _ := newTestManager(b, g)

	for _, provider := range []string{ProviderAlbedo, ProviderLobstr, "MetaMask"} {
		err := m.Connect(context.Background(), provider)
		assert.ErrorIs(t, err, ErrProviderNotImplemented, provider)
	}
	assert.False(t, m.Session().Connected)
	assert.Equal(t, StateDisconnected, m.State())
}

func TestConnectBridgeUnavailable(t *testing.T) {
	b := &fakeBridge{available: false}
	g := &fakeGateway{valid: true}
	m, _ := newTestManager(b, g)

	err := m.Connect(context.Background(), ProviderFreighter)
	assert.ErrorIs(t, err, ErrWalletUnavailable)
	assert.Equal(t, StateDisconnected, m.State())
}

func TestConnectAccessDenied(t *testing.T) {
	b := &fakeBridge{available: true, accessErr: bridge.ErrAccessDenied}
	g := &fakeGateway{valid: true}
	m, _ := newTestManager(b, g)

	err := m.Connect(context.Background(), ProviderFreighter)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, m.Session().Connected)
}

func TestConnectRejectsInvalidAddress(t *testing.T) {
	b := &fakeBridge{available: true, address: "not-an-account-id"}
	g := &fakeGateway{valid: false}
	m, _ := newTestManager(b, g)

	err := m.Connect(context.Background(), ProviderFreighter)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestConnectSingleFlight(t *testing.T) {
	release := make(chan struct{})
	b := &fakeBridge{available: true, address: testAddress, release: release}
	g := &fakeGateway{balance: "1.00", valid: true}
	m, _ := newTestManager(b, g)

	done := make(chan error, 1)
	go func() { done <- m.Connect(context.Background(), ProviderFreighter) }()

	// Wait until the first connect parked inside the bridge.
	require.Eventually(t, func() bool {
		return m.State() == StateConnecting
	}, time.Second, 5*time.Millisecond)

	err := m.Connect(context.Background(), ProviderFreighter)
	assert.ErrorIs(t, err, ErrConnectInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.True(t, m.Session().Connected)
}

func TestBalanceRefreshFailureKeepsSnapshot(t *testing.T) {
	b := &fakeBridge{available: true, connected: true, address: testAddress}
	g := &fakeGateway{balance: "50.00", valid: true}
	m, _ := newTestManager(b, g)
	require.NoError(t, m.Connect(context.Background(), ProviderFreighter))

	g.balanceErr = errors.New("horizon timeout")
	err := m.RefreshBalance(context.Background())
	assert.ErrorIs(t, err, ErrBalanceUnavailable)

	session := m.Session()
	assert.True(t, session.Connected)
	assert.Equal(t, "50.00", session.Balance)
	assert.True(t, session.BalanceStale)
	assert.Equal(t, StateConnected, m.State())
}

func TestDisconnectClearsStateAndMarks(t *testing.T) {
	b := &fakeBridge{available: true, connected: true, address: testAddress}
	g := &fakeGateway{balance: "9.99", valid: true}
	m, store := newTestManager(b, g)
	require.NoError(t, m.Connect(context.Background(), ProviderFreighter))

	require.NoError(t, m.Disconnect(context.Background()))

	session := m.Session()
	assert.False(t, session.Connected)
	assert.Equal(t, "0.00", session.Balance)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, walletstore.ErrNotFound)
	disconnected, err := store.Disconnected(context.Background())
	require.NoError(t, err)
	assert.True(t, disconnected)
}

func TestRestoreSkipsAfterManualDisconnect(t *testing.T) {
	b := &fakeBridge{available: true, connected: true, address: testAddress}
	g := &fakeGateway{balance: "9.99", valid: true}
	m, store := newTestManager(b, g)

	require.NoError(t, store.Save(context.Background(), walletstore.Record{
		Provider: ProviderFreighter, Address: testAddress, SavedAt: time.Now(),
	}))
	require.NoError(t, store.SetDisconnected(context.Background(), true))

	require.NoError(t, m.RestoreSession(context.Background()))
	assert.False(t, m.Session().Connected)
}

func TestRestoreFreshRecord(t *testing.T) {
	b := &fakeBridge{available: true, connected: true, address: testAddress}
	g := &fakeGateway{balance: "77.10", valid: true}
	m, store := newTestManager(b, g)

	require.NoError(t, store.Save(context.Background(), walletstore.Record{
		Provider: ProviderFreighter, Address: testAddress, SavedAt: time.Now().Add(-time.Hour),
	}))

	require.NoError(t, m.RestoreSession(context.Background()))

	session := m.Session()
	assert.True(t, session.Connected)
	assert.Equal(t, testAddress, session.Address)
	assert.Equal(t, "77.10", session.Balance)
}

func TestRestoreStaleRecordDeleted(t *testing.T) {
	b := &fakeBridge{available: true, connected: true, address: testAddress}
	g := &fakeGateway{balance: "77.10", valid: true}
	m, store := newTestManager(b, g)

	require.NoError(t, store.Save(context.Background(), walletstore.Record{
		Provider: ProviderFreighter, Address: testAddress, SavedAt: time.Now().Add(-25 * time.Hour),
	}))

	require.NoError(t, m.RestoreSession(context.Background()))
	assert.False(t, m.Session().Connected)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, walletstore.ErrNotFound)
}

func TestRestoreBridgeGoneDeletesRecord(t *testing.T) {
	b := &fakeBridge{available: true, connected: false, address: testAddress}
	g := &fakeGateway{balance: "77.10", valid: true}
	m, store := newTestManager(b, g)

	require.NoError(t, store.Save(context.Background(), walletstore.Record{
		Provider: ProviderFreighter, Address: testAddress, SavedAt: time.Now(),
	}))

	require.NoError(t, m.RestoreSession(context.Background()))
	assert.False(t, m.Session().Connected)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, walletstore.ErrNotFound)
}

func TestConnectDuringRestoreRejected(t *testing.T) {
	checkRelease := make(chan struct{})
	b := &fakeBridge{available: true, connected: true, address: testAddress, checkRelease: checkRelease}
	g := &fakeGateway{balance: "5.00", valid: true}
	m, store := newTestManager(b, g)

	require.NoError(t, store.Save(context.Background(), walletstore.Record{
		Provider: ProviderFreighter, Address: testAddress, SavedAt: time.Now(),
	}))

	done := make(chan error, 1)
	go func() { done <- m.RestoreSession(context.Background()) }()

	// Wait until the restore parked inside the bridge check.
	require.Eventually(t, func() bool {
		return m.State() == StateConnecting
	}, time.Second, 5*time.Millisecond)

	// The restore holds the connecting slot; no Connect may interleave and
	// later be overwritten by the persisted record.
	err := m.Connect(context.Background(), ProviderFreighter)
	assert.ErrorIs(t, err, ErrConnectInFlight)

	close(checkRelease)
	require.NoError(t, <-done)

	session := m.Session()
	assert.True(t, session.Connected)
	assert.Equal(t, testAddress, session.Address)
}

func TestRestoreNothingPersisted(t *testing.T) {
	b := &fakeBridge{available: true, connected: true, address: testAddress}
	g := &fakeGateway{balance: "1.00", valid: true}
	m, _ := newTestManager(b, g)

	require.NoError(t, m.RestoreSession(context.Background()))
	assert.False(t, m.Session().Connected)
	assert.Equal(t, StateDisconnected, m.State())
}
