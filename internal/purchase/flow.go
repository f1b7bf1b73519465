// Package purchase drives a single ticket purchase to a terminal state:
// confirm → processing → success | failure. One attempt is active at a time.
package purchase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/somewherelostt/KaizenX/internal/stellar"
	"github.com/somewherelostt/KaizenX/internal/wallet"
	"github.com/somewherelostt/KaizenX/internal/wallet/bridge"
	"github.com/somewherelostt/KaizenX/pkg/helper"
	"github.com/somewherelostt/KaizenX/pkg/logger"
)

// Free events still submit a self-payment so the purchase leaves a trace on
// the ledger; the amount is negligible on purpose.
const freeEventAmount = "0.0000001"

type AttemptState string

const (
	StateConfirm    AttemptState = "confirm"
	StateProcessing AttemptState = "processing"
	StateSuccess    AttemptState = "success"
	StateFailure    AttemptState = "failure"
)

// Outcome tells the caller what Submit decided.
type Outcome string

const (
	// OutcomeNeedsWallet is the precondition branch: no session is
	// connected, the caller should run the wallet connect flow instead.
	OutcomeNeedsWallet Outcome = "needs_wallet"
	OutcomeSuccess     Outcome = "success"
	OutcomeFailure     Outcome = "failure"
)

var (
	ErrNoAttempt    = errors.New("no purchase attempt open")
	ErrNotRetryable = errors.New("retry is only valid from failure")
	ErrBusy         = errors.New("purchase already processing")
)

// Event carries the details Submit needs from the catalog record.
type Event struct {
	Ref       string
	Title     string
	Price     string // decimal amount, "Free", or empty
	Organizer string // organizer's ledger account id
}

// Attempt is one user-initiated purchase lifecycle.
type Attempt struct {
	State   AttemptState `json:"state"`
	Event   Event        `json:"event"`
	Amount  string       `json:"amount"`
	TxHash  string       `json:"tx_hash"`
	FailMsg string       `json:"fail_msg,omitempty"`
}

// Gateway is the slice of the ledger gateway the flow needs.
type Gateway interface {
	BuildPayment(ctx context.Context, source, destination, amount, memo string) (string, error)
	SubmitXDR(ctx context.Context, signedXDR string) (string, error)
}

// SessionSource exposes the current wallet session snapshot.
type SessionSource interface {
	Session() wallet.Session
}

// Flow owns at most one Attempt and runs sign → submit → interpret strictly
// in order. Closing the flow mid-submit discards the late result instead of
// applying it to a stale attempt.
type Flow struct {
	session SessionSource
	bridge  bridge.Bridge
	gateway Gateway
	now     func() time.Time

	mu      sync.Mutex
	attempt *Attempt
	gen     uint64
}

func NewFlow(session SessionSource, b bridge.Bridge, g Gateway) *Flow {
	return &Flow{session: session, bridge: b, gateway: g, now: time.Now}
}

// Open starts a new attempt in confirm state. No wallet session is required
// yet; the precondition is checked on Submit.
func (f *Flow) Open(event Event) *Attempt {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	f.attempt = &Attempt{State: StateConfirm, Event: event}
	return f.snapshotLocked()
}

// Attempt returns a copy of the active attempt, or nil.
func (f *Flow) Attempt() *Attempt {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Flow) snapshotLocked() *Attempt {
	if f.attempt == nil {
		return nil
	}
	a := *f.attempt
	return &a
}

// Submit drives the attempt through payment build, signing and submission.
// A missing wallet session yields OutcomeNeedsWallet without failing the
// attempt. Signing rejection and gateway failure both land in failure, both
// recoverable via Retry; the wallet session is untouched.
func (f *Flow) Submit(ctx context.Context) (Outcome, error) {
	session := f.session.Session()

	f.mu.Lock()
	if f.attempt == nil {
		f.mu.Unlock()
		return OutcomeFailure, ErrNoAttempt
	}
	if f.attempt.State == StateProcessing {
		f.mu.Unlock()
		return OutcomeFailure, ErrBusy
	}
	if !session.Connected {
		f.mu.Unlock()
		return OutcomeNeedsWallet, nil
	}
	gen := f.gen
	event := f.attempt.Event
	f.attempt.State = StateProcessing
	f.attempt.TxHash = ""
	f.attempt.FailMsg = ""
	f.mu.Unlock()

	destination, amount := paymentTarget(event, session.Address)
	memo := JoinMemo(event.Ref, f.now())

	hash, err := f.execute(ctx, session.Address, destination, amount, memo)
	return f.apply(gen, amount, hash, err)
}

// execute runs the strictly ordered build → sign → submit sequence.
func (f *Flow) execute(ctx context.Context, source, destination, amount, memo string) (string, error) {
	unsigned, err := f.gateway.BuildPayment(ctx, source, destination, amount, memo)
	if err != nil {
		return "", fmt.Errorf("build payment: %w", err)
	}
	signed, err := f.bridge.SignTransaction(ctx, unsigned, source)
	if err != nil {
		return "", fmt.Errorf("sign payment: %w", err)
	}
	return f.gateway.SubmitXDR(ctx, signed)
}

// apply records the result unless the attempt was closed or replaced while
// the network call was in flight.
func (f *Flow) apply(gen uint64, amount, hash string, err error) (Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.attempt == nil || f.gen != gen {
		logger.Debug("purchase result discarded: attempt closed")
		return OutcomeFailure, ErrNoAttempt
	}

	f.attempt.Amount = amount
	if err != nil {
		f.attempt.State = StateFailure
		f.attempt.FailMsg = err.Error()
		logger.Warnf("⚠️ Purchase failed for event %s: %v", f.attempt.Event.Ref, err)
		return OutcomeFailure, nil
	}
	f.attempt.State = StateSuccess
	f.attempt.TxHash = hash
	logger.Infof("✅ Purchase confirmed for event %s: tx %s", f.attempt.Event.Ref, helper.ShortAddress(hash))
	return OutcomeSuccess, nil
}

// Retry returns a failed attempt to confirm.
func (f *Flow) Retry() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.attempt == nil {
		return ErrNoAttempt
	}
	if f.attempt.State != StateFailure {
		return ErrNotRetryable
	}
	f.attempt.State = StateConfirm
	f.attempt.TxHash = ""
	f.attempt.FailMsg = ""
	return nil
}

// Close discards the attempt from any state. An in-flight submission is not
// cancelled; its result will be discarded when it lands.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	f.attempt = nil
}

// paymentTarget picks destination and amount: priced events pay the
// organizer, free events pay the buyer's own account a negligible amount.
func paymentTarget(event Event, payer string) (string, string) {
	price := strings.TrimSuffix(strings.TrimSpace(event.Price), " XLM")
	if price == "" || strings.EqualFold(price, "Free") || event.Organizer == "" {
		return payer, freeEventAmount
	}
	d, err := decimal.NewFromString(price)
	if err != nil || !d.IsPositive() {
		return payer, freeEventAmount
	}
	return event.Organizer, d.String()
}

// JoinMemo composes the ledger memo tagging a purchase with its event,
// truncated to the ledger's text memo limit rather than rejected.
func JoinMemo(eventRef string, now time.Time) string {
	ts := fmt.Sprintf("%d", now.UnixMilli())
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	return helper.TruncateBytes(fmt.Sprintf("JOIN_E%s_%s", eventRef, ts), stellar.MaxMemoBytes)
}
