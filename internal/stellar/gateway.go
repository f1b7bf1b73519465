package stellar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/keypair"

	"github.com/somewherelostt/KaizenX/pkg/helper"
	"github.com/somewherelostt/KaizenX/pkg/logger"
)

// MaxMemoBytes is the ledger's text memo limit. Longer memos are
// truncated by the payment builder, never rejected.
const MaxMemoBytes = 28

var (
	// ErrSubmissionFailed means the gateway rejected or failed to relay
	// the transaction.
	ErrSubmissionFailed = errors.New("gateway submission failed")
)

// Gateway is the Horizon-backed remote ledger gateway. Account lookup and
// transaction submission are delegated to the horizon client; this type only
// adds the semantics the app needs (not-found means zero balance).
type Gateway struct {
	horizon      *horizonclient.Client
	passphrase   string
	friendbotURL string
	httpClient   *http.Client
}

func NewGateway(horizonURL, networkPassphrase, friendbotURL string) *Gateway {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	return &Gateway{
		horizon: &horizonclient.Client{
			HorizonURL: horizonURL,
			HTTP:       httpClient,
		},
		passphrase:   networkPassphrase,
		friendbotURL: friendbotURL,
		httpClient:   httpClient,
	}
}

// NetworkPassphrase exposes the configured network for signers.
func (g *Gateway) NetworkPassphrase() string {
	return g.passphrase
}

// ValidAddress reports whether addr is a syntactically valid account id.
func (g *Gateway) ValidAddress(addr string) bool {
	_, err := keypair.ParseAddress(addr)
	return err == nil
}

// NativeBalance returns the account's native balance as a 2-decimal string.
// An unfunded account has no on-chain record yet, so "not found" is a valid
// outcome and yields "0.00" without error.
func (g *Gateway) NativeBalance(ctx context.Context, accountID string) (string, error) {
	account, err := g.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: accountID})
	if err != nil {
		if horizonclient.IsNotFoundError(err) {
			return "0.00", nil
		}
		return "", fmt.Errorf("load account %s: %w", helper.ShortAddress(accountID), err)
	}

	native, err := account.GetNativeBalance()
	if err != nil {
		return "0.00", nil
	}
	return helper.FormatBalance(native), nil
}

// SubmitXDR relays a signed transaction envelope and returns its hash.
func (g *Gateway) SubmitXDR(ctx context.Context, signedXDR string) (string, error) {
	resp, err := g.horizon.SubmitTransactionXDR(signedXDR)
	if err != nil {
		logger.Warnf("⚠️ Transaction submission rejected: %v", err)
		return "", fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	if !resp.Successful {
		return "", ErrSubmissionFailed
	}
	return resp.Hash, nil
}

// FundTestAccount asks Friendbot to fund addr. Development helper only.
func (g *Gateway) FundTestAccount(ctx context.Context, addr string) error {
	if g.friendbotURL == "" {
		return errors.New("friendbot URL not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.friendbotURL+"?addr="+url.QueryEscape(addr), nil)
	if err != nil {
		return err
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("friendbot request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("friendbot responded %d", resp.StatusCode)
	}
	return nil
}
