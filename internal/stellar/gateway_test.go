package stellar

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/network"
	"github.com/stellar/go/txnbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountJSON(accountID, balance string) string {
	return fmt.Sprintf(`{
		"id": %[1]q,
		"account_id": %[1]q,
		"sequence": "103420918407103888",
		"balances": [
			{"balance": %[2]q, "asset_type": "native"}
		]
	}`, accountID, balance)
}

func notFoundJSON() string {
	return `{
		"type": "https://stellar.org/horizon-errors/not_found",
		"title": "Resource Missing",
		"status": 404,
		"detail": "The resource at the url requested was not found."
	}`
}

func newTestGateway(handler http.HandlerFunc) (*Gateway, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewGateway(srv.URL, network.TestNetworkPassphrase, srv.URL+"/friendbot"), srv
}

func TestNativeBalanceFundedAccount(t *testing.T) {
	kp := keypair.MustRandom()
	g, srv := newTestGateway(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/"+kp.Address(), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, accountJSON(kp.Address(), "123.4500000"))
	})
	defer srv.Close()

	balance, err := g.NativeBalance(context.Background(), kp.Address())
	require.NoError(t, err)
	assert.Equal(t, "123.45", balance)
}

func TestNativeBalanceUnfundedAccountIsZero(t *testing.T) {
	kp := keypair.MustRandom()
	g, srv := newTestGateway(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, notFoundJSON())
	})
	defer srv.Close()

	balance, err := g.NativeBalance(context.Background(), kp.Address())
	require.NoError(t, err)
	assert.Equal(t, "0.00", balance)
}

func TestValidAddress(t *testing.T) {
	kp := keypair.MustRandom()
	g := NewGateway("http://localhost", network.TestNetworkPassphrase, "")

	assert.True(t, g.ValidAddress(kp.Address()))
	assert.False(t, g.ValidAddress("garbage"))
	assert.False(t, g.ValidAddress(""))
	assert.False(t, g.ValidAddress(kp.Seed()))
}

func TestBuildPaymentAndLocalSign(t *testing.T) {
	source := keypair.MustRandom()
	destination := keypair.MustRandom()

	g, srv := newTestGateway(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, accountJSON(source.Address(), "100.0000000"))
	})
	defer srv.Close()

	unsigned, err := g.BuildPayment(context.Background(),
		source.Address(), destination.Address(), "25.5", "JOIN_E42_600123")
	require.NoError(t, err)

	generic, err := txnbuild.TransactionFromXDR(unsigned)
	require.NoError(t, err)
	tx, ok := generic.Transaction()
	require.True(t, ok)

	require.Len(t, tx.Operations(), 1)
	payment, ok := tx.Operations()[0].(*txnbuild.Payment)
	require.True(t, ok)
	assert.Equal(t, destination.Address(), payment.Destination)
	// XDR carries amounts in stroops; decoding renders 7 fixed decimals.
	assert.Equal(t, "25.5000000", payment.Amount)

	memo, ok := tx.Memo().(txnbuild.MemoText)
	require.True(t, ok)
	assert.Equal(t, txnbuild.MemoText("JOIN_E42_600123"), memo)
	assert.Empty(t, tx.Signatures())

	signed, err := tx.Sign(network.TestNetworkPassphrase, source)
	require.NoError(t, err)
	assert.Len(t, signed.Signatures(), 1)
}

func TestBuildPaymentTruncatesLongMemo(t *testing.T) {
	source := keypair.MustRandom()
	destination := keypair.MustRandom()

	g, srv := newTestGateway(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, accountJSON(source.Address(), "100.0000000"))
	})
	defer srv.Close()

	longMemo := "JOIN_E99999999999999999999999999999999_600123"
	unsigned, err := g.BuildPayment(context.Background(),
		source.Address(), destination.Address(), "1", longMemo)
	require.NoError(t, err)

	generic, err := txnbuild.TransactionFromXDR(unsigned)
	require.NoError(t, err)
	tx, ok := generic.Transaction()
	require.True(t, ok)

	memo, ok := tx.Memo().(txnbuild.MemoText)
	require.True(t, ok)
	assert.Len(t, string(memo), MaxMemoBytes)
}

func TestFundTestAccount(t *testing.T) {
	kp := keypair.MustRandom()
	var funded string
	g, srv := newTestGateway(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/friendbot", r.URL.Path)
		funded = r.URL.Query().Get("addr")
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	require.NoError(t, g.FundTestAccount(context.Background(), kp.Address()))
	assert.Equal(t, kp.Address(), funded)
}
