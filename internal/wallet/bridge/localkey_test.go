package bridge

import (
	"context"
	"testing"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/network"
	"github.com/stellar/go/txnbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestEnvelope(t *testing.T, source *keypair.Full) string {
	t.Helper()
	sourceAccount := txnbuild.SimpleAccount{AccountID: source.Address(), Sequence: 1}
	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &sourceAccount,
		IncrementSequenceNum: true,
		BaseFee:              txnbuild.MinBaseFee,
		Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewInfiniteTimeout()},
		Operations: []txnbuild.Operation{
			&txnbuild.Payment{
				Destination: keypair.MustRandom().Address(),
				Amount:      "1",
				Asset:       txnbuild.NativeAsset{},
			},
		},
	})
	require.NoError(t, err)
	b64, err := tx.Base64()
	require.NoError(t, err)
	return b64
}

func TestLocalKeySignTransaction(t *testing.T) {
	kp := keypair.MustRandom()
	lk, err := NewLocalKey(kp.Seed(), network.TestNetworkPassphrase)
	require.NoError(t, err)

	assert.Equal(t, kp.Address(), lk.Address())
	assert.True(t, lk.Available(context.Background()))

	signed, err := lk.SignTransaction(context.Background(), buildTestEnvelope(t, kp), kp.Address())
	require.NoError(t, err)

	generic, err := txnbuild.TransactionFromXDR(signed)
	require.NoError(t, err)
	tx, ok := generic.Transaction()
	require.True(t, ok)
	assert.Len(t, tx.Signatures(), 1)
}

func TestLocalKeyRefusesForeignAccount(t *testing.T) {
	kp := keypair.MustRandom()
	lk, err := NewLocalKey(kp.Seed(), network.TestNetworkPassphrase)
	require.NoError(t, err)

	other := keypair.MustRandom()
	_, err = lk.SignTransaction(context.Background(), buildTestEnvelope(t, kp), other.Address())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestLocalKeyRejectsBadSeed(t *testing.T) {
	_, err := NewLocalKey("SNOTASEED", network.TestNetworkPassphrase)
	assert.Error(t, err)
}
