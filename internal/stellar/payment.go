package stellar

import (
	"context"
	"fmt"

	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/txnbuild"

	"github.com/somewherelostt/KaizenX/pkg/helper"
)

// BuildPayment builds an unsigned single-payment envelope from source to
// destination. The memo is truncated to MaxMemoBytes. The source account's
// current sequence number is fetched from the gateway.
func (g *Gateway) BuildPayment(ctx context.Context, source, destination, amount, memo string) (string, error) {
	sourceAccount, err := g.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: source})
	if err != nil {
		return "", fmt.Errorf("load source account %s: %w", helper.ShortAddress(source), err)
	}

	params := txnbuild.TransactionParams{
		SourceAccount:        &sourceAccount,
		IncrementSequenceNum: true,
		BaseFee:              txnbuild.MinBaseFee,
		Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewInfiniteTimeout()},
		Operations: []txnbuild.Operation{
			&txnbuild.Payment{
				Destination: destination,
				Amount:      amount,
				Asset:       txnbuild.NativeAsset{},
			},
		},
	}
	if memo != "" {
		params.Memo = txnbuild.MemoText(helper.TruncateBytes(memo, MaxMemoBytes))
	}

	tx, err := txnbuild.NewTransaction(params)
	if err != nil {
		return "", fmt.Errorf("build payment: %w", err)
	}
	return tx.Base64()
}
