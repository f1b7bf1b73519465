package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"
)

// LocalKey is a development bridge backed by a local keypair. It stands in
// for the browser extension in the simulation binary and integration setups;
// signing is delegated to the ledger SDK.
type LocalKey struct {
	kp         *keypair.Full
	passphrase string
}

func NewLocalKey(seed, networkPassphrase string) (*LocalKey, error) {
	kp, err := keypair.ParseFull(seed)
	if err != nil {
		return nil, fmt.Errorf("parse secret seed: %w", err)
	}
	return &LocalKey{kp: kp, passphrase: networkPassphrase}, nil
}

// NewRandomLocalKey generates a throwaway keypair (fund via Friendbot).
func NewRandomLocalKey(networkPassphrase string) (*LocalKey, error) {
	kp, err := keypair.Random()
	if err != nil {
		return nil, err
	}
	return &LocalKey{kp: kp, passphrase: networkPassphrase}, nil
}

func (l *LocalKey) Address() string { return l.kp.Address() }

func (l *LocalKey) Available(ctx context.Context) bool { return true }

func (l *LocalKey) Connected(ctx context.Context) (bool, error) { return true, nil }

func (l *LocalKey) RequestAccess(ctx context.Context) (string, error) {
	return l.kp.Address(), nil
}

func (l *LocalKey) SignTransaction(ctx context.Context, unsignedXDR, account string) (string, error) {
	if account != l.kp.Address() {
		return "", fmt.Errorf("%w: account %s not held by this bridge", ErrAccessDenied, account)
	}
	generic, err := txnbuild.TransactionFromXDR(unsignedXDR)
	if err != nil {
		return "", fmt.Errorf("decode envelope: %w", err)
	}
	tx, ok := generic.Transaction()
	if !ok {
		return "", errors.New("envelope is not a simple transaction")
	}
	signed, err := tx.Sign(l.passphrase, l.kp)
	if err != nil {
		return "", fmt.Errorf("sign envelope: %w", err)
	}
	return signed.Base64()
}
