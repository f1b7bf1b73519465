// Package bridge abstracts the external wallet extension that holds the
// user's key material. The application never sees private keys; it only asks
// the bridge for address access and transaction signatures.
package bridge

import (
	"context"
	"errors"
)

// ErrAccessDenied means the user declined the access or signing prompt.
var ErrAccessDenied = errors.New("wallet access denied")

type Bridge interface {
	// Available reports whether the bridge is reachable at all.
	Available(ctx context.Context) bool
	// Connected reports whether the bridge still holds an authorized
	// connection for a previously granted session.
	Connected(ctx context.Context) (bool, error)
	// RequestAccess prompts for address access and returns the account id.
	RequestAccess(ctx context.Context) (string, error)
	// SignTransaction signs an unsigned envelope for the given account and
	// returns the signed envelope.
	SignTransaction(ctx context.Context, unsignedXDR, account string) (string, error)
}
