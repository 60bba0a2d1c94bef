package error

import "errors"

// Email delivery errors. Senders wrap provider failures in one of the first
// two so the worker knows whether a retry can help.
var (
	ErrEmailRejected    = errors.New("email rejected by provider")
	ErrEmailDeferred    = errors.New("email delivery deferred")
	ErrUnknownEmailKind = errors.New("unknown email kind")
)
