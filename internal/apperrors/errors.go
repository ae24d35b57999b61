package apperrors

import "github.com/pkg/errors"

var (
	// ErrPoolNotFound is returned when no pool configuration exists for the
	// requested token pair. Terminal: the caller must pick a different pair.
	ErrPoolNotFound = errors.New("pool not found")

	// ErrZeroAmount is returned when the swap amount is missing, zero or
	// negative. Terminal: the caller must supply a positive amount.
	ErrZeroAmount = errors.New("zero amount")

	// ErrNetworkFailure is returned when the RPC layer rejects a read call or
	// a submission. The caller may retry with backoff; this module never does.
	ErrNetworkFailure = errors.New("network failure")

	// ErrInsufficientBalance is returned by the optional preflight check when
	// the account balance of the input token does not cover the swap amount.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrTokenNotSupported is returned by the optional preflight check when
	// the swapper contract reports the input token as unsupported.
	ErrTokenNotSupported = errors.New("token not supported")
)
