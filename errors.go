package finman

import "errors"

// Sentinel errors for the ledger engine. Operations wrap them with context
// using fmt.Errorf and %w, so callers can test with errors.Is.
var (
	// ErrValidation reports an invalid numeric input (zero or negative
	// amount, non-positive tenure, ...). The operation did not mutate state.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound reports that a referenced category, goal, or user is
	// absent.
	ErrNotFound = errors.New("not found")

	// ErrInvalidSelection reports an out-of-range index into a positional
	// collection (investments, loans, debts).
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrPaymentExceedsBalance reports a loan or debt payment larger than
	// the outstanding amount. A payment exactly equal to the outstanding
	// amount is accepted.
	ErrPaymentExceedsBalance = errors.New("payment exceeds remaining amount")

	// ErrDuplicateUser reports a registration with a username that is
	// already taken.
	ErrDuplicateUser = errors.New("username already exists")

	// ErrBadCredentials reports a failed authentication.
	ErrBadCredentials = errors.New("invalid username or password")
)
