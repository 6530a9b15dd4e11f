// Package services holds the wallet business rules. Services return the
// sentinel errors below for every predictable failure; handlers translate
// them into result outcomes. Any other error is an unexpected server-side
// failure.
package services

import "errors"

var (
	// ErrAccountNotFound means the account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNotOwner means the account exists but belongs to another user.
	ErrNotOwner = errors.New("account belongs to another user")

	// ErrInvalidAmount is returned for non-positive amounts or amounts above
	// the per-operation limit.
	ErrInvalidAmount = errors.New("amount must be positive and within the operation limit")

	// ErrInsufficientFunds means the source balance cannot cover the transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSameAccount rejects transfers whose source and destination match.
	ErrSameAccount = errors.New("source and destination accounts are the same")

	// ErrCurrencyMismatch rejects transfers between accounts of different
	// currencies.
	ErrCurrencyMismatch = errors.New("accounts use different currencies")

	// ErrIdempotencyMismatch means an Idempotency-Key was reused with a
	// different request than the one it first completed.
	ErrIdempotencyMismatch = errors.New("idempotency key reused with a different request")
)
