// Package service implements the reservation flow: validating a sale
// attempt, committing it to the ledger store and keeping the session
// cache in step. Sentinel errors let handlers map failures to HTTP
// responses without string matching.
package service

import (
	"errors"
	"fmt"
)

// ErrIncompleteInput is returned when buyer name, document id or phone is
// empty after trimming. Validation failures never reach the store.
var ErrIncompleteInput = errors.New("buyer name, dni and phone are required")

// ErrInvalidPhone is returned when the phone has fewer than 9 digits after
// stripping non-digit characters.
var ErrInvalidPhone = errors.New("phone must have at least 9 digits")

// ErrInvalidNumber is returned when the requested number is not a valid
// identifier in the raffle's number space.
var ErrInvalidNumber = errors.New("invalid ticket number")

// ErrNumberTaken is returned when the requested number is already sold in
// the session's current snapshot. Races with other sessions can still slip
// past this check; those land as duplicate rows and are reconciled by the
// duplicate report.
var ErrNumberTaken = errors.New("number is already sold")

// ErrNoNumbersAvailable is returned when the free set is empty.
var ErrNoNumbersAvailable = errors.New("no numbers available")

// PersistenceError wraps a failed store call. The attempt is rejected with
// no local state change; the caller may simply try again.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
