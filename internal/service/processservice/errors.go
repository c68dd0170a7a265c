package processservice

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrTransaction  = errors.New("transaction failed")
)

var (
	ErrNotRequester    = fmt.Errorf("%w: caller is not the request owner", ErrUnauthorized)
	ErrNotParty        = fmt.Errorf("%w: caller is not a party to the process", ErrUnauthorized)
	ErrRequestNotFound = fmt.Errorf("charging request %w", ErrNotFound)
	ErrProcessNotFound = fmt.Errorf("process %w", ErrNotFound)
	ErrProcessExists   = fmt.Errorf("%w: process already exists for this request", ErrValidation)
	ErrInvalidRating   = fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	ErrAlreadyRated    = fmt.Errorf("%w: already rated", ErrValidation)
	ErrProcessClosed   = fmt.Errorf("%w: process is closed", ErrValidation)
	ErrUnknownDecision = fmt.Errorf("%w: unknown decision", ErrValidation)
)

func isBusinessError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation)
}

// txError leaves business rejections untouched and marks everything else as a
// failed transaction.
func txError(op string, err error) error {
	if isBusinessError(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrTransaction, op, err)
}
