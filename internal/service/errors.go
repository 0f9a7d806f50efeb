package service

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrUnknownUser        = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("wrong password")
	ErrInvalidPassword    = errors.New("password must be at most 72 bytes")
	ErrInvalidGameRecord  = errors.New("invalid game record")
	ErrStoreFailure       = errors.New("store failure")
)

// storeFailure wraps a persistence error so callers can match
// ErrStoreFailure and still reach the driver error.
func storeFailure(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreFailure, err)
}

func invalidRecord(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidGameRecord, reason)
}
