// Package store carries the shared pieces of the persistence layer:
// the error taxonomy surfaced by repositories and the change notifier
// that backs live collection subscriptions.
package store

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreWrite wraps any failed push/update/remove against the database.
	ErrStoreWrite = errors.New("store write failed")
	// ErrStoreRead wraps any failed snapshot read.
	ErrStoreRead = errors.New("store read failed")
	// ErrNotFound marks a lookup of a record that does not exist.
	ErrNotFound = errors.New("record not found")
)

func WriteError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreWrite, op, err)
}

func ReadError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreRead, op, err)
}
