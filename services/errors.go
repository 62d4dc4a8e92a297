package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrReferenceNotFound means a row the write points at does not exist.
	ErrReferenceNotFound = errors.New("referenced entity not found")
	// ErrUnavailable is the generic failure returned by ListAll. The cause is logged, not returned.
	ErrUnavailable = errors.New("storage unavailable")
)

type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MissingReferenceError names the referenced entity that failed to resolve.
type MissingReferenceError struct {
	Entity string
	ID     int64
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("referenced %s with ID %d not found", e.Entity, e.ID)
}

func (e *MissingReferenceError) Is(target error) bool {
	return target == ErrReferenceNotFound
}
