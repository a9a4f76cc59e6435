// Package common defines shared constants and errors used across the store
// and service layers. Callers should use errors.Is to match the sentinels and
// errors.As to inspect the typed errors.
package common

import (
	"errors"
	"fmt"
)

var (
	// Service-level errors.
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")

	// Store-level errors.
	ErrStoreRead    = errors.New("store read failed")
	ErrStoreWrite   = errors.New("store write failed")
	ErrCorruptStore = errors.New("corrupt store")
)

// ValidationError reports bad caller input. The dataset is left unchanged.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError returns a *ValidationError for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports an operation that targets a missing person or entry.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StoreWriteError reports a failed durable write of the dataset. The
// in-memory dataset still reflects the mutation that triggered the write.
type StoreWriteError struct {
	Key string
	Err error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("store write %q: %v", e.Key, e.Err)
}

func (e *StoreWriteError) Unwrap() []error {
	return []error{ErrStoreWrite, e.Err}
}

// CorruptStoreError reports persisted bytes that cannot be decoded into a
// valid dataset. Nothing is discarded: the record is left as it was.
type CorruptStoreError struct {
	Key string
	Err error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("corrupt record %q: %v", e.Key, e.Err)
}

func (e *CorruptStoreError) Unwrap() []error {
	return []error{ErrCorruptStore, e.Err}
}
