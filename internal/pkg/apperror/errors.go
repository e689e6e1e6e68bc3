// Package apperror holds the error taxonomy shared by the ingestion and query paths.
//
// A ValidationError is the caller's fault (malformed message or query parameters),
// a StorageError is a failure talking to Redis or Postgres. Query handlers map the
// first to a client error and everything else to a server error.
package apperror

import (
	"errors"
	"fmt"
)

// ErrPartialAggregation marks a fan-out query aborted because one per-cell lookup failed
var ErrPartialAggregation = errors.New("per-cell query failed, aggregation aborted")

// ValidationError reports an invalid ingestion message or query parameter
type ValidationError struct {
	Raw    []byte // original payload, kept for diagnostics
	Reason string
	Err    error
}

// NewValidationError creates a ValidationError for the given payload
func NewValidationError(raw []byte, reason string, err error) *ValidationError {
	return &ValidationError{Raw: raw, Reason: reason, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StorageError reports a failed store operation
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError wraps err with the failed operation name
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err carries a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStorage reports whether err carries a StorageError
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// PartialAggregation wraps the failure of one cell lookup in a fan-out query
func PartialAggregation(cell string, err error) error {
	return fmt.Errorf("%w: cell %s: %w", ErrPartialAggregation, cell, err)
}
