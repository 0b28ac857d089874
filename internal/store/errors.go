package store

import (
	"errors"
	"fmt"
)

var (
	// ErrSaveFailed is returned when the store file or its parent directory
	// cannot be written. The in-memory mutation is not retried.
	ErrSaveFailed = errors.New("save failed")

	// ErrEncodeFailed is returned when the dataset cannot be serialized.
	ErrEncodeFailed = fmt.Errorf("%w: encode", ErrSaveFailed)
)

// IsSaveError reports whether err is any kind of persistence failure.
func IsSaveError(err error) bool {
	return errors.Is(err, ErrSaveFailed)
}

// StoreError carries the context of a failed store operation.
type StoreError struct {
	Operation string // The operation that failed (e.g., "save")
	Path      string // The store file involved
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s of %s failed: %s: %v", e.Operation, e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s of %s failed: %s", e.Operation, e.Path, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given operation, path, message, and wrapped error.
func NewStoreError(operation, path, message string, err error) *StoreError {
	return &StoreError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}
