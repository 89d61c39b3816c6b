// Package errors provides standardized error types for dataset operations.
// DatasetError carries the failing operation and column so callers can
// match on them with errors.Is and errors.As.
package errors

import (
	"fmt"
)

// DatasetError represents standardized errors across all dataset operations
type DatasetError struct {
	Op      string // Operation name (e.g., "Merge", "AddCol", "ReadCSV")
	Column  string // Column name if applicable
	Message string // Human-readable error description
	Cause   error  // Underlying error cause
}

// Error implements the error interface
func (e *DatasetError) Error() string {
	msg := fmt.Sprintf("%s operation failed: %s", e.Op, e.Message)
	if e.Column != "" {
		msg = fmt.Sprintf("%s operation failed on column '%s': %s", e.Op, e.Column, e.Message)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error wrapping support
func (e *DatasetError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DatasetError with the same Op, Column and Message.
func (e *DatasetError) Is(target error) bool {
	if de, ok := target.(*DatasetError); ok {
		return e.Op == de.Op && e.Column == de.Column && e.Message == de.Message
	}
	return false
}

// NewColumnNotFoundError creates an error for operations on non-existent columns
func NewColumnNotFoundError(op, column string) *DatasetError {
	return &DatasetError{
		Op:      op,
		Column:  column,
		Message: "column does not exist",
	}
}

// NewInvalidInputError creates an error for invalid operation inputs
func NewInvalidInputError(op, message string) *DatasetError {
	return &DatasetError{
		Op:      op,
		Message: message,
	}
}

// NewValidationError creates an error for input validation failures
func NewValidationError(op, column, message string) *DatasetError {
	return &DatasetError{
		Op:      op,
		Column:  column,
		Message: message,
	}
}

// NewInternalError wraps a lower-level failure (I/O, codec) for op.
func NewInternalError(op string, cause error) *DatasetError {
	return &DatasetError{
		Op:      op,
		Message: "internal error occurred",
		Cause:   cause,
	}
}

var (
	// ErrEmptyDataset indicates an operation that needs at least one record
	ErrEmptyDataset = &DatasetError{
		Op:      "validation",
		Message: "operation not supported on empty dataset",
	}

	// ErrMismatchedLength indicates length mismatches in row-wise operations
	ErrMismatchedLength = &DatasetError{
		Op:      "validation",
		Message: "arrays must have the same length",
	}
)
