// Package validation provides input validation utilities for dataset operations.
// Validators are small values implementing Validate() error so that an
// operation can declare its preconditions up front and combine them with
// NewCompoundValidator.
package validation

import (
	"fmt"

	"github.com/paveg/zebras/internal/errors"
)

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// ColumnProvider interface for types that provide column information
type ColumnProvider interface {
	HasColumn(name string) bool
	Columns() []string
	Len() int
}

// ColumnValidator validates column existence
type ColumnValidator struct {
	ds      ColumnProvider
	columns []string
	op      string
}

// NewColumnValidator creates a validator for column operations
func NewColumnValidator(ds ColumnProvider, op string, columns ...string) *ColumnValidator {
	return &ColumnValidator{
		ds:      ds,
		columns: columns,
		op:      op,
	}
}

// Validate checks if all columns exist in the dataset
func (v *ColumnValidator) Validate() error {
	for _, column := range v.columns {
		if !v.ds.HasColumn(column) {
			return errors.NewColumnNotFoundError(v.op, column)
		}
	}
	return nil
}

// LengthValidator validates array length consistency
type LengthValidator struct {
	expected int
	actual   int
	op       string
	context  string
}

// NewLengthValidator creates a validator for length consistency
func NewLengthValidator(expected, actual int, op, context string) *LengthValidator {
	return &LengthValidator{
		expected: expected,
		actual:   actual,
		op:       op,
		context:  context,
	}
}

// Validate checks if lengths match
func (v *LengthValidator) Validate() error {
	if v.expected != v.actual {
		err := errors.NewValidationError(v.op, "", fmt.Sprintf("%s: expected length %d, got %d", v.context, v.expected, v.actual))
		err.Cause = errors.ErrMismatchedLength
		return err
	}
	return nil
}

// NameValidator rejects empty column names.
type NameValidator struct {
	name string
	role string
	op   string
}

// NewNameValidator creates a validator for a required column name. role
// describes the argument in the error message, e.g. "left key column".
func NewNameValidator(name, role, op string) *NameValidator {
	return &NameValidator{
		name: name,
		role: role,
		op:   op,
	}
}

// Validate checks that the name is not empty
func (v *NameValidator) Validate() error {
	if v.name == "" {
		return errors.NewInvalidInputError(v.op, v.role+" must not be empty")
	}
	return nil
}

// EmptyDatasetValidator validates operations that need at least one record
type EmptyDatasetValidator struct {
	ds ColumnProvider
	op string
}

// NewEmptyDatasetValidator creates a validator for empty dataset checks
func NewEmptyDatasetValidator(ds ColumnProvider, op string) *EmptyDatasetValidator {
	return &EmptyDatasetValidator{
		ds: ds,
		op: op,
	}
}

// Validate checks if the dataset is empty when the operation requires data
func (v *EmptyDatasetValidator) Validate() error {
	if v.ds.Len() == 0 {
		return &errors.DatasetError{
			Op:      v.op,
			Message: "dataset has no records",
			Cause:   errors.ErrEmptyDataset,
		}
	}
	return nil
}

// CompoundValidator combines multiple validators
type CompoundValidator struct {
	validators []Validator
}

// NewCompoundValidator creates a validator that checks multiple conditions
func NewCompoundValidator(validators ...Validator) *CompoundValidator {
	return &CompoundValidator{
		validators: validators,
	}
}

// Validate runs all validators and returns the first error encountered
func (v *CompoundValidator) Validate() error {
	for _, validator := range v.validators {
		if err := validator.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ValidateColumns is a convenience function for column validation
func ValidateColumns(ds ColumnProvider, op string, columns ...string) error {
	return NewColumnValidator(ds, op, columns...).Validate()
}

// ValidateLength is a convenience function for length validation
func ValidateLength(expected, actual int, op, context string) error {
	return NewLengthValidator(expected, actual, op, context).Validate()
}
