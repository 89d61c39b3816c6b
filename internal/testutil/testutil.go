// Package testutil provides fixtures and assertions shared by dataset
// tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/paveg/zebras/internal/dataset"
	"github.com/paveg/zebras/internal/value"
	"github.com/stretchr/testify/assert"
)

const (
	// defaultRowCount is the default number of rows in employee fixtures.
	defaultRowCount = 4
)

// Rec builds a record from alternating names and values.
func Rec(pairs ...any) dataset.Record {
	return dataset.RecordOf(pairs...)
}

// DaysDataset returns the three-row weekday fixture
// [{day: Mon, v: 10}, {day: Tue, v: 5}, {day: Mon, v: 7}].
func DaysDataset() dataset.Dataset {
	return dataset.New(
		Rec("day", "Mon", "v", 10),
		Rec("day", "Tue", "v", 5),
		Rec("day", "Mon", "v", 7),
	)
}

// EmployeeOption configures EmployeesDataset.
type EmployeeOption func(*employeeConfig)

type employeeConfig struct {
	includeMissing bool
	rowCount       int
	asText         bool
}

// WithMissing blanks the salary of every third employee.
func WithMissing() EmployeeOption {
	return func(cfg *employeeConfig) {
		cfg.includeMissing = true
	}
}

// WithRowCount sets the number of rows.
func WithRowCount(count int) EmployeeOption {
	return func(cfg *employeeConfig) {
		cfg.rowCount = count
	}
}

// AsText stores numbers as text, the way the CSV reader yields them.
func AsText() EmployeeOption {
	return func(cfg *employeeConfig) {
		cfg.asText = true
	}
}

var departments = []string{"Engineering", "Sales", "Engineering", "HR"}

// EmployeesDataset returns rows with name, age, department and salary.
func EmployeesDataset(opts ...EmployeeOption) dataset.Dataset {
	cfg := &employeeConfig{rowCount: defaultRowCount}
	for _, opt := range opts {
		opt(cfg)
	}

	ds := make(dataset.Dataset, cfg.rowCount)
	for i := range ds {
		age := 25 + 5*i
		salary := 50000 + 10000*i
		ageValue, salaryValue := value.Int(age), value.Int(salary)
		if cfg.asText {
			ageValue = value.Text(fmt.Sprint(age))
			salaryValue = value.Text(fmt.Sprint(salary))
		}
		if cfg.includeMissing && i%3 == 2 {
			salaryValue = value.Missing()
		}
		ds[i] = Rec("name", fmt.Sprintf("employee_%d", i), "department", departments[i%len(departments)]).
			With("age", ageValue).
			With("salary", salaryValue)
	}
	return ds
}

// AssertUniformColumns checks that every record carries the same columns
// in the same order.
func AssertUniformColumns(tb testing.TB, ds dataset.Dataset) bool {
	tb.Helper()
	if len(ds) == 0 {
		return true
	}
	want := ds[0].Keys()
	for i, rec := range ds {
		if !assert.Equal(tb, want, rec.Keys(), "record %d columns", i) {
			return false
		}
	}
	return true
}

// AssertDatasetEqual compares datasets record by record.
func AssertDatasetEqual(tb testing.TB, want, got dataset.Dataset) bool {
	tb.Helper()
	if !assert.Equal(tb, len(want), len(got), "dataset length") {
		return false
	}
	for i := range want {
		if !assert.True(tb, want[i].Equal(got[i]), "record %d: want %v, got %v", i, want[i], got[i]) {
			return false
		}
	}
	return true
}

// AssertColumnKeys checks the key strings of one column.
func AssertColumnKeys(tb testing.TB, ds dataset.Dataset, column string, want ...string) bool {
	tb.Helper()
	return assert.Equal(tb, want, dataset.GetCol(column, ds).Keys(), "column %s", column)
}
