// Package io reads and writes datasets as CSV, JSON and Parquet.
//
// CSV cells are read as text, the way they appear in the file; callers
// convert columns with dataset.ParseNums or dataset.ParseDates. JSON keeps
// the scalar types of the document and the key order of each object.
// Parquet goes through Apache Arrow with one column per dataset column.
package io

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/zebras/internal/config"
	"github.com/paveg/zebras/internal/dataset"
)

const (
	// DefaultBatchSize is the default batch size for Parquet writes
	DefaultBatchSize = 1000
)

// DataReader defines the interface for reading data from various sources
type DataReader interface {
	// Read reads data from the source and returns a Dataset
	Read() (dataset.Dataset, error)
}

// DataWriter defines the interface for writing data to various destinations
type DataWriter interface {
	// Write writes the Dataset to the destination
	Write(ds dataset.Dataset) error
}

// CSVOptions contains configuration options for CSV operations
type CSVOptions struct {
	// Delimiter is the field delimiter (default: comma)
	Delimiter rune
	// Comment is the comment character (default: 0 = disabled)
	Comment rune
	// Header indicates whether the first row contains headers
	Header bool
	// SkipInitialSpace indicates whether to skip initial whitespace
	SkipInitialSpace bool
	// FloatPrecision is the number of decimals written for numbers (-1 = shortest)
	FloatPrecision int
}

// DefaultCSVOptions returns default CSV options
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter:        ',',
		Comment:          0,
		Header:           true,
		SkipInitialSpace: false,
		FloatPrecision:   -1,
	}
}

// CSVOptionsFromConfig derives CSV options from the configuration
func CSVOptionsFromConfig(cfg config.Config) CSVOptions {
	options := DefaultCSVOptions()
	options.Delimiter = cfg.Delimiter()
	options.Header = cfg.CSVHeader
	options.FloatPrecision = cfg.FloatPrecision
	return options
}

// CSVReader reads CSV data into Datasets
type CSVReader struct {
	reader  io.Reader
	options CSVOptions
}

// NewCSVReader creates a new CSV reader with the specified options
func NewCSVReader(reader io.Reader, options CSVOptions) *CSVReader {
	return &CSVReader{
		reader:  reader,
		options: options,
	}
}

// CSVWriter writes Datasets to CSV format
type CSVWriter struct {
	writer  io.Writer
	options CSVOptions
}

// NewCSVWriter creates a new CSV writer with the specified options
func NewCSVWriter(writer io.Writer, options CSVOptions) *CSVWriter {
	return &CSVWriter{
		writer:  writer,
		options: options,
	}
}

// JSONFormat selects the JSON layout
type JSONFormat int

const (
	// JSONArray is a single array of objects
	JSONArray JSONFormat = iota
	// JSONLines is one object per line
	JSONLines
)

// JSONOptions contains configuration options for JSON operations
type JSONOptions struct {
	// Format is the JSON layout
	Format JSONFormat
	// MaxRecords limits the number of records read (0 = unlimited)
	MaxRecords int
}

// DefaultJSONOptions returns default JSON options
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{
		Format:     JSONArray,
		MaxRecords: 0,
	}
}

// JSONReader reads JSON data into Datasets
type JSONReader struct {
	reader  io.Reader
	options JSONOptions
}

// NewJSONReader creates a new JSON reader with the specified options
func NewJSONReader(reader io.Reader, options JSONOptions) *JSONReader {
	return &JSONReader{
		reader:  reader,
		options: options,
	}
}

// JSONWriter writes Datasets to JSON format
type JSONWriter struct {
	writer  io.Writer
	options JSONOptions
}

// NewJSONWriter creates a new JSON writer with the specified options
func NewJSONWriter(writer io.Writer, options JSONOptions) *JSONWriter {
	return &JSONWriter{
		writer:  writer,
		options: options,
	}
}

// ParquetOptions contains configuration options for Parquet operations
type ParquetOptions struct {
	// Compression type for Parquet files
	Compression string
	// BatchSize for writing operations
	BatchSize int
}

// DefaultParquetOptions returns default Parquet options
func DefaultParquetOptions() ParquetOptions {
	return ParquetOptions{
		Compression: config.DefaultParquetCompression,
		BatchSize:   DefaultBatchSize,
	}
}

// ParquetOptionsFromConfig derives Parquet options from the configuration
func ParquetOptionsFromConfig(cfg config.Config) ParquetOptions {
	options := DefaultParquetOptions()
	options.Compression = cfg.ParquetCompression
	return options
}

// ParquetReader reads Parquet data into Datasets
type ParquetReader struct {
	reader io.Reader
	mem    memory.Allocator
}

// NewParquetReader creates a new Parquet reader
func NewParquetReader(reader io.Reader, mem memory.Allocator) *ParquetReader {
	return &ParquetReader{
		reader: reader,
		mem:    mem,
	}
}

// ParquetWriter writes Datasets to Parquet format
type ParquetWriter struct {
	writer  io.Writer
	options ParquetOptions
	mem     memory.Allocator
}

// NewParquetWriter creates a new Parquet writer with the specified options
func NewParquetWriter(writer io.Writer, options ParquetOptions, mem memory.Allocator) *ParquetWriter {
	return &ParquetWriter{
		writer:  writer,
		options: options,
		mem:     mem,
	}
}
