package zebras

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/zebras/internal/config"
	"github.com/paveg/zebras/internal/errors"
	zio "github.com/paveg/zebras/internal/io"
	"github.com/paveg/zebras/internal/printer"
)

// ReadCSV reads a CSV file using the global configuration. Cells are
// text; use ParseNums or ParseDates to convert columns.
func ReadCSV(path string) (Dataset, error) {
	return readFile("ReadCSV", path, func(r io.Reader) zio.DataReader {
		return zio.NewCSVReader(r, zio.CSVOptionsFromConfig(config.GetGlobalConfig()))
	})
}

// ToCSV writes ds to a CSV file using the global configuration.
func ToCSV(path string, ds Dataset) error {
	return writeFile("ToCSV", path, ds, func(w io.Writer) zio.DataWriter {
		return zio.NewCSVWriter(w, zio.CSVOptionsFromConfig(config.GetGlobalConfig()))
	})
}

// ReadJSON reads a file holding a JSON array of flat objects.
func ReadJSON(path string) (Dataset, error) {
	return readFile("ReadJSON", path, func(r io.Reader) zio.DataReader {
		return zio.NewJSONReader(r, zio.DefaultJSONOptions())
	})
}

// ToJSON writes ds as a JSON array of objects.
func ToJSON(path string, ds Dataset) error {
	return writeFile("ToJSON", path, ds, func(w io.Writer) zio.DataWriter {
		return zio.NewJSONWriter(w, zio.DefaultJSONOptions())
	})
}

// ReadParquet reads a Parquet file.
func ReadParquet(path string) (Dataset, error) {
	return readFile("ReadParquet", path, func(r io.Reader) zio.DataReader {
		return zio.NewParquetReader(r, memory.DefaultAllocator)
	})
}

// ToParquet writes ds to a Parquet file using the configured codec.
func ToParquet(path string, ds Dataset) error {
	return writeFile("ToParquet", path, ds, func(w io.Writer) zio.DataWriter {
		return zio.NewParquetWriter(w, zio.ParquetOptionsFromConfig(config.GetGlobalConfig()), memory.DefaultAllocator)
	})
}

func readFile(op, path string, newReader func(io.Reader) zio.DataReader) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	ds, err := newReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, codecError(op, err))
	}
	return ds, nil
}

func writeFile(op, path string, ds Dataset, newWriter func(io.Writer) zio.DataWriter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := newWriter(f).Write(ds); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, codecError(op, err))
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// codecError passes dataset errors through and wraps anything else as an
// internal error of op.
func codecError(op string, err error) error {
	var de *errors.DatasetError
	if stderrors.As(err, &de) {
		return err
	}
	return errors.NewInternalError(op, err)
}

// Print renders ds as a box-drawn table using the global configuration.
func Print(ds Dataset) string {
	return printer.Format(ds, printer.OptionsFromConfig(config.GetGlobalConfig()))
}

// PrintHead renders the first n records.
func PrintHead(n int, ds Dataset) string {
	return Print(Head(n, ds))
}

// PrintTail renders the last n records.
func PrintTail(n int, ds Dataset) string {
	return Print(Tail(n, ds))
}
