package io

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/paveg/zebras/internal/dataset"
	"github.com/paveg/zebras/internal/errors"
)

// Read reads Parquet data and returns a Dataset.
func (r *ParquetReader) Read() (dataset.Dataset, error) {
	mem := r.mem
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	// Read all data into memory for Parquet reading
	data, err := io.ReadAll(r.reader)
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}

	pqReader, err := file.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating parquet file reader: %w", err)
	}
	defer func() { _ = pqReader.Close() }()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, fmt.Errorf("creating arrow file reader: %w", err)
	}

	table, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	defer table.Release()

	ds, err := FromArrowTable(table)
	if err != nil {
		return nil, err
	}

	slog.Debug("read parquet", "rows", len(ds), "columns", table.NumCols())
	return ds, nil
}

// compressionCodec maps a codec name to the parquet compression setting.
func compressionCodec(name string) (compress.Compression, error) {
	switch strings.ToLower(name) {
	case "", "snappy":
		return compress.Codecs.Snappy, nil
	case "gzip":
		return compress.Codecs.Gzip, nil
	case "brotli":
		return compress.Codecs.Brotli, nil
	case "lz4":
		return compress.Codecs.Lz4Raw, nil
	case "zstd":
		return compress.Codecs.Zstd, nil
	case "uncompressed":
		return compress.Codecs.Uncompressed, nil
	default:
		return compress.Codecs.Uncompressed, fmt.Errorf("unsupported compression: %s", name)
	}
}

// Write writes the Dataset to Parquet format. A dataset without columns
// cannot be described by a Parquet schema and is rejected.
func (w *ParquetWriter) Write(ds dataset.Dataset) error {
	if ds.Width() == 0 {
		return errors.NewInvalidInputError("WriteParquet", "dataset has no columns")
	}

	compression, err := compressionCodec(w.options.Compression)
	if err != nil {
		return errors.NewInvalidInputError("WriteParquet", err.Error())
	}

	mem := w.mem
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	rec, err := ToArrowRecord(ds, mem)
	if err != nil {
		return fmt.Errorf("converting dataset to Arrow record: %w", err)
	}
	defer rec.Release()

	table := array.NewTableFromRecords(rec.Schema(), []arrow.Record{rec})
	defer table.Release()

	batchSize := w.options.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	props := parquet.NewWriterProperties(
		parquet.WithCompression(compression),
		parquet.WithBatchSize(int64(batchSize)),
		parquet.WithAllocator(mem),
	)
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithAllocator(mem))

	writer, err := pqarrow.NewFileWriter(table.Schema(), w.writer, props, arrowProps)
	if err != nil {
		return fmt.Errorf("creating file writer: %w", err)
	}

	if err := writer.WriteTable(table, int64(batchSize)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("writing table: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing parquet writer: %w", err)
	}

	slog.Debug("wrote parquet", "rows", len(ds), "columns", table.NumCols(), "compression", w.options.Compression)
	return nil
}
