// Package printer renders datasets as box-drawn text tables.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/paveg/zebras/internal/config"
	"github.com/paveg/zebras/internal/dataset"
	"github.com/rivo/uniseg"
)

// Options controls how cells are rendered.
type Options struct {
	// MissingText is printed for missing values
	MissingText string
	// FloatPrecision is the number of decimals for numbers (-1 = shortest)
	FloatPrecision int
}

// DefaultOptions returns default printing options
func DefaultOptions() Options {
	return Options{
		MissingText:    config.DefaultMissingText,
		FloatPrecision: config.DefaultFloatPrecision,
	}
}

// OptionsFromConfig derives printing options from the configuration
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		MissingText:    cfg.MissingText,
		FloatPrecision: cfg.FloatPrecision,
	}
}

type border struct {
	left, mid, right string
}

var (
	topBorder    = border{"┌", "┬", "┐"}
	headBorder   = border{"├", "┼", "┤"}
	bottomBorder = border{"└", "┴", "┘"}
)

const (
	horizontal = "─"
	vertical   = "│"
)

// Format renders every record of ds as a table. The header is the union
// of the columns; records without a column show the missing text.
func Format(ds dataset.Dataset, opts Options) string {
	columns := ds.Columns()
	if len(columns) == 0 {
		return ""
	}

	cells := make([][]string, len(ds))
	widths := make([]int, len(columns))
	for j, col := range columns {
		widths[j] = uniseg.StringWidth(col)
	}
	for i, rec := range ds {
		cells[i] = make([]string, len(columns))
		for j, col := range columns {
			cell := sanitize(rec.Value(col).Format(opts.FloatPrecision, opts.MissingText))
			cells[i][j] = cell
			widths[j] = max(widths[j], uniseg.StringWidth(cell))
		}
	}

	var b strings.Builder
	writeBorder(&b, widths, topBorder)
	writeRow(&b, widths, columns)
	writeBorder(&b, widths, headBorder)
	for _, row := range cells {
		writeRow(&b, widths, row)
	}
	writeBorder(&b, widths, bottomBorder)
	return b.String()
}

// sanitize keeps each cell on one line.
func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
}

func writeBorder(b *strings.Builder, widths []int, br border) {
	b.WriteString(br.left)
	for j, w := range widths {
		if j > 0 {
			b.WriteString(br.mid)
		}
		b.WriteString(strings.Repeat(horizontal, w+2))
	}
	b.WriteString(br.right)
	b.WriteByte('\n')
}

func writeRow(b *strings.Builder, widths []int, cells []string) {
	b.WriteString(vertical)
	for j, cell := range cells {
		b.WriteByte(' ')
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", widths[j]-uniseg.StringWidth(cell)+1))
		b.WriteString(vertical)
	}
	b.WriteByte('\n')
}

// Print writes the table for ds to w.
func Print(w io.Writer, ds dataset.Dataset, opts Options) error {
	if _, err := io.WriteString(w, Format(ds, opts)); err != nil {
		return fmt.Errorf("printing table: %w", err)
	}
	return nil
}

// Head writes the table for the first n records.
func Head(w io.Writer, n int, ds dataset.Dataset, opts Options) error {
	return Print(w, dataset.Head(n, ds), opts)
}

// Tail writes the table for the last n records.
func Tail(w io.Writer, n int, ds dataset.Dataset, opts Options) error {
	return Print(w, dataset.Tail(n, ds), opts)
}
