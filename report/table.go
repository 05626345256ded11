package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/rootfind/core"
)

// Table renders an iteration trace as an aligned text table, one row per
// record, with a lazily written "k a b x err" header. Rows buffer inside a
// tabwriter until Flush, which computes the column widths.
type Table struct {
	// Precision is the number of significant digits per numeric cell,
	// consulted on every row. Change it before the first Record.
	Precision int

	w      *tabwriter.Writer
	header bool
}

// NewTable returns a Table writing to w with 8 significant digits.
func NewTable(w io.Writer) *Table {
	return &Table{
		Precision: 8,
		w:         tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight),
	}
}

// Record appends one row, emitting the header first if this is the first
// record. Safe to pass as an OnIterate hook.
func (t *Table) Record(rec core.Record) error {
	if !t.header {
		if _, err := fmt.Fprintln(t.w, "k\ta\tb\tx\terr\t"); err != nil {
			return fmt.Errorf("report: write table header: %w", err)
		}
		t.header = true
	}
	_, err := fmt.Fprintf(t.w, "%d\t%.*g\t%.*g\t%.*g\t%.*g\t\n",
		rec.K, t.Precision, rec.A, t.Precision, rec.B, t.Precision, rec.X, t.Precision, rec.Err)
	if err != nil {
		return fmt.Errorf("report: write table row: %w", err)
	}
	return nil
}

// Flush aligns and writes the buffered rows to the underlying writer.
func (t *Table) Flush() error {
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("report: flush table: %w", err)
	}
	return nil
}
