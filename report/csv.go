package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/rootfind/core"
)

// csvHeader is the first row of every trace file.
var csvHeader = []string{"k", "a", "b", "x", "err"}

// CSV writes an iteration trace as comma-separated values with a lazily
// written header. Floats use the shortest representation that round-trips,
// so a trace file reproduces the run bit for bit.
type CSV struct {
	w      *csv.Writer
	header bool
}

// NewCSV returns a CSV sink writing to w.
func NewCSV(w io.Writer) *CSV {
	return &CSV{w: csv.NewWriter(w)}
}

// Record appends one row, emitting the header first if this is the first
// record. Safe to pass as an OnIterate hook.
func (c *CSV) Record(rec core.Record) error {
	if !c.header {
		if err := c.w.Write(csvHeader); err != nil {
			return fmt.Errorf("report: write csv header: %w", err)
		}
		c.header = true
	}
	row := []string{
		strconv.Itoa(rec.K),
		strconv.FormatFloat(rec.A, 'g', -1, 64),
		strconv.FormatFloat(rec.B, 'g', -1, 64),
		strconv.FormatFloat(rec.X, 'g', -1, 64),
		strconv.FormatFloat(rec.Err, 'g', -1, 64),
	}
	if err := c.w.Write(row); err != nil {
		return fmt.Errorf("report: write csv row: %w", err)
	}
	return nil
}

// Flush writes any buffered rows and reports deferred write errors.
func (c *CSV) Flush() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return fmt.Errorf("report: flush csv: %w", err)
	}
	return nil
}
