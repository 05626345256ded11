// Package report turns iteration traces into human- and machine-readable
// artifacts: an aligned text table, a CSV file, and a convergence chart.
//
// Every sink exposes Record(core.Record) error, the exact shape of the
// WithOnIterate hooks on the solver packages, so wiring is one line:
//
//	table := report.NewTable(os.Stdout)
//	res, err := bracket.Illinois(f, 1, 2, 1e-8, 50,
//	    bracket.WithOnIterate(table.Record))
//	...
//	table.Flush()
//
// Tee composes several sinks into one hook when a single run should feed
// more than one artifact. Table and CSV stream with a small buffer and
// need a final Flush; Plot accumulates the whole series and renders on
// Render or Save.
package report
