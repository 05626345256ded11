package report

import "github.com/katalvlaran/rootfind/core"

// Sink consumes an iteration trace one record at a time. All sinks in this
// package satisfy it, and the Record method of any sink can be passed
// directly as an OnIterate hook.
type Sink interface {
	Record(core.Record) error
}

// Tee fans every record out to each sink in order, stopping at the first
// sink error. The returned function has the OnIterate hook shape, so one
// solver run can feed a table, a CSV file and a plot at once.
func Tee(sinks ...Sink) func(core.Record) error {
	return func(rec core.Record) error {
		for _, s := range sinks {
			if err := s.Record(rec); err != nil {
				return err
			}
		}
		return nil
	}
}
