package report_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/report"
)

// TestCSV_RoundTrip writes records with awkward non-terminating values and
// reads them back bit for bit, the property the 'g'/-1 format buys.
func TestCSV_RoundTrip(t *testing.T) {
	recs := []core.Record{
		{K: 1, A: 1, B: 2, X: 7.0 / 6.0, Err: 0.5787037037037037},
		{K: 2, A: 7.0 / 6.0, B: 2, X: 1.2531120713919645, Err: 0.28536437},
	}

	var buf bytes.Buffer
	sink := report.NewCSV(&buf)
	for _, rec := range recs {
		require.NoError(t, sink.Record(rec))
	}
	require.NoError(t, sink.Flush())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(recs)+1)
	assert.Equal(t, []string{"k", "a", "b", "x", "err"}, rows[0])

	for i, rec := range recs {
		row := rows[i+1]
		k, err := strconv.Atoi(row[0])
		require.NoError(t, err)
		assert.Equal(t, rec.K, k)
		for j, want := range []float64{rec.A, rec.B, rec.X, rec.Err} {
			got, err := strconv.ParseFloat(row[j+1], 64)
			require.NoError(t, err)
			assert.Equal(t, want, got, "column %d must round-trip exactly", j+1)
		}
	}
}

// TestCSV_HeaderOnce keeps a single header across many records.
func TestCSV_HeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	sink := report.NewCSV(&buf)
	for k := 1; k <= 5; k++ {
		require.NoError(t, sink.Record(core.Record{K: k}))
	}
	require.NoError(t, sink.Flush())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 6)
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestCSV_FlushReportsWriteError surfaces deferred writer errors at Flush.
func TestCSV_FlushReportsWriteError(t *testing.T) {
	sink := report.NewCSV(failWriter{})
	require.NoError(t, sink.Record(core.Record{K: 1}))

	err := sink.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report: flush csv")
}
