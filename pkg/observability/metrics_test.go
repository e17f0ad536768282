package observability

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogSummary(t *testing.T) {
	RowsInserted.Add(25000)
	BatchesInserted.Add(3)
	BenchQueryDuration.Observe(0.012)

	var buf bytes.Buffer
	LogSummary(slog.New(slog.NewTextHandler(&buf, nil)))

	out := buf.String()
	assert.Contains(t, out, "geocity_upload_rows_inserted_total")
	assert.Contains(t, out, "25000")
	assert.Contains(t, out, "geocity_upload_batches_inserted_total")
	assert.Contains(t, out, "geocity_bench_query_duration_seconds")
	assert.Contains(t, out, "samples=1")
}
