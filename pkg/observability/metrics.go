// Package observability holds the Prometheus instruments shared by the
// upload and bench commands.
package observability

import (
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RowsInserted counts city rows written by the batch loader.
	RowsInserted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "geocity",
		Subsystem: "upload",
		Name:      "rows_inserted_total",
		Help:      "Total number of city rows inserted.",
	})

	// BatchesInserted counts completed bulk inserts.
	BatchesInserted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "geocity",
		Subsystem: "upload",
		Name:      "batches_inserted_total",
		Help:      "Total number of bulk insert batches issued.",
	})

	// BenchQueryDuration tracks per-query latency of the nearest-neighbor
	// benchmark.
	BenchQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "geocity",
		Subsystem: "bench",
		Name:      "query_duration_seconds",
		Help:      "Latency of nearest-neighbor benchmark queries.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
	})
)

// LogSummary writes the final values of the geocity instruments to the
// logger. A one-shot command has no scrape endpoint, so the totals are
// reported once at the end of a run instead.
func LogSummary(logger *slog.Logger) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		logger.Warn("failed to gather metrics", slog.Any("error", err))
		return
	}

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "geocity_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				logger.Info("metric summary",
					slog.String("name", mf.GetName()),
					slog.Float64("value", m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				logger.Info("metric summary",
					slog.String("name", mf.GetName()),
					slog.Uint64("samples", m.GetHistogram().GetSampleCount()),
					slog.Float64("sum_seconds", m.GetHistogram().GetSampleSum()))
			}
		}
	}
}
