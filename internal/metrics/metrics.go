package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Indexer run metrics
var (
	IndexerRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "file_indexer_runs_total",
			Help: "Total number of indexing runs",
		},
	)

	IndexerLastRunTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "file_indexer_last_run_timestamp",
			Help: "Unix timestamp at which the last indexing run finished",
		},
	)

	IndexerLastRunDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "file_indexer_last_run_duration_seconds",
			Help: "Duration of the last indexing run in seconds",
		},
	)

	IndexerRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "file_indexer_run_duration_seconds",
			Help:    "Distribution of indexing run durations",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300, 900},
		},
	)

	IndexerIsRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "file_indexer_running",
			Help: "Whether an indexing run is in progress (1 = running, 0 = idle)",
		},
	)
)

// Pipeline metrics
var (
	IndexerFilesDiscovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "file_indexer_files_discovered_total",
			Help: "Regular files found by the walker and queued for indexing",
		},
	)

	IndexerFilesIndexed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "file_indexer_files_indexed_total",
			Help: "Files that produced a record",
		},
	)

	IndexerFilesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "file_indexer_files_skipped_total",
			Help: "Files dropped from the index, by the stage that failed",
		},
		[]string{"stage"}, // "stat", "open", "read", "panic"
	)

	IndexerWalkErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "file_indexer_walk_errors_total",
			Help: "Directory entries skipped because they could not be read",
		},
	)

	IndexerBytesHashed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "file_indexer_bytes_hashed_total",
			Help: "Bytes fed through the digest engine",
		},
	)

	IndexerHashDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "file_indexer_hash_duration_seconds",
			Help:    "Time spent hashing a single file",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
	)

	IndexerQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "file_indexer_queue_depth",
			Help: "Tasks waiting in the work queue",
		},
	)

	IndexerParallelWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "file_indexer_parallel_workers",
			Help: "Size of the worker pool for the current or last run",
		},
	)

	IndexerActiveWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "file_indexer_active_workers",
			Help: "Workers currently processing a file",
		},
	)
)

// Filesystem metrics
var (
	FilesystemOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "file_indexer_filesystem_operation_duration_seconds",
			Help:    "Duration of filesystem operations",
			Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"operation"}, // "stat", "open", "read"
	)

	FilesystemOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "file_indexer_filesystem_operation_errors_total",
			Help: "Failed filesystem operations",
		},
		[]string{"operation"},
	)
)
