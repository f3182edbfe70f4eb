// Package metrics provides Prometheus instrumentation for the file indexer.
//
// All metrics are registered on the default registry through promauto and are
// prefixed with "file_indexer_". The indexer is a one-shot command rather than
// a server, so metrics are not scraped over HTTP; instead WriteTextfile dumps
// them after a run for the node_exporter textfile collector:
//
//	file-indexer index /data --metrics-textfile /var/lib/node_exporter/file_indexer.prom
//
// # Metric Categories
//
// ## Run Metrics
//
//   - IndexerRunsTotal: Counter of indexing runs
//   - IndexerLastRunTimestamp: Gauge of when the last run finished
//   - IndexerLastRunDuration: Gauge of the last run duration
//   - IndexerRunDuration: Histogram of run durations
//   - IndexerIsRunning: Gauge indicating if a run is active
//
// ## Pipeline Metrics
//
//   - IndexerFilesDiscovered: Counter of regular files queued by the walker
//   - IndexerFilesIndexed: Counter of files that produced a record
//   - IndexerFilesSkipped: Counter of dropped files by failing stage
//   - IndexerWalkErrors: Counter of unreadable directory entries
//   - IndexerBytesHashed: Counter of bytes fed to the digest engine
//   - IndexerHashDuration: Histogram of per-file hash time
//   - IndexerQueueDepth: Gauge of pending tasks
//   - IndexerParallelWorkers: Gauge of pool size
//   - IndexerActiveWorkers: Gauge of workers busy on a file
//
// ## Filesystem Metrics
//
// Recorded through the filesystem.Observer returned by NewFilesystemObserver:
//   - FilesystemOperationDuration: Histogram by operation (stat, open, read)
//   - FilesystemOperationErrors: Counter by operation
package metrics
