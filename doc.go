// Package main provides the entry point for file-indexer.
//
// file-indexer walks a directory tree, computes a SHA-256 checksum of every
// regular file with a fixed pool of worker goroutines and answers simple
// queries over the result. Nothing is persisted: every command indexes its
// root from scratch.
//
// # Application Lifecycle
//
//  1. Memory Configuration: Sets GOMEMLIMIT from MEMORY_LIMIT if present
//  2. Configuration Loading: Flags, FILE_INDEXER_* environment variables and
//     an optional YAML file are merged through viper
//  3. Indexing: The walker feeds a blocking work queue that the workers start
//     draining immediately; records are collected under a single lock
//  4. Query: find or checksum scan the collected records
//  5. Metrics: With --metrics-textfile, Prometheus metrics are written in
//     text exposition format for a node_exporter textfile collector
//
// # Usage
//
//	file-indexer index <root> [worker_count]
//	file-indexer find <root> <min_megabytes>
//	file-indexer checksum <root> <filename>
//	file-indexer version
//
// # Environment Variables
//
//   - FILE_INDEXER_WORKERS: Default worker count (default: 4, 0 = auto)
//   - FILE_INDEXER_SKIP_HIDDEN: Skip dot files and directories
//   - FILE_INDEXER_METRICS_TEXTFILE: Metrics output path
//   - LOG_LEVEL / FILE_INDEXER_LOG_LEVEL: debug, info, warn or error
//   - DEBUG: Set to "true" or "1" for debug logging
//   - INDEX_WORKERS: Overrides the auto-sized worker count
//   - MEMORY_LIMIT, MEMORY_RATIO, GOMEMLIMIT: Go heap limit
//
// Malformed invocations exit with status 1. Errors while indexing are logged
// to stderr and do not change the exit status.
package main
