// Package cli implements the file-indexer command tree on cobra.
//
// Every command indexes its root argument from scratch and then answers from
// the in-memory records:
//
//	file-indexer index <root> [worker_count]
//	file-indexer find <root> <min_megabytes>
//	file-indexer checksum <root> <filename>
//	file-indexer version
//
// Global flags are bound into viper so that the same settings can come from
// a YAML file passed with --config or from FILE_INDEXER_* environment
// variables. A malformed invocation returns an error wrapping ErrUsage;
// indexing problems are logged and never change the exit status.
package cli
