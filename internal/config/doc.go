// Package config resolves the indexer's settings with viper.
//
// Values are looked up in this order, first match wins:
//   - command-line flags bound onto the viper instance
//   - environment variables prefixed with FILE_INDEXER_ (FILE_INDEXER_WORKERS,
//     FILE_INDEXER_SKIP_HIDDEN, ...); LOG_LEVEL is also accepted unprefixed
//   - the YAML file passed with --config
//   - built-in defaults
//
// Example file:
//
//	workers: 8
//	log_level: debug
//	skip_hidden: true
//	metrics_textfile: /var/lib/node_exporter/file_indexer.prom
package config
