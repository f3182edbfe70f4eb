// Package logging provides a simple leveled logging interface for the
// file indexer.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information, including per-file skip reasons
//   - INFO: General operational messages
//   - WARN: Warning conditions such as unreadable directories
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the application
//
// The initial level comes from the LOG_LEVEL environment variable (or DEBUG=1).
// The command line may override it with SetLevel. All output goes to stderr
// so that query results on stdout stay machine-readable.
package logging
