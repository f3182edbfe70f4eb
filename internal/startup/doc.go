// Package startup carries build metadata and logs the resolved runtime
// configuration when a command starts.
//
// Version, Commit and BuildTime are injected at build time:
//
//	go build -ldflags "-X file-indexer/internal/startup.Version=1.2.0 \
//	    -X file-indexer/internal/startup.Commit=$(git rev-parse --short HEAD)"
//
// LogConfig only prints at debug level (LOG_LEVEL=debug or --verbose) so that
// ordinary runs keep stderr for warnings and the final summary.
package startup
