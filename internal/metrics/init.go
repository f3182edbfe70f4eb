package metrics

import "file-indexer/internal/filesystem"

// SkipStages lists the stage labels used by IndexerFilesSkipped
var SkipStages = []string{"stat", "open", "read", "panic"}

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first scrape or textfile write.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, stage := range SkipStages {
		IndexerFilesSkipped.WithLabelValues(stage)
	}

	for _, op := range []string{filesystem.OpStat, filesystem.OpOpen, filesystem.OpRead} {
		FilesystemOperationDuration.WithLabelValues(op)
		FilesystemOperationErrors.WithLabelValues(op)
	}
}
