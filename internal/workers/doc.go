/*
Package workers decides how many indexing goroutines to run.

# Sizing

The indexer uses a fixed pool of Default (4) workers unless told otherwise.
Callers may pass an explicit positive count, or Auto (0) to size the pool from
runtime.GOMAXPROCS, which Go 1.19+ sets from the container CPU limit:

	n := workers.Resolve(0)  // 1.5 workers per available CPU, at most 64
	n := workers.Resolve(8)  // exactly 8
	n := workers.Resolve(-1) // Default

Note that runtime.NumCPU reports host CPUs and ignores cgroup limits, so it is
not used here.

# Environment Variable Override

Automatic sizing respects the INDEX_WORKERS environment variable:

	INDEX_WORKERS=2 file-indexer index /data 0

The override is still capped by MaxAuto. Explicit counts given on the
command line are never overridden.
*/
package workers
