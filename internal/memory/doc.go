// Package memory configures Go's soft memory limit for containerized runs.
//
// # Overview
//
// The indexer streams files through fixed-size buffers, so its heap is small
// and mostly made of queued paths and finished records. On very large trees
// those still add up, and a container without GOMEMLIMIT may be OOM-killed
// before the garbage collector feels any pressure. Unlike GOMAXPROCS, which
// Go derives from the cgroup CPU limit, GOMEMLIMIT must be set explicitly.
//
// Call [ConfigureFromEnv] early in main, before significant allocations:
//
//	func main() {
//	    memory.ConfigureFromEnv()
//	    // ...
//	}
//
// # Environment Variables
//
//   - GOMEMLIMIT: Standard Go environment variable. If set, takes precedence
//     over everything else and is only reported.
//
//   - MEMORY_LIMIT: Container memory limit, as plain bytes ("536870912") or
//     with a unit ("512MiB", "2GB"). Typically injected via the Kubernetes
//     Downward API from limits.memory.
//
//   - MEMORY_RATIO: Share of MEMORY_LIMIT to give the Go heap, between 0.0 and
//     1.0. Default is 0.85.
package memory
