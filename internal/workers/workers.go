package workers

import (
	"os"
	"runtime"
	"strconv"
)

const (
	// Default is the pool size used when the caller does not ask for one
	Default = 4

	// Auto asks Resolve to size the pool from the available CPUs
	Auto = 0

	// MaxAuto caps automatically sized pools
	MaxAuto = 64

	// EnvOverride names the environment variable that overrides auto sizing
	EnvOverride = "INDEX_WORKERS"
)

// Count returns a worker count for a given task type.
// It respects container CPU limits via GOMAXPROCS (Go 1.19+).
//
// The multiplier adjusts for task characteristics:
//   - 1.0 for CPU-bound tasks
//   - 2.0 for I/O-bound tasks
//   - 1.5 for mixed tasks
//
// The limit parameter caps the worker count to prevent resource exhaustion.
// Use 0 for no limit.
//
// Can be overridden with the INDEX_WORKERS environment variable.
func Count(multiplier float64, limit int) int {
	if override := os.Getenv(EnvOverride); override != "" {
		if count, err := strconv.Atoi(override); err == nil && count > 0 {
			if limit > 0 && count > limit {
				return limit
			}
			return count
		}
	}

	available := runtime.GOMAXPROCS(0)

	workers := int(float64(available) * multiplier)

	if workers < 1 {
		workers = 1
	}
	if limit > 0 && workers > limit {
		workers = limit
	}

	return workers
}

// ForMixed returns worker count for mixed tasks (1.5 per CPU).
// Hashing files is CPU work interleaved with reads, so this is what Auto uses.
func ForMixed(limit int) int {
	return Count(1.5, limit)
}

// Resolve turns a requested pool size into the size actually used.
// Positive values are taken as-is, Auto sizes from GOMAXPROCS, and anything
// negative falls back to Default.
func Resolve(requested int) int {
	switch {
	case requested > 0:
		return requested
	case requested == Auto:
		return ForMixed(MaxAuto)
	default:
		return Default
	}
}
