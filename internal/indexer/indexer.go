package indexer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"file-indexer/internal/logging"
	"file-indexer/internal/metrics"
	"file-indexer/internal/workers"
)

var (
	// ErrInvalidRoot is returned when the root is missing or not a directory
	ErrInvalidRoot = errors.New("invalid index root")
	// ErrAlreadyRunning is returned when Run is called while a run is active
	ErrAlreadyRunning = errors.New("index already in progress")
)

// Config configures an indexing run
type Config struct {
	// Workers is the number of hashing goroutines. Zero sizes the pool from
	// the available CPUs; negative values use workers.Default.
	Workers int
	// SkipHidden skips files and directories starting with "."
	SkipHidden bool
}

// DefaultConfig returns the configuration used when nothing is specified
func DefaultConfig() Config {
	return Config{
		Workers: workers.Default,
	}
}

// Stats summarizes one run
type Stats struct {
	Discovered  int64
	Indexed     int64
	Skipped     int64
	WalkErrors  int64
	BytesHashed uint64
	Duration    time.Duration
}

// Indexer walks a directory tree and hashes every regular file in it using
// a fixed pool of workers that start consuming while the walk is still going.
type Indexer struct {
	root    string
	config  Config
	process processFunc

	mu        sync.Mutex
	isRunning bool
	lastStats Stats
	failures  []FileError
}

// New creates an Indexer for root
func New(root string, config Config) *Indexer {
	return &Indexer{
		root:    root,
		config:  config,
		process: processFile,
	}
}

// Index is a convenience wrapper that indexes root with the given number of
// workers and returns the records.
func Index(root string, numWorkers int) ([]Record, error) {
	return New(root, Config{Workers: numWorkers}).Run()
}

// Run indexes the tree and returns one Record per regular file that could be
// read, sorted by path. Files and directories that cannot be read are
// skipped and never cause Run to fail; the only errors are an invalid root
// and a concurrent call.
func (idx *Indexer) Run() ([]Record, error) {
	walkRoot, err := idx.checkRoot()
	if err != nil {
		return nil, err
	}
	if !idx.tryStart() {
		return nil, ErrAlreadyRunning
	}

	metrics.IndexerIsRunning.Set(1)
	defer metrics.IndexerIsRunning.Set(0)
	metrics.IndexerRunsTotal.Inc()

	numWorkers := workers.Resolve(idx.config.Workers)
	logging.Info("Indexing %s with %d workers", idx.root, numWorkers)
	startTime := time.Now()

	r := newRun(idx.process)
	r.start(numWorkers)

	idx.walkAndEnqueue(r, walkRoot)

	records := r.finish()
	duration := time.Since(startTime)
	stats := r.stats(duration)

	idx.finish(stats, r.failures)

	metrics.IndexerLastRunTimestamp.Set(float64(time.Now().Unix()))
	metrics.IndexerLastRunDuration.Set(duration.Seconds())
	metrics.IndexerRunDuration.Observe(duration.Seconds())

	logging.Info("Index complete: %d files in %v (skipped: %d, walk errors: %d)",
		stats.Indexed, duration, stats.Skipped, stats.WalkErrors)

	return records, nil
}

// Stats returns the statistics of the last completed run
func (idx *Indexer) Stats() Stats {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.lastStats
}

// Failures returns why each skipped file of the last run was skipped
func (idx *Indexer) Failures() []FileError {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	out := make([]FileError, len(idx.failures))
	copy(out, idx.failures)
	return out
}

// checkRoot validates the root and returns the directory to walk. WalkDir
// does not descend into a symlinked root, so links are resolved here.
func (idx *Indexer) checkRoot() (string, error) {
	resolved, err := filepath.EvalSymlinks(idx.root)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, idx.root)
	}
	if resolved != filepath.Clean(idx.root) {
		logging.Debug("Index root %s resolves to %s", idx.root, resolved)
	}
	return resolved, nil
}

func (idx *Indexer) tryStart() bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.isRunning {
		return false
	}
	idx.isRunning = true
	return true
}

func (idx *Indexer) finish(stats Stats, failures []FileError) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.isRunning = false
	idx.lastStats = stats
	idx.failures = failures
}

// walkAndEnqueue walks walkRoot and submits every regular file under the
// caller's root path. Unreadable entries are logged, counted and skipped.
func (idx *Indexer) walkAndEnqueue(r *run, walkRoot string) {
	err := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			r.walkErrors.Add(1)
			metrics.IndexerWalkErrors.Inc()
			logging.Warn("Error accessing path %s: %v", path, err)
			if d != nil && d.IsDir() && path != walkRoot {
				return filepath.SkipDir
			}
			return nil
		}

		if idx.config.SkipHidden && path != walkRoot && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// directories, symlinks, devices, sockets and pipes are not indexed
		if !d.Type().IsRegular() {
			return nil
		}

		r.submit(idx.underRoot(walkRoot, path))
		return nil
	})
	if err != nil {
		logging.Warn("Walk of %s stopped early: %v", idx.root, err)
	}
}

// underRoot maps a path found under walkRoot back under the root the caller
// asked for, so records keep the caller's spelling of a symlinked root.
func (idx *Indexer) underRoot(walkRoot, path string) string {
	if walkRoot == idx.root {
		return path
	}
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(idx.root, rel)
}
