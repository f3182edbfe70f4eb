package indexer

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"file-indexer/internal/digest"
	"file-indexer/internal/filesystem"
	"file-indexer/internal/logging"
	"file-indexer/internal/metrics"
	"file-indexer/internal/queue"
)

// processFunc turns one task into a result. Swappable so tests can drive the
// pool without touching the filesystem.
type processFunc func(path string) fileResult

// run is the state of one indexing pass: the work queue, the worker pool and
// everything the workers produce.
type run struct {
	jobs    *queue.Queue[string]
	records collection
	process processFunc
	wg      sync.WaitGroup

	discovered atomic.Int64
	indexed    atomic.Int64
	skipped    atomic.Int64
	walkErrors atomic.Int64
	bytes      atomic.Uint64

	failMu   sync.Mutex
	failures []FileError
}

func newRun(process processFunc) *run {
	return &run{
		jobs:    queue.New[string](),
		process: process,
	}
}

// start launches n workers. They block in Pop until the walker submits work.
func (r *run) start(n int) {
	metrics.IndexerParallelWorkers.Set(float64(n))
	for i := 0; i < n; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}
}

// submit queues one file for the workers. The depth gauge is raised before
// the push so a worker's Dec can never run first.
func (r *run) submit(path string) {
	metrics.IndexerQueueDepth.Inc()
	if err := r.jobs.Push(path); err != nil {
		metrics.IndexerQueueDepth.Dec()
		logging.Error("Dropping %s: %v", path, err)
		return
	}
	r.discovered.Add(1)
	metrics.IndexerFilesDiscovered.Inc()
}

// finish marks the queue complete, waits for every worker to drain it and
// returns the collected records.
func (r *run) finish() []Record {
	r.jobs.MarkComplete()
	r.wg.Wait()
	return r.records.take()
}

func (r *run) worker(id int) {
	defer r.wg.Done()

	logging.Debug("Worker %d started", id)

	for {
		path, ok := r.jobs.Pop()
		if !ok {
			break
		}
		metrics.IndexerQueueDepth.Dec()
		metrics.IndexerActiveWorkers.Inc()

		result := r.safeProcess(path)

		if result.err != nil {
			r.skip(result.err)
		} else {
			r.records.add(*result.record)
			r.indexed.Add(1)
			r.bytes.Add(result.bytes)
			metrics.IndexerFilesIndexed.Inc()
			metrics.IndexerBytesHashed.Add(float64(result.bytes))
		}

		metrics.IndexerActiveWorkers.Dec()
	}

	logging.Debug("Worker %d finished", id)
}

// safeProcess runs the process step and converts a panic into a failed
// result so one bad file cannot take a worker down.
func (r *run) safeProcess(path string) (result fileResult) {
	defer func() {
		if p := recover(); p != nil {
			result = failed(path, StagePanic, fmt.Errorf("panic: %v", p))
		}
	}()
	return r.process(path)
}

func (r *run) skip(fe *FileError) {
	r.skipped.Add(1)
	metrics.IndexerFilesSkipped.WithLabelValues(fe.Stage).Inc()
	logging.Debug("Skipping file: %v", fe)

	r.failMu.Lock()
	r.failures = append(r.failures, *fe)
	r.failMu.Unlock()
}

func (r *run) stats(duration time.Duration) Stats {
	return Stats{
		Discovered:  r.discovered.Load(),
		Indexed:     r.indexed.Load(),
		Skipped:     r.skipped.Load(),
		WalkErrors:  r.walkErrors.Load(),
		BytesHashed: r.bytes.Load(),
		Duration:    duration,
	}
}

// processFile probes and hashes a single file
func processFile(path string) fileResult {
	meta, err := filesystem.Probe(path)
	if err != nil {
		return failed(path, StageStat, err)
	}

	start := time.Now()
	sum, n, err := digest.HashFile(path)
	metrics.IndexerHashDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		stage := StageRead
		if errors.Is(err, digest.ErrOpen) {
			stage = StageOpen
		}
		return failed(path, stage, err)
	}

	if n != meta.Size {
		logging.Debug("Size of %s changed while hashing: %d bytes at probe, %d hashed", path, meta.Size, n)
	}

	return succeeded(Record{
		Name:       filepath.Base(path),
		Path:       path,
		Size:       meta.Size,
		ModifiedAt: meta.UnixSeconds(),
		Digest:     sum,
	}, n)
}
