package indexer

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-indexer/internal/metrics"
)

func trivialProcess(path string) fileResult {
	return succeeded(Record{Name: path, Path: path, Size: 1, Digest: "00"}, 1)
}

func TestPoolStress(t *testing.T) {
	t.Parallel()

	const tasks = 10000

	r := newRun(trivialProcess)
	r.start(16)
	for i := 0; i < tasks; i++ {
		r.submit(fmt.Sprintf("/virtual/%05d", i))
	}
	records := r.finish()

	require.Len(t, records, tasks)
	seen := make(map[string]struct{}, tasks)
	for _, rec := range records {
		_, dup := seen[rec.Path]
		require.False(t, dup, "duplicate record for %s", rec.Path)
		seen[rec.Path] = struct{}{}
	}

	stats := r.stats(time.Second)
	assert.Equal(t, int64(tasks), stats.Discovered)
	assert.Equal(t, int64(tasks), stats.Indexed)
	assert.Equal(t, uint64(tasks), stats.BytesHashed)
}

func TestPoolFailuresAndPanicsAreSkipped(t *testing.T) {
	t.Parallel()

	process := func(path string) fileResult {
		switch {
		case strings.HasSuffix(path, "-fail"):
			return failed(path, StageRead, errors.New("io error"))
		case strings.HasSuffix(path, "-panic"):
			panic("corrupt state")
		default:
			return trivialProcess(path)
		}
	}

	r := newRun(process)
	r.start(4)
	for i := 0; i < 30; i++ {
		suffix := ""
		switch i % 3 {
		case 1:
			suffix = "-fail"
		case 2:
			suffix = "-panic"
		}
		r.submit(fmt.Sprintf("task%02d%s", i, suffix))
	}
	records := r.finish()

	assert.Len(t, records, 10)
	stats := r.stats(0)
	assert.Equal(t, int64(30), stats.Discovered)
	assert.Equal(t, int64(10), stats.Indexed)
	assert.Equal(t, int64(20), stats.Skipped)

	stages := map[string]int{}
	for _, f := range r.failures {
		stages[f.Stage]++
	}
	assert.Equal(t, map[string]int{StageRead: 10, StagePanic: 10}, stages)
}

// Workers must start consuming before the walk has finished.
func TestPoolConsumesBeforeCompletion(t *testing.T) {
	t.Parallel()

	processed := make(chan string, 1)
	r := newRun(func(path string) fileResult {
		processed <- path
		return trivialProcess(path)
	})
	r.start(2)
	r.submit("first")

	select {
	case p := <-processed:
		assert.Equal(t, "first", p)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not pick up a task before the queue was completed")
	}
	assert.False(t, r.jobs.Completed())

	records := r.finish()
	assert.Len(t, records, 1)
}

func TestPoolNoTasks(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	r := newRun(func(path string) fileResult {
		calls.Add(1)
		return trivialProcess(path)
	})
	r.start(8)

	done := make(chan []Record)
	go func() { done <- r.finish() }()

	select {
	case records := <-done:
		assert.Empty(t, records)
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not exit on an empty completed queue")
	}
	assert.Zero(t, calls.Load())
}

func TestPoolCountsHashedBytesSeparately(t *testing.T) {
	t.Parallel()

	// the file grew from 10 to 14 bytes between probe and read
	r := newRun(func(path string) fileResult {
		return succeeded(Record{Name: path, Path: path, Size: 10, Digest: "00"}, 14)
	})
	r.start(1)
	r.submit("grown")
	records := r.finish()

	require.Len(t, records, 1)
	assert.Equal(t, uint64(10), records[0].Size)
	assert.Equal(t, uint64(14), r.stats(0).BytesHashed)
}

// Not parallel: reads a process-wide gauge.
func TestSubmitAfterFinishLeavesQueueDepth(t *testing.T) {
	r := newRun(trivialProcess)
	r.start(1)
	require.Empty(t, r.finish())

	before := testutil.ToFloat64(metrics.IndexerQueueDepth)
	r.submit("late")
	assert.Equal(t, before, testutil.ToFloat64(metrics.IndexerQueueDepth))
	assert.Zero(t, r.stats(0).Discovered)
}

// Not parallel: reads a process-wide gauge.
func TestQueueDepthReturnsToStart(t *testing.T) {
	before := testutil.ToFloat64(metrics.IndexerQueueDepth)

	r := newRun(trivialProcess)
	r.start(4)
	for i := 0; i < 500; i++ {
		r.submit(fmt.Sprintf("/virtual/%03d", i))
	}
	require.Len(t, r.finish(), 500)

	assert.Equal(t, before, testutil.ToFloat64(metrics.IndexerQueueDepth))
}
