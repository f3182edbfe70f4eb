package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Operation names reported to the Observer
const (
	OpStat = "stat"
	OpOpen = "open"
	OpRead = "read"
)

// ErrNotRegular is returned by Probe for directories, devices, sockets and
// anything else that is not a plain file.
var ErrNotRegular = errors.New("not a regular file")

// Metadata is the subset of os.FileInfo the indexer cares about
type Metadata struct {
	Size    uint64
	ModTime time.Time
}

// UnixSeconds returns the modification time as seconds since 1970-01-01 UTC.
// Times before the epoch clamp to zero.
func (m Metadata) UnixSeconds() uint64 {
	secs := m.ModTime.Unix()
	if secs < 0 {
		return 0
	}
	return uint64(secs)
}

// Probe stats path and returns its metadata. Symlinks are followed, so a
// link to a regular file probes as that file.
func Probe(path string) (Metadata, error) {
	start := time.Now()
	info, err := os.Stat(path)
	if err == nil && !info.Mode().IsRegular() {
		err = fmt.Errorf("%s: %w", path, ErrNotRegular)
	}
	observe(OpStat, time.Since(start).Seconds(), err)
	if err != nil {
		return Metadata{}, err
	}

	size := info.Size()
	if size < 0 {
		size = 0
	}
	return Metadata{
		Size:    uint64(size),
		ModTime: info.ModTime(),
	}, nil
}

// Open opens path read-only. The returned reader reports read timings and
// errors to the Observer; the caller must close it.
func Open(path string) (io.ReadCloser, error) {
	start := time.Now()
	f, err := os.Open(path)
	observe(OpOpen, time.Since(start).Seconds(), err)
	if err != nil {
		return nil, err
	}
	return &observedFile{f: f}, nil
}

// observedFile accumulates read time and reports it once on Close, so a
// multi-gigabyte file costs one observation instead of one per chunk.
type observedFile struct {
	f       *os.File
	elapsed time.Duration
	readErr error
}

func (f *observedFile) Read(p []byte) (int, error) {
	start := time.Now()
	n, err := f.f.Read(p)
	f.elapsed += time.Since(start)
	if err != nil && err != io.EOF && f.readErr == nil {
		f.readErr = err
	}
	return n, err
}

func (f *observedFile) Close() error {
	observe(OpRead, f.elapsed.Seconds(), f.readErr)
	return f.f.Close()
}
