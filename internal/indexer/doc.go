// Package indexer builds an in-memory index of a directory tree.
//
// For every regular file it records:
//   - The base name and the path it was opened with
//   - The size in bytes
//   - The modification time, as seconds since the Unix epoch
//   - The SHA-256 digest of its contents
//
// # Pipeline
//
// Run starts a fixed pool of workers before it walks the tree. The walker
// pushes each regular file onto a queue.Queue while the workers pop paths,
// probe metadata, hash the contents and append the resulting Record to a
// shared collection. Indexing therefore overlaps scanning. Once the walk ends
// the queue is marked complete, the workers drain it and exit, and Run returns
// the records sorted by path.
//
// # Failures
//
// Per-file work produces an explicit result. A file that cannot be stat'ed,
// opened or read is left out of the index; the reason is logged at debug
// level, counted in Stats and kept in Failures. Unreadable directories are
// skipped the same way. None of these fail the run.
//
// The pool size defaults to workers.Default (4). Zero sizes it from
// GOMAXPROCS (see package workers).
package indexer
