package indexer

import "fmt"

// Stages at which processing a single file can fail
const (
	StageStat  = "stat"
	StageOpen  = "open"
	StageRead  = "read"
	StagePanic = "panic"
)

// FileError describes why a file was left out of the index
type FileError struct {
	Path  string
	Stage string
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// fileResult is the outcome of processing one task: exactly one of record
// and err is set.
// bytes counts what was actually hashed, which differs from record.Size
// when the file changed between probe and read.
type fileResult struct {
	record *Record
	err    *FileError
	bytes  uint64
}

func succeeded(r Record, hashed uint64) fileResult {
	return fileResult{record: &r, bytes: hashed}
}

func failed(path, stage string, err error) fileResult {
	return fileResult{err: &FileError{Path: path, Stage: stage, Err: err}}
}
