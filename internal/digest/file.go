package digest

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"file-indexer/internal/filesystem"
)

// Errors wrapped by HashFile to tell callers which stage failed
var (
	ErrOpen = errors.New("open failed")
	ErrRead = errors.New("read failed")
)

// chunkSize is the read buffer used when streaming files into an Engine
const chunkSize = 32 * 1024

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, chunkSize)
		return &b
	},
}

// HashFile streams the file at path through a fresh Engine and returns the
// hex digest together with the number of bytes hashed. The file is read in
// fixed-size chunks, so memory use does not depend on file size.
func HashFile(path string) (string, uint64, error) {
	r, err := filesystem.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %s: %w", ErrOpen, path, err)
	}
	defer r.Close()

	return hashReader(r, path)
}

func hashReader(r io.Reader, path string) (string, uint64, error) {
	bp := bufPool.Get().(*[]byte)
	defer bufPool.Put(bp)

	e := New()
	if _, err := io.CopyBuffer(e, r, *bp); err != nil {
		return "", 0, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	n := e.Len()
	return e.Finalize(), n, nil
}

// FileDigest is the tolerant form of HashFile: it returns "" when the file
// cannot be opened or read and leaves the decision to the caller.
func FileDigest(path string) string {
	sum, _, err := HashFile(path)
	if err != nil {
		return ""
	}
	return sum
}
