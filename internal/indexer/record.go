package indexer

import "time"

// Record is the finished index entry for one regular file. Records are
// values and are never modified once produced.
type Record struct {
	// Name is the file's base name
	Name string `json:"name"`
	// Path is the path the file was opened with (root joined with the
	// walk-relative path)
	Path string `json:"path"`
	// Size is the number of bytes hashed
	Size uint64 `json:"size"`
	// ModifiedAt is the modification time in seconds since 1970-01-01 UTC
	ModifiedAt uint64 `json:"modified_at"`
	// Digest is the lowercase hex SHA-256 of the file contents
	Digest string `json:"digest"`
}

// ModTime returns ModifiedAt as a UTC time.Time
func (r Record) ModTime() time.Time {
	return time.Unix(int64(r.ModifiedAt), 0).UTC()
}
