package query

import (
	"math"

	"file-indexer/internal/indexer"
)

// BytesPerMegabyte is the multiplier applied to megabyte thresholds
const BytesPerMegabyte = 1024 * 1024

// MaxMegabytes is the largest threshold whose byte value fits in a uint64
const MaxMegabytes = math.MaxUint64 / BytesPerMegabyte

// MegabytesToBytes converts a threshold given in megabytes to bytes.
// Values above MaxMegabytes saturate at math.MaxUint64.
func MegabytesToBytes(mb uint64) uint64 {
	if mb > MaxMegabytes {
		return math.MaxUint64
	}
	return mb * BytesPerMegabyte
}

// FindLargerThan returns every record whose size is strictly greater than
// threshold, in input order. The input is not modified.
func FindLargerThan(records []indexer.Record, threshold uint64) []indexer.Record {
	var out []indexer.Record
	for _, r := range records {
		if r.Size > threshold {
			out = append(out, r)
		}
	}
	return out
}

// ChecksumOf returns the first record whose base name equals name.
// The boolean is false when nothing matches.
func ChecksumOf(records []indexer.Record, name string) (indexer.Record, bool) {
	for _, r := range records {
		if r.Name == name {
			return r, true
		}
	}
	return indexer.Record{}, false
}
