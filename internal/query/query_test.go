package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"file-indexer/internal/indexer"
)

func sample() []indexer.Record {
	return []indexer.Record{
		{Name: "empty.txt", Path: "/r/empty.txt", Size: 0, Digest: "e3b0"},
		{Name: "big.bin", Path: "/r/a/big.bin", Size: 5 * BytesPerMegabyte, Digest: "b1"},
		{Name: "edge.bin", Path: "/r/edge.bin", Size: BytesPerMegabyte, Digest: "ed"},
		{Name: "dup.txt", Path: "/r/a/dup.txt", Size: 10, Digest: "first"},
		{Name: "dup.txt", Path: "/r/b/dup.txt", Size: 20, Digest: "second"},
		{Name: "huge.iso", Path: "/r/huge.iso", Size: 3 * BytesPerMegabyte, Digest: "h"},
	}
}

func TestMegabytesToBytes(t *testing.T) {
	assert.Equal(t, uint64(0), MegabytesToBytes(0))
	assert.Equal(t, uint64(1048576), MegabytesToBytes(1))
	assert.Equal(t, uint64(5*1048576), MegabytesToBytes(5))
	assert.Equal(t, uint64(math.MaxUint64-(BytesPerMegabyte-1)), MegabytesToBytes(MaxMegabytes))
}

func TestMegabytesToBytesSaturates(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint64), MegabytesToBytes(MaxMegabytes+1))
	assert.Equal(t, uint64(math.MaxUint64), MegabytesToBytes(1<<44))
	assert.Equal(t, uint64(math.MaxUint64), MegabytesToBytes(math.MaxUint64))

	// a saturated threshold must not match anything
	assert.Empty(t, FindLargerThan(sample(), MegabytesToBytes(1<<44)))
}

func TestFindLargerThan(t *testing.T) {
	tests := []struct {
		name      string
		threshold uint64
		wantPaths []string
	}{
		{
			name:      "zero threshold excludes empty files",
			threshold: 0,
			wantPaths: []string{"/r/a/big.bin", "/r/edge.bin", "/r/a/dup.txt", "/r/b/dup.txt", "/r/huge.iso"},
		},
		{
			name:      "strictly greater than one megabyte",
			threshold: MegabytesToBytes(1),
			wantPaths: []string{"/r/a/big.bin", "/r/huge.iso"},
		},
		{
			name:      "nothing above threshold",
			threshold: MegabytesToBytes(100),
			wantPaths: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := sample()
			got := FindLargerThan(records, tt.threshold)

			var paths []string
			for _, r := range got {
				assert.Greater(t, r.Size, tt.threshold)
				paths = append(paths, r.Path)
			}
			assert.Equal(t, tt.wantPaths, paths)
			assert.Equal(t, sample(), records, "input must not be modified")
		})
	}
}

func TestFindLargerThanIdempotent(t *testing.T) {
	records := sample()
	first := FindLargerThan(records, 15)
	second := FindLargerThan(records, 15)
	assert.Equal(t, first, second)
	assert.Equal(t, first, FindLargerThan(first, 15))
}

func TestFindLargerThanEmptyInput(t *testing.T) {
	assert.Empty(t, FindLargerThan(nil, 0))
}

func TestChecksumOf(t *testing.T) {
	records := sample()

	_, ok := ChecksumOf(records, "missing.txt")
	assert.False(t, ok)

	r, ok := ChecksumOf(records, "big.bin")
	assert.True(t, ok)
	assert.Equal(t, "b1", r.Digest)

	r, ok = ChecksumOf(records, "dup.txt")
	assert.True(t, ok)
	assert.Equal(t, "first", r.Digest)
	assert.Equal(t, "/r/a/dup.txt", r.Path)

	_, ok = ChecksumOf(records, "DUP.TXT")
	assert.False(t, ok, "names match exactly")

	_, ok = ChecksumOf(nil, "anything")
	assert.False(t, ok)
}
