package digest

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math/bits"
)

const (
	// Size is the length of a SHA-256 digest in bytes
	Size = 32
	// BlockSize is the number of bytes consumed by one compression round
	BlockSize = 64
)

// ErrFinalized is the panic value raised when a spent Engine is reused
var ErrFinalized = errors.New("digest: engine already finalized")

var initial = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Engine is a streaming SHA-256 state. It is not safe for concurrent use;
// each in-flight file gets its own Engine.
type Engine struct {
	h      [8]uint32
	buf    [BlockSize]byte
	nbuf   int
	length uint64 // total bytes fed so far
	done   bool
}

// New returns an Engine ready to accept input
func New() *Engine {
	return &Engine{h: initial}
}

// Update feeds p into the hash. Chunks may be any size, including zero.
func (e *Engine) Update(p []byte) {
	if e.done {
		panic(ErrFinalized)
	}
	e.length += uint64(len(p))

	if e.nbuf > 0 {
		n := copy(e.buf[e.nbuf:], p)
		e.nbuf += n
		p = p[n:]
		if e.nbuf < BlockSize {
			return
		}
		e.block(e.buf[:])
		e.nbuf = 0
	}

	for len(p) >= BlockSize {
		e.block(p[:BlockSize])
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		e.nbuf = copy(e.buf[:], p)
	}
}

// Write implements io.Writer so an Engine can sit at the end of io.Copy.
// It never fails.
func (e *Engine) Write(p []byte) (int, error) {
	e.Update(p)
	return len(p), nil
}

// Len reports the number of bytes consumed so far
func (e *Engine) Len() uint64 {
	return e.length
}

// Sum pads the message, processes the remaining block(s) and returns the raw
// digest. The Engine is spent afterwards.
func (e *Engine) Sum() [Size]byte {
	if e.done {
		panic(ErrFinalized)
	}
	bitLen := e.length << 3

	// 0x80, zeros up to 56 mod 64, then the 64-bit big-endian bit length
	var pad [BlockSize + 8]byte
	pad[0] = 0x80
	padLen := BlockSize + 56 - e.nbuf
	if e.nbuf < 56 {
		padLen = 56 - e.nbuf
	}
	binary.BigEndian.PutUint64(pad[padLen:], bitLen)
	e.Update(pad[:padLen+8])
	e.done = true

	var out [Size]byte
	for i, v := range e.h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// Finalize returns the lowercase hex digest. The Engine is spent afterwards.
func (e *Engine) Finalize() string {
	sum := e.Sum()
	return hex.EncodeToString(sum[:])
}

// Sum returns the hex SHA-256 digest of data
func Sum(data []byte) string {
	e := New()
	e.Update(data)
	return e.Finalize()
}

func (e *Engine) block(p []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := bits.RotateLeft32(w[i-15], -7) ^ bits.RotateLeft32(w[i-15], -18) ^ (w[i-15] >> 3)
		s1 := bits.RotateLeft32(w[i-2], -17) ^ bits.RotateLeft32(w[i-2], -19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d := e.h[0], e.h[1], e.h[2], e.h[3]
	ee, f, g, hh := e.h[4], e.h[5], e.h[6], e.h[7]

	for i := 0; i < 64; i++ {
		s1 := bits.RotateLeft32(ee, -6) ^ bits.RotateLeft32(ee, -11) ^ bits.RotateLeft32(ee, -25)
		ch := (ee & f) ^ (^ee & g)
		t1 := hh + s1 + ch + k[i] + w[i]
		s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		hh = g
		g = f
		f = ee
		ee = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	e.h[0] += a
	e.h[1] += b
	e.h[2] += c
	e.h[3] += d
	e.h[4] += ee
	e.h[5] += f
	e.h[6] += g
	e.h[7] += hh
}
