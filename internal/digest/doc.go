// Package digest implements SHA-256 as a streaming engine.
//
// An Engine accepts input in chunks of any size through Update (or Write, so
// it can be the destination of io.Copy), buffers partial 64-byte blocks
// between calls and produces the final digest with Finalize. All arithmetic is
// on uint32 with wraparound and the output matches FIPS 180-4 bit for bit.
//
// HashFile streams a file through an Engine with a pooled 32 KiB buffer.
// Engines are single-use and must not be shared between goroutines.
package digest
