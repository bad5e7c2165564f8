// Package hash wraps xxHash64 for geometry set checksums and deduplication keys.
package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates a checksum over several byte slices without
// concatenating them first.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest creates an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Write adds data to the running checksum.
func (d *Digest) Write(data []byte) {
	_, _ = d.d.Write(data)
}

// Sum64 returns the checksum of everything written so far.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

// Reset clears the digest for reuse.
func (d *Digest) Reset() {
	d.d.Reset()
}
