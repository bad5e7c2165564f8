// Package dedup detects repeated WKB records while a geometry set is encoded.
package dedup

import (
	"bytes"

	"github.com/arloliu/wkb/internal/hash"
)

type entry struct {
	offset uint32
	data   []byte
}

// Tracker maps record payloads to the offset where they were first written.
//
// Records are keyed by their xxHash64. Records that share a hash but differ in
// content are kept apart, so a hash collision only costs the duplicate a
// second copy in the payload.
type Tracker struct {
	seen       map[uint64][]entry
	hits       int
	collisions int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[uint64][]entry)}
}

// Lookup returns the offset of a previously tracked record equal to data.
func (t *Tracker) Lookup(data []byte) (uint32, bool) {
	for _, e := range t.seen[hash.Sum(data)] {
		if bytes.Equal(e.data, data) {
			t.hits++
			return e.offset, true
		}
	}

	return 0, false
}

// Track records that data was written at offset.
//
// data must stay unmodified while the tracker is in use; the tracker keeps a
// reference to it rather than a copy.
func (t *Tracker) Track(data []byte, offset uint32) {
	key := hash.Sum(data)
	if len(t.seen[key]) > 0 {
		t.collisions++
	}
	t.seen[key] = append(t.seen[key], entry{offset: offset, data: data})
}

// Hits returns how many lookups found an existing record.
func (t *Tracker) Hits() int {
	return t.hits
}

// Collisions returns how many distinct records shared a hash with an earlier one.
func (t *Tracker) Collisions() int {
	return t.collisions
}

// Reset clears all tracked records.
func (t *Tracker) Reset() {
	clear(t.seen)
	t.hits = 0
	t.collisions = 0
}
