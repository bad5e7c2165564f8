package raw

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/section"
)

// Polygon is a view over an encoded polygon. Ring 0 is the shell, the
// remaining rings are holes.
type Polygon struct {
	data []byte
}

// NewPolygon creates a Polygon view.
//
// Construction walks every ring and fails with ErrMalformedInput when the
// ring count or a point count is negative, when a ring's first and last
// coordinates differ, or when the rings do not consume the region exactly.
// The *errs.Error of a ring failure carries the ring index in Index.
func NewPolygon(g Geometry) (Polygon, error) {
	if err := validatePolygon(g); err != nil {
		return Polygon{}, err
	}

	return Polygon{data: g.data}, nil
}

func validatePolygon(g Geometry) error {
	if g.typ != format.Polygon {
		return typeMismatch("polygon", "Polygon", g.typ)
	}

	rings, err := readCount(g.data, native, "polygon")
	if err != nil {
		return err
	}

	off := section.CountedHeaderSize
	for i := 0; i < rings; i++ {
		if len(g.data)-off < section.CountSize {
			return errs.Malformed("polygon", "truncated ring header").AtIndex(i).AtOffset(off)
		}

		n := section.ReadCount(native, g.data[off:])
		if n < 0 {
			return errs.Malformed("polygon", "negative point count %d", n).AtIndex(i).AtOffset(off)
		}

		end, err := sequenceEnd(g.data, off, n, "polygon", i)
		if err != nil {
			return err
		}

		ring := CoordinateSequence{data: g.data[off:end]}
		if !ring.IsClosed() {
			return errs.Malformed("polygon", "ring %d is not closed", i).AtIndex(i).AtOffset(off)
		}

		off = end
	}

	if off != len(g.data) {
		return errs.Malformed("polygon", "excess data: %d bytes after last ring", len(g.data)-off).AtOffset(off)
	}

	return nil
}

// RingCount returns the number of rings including the shell.
func (p Polygon) RingCount() int {
	return section.ReadCount(native, p.data[section.CountOffset:])
}

// IsEmpty reports whether the polygon has no rings.
func (p Polygon) IsEmpty() bool {
	return p.RingCount() == 0
}

// Ring returns the ring at index i. Ring 0 is the shell.
//
// Rings are variable length, so Ring walks the preceding rings; use Rings to
// visit all of them in one pass.
func (p Polygon) Ring(i int) (CoordinateSequence, bool) {
	if i < 0 || i >= p.RingCount() {
		return CoordinateSequence{}, false
	}

	off := section.CountedHeaderSize
	for range i {
		off += ringSize(p.data[off:])
	}

	return CoordinateSequence{data: p.data[off : off+ringSize(p.data[off:])]}, true
}

// Shell returns the exterior ring.
func (p Polygon) Shell() (CoordinateSequence, bool) {
	return p.Ring(0)
}

// Rings returns an iterator over all rings, shell first.
func (p Polygon) Rings() iter.Seq[CoordinateSequence] {
	return func(yield func(CoordinateSequence) bool) {
		rest := p.data[section.CountedHeaderSize:]
		for range p.RingCount() {
			n := ringSize(rest)
			if !yield(CoordinateSequence{data: rest[:n]}) {
				return
			}
			rest = rest[n:]
		}
	}
}

// Root returns the root view.
func (p Polygon) Root() Geometry {
	return Geometry{data: p.data, typ: format.Polygon}
}

// Equal reports whether both polygons have byte-identical payloads.
func (p Polygon) Equal(other Polygon) bool {
	return bytes.Equal(p.data[section.HeaderSize:], other.data[section.HeaderSize:])
}

func (p Polygon) String() string {
	return fmt.Sprintf("Polygon[RingCount = %d]", p.RingCount())
}

// ringSize returns the byte size of the validated ring at the start of b.
func ringSize(b []byte) int {
	return section.CountSize + section.ReadCount(native, b)*section.CoordinateSize
}
