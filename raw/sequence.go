package raw

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/section"
)

var native = endian.GetNativeEngine()

// Coordinate is a decoded XY pair.
type Coordinate struct {
	X float64
	Y float64
}

// CoordinateSequence is a view over a count-prefixed array of interleaved
// X,Y doubles in native byte order.
type CoordinateSequence struct {
	data []byte
}

// NewCoordinateSequence creates a view over data, which must hold a 4-byte
// point count followed by exactly count × 16 bytes.
func NewCoordinateSequence(data []byte) (CoordinateSequence, error) {
	if len(data) < section.CountSize {
		return CoordinateSequence{}, errs.Malformed("coordinate sequence", "need %d bytes, have %d", section.CountSize, len(data)).AtOffset(0)
	}

	n := section.ReadCount(native, data)
	if n < 0 {
		return CoordinateSequence{}, errs.Malformed("coordinate sequence", "negative point count %d", n).AtOffset(0)
	}

	payload := len(data) - section.CountSize
	if payload%section.CoordinateSize != 0 || payload/section.CoordinateSize != n {
		return CoordinateSequence{}, errs.Malformed("coordinate sequence", "%d points declared, %d bytes present", n, payload).AtOffset(0)
	}

	return CoordinateSequence{data: data}, nil
}

// PointCount returns the declared number of coordinates.
func (s CoordinateSequence) PointCount() int {
	if len(s.data) < section.CountSize {
		return 0
	}

	return section.ReadCount(native, s.data)
}

// IsEmpty reports whether the sequence holds no coordinates.
func (s CoordinateSequence) IsEmpty() bool {
	return s.PointCount() == 0
}

// Coordinate returns the coordinate at index i.
//
// Returns:
//   - Coordinate: The decoded pair
//   - bool: false if i is out of range
func (s CoordinateSequence) Coordinate(i int) (Coordinate, bool) {
	if i < 0 || i >= s.PointCount() {
		return Coordinate{}, false
	}

	return decodeCoordinate(s.data[section.CountSize+i*section.CoordinateSize:]), true
}

// X returns the X ordinate at index i. It panics if i is out of range.
func (s CoordinateSequence) X(i int) float64 {
	off := section.CountSize + i*section.CoordinateSize
	return endian.Float64(native, s.data[off:off+section.OrdinateSize])
}

// Y returns the Y ordinate at index i. It panics if i is out of range.
func (s CoordinateSequence) Y(i int) float64 {
	off := section.CountSize + i*section.CoordinateSize + section.OrdinateSize
	return endian.Float64(native, s.data[off:off+section.OrdinateSize])
}

// All returns an iterator over the coordinates in order.
func (s CoordinateSequence) All() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		rest := s.Coordinates()
		for len(rest) >= section.CoordinateSize {
			if !yield(decodeCoordinate(rest)) {
				return
			}
			rest = rest[section.CoordinateSize:]
		}
	}
}

// Bytes returns the viewed region including the count prefix.
func (s CoordinateSequence) Bytes() []byte {
	return s.data
}

// Coordinates returns the packed X,Y payload without the count prefix.
// Its layout equals an interleaved []float64 in native order.
func (s CoordinateSequence) Coordinates() []byte {
	if len(s.data) < section.CountSize {
		return nil
	}

	return s.data[section.CountSize:]
}

// IsClosed reports whether the first and last coordinates are equal.
// An empty sequence is closed.
func (s CoordinateSequence) IsClosed() bool {
	coords := s.Coordinates()
	if len(coords) < section.CoordinateSize {
		return true
	}

	first := decodeCoordinate(coords)
	last := decodeCoordinate(coords[len(coords)-section.CoordinateSize:])

	return first == last
}

// ExpandEnvelope grows env to cover every coordinate of the sequence.
func (s CoordinateSequence) ExpandEnvelope(env *Envelope) {
	for c := range s.All() {
		env.ExpandToInclude(c.X, c.Y)
	}
}

// Equal reports whether both sequences hold byte-identical coordinates.
func (s CoordinateSequence) Equal(other CoordinateSequence) bool {
	return bytes.Equal(s.data, other.data)
}

func (s CoordinateSequence) String() string {
	return fmt.Sprintf("CoordinateSequence[PointCount = %d]", s.PointCount())
}

func decodeCoordinate(b []byte) Coordinate {
	return Coordinate{
		X: endian.Float64(native, b[:section.OrdinateSize]),
		Y: endian.Float64(native, b[section.OrdinateSize:section.CoordinateSize]),
	}
}
