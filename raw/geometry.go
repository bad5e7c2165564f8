package raw

import (
	"bytes"
	"fmt"

	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/section"
)

// Geometry is the root view over exactly one encoded geometry.
//
// NewGeometry only checks the header. The typed views (Point, LineString,
// Polygon, Collection) validate the payload; Parse does both in one step.
type Geometry struct {
	data []byte
	typ  format.GeometryType
}

// NewGeometry creates a view over data after decoding its header.
//
// Returns:
//   - Geometry: The root view
//   - error: ErrMalformedInput if data is shorter than 5 bytes,
//     ErrEndiannessMismatch if the order byte is not the host order,
//     or a type code error from section.DecodeTypeCode
func NewGeometry(data []byte) (Geometry, error) {
	if len(data) < section.HeaderSize {
		return Geometry{}, errs.Malformed("geometry", "need %d bytes, have %d", section.HeaderSize, len(data)).AtOffset(0)
	}

	if format.ByteOrder(data[section.ByteOrderOffset]) != endian.NativeOrder() {
		if !format.ByteOrder(data[section.ByteOrderOffset]).IsValid() {
			return Geometry{}, errs.Malformed("geometry", "invalid byte order marker %d", data[section.ByteOrderOffset]).AtOffset(0)
		}

		return Geometry{}, errs.New(errs.ErrEndiannessMismatch, "geometry", "%s data on %s host",
			format.ByteOrder(data[section.ByteOrderOffset]), endian.NativeOrder()).AtOffset(0)
	}

	h, err := section.ParseHeader(data)
	if err != nil {
		return Geometry{}, err
	}

	return Geometry{data: data, typ: h.Type}, nil
}

// Parse creates a root view over data and validates the whole structure.
// data must hold exactly one geometry with no trailing bytes.
func Parse(data []byte) (Geometry, error) {
	g, err := NewGeometry(data)
	if err != nil {
		return Geometry{}, err
	}

	if err := validate(g, 0); err != nil {
		return Geometry{}, err
	}

	return g, nil
}

// Type returns the decoded geometry kind.
func (g Geometry) Type() format.GeometryType {
	return g.typ
}

// ByteOrder returns the byte order marker of the geometry.
func (g Geometry) ByteOrder() format.ByteOrder {
	if len(g.data) == 0 {
		return endian.NativeOrder()
	}

	return format.ByteOrder(g.data[section.ByteOrderOffset])
}

// Bytes returns the viewed region.
func (g Geometry) Bytes() []byte {
	return g.data
}

// Len returns the size of the viewed region in bytes.
func (g Geometry) Len() int {
	return len(g.data)
}

// Payload returns the bytes after the 5-byte header.
func (g Geometry) Payload() []byte {
	if len(g.data) < section.HeaderSize {
		return nil
	}

	return g.data[section.HeaderSize:]
}

// Equal reports whether both views have byte-identical payloads.
// Headers are not compared.
func (g Geometry) Equal(other Geometry) bool {
	return bytes.Equal(g.Payload(), other.Payload())
}

// AsPoint returns the Point view of g.
func (g Geometry) AsPoint() (Point, error) {
	return NewPoint(g)
}

// AsLineString returns the LineString view of g.
func (g Geometry) AsLineString() (LineString, error) {
	return NewLineString(g)
}

// AsPolygon returns the Polygon view of g.
func (g Geometry) AsPolygon() (Polygon, error) {
	return NewPolygon(g)
}

// AsCollection returns the Collection view of g. It accepts MultiPoint,
// MultiLineString, MultiPolygon and GeometryCollection.
func (g Geometry) AsCollection() (Collection, error) {
	return NewCollection(g)
}

func (g Geometry) String() string {
	return fmt.Sprintf("%s[Length = %d]", g.typ, len(g.data))
}

func typeMismatch(op string, want string, got format.GeometryType) error {
	return errs.New(errs.ErrMalformedInput, op, "geometry type must be %s, got %s", want, got)
}

// validate checks the payload of g for its kind.
func validate(g Geometry, depth int) error {
	switch g.typ {
	case format.Point:
		return validatePoint(g)
	case format.LineString:
		return validateLineString(g)
	case format.Polygon:
		return validatePolygon(g)
	default:
		return validateCollection(g, depth)
	}
}
