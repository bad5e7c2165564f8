// Package wkbtest builds WKB buffers for tests.
package wkbtest

import (
	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/section"
)

var (
	// Native is the host byte order.
	Native = endian.NativeOrder()
	// Foreign is the byte order opposite to the host's.
	Foreign = endian.NativeOrder().Swap()
)

// AppendHeader appends a 5-byte header.
func AppendHeader(b []byte, order format.ByteOrder, typ format.GeometryType) []byte {
	return section.NewHeader(order, typ).Append(b)
}

// AppendCount appends a 4-byte count. Negative values are encoded as their
// two's complement so tests can build invalid input.
func AppendCount(b []byte, order format.ByteOrder, n int) []byte {
	return endian.EngineFor(order).AppendUint32(b, uint32(int32(n))) //nolint: gosec
}

// AppendSequence appends a point count followed by the interleaved ordinates.
func AppendSequence(b []byte, order format.ByteOrder, xy []float64) []byte {
	engine := endian.EngineFor(order)
	b = AppendCount(b, order, len(xy)/2)
	for _, v := range xy {
		b = endian.AppendFloat64(engine, b, v)
	}

	return b
}

// Point encodes a point.
func Point(order format.ByteOrder, x, y float64) []byte {
	engine := endian.EngineFor(order)
	b := AppendHeader(nil, order, format.Point)
	b = endian.AppendFloat64(engine, b, x)

	return endian.AppendFloat64(engine, b, y)
}

// Line encodes a line string from interleaved ordinates.
func Line(order format.ByteOrder, xy ...float64) []byte {
	return AppendSequence(AppendHeader(nil, order, format.LineString), order, xy)
}

// Polygon encodes a polygon; each ring is a slice of interleaved ordinates.
func Polygon(order format.ByteOrder, rings ...[]float64) []byte {
	b := AppendHeader(nil, order, format.Polygon)
	b = AppendCount(b, order, len(rings))
	for _, ring := range rings {
		b = AppendSequence(b, order, ring)
	}

	return b
}

// Collection encodes a Multi* or geometry collection from encoded children.
func Collection(order format.ByteOrder, typ format.GeometryType, children ...[]byte) []byte {
	b := AppendHeader(nil, order, typ)
	b = AppendCount(b, order, len(children))
	for _, c := range children {
		b = append(b, c...)
	}

	return b
}

// Square returns a closed counter-clockwise ring with its lower left corner
// at (x0, y0).
func Square(x0, y0, size float64) []float64 {
	return []float64{x0, y0, x0 + size, y0, x0 + size, y0 + size, x0, y0 + size, x0, y0}
}

// Samples returns one well-formed buffer of every kind, keyed by name.
func Samples(order format.ByteOrder) map[string][]byte {
	pt := Point(order, 1, 2)
	line := Line(order, 0, 0, 1, 1, 2, 0)
	poly := Polygon(order, Square(0, 0, 10), Square(2, 2, 2))

	return map[string][]byte{
		"point":              pt,
		"line string":        line,
		"empty line string":  Line(order),
		"polygon":            poly,
		"empty polygon":      Polygon(order),
		"multi point":        Collection(order, format.MultiPoint, pt, Point(order, 3, 4), Point(order, 5, 6)),
		"multi line string":  Collection(order, format.MultiLineString, line, Line(order, 9, 9, 8, 8)),
		"multi polygon":      Collection(order, format.MultiPolygon, poly, Polygon(order, Square(20, 20, 1))),
		"empty collection":   Collection(order, format.GeometryCollection),
		"nested collection":  Collection(order, format.GeometryCollection, pt, Collection(order, format.GeometryCollection, line, poly)),
		"heterogeneous mix":  Collection(order, format.GeometryCollection, poly, pt, line),
		"empty multipolygon": Collection(order, format.MultiPolygon),
	}
}

// Nested wraps leaf in depth geometry collections.
func Nested(order format.ByteOrder, depth int, leaf []byte) []byte {
	out := leaf
	for range depth {
		out = Collection(order, format.GeometryCollection, out)
	}

	return out
}
