package raw

import (
	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/section"
)

var (
	nativeOrder  = endian.NativeOrder()
	foreignOrder = endian.NativeOrder().Swap()
)

func appendHeader(b []byte, order format.ByteOrder, typ format.GeometryType) []byte {
	return section.NewHeader(order, typ).Append(b)
}

func appendCount(b []byte, order format.ByteOrder, n int) []byte {
	return endian.EngineFor(order).AppendUint32(b, uint32(int32(n)))
}

func appendCoords(b []byte, order format.ByteOrder, xy []float64) []byte {
	engine := endian.EngineFor(order)
	b = appendCount(b, order, len(xy)/2)
	for _, v := range xy {
		b = endian.AppendFloat64(engine, b, v)
	}

	return b
}

func pointWKB(order format.ByteOrder, x, y float64) []byte {
	b := appendHeader(nil, order, format.Point)
	engine := endian.EngineFor(order)
	b = endian.AppendFloat64(engine, b, x)

	return endian.AppendFloat64(engine, b, y)
}

func lineWKB(order format.ByteOrder, xy ...float64) []byte {
	return appendCoords(appendHeader(nil, order, format.LineString), order, xy)
}

func polygonWKB(order format.ByteOrder, rings ...[]float64) []byte {
	b := appendHeader(nil, order, format.Polygon)
	b = appendCount(b, order, len(rings))
	for _, ring := range rings {
		b = appendCoords(b, order, ring)
	}

	return b
}

func collectionWKB(order format.ByteOrder, typ format.GeometryType, children ...[]byte) []byte {
	b := appendHeader(nil, order, typ)
	b = appendCount(b, order, len(children))
	for _, c := range children {
		b = append(b, c...)
	}

	return b
}

func square(x0, y0, size float64) []float64 {
	return []float64{x0, y0, x0 + size, y0, x0 + size, y0 + size, x0, y0 + size, x0, y0}
}

// samples returns one well-formed buffer of every kind in the given order.
func samples(order format.ByteOrder) map[string][]byte {
	pt := pointWKB(order, 1, 2)
	line := lineWKB(order, 0, 0, 1, 1, 2, 0)
	poly := polygonWKB(order, square(0, 0, 10), square(2, 2, 2))

	return map[string][]byte{
		"point":              pt,
		"line string":        line,
		"empty line string":  lineWKB(order),
		"polygon":            poly,
		"empty polygon":      polygonWKB(order),
		"multi point":        collectionWKB(order, format.MultiPoint, pt, pointWKB(order, 3, 4), pointWKB(order, 5, 6)),
		"multi line string":  collectionWKB(order, format.MultiLineString, line, lineWKB(order, 9, 9, 8, 8)),
		"multi polygon":      collectionWKB(order, format.MultiPolygon, poly, polygonWKB(order, square(20, 20, 1))),
		"empty collection":   collectionWKB(order, format.GeometryCollection),
		"nested collection":  collectionWKB(order, format.GeometryCollection, pt, collectionWKB(order, format.GeometryCollection, line, poly)),
		"heterogeneous mix":  collectionWKB(order, format.GeometryCollection, poly, pt, line),
		"empty multipolygon": collectionWKB(order, format.MultiPolygon),
	}
}
