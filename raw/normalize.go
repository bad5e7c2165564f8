package raw

import (
	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/section"
)

// NormalizeToNative rewrites buf in place so that every node of the geometry
// at its start is encoded in the host's byte order.
//
// Each node is converted according to its own byte order marker; a child
// never inherits its parent's order. The structure is validated with Length
// before the first byte is modified, so buf is left untouched on error.
//
// Returns:
//   - int: Number of bytes the geometry occupies
//   - error: Any error returned by Length
func NormalizeToNative(buf []byte) (int, error) {
	return NormalizeTo(buf, endian.NativeOrder())
}

// NormalizeTo rewrites buf in place so that every node is encoded in order.
func NormalizeTo(buf []byte, order format.ByteOrder) (int, error) {
	if !order.IsValid() {
		return 0, errs.Malformed("normalize", "invalid target byte order %d", uint8(order))
	}

	n, err := Length(buf)
	if err != nil {
		return 0, err
	}

	normalize(buf[:n], order)

	return n, nil
}

// normalize converts a validated node and returns its size.
func normalize(data []byte, order format.ByteOrder) int {
	h, _ := section.ParseHeader(data)
	engine := h.Engine()
	swap := h.ByteOrder != order

	var size int
	switch h.Type {
	case format.Point:
		size = section.PointSize
		if swap {
			endian.ReverseEach(data[section.HeaderSize:size], section.OrdinateSize)
		}

	case format.LineString:
		n := section.ReadCount(engine, data[section.CountOffset:])
		size = section.CountedHeaderSize + n*section.CoordinateSize
		if swap {
			endian.ReverseEach(data[section.CountedHeaderSize:size], section.OrdinateSize)
		}

	case format.Polygon:
		rings := section.ReadCount(engine, data[section.CountOffset:])
		size = section.CountedHeaderSize
		for range rings {
			n := section.ReadCount(engine, data[size:])
			end := size + section.CountSize + n*section.CoordinateSize
			if swap {
				endian.Reverse(data[size : size+section.CountSize])
				endian.ReverseEach(data[size+section.CountSize:end], section.OrdinateSize)
			}
			size = end
		}

	default:
		count := section.ReadCount(engine, data[section.CountOffset:])
		size = section.CountedHeaderSize
		for range count {
			size += normalize(data[size:], order)
		}
	}

	if swap {
		data[section.ByteOrderOffset] = byte(order)
		endian.Reverse(data[section.TypeCodeOffset:section.HeaderSize])
		if h.Type != format.Point {
			endian.Reverse(data[section.CountOffset:section.CountedHeaderSize])
		}
	}

	return size
}
