package raw

import (
	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/section"
)

// MaxDepth is the deepest collection nesting accepted by Length, the views,
// the normalizer and the codec.
const MaxDepth = 64

// Length returns the number of bytes the single geometry encoded at the start
// of data occupies.
//
// WKB has no geometry-level length field, so the size is computed by walking
// the grammar. Each node is decoded with its own byte order marker, so Length
// also works on buffers that have not been normalized. Trailing bytes after
// the geometry are ignored.
//
// Returns:
//   - int: Encoded size in bytes
//   - error: ErrMalformedInput for truncated data, negative counts or excessive
//     nesting, or any header error of section.ParseHeader
func Length(data []byte) (int, error) {
	return length(data, 0)
}

func length(data []byte, depth int) (int, error) {
	h, err := section.ParseHeader(data)
	if err != nil {
		return 0, err
	}

	engine := h.Engine()

	switch h.Type {
	case format.Point:
		if len(data) < section.PointSize {
			return 0, errs.Malformed("point", "need %d bytes, have %d", section.PointSize, len(data)).AtOffset(0)
		}

		return section.PointSize, nil

	case format.LineString:
		n, err := readCount(data, engine, "line string")
		if err != nil {
			return 0, err
		}

		return sequenceEnd(data, section.CountOffset, n, "line string", -1)

	case format.Polygon:
		rings, err := readCount(data, engine, "polygon")
		if err != nil {
			return 0, err
		}

		if rings > (len(data)-section.CountedHeaderSize)/section.CountSize {
			return 0, errs.Malformed("polygon", "ring count %d exceeds available data", rings).AtOffset(section.CountOffset)
		}

		off := section.CountedHeaderSize
		for i := range rings {
			if len(data)-off < section.CountSize {
				return 0, errs.Malformed("polygon", "truncated ring header").AtIndex(i).AtOffset(off)
			}

			n := section.ReadCount(engine, data[off:off+section.CountSize])
			if n < 0 {
				return 0, errs.Malformed("polygon", "negative point count %d", n).AtIndex(i).AtOffset(off)
			}

			off, err = sequenceEnd(data, off, n, "polygon", i)
			if err != nil {
				return 0, err
			}
		}

		return off, nil

	default: // collections
		count, err := readCount(data, engine, "collection")
		if err != nil {
			return 0, err
		}

		if count > (len(data)-section.CountedHeaderSize)/section.CountedHeaderSize {
			return 0, errs.Malformed("collection", "child count %d exceeds available data", count).AtOffset(section.CountOffset)
		}

		if depth >= MaxDepth {
			return 0, errs.Malformed("collection", "nesting deeper than %d", MaxDepth).AtOffset(0)
		}

		off := section.CountedHeaderSize
		for range count {
			n, err := length(data[off:], depth+1)
			if err != nil {
				return 0, errs.Shift(err, off)
			}
			off += n
		}

		return off, nil
	}
}

// readCount reads the count that follows the header of a line string, polygon
// or collection, rejecting negative values before anything past it is read.
func readCount(data []byte, engine endian.EndianEngine, op string) (int, error) {
	if len(data) < section.CountedHeaderSize {
		return 0, errs.Malformed(op, "need %d bytes, have %d", section.CountedHeaderSize, len(data)).AtOffset(0)
	}

	n := section.ReadCount(engine, data[section.CountOffset:section.CountedHeaderSize])
	if n < 0 {
		return 0, errs.Malformed(op, "negative count %d", n).AtOffset(section.CountOffset)
	}

	return n, nil
}

// sequenceEnd returns the offset just past a coordinate sequence whose count
// prefix starts at off and declares n points.
func sequenceEnd(data []byte, off, n int, op string, index int) (int, error) {
	avail := len(data) - off - section.CountSize
	if avail < 0 || n > avail/section.CoordinateSize {
		return 0, errs.Malformed(op, "%d points need %d bytes, have %d", n, n*section.CoordinateSize, avail).AtIndex(index).AtOffset(off)
	}

	return off + section.CountSize + n*section.CoordinateSize, nil
}
