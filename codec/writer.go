package codec

import (
	"io"
	"math"

	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/internal/options"
	"github.com/arloliu/wkb/internal/pool"
	"github.com/arloliu/wkb/raw"
	"github.com/arloliu/wkb/section"
	"go.uber.org/zap"
)

// Writer serializes geometries of any object model implementing the geom
// capability interfaces.
type Writer struct {
	order  format.ByteOrder
	engine endian.EndianEngine
	native bool
}

// NewWriter creates a Writer with the given options.
//
// Parameters:
//   - opts: Optional configuration (WithByteOrder)
//
// Returns:
//   - *Writer: Configured writer
//   - error: Option validation error
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{}
	w.setOrder(endian.NativeOrder())

	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Writer) setOrder(order format.ByteOrder) {
	w.order = order
	w.engine = endian.EngineFor(order)
	w.native = order == endian.NativeOrder()
}

// ByteOrder returns the byte order the writer emits.
func (w *Writer) ByteOrder() format.ByteOrder {
	return w.order
}

// ComputeLength returns the exact number of bytes Write will produce for g.
//
// It also checks that g is encodable: every node must implement the
// capability interface of its kind, a point must hold exactly one
// coordinate, polygon rings must be closed, and Multi* children must be of
// the element kind.
//
// Returns:
//   - int: Encoded size in bytes
//   - error: ErrInvalidGeometry or ErrUnsupportedGeometryType
func (w *Writer) ComputeLength(g geom.Geometry) (int, error) {
	n, err := w.length(g, 0)
	if err != nil {
		Logger().Debug("wkb write rejected", zap.Error(err))
		return 0, err
	}

	return n, nil
}

// Write encodes g into the start of dst.
//
// Parameters:
//   - g: Geometry to encode
//   - dst: Destination; must hold at least ComputeLength(g) bytes
//
// Returns:
//   - int: Number of bytes written
//   - error: ErrBufferTooSmall when dst is short, or any ComputeLength error.
//     dst is left untouched on error.
func (w *Writer) Write(g geom.Geometry, dst []byte) (int, error) {
	size, err := w.ComputeLength(g)
	if err != nil {
		return 0, err
	}

	if len(dst) < size {
		err := errs.New(errs.ErrBufferTooSmall, "write", "need %d bytes, have %d", size, len(dst))
		Logger().Debug("wkb write rejected", zap.Int("required", size), zap.Int("available", len(dst)))

		return 0, err
	}

	return w.write(g, dst), nil
}

// Marshal encodes g into a newly allocated slice of exactly the encoded size.
func (w *Writer) Marshal(g geom.Geometry) ([]byte, error) {
	size, err := w.ComputeLength(g)
	if err != nil {
		return nil, err
	}

	out := make([]byte, size)
	w.write(g, out)

	return out, nil
}

// AppendTo appends the encoding of g to dst, growing dst at most once.
func (w *Writer) AppendTo(dst []byte, g geom.Geometry) ([]byte, error) {
	size, err := w.ComputeLength(g)
	if err != nil {
		return dst, err
	}

	start := len(dst)
	dst = append(dst, make([]byte, size)...)
	w.write(g, dst[start:])

	return dst, nil
}

// WriteTo encodes g through a pooled buffer and writes it to out.
func (w *Writer) WriteTo(out io.Writer, g geom.Geometry) (int64, error) {
	size, err := w.ComputeLength(g)
	if err != nil {
		return 0, err
	}

	buf := pool.GetGeometryBuffer()
	defer pool.PutGeometryBuffer(buf)

	w.write(g, buf.ExtendOrGrow(size))

	return buf.WriteTo(out)
}

func invalid(format string, args ...any) *errs.Error {
	return errs.New(errs.ErrInvalidGeometry, "write", format, args...)
}

func countOf(n int) error {
	if n > math.MaxInt32 {
		return invalid("count %d does not fit in WKB", n)
	}

	return nil
}

func (w *Writer) length(g geom.Geometry, depth int) (int, error) {
	if g == nil {
		return 0, invalid("nil geometry")
	}

	typ := g.GeometryType()
	switch typ {
	case format.Point:
		s, ok := g.(geom.Sequenced)
		if !ok {
			return 0, invalid("%T does not expose coordinates", g)
		}
		if n := seqLen(s.Coordinates()); n != 1 {
			return 0, invalid("point must hold exactly one coordinate, has %d", n)
		}

		return section.PointSize, nil

	case format.LineString:
		s, ok := g.(geom.Sequenced)
		if !ok {
			return 0, invalid("%T does not expose coordinates", g)
		}
		n := seqLen(s.Coordinates())
		if err := countOf(n); err != nil {
			return 0, err
		}

		return section.CountedHeaderSize + n*section.CoordinateSize, nil

	case format.Polygon:
		p, ok := g.(geom.Polygonal)
		if !ok {
			return 0, invalid("%T does not expose rings", g)
		}

		size := section.CountedHeaderSize
		for i := range p.NumRings() {
			ring := p.Ring(i)
			if ring == nil {
				return 0, invalid("ring %d is nil", i).AtIndex(i)
			}
			if !geom.IsClosed(ring) {
				return 0, invalid("ring %d is not closed", i).AtIndex(i)
			}
			if err := countOf(ring.Len()); err != nil {
				return 0, err
			}
			size += section.CountSize + ring.Len()*section.CoordinateSize
		}

		return size, nil

	case format.MultiPoint, format.MultiLineString, format.MultiPolygon, format.GeometryCollection:
		if depth >= raw.MaxDepth {
			return 0, invalid("nesting deeper than %d", raw.MaxDepth)
		}

		c, ok := g.(geom.Collection)
		if !ok {
			return 0, invalid("%T does not expose members", g)
		}

		elem := typ.ElementType()
		size := section.CountedHeaderSize
		for i := range c.NumGeometries() {
			child := c.GeometryN(i)
			if child != nil && elem != format.Geometry && child.GeometryType() != elem {
				return 0, invalid("%s cannot contain %s", typ, child.GeometryType()).AtIndex(i)
			}

			n, err := w.length(child, depth+1)
			if err != nil {
				return 0, err
			}
			size += n
		}

		return size, nil

	default:
		return 0, errs.New(errs.ErrUnsupportedGeometryType, "write", "%s", typ)
	}
}

func seqLen(seq geom.CoordinateSequence) int {
	if seq == nil {
		return 0
	}

	return seq.Len()
}

// write emits g, which ComputeLength has accepted, into dst.
func (w *Writer) write(g geom.Geometry, dst []byte) int {
	typ := g.GeometryType()
	section.NewHeader(w.order, typ).Put(dst)
	off := section.HeaderSize

	switch typ {
	case format.Point:
		s, _ := g.(geom.Sequenced)
		off += w.putSequence(s.Coordinates(), dst[off:])

	case format.LineString:
		s, _ := g.(geom.Sequenced)
		seq := s.Coordinates()
		off += w.putCount(seqLen(seq), dst[off:])
		if seq != nil {
			off += w.putSequence(seq, dst[off:])
		}

	case format.Polygon:
		p, _ := g.(geom.Polygonal)
		rings := p.NumRings()
		off += w.putCount(rings, dst[off:])
		for i := range rings {
			ring := p.Ring(i)
			off += w.putCount(ring.Len(), dst[off:])
			off += w.putSequence(ring, dst[off:])
		}

	default:
		c, _ := g.(geom.Collection)
		n := c.NumGeometries()
		off += w.putCount(n, dst[off:])
		for i := range n {
			off += w.write(c.GeometryN(i), dst[off:])
		}
	}

	return off
}

func (w *Writer) putCount(n int, dst []byte) int {
	w.engine.PutUint32(dst, uint32(n)) //nolint: gosec

	return section.CountSize
}

// putSequence emits the coordinates of seq and returns the bytes written.
func (w *Writer) putSequence(seq geom.CoordinateSequence, dst []byte) int {
	n := seq.Len()
	size := n * section.CoordinateSize

	switch s := seq.(type) {
	case *geom.XYSequence:
		if w.native {
			// interleaved []float64 in native order is the wire layout
			copy(dst[:size], s.Bytes())
			return size
		}
		for i, v := range s.Coords[:2*n] {
			endian.PutFloat64(w.engine, dst[i*section.OrdinateSize:], v)
		}

	case *geom.SOASequence:
		for i := range n {
			off := i * section.CoordinateSize
			endian.PutFloat64(w.engine, dst[off:], s.Xs[i])
			endian.PutFloat64(w.engine, dst[off+section.OrdinateSize:], s.Ys[i])
		}

	default:
		for i := range n {
			off := i * section.CoordinateSize
			endian.PutFloat64(w.engine, dst[off:], seq.X(i))
			endian.PutFloat64(w.engine, dst[off+section.OrdinateSize:], seq.Y(i))
		}
	}

	return size
}
