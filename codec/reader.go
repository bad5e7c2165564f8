package codec

import (
	"errors"

	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/internal/options"
	"github.com/arloliu/wkb/raw"
	"github.com/arloliu/wkb/section"
	"go.uber.org/zap"
)

var native = endian.GetNativeEngine()

// Reader materializes WKB into an object model.
type Reader struct {
	factory   geom.Factory
	sequences geom.SequenceFactory
	maxDepth  int
	packing   format.PackingMode
}

// NewReader creates a Reader with the given options.
//
// Parameters:
//   - opts: Optional configuration (WithPackingMode, WithFactory, WithSequenceFactory, WithMaxDepth)
//
// Returns:
//   - *Reader: Configured reader
//   - error: Option validation error
func NewReader(opts ...ReaderOption) (*Reader, error) {
	r := &Reader{
		factory:  geom.DefaultFactory{},
		maxDepth: raw.MaxDepth,
		packing:  format.PackingAOS,
	}

	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// PackingMode returns the configured coordinate layout.
func (r *Reader) PackingMode() format.PackingMode {
	return r.packing
}

// Read materializes the geometry encoded in data. data must hold exactly one
// geometry in native byte order.
//
// Returns:
//   - geom.Geometry: Geometry built by the configured factory
//   - error: ErrEndiannessMismatch for any non-native node, header errors from
//     section.ParseHeader, ErrMalformedInput for structural violations or
//     trailing bytes, or an error returned by the factory
func (r *Reader) Read(data []byte) (geom.Geometry, error) {
	g, n, err := r.ReadPrefix(data)
	if err != nil {
		return nil, err
	}

	if n != len(data) {
		err := errs.Malformed("read", "excess data: %d bytes after geometry", len(data)-n).AtOffset(n)
		Logger().Debug("wkb read rejected", zap.Int("offset", n), zap.Error(err))

		return nil, err
	}

	return g, nil
}

// ReadPrefix materializes the geometry at the start of data and reports how
// many bytes it occupied. Bytes after the geometry are ignored.
func (r *Reader) ReadPrefix(data []byte) (geom.Geometry, int, error) {
	c := cursor{data: data}

	g, err := r.read(&c, 0)
	if err != nil {
		Logger().Debug("wkb read rejected", zap.Int("offset", c.off), zap.Error(err))
		return nil, 0, err
	}

	return g, c.off, nil
}

// cursor tracks the read position while the reader descends the grammar.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) remaining() int {
	return len(c.data) - c.off
}

func (c *cursor) header() (section.Header, error) {
	start := c.off
	if c.remaining() < section.HeaderSize {
		return section.Header{}, errs.Malformed("read", "need %d bytes, have %d", section.HeaderSize, c.remaining()).AtOffset(start)
	}

	order := format.ByteOrder(c.data[start])
	if order.IsValid() && order != endian.NativeOrder() {
		return section.Header{}, errs.New(errs.ErrEndiannessMismatch, "read", "%s data on %s host", order, endian.NativeOrder()).AtOffset(start)
	}

	h, err := section.ParseHeader(c.data[start:])
	if err != nil {
		return section.Header{}, errs.Shift(err, start)
	}
	c.off += section.HeaderSize

	return h, nil
}

// count reads a count whose elements occupy at least minSize bytes each.
func (c *cursor) count(op string, minSize int) (int, error) {
	if c.remaining() < section.CountSize {
		return 0, errs.Malformed(op, "need %d bytes, have %d", section.CountSize, c.remaining()).AtOffset(c.off)
	}

	n := section.ReadCount(native, c.data[c.off:])
	if n < 0 {
		return 0, errs.Malformed(op, "negative count %d", n).AtOffset(c.off)
	}
	c.off += section.CountSize

	if n > c.remaining()/minSize {
		return 0, errs.Malformed(op, "count %d exceeds available data", n).AtOffset(c.off - section.CountSize)
	}

	return n, nil
}

func (r *Reader) read(c *cursor, depth int) (geom.Geometry, error) {
	start := c.off

	h, err := c.header()
	if err != nil {
		return nil, err
	}

	switch h.Type {
	case format.Point:
		if c.remaining() < section.CoordinateSize {
			return nil, errs.Malformed("point", "need %d bytes, have %d", section.CoordinateSize, c.remaining()).AtOffset(start)
		}

		return r.factory.CreatePoint(r.sequence(c, 1))

	case format.LineString:
		n, err := c.count("line string", section.CoordinateSize)
		if err != nil {
			return nil, err
		}

		return r.factory.CreateLineString(r.sequence(c, n))

	case format.Polygon:
		return r.readPolygon(c)

	default:
		return r.readCollection(c, h.Type, start, depth)
	}
}

func (r *Reader) readPolygon(c *cursor) (geom.Geometry, error) {
	rings, err := c.count("polygon", section.CountSize)
	if err != nil {
		return nil, err
	}

	if rings == 0 {
		return r.factory.CreatePolygon(nil, nil)
	}

	var shell geom.Geometry
	holes := make([]geom.Geometry, 0, rings-1)
	for i := range rings {
		ringStart := c.off

		n, err := c.count("polygon", section.CoordinateSize)
		if err != nil {
			var e *errs.Error
			if errors.As(err, &e) {
				e.Index = i
			}

			return nil, err
		}

		seq := r.sequence(c, n)
		if !geom.IsClosed(seq) {
			return nil, errs.Malformed("polygon", "ring %d is not closed", i).AtIndex(i).AtOffset(ringStart)
		}

		ring, err := r.factory.CreateLinearRing(seq)
		if err != nil {
			return nil, err
		}

		if i == 0 {
			shell = ring
		} else {
			holes = append(holes, ring)
		}
	}

	return r.factory.CreatePolygon(shell, holes)
}

func (r *Reader) readCollection(c *cursor, typ format.GeometryType, start int, depth int) (geom.Geometry, error) {
	count, err := c.count("collection", section.CountedHeaderSize)
	if err != nil {
		return nil, err
	}

	if depth >= r.maxDepth {
		return nil, errs.Malformed("collection", "nesting deeper than %d", r.maxDepth).AtOffset(start)
	}

	elem := typ.ElementType()
	children := make([]geom.Geometry, 0, count)
	for i := range count {
		childStart := c.off
		if elem != format.Geometry && c.remaining() >= section.HeaderSize {
			if h, err := section.ParseHeader(c.data[childStart:]); err == nil && h.Type != elem {
				return nil, errs.Malformed("collection", "%s cannot contain %s", typ, h.Type).AtIndex(i).AtOffset(childStart)
			}
		}

		child, err := r.read(c, depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	switch typ {
	case format.MultiPoint:
		return r.factory.CreateMultiPoint(children)
	case format.MultiLineString:
		return r.factory.CreateMultiLineString(children)
	case format.MultiPolygon:
		return r.factory.CreateMultiPolygon(children)
	default:
		return r.factory.CreateGeometryCollection(children)
	}
}

// sequence materializes n coordinates at the cursor. The caller has checked
// that the bytes are present.
func (r *Reader) sequence(c *cursor, n int) geom.CoordinateSequence {
	size := n * section.CoordinateSize
	src := c.data[c.off : c.off+size]
	c.off += size

	if r.sequences != nil {
		seq := r.sequences.Create(n)
		for i := range n {
			off := i * section.CoordinateSize
			seq.SetOrdinate(i, geom.AxisX, endian.Float64(native, src[off:]))
			seq.SetOrdinate(i, geom.AxisY, endian.Float64(native, src[off+section.OrdinateSize:]))
		}

		return seq
	}

	if r.packing == format.PackingSOA {
		seq := geom.NewSOASequence(n)
		for i := range n {
			off := i * section.CoordinateSize
			seq.Xs[i] = endian.Float64(native, src[off:])
			seq.Ys[i] = endian.Float64(native, src[off+section.OrdinateSize:])
		}

		return seq
	}

	// wire layout equals an interleaved []float64 in native order
	seq := geom.NewXYSequence(n)
	copy(seq.Bytes(), src)

	return seq
}
