// Package orbgeom exposes github.com/paulmach/orb geometries through the geom
// capability interfaces, so the codec can read WKB straight into orb types and
// write orb values without converting them first.
//
//	r, _ := codec.NewReader(
//	    codec.WithFactory(orbgeom.Factory{}),
//	    codec.WithSequenceFactory(orbgeom.SequenceFactory{}),
//	)
//	g, err := r.Read(data)
//	if err != nil {
//	    return err
//	}
//	o, _ := orbgeom.Unwrap(g) // orb.Geometry
//
// Each wrapper is a defined type over the corresponding orb type, so wrapping
// and unwrapping are conversions that share memory with the orb value.
package orbgeom

import (
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/geom"
	"github.com/paulmach/orb"
)

type (
	Point           orb.Point
	LineString      orb.LineString
	Ring            orb.Ring
	Polygon         orb.Polygon
	MultiPoint      orb.MultiPoint
	MultiLineString orb.MultiLineString
	MultiPolygon    orb.MultiPolygon
	Collection      orb.Collection
)

var (
	_ geom.Sequenced  = Point{}
	_ geom.Sequenced  = LineString{}
	_ geom.Sequenced  = Ring{}
	_ geom.Polygonal  = Polygon{}
	_ geom.Collection = MultiPoint{}
	_ geom.Collection = MultiLineString{}
	_ geom.Collection = MultiPolygon{}
	_ geom.Collection = Collection{}
)

func (Point) GeometryType() format.GeometryType           { return format.Point }
func (LineString) GeometryType() format.GeometryType      { return format.LineString }
func (Ring) GeometryType() format.GeometryType            { return format.LineString }
func (Polygon) GeometryType() format.GeometryType         { return format.Polygon }
func (MultiPoint) GeometryType() format.GeometryType      { return format.MultiPoint }
func (MultiLineString) GeometryType() format.GeometryType { return format.MultiLineString }
func (MultiPolygon) GeometryType() format.GeometryType    { return format.MultiPolygon }
func (Collection) GeometryType() format.GeometryType      { return format.GeometryCollection }

// Coordinates returns a one-coordinate sequence holding a copy of the point.
func (p Point) Coordinates() geom.CoordinateSequence {
	return &Sequence{Points: []orb.Point{orb.Point(p)}}
}

func (l LineString) Coordinates() geom.CoordinateSequence {
	return &Sequence{Points: l}
}

func (r Ring) Coordinates() geom.CoordinateSequence {
	return &Sequence{Points: r}
}

func (p Polygon) NumRings() int { return len(p) }

func (p Polygon) Ring(i int) geom.CoordinateSequence {
	return &Sequence{Points: p[i]}
}

func (m MultiPoint) NumGeometries() int                 { return len(m) }
func (m MultiPoint) GeometryN(i int) geom.Geometry      { return Point(m[i]) }
func (m MultiLineString) NumGeometries() int            { return len(m) }
func (m MultiLineString) GeometryN(i int) geom.Geometry { return LineString(m[i]) }
func (m MultiPolygon) NumGeometries() int               { return len(m) }
func (m MultiPolygon) GeometryN(i int) geom.Geometry    { return Polygon(m[i]) }
func (c Collection) NumGeometries() int                 { return len(c) }
func (c Collection) GeometryN(i int) geom.Geometry      { return Wrap(c[i]) }

// Wrap converts an orb geometry to its geom view. A bound is wrapped as its
// polygon. Unknown types and nil yield nil.
func Wrap(g orb.Geometry) geom.Geometry {
	switch v := g.(type) {
	case orb.Point:
		return Point(v)
	case orb.LineString:
		return LineString(v)
	case orb.Ring:
		return Ring(v)
	case orb.Polygon:
		return Polygon(v)
	case orb.MultiPoint:
		return MultiPoint(v)
	case orb.MultiLineString:
		return MultiLineString(v)
	case orb.MultiPolygon:
		return MultiPolygon(v)
	case orb.Collection:
		return Collection(v)
	case orb.Bound:
		return Polygon(v.ToPolygon())
	default:
		return nil
	}
}

// Unwrap returns the orb geometry behind a wrapper created by this package.
func Unwrap(g geom.Geometry) (orb.Geometry, bool) {
	switch v := g.(type) {
	case Point:
		return orb.Point(v), true
	case LineString:
		return orb.LineString(v), true
	case Ring:
		return orb.Ring(v), true
	case Polygon:
		return orb.Polygon(v), true
	case MultiPoint:
		return orb.MultiPoint(v), true
	case MultiLineString:
		return orb.MultiLineString(v), true
	case MultiPolygon:
		return orb.MultiPolygon(v), true
	case Collection:
		return orb.Collection(v), true
	default:
		return nil, false
	}
}

// Factory builds orb geometries. It accepts any geom.CoordinateSequence;
// sequences created by SequenceFactory are adopted without copying.
type Factory struct{}

var _ geom.Factory = Factory{}

// CreatePoint requires exactly one coordinate, since orb has no empty point.
func (Factory) CreatePoint(seq geom.CoordinateSequence) (geom.Geometry, error) {
	if seq.Len() != 1 {
		return nil, errs.New(errs.ErrInvalidGeometry, "create point", "orb points hold one coordinate, got %d", seq.Len())
	}

	return Point{seq.X(0), seq.Y(0)}, nil
}

func (Factory) CreateLineString(seq geom.CoordinateSequence) (geom.Geometry, error) {
	return LineString(points(seq)), nil
}

func (Factory) CreateLinearRing(seq geom.CoordinateSequence) (geom.Geometry, error) {
	if !geom.IsClosed(seq) {
		return nil, errs.New(errs.ErrInvalidGeometry, "create linear ring", "ring is not closed")
	}

	return Ring(points(seq)), nil
}

func (Factory) CreatePolygon(shell geom.Geometry, holes []geom.Geometry) (geom.Geometry, error) {
	if shell == nil {
		if len(holes) > 0 {
			return nil, errs.New(errs.ErrInvalidGeometry, "create polygon", "holes without a shell")
		}

		return Polygon{}, nil
	}

	p := make(Polygon, 0, 1+len(holes))
	for i, r := range append([]geom.Geometry{shell}, holes...) {
		ring, ok := r.(Ring)
		if !ok {
			return nil, errs.New(errs.ErrInvalidGeometry, "create polygon", "ring is %T, not an orbgeom.Ring", r).AtIndex(i)
		}
		p = append(p, orb.Ring(ring))
	}

	return p, nil
}

func (Factory) CreateMultiPoint(points []geom.Geometry) (geom.Geometry, error) {
	m := make(MultiPoint, len(points))
	for i, g := range points {
		p, ok := g.(Point)
		if !ok {
			return nil, elementError("create multi point", format.Point, i)
		}
		m[i] = orb.Point(p)
	}

	return m, nil
}

func (Factory) CreateMultiLineString(lines []geom.Geometry) (geom.Geometry, error) {
	m := make(MultiLineString, len(lines))
	for i, g := range lines {
		l, ok := g.(LineString)
		if !ok {
			return nil, elementError("create multi line string", format.LineString, i)
		}
		m[i] = orb.LineString(l)
	}

	return m, nil
}

func (Factory) CreateMultiPolygon(polygons []geom.Geometry) (geom.Geometry, error) {
	m := make(MultiPolygon, len(polygons))
	for i, g := range polygons {
		p, ok := g.(Polygon)
		if !ok {
			return nil, elementError("create multi polygon", format.Polygon, i)
		}
		m[i] = orb.Polygon(p)
	}

	return m, nil
}

func (Factory) CreateGeometryCollection(geometries []geom.Geometry) (geom.Geometry, error) {
	c := make(Collection, len(geometries))
	for i, g := range geometries {
		o, ok := Unwrap(g)
		if !ok {
			return nil, errs.New(errs.ErrInvalidGeometry, "create geometry collection", "element is %T", g).AtIndex(i)
		}
		c[i] = o
	}

	return c, nil
}

func elementError(op string, want format.GeometryType, i int) error {
	return errs.New(errs.ErrInvalidGeometry, op, "element is not an orbgeom %s", want).AtIndex(i)
}
