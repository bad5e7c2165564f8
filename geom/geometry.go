package geom

import (
	"fmt"

	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
)

// Point is a single coordinate. An empty point has an empty sequence.
type Point struct {
	seq CoordinateSequence
}

// LineString is an open or closed sequence of coordinates.
type LineString struct {
	seq CoordinateSequence
}

// LinearRing is a closed line string used as a polygon ring.
type LinearRing struct {
	seq CoordinateSequence
}

// Polygon is a shell ring with optional holes. A polygon without a shell
// is empty.
type Polygon struct {
	shell *LinearRing
	holes []*LinearRing
}

// MultiPoint is a collection of points.
type MultiPoint struct {
	points []Geometry
}

// MultiLineString is a collection of line strings.
type MultiLineString struct {
	lines []Geometry
}

// MultiPolygon is a collection of polygons.
type MultiPolygon struct {
	polygons []Geometry
}

// GeometryCollection is a heterogeneous collection.
type GeometryCollection struct {
	geometries []Geometry
}

var (
	_ Sequenced  = (*Point)(nil)
	_ Sequenced  = (*LineString)(nil)
	_ Sequenced  = (*LinearRing)(nil)
	_ Polygonal  = (*Polygon)(nil)
	_ Collection = (*MultiPoint)(nil)
	_ Collection = (*MultiLineString)(nil)
	_ Collection = (*MultiPolygon)(nil)
	_ Collection = (*GeometryCollection)(nil)
)

func (p *Point) GeometryType() format.GeometryType           { return format.Point }
func (l *LineString) GeometryType() format.GeometryType      { return format.LineString }
func (r *LinearRing) GeometryType() format.GeometryType      { return format.LineString }
func (p *Polygon) GeometryType() format.GeometryType         { return format.Polygon }
func (m *MultiPoint) GeometryType() format.GeometryType      { return format.MultiPoint }
func (m *MultiLineString) GeometryType() format.GeometryType { return format.MultiLineString }
func (m *MultiPolygon) GeometryType() format.GeometryType    { return format.MultiPolygon }
func (c *GeometryCollection) GeometryType() format.GeometryType {
	return format.GeometryCollection
}

func (p *Point) Coordinates() CoordinateSequence      { return p.seq }
func (l *LineString) Coordinates() CoordinateSequence { return l.seq }
func (r *LinearRing) Coordinates() CoordinateSequence { return r.seq }

// IsEmpty reports whether the point has no coordinate.
func (p *Point) IsEmpty() bool { return p.seq.Len() == 0 }

// X returns the X ordinate. It panics on an empty point.
func (p *Point) X() float64 { return p.seq.X(0) }

// Y returns the Y ordinate. It panics on an empty point.
func (p *Point) Y() float64 { return p.seq.Y(0) }

func (p *Point) String() string {
	if p.IsEmpty() {
		return "Point[Empty]"
	}

	return fmt.Sprintf("Point[%g %g]", p.X(), p.Y())
}

// Shell returns the exterior ring, or nil for an empty polygon.
func (p *Polygon) Shell() *LinearRing { return p.shell }

// Holes returns the interior rings.
func (p *Polygon) Holes() []*LinearRing { return p.holes }

// IsEmpty reports whether the polygon has no shell.
func (p *Polygon) IsEmpty() bool { return p.shell == nil }

func (p *Polygon) NumRings() int {
	if p.shell == nil {
		return 0
	}

	return 1 + len(p.holes)
}

func (p *Polygon) Ring(i int) CoordinateSequence {
	if i == 0 {
		return p.shell.seq
	}

	return p.holes[i-1].seq
}

func (m *MultiPoint) NumGeometries() int               { return len(m.points) }
func (m *MultiPoint) GeometryN(i int) Geometry         { return m.points[i] }
func (m *MultiLineString) NumGeometries() int          { return len(m.lines) }
func (m *MultiLineString) GeometryN(i int) Geometry    { return m.lines[i] }
func (m *MultiPolygon) NumGeometries() int             { return len(m.polygons) }
func (m *MultiPolygon) GeometryN(i int) Geometry       { return m.polygons[i] }
func (c *GeometryCollection) NumGeometries() int       { return len(c.geometries) }
func (c *GeometryCollection) GeometryN(i int) Geometry { return c.geometries[i] }

// DefaultFactory builds the geometries of this package.
type DefaultFactory struct{}

var _ Factory = DefaultFactory{}

func (DefaultFactory) CreatePoint(seq CoordinateSequence) (Geometry, error) {
	if seq.Len() > 1 {
		return nil, errs.New(errs.ErrInvalidGeometry, "create point", "%d coordinates", seq.Len())
	}

	return &Point{seq: seq}, nil
}

func (DefaultFactory) CreateLineString(seq CoordinateSequence) (Geometry, error) {
	return &LineString{seq: seq}, nil
}

func (DefaultFactory) CreateLinearRing(seq CoordinateSequence) (Geometry, error) {
	if !IsClosed(seq) {
		return nil, errs.New(errs.ErrInvalidGeometry, "create linear ring", "ring is not closed")
	}

	return &LinearRing{seq: seq}, nil
}

func (DefaultFactory) CreatePolygon(shell Geometry, holes []Geometry) (Geometry, error) {
	if shell == nil {
		if len(holes) > 0 {
			return nil, errs.New(errs.ErrInvalidGeometry, "create polygon", "holes without a shell")
		}

		return &Polygon{}, nil
	}

	s, ok := shell.(*LinearRing)
	if !ok {
		return nil, errs.New(errs.ErrInvalidGeometry, "create polygon", "shell is %T, not a linear ring", shell)
	}

	p := &Polygon{shell: s, holes: make([]*LinearRing, len(holes))}
	for i, h := range holes {
		r, ok := h.(*LinearRing)
		if !ok {
			return nil, errs.New(errs.ErrInvalidGeometry, "create polygon", "hole is %T, not a linear ring", h).AtIndex(i + 1)
		}
		p.holes[i] = r
	}

	return p, nil
}

func (DefaultFactory) CreateMultiPoint(points []Geometry) (Geometry, error) {
	if err := checkElements("create multi point", format.Point, points); err != nil {
		return nil, err
	}

	return &MultiPoint{points: points}, nil
}

func (DefaultFactory) CreateMultiLineString(lines []Geometry) (Geometry, error) {
	if err := checkElements("create multi line string", format.LineString, lines); err != nil {
		return nil, err
	}

	return &MultiLineString{lines: lines}, nil
}

func (DefaultFactory) CreateMultiPolygon(polygons []Geometry) (Geometry, error) {
	if err := checkElements("create multi polygon", format.Polygon, polygons); err != nil {
		return nil, err
	}

	return &MultiPolygon{polygons: polygons}, nil
}

func (DefaultFactory) CreateGeometryCollection(geometries []Geometry) (Geometry, error) {
	for i, g := range geometries {
		if g == nil {
			return nil, errs.New(errs.ErrInvalidGeometry, "create geometry collection", "nil element").AtIndex(i)
		}
	}

	return &GeometryCollection{geometries: geometries}, nil
}

func checkElements(op string, want format.GeometryType, elems []Geometry) error {
	for i, g := range elems {
		if g == nil || g.GeometryType() != want {
			return errs.New(errs.ErrInvalidGeometry, op, "element is not a %s", want).AtIndex(i)
		}
	}

	return nil
}
