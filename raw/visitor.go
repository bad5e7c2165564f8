package raw

import "github.com/arloliu/wkb/format"

// VisitMode selects how deep Walk descends. Each mode includes everything
// visited by the modes before it.
type VisitMode uint8

const (
	// VisitGeometries visits the root geometry node only.
	VisitGeometries VisitMode = iota
	// VisitCollectionElements also visits the children of collections.
	VisitCollectionElements
	// VisitCoordinateSequences also visits line strings and polygon rings as
	// coordinate sequences.
	VisitCoordinateSequences
	// VisitCoordinates also visits every individual coordinate, including the
	// coordinate of a point.
	VisitCoordinates
)

func (m VisitMode) String() string {
	switch m {
	case VisitGeometries:
		return "Geometries"
	case VisitCollectionElements:
		return "CollectionElements"
	case VisitCoordinateSequences:
		return "CoordinateSequences"
	case VisitCoordinates:
		return "Coordinates"
	default:
		return "Unknown"
	}
}

// Visitor receives callbacks from Walk. Embed NopVisitor to implement only
// the hooks an algorithm needs.
//
// For every node VisitGeometry is called first, followed by the hook of the
// node's kind. The three Multi* kinds and GeometryCollection call their own
// hook and then VisitCollection.
type Visitor interface {
	VisitGeometry(g Geometry)
	VisitPoint(p Point)
	VisitLineString(l LineString)
	VisitPolygon(p Polygon)
	VisitMultiPoint(c Collection)
	VisitMultiLineString(c Collection)
	VisitMultiPolygon(c Collection)
	VisitGeometryCollection(c Collection)
	VisitCollection(c Collection)
	VisitCoordinateSequence(s CoordinateSequence)
	VisitCoordinate(c Coordinate)
}

// NopVisitor implements every Visitor hook as a no-op.
type NopVisitor struct{}

var _ Visitor = NopVisitor{}

func (NopVisitor) VisitGeometry(Geometry)                     {}
func (NopVisitor) VisitPoint(Point)                           {}
func (NopVisitor) VisitLineString(LineString)                 {}
func (NopVisitor) VisitPolygon(Polygon)                       {}
func (NopVisitor) VisitMultiPoint(Collection)                 {}
func (NopVisitor) VisitMultiLineString(Collection)            {}
func (NopVisitor) VisitMultiPolygon(Collection)               {}
func (NopVisitor) VisitGeometryCollection(Collection)         {}
func (NopVisitor) VisitCollection(Collection)                 {}
func (NopVisitor) VisitCoordinateSequence(CoordinateSequence) {}
func (NopVisitor) VisitCoordinate(Coordinate)                 {}

// Walk validates g and traverses it depth first, calling v for every node
// selected by mode. Validation happens once up front; the traversal itself
// does not allocate.
//
// Walk is not safe to run while the buffer behind g is being mutated.
func Walk(g Geometry, mode VisitMode, v Visitor) error {
	if err := validate(g, 0); err != nil {
		return err
	}

	walk(g, mode, v)

	return nil
}

func walk(g Geometry, mode VisitMode, v Visitor) {
	v.VisitGeometry(g)

	switch g.typ {
	case format.Point:
		p := Point{data: g.data}
		v.VisitPoint(p)
		if mode >= VisitCoordinates {
			v.VisitCoordinate(p.Coordinate())
		}

	case format.LineString:
		l := LineString{data: g.data}
		v.VisitLineString(l)
		if mode >= VisitCoordinateSequences {
			walkSequence(l.Points(), mode, v)
		}

	case format.Polygon:
		p := Polygon{data: g.data}
		v.VisitPolygon(p)
		if mode >= VisitCoordinateSequences {
			for ring := range p.Rings() {
				walkSequence(ring, mode, v)
			}
		}

	default:
		c := Collection{data: g.data, typ: g.typ}
		switch g.typ {
		case format.MultiPoint:
			v.VisitMultiPoint(c)
		case format.MultiLineString:
			v.VisitMultiLineString(c)
		case format.MultiPolygon:
			v.VisitMultiPolygon(c)
		default:
			v.VisitGeometryCollection(c)
		}
		v.VisitCollection(c)

		if mode >= VisitCollectionElements {
			for child := range c.All() {
				walk(child, mode, v)
			}
		}
	}
}

func walkSequence(s CoordinateSequence, mode VisitMode, v Visitor) {
	v.VisitCoordinateSequence(s)
	if mode < VisitCoordinates {
		return
	}

	for c := range s.All() {
		v.VisitCoordinate(c)
	}
}
