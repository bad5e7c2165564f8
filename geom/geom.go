package geom

import "github.com/arloliu/wkb/format"

// Axis selects an ordinate of a coordinate.
type Axis uint8

const (
	AxisX Axis = 0
	AxisY Axis = 1
)

// Geometry is implemented by every geometry of an object model.
type Geometry interface {
	GeometryType() format.GeometryType
}

// CoordinateSequence is a mutable, fixed size sequence of XY coordinates.
type CoordinateSequence interface {
	// Len returns the number of coordinates.
	Len() int
	// X returns the X ordinate of coordinate i.
	X(i int) float64
	// Y returns the Y ordinate of coordinate i.
	Y(i int) float64
	// SetOrdinate sets one ordinate of coordinate i.
	SetOrdinate(i int, axis Axis, v float64)
}

// SequenceFactory creates coordinate sequences of a fixed size.
type SequenceFactory interface {
	Create(size int) CoordinateSequence
}

// Sequenced is implemented by points, line strings and linear rings.
// A point's sequence holds one coordinate, or none when the point is empty.
type Sequenced interface {
	Geometry
	Coordinates() CoordinateSequence
}

// Polygonal is implemented by polygons. Ring 0 is the shell and the
// remaining rings are holes; an empty polygon has no rings.
type Polygonal interface {
	Geometry
	NumRings() int
	Ring(i int) CoordinateSequence
}

// Collection is implemented by the three Multi* kinds and by geometry
// collections.
type Collection interface {
	Geometry
	NumGeometries() int
	GeometryN(i int) Geometry
}

// Factory builds geometries of an object model.
//
// CreatePolygon receives rings created by CreateLinearRing of the same
// factory; a nil shell creates an empty polygon.
type Factory interface {
	CreatePoint(seq CoordinateSequence) (Geometry, error)
	CreateLineString(seq CoordinateSequence) (Geometry, error)
	CreateLinearRing(seq CoordinateSequence) (Geometry, error)
	CreatePolygon(shell Geometry, holes []Geometry) (Geometry, error)
	CreateMultiPoint(points []Geometry) (Geometry, error)
	CreateMultiLineString(lines []Geometry) (Geometry, error)
	CreateMultiPolygon(polygons []Geometry) (Geometry, error)
	CreateGeometryCollection(geometries []Geometry) (Geometry, error)
}
