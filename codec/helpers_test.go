package codec

import (
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/geom"
)

// pairSequence is a CoordinateSequence that is neither AOS nor SOA, so it
// exercises the generic read and write paths.
type pairSequence struct {
	pts [][2]float64
}

func (s *pairSequence) Len() int        { return len(s.pts) }
func (s *pairSequence) X(i int) float64 { return s.pts[i][0] }
func (s *pairSequence) Y(i int) float64 { return s.pts[i][1] }

func (s *pairSequence) SetOrdinate(i int, axis geom.Axis, v float64) {
	s.pts[i][axis] = v
}

type pairFactory struct{}

func (pairFactory) Create(size int) geom.CoordinateSequence {
	return &pairSequence{pts: make([][2]float64, size)}
}

// loosePolygon implements Polygonal without the closure check of the
// default factory.
type loosePolygon struct {
	rings []geom.CoordinateSequence
}

func (p *loosePolygon) GeometryType() format.GeometryType  { return format.Polygon }
func (p *loosePolygon) NumRings() int                      { return len(p.rings) }
func (p *loosePolygon) Ring(i int) geom.CoordinateSequence { return p.rings[i] }

// looseCollection implements Collection for any declared kind.
type looseCollection struct {
	typ      format.GeometryType
	children []geom.Geometry
}

func (c *looseCollection) GeometryType() format.GeometryType { return c.typ }
func (c *looseCollection) NumGeometries() int                { return len(c.children) }
func (c *looseCollection) GeometryN(i int) geom.Geometry     { return c.children[i] }

// bareGeometry exposes only its kind.
type bareGeometry format.GeometryType

func (g bareGeometry) GeometryType() format.GeometryType { return format.GeometryType(g) }

func xy(coords ...float64) *geom.XYSequence {
	return geom.NewXYSequenceFrom(coords)
}

func mustPoint(x, y float64) geom.Geometry {
	g, err := geom.DefaultFactory{}.CreatePoint(xy(x, y))
	if err != nil {
		panic(err)
	}

	return g
}

func mustRing(coords ...float64) geom.Geometry {
	g, err := geom.DefaultFactory{}.CreateLinearRing(xy(coords...))
	if err != nil {
		panic(err)
	}

	return g
}
