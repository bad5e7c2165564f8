package raw

import (
	"bytes"
	"fmt"

	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/section"
)

// Point is a view over an encoded point.
type Point struct {
	data []byte
}

// NewPoint creates a Point view. g must be a Point of exactly 21 bytes.
func NewPoint(g Geometry) (Point, error) {
	if err := validatePoint(g); err != nil {
		return Point{}, err
	}

	return Point{data: g.data}, nil
}

func validatePoint(g Geometry) error {
	if g.typ != format.Point {
		return typeMismatch("point", "Point", g.typ)
	}

	if len(g.data) != section.PointSize {
		return errs.Malformed("point", "length must be %d, got %d", section.PointSize, len(g.data)).AtOffset(0)
	}

	return nil
}

// X returns the X ordinate.
func (p Point) X() float64 {
	return endian.Float64(native, p.data[section.PointXOffset:section.PointYOffset])
}

// Y returns the Y ordinate.
func (p Point) Y() float64 {
	return endian.Float64(native, p.data[section.PointYOffset:section.PointSize])
}

// Coordinate returns the XY pair.
func (p Point) Coordinate() Coordinate {
	return decodeCoordinate(p.data[section.PointXOffset:])
}

// Root returns the root view.
func (p Point) Root() Geometry {
	return Geometry{data: p.data, typ: format.Point}
}

// Equal reports whether both points have byte-identical coordinates.
func (p Point) Equal(other Point) bool {
	return bytes.Equal(p.data[section.HeaderSize:], other.data[section.HeaderSize:])
}

func (p Point) String() string {
	return fmt.Sprintf("Point[X = %g, Y = %g]", p.X(), p.Y())
}
