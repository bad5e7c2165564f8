package raw

import (
	"fmt"

	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/section"
)

// LineString is a view over an encoded line string.
type LineString struct {
	data []byte
}

// NewLineString creates a LineString view. The declared point count must
// match the bytes following it exactly.
func NewLineString(g Geometry) (LineString, error) {
	if err := validateLineString(g); err != nil {
		return LineString{}, err
	}

	return LineString{data: g.data}, nil
}

func validateLineString(g Geometry) error {
	if g.typ != format.LineString {
		return typeMismatch("line string", "LineString", g.typ)
	}

	if _, err := NewCoordinateSequence(g.data[section.HeaderSize:]); err != nil {
		return errs.Shift(err, section.HeaderSize)
	}

	return nil
}

// Points returns the coordinate sequence of the line string.
func (l LineString) Points() CoordinateSequence {
	return CoordinateSequence{data: l.data[section.HeaderSize:]}
}

// PointCount returns the number of coordinates.
func (l LineString) PointCount() int {
	return l.Points().PointCount()
}

// Root returns the root view.
func (l LineString) Root() Geometry {
	return Geometry{data: l.data, typ: format.LineString}
}

// Equal reports whether both line strings have byte-identical payloads.
func (l LineString) Equal(other LineString) bool {
	return l.Points().Equal(other.Points())
}

func (l LineString) String() string {
	return fmt.Sprintf("LineString[PointCount = %d]", l.PointCount())
}
