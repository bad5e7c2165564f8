package orbgeom

import (
	"github.com/arloliu/wkb/geom"
	"github.com/paulmach/orb"
)

// Sequence is a coordinate sequence backed by a slice of orb points.
type Sequence struct {
	Points []orb.Point
}

var _ geom.CoordinateSequence = (*Sequence)(nil)

func (s *Sequence) Len() int        { return len(s.Points) }
func (s *Sequence) X(i int) float64 { return s.Points[i][0] }
func (s *Sequence) Y(i int) float64 { return s.Points[i][1] }

func (s *Sequence) SetOrdinate(i int, axis geom.Axis, v float64) {
	s.Points[i][axis] = v
}

// SequenceFactory creates Sequences.
type SequenceFactory struct{}

func (SequenceFactory) Create(size int) geom.CoordinateSequence {
	return &Sequence{Points: make([]orb.Point, size)}
}

// points returns the coordinates of seq as orb points, sharing memory when
// seq is a *Sequence.
func points(seq geom.CoordinateSequence) []orb.Point {
	if s, ok := seq.(*Sequence); ok {
		return s.Points
	}

	out := make([]orb.Point, seq.Len())
	for i := range out {
		out[i] = orb.Point{seq.X(i), seq.Y(i)}
	}

	return out
}
