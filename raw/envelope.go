package raw

import (
	"fmt"
	"math"
)

// Envelope is an axis-aligned bounding box.
type Envelope struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// EmptyEnvelope returns an envelope that contains nothing.
func EmptyEnvelope() Envelope {
	return Envelope{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether the envelope contains no point.
func (e Envelope) IsEmpty() bool {
	return e.MinX > e.MaxX || e.MinY > e.MaxY
}

// Width returns MaxX - MinX, or 0 for an empty envelope.
func (e Envelope) Width() float64 {
	if e.IsEmpty() {
		return 0
	}

	return e.MaxX - e.MinX
}

// Height returns MaxY - MinY, or 0 for an empty envelope.
func (e Envelope) Height() float64 {
	if e.IsEmpty() {
		return 0
	}

	return e.MaxY - e.MinY
}

// ExpandToInclude grows the envelope to contain (x, y).
func (e *Envelope) ExpandToInclude(x, y float64) {
	e.MinX = min(e.MinX, x)
	e.MinY = min(e.MinY, y)
	e.MaxX = max(e.MaxX, x)
	e.MaxY = max(e.MaxY, y)
}

// ExpandToIncludeEnvelope grows the envelope to contain other.
func (e *Envelope) ExpandToIncludeEnvelope(other Envelope) {
	if other.IsEmpty() {
		return
	}

	e.ExpandToInclude(other.MinX, other.MinY)
	e.ExpandToInclude(other.MaxX, other.MaxY)
}

// Intersects reports whether the two envelopes share at least one point.
func (e Envelope) Intersects(other Envelope) bool {
	if e.IsEmpty() || other.IsEmpty() {
		return false
	}

	return e.MinX <= other.MaxX && other.MinX <= e.MaxX &&
		e.MinY <= other.MaxY && other.MinY <= e.MaxY
}

// Contains reports whether (x, y) lies inside or on the boundary.
func (e Envelope) Contains(x, y float64) bool {
	return x >= e.MinX && x <= e.MaxX && y >= e.MinY && y <= e.MaxY
}

func (e Envelope) String() string {
	if e.IsEmpty() {
		return "Envelope[Empty]"
	}

	return fmt.Sprintf("Envelope[%g %g, %g %g]", e.MinX, e.MinY, e.MaxX, e.MaxY)
}

type envelopeVisitor struct {
	NopVisitor
	env Envelope
}

func (v *envelopeVisitor) VisitCoordinate(c Coordinate) {
	v.env.ExpandToInclude(c.X, c.Y)
}

// EnvelopeOf returns the bounding box of every coordinate in g.
// Geometries without coordinates yield an empty envelope.
func EnvelopeOf(g Geometry) (Envelope, error) {
	v := envelopeVisitor{env: EmptyEnvelope()}
	if err := Walk(g, VisitCoordinates, &v); err != nil {
		return Envelope{}, err
	}

	return v.env, nil
}
