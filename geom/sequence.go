package geom

import "unsafe"

// XYSequence stores coordinates as interleaved X,Y pairs.
type XYSequence struct {
	// Coords holds X0, Y0, X1, Y1, ...
	Coords []float64
}

var _ CoordinateSequence = (*XYSequence)(nil)

// NewXYSequence creates a zeroed sequence of size coordinates.
func NewXYSequence(size int) *XYSequence {
	return &XYSequence{Coords: make([]float64, 2*size)}
}

// NewXYSequenceFrom wraps an interleaved slice without copying it.
func NewXYSequenceFrom(coords []float64) *XYSequence {
	return &XYSequence{Coords: coords}
}

func (s *XYSequence) Len() int        { return len(s.Coords) / 2 }
func (s *XYSequence) X(i int) float64 { return s.Coords[2*i] }
func (s *XYSequence) Y(i int) float64 { return s.Coords[2*i+1] }

func (s *XYSequence) SetOrdinate(i int, axis Axis, v float64) {
	s.Coords[2*i+int(axis)] = v
}

// Bytes returns the coordinates as a byte slice in native byte order,
// sharing memory with Coords.
func (s *XYSequence) Bytes() []byte {
	if len(s.Coords) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&s.Coords[0])), len(s.Coords)*8)
}

// Bounds returns the bounds of the sequence as minX, minY, maxX, maxY.
// ok is false for an empty sequence.
func (s *XYSequence) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	if len(s.Coords) < 2 {
		return 0, 0, 0, 0, false
	}

	minX, minY = s.Coords[0], s.Coords[1]
	maxX, maxY = minX, minY
	for i := 2; i+1 < len(s.Coords); i += 2 {
		minX = min(minX, s.Coords[i])
		maxX = max(maxX, s.Coords[i])
		minY = min(minY, s.Coords[i+1])
		maxY = max(maxY, s.Coords[i+1])
	}

	return minX, minY, maxX, maxY, true
}

// SOASequence stores all X values and all Y values in separate slices.
type SOASequence struct {
	Xs []float64
	Ys []float64
}

var _ CoordinateSequence = (*SOASequence)(nil)

// NewSOASequence creates a zeroed sequence of size coordinates.
func NewSOASequence(size int) *SOASequence {
	return &SOASequence{
		Xs: make([]float64, size),
		Ys: make([]float64, size),
	}
}

func (s *SOASequence) Len() int        { return len(s.Xs) }
func (s *SOASequence) X(i int) float64 { return s.Xs[i] }
func (s *SOASequence) Y(i int) float64 { return s.Ys[i] }

func (s *SOASequence) SetOrdinate(i int, axis Axis, v float64) {
	if axis == AxisX {
		s.Xs[i] = v
	} else {
		s.Ys[i] = v
	}
}

// Bounds returns the bounds of the sequence as minX, minY, maxX, maxY.
// ok is false for an empty sequence.
func (s *SOASequence) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	if len(s.Xs) == 0 {
		return 0, 0, 0, 0, false
	}

	minX, maxX = s.Xs[0], s.Xs[0]
	for _, x := range s.Xs[1:] {
		minX = min(minX, x)
		maxX = max(maxX, x)
	}

	minY, maxY = s.Ys[0], s.Ys[0]
	for _, y := range s.Ys[1:] {
		minY = min(minY, y)
		maxY = max(maxY, y)
	}

	return minX, minY, maxX, maxY, true
}

// XYSequenceFactory creates XYSequence values.
type XYSequenceFactory struct{}

func (XYSequenceFactory) Create(size int) CoordinateSequence { return NewXYSequence(size) }

// SOASequenceFactory creates SOASequence values.
type SOASequenceFactory struct{}

func (SOASequenceFactory) Create(size int) CoordinateSequence { return NewSOASequence(size) }

// Equal reports whether two sequences hold the same coordinates.
func Equal(a, b CoordinateSequence) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.Len() {
		if a.X(i) != b.X(i) || a.Y(i) != b.Y(i) {
			return false
		}
	}

	return true
}

// IsClosed reports whether the first and last coordinates are equal.
// An empty sequence is closed.
func IsClosed(s CoordinateSequence) bool {
	n := s.Len()
	if n == 0 {
		return true
	}

	return s.X(0) == s.X(n-1) && s.Y(0) == s.Y(n-1)
}
