package raw

import (
	"testing"

	"github.com/arloliu/wkb/errs"
	"github.com/stretchr/testify/require"
)

func TestCoordinateSequence(t *testing.T) {
	data := appendCoords(nil, nativeOrder, []float64{1, 2, 3, 4, 5, 6})

	s, err := NewCoordinateSequence(data)
	require.NoError(t, err)
	require.Equal(t, 3, s.PointCount())
	require.False(t, s.IsEmpty())
	require.Equal(t, data, s.Bytes())
	require.Len(t, s.Coordinates(), 48)
	require.Equal(t, "CoordinateSequence[PointCount = 3]", s.String())

	c, ok := s.Coordinate(1)
	require.True(t, ok)
	require.Equal(t, Coordinate{X: 3, Y: 4}, c)
	require.Equal(t, 5.0, s.X(2))
	require.Equal(t, 6.0, s.Y(2))

	_, ok = s.Coordinate(3)
	require.False(t, ok)
	_, ok = s.Coordinate(-1)
	require.False(t, ok)

	var got []Coordinate
	for c := range s.All() {
		got = append(got, c)
	}
	require.Equal(t, []Coordinate{{1, 2}, {3, 4}, {5, 6}}, got)
	require.False(t, s.IsClosed())
}

func TestCoordinateSequenceUnaligned(t *testing.T) {
	for offset := range 8 {
		buf := make([]byte, offset)
		buf = appendCoords(buf, nativeOrder, []float64{0.1, 0.2, 0.3, 0.4})

		s, err := NewCoordinateSequence(buf[offset:])
		require.NoError(t, err)

		var got []Coordinate
		for c := range s.All() {
			got = append(got, c)
		}
		require.Equal(t, []Coordinate{{0.1, 0.2}, {0.3, 0.4}}, got)
	}
}

func TestCoordinateSequenceErrors(t *testing.T) {
	good := appendCoords(nil, nativeOrder, []float64{1, 2, 3, 4})

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short count", good[:3]},
		{"missing bytes", good[:len(good)-1]},
		{"extra bytes", append(append([]byte(nil), good...), 0)},
		{"extra coordinate", append(append([]byte(nil), good...), make([]byte, 16)...)},
		{"negative", appendCount(nil, nativeOrder, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCoordinateSequence(tt.data)
			require.ErrorIs(t, err, errs.ErrMalformedInput)
		})
	}
}

func TestCoordinateSequenceEmpty(t *testing.T) {
	s, err := NewCoordinateSequence(appendCount(nil, nativeOrder, 0))
	require.NoError(t, err)
	require.True(t, s.IsEmpty())
	require.True(t, s.IsClosed())

	for range s.All() {
		t.Fatal("empty sequence yields nothing")
	}

	var zero CoordinateSequence
	require.Equal(t, 0, zero.PointCount())
	require.Nil(t, zero.Coordinates())
}

func TestCoordinateSequenceEqual(t *testing.T) {
	a, err := NewCoordinateSequence(appendCoords(nil, nativeOrder, []float64{1, 2}))
	require.NoError(t, err)
	b, err := NewCoordinateSequence(appendCoords(nil, nativeOrder, []float64{1, 2}))
	require.NoError(t, err)
	c, err := NewCoordinateSequence(appendCoords(nil, nativeOrder, []float64{1, 2.0000001}))
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
