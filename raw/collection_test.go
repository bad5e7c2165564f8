package raw

import (
	"testing"

	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/section"
	"github.com/stretchr/testify/require"
)

func TestMultiPoint(t *testing.T) {
	data := collectionWKB(nativeOrder, format.MultiPoint,
		pointWKB(nativeOrder, 1, 2), pointWKB(nativeOrder, 3, 4), pointWKB(nativeOrder, 5, 6))

	n, err := Length(data)
	require.NoError(t, err)
	require.Equal(t, 9+3*21, n)

	g, err := Parse(data)
	require.NoError(t, err)

	c, err := g.AsCollection()
	require.NoError(t, err)
	require.Equal(t, format.MultiPoint, c.Type())
	require.Equal(t, 3, c.NumGeometries())
	require.Equal(t, "MultiPoint[NumGeometries = 3]", c.String())
	require.Equal(t, g, c.Root())

	for i := range 3 {
		child, ok := c.Geometry(i)
		require.True(t, ok)
		require.Equal(t, format.Point, child.Type())

		p, err := child.AsPoint()
		require.NoError(t, err)
		require.Equal(t, float64(2*i+1), p.X())
		require.Equal(t, float64(2*i+2), p.Y())
	}

	_, ok := c.Geometry(3)
	require.False(t, ok)
	_, ok = c.Geometry(-1)
	require.False(t, ok)

	var xs []float64
	for child := range c.All() {
		p, err := child.AsPoint()
		require.NoError(t, err)
		xs = append(xs, p.X())
	}
	require.Equal(t, []float64{1, 3, 5}, xs)
}

func TestNestedCollection(t *testing.T) {
	line := lineWKB(nativeOrder, 0, 0, 1, 1)
	poly := polygonWKB(nativeOrder, square(0, 0, 1))
	inner := collectionWKB(nativeOrder, format.MultiPolygon, poly, poly)
	data := collectionWKB(nativeOrder, format.GeometryCollection, line, inner, pointWKB(nativeOrder, 9, 9))

	g, err := Parse(data)
	require.NoError(t, err)

	c, err := g.AsCollection()
	require.NoError(t, err)
	require.Equal(t, 3, c.NumGeometries())

	var types []format.GeometryType
	for child := range c.All() {
		types = append(types, child.Type())
	}
	require.Equal(t, []format.GeometryType{format.LineString, format.MultiPolygon, format.Point}, types)

	child, ok := c.Geometry(1)
	require.True(t, ok)
	require.Equal(t, inner, child.Bytes())

	mp, err := child.AsCollection()
	require.NoError(t, err)
	require.Equal(t, 2, mp.NumGeometries())

	// stop early
	count := 0
	for range c.All() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestCollectionErrors(t *testing.T) {
	pt := pointWKB(nativeOrder, 1, 2)
	line := lineWKB(nativeOrder, 0, 0, 1, 1)
	unclosed := polygonWKB(nativeOrder, []float64{0, 0, 1, 0, 1, 1})

	tests := []struct {
		name    string
		data    []byte
		wantErr error
		index   int
	}{
		{"negative count", appendCount(appendHeader(nil, nativeOrder, format.GeometryCollection), nativeOrder, -1), errs.ErrMalformedInput, -1},
		{"missing child", appendCount(appendHeader(nil, nativeOrder, format.MultiPoint), nativeOrder, 1), errs.ErrMalformedInput, 0},
		{"excess data", append(collectionWKB(nativeOrder, format.MultiPoint, pt), 0), errs.ErrMalformedInput, -1},
		{"wrong element kind", collectionWKB(nativeOrder, format.MultiPoint, pt, line), errs.ErrMalformedInput, 1},
		{"invalid child", collectionWKB(nativeOrder, format.GeometryCollection, pt, unclosed), errs.ErrMalformedInput, 0},
		{"foreign child", collectionWKB(nativeOrder, format.GeometryCollection, pt, pointWKB(foreignOrder, 1, 1)), errs.ErrEndiannessMismatch, -1},
		{"child overruns parent", collectionWKB(nativeOrder, format.MultiLineString, line)[:30], errs.ErrMalformedInput, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGeometry(tt.data)
			require.NoError(t, err)

			_, err = NewCollection(g)
			require.ErrorIs(t, err, tt.wantErr)

			if tt.index >= 0 {
				var e *errs.Error
				require.ErrorAs(t, err, &e)
				require.Equal(t, tt.index, e.Index)
			}
		})
	}
}

func TestCollectionErrorOffset(t *testing.T) {
	pt := pointWKB(nativeOrder, 1, 2)
	unclosed := polygonWKB(nativeOrder, []float64{0, 0, 1, 0, 1, 1})
	data := collectionWKB(nativeOrder, format.GeometryCollection, pt, unclosed)

	_, err := Parse(data)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, section.CountedHeaderSize+section.PointSize+section.CountedHeaderSize, e.Offset)
}

func TestCollectionTypeMismatch(t *testing.T) {
	g, err := NewGeometry(pointWKB(nativeOrder, 0, 0))
	require.NoError(t, err)

	_, err = NewCollection(g)
	require.ErrorIs(t, err, errs.ErrMalformedInput)
}
