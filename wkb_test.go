package wkb

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/wkb/codec"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/geomset"
	"github.com/arloliu/wkb/internal/wkbtest"
)

func TestParse(t *testing.T) {
	g, err := Parse(wkbtest.Point(wkbtest.Native, 1, 2))
	require.NoError(t, err)
	require.Equal(t, format.Point, g.Type())

	_, err = Parse(wkbtest.Point(wkbtest.Foreign, 1, 2))
	require.ErrorIs(t, err, errs.ErrEndiannessMismatch)
}

func TestNormalizeThenParse(t *testing.T) {
	for name, foreign := range wkbtest.Samples(wkbtest.Foreign) {
		t.Run(name, func(t *testing.T) {
			buf := slices.Clone(foreign)

			n, err := Length(buf)
			require.NoError(t, err)
			require.Equal(t, len(buf), n)

			n, err = Normalize(buf)
			require.NoError(t, err)
			require.Equal(t, len(buf), n)
			require.Equal(t, wkbtest.Samples(wkbtest.Native)[name], buf)

			_, err = Parse(buf)
			require.NoError(t, err)
		})
	}
}

func TestEnvelope(t *testing.T) {
	env, err := Envelope(wkbtest.Polygon(wkbtest.Native, wkbtest.Square(1, 2, 3)))
	require.NoError(t, err)
	require.InDelta(t, 1.0, env.MinX, 0)
	require.InDelta(t, 2.0, env.MinY, 0)
	require.InDelta(t, 4.0, env.MaxX, 0)
	require.InDelta(t, 5.0, env.MaxY, 0)

	env, err = Envelope(wkbtest.Polygon(wkbtest.Native))
	require.NoError(t, err)
	require.True(t, env.IsEmpty())

	_, err = Envelope(nil)
	require.ErrorIs(t, err, errs.ErrMalformedInput)
}

func TestReadMarshal(t *testing.T) {
	for name, data := range wkbtest.Samples(wkbtest.Native) {
		t.Run(name, func(t *testing.T) {
			g, err := Read(data, codec.WithPackingMode(format.PackingSOA))
			require.NoError(t, err)

			out, err := Marshal(g)
			require.NoError(t, err)
			require.Equal(t, data, out)

			out, err = Marshal(g, codec.WithByteOrder(wkbtest.Foreign))
			require.NoError(t, err)
			require.Equal(t, wkbtest.Samples(wkbtest.Foreign)[name], out)
		})
	}

	_, err := Read(nil, codec.WithMaxDepth(0))
	require.Error(t, err)

	_, err = Marshal(&geom.Point{}, codec.WithByteOrder(format.ByteOrder(5)))
	require.Error(t, err)
}

func TestSetWrappers(t *testing.T) {
	enc, err := NewSetEncoder(geomset.WithCompression(format.CompressionZstd), geomset.WithDeduplication(true))
	require.NoError(t, err)

	rec := wkbtest.Line(wkbtest.Native, 0, 0, 1, 1)
	require.NoError(t, enc.Add(rec))
	require.NoError(t, enc.Add(rec))

	blob, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewSetDecoder(blob)
	require.NoError(t, err)
	require.Equal(t, 2, dec.Len())

	g, err := dec.At(1)
	require.NoError(t, err)
	require.Equal(t, rec, g.Bytes())
}
