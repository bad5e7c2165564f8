package raw

import (
	"testing"

	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToNative(t *testing.T) {
	want := samples(nativeOrder)
	foreign := samples(foreignOrder)

	for name, data := range foreign {
		t.Run(name, func(t *testing.T) {
			buf := append([]byte(nil), data...)
			n, err := NormalizeToNative(buf)
			require.NoError(t, err)
			require.Equal(t, len(buf), n)
			require.Equal(t, want[name], buf)

			_, err = Parse(buf)
			require.NoError(t, err)
		})
	}
}

func TestNormalizeNativeIsNoop(t *testing.T) {
	for name, data := range samples(nativeOrder) {
		t.Run(name, func(t *testing.T) {
			buf := append([]byte(nil), data...)
			_, err := NormalizeToNative(buf)
			require.NoError(t, err)
			require.Equal(t, data, buf)
		})
	}
}

func TestNormalizeMixedOrder(t *testing.T) {
	mixed := collectionWKB(foreignOrder, format.GeometryCollection,
		pointWKB(nativeOrder, 1, 2),
		lineWKB(foreignOrder, 0, 0, 3, 3),
		collectionWKB(nativeOrder, format.MultiPolygon,
			polygonWKB(foreignOrder, square(0, 0, 1)),
			polygonWKB(nativeOrder, square(5, 5, 1)),
		),
	)

	want := collectionWKB(nativeOrder, format.GeometryCollection,
		pointWKB(nativeOrder, 1, 2),
		lineWKB(nativeOrder, 0, 0, 3, 3),
		collectionWKB(nativeOrder, format.MultiPolygon,
			polygonWKB(nativeOrder, square(0, 0, 1)),
			polygonWKB(nativeOrder, square(5, 5, 1)),
		),
	)

	// views refuse the mixed buffer until it is normalized
	_, err := Parse(mixed)
	require.ErrorIs(t, err, errs.ErrEndiannessMismatch)

	partly := collectionWKB(nativeOrder, format.GeometryCollection, pointWKB(nativeOrder, 1, 2), lineWKB(foreignOrder, 0, 0, 1, 1))
	_, err = Parse(partly)
	require.ErrorIs(t, err, errs.ErrEndiannessMismatch)

	_, err = NormalizeToNative(mixed)
	require.NoError(t, err)
	require.Equal(t, want, mixed)
}

func TestNormalizeTo(t *testing.T) {
	for name, data := range samples(nativeOrder) {
		t.Run(name, func(t *testing.T) {
			buf := append([]byte(nil), data...)
			_, err := NormalizeTo(buf, foreignOrder)
			require.NoError(t, err)
			require.Equal(t, samples(foreignOrder)[name], buf)

			_, err = NormalizeTo(buf, nativeOrder)
			require.NoError(t, err)
			require.Equal(t, data, buf)
		})
	}

	_, err := NormalizeTo(pointWKB(nativeOrder, 0, 0), format.ByteOrder(5))
	require.ErrorIs(t, err, errs.ErrMalformedInput)
}

func TestNormalizeTrailingBytesUntouched(t *testing.T) {
	buf := append(pointWKB(foreignOrder, 1, 2), 0xAA, 0xBB)
	n, err := NormalizeToNative(buf)
	require.NoError(t, err)
	require.Equal(t, 21, n)
	require.Equal(t, []byte{0xAA, 0xBB}, buf[21:])
	require.Equal(t, pointWKB(nativeOrder, 1, 2), buf[:21])
}

func TestNormalizeErrorLeavesBufferUntouched(t *testing.T) {
	data := collectionWKB(foreignOrder, format.MultiLineString,
		lineWKB(foreignOrder, 0, 0, 1, 1),
		lineWKB(foreignOrder, 2, 2, 3, 3),
	)
	truncated := append([]byte(nil), data[:len(data)-3]...)
	orig := append([]byte(nil), truncated...)

	_, err := NormalizeToNative(truncated)
	require.ErrorIs(t, err, errs.ErrMalformedInput)
	require.Equal(t, orig, truncated)
}
