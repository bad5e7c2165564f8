package geomset

import (
	"slices"
	"testing"

	"github.com/arloliu/wkb/codec"
	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/internal/hash"
	"github.com/arloliu/wkb/internal/wkbtest"
	"github.com/arloliu/wkb/section"
	"github.com/stretchr/testify/require"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// sampleRecords returns the sample geometries in a stable order.
func sampleRecords(order format.ByteOrder) [][]byte {
	samples := wkbtest.Samples(order)
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([][]byte, 0, len(names))
	for _, name := range names {
		out = append(out, samples[name])
	}

	return out
}

func encode(t *testing.T, records [][]byte, opts ...EncoderOption) []byte {
	t.Helper()

	enc, err := NewEncoder(opts...)
	require.NoError(t, err)
	for _, rec := range records {
		require.NoError(t, enc.Add(rec))
	}
	require.Equal(t, len(records), enc.Len())

	blob, err := enc.Finish()
	require.NoError(t, err)

	return blob
}

// buildSet assembles an uncompressed set by hand, bypassing the encoder.
func buildSet(order format.ByteOrder, offsets []uint32, payload []byte) []byte {
	h := section.NewSetHeader(format.CompressionNone)
	h.PayloadOrder = order
	h.Count = uint32(len(offsets))
	h.PayloadOffset = section.SetIndexOffset + h.Count*section.SetIndexEntry
	h.PayloadSize = uint32(len(payload))
	h.Checksum = hash.Sum(payload)

	out := h.Bytes()
	for _, off := range offsets {
		out = endian.GetLittleEndianEngine().AppendUint32(out, off)
	}

	return append(out, payload...)
}

func TestRoundTrip(t *testing.T) {
	records := sampleRecords(wkbtest.Native)

	for _, ct := range allCompressions {
		for _, dedup := range []bool{false, true} {
			name := ct.String()
			if dedup {
				name += "/dedup"
			}

			t.Run(name, func(t *testing.T) {
				blob := encode(t, records, WithCompression(ct), WithDeduplication(dedup))

				dec, err := NewDecoder(blob)
				require.NoError(t, err)
				require.Equal(t, len(records), dec.Len())
				require.Equal(t, ct, dec.Compression())
				require.Equal(t, dedup, dec.Header().IsDeduplicated())

				for i, rec := range records {
					g, err := dec.At(i)
					require.NoError(t, err)
					require.Equal(t, rec, g.Bytes())
				}
			})
		}
	}
}

func TestDeduplication(t *testing.T) {
	a := wkbtest.Polygon(wkbtest.Native, wkbtest.Square(0, 0, 10))
	b := wkbtest.Point(wkbtest.Native, 1, 2)
	records := [][]byte{a, b, a, a, b}

	plain := encode(t, records)
	deduped := encode(t, records, WithDeduplication(true))
	require.Less(t, len(deduped), len(plain))

	dec, err := NewDecoder(deduped)
	require.NoError(t, err)
	require.Equal(t, uint32(len(a)+len(b)), dec.Header().PayloadSize)

	for i, rec := range records {
		data, err := dec.Bytes(i)
		require.NoError(t, err)
		require.Equal(t, rec, data)
	}
}

func TestEncoder_AddGeometry(t *testing.T) {
	f := geom.DefaultFactory{}
	pt, err := f.CreatePoint(geom.NewXYSequenceFrom([]float64{3, 4}))
	require.NoError(t, err)
	line, err := f.CreateLineString(geom.NewXYSequenceFrom([]float64{0, 0, 1, 1}))
	require.NoError(t, err)

	w, err := codec.NewWriter()
	require.NoError(t, err)

	enc, err := NewEncoder(WithWriter(w), WithDeduplication(true))
	require.NoError(t, err)
	require.NoError(t, enc.AddGeometry(pt))
	require.NoError(t, enc.AddGeometry(line))
	require.NoError(t, enc.AddGeometry(pt))

	empty, err := f.CreatePoint(geom.NewXYSequence(0))
	require.NoError(t, err)
	require.ErrorIs(t, enc.AddGeometry(empty), errs.ErrInvalidGeometry)
	require.Equal(t, 3, enc.Len())

	blob, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewDecoder(blob)
	require.NoError(t, err)
	require.Equal(t, 3, dec.Len())

	r, err := codec.NewReader()
	require.NoError(t, err)

	g, err := dec.Read(2, r)
	require.NoError(t, err)
	p, ok := g.(*geom.Point)
	require.True(t, ok)
	require.InDelta(t, 3.0, p.X(), 0)
	require.InDelta(t, 4.0, p.Y(), 0)

	data, err := dec.Bytes(1)
	require.NoError(t, err)
	require.Equal(t, wkbtest.Line(wkbtest.Native, 0, 0, 1, 1), data)
}

func TestEncoder_RejectsInvalidRecords(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	require.ErrorIs(t, enc.Add(wkbtest.Point(wkbtest.Foreign, 1, 2)), errs.ErrEndiannessMismatch)
	require.ErrorIs(t, enc.Add(wkbtest.Point(wkbtest.Native, 1, 2)[:20]), errs.ErrMalformedInput)
	require.ErrorIs(t, enc.Add(append(wkbtest.Point(wkbtest.Native, 1, 2), 0)), errs.ErrMalformedInput)
	require.ErrorIs(t, enc.Add(wkbtest.Polygon(wkbtest.Native, []float64{0, 0, 1, 1})), errs.ErrMalformedInput)
	require.Equal(t, 0, enc.Len())
}

func TestEncoder_Lifecycle(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	_, err = enc.Finish()
	require.ErrorIs(t, err, errs.ErrNoGeometries)

	require.NoError(t, enc.Add(wkbtest.Point(wkbtest.Native, 0, 0)))
	_, err = enc.Finish()
	require.NoError(t, err)

	_, err = enc.Finish()
	require.ErrorIs(t, err, errs.ErrEncoderFinished)
	require.ErrorIs(t, enc.Add(wkbtest.Point(wkbtest.Native, 0, 0)), errs.ErrEncoderFinished)
}

func TestEncoder_Options(t *testing.T) {
	_, err := NewEncoder(WithCompression(format.CompressionType(0)))
	require.Error(t, err)

	_, err = NewEncoder(WithWriter(nil))
	require.Error(t, err)

	foreign, err := codec.NewWriter(codec.WithByteOrder(wkbtest.Foreign))
	require.NoError(t, err)
	_, err = NewEncoder(WithWriter(foreign))
	require.Error(t, err)
}

func TestDecoder_ForeignPayload(t *testing.T) {
	native := sampleRecords(wkbtest.Native)
	foreign := sampleRecords(wkbtest.Foreign)

	var payload []byte
	offsets := make([]uint32, 0, len(foreign)+1)
	for _, rec := range foreign {
		offsets = append(offsets, uint32(len(payload)))
		payload = append(payload, rec...)
	}
	// a shared offset must be converted only once
	offsets = append(offsets, offsets[0])

	blob := buildSet(wkbtest.Foreign, offsets, payload)
	original := slices.Clone(blob)

	dec, err := NewDecoder(blob)
	require.NoError(t, err)
	require.Equal(t, original, blob, "input must not be modified")

	for i, rec := range native {
		g, err := dec.At(i)
		require.NoError(t, err)
		require.Equal(t, rec, g.Bytes())
	}

	last, err := dec.At(len(native))
	require.NoError(t, err)
	require.Equal(t, native[0], last.Bytes())
}

func TestDecoder_Corruption(t *testing.T) {
	records := [][]byte{wkbtest.Point(wkbtest.Native, 1, 2), wkbtest.Line(wkbtest.Native, 0, 0, 1, 1)}
	blob := encode(t, records)

	t.Run("bad magic", func(t *testing.T) {
		bad := slices.Clone(blob)
		bad[1] ^= 0xFF
		_, err := NewDecoder(bad)
		require.ErrorIs(t, err, errs.ErrInvalidSetHeader)
	})

	t.Run("short header", func(t *testing.T) {
		_, err := NewDecoder(blob[:section.SetHeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidSetHeader)
	})

	t.Run("truncated index", func(t *testing.T) {
		_, err := NewDecoder(blob[:section.SetHeaderSize+4])
		require.ErrorIs(t, err, errs.ErrMalformedInput)
	})

	t.Run("payload bit flip", func(t *testing.T) {
		bad := slices.Clone(blob)
		bad[len(bad)-1] ^= 0x01
		_, err := NewDecoder(bad)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := NewDecoder(blob[:len(blob)-1])
		require.ErrorIs(t, err, errs.ErrMalformedInput)
	})

	t.Run("offset beyond payload", func(t *testing.T) {
		bad := slices.Clone(blob)
		endian.GetLittleEndianEngine().PutUint32(bad[section.SetIndexOffset+4:], 1<<20)
		_, err := NewDecoder(bad)
		require.ErrorIs(t, err, errs.ErrMalformedInput)

		var e *errs.Error
		require.ErrorAs(t, err, &e)
		require.Equal(t, 1, e.Index)
	})

	t.Run("offset inside record", func(t *testing.T) {
		bad := slices.Clone(blob)
		endian.GetLittleEndianEngine().PutUint32(bad[section.SetIndexOffset:], 3)
		_, err := NewDecoder(bad)
		require.Error(t, err)
	})
}

func TestDecoder_Access(t *testing.T) {
	records := sampleRecords(wkbtest.Native)
	dec, err := NewDecoder(encode(t, records, WithCompression(format.CompressionS2)))
	require.NoError(t, err)

	_, err = dec.At(-1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	_, err = dec.At(len(records))
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	r, err := codec.NewReader()
	require.NoError(t, err)
	_, err = dec.Read(len(records), r)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	seen := 0
	for i, g := range dec.All() {
		require.Equal(t, records[i], g.Bytes())
		seen++
		if i == 2 {
			break
		}
	}
	require.Equal(t, 3, seen)
}

func BenchmarkDecoder(b *testing.B) {
	var records [][]byte
	for i := range 1000 {
		records = append(records, wkbtest.Polygon(wkbtest.Native, wkbtest.Square(float64(i), float64(i), 1)))
	}

	for _, ct := range allCompressions {
		enc, _ := NewEncoder(WithCompression(ct))
		for _, rec := range records {
			_ = enc.Add(rec)
		}
		blob, err := enc.Finish()
		if err != nil {
			b.Fatal(err)
		}

		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(blob)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = NewDecoder(blob)
			}
		})
	}
}
