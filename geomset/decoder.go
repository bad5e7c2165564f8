package geomset

import (
	"errors"
	"iter"

	"github.com/arloliu/wkb/codec"
	"github.com/arloliu/wkb/compress"
	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/internal/hash"
	"github.com/arloliu/wkb/raw"
	"github.com/arloliu/wkb/section"
	"go.uber.org/zap"
)

// Decoder provides random access to the records of a geometry set.
//
// All validation happens in NewDecoder, so At never fails for an index in
// range. Views returned by At alias the decoder's payload, which aliases the
// input when the set is uncompressed and already in native order.
type Decoder struct {
	header  section.SetHeader
	payload []byte
	offsets []uint32
	ends    []uint32
}

// NewDecoder parses and validates a geometry set.
//
// A set written on a host of the other byte order is normalized into a
// private copy of the payload.
//
// Parameters:
//   - data: Encoded set; must not be modified while the decoder is in use
//
// Returns:
//   - *Decoder: Decoder over the set
//   - error: ErrInvalidSetHeader, ErrMalformedInput for a truncated index or
//     bad record offsets, ErrChecksumMismatch, or a decompression or record
//     validation error
func NewDecoder(data []byte) (*Decoder, error) {
	d, err := newDecoder(data)
	if err != nil {
		Logger().Debug("geometry set rejected", zap.Int("size", len(data)), zap.Error(err))
		return nil, err
	}

	return d, nil
}

func newDecoder(data []byte) (*Decoder, error) {
	header, err := section.ParseSetHeader(data)
	if err != nil {
		return nil, err
	}

	if uint64(len(data)) < uint64(header.PayloadOffset) {
		return nil, errs.Malformed("decode set", "index needs %d bytes, have %d", header.PayloadOffset, len(data)).AtOffset(len(data))
	}

	payloadCodec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := payloadCodec.Decompress(data[header.PayloadOffset:], int(header.PayloadSize))
	if err != nil {
		return nil, errs.Malformed("decode set", "payload: %v", err).AtOffset(int(header.PayloadOffset))
	}

	if sum := hash.Sum(payload); sum != header.Checksum {
		return nil, errs.New(errs.ErrChecksumMismatch, "decode set", "payload hash 0x%016x, header 0x%016x", sum, header.Checksum)
	}

	d := &Decoder{
		header:  header,
		payload: payload,
		offsets: make([]uint32, header.Count),
		ends:    make([]uint32, header.Count),
	}

	le := endian.GetLittleEndianEngine()
	for i := range d.offsets {
		pos := section.SetIndexOffset + i*section.SetIndexEntry
		d.offsets[i] = le.Uint32(data[pos:])
	}

	if header.PayloadOrder != endian.NativeOrder() {
		if err := d.normalize(header.Compression == format.CompressionNone); err != nil {
			return nil, err
		}
	}

	for i, off := range d.offsets {
		if int(off) >= len(d.payload) {
			return nil, errs.Malformed("decode set", "record offset %d beyond payload of %d bytes", off, len(d.payload)).AtIndex(i)
		}

		n, err := raw.Length(d.payload[off:])
		if err != nil {
			return nil, recordError(err, i, off)
		}

		if _, err := raw.Parse(d.payload[off : int(off)+n]); err != nil {
			return nil, recordError(err, i, off)
		}
		d.ends[i] = off + uint32(n) //nolint: gosec
	}

	return d, nil
}

// normalize converts every record to native order. Shared offsets of a
// deduplicated set are converted once.
func (d *Decoder) normalize(aliased bool) error {
	if aliased {
		d.payload = append([]byte(nil), d.payload...)
	}

	done := make(map[uint32]struct{}, len(d.offsets))
	for i, off := range d.offsets {
		if _, ok := done[off]; ok {
			continue
		}
		if int(off) >= len(d.payload) {
			return errs.Malformed("decode set", "record offset %d beyond payload of %d bytes", off, len(d.payload)).AtIndex(i)
		}

		if _, err := raw.NormalizeToNative(d.payload[off:]); err != nil {
			return recordError(err, i, off)
		}
		done[off] = struct{}{}
	}

	return nil
}

func recordError(err error, i int, off uint32) error {
	err = errs.Shift(err, int(off))

	var e *errs.Error
	if errors.As(err, &e) && e.Index < 0 {
		e.Index = i
	}

	return err
}

// Header returns the parsed set header.
func (d *Decoder) Header() section.SetHeader {
	return d.header
}

// Compression returns the payload compression of the set.
func (d *Decoder) Compression() format.CompressionType {
	return d.header.Compression
}

// Len returns the number of records.
func (d *Decoder) Len() int {
	return len(d.offsets)
}

// At returns a zero-copy view of record i.
//
// Returns:
//   - raw.Geometry: View over the record
//   - error: ErrIndexOutOfRange if i is not in [0, Len())
func (d *Decoder) At(i int) (raw.Geometry, error) {
	data, err := d.Bytes(i)
	if err != nil {
		return raw.Geometry{}, err
	}

	return raw.NewGeometry(data)
}

// Bytes returns the WKB of record i. The slice aliases the decoder's payload.
func (d *Decoder) Bytes(i int) ([]byte, error) {
	if i < 0 || i >= len(d.offsets) {
		return nil, errs.New(errs.ErrIndexOutOfRange, "decode set", "record %d of %d", i, len(d.offsets)).AtIndex(i)
	}

	return d.payload[d.offsets[i]:d.ends[i]:d.ends[i]], nil
}

// All iterates over every record in index order.
func (d *Decoder) All() iter.Seq2[int, raw.Geometry] {
	return func(yield func(int, raw.Geometry) bool) {
		for i := range d.offsets {
			g, err := d.At(i)
			if err != nil {
				return
			}
			if !yield(i, g) {
				return
			}
		}
	}
}

// Read materializes record i with r.
func (d *Decoder) Read(i int, r *codec.Reader) (geom.Geometry, error) {
	data, err := d.Bytes(i)
	if err != nil {
		return nil, err
	}

	return r.Read(data)
}
