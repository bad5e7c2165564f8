package geomset

import (
	"github.com/arloliu/wkb/codec"
	"github.com/arloliu/wkb/compress"
	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/internal/dedup"
	"github.com/arloliu/wkb/internal/hash"
	"github.com/arloliu/wkb/internal/options"
	"github.com/arloliu/wkb/internal/pool"
	"github.com/arloliu/wkb/raw"
	"github.com/arloliu/wkb/section"
	"go.uber.org/zap"
)

// Encoder accumulates WKB records and produces a geometry set.
//
// An Encoder is not safe for concurrent use and cannot be reused after
// Finish.
type Encoder struct {
	writer      *codec.Writer
	tracker     *dedup.Tracker
	payload     *pool.ByteBuffer
	checksum    *hash.Digest
	offsets     []uint32
	compression format.CompressionType
	dedup       bool
	finished    bool
}

// NewEncoder creates an Encoder.
//
// Parameters:
//   - opts: Optional configuration (WithCompression, WithDeduplication, WithWriter)
//
// Returns:
//   - *Encoder: New encoder
//   - error: Option validation error
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		compression: format.CompressionNone,
		checksum:    hash.NewDigest(),
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	if e.writer == nil {
		w, err := codec.NewWriter()
		if err != nil {
			return nil, err
		}
		e.writer = w
	}

	if e.dedup {
		e.tracker = dedup.NewTracker()
	}
	e.payload = pool.GetSetBuffer()

	return e, nil
}

// Len returns the number of records added so far.
func (e *Encoder) Len() int {
	return len(e.offsets)
}

// Add appends one WKB record. The record is fully validated and must be in
// native byte order; normalize foreign input with raw.NormalizeToNative first.
//
// Returns:
//   - error: ErrEncoderFinished, ErrTooManyGeometries, or any raw.Parse error
func (e *Encoder) Add(wkb []byte) error {
	if err := e.checkAdd(len(wkb)); err != nil {
		return err
	}

	if _, err := raw.Parse(wkb); err != nil {
		Logger().Debug("geometry rejected", zap.Int("record", len(e.offsets)), zap.Error(err))
		return err
	}

	start := e.payload.Len()
	_, _ = e.payload.Write(wkb)
	e.commit(start)

	return nil
}

// AddGeometry encodes g with the encoder's writer and appends it.
func (e *Encoder) AddGeometry(g geom.Geometry) error {
	size, err := e.writer.ComputeLength(g)
	if err != nil {
		return err
	}

	if err := e.checkAdd(size); err != nil {
		return err
	}

	start := e.payload.Len()
	if _, err := e.writer.Write(g, e.payload.ExtendOrGrow(size)); err != nil {
		e.payload.B = e.payload.B[:start]
		return err
	}
	e.commit(start)

	return nil
}

func (e *Encoder) checkAdd(size int) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	if len(e.offsets) >= section.MaxSetGeometries {
		return errs.ErrTooManyGeometries
	}

	if uint64(e.payload.Len())+uint64(size) > section.SetMaxPayload { //nolint: gosec
		return errs.New(errs.ErrTooManyGeometries, "encode set", "payload would exceed %d bytes", uint64(section.SetMaxPayload))
	}

	return nil
}

// commit indexes the record written at start, dropping it again when an
// identical record is already stored.
func (e *Encoder) commit(start int) {
	offset := uint32(start) //nolint: gosec
	if e.tracker != nil {
		rec := e.payload.B[start:]
		if prev, ok := e.tracker.Lookup(rec); ok {
			e.payload.B = e.payload.B[:start]
			e.offsets = append(e.offsets, prev)

			return
		}
		e.tracker.Track(rec, offset)
	}

	e.checksum.Write(e.payload.B[start:])
	e.offsets = append(e.offsets, offset)
}

// Finish builds the set and releases the encoder's buffers.
//
// Returns:
//   - []byte: Encoded set
//   - error: ErrEncoderFinished, ErrNoGeometries, or a compression error
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}

	if len(e.offsets) == 0 {
		return nil, errs.ErrNoGeometries
	}

	e.finished = true
	defer e.release()

	payload := e.payload.Bytes()

	header := section.NewSetHeader(e.compression)
	header.WithDeduplication(e.dedup)
	header.PayloadOrder = endian.NativeOrder()
	header.Count = uint32(len(e.offsets))                                            //nolint: gosec
	header.PayloadOffset = section.SetIndexOffset + header.Count*section.SetIndexEntry //nolint: gosec
	header.PayloadSize = uint32(len(payload))                                         //nolint: gosec
	header.Checksum = e.checksum.Sum64()

	compressed, stats, err := compress.Compress(e.compression, payload)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, int(header.PayloadOffset)+len(compressed))
	out = append(out, header.Bytes()...)
	le := endian.GetLittleEndianEngine()
	for _, off := range e.offsets {
		out = le.AppendUint32(out, off)
	}
	out = append(out, compressed...)

	Logger().Debug("geometry set encoded",
		zap.Int("count", len(e.offsets)),
		zap.Int("payload", stats.OriginalSize),
		zap.Int("compressed", stats.CompressedSize),
		zap.Stringer("compression", e.compression),
		zap.Int("dedup_hits", e.dedupHits()),
	)

	return out, nil
}

func (e *Encoder) dedupHits() int {
	if e.tracker == nil {
		return 0
	}

	return e.tracker.Hits()
}

func (e *Encoder) release() {
	if e.tracker != nil {
		e.tracker.Reset()
	}
	pool.PutSetBuffer(e.payload)
	e.payload = nil
}
