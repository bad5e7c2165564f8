package section

import (
	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
)

// SetHeader represents the fixed-size header at the start of a geometry set.
//
// All fields are little-endian regardless of host order. The records in the
// payload are native-order WKB of the host that wrote the set; a reader on a
// host of the other order normalizes them before use.
type SetHeader struct {
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 24-31
	// Count is the number of records in the set.
	Count uint32 // byte offset 4-7
	// IndexOffset is the byte offset of the record offset index.
	IndexOffset uint32 // byte offset 8-11
	// PayloadOffset is the byte offset of the (possibly compressed) payload.
	PayloadOffset uint32 // byte offset 12-15
	// PayloadSize is the length of the payload after decompression.
	PayloadSize uint32 // byte offset 16-19
	// Options packs the deduplication flag and the magic number.
	// Bit 0 is the deduplication flag, bits 1-3 are reserved and must be 0,
	// bits 4-15 carry MagicGeomSetV1.
	Options uint16 // byte offset 0-1
	// Compression is the payload compression type.
	Compression format.CompressionType // byte offset 2
	// PayloadOrder is the WKB byte order of every record in the payload.
	PayloadOrder format.ByteOrder // byte offset 3
}

var validSetCompressions = map[format.CompressionType]struct{}{
	format.CompressionNone: {},
	format.CompressionZstd: {},
	format.CompressionS2:   {},
	format.CompressionLZ4:  {},
}

// NewSetHeader creates a header with the magic number set and no records.
func NewSetHeader(compression format.CompressionType) *SetHeader {
	return &SetHeader{
		Options:      MagicGeomSetV1,
		Compression:  compression,
		PayloadOrder: endian.NativeOrder(),
		IndexOffset:  SetIndexOffset,
	}
}

// IsDeduplicated returns whether identical records share a payload offset.
func (h SetHeader) IsDeduplicated() bool {
	return h.Options&DedupMask != 0
}

// WithDeduplication sets the deduplication flag.
func (h *SetHeader) WithDeduplication(enabled bool) {
	if enabled {
		h.Options |= DedupMask
	} else {
		h.Options &^= DedupMask
	}
}

// Validate checks the magic number, reserved bits and enum fields.
func (h SetHeader) Validate() error {
	if h.Options&MagicNumberMask != MagicGeomSetV1 {
		return errs.New(errs.ErrInvalidSetHeader, "set header", "bad magic 0x%04x", h.Options&MagicNumberMask)
	}

	if h.Options&SetReservedMask != 0 {
		return errs.New(errs.ErrInvalidSetHeader, "set header", "reserved bits set")
	}

	if _, ok := validSetCompressions[h.Compression]; !ok {
		return errs.New(errs.ErrInvalidSetHeader, "set header", "compression %d", uint8(h.Compression))
	}

	if !h.PayloadOrder.IsValid() {
		return errs.New(errs.ErrInvalidSetHeader, "set header", "payload order %d", uint8(h.PayloadOrder))
	}

	if h.IndexOffset != SetIndexOffset {
		return errs.New(errs.ErrInvalidSetHeader, "set header", "index offset %d", h.IndexOffset)
	}

	indexEnd := uint64(h.IndexOffset) + uint64(h.Count)*SetIndexEntry
	if uint64(h.PayloadOffset) != indexEnd {
		return errs.New(errs.ErrInvalidSetHeader, "set header", "payload offset %d, index ends at %d", h.PayloadOffset, indexEnd)
	}

	return nil
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidSetHeader if data is not 32 bytes or a field is invalid
func (h *SetHeader) Parse(data []byte) error {
	if len(data) != SetHeaderSize {
		return errs.New(errs.ErrInvalidSetHeader, "set header", "need %d bytes, have %d", SetHeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	h.Options = engine.Uint16(data[0:2])
	h.Compression = format.CompressionType(data[2])
	h.PayloadOrder = format.ByteOrder(data[3])
	h.Count = engine.Uint32(data[4:8])
	h.IndexOffset = engine.Uint32(data[8:12])
	h.PayloadOffset = engine.Uint32(data[12:16])
	h.PayloadSize = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint64(data[24:32])

	return h.Validate()
}

// Bytes serializes the SetHeader into a byte slice.
func (h *SetHeader) Bytes() []byte {
	b := make([]byte, SetHeaderSize)
	engine := endian.GetLittleEndianEngine()

	engine.PutUint16(b[0:2], h.Options)
	b[2] = byte(h.Compression)
	b[3] = byte(h.PayloadOrder)
	engine.PutUint32(b[4:8], h.Count)
	engine.PutUint32(b[8:12], h.IndexOffset)
	engine.PutUint32(b[12:16], h.PayloadOffset)
	engine.PutUint32(b[16:20], h.PayloadSize)
	// bytes 20-23 reserved
	engine.PutUint64(b[24:32], h.Checksum)

	return b
}

// ParseSetHeader parses a SetHeader from the start of data.
func ParseSetHeader(data []byte) (SetHeader, error) {
	if len(data) < SetHeaderSize {
		return SetHeader{}, errs.New(errs.ErrInvalidSetHeader, "set header", "need %d bytes, have %d", SetHeaderSize, len(data))
	}

	h := SetHeader{}
	if err := h.Parse(data[:SetHeaderSize]); err != nil {
		return SetHeader{}, err
	}

	return h, nil
}
