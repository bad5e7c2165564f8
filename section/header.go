package section

import (
	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
)

// Header is the decoded 5-byte header of a WKB geometry node.
type Header struct {
	ByteOrder format.ByteOrder
	Type      format.GeometryType
	Ordinate  format.Ordinate
}

// NewHeader returns an XY header of the given type.
func NewHeader(order format.ByteOrder, typ format.GeometryType) Header {
	return Header{ByteOrder: order, Type: typ, Ordinate: format.XY}
}

// ParseHeader decodes the header at the start of data.
//
// Parameters:
//   - data: Encoded geometry, at least HeaderSize bytes
//
// Returns:
//   - Header: Decoded order, kind and ordinate
//   - error: ErrMalformedInput if data is shorter than 5 bytes or the order
//     byte is neither 0 nor 1, otherwise any error of DecodeTypeCode
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.Malformed("header", "need %d bytes, have %d", HeaderSize, len(data)).AtOffset(0)
	}

	order := format.ByteOrder(data[ByteOrderOffset])
	if !order.IsValid() {
		return Header{}, errs.Malformed("header", "invalid byte order marker %d", data[ByteOrderOffset]).AtOffset(0)
	}

	code := endian.EngineFor(order).Uint32(data[TypeCodeOffset:HeaderSize])
	typ, ord, err := DecodeTypeCode(code)
	if err != nil {
		return Header{}, err
	}

	return Header{ByteOrder: order, Type: typ, Ordinate: ord}, nil
}

// DecodeTypeCode splits a packed type code into kind and ordinate selector.
//
// Returns:
//   - ErrUnsupportedDimension when a reserved flag bit is set or the ordinate
//     selector is XYZ, XYM or XYZM
//   - ErrUnsupportedGeometryType when the selector or the kind is not recognized
func DecodeTypeCode(code uint32) (format.GeometryType, format.Ordinate, error) {
	if code&ReservedFlagsMask != 0 {
		return 0, 0, errs.New(errs.ErrUnsupportedDimension, "header", "reserved flags 0x%08x set", code&ReservedFlagsMask)
	}

	ord := code / KindDivisor
	kind := format.GeometryType(code % KindDivisor)

	if ord > MaxOrdinate {
		return 0, 0, errs.New(errs.ErrUnsupportedGeometryType, "header", "type code %d", code)
	}

	if ord != uint32(format.XY) {
		return 0, 0, errs.New(errs.ErrUnsupportedDimension, "header", "%s ordinates", format.Ordinate(ord))
	}

	if !kind.IsValid() {
		return 0, 0, errs.New(errs.ErrUnsupportedGeometryType, "header", "kind %d", uint32(kind))
	}

	return kind, format.Ordinate(ord), nil
}

// Engine returns the byte order engine of the node.
func (h Header) Engine() endian.EndianEngine {
	return endian.EngineFor(h.ByteOrder)
}

// IsNative reports whether the node is encoded in the host's byte order.
func (h Header) IsNative() bool {
	return h.ByteOrder == endian.NativeOrder()
}

// TypeCode returns the packed uint32 type code.
func (h Header) TypeCode() uint32 {
	return uint32(h.Ordinate)*KindDivisor + uint32(h.Type)
}

// Put writes the header into the first HeaderSize bytes of b.
func (h Header) Put(b []byte) {
	_ = b[HeaderSize-1]
	b[ByteOrderOffset] = byte(h.ByteOrder)
	h.Engine().PutUint32(b[TypeCodeOffset:HeaderSize], h.TypeCode())
}

// Append appends the encoded header to b.
func (h Header) Append(b []byte) []byte {
	b = append(b, byte(h.ByteOrder))
	return h.Engine().AppendUint32(b, h.TypeCode())
}

// Bytes serializes the header into a new 5-byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.Put(b)

	return b
}

// ReadCount decodes the signed 32-bit count stored in the first 4 bytes of b.
// WKB declares counts as unsigned, but values with the high bit set are
// reported as negative so callers can reject them.
func ReadCount(engine endian.EndianEngine, b []byte) int {
	return int(int32(engine.Uint32(b))) //nolint: gosec
}
