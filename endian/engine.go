// Package endian provides byte order utilities for reading and writing WKB.
//
// WKB tags every geometry node with its own byte order marker, so the codec
// needs to map a marker to an engine, to know the host's native order, and to
// decode IEEE-754 doubles at arbitrary (unaligned) offsets. EndianEngine
// combines binary.ByteOrder and binary.AppendByteOrder so the same value can
// be used both for in-place Put* calls and for append-style encoding.
//
// # Basic Usage
//
//	engine := endian.EngineFor(format.LittleEndian)
//	x := endian.Float64(engine, data[5:13])
//
//	buf = endian.AppendFloat64(engine, buf, x)
//
// All reads go through encoding/binary and never reinterpret memory, so they
// are safe on any alignment.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/arloliu/wkb/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var nativeOrder = detectNativeOrder()

func detectNativeOrder() format.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return format.BigEndian
	}

	return format.LittleEndian
}

// CheckEndianness returns the host's byte order.
func CheckEndianness() binary.ByteOrder {
	if nativeOrder == format.BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// NativeOrder returns the WKB byte order marker matching the host.
func NativeOrder() format.ByteOrder {
	return nativeOrder
}

func IsNativeLittleEndian() bool {
	return nativeOrder == format.LittleEndian
}

func IsNativeBigEndian() bool {
	return nativeOrder == format.BigEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEngine returns the engine matching the host's byte order.
func GetNativeEngine() EndianEngine {
	return EngineFor(nativeOrder)
}

// EngineFor returns the engine for a WKB byte order marker.
// Any marker other than BigEndian maps to the little-endian engine; callers
// validate the marker before asking for an engine.
func EngineFor(order format.ByteOrder) EndianEngine {
	if order == format.BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Float64 decodes the IEEE-754 double stored in the first 8 bytes of b.
func Float64(engine EndianEngine, b []byte) float64 {
	return math.Float64frombits(engine.Uint64(b))
}

// PutFloat64 encodes v into the first 8 bytes of b.
func PutFloat64(engine EndianEngine, b []byte, v float64) {
	engine.PutUint64(b, math.Float64bits(v))
}

// AppendFloat64 appends the 8-byte encoding of v to b.
func AppendFloat64(engine EndianEngine, b []byte, v float64) []byte {
	return engine.AppendUint64(b, math.Float64bits(v))
}

// Reverse reverses b in place. It converts a fixed-width value between the
// two byte orders.
func Reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// ReverseEach reverses every consecutive width-byte word of b in place.
// A trailing partial word is left untouched.
func ReverseEach(b []byte, width int) {
	for off := 0; off+width <= len(b); off += width {
		Reverse(b[off : off+width])
	}
}
