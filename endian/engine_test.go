package endian

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/arloliu/wkb/format"
	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	// Verify the result matches the actual system endianness
	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		// Big-endian system
		require.Equal(binary.BigEndian, result, "CheckEndianness() should return BigEndian")
	case 0x02:
		// Little-endian system
		require.Equal(binary.LittleEndian, result, "CheckEndianness() should return LittleEndian")
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestCheckEndiannessConsistency(t *testing.T) {
	// Run multiple times to ensure consistency
	first := CheckEndianness()
	for i := range 100 {
		result := CheckEndianness()
		if result != first {
			t.Errorf("CheckEndianness() returned inconsistent results: first=%v, iteration %d=%v", first, i, result)
		}
	}
}

func TestCheckEndiannessReturnType(t *testing.T) {
	result := CheckEndianness()

	// Verify it returns one of the two valid ByteOrder implementations
	switch result {
	case binary.BigEndian, binary.LittleEndian:
		// Valid result
	default:
		t.Errorf("CheckEndianness() returned unexpected ByteOrder: %v", result)
	}
}

func TestIsNativeLittleEndian(t *testing.T) {
	result := IsNativeLittleEndian()
	expected := CheckEndianness() == binary.LittleEndian
	require.Equal(t, expected, result)

	// Should be consistent across multiple calls
	for range 10 {
		require.Equal(t, result, IsNativeLittleEndian())
	}
}

func TestIsNativeBigEndian(t *testing.T) {
	result := IsNativeBigEndian()
	expected := CheckEndianness() == binary.BigEndian
	require.Equal(t, expected, result)

	// Should be consistent across multiple calls
	for range 10 {
		require.Equal(t, result, IsNativeBigEndian())
	}
}

func TestIsNativeEndiannessInverse(t *testing.T) {
	// IsNativeLittleEndian and IsNativeBigEndian should be inverses
	littleEndian := IsNativeLittleEndian()
	bigEndian := IsNativeBigEndian()

	require.NotEqual(t, littleEndian, bigEndian, "IsNativeLittleEndian and IsNativeBigEndian should return opposite values")
	require.True(t, littleEndian || bigEndian, "At least one endianness check should be true")
}

func TestCompareNativeEndian(t *testing.T) {
	if IsNativeLittleEndian() {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
	}
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	// Should implement EndianEngine interface
	require.Implements(t, (*EndianEngine)(nil), engine)

	// Should be binary.LittleEndian
	require.Equal(t, binary.LittleEndian, engine)

	// Test actual endian behavior
	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	// Little endian should put LSB first
	require.Equal(t, byte(0x02), bytes[0], "Little endian should put LSB first")
	require.Equal(t, byte(0x01), bytes[1], "Little endian should put MSB second")

	// Test reading back
	readValue := engine.Uint16(bytes)
	require.Equal(t, testValue, readValue)
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	// Should implement EndianEngine interface
	require.Implements(t, (*EndianEngine)(nil), engine)

	// Should be binary.BigEndian
	require.Equal(t, binary.BigEndian, engine)

	// Test actual endian behavior
	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	// Big endian should put MSB first
	require.Equal(t, byte(0x01), bytes[0], "Big endian should put MSB first")
	require.Equal(t, byte(0x02), bytes[1], "Big endian should put LSB second")

	// Test reading back
	readValue := engine.Uint16(bytes)
	require.Equal(t, testValue, readValue)
}

func TestEndianEngines(t *testing.T) {
	// Test that both engines work correctly with different data types
	littleEngine := GetLittleEndianEngine()
	bigEngine := GetBigEndianEngine()

	// Test uint32
	var testUint32 uint32 = 0x01020304
	littleBytes := make([]byte, 4)
	bigBytes := make([]byte, 4)

	littleEngine.PutUint32(littleBytes, testUint32)
	bigEngine.PutUint32(bigBytes, testUint32)

	// Bytes should be different (unless on a weird architecture)
	require.NotEqual(t, littleBytes, bigBytes, "Little and big endian byte representations should differ")

	// But should read back to same value
	require.Equal(t, testUint32, littleEngine.Uint32(littleBytes))
	require.Equal(t, testUint32, bigEngine.Uint32(bigBytes))

	// Test uint64
	var testUint64 uint64 = 0x0102030405060708
	littleBytes64 := make([]byte, 8)
	bigBytes64 := make([]byte, 8)

	littleEngine.PutUint64(littleBytes64, testUint64)
	bigEngine.PutUint64(bigBytes64, testUint64)

	require.NotEqual(t, littleBytes64, bigBytes64)
	require.Equal(t, testUint64, littleEngine.Uint64(littleBytes64))
	require.Equal(t, testUint64, bigEngine.Uint64(bigBytes64))
}

func TestNativeOrder(t *testing.T) {
	if IsNativeLittleEndian() {
		require.Equal(t, format.LittleEndian, NativeOrder())
		require.Equal(t, binary.LittleEndian, GetNativeEngine())
	} else {
		require.Equal(t, format.BigEndian, NativeOrder())
		require.Equal(t, binary.BigEndian, GetNativeEngine())
	}
	require.True(t, CompareNativeEndian(GetNativeEngine()))
}

func TestEngineFor(t *testing.T) {
	require.Equal(t, binary.LittleEndian, EngineFor(format.LittleEndian))
	require.Equal(t, binary.BigEndian, EngineFor(format.BigEndian))
}

func TestFloat64Unaligned(t *testing.T) {
	values := []float64{0, 1.0, -2.5, math.Pi, math.MaxFloat64, math.Inf(-1)}

	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		// odd offset forces unaligned access
		buf := make([]byte, 3+8*len(values))
		for i, v := range values {
			PutFloat64(engine, buf[3+8*i:], v)
		}

		for i, v := range values {
			require.Equal(t, v, Float64(engine, buf[3+8*i:]))
		}
	}

	nan := Float64(GetLittleEndianEngine(), AppendFloat64(GetLittleEndianEngine(), nil, math.NaN()))
	require.True(t, math.IsNaN(nan))
}

func TestAppendFloat64(t *testing.T) {
	le := AppendFloat64(GetLittleEndianEngine(), []byte{0xAA}, 1.0)
	require.Equal(t, []byte{0xAA, 0, 0, 0, 0, 0, 0, 0xF0, 0x3F}, le)

	be := AppendFloat64(GetBigEndianEngine(), nil, 1.0)
	require.Equal(t, []byte{0x3F, 0xF0, 0, 0, 0, 0, 0, 0}, be)
}

func TestReverse(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Reverse(b)
	require.Equal(t, []byte{4, 3, 2, 1}, b)

	odd := []byte{1, 2, 3}
	Reverse(odd)
	require.Equal(t, []byte{3, 2, 1}, odd)

	Reverse(nil)
}

func TestReverseEach(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	ReverseEach(b, 4)
	require.Equal(t, []byte{4, 3, 2, 1, 8, 7, 6, 5, 9, 10}, b)

	f := AppendFloat64(GetBigEndianEngine(), nil, 42.5)
	ReverseEach(f, 8)
	require.Equal(t, 42.5, Float64(GetLittleEndianEngine(), f))
}
