package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/wkb/format"
)

// ErrSizeMismatch is returned when decompressed output does not have the
// length recorded in the geometry set header.
var ErrSizeMismatch = errors.New("compress: decompressed size mismatch")

// MaxDecompressedSize bounds the output of a single Decompress call.
const MaxDecompressedSize = 1 << 30

// Compressor compresses a geometry set payload.
//
// The payload is the concatenation of every WKB record in the set, so it is
// dominated by float64 coordinates and repeated 5-byte headers.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not modified;
	// the result may alias it (see NoOpCompressor).
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress expands data into exactly size bytes.
	//
	// Parameters:
	//   - data: compressed payload
	//   - size: uncompressed length recorded by the encoder
	//
	// Returns:
	//   - []byte: the uncompressed payload, len == size
	//   - error: corrupt input, ErrSizeMismatch, or size out of range
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both directions for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes the effect of compressing one payload.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int
	CompressedSize int
}

// Ratio returns compressed size / original size, or 0 for an empty payload.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage.
func (s Stats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for compressionType.
//
// Built-in codecs are stateless and safe for concurrent use.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// Compress compresses data with the built-in codec for compressionType and
// reports the resulting sizes.
func Compress(compressionType format.CompressionType, data []byte) ([]byte, Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, Stats{}, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return out, Stats{Algorithm: compressionType, OriginalSize: len(data), CompressedSize: len(out)}, nil
}

// checkSize validates the size hint before any allocation happens.
func checkSize(size int) error {
	if size < 0 || size > MaxDecompressedSize {
		return fmt.Errorf("decompressed size %d out of range", size)
	}

	return nil
}

func verifySize(out []byte, size int) ([]byte, error) {
	if len(out) != size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(out), size)
	}

	return out, nil
}
