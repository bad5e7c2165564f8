// Package compress provides the payload codecs used by geometry sets.
//
// A geometry set stores its records as one contiguous payload, which may be
// compressed as a whole. The codec is chosen per set and recorded in the set
// header as a format.CompressionType:
//
//   - CompressionNone: payload stored as-is; records can be viewed in place
//   - CompressionZstd: best ratio, moderate speed
//   - CompressionS2: fast, moderate ratio
//   - CompressionLZ4: fastest decompression
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte, size int) ([]byte, error)
//	}
//
// Decompress receives the uncompressed length from the set header. Codecs
// allocate their output exactly once at that size and fail with
// ErrSizeMismatch when the stream decodes to anything else, so a corrupt
// header cannot make the decoder allocate unbounded memory.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(compressed, len(payload))
//
// # Thread Safety
//
// All built-in codecs are stateless values backed by sync.Pool'ed encoders
// and decoders; they are safe for concurrent use.
package compress
