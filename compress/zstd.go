package compress

// ZstdCompressor compresses geometry set payloads with Zstandard.
//
// It gives the best ratio of the built-in codecs on coordinate data and is the
// default for archived sets. The implementation is pure Go (klauspost/compress)
// unless built with -tags gozstd and cgo enabled, which switches to the
// valyala/gozstd binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with default settings.
//
// Example:
//
//	codec := NewZstdCompressor()
//	compressed, err := codec.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
