package geomset

import (
	"fmt"

	"github.com/arloliu/wkb/codec"
	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/internal/options"
)

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression sets the payload compression. The default is
// format.CompressionNone.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			e.compression = compression
			return nil
		default:
			return fmt.Errorf("invalid compression type: %s", compression)
		}
	})
}

// WithDeduplication stores byte-identical records once. Disabled by default.
func WithDeduplication(enabled bool) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.dedup = enabled
	})
}

// WithWriter sets the writer used by AddGeometry. It must emit native byte
// order, since set payloads hold native-order records.
func WithWriter(w *codec.Writer) EncoderOption {
	return options.New(func(e *Encoder) error {
		if w == nil {
			return fmt.Errorf("writer must not be nil")
		}
		if w.ByteOrder() != endian.NativeOrder() {
			return fmt.Errorf("writer emits %s, set payloads require %s", w.ByteOrder(), endian.NativeOrder())
		}
		e.writer = w

		return nil
	})
}
