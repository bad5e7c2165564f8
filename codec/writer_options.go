package codec

import (
	"fmt"

	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/internal/options"
)

// WriterOption configures a Writer.
type WriterOption = options.Option[*Writer]

// WithByteOrder sets the byte order of emitted WKB. The default is the
// host's native order, which enables the bulk coordinate copy path.
func WithByteOrder(order format.ByteOrder) WriterOption {
	return options.New(func(w *Writer) error {
		if !order.IsValid() {
			return fmt.Errorf("invalid byte order: %d", order)
		}
		w.setOrder(order)

		return nil
	})
}
