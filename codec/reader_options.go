package codec

import (
	"fmt"

	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/internal/options"
	"github.com/arloliu/wkb/raw"
)

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*Reader]

// WithPackingMode selects the coordinate memory layout of materialized
// sequences. The default is format.PackingAOS.
func WithPackingMode(mode format.PackingMode) ReaderOption {
	return options.New(func(r *Reader) error {
		switch mode {
		case format.PackingAOS, format.PackingSOA:
			r.packing = mode
			return nil
		default:
			return fmt.Errorf("invalid packing mode: %s", mode)
		}
	})
}

// WithFactory sets the factory used to build geometries.
// The default is geom.DefaultFactory.
func WithFactory(f geom.Factory) ReaderOption {
	return options.New(func(r *Reader) error {
		if f == nil {
			return fmt.Errorf("factory must not be nil")
		}
		r.factory = f

		return nil
	})
}

// WithSequenceFactory makes the Reader create coordinate sequences through
// f and fill them with SetOrdinate instead of using the built-in AOS or SOA
// sequences. The packing mode is ignored when a sequence factory is set.
func WithSequenceFactory(f geom.SequenceFactory) ReaderOption {
	return options.NoError(func(r *Reader) {
		r.sequences = f
	})
}

// WithMaxDepth limits collection nesting. The default is raw.MaxDepth.
func WithMaxDepth(depth int) ReaderOption {
	return options.New(func(r *Reader) error {
		if depth < 1 || depth > raw.MaxDepth {
			return fmt.Errorf("max depth must be within [1, %d], got %d", raw.MaxDepth, depth)
		}
		r.maxDepth = depth

		return nil
	})
}
