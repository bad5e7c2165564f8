// Package wkb reads and writes 2D Well-Known Binary geometries without
// copying them.
//
// WKB encodes a geometry as a byte order marker, a type code and the
// coordinates, recursively for collections. This module works on such buffers
// in three ways:
//
//   - raw: zero-copy views that validate the structure and read coordinates in
//     place, plus a visitor for allocation-free traversal
//   - codec: a Reader that materializes WKB into an object model (AOS or SOA
//     coordinate layout, or any geom.Factory) and a two-phase Writer
//   - geomset and spatial: batches of records in one checksummed, optionally
//     compressed blob, and an R-tree over their envelopes
//
// Only XY geometries are supported. Views and the reader require the host's
// byte order; Normalize rewrites a buffer in place first.
//
// # Basic Usage
//
//	g, err := wkb.Parse(data)
//	if err != nil {
//	    return err
//	}
//	if poly, err := g.AsPolygon(); err == nil {
//	    shell, _ := poly.Shell()
//	    fmt.Println(shell.PointCount())
//	}
//
// Materializing and writing back:
//
//	obj, err := wkb.Read(data, codec.WithPackingMode(format.PackingSOA))
//	...
//	out, err := wkb.Marshal(obj) // bytes.Equal(out, data)
//
// # Package Structure
//
// The functions here are thin wrappers over the raw, codec and geomset
// packages with default options. Use those packages directly for fine-grained
// control.
package wkb

import (
	"github.com/arloliu/wkb/codec"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/geomset"
	"github.com/arloliu/wkb/raw"
)

// Parse validates data as exactly one native-order geometry and returns a
// zero-copy view over it.
func Parse(data []byte) (raw.Geometry, error) {
	return raw.Parse(data)
}

// Length returns the encoded size of the geometry at the start of data.
// It works on either byte order.
func Length(data []byte) (int, error) {
	return raw.Length(data)
}

// Normalize rewrites the geometry at the start of buf into native byte order
// and returns its size. buf is untouched on error.
func Normalize(buf []byte) (int, error) {
	return raw.NormalizeToNative(buf)
}

// Envelope returns the bounding box of the geometry in data.
func Envelope(data []byte) (raw.Envelope, error) {
	g, err := raw.NewGeometry(data)
	if err != nil {
		return raw.Envelope{}, err
	}

	return raw.EnvelopeOf(g)
}

// Read materializes data with a Reader configured by opts.
//
// Parameters:
//   - data: Exactly one native-order geometry
//   - opts: Reader options (see codec.ReaderOption)
//
// Returns:
//   - geom.Geometry: The materialized geometry
//   - error: Option or decoding error
//
// Example:
//
//	g, err := wkb.Read(data, codec.WithPackingMode(format.PackingSOA))
func Read(data []byte, opts ...codec.ReaderOption) (geom.Geometry, error) {
	r, err := codec.NewReader(opts...)
	if err != nil {
		return nil, err
	}

	return r.Read(data)
}

// Marshal encodes g with a Writer configured by opts.
func Marshal(g geom.Geometry, opts ...codec.WriterOption) ([]byte, error) {
	w, err := codec.NewWriter(opts...)
	if err != nil {
		return nil, err
	}

	return w.Marshal(g)
}

// NewSetEncoder creates a geometry set encoder.
//
// Example:
//
//	enc, err := wkb.NewSetEncoder(
//	    geomset.WithCompression(format.CompressionZstd),
//	    geomset.WithDeduplication(true),
//	)
func NewSetEncoder(opts ...geomset.EncoderOption) (*geomset.Encoder, error) {
	return geomset.NewEncoder(opts...)
}

// NewSetDecoder validates a geometry set and returns a decoder over it.
func NewSetDecoder(data []byte) (*geomset.Decoder, error) {
	return geomset.NewDecoder(data)
}
