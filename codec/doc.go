// Package codec converts between WKB bytes and a geometry object model.
//
// A Reader materializes WKB into geometries built by a geom.Factory, laying out
// coordinates either as interleaved X,Y pairs (format.PackingAOS) or as
// separate X and Y arrays (format.PackingSOA). A Writer serializes any object
// model implementing the geom capability interfaces back to WKB in two
// phases: ComputeLength sizes the output exactly, then Write fills a
// caller-provided buffer without resizing it.
//
// For geometries produced by a Reader, writing in native byte order
// reproduces the original bytes exactly:
//
//	r, _ := codec.NewReader(codec.WithPackingMode(format.PackingSOA))
//	g, err := r.Read(data)
//	if err != nil {
//	    return err
//	}
//
//	w, _ := codec.NewWriter()
//	out, err := w.Marshal(g) // bytes.Equal(out, data)
//
// Readers and Writers hold only configuration and are safe for concurrent use.
package codec
