// Package raw provides zero-copy, non-owning views over WKB encoded geometries.
//
// A view never copies the bytes it was built from. It is valid only while the
// backing buffer is alive and unmodified: do not retain a view after the
// buffer is reused, and do not mutate the buffer while views over it are in
// use. Views are plain values and are safe to read from multiple goroutines
// as long as the buffer is not mutated.
//
// # Validation
//
// Every typed view validates its own substructure when it is constructed:
//   - Point must be exactly 21 bytes
//   - LineString and polygon rings must declare non-negative point counts that
//     match the bytes present
//   - Polygon rings must be closed (first coordinate equals last)
//   - Collections must declare a non-negative child count, every child must
//     validate, Multi* children must be of the matching kind, and the children
//     must consume the region exactly
//
// Views only accept native byte order. Buffers produced on a host of the other
// byte order are converted with NormalizeToNative first.
//
// # Example
//
//	g, err := raw.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	poly, err := g.AsPolygon()
//	if err != nil {
//	    return err
//	}
//
//	for ring := range poly.Rings() {
//	    for c := range ring.All() {
//	        fmt.Println(c.X, c.Y)
//	    }
//	}
package raw
