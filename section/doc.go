// Package section defines the low-level binary structures and constants of the
// WKB wire format and of the geometry set container built on top of it.
//
// # WKB Header
//
// Every encoded geometry, including every child of a collection, starts with
// the same 5-byte header:
//
//	┌───────────┬──────────────────────────────┐
//	│ order (1) │ type code (uint32, 4 bytes)  │
//	└───────────┴──────────────────────────────┘
//
// The order byte is 0 for big-endian and 1 for little-endian and governs every
// multi-byte value of that node. The type code packs the geometry kind and an
// ordinate selector as kind + 1000*ordinate. Only the plain XY encoding
// (ordinate 0) is supported; the three high bits used by extended WKB for
// Z/M/SRID flags must be clear.
//
// Following the header:
//
//	Point:           X, Y                              (16 bytes)
//	LineString:      count, count × (X, Y)             (4 + 16n bytes)
//	Polygon:         rings, rings × (count, points)    (4 + Σ(4 + 16n) bytes)
//	Multi*/Collection: count, count × tagged geometry  (4 + Σ child bytes)
//
// # Geometry Set
//
// A geometry set stores many native-order WKB records behind a 32-byte
// header and a uint32 offset index. See SetHeader for the layout.
package section
