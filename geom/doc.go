// Package geom defines the object model the codec materializes into and
// serializes from, plus a default implementation of it.
//
// The codec only depends on the capability interfaces in this package:
// Factory and SequenceFactory for construction, and Sequenced, Polygonal and
// Collection for inspection. Any geometry library can be plugged in by
// implementing them (see the orbgeom package for an adapter over
// github.com/paulmach/orb).
//
// The default implementation offers two coordinate memory layouts:
//   - XYSequence stores interleaved X,Y pairs in one []float64 (array of structs)
//   - SOASequence stores X and Y values in two separate slices (struct of arrays)
//
// Both hold the same values; the choice only affects how downstream numeric
// code walks memory.
package geom
