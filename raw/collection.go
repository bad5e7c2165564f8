package raw

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/section"
)

// Collection is a view over a MultiPoint, MultiLineString, MultiPolygon or
// GeometryCollection. Every child carries its own header.
type Collection struct {
	data []byte
	typ  format.GeometryType
}

// NewCollection creates a Collection view.
//
// Construction validates every child recursively, requires the children of a
// Multi* kind to be of the matching element kind, and fails when the child
// count is negative or the children do not consume the region exactly.
func NewCollection(g Geometry) (Collection, error) {
	if err := validateCollection(g, 0); err != nil {
		return Collection{}, err
	}

	return Collection{data: g.data, typ: g.typ}, nil
}

func validateCollection(g Geometry, depth int) error {
	if !g.typ.IsCollection() {
		return typeMismatch("collection", "a collection", g.typ)
	}

	if depth >= MaxDepth {
		return errs.Malformed("collection", "nesting deeper than %d", MaxDepth).AtOffset(0)
	}

	count, err := readCount(g.data, native, "collection")
	if err != nil {
		return err
	}

	elem := g.typ.ElementType()
	off := section.CountedHeaderSize
	for i := 0; i < count; i++ {
		if off >= len(g.data) {
			return errs.Malformed("collection", "%d children declared, data ends after %d", count, i).AtIndex(i).AtOffset(off)
		}

		n, err := length(g.data[off:], depth+1)
		if err != nil {
			return errs.Shift(err, off)
		}

		child, err := NewGeometry(g.data[off : off+n])
		if err != nil {
			return errs.Shift(err, off)
		}

		if elem != format.Geometry && child.typ != elem {
			return errs.Malformed("collection", "%s cannot contain %s", g.typ, child.typ).AtIndex(i).AtOffset(off)
		}

		if err := validate(child, depth+1); err != nil {
			return errs.Shift(err, off)
		}

		off += n
	}

	if off != len(g.data) {
		return errs.Malformed("collection", "excess data: %d bytes after last child", len(g.data)-off).AtOffset(off)
	}

	return nil
}

// Type returns the collection kind.
func (c Collection) Type() format.GeometryType {
	return c.typ
}

// NumGeometries returns the number of children.
func (c Collection) NumGeometries() int {
	return section.ReadCount(native, c.data[section.CountOffset:])
}

// Geometry returns the child at index i.
//
// Children are variable length, so Geometry walks the preceding children;
// use All to visit all of them in one pass.
func (c Collection) Geometry(i int) (Geometry, bool) {
	if i < 0 || i >= c.NumGeometries() {
		return Geometry{}, false
	}

	rest := c.data[section.CountedHeaderSize:]
	for range i {
		rest = rest[childSize(rest):]
	}

	return childAt(rest), true
}

// All returns an iterator over the children in order.
func (c Collection) All() iter.Seq[Geometry] {
	return func(yield func(Geometry) bool) {
		rest := c.data[section.CountedHeaderSize:]
		for range c.NumGeometries() {
			child := childAt(rest)
			if !yield(child) {
				return
			}
			rest = rest[len(child.data):]
		}
	}
}

// Root returns the root view of the collection itself.
func (c Collection) Root() Geometry {
	return Geometry{data: c.data, typ: c.typ}
}

// Equal reports whether both collections have byte-identical payloads.
func (c Collection) Equal(other Collection) bool {
	return bytes.Equal(c.data[section.HeaderSize:], other.data[section.HeaderSize:])
}

func (c Collection) String() string {
	return fmt.Sprintf("%s[NumGeometries = %d]", c.typ, c.NumGeometries())
}

// childSize returns the size of the validated child at the start of b.
func childSize(b []byte) int {
	n, err := length(b, 0)
	if err != nil {
		// unreachable for a validated collection
		return len(b)
	}

	return n
}

func childAt(b []byte) Geometry {
	n := childSize(b)
	return Geometry{
		data: b[:n],
		typ:  format.GeometryType(native.Uint32(b[section.TypeCodeOffset:section.HeaderSize])),
	}
}
