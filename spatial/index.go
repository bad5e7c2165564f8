// Package spatial indexes geometries by bounding box.
//
// The index is an R-tree over the envelopes of raw geometry views. It stores
// record ids, not geometries, so it stays valid after the views it was built
// from are gone.
package spatial

import (
	"iter"
	"slices"

	"github.com/arloliu/wkb/raw"
	"github.com/dhconnelly/rtreego"
)

const (
	// Epsilon is the minimum side length of an indexed rectangle. The R-tree
	// rejects zero-extent rectangles, so points and axis-parallel lines are
	// padded to this size.
	Epsilon = 0.0001

	minChildren = 25
	maxChildren = 50
)

// entry is one indexed record.
type entry struct {
	id  int
	env raw.Envelope
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return toRect(e.env)
}

func toRect(env raw.Envelope) rtreego.Rect {
	point := rtreego.Point{env.MinX, env.MinY}
	lengths := []float64{max(env.Width(), Epsilon), max(env.Height(), Epsilon)}

	rect, _ := rtreego.NewRect(point, lengths)

	return rect
}

// Index maps envelopes to record ids.
//
// An Index is not safe for concurrent mutation. Concurrent searches without
// inserts are safe.
type Index struct {
	tree    *rtreego.Rtree
	skipped int
}

// New creates an empty index.
func New() *Index {
	return &Index{tree: rtreego.NewTree(2, minChildren, maxChildren)}
}

// Build indexes every geometry of seq under its id.
//
// Empty geometries have no envelope and are counted in Skipped instead.
//
// Returns:
//   - *Index: The populated index
//   - error: The first error from raw.EnvelopeOf
func Build(seq iter.Seq2[int, raw.Geometry]) (*Index, error) {
	idx := New()
	for id, g := range seq {
		if err := idx.Insert(id, g); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// Insert indexes g under id.
func (x *Index) Insert(id int, g raw.Geometry) error {
	env, err := raw.EnvelopeOf(g)
	if err != nil {
		return err
	}
	x.InsertEnvelope(id, env)

	return nil
}

// InsertEnvelope indexes env under id. Empty envelopes are skipped.
func (x *Index) InsertEnvelope(id int, env raw.Envelope) {
	if env.IsEmpty() {
		x.skipped++
		return
	}

	x.tree.Insert(&entry{id: id, env: env})
}

// Len returns the number of indexed records.
func (x *Index) Len() int {
	return x.tree.Size()
}

// Skipped returns how many empty geometries were not indexed.
func (x *Index) Skipped() int {
	return x.skipped
}

// Search returns the ids of records whose envelope intersects env, in
// ascending order. Touching envelopes intersect.
func (x *Index) Search(env raw.Envelope) []int {
	if env.IsEmpty() || x.tree.Size() == 0 {
		return nil
	}

	// pad the query so rectangles touching its border are candidates too
	query := env
	query.ExpandToInclude(env.MinX-Epsilon, env.MinY-Epsilon)
	query.ExpandToInclude(env.MaxX+Epsilon, env.MaxY+Epsilon)

	var ids []int
	for _, s := range x.tree.SearchIntersect(toRect(query)) {
		e, ok := s.(*entry)
		if ok && e.env.Intersects(env) {
			ids = append(ids, e.id)
		}
	}
	slices.Sort(ids)

	return ids
}

// Nearest returns the ids of up to k records whose envelopes are closest to
// (px, py), nearest first.
func (x *Index) Nearest(px, py float64, k int) []int {
	if k <= 0 || x.tree.Size() == 0 {
		return nil
	}

	found := x.tree.NearestNeighbors(k, rtreego.Point{px, py})
	ids := make([]int, 0, len(found))
	for _, s := range found {
		if e, ok := s.(*entry); ok && e != nil {
			ids = append(ids, e.id)
		}
	}

	return ids
}
