// Package backend: vertex and arc operations at the label level.

package backend

import (
	"fmt"
	"reflect"

	"github.com/ostrenko/cgraph/core"
)

// resolve maps a label to its internal id. The second return is false
// when the label names no vertex.
//
// Resolution order mirrors insertion: an index entry wins; otherwise a
// non-negative int label whose id slot is active and unclaimed by a
// different label resolves to itself.
func (b *Backend) resolve(label any) (int, bool) {
	if id, ok := b.vertexInt[label]; ok {
		return id, true
	}
	if i, ok := label.(int); ok && i >= 0 && i < b.cg.Capacity() && b.cg.HasVertex(i) {
		if _, claimed := b.vertexLabel[i]; !claimed {
			return i, true
		}
	}

	return 0, false
}

// labelOf maps an active internal id back to its external label: the
// index entry when one exists, the id itself otherwise.
func (b *Backend) labelOf(id int) any {
	if label, ok := b.vertexLabel[id]; ok {
		return label
	}

	return id
}

// checkLabel enforces the hashable-equality contract before a label is
// used as a map key.
func checkLabel(label any) error {
	if label == nil {
		return nil // the nil label is comparable
	}
	if !reflect.TypeOf(label).Comparable() {
		return fmt.Errorf("backend: label type %T: %w", label, ErrUnusableLabel)
	}

	return nil
}

// HasVertex reports whether label names a vertex. Never fails; an
// unhashable label simply is not a vertex.
func (b *Backend) HasVertex(label any) bool {
	if checkLabel(label) != nil {
		return false
	}
	_, ok := b.resolve(label)

	return ok
}

// AddVertex registers label as a vertex and returns its internal id.
// Idempotent: a label that already names a vertex returns its existing id
// untouched.
//
// A non-negative int label inside the current capacity whose id slot is
// unclaimed is used directly as its own id (no index entry). Every other
// label is attached to the lowest free id — growing the id space by
// doubling when none is free — and registered in the index both ways.
func (b *Backend) AddVertex(label any) (int, error) {
	if err := checkLabel(label); err != nil {
		return 0, err
	}
	if id, ok := b.resolve(label); ok {
		return id, nil
	}

	// Direct-id fast path: the tagged check of the label type.
	if i, ok := label.(int); ok && i >= 0 && i < b.cg.Capacity() {
		if _, claimed := b.vertexLabel[i]; !claimed {
			return b.activate(i)
		}
	}

	// Indirected label: first free slot, with growth when full.
	id, err := b.activate(core.AutoVertex)
	if err != nil {
		return 0, err
	}
	b.vertexInt[label] = id
	b.vertexLabel[id] = label

	return id, nil
}

// activate adds the id to the forward store and replicates the activation
// in the reverse mirror, keeping the two id spaces in lockstep.
func (b *Backend) activate(id int) (int, error) {
	got, err := b.cg.AddVertex(id)
	if err != nil {
		return 0, err
	}
	if b.rev != nil {
		if b.rev.Capacity() < b.cg.Capacity() {
			if err = b.rev.Realloc(b.cg.Capacity()); err != nil {
				return 0, err
			}
		}
		if _, err = b.rev.AddVertex(got); err != nil {
			return 0, err
		}
	}

	return got, nil
}

// AddVertices registers every label in order, stopping on the first
// failure.
func (b *Backend) AddVertices(labels ...any) error {
	for _, label := range labels {
		if _, err := b.AddVertex(label); err != nil {
			return err
		}
	}

	return nil
}

// DelVertex removes the vertex named by label together with all its
// incident arcs, and drops its index entries. A no-op when the label
// names no vertex.
func (b *Backend) DelVertex(label any) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	id, ok := b.resolve(label)
	if !ok {
		return nil
	}
	b.cg.DeleteVertex(id)
	if b.rev != nil {
		b.rev.DeleteVertex(id)
	}
	if stored, indexed := b.vertexLabel[id]; indexed {
		delete(b.vertexInt, stored)
		delete(b.vertexLabel, id)
	}

	return nil
}

// DelVertices removes every label in order, stopping on the first
// failure.
func (b *Backend) DelVertices(labels ...any) error {
	for _, label := range labels {
		if err := b.DelVertex(label); err != nil {
			return err
		}
	}

	return nil
}

// AddArc stores an arc (edge, when undirected) between the vertices named
// by u and v, registering missing endpoints on the way. Undirected
// backends write the arc pair (u,v)+(v,u), a self-loop once.
func (b *Backend) AddArc(u, v any) error {
	uid, err := b.AddVertex(u)
	if err != nil {
		return err
	}
	vid, err := b.AddVertex(v)
	if err != nil {
		return err
	}
	if err = b.cg.AddArc(uid, vid); err != nil {
		return err
	}
	if b.directed {
		return b.rev.AddArc(vid, uid)
	}
	if uid != vid {
		return b.cg.AddArc(vid, uid)
	}

	return nil
}

// HasArc reports whether at least one arc (u, v) is stored. Unknown
// endpoints yield false, not an error.
func (b *Backend) HasArc(u, v any) (bool, error) {
	uid, ok := b.resolve(u)
	if !ok {
		return false, nil
	}
	vid, ok := b.resolve(v)
	if !ok {
		return false, nil
	}

	return b.cg.HasArc(uid, vid)
}

// DelAllArcs removes every parallel copy of the arc between u and v —
// both directions on an undirected Backend. A no-op when either endpoint
// is unknown.
func (b *Backend) DelAllArcs(u, v any) error {
	uid, ok := b.resolve(u)
	if !ok {
		return nil
	}
	vid, ok := b.resolve(v)
	if !ok {
		return nil
	}
	if err := b.cg.DeleteAllArcs(uid, vid); err != nil {
		return err
	}
	if b.directed {
		return b.rev.DeleteAllArcs(vid, uid)
	}
	if uid != vid {
		return b.cg.DeleteAllArcs(vid, uid)
	}

	return nil
}

// Degree reports the degree of the vertex named by label.
//
// With directed counts, the result is in-degree plus out-degree. With
// undirected counts, the result is the out-degree corrected for
// self-loops: a loop contributes two, once per end.
func (b *Backend) Degree(label any, directed bool) (int, error) {
	if err := checkLabel(label); err != nil {
		return 0, err
	}
	id, ok := b.resolve(label)
	if !ok {
		return 0, fmt.Errorf("backend: label %v: %w", label, ErrUnknownVertex)
	}
	out, err := b.cg.OutDegree(id)
	if err != nil {
		return 0, err
	}
	if directed {
		in, derr := b.cg.InDegree(id)
		if derr != nil {
			return 0, derr
		}

		return in + out, nil
	}
	loops, err := b.cg.Multiplicity(id, id)
	if err != nil {
		return 0, err
	}

	return out + loops, nil
}

// Relabel rewrites the label index according to perm, a bijection from
// old labels to new ones; labels absent from perm keep their name. The
// underlying stores are untouched — ids do not move. O(Order).
func (b *Backend) Relabel(perm map[any]any) error {
	nextInt := make(map[any]int, len(b.vertexInt))
	nextLabel := make(map[int]any, len(b.vertexLabel))
	seen := make(map[any]struct{}, b.cg.VertexCount())

	for _, id := range b.cg.Vertices() {
		old := b.labelOf(id)
		label, renamed := perm[old]
		if !renamed {
			label = old
		}
		if err := checkLabel(label); err != nil {
			return err
		}
		if _, dup := seen[label]; dup {
			return fmt.Errorf("backend: label %v: %w", label, ErrDuplicateLabel)
		}
		seen[label] = struct{}{}

		// A label equal to its own id needs no index entry.
		if i, isInt := label.(int); isInt && i == id {
			continue
		}
		nextInt[label] = id
		nextLabel[id] = label
	}

	b.vertexInt = nextInt
	b.vertexLabel = nextLabel

	return nil
}
