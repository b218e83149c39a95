// Package backend: lazy label-level iterators.
//
// All iterators are one-shot with the Next() (value, ok) discipline; ids
// are snapshotted when the iterator is created and translated to labels
// lazily, one per Next call.

package backend

import "fmt"

// VertexIterator yields vertex labels, optionally filtered.
type VertexIterator struct {
	b      *Backend
	ids    []int
	next   int
	filter func(label any) bool
}

// IterVerts returns a lazy iterator over all vertex labels in increasing
// id order. A non-nil filter drops labels it reports false for.
func (b *Backend) IterVerts(filter func(label any) bool) *VertexIterator {
	return &VertexIterator{b: b, ids: b.cg.Vertices(), filter: filter}
}

// Next yields the next label; ok == false signals permanent exhaustion.
func (it *VertexIterator) Next() (any, bool) {
	for it.next < len(it.ids) {
		label := it.b.labelOf(it.ids[it.next])
		it.next++
		if it.filter != nil && !it.filter(label) {
			continue
		}

		return label, true
	}

	return nil, false
}

// NeighborIterator yields the labels of a neighbor snapshot.
type NeighborIterator struct {
	b    *Backend
	ids  []int
	next int
}

// Next yields the next neighbor label; ok == false signals permanent
// exhaustion.
func (it *NeighborIterator) Next() (any, bool) {
	if it.next >= len(it.ids) {
		return nil, false
	}
	label := it.b.labelOf(it.ids[it.next])
	it.next++

	return label, true
}

// IterOutNeighbors returns a lazy iterator over the heads of arcs
// leaving the vertex named by label.
func (b *Backend) IterOutNeighbors(label any) (*NeighborIterator, error) {
	id, err := b.require(label)
	if err != nil {
		return nil, err
	}
	ids, err := b.cg.OutNeighbors(id)
	if err != nil {
		return nil, err
	}

	return &NeighborIterator{b: b, ids: ids}, nil
}

// IterInNeighbors returns a lazy iterator over the tails of arcs
// entering the vertex named by label. On a directed Backend the snapshot
// comes from the reverse mirror's out-arcs, O(in-degree) regardless of
// store.
func (b *Backend) IterInNeighbors(label any) (*NeighborIterator, error) {
	id, err := b.require(label)
	if err != nil {
		return nil, err
	}
	var ids []int
	if b.rev != nil {
		ids, err = b.rev.OutNeighbors(id)
	} else {
		ids, err = b.cg.InNeighbors(id)
	}
	if err != nil {
		return nil, err
	}

	return &NeighborIterator{b: b, ids: ids}, nil
}

// IterNeighbors returns a lazy iterator over all distinct neighbors of
// the vertex named by label, regardless of arc direction.
func (b *Backend) IterNeighbors(label any) (*NeighborIterator, error) {
	id, err := b.require(label)
	if err != nil {
		return nil, err
	}
	out, err := b.cg.OutNeighbors(id)
	if err != nil {
		return nil, err
	}
	if !b.directed {
		// Undirected stores are symmetric: out already covers both ends.
		return &NeighborIterator{b: b, ids: out}, nil
	}
	in, err := b.rev.OutNeighbors(id)
	if err != nil {
		return nil, err
	}
	merged := make([]int, 0, len(out)+len(in))
	dedup := make(map[int]struct{}, len(out)+len(in))
	for _, v := range out {
		merged = append(merged, v)
		dedup[v] = struct{}{}
	}
	for _, v := range in {
		if _, dup := dedup[v]; !dup {
			merged = append(merged, v)
		}
	}

	return &NeighborIterator{b: b, ids: merged}, nil
}

// require resolves label or reports ErrUnknownVertex.
func (b *Backend) require(label any) (int, error) {
	if err := checkLabel(label); err != nil {
		return 0, err
	}
	id, ok := b.resolve(label)
	if !ok {
		return 0, fmt.Errorf("backend: label %v: %w", label, ErrUnknownVertex)
	}

	return id, nil
}
