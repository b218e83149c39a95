// Package connect: acyclicity check with certificates.

package connect

import (
	"fmt"

	"github.com/ostrenko/cgraph/core"
)

// Vertex colors of the depth-first scan.
const (
	white uint8 = iota // not yet visited
	gray               // on the exploration stack
	black              // fully explored
)

// noParent marks depth-first tree roots in the parent array.
const noParent = -1

// IsAcyclic reports whether the directed graph contains no cycle, with a
// certificate either way:
//
//   - acyclic: cert is a topological ordering of all active vertices —
//     for every arc (u, v), u appears before v.
//   - cyclic: cert is the vertex sequence of one cycle, without the
//     closing repeat — every consecutive pair, and last→first, is an arc.
//
// The scan is an iterative depth-first exploration with three-color
// marking: meeting a gray (on-stack) vertex while expanding out-arcs is a
// back edge, and the cycle is read off the recorded parent pointers from
// the current vertex up to the repeated one. When no back edge exists,
// the reverse of the finish order is a topological ordering. O(V + E).
func IsAcyclic(g core.Graph) (bool, []int, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}

	capacity := g.Capacity()
	color := make([]uint8, capacity)
	parent := make([]int, capacity)
	for i := range parent {
		parent[i] = noParent
	}
	finish := make([]int, 0, g.VertexCount())

	// One depth-first tree per unvisited root, in increasing id order for
	// deterministic certificates.
	for _, root := range g.Vertices() {
		if color[root] != white {
			continue
		}
		cycle, err := explore(g, root, color, parent, &finish)
		if err != nil {
			return false, nil, err
		}
		if cycle != nil {
			return false, cycle, nil
		}
	}

	// Reverse finish order = topological ordering.
	for i, j := 0, len(finish)-1; i < j; i, j = i+1, j-1 {
		finish[i], finish[j] = finish[j], finish[i]
	}

	return true, finish, nil
}

// frame is one explicit-stack record: a gray vertex and its out-neighbor
// snapshot cursor.
type frame struct {
	vertex int
	nbrs   []int
	next   int
}

// explore runs one iterative depth-first tree from root. It returns a
// non-nil cycle the moment a back edge is found, or nil when the whole
// tree finishes clean.
func explore(g core.Graph, root int, color []uint8, parent []int, finish *[]int) ([]int, error) {
	nbrs, err := g.OutNeighbors(root)
	if err != nil {
		return nil, fmt.Errorf("connect: out-neighbors of %d: %w", root, err)
	}
	color[root] = gray
	stack := []frame{{vertex: root, nbrs: nbrs}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.nbrs) {
			// All out-arcs expanded: finish the vertex.
			color[top.vertex] = black
			*finish = append(*finish, top.vertex)
			stack = stack[:len(stack)-1]

			continue
		}
		w := top.nbrs[top.next]
		top.next++

		switch color[w] {
		case white:
			parent[w] = top.vertex
			if nbrs, err = g.OutNeighbors(w); err != nil {
				return nil, fmt.Errorf("connect: out-neighbors of %d: %w", w, err)
			}
			color[w] = gray
			stack = append(stack, frame{vertex: w, nbrs: nbrs})
		case gray:
			// Back edge (top.vertex → w): the gray chain w … top.vertex
			// is a cycle. Read it off the parent pointers.
			return backtrackCycle(parent, top.vertex, w), nil
		}
		// black: forward or cross edge, no cycle through it.
	}

	return nil, nil
}

// backtrackCycle walks parent pointers from v up to w and returns the
// cycle w … v in arc order, without repeating w at the end.
func backtrackCycle(parent []int, v, w int) []int {
	// Self-loop back edge.
	if v == w {
		return []int{v}
	}

	var rev []int
	for at := v; at != w; at = parent[at] {
		rev = append(rev, at)
	}
	rev = append(rev, w)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
