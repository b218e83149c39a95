// Package path: unweighted bidirectional breadth-first shortest path.

package path

import (
	"fmt"

	"github.com/ostrenko/cgraph/core"
)

// noPredecessor marks a search root in the predecessor maps.
const noPredecessor = -1

// Shortest returns a minimum-arc-count path from x to y as a sequence of
// vertex ids starting at x and ending at y. It runs breadth-first
// expansion from both endpoints simultaneously, the x-side walking
// out-arcs and the y-side walking in-arcs, switching sides each round.
// The searches meet the first time a vertex discovered by one side is
// already known to the other.
//
// Returns nil (and a nil error) when no path exists; callers must check
// emptiness. Complexity: O(V + E) worst case.
func Shortest(g core.Graph, x, y int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(x) {
		return nil, fmt.Errorf("path: x=%d: %w", x, ErrVertexNotFound)
	}
	if !g.HasVertex(y) {
		return nil, fmt.Errorf("path: y=%d: %w", y, ErrVertexNotFound)
	}
	if x == y {
		return []int{x}, nil
	}

	// Per-side predecessor maps double as the "known" sets.
	predX := map[int]int{x: noPredecessor}
	predY := map[int]int{y: noPredecessor}
	queueX := []int{x}
	queueY := []int{y}

	// Alternate sides one dequeued vertex per round. If either side's
	// queue drains, that side's reachable region is fully explored without
	// meeting the other: no path exists.
	forward := true
	for len(queueX) > 0 && len(queueY) > 0 {
		if forward {
			meet, found, err := expand(g, &queueX, predX, predY, false)
			if err != nil {
				return nil, err
			}
			if found {
				return stitch(predX, predY, meet), nil
			}
		} else {
			meet, found, err := expand(g, &queueY, predY, predX, true)
			if err != nil {
				return nil, err
			}
			if found {
				return stitch(predX, predY, meet), nil
			}
		}
		forward = !forward
	}

	return nil, nil
}

// expand dequeues one vertex from the given side and discovers its
// neighbors (in-arcs when reverse). A neighbor already known to the other
// side is a meeting vertex; expansion records it in this side's map first
// so both halves of the path can be reconstructed through it.
func expand(g core.Graph, queue *[]int, mine, other map[int]int, reverse bool) (int, bool, error) {
	v := (*queue)[0]
	*queue = (*queue)[1:]

	nbrs, err := neighbors(g, v, reverse)
	if err != nil {
		return 0, false, err
	}
	for _, w := range nbrs {
		if _, known := mine[w]; known {
			continue
		}
		mine[w] = v
		if _, met := other[w]; met {
			return w, true, nil
		}
		*queue = append(*queue, w)
	}

	return 0, false, nil
}

// neighbors walks out-arcs forward and in-arcs backward.
func neighbors(g core.Graph, v int, reverse bool) ([]int, error) {
	if reverse {
		return g.InNeighbors(v)
	}

	return g.OutNeighbors(v)
}

// stitch concatenates the two half-paths through the meeting vertex:
// x … meet from the forward predecessor map, then meet … y from the
// backward one.
func stitch(predX, predY map[int]int, meet int) []int {
	// Walk x-side predecessors from the meeting vertex back to x.
	var head []int
	for v := meet; v != noPredecessor; v = predX[v] {
		head = append(head, v)
	}
	// head is meet…x; reverse it in place to get x…meet.
	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}
	// Walk y-side predecessors from the meeting vertex forward to y.
	for v := predY[meet]; v != noPredecessor; v = predY[v] {
		head = append(head, v)
	}

	return head
}
