// Package path: weighted bidirectional Dijkstra.
//
// Implementation notes:
//
//   - One min-heap drives both sides; every entry carries its side tag.
//   - Lazy decrease-key: improved distances push duplicates, stale entries
//     are recognized on pop because the vertex is already finalized.
//   - All arc weights are scanned upfront so a negative weight fails fast,
//     before any relaxation (the Dijkstra correctness invariant).

package path

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/ostrenko/cgraph/core"
)

// side tags for heap entries and predecessor bookkeeping.
const (
	sideX = 0 // forward search from x, relaxing out-arcs
	sideY = 1 // backward search from y, relaxing in-arcs
)

// BidirectionalDijkstra returns a minimum-weight path from x to y and its
// total weight. The weight function must report a non-negative weight for
// every arc it is asked about.
//
// The two searches share one priority queue; each pop finalizes the
// vertex on its own side. The first time a popped vertex is found
// finalized on the opposite side it becomes a meeting candidate, and the
// candidate minimizing distX + distY wins. The search stops as soon as
// the heap minimum can no longer improve on the best candidate, or when
// the heap empties.
//
// Returns a nil path (and zero weight) when no path exists; callers must
// check emptiness. Complexity: O((V + E) log V).
func BidirectionalDijkstra(g core.Graph, x, y int, weight WeightFunc) ([]int, int64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if weight == nil {
		return nil, 0, ErrNilWeightFunc
	}
	if !g.HasVertex(x) {
		return nil, 0, fmt.Errorf("path: x=%d: %w", x, ErrVertexNotFound)
	}
	if !g.HasVertex(y) {
		return nil, 0, fmt.Errorf("path: y=%d: %w", y, ErrVertexNotFound)
	}
	if x == y {
		return []int{x}, 0, nil
	}

	// Upfront scan of every stored arc: fail fast on a negative weight.
	if err := scanWeights(g, weight); err != nil {
		return nil, 0, err
	}

	r := &biRunner{
		g:      g,
		weight: weight,
		dist:   [2]map[int]int64{{}, {}},
		pred:   [2]map[int]int{{}, {}},
		best:   math.MaxInt64,
		meet:   noPredecessor,
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &biItem{vertex: x, pred: noPredecessor, side: sideX})
	heap.Push(&r.pq, &biItem{vertex: y, pred: noPredecessor, side: sideY})

	if err := r.process(); err != nil {
		return nil, 0, err
	}
	if r.meet == noPredecessor {
		return nil, 0, nil
	}

	return r.stitch(), r.best, nil
}

// scanWeights consults the weight function for every stored arc and
// rejects the search on the first negative weight.
func scanWeights(g core.Graph, weight WeightFunc) error {
	for _, u := range g.Vertices() {
		nbrs, err := g.OutNeighbors(u)
		if err != nil {
			return fmt.Errorf("path: out-neighbors of %d: %w", u, err)
		}
		for _, v := range nbrs {
			w, err := weight(u, v)
			if err != nil {
				return fmt.Errorf("path: weight(%d,%d): %w", u, v, err)
			}
			if w < 0 {
				return fmt.Errorf("path: arc %d→%d weight=%d: %w", u, v, w, ErrNegativeWeight)
			}
		}
	}

	return nil
}

// biRunner holds the mutable state of one bidirectional search.
type biRunner struct {
	g      core.Graph
	weight WeightFunc
	pq     biPQ
	dist   [2]map[int]int64 // finalized distances per side
	pred   [2]map[int]int   // predecessor per side, noPredecessor at roots
	best   int64            // weight of the best meeting found so far
	meet   int              // best meeting vertex, noPredecessor if none
}

// process runs the shared-heap main loop to meeting or exhaustion.
func (r *biRunner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*biItem)
		mine, other := r.dist[item.side], r.dist[1-item.side]

		// Stale lazy-decrease-key entry: the vertex is already finalized
		// on this side with a distance no worse than the entry's.
		if _, done := mine[item.vertex]; done {
			continue
		}

		// Once the smallest open distance cannot beat the best meeting,
		// no better meeting exists on either side.
		if item.dist >= r.best {
			break
		}

		// Finalize on this side.
		mine[item.vertex] = item.dist
		r.pred[item.side][item.vertex] = item.pred

		// A vertex finalized on both sides is a meeting candidate; keep
		// the one with minimal combined distance.
		if d, met := other[item.vertex]; met {
			if total := item.dist + d; total < r.best {
				r.best = total
				r.meet = item.vertex
			}
		}

		if err := r.relax(item.side, item.vertex, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax pushes improved tentative distances for the frontier of v on the
// given side: out-arcs forward, in-arcs backward.
func (r *biRunner) relax(side, v int, d int64) error {
	nbrs, err := neighbors(r.g, v, side == sideY)
	if err != nil {
		return fmt.Errorf("path: neighbors of %d: %w", v, err)
	}
	for _, w := range nbrs {
		if _, done := r.dist[side][w]; done {
			continue
		}
		// The stored arc is (v, w) forward and (w, v) backward.
		var aw int64
		if side == sideX {
			aw, err = r.weight(v, w)
		} else {
			aw, err = r.weight(w, v)
		}
		if err != nil {
			return fmt.Errorf("path: weight query: %w", err)
		}
		heap.Push(&r.pq, &biItem{dist: d + aw, vertex: w, pred: v, side: side})
	}

	return nil
}

// stitch reconstructs x … meet … y from the two predecessor maps.
func (r *biRunner) stitch() []int {
	var head []int
	for v := r.meet; v != noPredecessor; v = r.pred[sideX][v] {
		head = append(head, v)
	}
	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}
	for v := r.pred[sideY][r.meet]; v != noPredecessor; v = r.pred[sideY][v] {
		head = append(head, v)
	}

	return head
}

// biItem is one tentative (side, vertex, distance) entry in the shared
// priority queue, carrying the predecessor that produced it.
type biItem struct {
	dist   int64
	vertex int
	pred   int
	side   int
}

// biPQ is a min-heap of *biItem ordered by tentative distance, using the
// lazy-decrease-key discipline: duplicates are pushed on improvement and
// ignored when popped stale.
type biPQ []*biItem

func (pq biPQ) Len() int            { return len(pq) }
func (pq biPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq biPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *biPQ) Push(x interface{}) { *pq = append(*pq, x.(*biItem)) }
func (pq *biPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
