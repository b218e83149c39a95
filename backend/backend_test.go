package backend_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ostrenko/cgraph/backend"
	"github.com/ostrenko/cgraph/core"
)

type BackendSuite struct {
	suite.Suite
}

func TestBackendSuite(t *testing.T) {
	suite.Run(t, new(BackendSuite))
}

func (s *BackendSuite) newUndirected(nverts int, opts ...backend.Option) *backend.Backend {
	b, err := backend.New(nverts, opts...)
	s.Require().NoError(err)

	return b
}

func (s *BackendSuite) newDirected(nverts int, opts ...backend.Option) *backend.Backend {
	return s.newUndirected(nverts, append(opts, backend.WithDirected())...)
}

func (s *BackendSuite) TestIntFastPath() {
	b := s.newUndirected(8)

	// A small int label becomes its own id, no index entry needed.
	id, err := b.AddVertex(3)
	s.Require().NoError(err)
	s.Equal(3, id)
	s.True(b.HasVertex(3))
	s.Equal(1, b.Order())

	// Idempotent re-add.
	id, err = b.AddVertex(3)
	s.Require().NoError(err)
	s.Equal(3, id)
	s.Equal(1, b.Order())

	// An int label beyond the capacity goes through the index instead.
	id, err = b.AddVertex(100)
	s.Require().NoError(err)
	s.Equal(0, id)
	s.True(b.HasVertex(100))
	s.False(b.HasVertex(0)) // id 0 is claimed by label 100
}

func (s *BackendSuite) TestArbitraryLabels() {
	b := s.newUndirected(4)
	s.Require().NoError(b.AddVertices("a", "b", 2.5, [2]int{1, 2}))
	s.Equal(4, b.Order())
	s.True(b.HasVertex("a"))
	s.True(b.HasVertex(2.5))
	s.True(b.HasVertex([2]int{1, 2}))
	s.False(b.HasVertex("zzz"))

	// "a" took id 0; the int label 0 now resolves through the index to a
	// fresh id rather than colliding with it.
	id, err := b.AddVertex(0)
	s.Require().NoError(err)
	s.Equal(4, id) // lowest free slot
	s.True(b.HasVertex(0))
	s.True(b.HasVertex("a"))
	s.Equal(5, b.Order())
}

func (s *BackendSuite) TestUnusableLabel() {
	b := s.newUndirected(4)
	_, err := b.AddVertex([]int{1, 2})
	s.Require().ErrorIs(err, backend.ErrUnusableLabel)
	s.False(b.HasVertex([]int{1, 2}))

	_, err = b.Degree(map[string]int{}, false)
	s.Require().ErrorIs(err, backend.ErrUnusableLabel)
}

func (s *BackendSuite) TestDelVertex() {
	b := s.newUndirected(4)
	s.Require().NoError(b.AddVertices("a", "b", "c"))
	s.Require().NoError(b.AddArc("a", "b"))
	s.Require().NoError(b.AddArc("b", "c"))

	s.Require().NoError(b.DelVertex("b"))
	s.False(b.HasVertex("b"))
	s.Equal(2, b.Order())
	s.Equal(0, b.ArcCount())

	ok, err := b.HasArc("a", "b")
	s.Require().NoError(err)
	s.False(ok)

	// Unknown labels delete as a no-op.
	s.Require().NoError(b.DelVertices("b", "nope"))
	s.Equal(2, b.Order())

	// The freed id slot is reusable by a fresh label.
	id, err := b.AddVertex("d")
	s.Require().NoError(err)
	s.Equal(1, id)
}

func (s *BackendSuite) TestUndirectedArcs() {
	b := s.newUndirected(4)

	// AddArc registers missing endpoints on the way.
	s.Require().NoError(b.AddArc("u", "v"))
	s.Equal(2, b.Order())
	s.Equal(2, b.ArcCount()) // stored as the (u,v)+(v,u) pair

	for _, pair := range [][2]any{{"u", "v"}, {"v", "u"}} {
		ok, err := b.HasArc(pair[0], pair[1])
		s.Require().NoError(err)
		s.True(ok, "arc %v→%v", pair[0], pair[1])
	}

	// Degree in the undirected sense.
	d, err := b.Degree("u", false)
	s.Require().NoError(err)
	s.Equal(1, d)

	// Deleting removes both directions.
	s.Require().NoError(b.DelAllArcs("v", "u"))
	s.Equal(0, b.ArcCount())
	ok, err := b.HasArc("u", "v")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *BackendSuite) TestSelfLoopDegree() {
	b := s.newUndirected(2)
	s.Require().NoError(b.AddArc("x", "x"))
	s.Equal(1, b.ArcCount()) // a loop is stored once

	// In the undirected sense a loop counts twice, once per end.
	d, err := b.Degree("x", false)
	s.Require().NoError(err)
	s.Equal(2, d)
}

func (s *BackendSuite) TestDirectedArcs() {
	b := s.newDirected(4)
	s.Require().NoError(b.AddArc(0, 1))
	s.Require().NoError(b.AddArc(2, 1))
	s.Equal(2, b.ArcCount())

	ok, err := b.HasArc(1, 0)
	s.Require().NoError(err)
	s.False(ok, "directed arcs must not mirror")

	d, err := b.Degree(1, true)
	s.Require().NoError(err)
	s.Equal(2, d) // in-degree 2, out-degree 0

	// In-neighbors come from the reverse mirror.
	it, err := b.IterInNeighbors(1)
	s.Require().NoError(err)
	var in []any
	for l, more := it.Next(); more; l, more = it.Next() {
		in = append(in, l)
	}
	s.ElementsMatch([]any{0, 2}, in)
}

func (s *BackendSuite) TestHasArcUnknownEndpoints() {
	b := s.newUndirected(2)
	ok, err := b.HasArc("ghost", "also-ghost")
	s.Require().NoError(err)
	s.False(ok)
	s.Require().NoError(b.DelAllArcs("ghost", "x"))
}

func (s *BackendSuite) TestDenseStore() {
	b := s.newUndirected(4, backend.WithDense())
	s.Require().NoError(b.AddArc("a", "b"))
	s.Require().NoError(b.AddArc("a", "b")) // idempotent on Dense
	s.Equal(2, b.ArcCount())
	s.IsType(&core.Dense{}, b.Store())
}

func (s *BackendSuite) TestGrowthThroughFacade() {
	b := s.newUndirected(1)
	s.Require().NoError(b.AddVertices("a", "b", "c"))
	s.Equal(3, b.Order())
	s.GreaterOrEqual(b.Capacity(), 3)
	s.Require().NoError(b.AddArc("a", "c"))
}

func (s *BackendSuite) TestRelabel() {
	b := s.newUndirected(4)
	s.Require().NoError(b.AddVertices("a", "b", "c"))
	s.Require().NoError(b.AddArc("a", "b"))

	s.Require().NoError(b.Relabel(map[any]any{"a": "start", "c": 7}))
	s.True(b.HasVertex("start"))
	s.True(b.HasVertex("b")) // untouched labels survive
	s.True(b.HasVertex(7))
	s.False(b.HasVertex("a"))
	s.False(b.HasVertex("c"))

	// Arcs follow the vertices, not the labels.
	ok, err := b.HasArc("start", "b")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *BackendSuite) TestRelabelToOwnId() {
	b := s.newUndirected(4)
	s.Require().NoError(b.AddVertices("a", "b"))

	// "b" sits at id 1; naming it 1 collapses it onto the fast path.
	s.Require().NoError(b.Relabel(map[any]any{"b": 1}))
	s.True(b.HasVertex(1))
	s.False(b.HasVertex("b"))
	id, err := b.AddVertex(1)
	s.Require().NoError(err)
	s.Equal(1, id)
}

func (s *BackendSuite) TestRelabelDuplicate() {
	b := s.newUndirected(4)
	s.Require().NoError(b.AddVertices(0, "a"))

	err := b.Relabel(map[any]any{"a": 0})
	s.Require().ErrorIs(err, backend.ErrDuplicateLabel)

	// A failed relabeling leaves the index untouched.
	s.True(b.HasVertex("a"))
	s.True(b.HasVertex(0))
}

func (s *BackendSuite) TestRelabelUnusable() {
	b := s.newUndirected(2)
	s.Require().NoError(b.AddVertices("a"))
	err := b.Relabel(map[any]any{"a": []string{"no"}})
	s.Require().ErrorIs(err, backend.ErrUnusableLabel)
}

func (s *BackendSuite) TestIterVerts() {
	b := s.newUndirected(6)
	s.Require().NoError(b.AddVertices("a", 1, "b", 3.5))

	var all []any
	it := b.IterVerts(nil)
	for l, ok := it.Next(); ok; l, ok = it.Next() {
		all = append(all, l)
	}
	s.ElementsMatch([]any{"a", 1, "b", 3.5}, all)

	// Filtered pass: strings only.
	var strs []any
	it = b.IterVerts(func(l any) bool { _, isStr := l.(string); return isStr })
	for l, ok := it.Next(); ok; l, ok = it.Next() {
		strs = append(strs, l)
	}
	s.ElementsMatch([]any{"a", "b"}, strs)

	// One-shot: a drained iterator stays drained.
	if _, ok := it.Next(); ok {
		s.Fail("iterator restarted after exhaustion")
	}
}

func (s *BackendSuite) TestNeighborIterators() {
	b := s.newUndirected(4)
	s.Require().NoError(b.AddArc("hub", "a"))
	s.Require().NoError(b.AddArc("hub", "b"))

	collect := func(it *backend.NeighborIterator, err error) []any {
		s.Require().NoError(err)
		var out []any
		for l, ok := it.Next(); ok; l, ok = it.Next() {
			out = append(out, l)
		}

		return out
	}

	s.ElementsMatch([]any{"a", "b"}, collect(b.IterNeighbors("hub")))
	s.ElementsMatch([]any{"a", "b"}, collect(b.IterOutNeighbors("hub")))
	s.ElementsMatch([]any{"hub"}, collect(b.IterInNeighbors("a")))

	_, err := b.IterNeighbors("ghost")
	s.Require().ErrorIs(err, backend.ErrUnknownVertex)
}

func (s *BackendSuite) TestDirectedNeighborUnion() {
	b := s.newDirected(4)
	s.Require().NoError(b.AddArc("mid", "out"))
	s.Require().NoError(b.AddArc("in", "mid"))
	s.Require().NoError(b.AddArc("both", "mid"))
	s.Require().NoError(b.AddArc("mid", "both"))

	it, err := b.IterNeighbors("mid")
	s.Require().NoError(err)
	var nbrs []any
	for l, ok := it.Next(); ok; l, ok = it.Next() {
		nbrs = append(nbrs, l)
	}
	// "both" appears once despite arcs in each direction.
	s.ElementsMatch([]any{"out", "in", "both"}, nbrs)
}

func TestNew_PropagatesStoreErrors(t *testing.T) {
	_, err := backend.New(-1)
	require.ErrorIs(t, err, core.ErrBadCapacity)
}
