package backend_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostrenko/cgraph/allpairs"
	"github.com/ostrenko/cgraph/backend"
	"github.com/ostrenko/cgraph/path"
)

func buildDirected(t *testing.T, arcs [][2]any) *backend.Backend {
	t.Helper()
	b, err := backend.New(8, backend.WithDirected())
	require.NoError(t, err)
	for _, a := range arcs {
		require.NoError(t, b.AddArc(a[0], a[1]))
	}

	return b
}

func buildUndirected(t *testing.T, arcs [][2]any) *backend.Backend {
	t.Helper()
	b, err := backend.New(8)
	require.NoError(t, err)
	for _, a := range arcs {
		require.NoError(t, b.AddArc(a[0], a[1]))
	}

	return b
}

func TestShortestPath_Labels(t *testing.T) {
	b := buildUndirected(t, [][2]any{
		{"a", "b"}, {"b", "c"}, {"c", "d"},
	})
	got, err := b.ShortestPath("a", "d")
	require.NoError(t, err)
	require.Equal(t, []any{"a", "b", "c", "d"}, got)

	// Undirected arcs carry the path the other way too.
	got, err = b.ShortestPath("d", "a")
	require.NoError(t, err)
	require.Equal(t, []any{"d", "c", "b", "a"}, got)
}

func TestShortestPath_NoPath(t *testing.T) {
	b := buildDirected(t, [][2]any{{"a", "b"}, {"c", "d"}})
	got, err := b.ShortestPath("a", "d")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestShortestPath_UnknownLabel(t *testing.T) {
	b := buildUndirected(t, [][2]any{{"a", "b"}})
	_, err := b.ShortestPath("a", "ghost")
	require.ErrorIs(t, err, backend.ErrUnknownVertex)
}

func TestBidirectionalDijkstra_Labels(t *testing.T) {
	b := buildDirected(t, [][2]any{
		{"s", "t"},
		{"s", "m1"}, {"m1", "m2"}, {"m2", "t"},
	})
	w := func(u, v any) (int64, error) {
		if u == "s" && v == "t" {
			return 50, nil
		}

		return 1, nil
	}

	got, total, err := b.BidirectionalDijkstra("s", "t", w)
	require.NoError(t, err)
	require.Equal(t, []any{"s", "m1", "m2", "t"}, got)
	require.Equal(t, int64(3), total)
}

func TestBidirectionalDijkstra_Guards(t *testing.T) {
	b := buildDirected(t, [][2]any{{"a", "b"}})
	_, _, err := b.BidirectionalDijkstra("a", "b", nil)
	require.ErrorIs(t, err, backend.ErrNilWeightFunc)

	_, _, err = b.BidirectionalDijkstra("ghost", "b", func(u, v any) (int64, error) { return 1, nil })
	require.ErrorIs(t, err, backend.ErrUnknownVertex)

	_, _, err = b.BidirectionalDijkstra("a", "b", func(u, v any) (int64, error) { return -1, nil })
	require.ErrorIs(t, err, path.ErrNegativeWeight)
}

func TestFloydWarshall_LabelTables(t *testing.T) {
	b := buildDirected(t, [][2]any{
		{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"},
	})

	dist, pred, err := b.FloydWarshall(false)
	require.NoError(t, err)
	require.Nil(t, pred)

	require.Equal(t, 0, dist["a"]["a"])
	require.Equal(t, 1, dist["a"]["b"])
	require.Equal(t, 2, dist["a"]["d"])

	// Unreachable pairs carry no entry at all.
	_, ok := dist["d"]["a"]
	require.False(t, ok)
	_, ok = dist["b"]["c"]
	require.False(t, ok)
}

func TestFloydWarshall_LabelPaths(t *testing.T) {
	b := buildDirected(t, [][2]any{{"a", "b"}, {"b", "c"}})
	dist, pred, err := b.FloydWarshall(true)
	require.NoError(t, err)
	require.Equal(t, 2, dist["a"]["c"])
	require.Equal(t, "b", pred["a"]["c"])
	require.Equal(t, "a", pred["a"]["b"])

	// No predecessor entry on the diagonal.
	_, ok := pred["a"]["a"]
	require.False(t, ok)
}

func TestAllPairsBFSMatchesFloydWarshall(t *testing.T) {
	b := buildDirected(t, [][2]any{
		{"a", "b"}, {"b", "c"}, {"c", "a"},
		{"c", "d"}, {"d", "e"}, {"e", "c"},
		{"x", "a"},
	})

	fwDist, _, err := b.FloydWarshall(false)
	require.NoError(t, err)
	bfsDist, _, err := b.AllPairsBFS(false)
	require.NoError(t, err)
	require.Equal(t, fwDist, bfsDist)
}

func TestFloydWarshall_TooLarge(t *testing.T) {
	b, err := backend.New(1)
	require.NoError(t, err)
	_, err = b.AddVertex(0x2FFFF) // indexed label, but the id stays small
	require.NoError(t, err)
	_, _, err = b.FloydWarshall(false)
	require.NoError(t, err)

	// Force a genuinely huge id through the store itself.
	require.NoError(t, b.Store().Realloc(0x10000))
	_, err = b.Store().AddVertex(0xFFFF)
	require.NoError(t, err)
	_, _, err = b.FloydWarshall(false)
	require.ErrorIs(t, err, allpairs.ErrGraphTooLarge)
}

func TestDirectedOnlyGuards(t *testing.T) {
	b := buildUndirected(t, [][2]any{{"a", "b"}})

	_, err := b.IsStronglyConnected()
	require.ErrorIs(t, err, backend.ErrUndirectedGraph)

	_, err = b.StronglyConnectedComponentContaining("a")
	require.ErrorIs(t, err, backend.ErrUndirectedGraph)

	_, _, err = b.IsDirectedAcyclic()
	require.ErrorIs(t, err, backend.ErrUndirectedGraph)
}

func TestIsConnected_Labels(t *testing.T) {
	b := buildDirected(t, [][2]any{{"a", "b"}, {"c", "b"}})
	ok, err := b.IsConnected()
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, b.AddVertices("island"))
	ok, err = b.IsConnected()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIsStronglyConnected_Labels(t *testing.T) {
	ring := buildDirected(t, [][2]any{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	ok, err := ring.IsStronglyConnected()
	require.NoError(t, err)
	require.True(t, ok)

	line := buildDirected(t, [][2]any{{"a", "b"}, {"b", "c"}})
	ok, err = line.IsStronglyConnected()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStronglyConnectedComponentContaining_Labels(t *testing.T) {
	b := buildDirected(t, [][2]any{
		{"a", "b"}, {"b", "c"}, {"c", "a"}, // one component
		{"c", "d"}, {"d", "e"}, {"e", "d"}, // another, downstream
	})

	comp, err := b.StronglyConnectedComponentContaining("b")
	require.NoError(t, err)
	require.Equal(t, []any{"a", "b", "c"}, comp) // increasing internal id

	comp, err = b.StronglyConnectedComponentContaining("e")
	require.NoError(t, err)
	require.Equal(t, []any{"d", "e"}, comp)

	_, err = b.StronglyConnectedComponentContaining("ghost")
	require.ErrorIs(t, err, backend.ErrUnknownVertex)
}

func TestIsDirectedAcyclic_Labels(t *testing.T) {
	dag := buildDirected(t, [][2]any{
		{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"},
	})
	ok, order, err := dag.IsDirectedAcyclic()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, order, 4)
	pos := make(map[any]int, len(order))
	for i, l := range order {
		pos[l] = i
	}
	for _, a := range [][2]any{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}} {
		require.Less(t, pos[a[0]], pos[a[1]], "%v must precede %v", a[0], a[1])
	}

	// Closing the diamond produces a cycle certificate in labels.
	require.NoError(t, dag.AddArc("d", "a"))
	ok, cycle, err := dag.IsDirectedAcyclic()
	require.NoError(t, err)
	require.False(t, ok)
	require.NotEmpty(t, cycle)
	for i := range cycle {
		has, herr := dag.HasArc(cycle[i], cycle[(i+1)%len(cycle)])
		require.NoError(t, herr)
		require.True(t, has, "cycle %v: arc %v→%v missing", cycle, cycle[i], cycle[(i+1)%len(cycle)])
	}
}
