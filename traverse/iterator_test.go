package traverse_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ostrenko/cgraph/core"
	"github.com/ostrenko/cgraph/traverse"
)

// diamond builds 0→1, 0→2, 1→3, 2→3 on a Dense store so neighbor
// snapshots come back in ascending id order and traversal orders are
// deterministic.
func diamond(t *testing.T) core.Graph {
	t.Helper()
	g, err := core.NewDense(4)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for id := 0; id < 4; id++ {
		if _, err = g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%d): %v", id, err)
		}
	}
	for _, a := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		if err = g.AddArc(a[0], a[1]); err != nil {
			t.Fatalf("AddArc(%d,%d): %v", a[0], a[1], err)
		}
	}

	return g
}

func TestBreadthFirstOrder(t *testing.T) {
	it, err := traverse.New(diamond(t), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := it.Drain()
	want := []int{0, 1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("breadth-first order = %v, want %v", got, want)
	}
	if err = it.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestDepthFirstOrder(t *testing.T) {
	it, err := traverse.New(diamond(t), 0, traverse.WithOrder(traverse.DepthFirst))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// LIFO pops the most recently pushed neighbor: 0, then 2, its
	// successor 3, and finally the deferred 1.
	got := it.Drain()
	want := []int{0, 2, 3, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("depth-first order = %v, want %v", got, want)
	}
}

func TestReverseTraversal(t *testing.T) {
	it, err := traverse.New(diamond(t), 3, traverse.WithReverse())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := it.Drain()
	want := []int{3, 1, 2, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reverse order = %v, want %v", got, want)
	}
}

func TestForwardMissesUpstream(t *testing.T) {
	// From vertex 1 only 3 is forward-reachable.
	it, err := traverse.New(diamond(t), 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := it.Drain()
	want := []int{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("forward from 1 = %v, want %v", got, want)
	}
}

func TestIgnoreDirection(t *testing.T) {
	// 0→1 and 2→1: direction-blind traversal from 0 still reaches 2.
	g, err := core.NewDense(3)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for id := 0; id < 3; id++ {
		if _, err = g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%d): %v", id, err)
		}
	}
	if err = g.AddArc(0, 1); err != nil {
		t.Fatalf("AddArc(0,1): %v", err)
	}
	if err = g.AddArc(2, 1); err != nil {
		t.Fatalf("AddArc(2,1): %v", err)
	}

	it, err := traverse.New(g, 0, traverse.WithIgnoreDirection())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := it.Drain()
	want := []int{0, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ignore-direction order = %v, want %v", got, want)
	}

	// Forward-only traversal from 0 stops at 1.
	it, err = traverse.New(g, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got = it.Drain(); len(got) != 2 {
		t.Errorf("forward from 0 = %v, want 2 vertices", got)
	}
}

func TestIteratorIsOneShot(t *testing.T) {
	it, err := traverse.New(diamond(t), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	it.Drain()
	if v, ok := it.Next(); ok {
		t.Errorf("Next after exhaustion = (%d, true), want ok=false", v)
	}
	if got := it.Drain(); len(got) != 0 {
		t.Errorf("Drain after exhaustion = %v, want empty", got)
	}
}

func TestSingleVertex(t *testing.T) {
	g, err := core.NewSparse(1)
	if err != nil {
		t.Fatalf("NewSparse: %v", err)
	}
	if _, err = g.AddVertex(0); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	it, err := traverse.New(g, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := it.Drain(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("Drain = %v, want [0]", got)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := traverse.New(nil, 0); !errors.Is(err, traverse.ErrGraphNil) {
		t.Errorf("nil graph: err = %v, want ErrGraphNil", err)
	}

	g, err := core.NewSparse(4)
	if err != nil {
		t.Fatalf("NewSparse: %v", err)
	}
	if _, err = traverse.New(g, 0); !errors.Is(err, traverse.ErrStartVertexNotFound) {
		t.Errorf("inactive start: err = %v, want ErrStartVertexNotFound", err)
	}
	if _, err = traverse.New(g, 99); !errors.Is(err, traverse.ErrStartVertexNotFound) {
		t.Errorf("out-of-range start: err = %v, want ErrStartVertexNotFound", err)
	}
}
