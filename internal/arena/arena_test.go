package arena_test

import (
	"testing"

	"github.com/kestrelpcb/autoroute/internal/arena"
)

func TestSingletonRingIsSelfLinked(t *testing.T) {
	a := arena.New[string](4)
	i := a.Add("x")

	if n := a.Next(arena.SameNet, i); n != i {
		t.Errorf("singleton's next should be itself, got %d want %d", n, i)
	}
}

func TestMergeThreadsBothCycles(t *testing.T) {
	a := arena.New[string](4)
	x := a.Add("x")
	y := a.Add("y")
	z := a.Add("z")

	a.Merge(arena.SameNet, x, y)
	a.Merge(arena.SameNet, y, z)

	var visited []int
	a.Each(arena.SameNet, x, func(idx int) bool {
		visited = append(visited, idx)
		return true
	})

	if len(visited) != 3 {
		t.Fatalf("expected to visit all 3 merged nodes, got %v", visited)
	}
}

func TestSpliceRestoresSingleton(t *testing.T) {
	a := arena.New[string](4)
	x := a.Add("x")
	y := a.Add("y")
	a.Merge(arena.SameNet, x, y)

	a.Splice(arena.SameNet, y)

	if n := a.Next(arena.SameNet, y); n != y {
		t.Errorf("after splice, y should be a singleton again, got next=%d", n)
	}
	if n := a.Next(arena.SameNet, x); n != x {
		t.Errorf("after splice, x should be a singleton again, got next=%d", n)
	}
}
