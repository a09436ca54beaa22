package recttree_test

import (
	"testing"

	"github.com/kestrelpcb/autoroute/geom"
	"github.com/kestrelpcb/autoroute/recttree"
)

type box geom.Box

func (b box) Bounds() geom.Box { return geom.Box(b) }

func mkItems(boxes ...geom.Box) []box {
	items := make([]box, len(boxes))
	for i, b := range boxes {
		items[i] = box(b)
	}
	return items
}

func TestBuildEmpty(t *testing.T) {
	tree := recttree.Build[box](nil)
	if tree.Len() != 0 {
		t.Fatalf("empty tree should have Len() == 0, got %d", tree.Len())
	}

	count := recttree.Search(tree, func(geom.Box) bool { return true }, func(box) (bool, bool) {
		return true, false
	})
	if count != 0 {
		t.Errorf("search over empty tree matched %d items, want 0", count)
	}
}

func TestSearchRegionPrunesLeafPredicate(t *testing.T) {
	items := mkItems(
		geom.NewBox(0, 0, 10, 10),
		geom.NewBox(100, 100, 110, 110),
		geom.NewBox(200, 200, 210, 210),
	)
	tree := recttree.Build(items)

	region := geom.NewBox(90, 90, 120, 120)
	var visited []geom.Box
	matched := recttree.Search(tree, func(b geom.Box) bool {
		return b.Intersects(region)
	}, func(it box) (bool, bool) {
		b := geom.Box(it)
		visited = append(visited, b)
		return region.Intersects(b), false
	})

	if matched != 1 {
		t.Fatalf("expected exactly 1 match within region, got %d (visited %v)", matched, visited)
	}
}

func TestSearchStopsEarly(t *testing.T) {
	items := mkItems(
		geom.NewBox(0, 0, 1, 1),
		geom.NewBox(10, 10, 11, 11),
		geom.NewBox(20, 20, 21, 21),
		geom.NewBox(30, 30, 31, 31),
		geom.NewBox(40, 40, 41, 41),
		geom.NewBox(50, 50, 51, 51),
		geom.NewBox(60, 60, 61, 61),
		geom.NewBox(70, 70, 71, 71),
		geom.NewBox(80, 80, 81, 81),
		geom.NewBox(90, 90, 91, 91),
	)
	tree := recttree.Build(items)

	seen := 0
	matched := recttree.Search(tree, func(geom.Box) bool { return true }, func(box) (bool, bool) {
		seen++
		return true, true // match the very first item visited, then stop
	})

	if matched != 1 {
		t.Errorf("stop-on-first-match should report exactly 1 match, got %d", matched)
	}
	if seen != 1 {
		t.Errorf("leaf predicate should run exactly once after stop, ran %d times", seen)
	}
}

func TestInsertIsFoundBySearch(t *testing.T) {
	tree := recttree.Build(mkItems(geom.NewBox(0, 0, 10, 10)))

	added := geom.NewBox(500, 500, 510, 510)
	tree.Insert(box(added))

	if tree.Len() != 2 {
		t.Fatalf("Len() after insert = %d, want 2", tree.Len())
	}

	found := false
	recttree.Search(tree, func(geom.Box) bool { return true }, func(it box) (bool, bool) {
		if geom.Box(it) == added {
			found = true
		}
		return false, false
	})
	if !found {
		t.Errorf("inserted box %s was not found by a subsequent search", added)
	}
}

func TestDeleteRemovesItemAndLeavesOthersQueryable(t *testing.T) {
	a := geom.NewBox(0, 0, 10, 10)
	b := geom.NewBox(100, 100, 110, 110)
	tree := recttree.Build(mkItems(a, b))

	ok := tree.Delete(a, func(box) bool { return true })
	if !ok {
		t.Fatalf("Delete reported no match for a box that was present")
	}
	if tree.Len() != 1 {
		t.Fatalf("Len() after delete = %d, want 1", tree.Len())
	}

	var remaining []geom.Box
	recttree.Search(tree, func(geom.Box) bool { return true }, func(it box) (bool, bool) {
		remaining = append(remaining, geom.Box(it))
		return false, false
	})
	if len(remaining) != 1 || remaining[0] != b {
		t.Errorf("expected only %s to remain, got %v", b, remaining)
	}

	if tree.Delete(a, func(box) bool { return true }) {
		t.Errorf("deleting an already-removed box should report false")
	}
}

func TestInsertDeleteRoundTripPreservesQueryAnswers(t *testing.T) {
	base := mkItems(
		geom.NewBox(0, 0, 5, 5),
		geom.NewBox(50, 50, 55, 55),
		geom.NewBox(100, 0, 105, 5),
	)
	tree := recttree.Build(base)

	countMatches := func() int {
		return recttree.Search(tree, func(geom.Box) bool { return true }, func(box) (bool, bool) {
			return true, false
		})
	}

	before := countMatches()

	added := geom.NewBox(1000, 1000, 1010, 1010)
	tree.Insert(box(added))
	tree.Delete(added, func(box) bool { return true })

	after := countMatches()
	if before != after {
		t.Errorf("insert then delete changed the query answer count: before=%d after=%d", before, after)
	}
}

func TestBuildHandlesManyItemsAcrossSplits(t *testing.T) {
	var items []box
	for x := int32(0); x < 100; x++ {
		items = append(items, box(geom.NewBox(x*10, 0, x*10+5, 5)))
	}
	tree := recttree.Build(items)

	if tree.Len() != len(items) {
		t.Fatalf("Len() = %d, want %d", tree.Len(), len(items))
	}

	region := geom.NewBox(500, 0, 520, 5)
	matched := recttree.Search(tree, func(b geom.Box) bool {
		return b.Intersects(region)
	}, func(it box) (bool, bool) {
		return region.Intersects(geom.Box(it)), false
	})
	if matched == 0 {
		t.Errorf("expected at least one item overlapping %s", region)
	}
}
