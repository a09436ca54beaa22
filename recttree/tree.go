// Package recttree is a 2-D spatial index over axis-aligned
// rectangles ("rect-tree" in the router's vocabulary). It is
// bulk-built once from an array of boxed items and then supports
// best-effort dynamic insert/delete alongside a two-stage visitor
// search: a coarse region predicate prunes whole subtrees, and a fine
// leaf predicate is invoked on every box inside a surviving subtree.
//
// The split mirrors REANNZ/raumata/internal.Grid's philosophy of a
// small, dependency-free data structure tailored to exactly what the
// router needs, generalised from an infinite map keyed by grid cell
// to a real spatial index over arbitrary rectangles — a grid can't
// represent the continuous, clearance-bloated boxes a gridless router
// produces.
package recttree

import "github.com/kestrelpcb/autoroute/geom"

// leafSize bounds how many items a leaf node holds before it is split
// during bulk build. Chosen empirically; doesn't affect correctness.
const leafSize = 8

// Item is anything a Tree can index: it must expose the box it
// occupies. Implementations are expected to be pointers so that the
// tree can hand back references callers can mutate via router state
// (flags, refcounts) without the tree knowing about them.
type Item interface {
	Bounds() geom.Box
}

// Tree is a static 2-D spatial index over boxed items of type T.
// The zero value is not usable; construct with Build.
type Tree[T Item] struct {
	root *node[T]
	size int
}

type node[T Item] struct {
	bounds      geom.Box
	left, right *node[T]
	items       []T // only populated on leaves
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// Build bulk-constructs a tree from items in one top-down pass,
// splitting on alternating axes at the median of item centres. An
// empty item slice produces a usable, always-empty tree.
func Build[T Item](items []T) *Tree[T] {
	if len(items) == 0 {
		return &Tree[T]{}
	}
	cp := make([]T, len(items))
	copy(cp, items)
	root := buildNode(cp, 0)
	return &Tree[T]{root: root, size: len(items)}
}

func buildNode[T Item](items []T, axis int) *node[T] {
	bounds := unionAll(items)
	if len(items) <= leafSize {
		return &node[T]{bounds: bounds, items: items}
	}

	sortByAxis(items, axis)
	mid := len(items) / 2
	left := buildNode(items[:mid], 1-axis)
	right := buildNode(items[mid:], 1-axis)

	return &node[T]{bounds: bounds, left: left, right: right}
}

func unionAll[T Item](items []T) geom.Box {
	b := items[0].Bounds()
	for _, it := range items[1:] {
		b = b.Union(it.Bounds())
	}
	return b
}

func sortByAxis[T Item](items []T, axis int) {
	// insertion sort: bulk-build leaf groups are small (leafSize
	// multiples at most a few deep), so this stays linear in
	// practice and avoids importing sort for one comparator.
	key := func(it T) int32 {
		box := it.Bounds()
		if axis == 0 {
			return box.X1 + box.X2
		}
		return box.Y1 + box.Y2
	}
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && key(items[j-1]) > key(items[j]); j-- {
			items[j-1], items[j] = items[j], items[j-1]
		}
	}
}

// Len returns the number of items the tree was built with, adjusted
// by subsequent inserts/deletes.
func (t *Tree[T]) Len() int { return t.size }

// Search descends every subtree whose union box satisfies region,
// and invokes leaf on every item of each leaf node reached that way;
// region is not tested against the items' own boxes. leaf returns whether the item matched
// and whether the search should stop immediately (the early-exit
// signal described in the design notes, modeled as a return value
// instead of a non-local jump). Search returns the number of items
// for which leaf reported a match.
func Search[T Item](t *Tree[T], region func(geom.Box) bool, leaf func(T) (matched bool, stop bool)) int {
	if t.root == nil {
		return 0
	}
	count := 0
	searchNode(t.root, region, leaf, &count)
	return count
}

func searchNode[T Item](n *node[T], region func(geom.Box) bool, leaf func(T) (bool, bool), count *int) bool {
	if n == nil || !region(n.bounds) {
		return false
	}
	if n.isLeaf() {
		for _, it := range n.items {
			matched, stop := leaf(it)
			if matched {
				*count++
			}
			if stop {
				return true
			}
		}
		return false
	}
	if searchNode(n.left, region, leaf, count) {
		return true
	}
	return searchNode(n.right, region, leaf, count)
}

// Insert adds item to the tree without rebalancing: it walks from
// the root choosing, at each internal node, the child whose bounds
// need the least enlargement to cover item, then appends item to the
// chosen leaf and grows every ancestor's bounds on the way back up.
// Heavy use degrades query performance (leaves grow past leafSize,
// ancestor boxes grow looser) but never correctness: Search still
// visits every subtree whose bounds could contain a match.
func (t *Tree[T]) Insert(item T) {
	if t.root == nil {
		t.root = &node[T]{bounds: item.Bounds(), items: []T{item}}
		t.size = 1
		return
	}
	insertInto(t.root, item)
	t.size++
}

func insertInto[T Item](n *node[T], item T) {
	n.bounds = n.bounds.Union(item.Bounds())
	if n.isLeaf() {
		n.items = append(n.items, item)
		return
	}
	if enlargement(n.left.bounds, item.Bounds()) <= enlargement(n.right.bounds, item.Bounds()) {
		insertInto(n.left, item)
	} else {
		insertInto(n.right, item)
	}
}

func enlargement(existing, add geom.Box) int64 {
	return existing.Union(add).Area() - existing.Area()
}

// Delete removes one item whose box equals box and for which match
// returns true, if present. It locates the item by a region search
// (since coordinates are frozen, the item's own box is a precise
// region predicate) and splices it out of its leaf without
// rebalancing, per the same best-effort contract as Insert.
func (t *Tree[T]) Delete(box geom.Box, match func(T) bool) bool {
	if t.root == nil {
		return false
	}
	if deleteFrom(t.root, box, match) {
		t.size--
		return true
	}
	return false
}

func deleteFrom[T Item](n *node[T], box geom.Box, match func(T) bool) bool {
	if n == nil {
		return false
	}
	if !boxesCouldOverlap(n.bounds, box) {
		return false
	}
	if n.isLeaf() {
		for i, it := range n.items {
			if it.Bounds() == box && match(it) {
				n.items = append(n.items[:i], n.items[i+1:]...)
				return true
			}
		}
		return false
	}
	if deleteFrom(n.left, box, match) {
		return true
	}
	return deleteFrom(n.right, box, match)
}

// boxesCouldOverlap is like Box.Intersects but also accepts the
// degenerate case of a zero-area query box (used by some callers to
// look up a point-sized obstacle) lying on the boundary of bounds.
func boxesCouldOverlap(bounds, box geom.Box) bool {
	return bounds.X1 <= box.X2 && box.X1 <= bounds.X2 &&
		bounds.Y1 <= box.Y2 && box.Y1 <= bounds.Y2
}
