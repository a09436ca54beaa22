// Package arena stores items by index together with the four circular
// doubly-linked rings route boxes need (same-net, same-subnet,
// original-subnet, different-net) as index pairs instead of pointers,
// per §9's "Cyclic pointer rings" note. The router keeps one arena per
// net for its connectivity; route_one's expansion regions are not
// stored here.
package arena

// Ring is one of the four relations a route box can be threaded into.
type Ring int

const (
	SameNet Ring = iota
	SameSubnet
	OriginalSubnet
	DifferentNet
	numRings
)

// link is one node's prev/next index within a single ring. A node not
// in any ring of that kind points to itself.
type link struct {
	prev, next int
}

// Arena holds a growable set of T values plus the four rings over
// their indices. The zero value is ready to use. Dropping an arena
// (letting it go out of scope) releases every item it held; the
// router's rip-up replaces a net's arena with a fresh one.
type Arena[T any] struct {
	items []T
	rings [numRings][]link
}

// New creates an arena, optionally pre-sizing for n items.
func New[T any](n int) *Arena[T] {
	a := &Arena[T]{
		items: make([]T, 0, n),
	}
	for r := range a.rings {
		a.rings[r] = make([]link, 0, n)
	}
	return a
}

// Add inserts a new item and returns its index. The item starts
// linked to itself in every ring (a ring of one).
func (a *Arena[T]) Add(item T) int {
	idx := len(a.items)
	a.items = append(a.items, item)
	for r := range a.rings {
		a.rings[r] = append(a.rings[r], link{prev: idx, next: idx})
	}
	return idx
}

// Len returns how many items the arena holds.
func (a *Arena[T]) Len() int { return len(a.items) }

// Get returns a pointer to the item at idx, letting callers mutate
// flags/coordinates in place.
func (a *Arena[T]) Get(idx int) *T { return &a.items[idx] }

// Splice removes idx from ring r (closing the gap between its
// neighbours) and re-inserts it as a singleton ring of one, matching
// RemoveFromNet's behaviour in the reference router.
func (a *Arena[T]) Splice(r Ring, idx int) {
	ring := a.rings[r]
	p, n := ring[idx].prev, ring[idx].next
	if p == idx {
		return // already a singleton
	}
	ring[p].next = n
	ring[n].prev = p
	ring[idx] = link{prev: idx, next: idx}
}

// Merge splices y's ring r into x's ring r immediately after x,
// matching MergeNets's circular-list splice.
func (a *Arena[T]) Merge(r Ring, x, y int) {
	ring := a.rings[r]
	if x == y {
		return
	}
	xNext, yPrev := ring[x].next, ring[y].prev
	ring[x].next = y
	ring[y].prev = x
	ring[yPrev].next = xNext
	ring[xNext].prev = yPrev
}

// Next/Prev walk ring r from idx.
func (a *Arena[T]) Next(r Ring, idx int) int { return a.rings[r][idx].next }
func (a *Arena[T]) Prev(r Ring, idx int) int { return a.rings[r][idx].prev }

// Each calls f on every index in ring r's cycle starting at start,
// stopping if f returns false or once the cycle is exhausted.
func (a *Arena[T]) Each(r Ring, start int, f func(idx int) bool) {
	if start < 0 {
		return
	}
	cur := start
	for {
		if !f(cur) {
			return
		}
		cur = a.Next(r, cur)
		if cur == start {
			return
		}
	}
}
