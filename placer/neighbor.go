package placer

import (
	"github.com/kestrelpcb/autoroute/geom"
	"github.com/kestrelpcb/autoroute/recttree"
)

// componentBox adapts a board.Component index into a recttree.Item so
// the model's footprints can be bulk-built into a spatial index for
// neighbour lookup.
type componentBox struct {
	index int
	box   geom.Box
}

func (c componentBox) Bounds() geom.Box { return c.box }

// neighborIndex builds a rect-tree over every component's current
// footprint, rebuilt once per Cost evaluation since positions may have
// moved since the last build.
func (m *Model) neighborIndex() *recttree.Tree[componentBox] {
	items := make([]componentBox, len(m.Board.Components))
	for i, c := range m.Board.Components {
		items[i] = componentBox{index: i, box: c.Box()}
	}
	return recttree.Build(items)
}

// nearestInDirection finds the first component box found inside the
// 45-degree-widening trapezoid emanating from from's d-edge to
// infinity, shrinking the trapezoid's bound as better (nearer)
// candidates are found — the stateful RegionVisitor of spec §9
// ("Trapezoidal neighbour search"). Ties are broken by nearer
// centroid. Returns -1 if no neighbour exists.
func nearestInDirection(tree *recttree.Tree[componentBox], from geom.Box, fromIdx int, d geom.Direction) int {
	// Rotating d's opposite edge to north leaves the d-edge as the
	// south edge of the rotated box, so the trapezoid widens at 45
	// degrees as it extends south from there.
	rot := d.Opposite()
	north := geom.RotateToNorth(from, rot)
	fromCenter := from.Center()
	best := -1
	var bestDist, bestCenterDist int64 = -1, 0
	bestBound := int64(1) << 40 // effectively unbounded until a candidate narrows it

	region := func(b geom.Box) bool {
		nb := geom.RotateToNorth(b, rot)
		return nb.Y2 > north.Y2 && int64(nb.Y1)-int64(north.Y2) <= bestBound
	}
	leaf := func(cand componentBox) (matched bool, stop bool) {
		if cand.index == fromIdx {
			return false, false
		}
		nb := geom.RotateToNorth(cand.box, rot)
		if !trapezoidMayContain(north, nb, bestBound) {
			return false, false
		}
		dist := trapezoidDistance(north, nb)
		if dist < 0 {
			return false, false
		}
		centerDist := fromCenter.ManhattanDistance(cand.box.Center())
		if best == -1 || dist < bestDist || (dist == bestDist && centerDist < bestCenterDist) {
			best = cand.index
			bestDist = dist
			bestCenterDist = centerDist
			bestBound = dist
		}
		return true, false
	}

	recttree.Search(tree, region, leaf)
	return best
}

// trapezoidMayContain reports whether cand could lie within bound
// distance south of from inside the 45-degree trapezoid: cand's X
// range must intersect from's X range widened by the vertical gap.
func trapezoidMayContain(from, cand geom.Box, bound int64) bool {
	if cand.Y1 < from.Y2 {
		return false // not south of from
	}
	gap := int64(cand.Y1 - from.Y2)
	if gap > bound {
		return false
	}
	widen := int32(gap)
	widened := geom.Box{X1: from.X1 - widen, Y1: from.Y2, X2: from.X2 + widen, Y2: cand.Y2 + 1}
	return widened.Intersects(cand)
}

// trapezoidDistance returns the vertical gap from from's south edge
// to cand, or -1 if cand doesn't fall within the widening trapezoid
// at that gap.
func trapezoidDistance(from, cand geom.Box) int64 {
	if cand.Y1 < from.Y2 {
		return -1
	}
	gap := int64(cand.Y1 - from.Y2)
	widen := int32(gap)
	widened := geom.Box{X1: from.X1 - widen, Y1: from.Y2, X2: from.X2 + widen, Y2: cand.Y2 + 1}
	if !widened.Intersects(cand) {
		return -1
	}
	return gap
}
