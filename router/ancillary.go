package router

import (
	"github.com/kestrelpcb/autoroute/geom"
	"github.com/kestrelpcb/autoroute/recttree"
)

// findBlocker locates the nearest obstacle in direction d from from,
// per spec §4.10: "rotate to north; the nearest box whose bloated
// projection lies in the edge's column and above it; skip the edge's
// own parent." Everything below is computed in north-rotated
// coordinates via geom.RotateToNorth so the search only ever has to
// reason about "the nearest thing above, in this column".
//
// clamped reports the Open Question #2 resolution: when the search
// region extends past maxRegion's far edge before any real obstacle
// is found, the blocker distance is clamped to maxRegion's edge
// instead of silently extending past it (autoroute.c's "XXX what to
// do here" case, modeled explicitly rather than left implicit).
func findBlocker(tree *recttree.Tree[*RouteBox], from geom.Box, d geom.Direction, parent *RouteBox, maxRegion geom.Box) (blocker *RouteBox, blockerBox geom.Box, clamped bool, found bool) {
	north := geom.RotateToNorth(from, d)
	northMax := geom.RotateToNorth(maxRegion, d)

	var best *RouteBox
	var bestNorth geom.Box
	bestY2 := northMax.Y1 // no obstacle found yet: the search region's own far edge

	region := func(b geom.Box) bool {
		nb := geom.RotateToNorth(b, d)
		if nb.X2 <= north.X1 || nb.X1 >= north.X2 {
			return false
		}
		return nb.Y1 < north.Y1 && nb.Y2 > bestY2
	}
	leaf := func(rb *RouteBox) (matched bool, stop bool) {
		if rb == parent {
			return false, false
		}
		nb := geom.RotateToNorth(rb.BloatedBox(), d)
		if nb.X2 <= north.X1 || nb.X1 >= north.X2 {
			return false, false
		}
		if nb.Y2 > north.Y1 || nb.Y2 <= bestY2 {
			return false, false
		}
		best = rb
		bestNorth = nb
		bestY2 = nb.Y2
		return true, false
	}

	recttree.Search(tree, region, leaf)

	if best == nil {
		return nil, geom.RotateFromNorth(geom.Box{X1: north.X1, Y1: northMax.Y1, X2: north.X2, Y2: north.Y1}, d), true, false
	}

	blockerRegion := geom.Box{X1: north.X1, Y1: bestNorth.Y2, X2: north.X2, Y2: north.Y1}
	return best, geom.RotateFromNorth(blockerRegion, d), false, true
}

// findIntersectingObstacle returns any fixed box not on net whose
// bloat intersects query, per spec §4.10. Used by break_edges.
func findIntersectingObstacle(tree *recttree.Tree[*RouteBox], query geom.Box, net string) (*RouteBox, bool) {
	var found *RouteBox

	region := func(b geom.Box) bool { return b.Intersects(query) }
	leaf := func(rb *RouteBox) (matched bool, stop bool) {
		if !rb.Flags.Fixed || rb.Net == net {
			return false, false
		}
		if !rb.BloatedBox().Intersects(query) {
			return false, false
		}
		found = rb
		return true, true
	}

	recttree.Search(tree, region, leaf)
	return found, found != nil
}

// findOneInBox returns any indexed box whose bloat intersects query,
// per spec §4.10. Used for via-placement collision detection.
func findOneInBox(tree *recttree.Tree[*RouteBox], query geom.Box) (*RouteBox, bool) {
	var found *RouteBox

	region := func(b geom.Box) bool { return b.Intersects(query) }
	leaf := func(rb *RouteBox) (matched bool, stop bool) {
		if !rb.BloatedBox().Intersects(query) {
			return false, false
		}
		found = rb
		return true, true
	}

	recttree.Search(tree, region, leaf)
	return found, found != nil
}
