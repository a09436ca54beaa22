package router

import (
	"github.com/kestrelpcb/autoroute/geom"
	"github.com/kestrelpcb/autoroute/internal/pq"
	"github.com/kestrelpcb/autoroute/recttree"
)

// breakEdges implements spec §4.7's break_edges: clip region (an
// expansion region still being carved out of the search frontier) to
// the board's search bounds, then look for any fixed obstacle (not on
// this net) whose bloat intersects it. With none, the region is good
// and spawns its side edges and via candidates. With one, the region
// splits around the obstacle's bloated box into up to three pieces:
// left and right recycle through another call to breakEdges, and the
// centre strip becomes an interior edge into the obstacle itself when
// conflicts are allowed.
//
// Cost inflation: a fragment reopened by a break has its cost-to-point
// scaled by the current pass's conflict penalty, so repeatedly broken
// regions become progressively less attractive to expand from.
func breakEdges(state *searchState, heap *pq.PriorityQueue[Edge], parent *Edge, tree *recttree.Tree[*RouteBox], region geom.Box, depth int) {
	const maxBreakDepth = 8
	if depth > maxBreakDepth || region.Empty() {
		return
	}

	maxRegion := boardSearchBounds(state.sess.Board, state.style)
	clipped, ok := region.Clip(maxRegion)
	if !ok {
		return
	}

	obstacle, found := findIntersectingObstacle(tree, clipped, state.net)
	if !found {
		spawnExpansionAndSides(state, heap, parent, tree, clipped)
		return
	}

	north := geom.RotateToNorth(clipped, parent.ExpandDir)
	nb := geom.RotateToNorth(obstacle.BloatedBox(), parent.ExpandDir)

	if nb.X1 > north.X1 {
		left := geom.Box{X1: north.X1, Y1: north.Y1, X2: nb.X1, Y2: north.Y2}
		breakEdges(state, heap, inflateCost(parent, state.ctx.ConflictPenalty), tree, geom.RotateFromNorth(left, parent.ExpandDir), depth+1)
	}
	if nb.X2 < north.X2 {
		right := geom.Box{X1: nb.X2, Y1: north.Y1, X2: north.X2, Y2: north.Y2}
		breakEdges(state, heap, inflateCost(parent, state.ctx.ConflictPenalty), tree, geom.RotateFromNorth(right, parent.ExpandDir), depth+1)
	}

	if state.ctx.WithConflicts && !obstacle.Flags.Source && !obstacle.Flags.Target {
		spawnInterior(state, heap, parent, obstacle)
	}
}

// inflateCost returns a copy of e whose cost-to-point has been scaled
// by penalty, per break_edges' "reopened fragments have their
// cost-to-point scaled by the conflict-penalty" rule.
func inflateCost(e *Edge, penalty float64) *Edge {
	scaled := *e
	scaled.CostToPoint *= penalty
	return &scaled
}

// spawnExpansionAndSides creates the expansion route-box for a region
// that broke clean (no intersecting obstacle) and spawns its side
// edges and via candidates, the non-broken path through spec §4.7
// steps 1-3.
func spawnExpansionAndSides(state *searchState, heap *pq.PriorityQueue[Edge], parent *Edge, tree *recttree.Tree[*RouteBox], region geom.Box) {
	expansion := &RouteBox{Box: region, Group: parent.Group, Type: TypeExpansion, Style: state.style, Net: state.net, Parent: -1}
	tree.Insert(expansion)
	state.created = append(state.created, expansion)

	for _, side := range []geom.Direction{parent.ExpandDir.Left(), parent.ExpandDir.Right()} {
		cp := geom.EdgeToBox(region, side).Center()
		cost := parent.CostToPoint + edgeCost(state.ctx, parent.Group, parent.Group, parent.CostPoint, cp, parent.ExpandDir, side, true)
		state.push(heap, Edge{Box: expansion, Group: parent.Group, CostPoint: cp, CostToPoint: cost, ExpandDir: side, Parent: parent})
	}

	spawnViaCandidates(state, heap, parent, expansion)
	spawnTargetCandidates(state, heap, parent, expansion)
}

// spawnTargetCandidates pushes a direct edge onto any of this
// search's target boxes the freshly carved expansion region reaches:
// target boxes are never inserted into the tree (they are synthetic
// terminals, not board obstacles), so this is the only place the
// search can ever discover that a target has been reached, per spec
// §4.7's "expansion into a target box ends the search."
func spawnTargetCandidates(state *searchState, heap *pq.PriorityQueue[Edge], parent *Edge, region *RouteBox) {
	for _, target := range state.targets {
		if target.Group != region.Group || !region.Box.Intersects(target.Box) {
			continue
		}
		cp := target.Box.Center()
		cost := parent.CostToPoint + edgeCost(state.ctx, parent.Group, target.Group, parent.CostPoint, cp, parent.ExpandDir, parent.ExpandDir, true)
		state.push(heap, Edge{Box: target, Group: target.Group, CostPoint: cp, CostToPoint: cost, ExpandDir: parent.ExpandDir, Parent: parent})
	}
}
