package router

import (
	"github.com/kestrelpcb/autoroute/board"
	"github.com/kestrelpcb/autoroute/geom"
	"github.com/kestrelpcb/autoroute/internal/pq"
	"github.com/kestrelpcb/autoroute/mtspace"
)

// searchState holds everything route_one needs to clean up on every
// exit path (spec §5: "Implementations must guarantee these releases
// on all exit paths, including the 'no path found' case").
type searchState struct {
	sess  *Session
	ctx   *SearchContext
	style board.RouteStyle
	net   string

	targets []*RouteBox
	isTarget map[*RouteBox]bool

	created []*RouteBox // expansion regions inserted into a tree this call
	touched []*RouteBox // fixed boxes whose Touched flag this call set
}

func (s *searchState) cleanup() {
	for _, rb := range s.created {
		if tree, ok := s.sess.Trees[rb.Group]; ok {
			tree.Delete(rb.Box, func(c *RouteBox) bool { return c == rb })
		}
		if rb.Flags.IsVia {
			if sp, ok := s.sess.Spaces[s.style.Name]; ok {
				tag := mtspace.EvenPass
				if s.ctx.IsOdd {
					tag = mtspace.OddPass
				}
				sp.Remove(rb.Box, tag, s.style.Keepaway)
			}
		}
	}
	for _, rb := range s.touched {
		rb.Flags.Touched = false
	}
}

func (s *searchState) markTouched(rb *RouteBox) {
	if !rb.Flags.Touched {
		rb.Flags.Touched = true
		s.touched = append(s.touched, rb)
	}
}

// nearestTarget implements the mincost-target heuristic of spec §4.7:
// the target whose closest point is cheapest to reach from p under
// edgeCost (the target group's direction penalty, plus ViaCost when
// group differs from the target's group) becomes the edge's cached
// mincost_target, and that cost is the estimate in the heap key.
func (s *searchState) nearestTarget(group int, p geom.Point) (*RouteBox, float64) {
	var best *RouteBox
	bestDist := -1.0
	for _, t := range s.targets {
		d := edgeCost(s.ctx, group, t.Group, p, t.Box.ClosestPoint(p), 0, 0, false)
		if bestDist < 0 || d < bestDist {
			best, bestDist = t, d
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestDist
}

func (s *searchState) push(heap *pq.PriorityQueue[Edge], e Edge) {
	target, dist := s.nearestTarget(e.Group, e.CostPoint)
	e.MincostTarget = target
	heap.Push(e, e.CostToPoint+dist)
}

// RouteOne performs the best-first rectangle-expansion search of spec
// §4.7 from every box in from toward any box in to, on behalf of net.
// It returns the winning path's waypoints (and any via points along
// it) or ok=false if no path was found. Every expansion region and
// touched-flag mutation made during the search is undone before
// returning, on every exit path.
func RouteOne(sess *Session, ctx *SearchContext, style board.RouteStyle, net string, from, to []*RouteBox) (path []geom.Point, vias []geom.Point, ok bool) {
	state := &searchState{sess: sess, ctx: ctx, style: style, net: net, targets: to, isTarget: map[*RouteBox]bool{}}
	for _, t := range to {
		state.isTarget[t] = true
	}
	defer state.cleanup()

	heap := &pq.PriorityQueue[Edge]{}
	for _, f := range from {
		for _, d := range geom.AllDirections {
			cp := geom.EdgeToBox(f.Box, d).Center()
			state.push(heap, Edge{Box: f, Group: f.Group, CostPoint: cp, ExpandDir: d})
		}
	}

	const maxExpansions = 4096
	for i := 0; i < maxExpansions; i++ {
		e, okPop := heap.Pop()
		if !okPop {
			return nil, nil, false
		}
		checkEdgeInvariants(e)
		checkRouteBoxInvariants(e.Box)

		if state.isTarget[e.Box] {
			trace := materialize(state, e, style)
			commitTrace(state, trace)
			return tracePath(e), collectVias(e), true
		}

		// A via edge also continues from its site on every other active
		// layer group.
		if e.IsVia {
			for _, g := range sess.Board.ActiveLayerGroups() {
				if g.Index == e.Group {
					continue
				}
				for _, d := range geom.AllDirections {
					state.push(heap, Edge{Box: e.Box, Group: g.Index, CostPoint: e.CostPoint, CostToPoint: e.CostToPoint, ExpandDir: d, Parent: e})
				}
			}
		}

		tree, treeOK := sess.Trees[e.Group]
		if !treeOK {
			continue
		}

		maxRegion := boardSearchBounds(sess.Board, style)
		_, region, _, found := findBlocker(tree, e.Box.Box, e.ExpandDir, e.Box, maxRegion)
		if region.Empty() {
			continue
		}
		if !found {
			// No blocker at all: the region already runs to the board
			// wall, so there is nothing left to break against.
			spawnExpansionAndSides(state, heap, e, tree, region)
			continue
		}
		breakEdges(state, heap, e, tree, region, 0)
	}

	return nil, nil, false
}

// spawnInterior expands a with-conflicts edge into the blocker itself
// (spec §4.7: "Expansion from an interior (with-conflicts) edge"),
// adding the conflict penalty and marking the blocker touched so it
// is only expanded into once per search.
func spawnInterior(state *searchState, heap *pq.PriorityQueue[Edge], e *Edge, blocker *RouteBox) {
	if blocker.Flags.Touched {
		return
	}
	state.markTouched(blocker)

	for _, d := range geom.AllDirections {
		cp := geom.EdgeToBox(blocker.BloatedBox(), d).Center()
		cost := e.CostToPoint + edgeCost(state.ctx, e.Group, blocker.Group, e.CostPoint, cp, e.ExpandDir, d, true) + state.ctx.ConflictPenalty
		state.push(heap, Edge{Box: blocker, Group: blocker.Group, CostPoint: cp, CostToPoint: cost, ExpandDir: d, IsInterior: true, Parent: e})
	}
}

// spawnViaCandidates queries mtspace for via sites inside a freshly
// created expansion region and adds one via edge per free rectangle
// found, per spec §4.7 step 3.
func spawnViaCandidates(state *searchState, heap *pq.PriorityQueue[Edge], e *Edge, region *RouteBox) {
	sp, ok := state.sess.Spaces[state.style.Name]
	if !ok {
		return
	}
	res := sp.Query(region.Box, state.ctx.IsOdd)
	for _, freeBox := range res.Free {
		cp := freeBox.Center()
		cost := e.CostToPoint + edgeCost(state.ctx, e.Group, e.Group, e.CostPoint, cp, e.ExpandDir, e.ExpandDir, true) + state.ctx.ViaCost
		via := &RouteBox{Box: geom.NewBox(cp.X, cp.Y, cp.X+1, cp.Y+1), Group: e.Group, Type: TypeVia, Style: state.style, Net: state.net}
		via.Flags.IsVia = true
		state.push(heap, Edge{Box: via, Group: e.Group, CostPoint: cp, CostToPoint: cost, IsVia: true, ViaConflictLevel: NoConflict, Parent: e})
	}
}

// boardSearchBounds returns the board outline shrunk by style's
// bloat, the outer wall any expansion region is clipped against
// (spec §4.7: "the rectangle from the edge outward to either the
// board boundary (shrunk by this style's bloat) or the blocker's
// bloated top").
func boardSearchBounds(b *board.Board, style board.RouteStyle) geom.Box {
	return b.Bounds().Shrink(style.Bloat())
}

func tracePath(winner *Edge) []geom.Point {
	var pts []geom.Point
	for e := winner; e != nil; e = e.Parent {
		pts = append([]geom.Point{e.CostPoint}, pts...)
	}
	return pts
}

func collectVias(winner *Edge) []geom.Point {
	var pts []geom.Point
	for e := winner; e != nil; e = e.Parent {
		if e.IsVia {
			pts = append(pts, e.CostPoint)
		}
	}
	return pts
}
