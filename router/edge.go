package router

import "github.com/kestrelpcb/autoroute/geom"

// ConflictLevel classifies how contested a via candidate edge is,
// per spec §4.3/§4.9's lo/hi split.
type ConflictLevel int

const (
	NoConflict ConflictLevel = iota
	LoConflict
	HiConflict
)

// Edge is one search-frontier node: a route box together with the
// point on its perimeter the search reached it from, per spec §3.
//
// RouteBox is referenced by pointer rather than by arena index: Go's
// garbage collector already gives the per-search graph the "drop the
// whole generation on exit" behaviour spec §9 asks an arena for, so
// the only place this kernel actually needs index-based ownership is
// the same-net/same-subnet/original-subnet/different-net rings (see
// internal/arena), where splice order and cross-ring membership are
// semantically load-bearing, not just a memory-management detail.
type Edge struct {
	Box         *RouteBox
	Group       int
	CostPoint   geom.Point
	CostToPoint float64
	MincostTarget *RouteBox

	ExpandDir      geom.Direction
	ExpandAllSides bool
	IsVia          bool
	ViaConflictLevel ConflictLevel
	IsInterior     bool

	// Parent is the edge this one was spawned from, for trace-back;
	// nil for a source edge.
	Parent *Edge
}

// pointCost is the direction-penalised L1 distance spec §4.7
// describes: "even-layer-groups prefer horizontal runs, odd-layer-
// groups prefer vertical; each coordinate delta that moves in the
// non-preferred direction is multiplied by (1 + p_num/p_den)".
func pointCost(ctx *SearchContext, group int, from, to geom.Point) float64 {
	dx := float64(absInt32(to.X - from.X))
	dy := float64(absInt32(to.Y - from.Y))

	penalty := 1 + ctx.DirectionPenaltyNum/ctx.DirectionPenaltyDen
	preferHorizontal := group%2 == 0
	if preferHorizontal {
		dy *= penalty
	} else {
		dx *= penalty
	}
	return dx + dy
}

func absInt32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// edgeCost computes the total cost of moving from an edge's cost
// point to a candidate next point on group, optionally crossing a
// layer-group boundary (adds ViaCost) or a direction change from the
// parent edge (adds JogPenalty).
func edgeCost(ctx *SearchContext, fromGroup, toGroup int, from, to geom.Point, parentDir, newDir geom.Direction, hasParentDir bool) float64 {
	cost := pointCost(ctx, toGroup, from, to)
	if fromGroup != toGroup {
		cost += ctx.ViaCost
	}
	if hasParentDir && parentDir != newDir {
		cost += ctx.JogPenalty
	}
	return cost
}
