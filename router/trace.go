package router

import (
	"github.com/kestrelpcb/autoroute/board"
	"github.com/kestrelpcb/autoroute/geom"
	"github.com/kestrelpcb/autoroute/internal/arena"
	"github.com/kestrelpcb/autoroute/mtspace"
)

// Trace is the materialised result of one successful route_one call:
// the lines and vias trace_path (§4.8) emits, in source-to-target
// order.
type Trace struct {
	Lines []board.Line
	Vias  []board.Via
}

// materialize walks the winning edge chain back to its source and
// emits a two-segment Manhattan knee between every consecutive pair of
// cost points (or, on the smoothing pass, a 45-degree diagonal across
// the knee), plus a via at every layer-group transition, per spec
// §4.8's trace_path.
func materialize(state *searchState, winner *Edge, style board.RouteStyle) Trace {
	var t Trace

	hops := edgeChain(winner)
	if len(hops) < 2 {
		return t
	}

	points := make([]geom.Point, len(hops))
	for i, e := range hops {
		points[i] = e.CostPoint
	}

	// Steps 1 and 4: inscribe circular terminals so the connection
	// lands well inside the pad/pin instead of at its bounding-box
	// edge.
	if hops[0].Box.Flags.Circular {
		points[0] = inscribe(hops[0].Box.Box, points[0])
	}
	last := len(hops) - 1
	if hops[last].Box.Flags.Circular {
		points[last] = inscribe(hops[last].Box.Box, points[last])
	}

	for i := 0; i+1 < len(hops); i++ {
		from, to := hops[i], hops[i+1]
		knee := manhattanKnee(points[i], points[i+1], from.Box.Box, to.Box.Box)

		if state.ctx.IsSmoothing {
			t.Lines = append(t.Lines, smoothedSegments(points[i], knee, points[i+1], from.Group, style)...)
		} else {
			t.Lines = append(t.Lines,
				segment(points[i], knee, from.Group, style),
				segment(knee, points[i+1], from.Group, style),
			)
		}

		if to.IsVia {
			var groups []int
			for _, g := range state.sess.Board.ActiveLayerGroups() {
				groups = append(groups, g.Index)
			}
			t.Vias = append(t.Vias, board.Via{
				Center:       points[i+1],
				Diameter:     style.Diameter,
				Hole:         style.Hole,
				Keepaway:     style.Keepaway,
				Style:        style.Name,
				Auto:         true,
				ActiveGroups: groups,
			})
		}
	}

	return t
}

func edgeChain(winner *Edge) []*Edge {
	var chain []*Edge
	for e := winner; e != nil; e = e.Parent {
		chain = append([]*Edge{e}, chain...)
	}
	return chain
}

// inscribe pulls p toward box's centre by 1/5 of its smaller
// dimension, per §4.8's circular-terminal rule.
func inscribe(box geom.Box, p geom.Point) geom.Point {
	smaller := box.Width()
	if box.Height() < smaller {
		smaller = box.Height()
	}
	shrink := smaller / 5
	center := box.Center()
	return geom.Point{X: moveToward(p.X, center.X, shrink), Y: moveToward(p.Y, center.Y, shrink)}
}

func moveToward(v, target, amount int32) int32 {
	if v < target {
		v += amount
		if v > target {
			v = target
		}
		return v
	}
	if v > target {
		v -= amount
		if v < target {
			v = target
		}
	}
	return v
}

// manhattanKnee picks the two-segment path's corner, per §4.8's "the
// knee must lie in either the previous or the new box": the
// horizontal-first corner if it lies in prevBox or newBox, else the
// vertical-first corner if that one does, else horizontal-first.
func manhattanKnee(from, to geom.Point, prevBox, newBox geom.Box) geom.Point {
	horizontalFirst := geom.Point{X: to.X, Y: from.Y}
	if prevBox.PointIn(horizontalFirst) || newBox.PointIn(horizontalFirst) {
		return horizontalFirst
	}
	verticalFirst := geom.Point{X: from.X, Y: to.Y}
	if prevBox.PointIn(verticalFirst) || newBox.PointIn(verticalFirst) {
		return verticalFirst
	}
	return horizontalFirst
}

func segment(a, b geom.Point, group int, style board.RouteStyle) board.Line {
	return board.Line{A: a, B: b, Thickness: style.Thick, Clearance: style.Keepaway, LayerGroup: group, Style: style.Name, Auto: true}
}

// smoothedSegments inserts a 45-degree diagonal across the knee, per
// §4.8 step 5: length min(|Δx|,|Δy|) on either side. The cut is not
// clamped to the box containing the knee; no box is consulted here.
//
// manhattanKnee always places knee on the same Y as from (a horizontal
// run into the knee, then a vertical run out of it) or the same X as
// from (the reverse): exactly one of the two runs carries the whole
// |Δx| and the other carries the whole |Δy|, so the cut length is
// min(|Δx|,|Δy|) measured end-to-end, not per run.
func smoothedSegments(from, knee, to geom.Point, group int, style board.RouteStyle) []board.Line {
	dx, dy := to.X-from.X, to.Y-from.Y

	diag := minAbs32(dx, dy)
	if diag == 0 {
		return []board.Line{segment(from, knee, group, style), segment(knee, to, group, style)}
	}

	var a, b geom.Point
	if knee.Y == from.Y {
		a = geom.Point{X: knee.X - sign32(dx)*diag, Y: knee.Y}
		b = geom.Point{X: knee.X, Y: knee.Y + sign32(dy)*diag}
	} else {
		a = geom.Point{X: knee.X, Y: knee.Y - sign32(dy)*diag}
		b = geom.Point{X: knee.X + sign32(dx)*diag, Y: knee.Y}
	}

	diagonal := segment(a, b, group, style)
	diagonal.Diagonal = true
	diagonal.BottomLeftToTopRight = (sign32(dx) > 0) == (sign32(dy) < 0)

	return []board.Line{segment(from, a, group, style), diagonal, segment(b, to, group, style)}
}

func minAbs32(a, b int32) int32 {
	aa, bb := absInt32(a), absInt32(b)
	if aa < bb {
		return aa
	}
	return bb
}

func sign32(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// commitTrace registers every line and via in t onto the session's
// per-layer-group trees and mtspace oracles (tagged with this pass's
// parity), appends them to the board, and threads their route boxes
// onto the net's same-net ring (§4.8's "recorded on the from-net's
// same-net/same-subnet lists").
func commitTrace(state *searchState, t Trace) {
	na := state.sess.netArena(state.net)
	anchor := -1
	link := func(idx int) {
		if anchor < 0 {
			anchor = idx
			return
		}
		na.Merge(arena.SameNet, anchor, idx)
	}

	tag := mtspace.EvenPass
	if state.ctx.IsOdd {
		tag = mtspace.OddPass
	}

	for _, ln := range t.Lines {
		state.sess.Board.Lines = append(state.sess.Board.Lines, ln)
		state.sess.lineOwner = append(state.sess.lineOwner, state.net)
		rb := &RouteBox{Box: ln.Box(), Group: ln.LayerGroup, Type: TypeLine, Style: state.style, Net: state.net}
		rb.Flags.IsOdd = state.ctx.IsOdd
		if tree, ok := state.sess.Trees[ln.LayerGroup]; ok {
			tree.Insert(rb)
		}
		if sp, ok := state.sess.Spaces[state.style.Name]; ok {
			sp.Add(rb.Box, tag, state.style.Keepaway)
		}
		link(na.Add(rb))
	}

	for _, v := range t.Vias {
		state.sess.Board.Vias = append(state.sess.Board.Vias, v)
		state.sess.viaOwner = append(state.sess.viaOwner, state.net)
		for _, g := range state.sess.Board.ActiveLayerGroups() {
			rb := &RouteBox{Box: v.Box(), Group: g.Index, Type: TypeVia, Style: state.style, Net: state.net}
			rb.Flags.IsVia = true
			rb.Flags.IsOdd = state.ctx.IsOdd
			if tree, ok := state.sess.Trees[g.Index]; ok {
				tree.Insert(rb)
			}
			if sp, ok := state.sess.Spaces[state.style.Name]; ok {
				sp.Add(rb.Box, tag, state.style.Keepaway)
			}
			link(na.Add(rb))
		}
	}
}
