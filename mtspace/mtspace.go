// Package mtspace implements the multi-layer empty-space oracle the
// router consults before expanding an edge or dropping a via: given a
// query box and the current pass parity, it partitions the box's
// usable area into free, lo-conflict, and hi-conflict rectangles.
//
// One mtspace belongs to one route style (its via radius and keepaway
// are fixed for the oracle's lifetime), matching how routebox_t
// obstacles are bloated once by HALF_THICK-equivalent amounts in the
// C router rather than re-bloated per query.
package mtspace

import "github.com/kestrelpcb/autoroute/geom"

// Tag classifies an obstacle by when it became an obstacle, mirroring
// the routebox_t flags.fixed / flags.is_odd bookkeeping: fixed
// obstacles (board edges, existing copper outside this route) are
// never available to any pass; odd/even obstacles are this route's
// own work-in-progress lines, reclassified as "this pass" or "prior
// pass" depending on which pass is currently querying.
type Tag int

const (
	Fixed Tag = iota
	OddPass
	EvenPass
)

type obstacle struct {
	box geom.Box
}

// Space is a multi-layer empty-space oracle for one route style.
type Space struct {
	fixed []obstacle
	odd   []obstacle
	even  []obstacle
}

// New returns an empty oracle.
func New() *Space {
	return &Space{}
}

// Add records box, bloated by keepaway, as an obstacle tagged tag.
func (s *Space) Add(box geom.Box, tag Tag, keepaway int32) {
	bloated := box.Bloat(keepaway)
	switch tag {
	case Fixed:
		s.fixed = append(s.fixed, obstacle{bloated})
	case OddPass:
		s.odd = append(s.odd, obstacle{bloated})
	case EvenPass:
		s.even = append(s.even, obstacle{bloated})
	}
}

// Remove deletes the first obstacle tagged tag whose original box
// (before bloat) equals box. Reports whether an obstacle was removed.
func (s *Space) Remove(box geom.Box, tag Tag, keepaway int32) bool {
	bloated := box.Bloat(keepaway)
	bucket := s.bucket(tag)
	for i, o := range *bucket {
		if o.box == bloated {
			*bucket = append((*bucket)[:i], (*bucket)[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Space) bucket(tag Tag) *[]obstacle {
	switch tag {
	case Fixed:
		return &s.fixed
	case OddPass:
		return &s.odd
	default:
		return &s.even
	}
}

// Result is the partition of a query box's usable area returned by
// Query. Free, Lo, and Hi are pairwise disjoint and each rectangle
// lies entirely within the query box.
type Result struct {
	Free []geom.Box
	Lo   []geom.Box
	Hi   []geom.Box
}

// Query partitions q into free/lo/hi rectangles given which parity
// pass is currently routing. Fixed obstacles are excluded from the
// usable area entirely (never returned in any category); obstacles
// tagged with the current pass's parity classify as Hi, the opposite
// parity as Lo, matching CONFLICT_LEVEL's this-pass/previous-pass
// split in the reference router.
func (s *Space) Query(q geom.Box, isOddPass bool) Result {
	thisPass, priorPass := s.even, s.odd
	if isOddPass {
		thisPass, priorPass = s.odd, s.even
	}

	usable := subtractAll([]geom.Box{q}, s.fixed)
	hi, rest := splitByObstacles(usable, thisPass)
	lo, free := splitByObstacles(rest, priorPass)

	return Result{Free: free, Lo: lo, Hi: hi}
}

// subtractAll removes every obstacle's box from every piece,
// returning the disjoint remainder.
func subtractAll(pieces []geom.Box, obstacles []obstacle) []geom.Box {
	for _, o := range obstacles {
		var next []geom.Box
		for _, p := range pieces {
			if !p.Intersects(o.box) {
				next = append(next, p)
				continue
			}
			next = append(next, subtractBox(p, o.box)...)
		}
		pieces = next
	}
	return pieces
}

// splitByObstacles partitions pieces into the sub-rectangles that
// overlap some obstacle (matched) and the disjoint remainder that
// overlaps none (unmatched). Because each obstacle is only applied to
// what's left after the previous one, matched pieces from different
// obstacles never overlap each other either.
func splitByObstacles(pieces []geom.Box, obstacles []obstacle) (matched, unmatched []geom.Box) {
	remaining := pieces
	for _, o := range obstacles {
		var next []geom.Box
		for _, p := range remaining {
			clip, ok := p.Clip(o.box)
			if !ok {
				next = append(next, p)
				continue
			}
			matched = append(matched, clip)
			next = append(next, subtractBox(p, o.box)...)
		}
		remaining = next
	}
	return matched, remaining
}

// subtractBox returns p minus its intersection with obs as up to four
// disjoint rectangles (top, bottom, left, right strips around the
// intersection), or []geom.Box{p} if they don't overlap.
func subtractBox(p, obs geom.Box) []geom.Box {
	clip, ok := p.Clip(obs)
	if !ok {
		return []geom.Box{p}
	}

	var out []geom.Box
	if clip.Y1 > p.Y1 {
		out = append(out, geom.Box{X1: p.X1, Y1: p.Y1, X2: p.X2, Y2: clip.Y1})
	}
	if clip.Y2 < p.Y2 {
		out = append(out, geom.Box{X1: p.X1, Y1: clip.Y2, X2: p.X2, Y2: p.Y2})
	}
	if clip.X1 > p.X1 {
		out = append(out, geom.Box{X1: p.X1, Y1: clip.Y1, X2: clip.X1, Y2: clip.Y2})
	}
	if clip.X2 < p.X2 {
		out = append(out, geom.Box{X1: clip.X2, Y1: clip.Y1, X2: p.X2, Y2: clip.Y2})
	}
	return out
}
