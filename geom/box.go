// Package geom provides the box algebra and direction normalisation
// the router and placer build on: axis-aligned integer rectangles,
// clearance bloat/shrink, and the rotate-to-north trick that collapses
// four-way case analysis onto a single code path.
package geom

import "fmt"

// Box is a half-open axis-aligned rectangle: closed on the top and
// left, open on the bottom and right. Exclusion zones (clearance
// areas) are bumped by +1 on X2/Y2 so that the set of integer points
// they cover matches the closed-rectangle form described in the data
// model.
type Box struct {
	X1, Y1, X2, Y2 int32
}

// NewBox returns the box with corners normalised so that X1<=X2 and
// Y1<=Y2.
func NewBox(x1, y1, x2, y2 int32) Box {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Box{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns X2-X1
func (b Box) Width() int32 { return b.X2 - b.X1 }

// Height returns Y2-Y1
func (b Box) Height() int32 { return b.Y2 - b.Y1 }

// Empty reports whether the box covers no area
func (b Box) Empty() bool { return b.X1 >= b.X2 || b.Y1 >= b.Y2 }

// Area returns the (half-open) area of the box, 0 if empty
func (b Box) Area() int64 {
	if b.Empty() {
		return 0
	}
	return int64(b.Width()) * int64(b.Height())
}

// Center returns the box's geometric center, truncated toward X1/Y1
func (b Box) Center() Point {
	return Point{X: (b.X1 + b.X2) / 2, Y: (b.Y1 + b.Y2) / 2}
}

// Bloat expands b by d in every direction
func (b Box) Bloat(d int32) Box {
	return Box{X1: b.X1 - d, Y1: b.Y1 - d, X2: b.X2 + d, Y2: b.Y2 + d}
}

// Shrink contracts b by d in every direction. The inverse of Bloat:
// Bloat(Shrink(b, d), d) == b whenever b is at least 2d wide and tall.
func (b Box) Shrink(d int32) Box {
	return Box{X1: b.X1 + d, Y1: b.Y1 + d, X2: b.X2 - d, Y2: b.Y2 - d}
}

// Union returns the smallest box containing both a and b
func (a Box) Union(b Box) Box {
	return Box{
		X1: min32(a.X1, b.X1),
		Y1: min32(a.Y1, b.Y1),
		X2: max32(a.X2, b.X2),
		Y2: max32(a.Y2, b.Y2),
	}
}

// Clip returns the intersection of a and b. The caller must check
// ok (via Empty, generally) before using the result: an empty
// intersection is returned with ok=false and arbitrary coordinates.
func (a Box) Clip(b Box) (Box, bool) {
	r := Box{
		X1: max32(a.X1, b.X1),
		Y1: max32(a.Y1, b.Y1),
		X2: min32(a.X2, b.X2),
		Y2: min32(a.Y2, b.Y2),
	}
	return r, !r.Empty()
}

// Intersects reports whether a and b overlap in a non-degenerate area
func (a Box) Intersects(b Box) bool {
	return a.X1 < b.X2 && b.X1 < a.X2 && a.Y1 < b.Y2 && b.Y1 < a.Y2
}

// In reports whether b lies entirely inside outer
func (b Box) In(outer Box) bool {
	return outer.X1 <= b.X1 && b.X2 <= outer.X2 &&
		outer.Y1 <= b.Y1 && b.Y2 <= outer.Y2
}

// PointIn reports whether p lies inside b, honoring the half-open
// convention (top/left closed, bottom/right open)
func (b Box) PointIn(p Point) bool {
	return b.X1 <= p.X && p.X < b.X2 && b.Y1 <= p.Y && p.Y < b.Y2
}

// ClosestPoint clamps p into b under the L1 metric. It is the
// identity when p already lies inside b.
func (b Box) ClosestPoint(p Point) Point {
	return Point{
		X: clamp32(p.X, b.X1, b.X2-1),
		Y: clamp32(p.Y, b.Y1, b.Y2-1),
	}
}

func (b Box) String() string {
	return fmt.Sprintf("[(%d,%d)-(%d,%d)]", b.X1, b.Y1, b.X2, b.Y2)
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
