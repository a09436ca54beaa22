package board

import "github.com/kestrelpcb/autoroute/geom"

// Shape is a pin's outline, used only to decide how trace_path
// inscribes the connection point (§4.8: "for circular terminals
// shrink the target by 1/5 of the smaller dimension").
type Shape int

const (
	Circular Shape = iota
	Square
	Octagonal
)

// Pin is fixed to every layer group (it pierces the board).
type Pin struct {
	ID        string
	Center    geom.Point
	Thickness int32
	Clearance int32
	Shape     Shape
}

// Box returns the pin's unbloated footprint box, centred on Center.
func (p Pin) Box() geom.Box {
	r := p.Thickness / 2
	return geom.NewBox(p.Center.X-r, p.Center.Y-r, p.Center.X+r, p.Center.Y+r)
}

// Pad is bound to one side and thus one layer group.
type Pad struct {
	ID        string
	A, B      geom.Point
	Thickness int32
	Clearance int32
	Side      Side
}

// Box returns the pad's unbloated footprint: the capsule between A
// and B, approximated (as the router does throughout) by its
// bounding box.
func (p Pad) Box() geom.Box {
	r := p.Thickness / 2
	x1, y1 := p.A.X, p.A.Y
	x2, y2 := p.B.X, p.B.Y
	return geom.NewBox(min32(x1, x2)-r, min32(y1, y2)-r, max32(x1, x2)+r, max32(y1, y2)+r)
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

// Line is a two-endpoint trace on one layer, orthogonal or diagonal.
type Line struct {
	ID         string
	A, B       geom.Point
	Thickness  int32
	Clearance  int32
	LayerGroup int
	Style      string
	Auto       bool // auto-routed marker, per spec §6

	// Diagonal and BottomLeftToTopRight record non-45/90-degree
	// bookkeeping recovered from autoroute.c's RD_DrawLine: a diagonal
	// line's corner order disambiguates which way its 45-degree knee
	// bends, which the smoothing pass (§4.8) needs to reconstruct.
	Diagonal           bool
	BottomLeftToTopRight bool
}

// Box returns the line's bounding box, which is what the router and
// rect-tree operate on (§3: "whose bounding box is used for routing").
func (l Line) Box() geom.Box {
	r := l.Thickness / 2
	return geom.NewBox(
		min32(l.A.X, l.B.X)-r, min32(l.A.Y, l.B.Y)-r,
		max32(l.A.X, l.B.X)+r, max32(l.A.Y, l.B.Y)+r,
	)
}

// Via is a routed layer transition. The ViaShadow type below is
// recovered from autoroute.c's VIA_SHADOW route-box type; the router
// package does not build ViaShadow entries and instead indexes a
// TypeVia route box with the via's full footprint on every group in
// ActiveGroups.
type Via struct {
	ID       string
	Center   geom.Point
	Diameter int32
	Hole     int32
	Keepaway int32
	Style    string
	Auto     bool

	// ActiveGroups lists every layer group the via actually connects.
	ActiveGroups []int
}

// Box returns the via's unbloated footprint.
func (v Via) Box() geom.Box {
	r := v.Diameter / 2
	return geom.NewBox(v.Center.X-r, v.Center.Y-r, v.Center.X+r, v.Center.Y+r)
}

// ViaShadow is a per-group stand-in for a Via indexed on a layer
// group's rect-tree other than the first.
type ViaShadow struct {
	Via        *Via
	LayerGroup int
}

func (s ViaShadow) Box() geom.Box { return s.Via.Box() }

// Polygon is an irregular obstacle whose bounding box is used for
// routing; a Clear polygon is transparent to via placement, per §3
// and the clear-poly bookkeeping in autoroute.c.
type Polygon struct {
	ID         string
	Bounds     geom.Box
	LayerGroup int
	Clear      bool
}

func (p Polygon) Box() geom.Box { return p.Bounds }

// Arc is an irregular obstacle; only its bounding box matters to the
// router (§3).
type Arc struct {
	ID         string
	Bounds     geom.Box
	LayerGroup int
}

func (a Arc) Box() geom.Box { return a.Bounds }

// Text is an irregular silkscreen/label obstacle; its bounding box is
// used for routing like Polygon/Arc.
type Text struct {
	ID         string
	Bounds     geom.Box
	LayerGroup int
}

func (t Text) Box() geom.Box { return t.Bounds }
