package board

import "github.com/kestrelpcb/autoroute/geom"

// Rotation is a component's orientation in 90-degree steps.
type Rotation int

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

// Component is the placer's movable unit: a footprint with a set of
// pins/pads attached, a position (bottom-left corner offset), a
// rotation, and a side. Only position, rotation, and side are mutable
// once the board is loaded (§5: "Placer: selected components'
// positions, rotations, side flags; no other state").
type Component struct {
	ID   string
	Name string

	// Origin is the component's bottom-left corner in board
	// coordinates; Width/Height are its footprint extent unrotated.
	Origin        geom.Point
	Width, Height int32
	Rotation      Rotation
	Side          Side

	// Pins/Pads list this component's own terminals, stored in the
	// component's local (unrotated, origin-relative) frame.
	Pins []Pin
	Pads []Pad

	// PureSMD is true when the component has only pads and no pins,
	// making flip-to-other-side a valid perturbation (§4.5).
	PureSMD bool

	Selected bool
}

// Box returns the component's footprint in board coordinates,
// accounting for rotation (90/270 swap width and height).
func (c Component) Box() geom.Box {
	w, h := c.Width, c.Height
	if c.Rotation == Rot90 || c.Rotation == Rot270 {
		w, h = h, w
	}
	return geom.NewBox(c.Origin.X, c.Origin.Y, c.Origin.X+w, c.Origin.Y+h)
}

// Center returns the footprint's centroid, used to break ties in
// neighbour search (§4.4).
func (c Component) Center() geom.Point {
	b := c.Box()
	return b.Center()
}

// WorldPins/WorldPads translate each local pin/pad centre into board
// coordinates given the component's current origin and rotation.
func (c Component) WorldPins() []Pin {
	out := make([]Pin, len(c.Pins))
	for i, p := range c.Pins {
		p.Center = c.toWorld(p.Center)
		out[i] = p
	}
	return out
}

func (c Component) WorldPads() []Pad {
	out := make([]Pad, len(c.Pads))
	for i, p := range c.Pads {
		p.A = c.toWorld(p.A)
		p.B = c.toWorld(p.B)
		p.Side = c.Side
		out[i] = p
	}
	return out
}

func (c Component) toWorld(local geom.Point) geom.Point {
	x, y := local.X, local.Y
	switch c.Rotation {
	case Rot90:
		x, y = -y, x
	case Rot180:
		x, y = -x, -y
	case Rot270:
		x, y = y, -x
	}
	return geom.Point{X: c.Origin.X + x, Y: c.Origin.Y + y}
}
