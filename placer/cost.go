package placer

import (
	"github.com/kestrelpcb/autoroute/board"
	"github.com/kestrelpcb/autoroute/geom"
	"github.com/kestrelpcb/autoroute/internal/f32"
)

// Cost evaluates the five-term-minus-bonus objective of spec §4.4 at
// temperature t against reference temperature t0.
func (m *Model) Cost(cfg Config, t, t0 float32) float32 {
	w := m.wireCost(cfg)
	congestion := cfg.CongestionPenalty * m.congestionArea()
	overlap := m.overlapPenalty(cfg, t, t0) * m.overlapArea(cfg.Fast)
	oob := cfg.OutOfBoundsPenalty * float32(m.outOfBoundsCount())
	bonus := m.alignmentBonus(cfg)
	area := cfg.OverallAreaPenalty * m.boundingArea()

	return w + congestion + overlap + oob + area - bonus
}

// wireCost sums each net's half-perimeter plus a via penalty for
// nets that are entirely SMD pads split across both sides (§4.4: "W").
func (m *Model) wireCost(cfg Config) float32 {
	terms := make([]float32, 0, len(m.Board.Netlist.Nets))
	for _, net := range m.Board.Netlist.Nets {
		if len(net.Connections) == 0 {
			continue
		}
		first := m.connectionPoint(net.Connections[0])
		minX, minY := first.X, first.Y
		maxX, maxY := minX, minY
		allPad, allSameSide := true, true
		var side board.Side
		for i, conn := range net.Connections {
			p := m.connectionPoint(conn)
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}

			c, ok := m.componentOf(conn.Component)
			if !ok {
				continue
			}
			if len(c.Pins) > 0 {
				allPad = false
			}
			if i == 0 {
				side = c.Side
			} else if c.Side != side {
				allSameSide = false
			}
		}

		term := float32(maxX-minX) + float32(maxY-minY)
		if allPad && !allSameSide {
			term += cfg.ViaCost
		}
		terms = append(terms, term)
	}
	return f32.Sum(terms)
}

func (m *Model) componentOf(id string) (board.Component, bool) {
	for _, c := range m.Board.Components {
		if c.ID == id {
			return c, true
		}
	}
	return board.Component{}, false
}

// connectionPoint resolves a net connection to its current world
// point, tracking whichever component it belongs to as that
// component moves.
func (m *Model) connectionPoint(conn board.Connection) geom.Point {
	c, ok := m.componentOf(conn.Component)
	if !ok {
		return conn.Point
	}
	for _, pin := range c.WorldPins() {
		if pin.ID == conn.Terminal {
			return pin.Center
		}
	}
	for _, pad := range c.WorldPads() {
		if pad.ID == conn.Terminal {
			return geom.Point{X: (pad.A.X + pad.B.X) / 2, Y: (pad.A.Y + pad.B.Y) / 2}
		}
	}
	return conn.Point
}

// netBox returns the bounding box of a net's current connection
// points.
func (m *Model) netBox(net board.Net) (geom.Box, bool) {
	if len(net.Connections) == 0 {
		return geom.Box{}, false
	}
	p0 := m.connectionPoint(net.Connections[0])
	box := geom.NewBox(p0.X, p0.Y, p0.X, p0.Y)
	for _, conn := range net.Connections[1:] {
		p := m.connectionPoint(conn)
		box = box.Union(geom.NewBox(p.X, p.Y, p.X, p.Y))
	}
	return box, true
}

// congestionArea is §4.4's δ1: the pairwise intersection area (per
// spec.md's glossary, total covered area with multiplicity minus the
// union area) of every net's bounding rectangle.
func (m *Model) congestionArea() float32 {
	boxes := make([]geom.Box, 0, len(m.Board.Netlist.Nets))
	for _, net := range m.Board.Netlist.Nets {
		if b, ok := m.netBox(net); ok {
			boxes = append(boxes, b)
		}
	}
	return float32(excessCoverageArea(boxes))
}

// overlapPenalty interpolates between the minimum and maximum overlap
// weight as temperature falls toward zero, per §4.4's δ2 coefficient:
// "(c2 + (1-T/T0)*c2max)".
func (m *Model) overlapPenalty(cfg Config, t, t0 float32) float32 {
	if t0 <= 0 {
		return cfg.OverlapPenaltyMin + cfg.OverlapPenaltyMax
	}
	return cfg.OverlapPenaltyMin + (1-t/t0)*cfg.OverlapPenaltyMax
}

// OverlapArea exposes the overlap cost contribution (§4.4's δ2 area
// term, before weighting) for testing the monotone-freezing property
// of spec §8.
func (m *Model) OverlapArea() float32 {
	return m.overlapArea(false)
}

// overlapArea is §4.4's δ2: the pairwise intersection area (per
// spec.md's glossary, multiplicity minus union) between regions
// belonging to different components on the same side. A component's
// own regions never count against each other (a footprint's pads are
// expected to sit close together), so each component's regions are
// first collapsed to their own union per side; only the excess of
// "sum of per-component unions" over "union of everything on that
// side" reflects area genuinely double-covered by two or more
// distinct components. fast skips the opposite-side footprint
// contribution entirely (Config.Fast).
func (m *Model) overlapArea(fast bool) float32 {
	regions := m.allRegions(fast)

	bySide := make(map[board.Side][]sidedBox)
	for _, r := range regions {
		bySide[r.side] = append(bySide[r.side], r)
	}

	var total float64
	for _, sideRegions := range bySide {
		byComponent := make(map[int][]geom.Box)
		allBoxes := make([]geom.Box, 0, len(sideRegions))
		for _, r := range sideRegions {
			byComponent[r.component] = append(byComponent[r.component], r.box)
			allBoxes = append(allBoxes, r.box)
		}

		var perComponentUnion float64
		for _, boxes := range byComponent {
			perComponentUnion += unionArea(boxes)
		}
		total += perComponentUnion - unionArea(allBoxes)
	}
	return float32(total)
}

// outOfBoundsCount counts components whose footprint escapes the
// board, §4.4's δ3.
func (m *Model) outOfBoundsCount() int {
	bounds := m.Board.Bounds()
	n := 0
	for _, i := range m.Selected {
		if !m.Board.Components[i].Box().In(bounds) {
			n++
		}
	}
	return n
}

// boundingArea returns the area of the bounding box of every selected
// component, §4.4's δ5.
func (m *Model) boundingArea() float32 {
	if len(m.Selected) == 0 {
		return 0
	}
	box := m.Board.Components[m.Selected[0]].Box()
	for _, i := range m.Selected[1:] {
		box = box.Union(m.Board.Components[i].Box())
	}
	return float32(box.Area())
}
