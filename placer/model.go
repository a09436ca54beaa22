package placer

import (
	"github.com/kestrelpcb/autoroute/board"
	"github.com/kestrelpcb/autoroute/geom"
)

// Model wraps a board and the subset of its components the placer is
// allowed to move (§5: "Placer: selected components' positions,
// rotations, side flags; no other state").
type Model struct {
	Board    *board.Board
	Selected []int // indices into Board.Components
}

// NewModel collects every component with Selected set.
func NewModel(b *board.Board) *Model {
	m := &Model{Board: b}
	for i, c := range b.Components {
		if c.Selected {
			m.Selected = append(m.Selected, i)
		}
	}
	return m
}

func pointBox(p geom.Point) geom.Box {
	return geom.NewBox(p.X, p.Y, p.X, p.Y)
}

func segmentBox(a, b geom.Point) geom.Box {
	return geom.NewBox(min32(a.X, b.X), min32(a.Y, b.Y), max32(a.X, b.X), max32(a.Y, b.Y))
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

// sidedBox tags a bloated region with the board side it occupies and
// the owning component's index, so overlap cost can skip
// same-component pairs.
type sidedBox struct {
	box       geom.Box
	side      board.Side
	component int
}

// componentRegions returns c's own-side bloated pin/pad regions and,
// separately, the unbloated pin footprints it contributes to the
// opposite side, per spec §4.4: "pins additionally contribute an
// unbloated footprint to the opposite side (surface-mount components
// may not overlap pins on the other side)". When fast is set
// (CostParameter.fast from autoplace.c, Config.Fast), the opposite-side
// contribution is skipped entirely, trading the SMD/pin conflict check
// away for speed on large boards.
func componentRegions(idx int, c board.Component, fast bool) (ownSide, oppositeSide []sidedBox) {
	for _, pin := range c.WorldPins() {
		bloat := pin.Thickness/2 + 2*pin.Clearance
		ownSide = append(ownSide, sidedBox{
			box:       pointBox(pin.Center).Bloat(bloat),
			side:      c.Side,
			component: idx,
		})
		if !fast {
			oppositeSide = append(oppositeSide, sidedBox{
				box:       pin.Box(),
				side:      c.Side.Opposite(),
				component: idx,
			})
		}
	}
	for _, pad := range c.WorldPads() {
		bloat := pad.Thickness/2 + 2*pad.Clearance
		ownSide = append(ownSide, sidedBox{
			box:       segmentBox(pad.A, pad.B).Bloat(bloat),
			side:      c.Side,
			component: idx,
		})
	}
	return ownSide, oppositeSide
}

// allRegions builds the combined own-side + opposite-side region list
// for every component in the model, used once per Cost evaluation.
func (m *Model) allRegions(fast bool) []sidedBox {
	var out []sidedBox
	for i, c := range m.Board.Components {
		own, opp := componentRegions(i, c, fast)
		out = append(out, own...)
		out = append(out, opp...)
	}
	return out
}
