package placer

import (
	"math"

	"github.com/kestrelpcb/autoroute/board"
	"github.com/kestrelpcb/autoroute/geom"
	"github.com/kestrelpcb/autoroute/internal/f32"
	"github.com/kestrelpcb/autoroute/internal/rand"
)

// Kind is which of the three perturbation operators spec §4.5 names.
type Kind int

const (
	Shift Kind = iota
	Rotate
	Exchange
)

// Perturbation records enough state to apply a move and, later, undo
// it exactly: apply(p, undo=false) followed by apply(p, undo=true)
// must compose to the identity on the board (§4.5, testable property
// #5).
type Perturbation struct {
	Kind Kind

	Component int
	PrevOrigin   geom.Point
	PrevRotation board.Rotation
	PrevSide     board.Side

	// Shift
	DX, DY int32

	// Rotate
	NewRotation board.Rotation
	FlipSide    bool

	// Exchange
	Partner           int
	PartnerPrevOrigin geom.Point
	PartnerPrevSide   board.Side
}

// Perturb picks one selected component uniformly and one of the three
// operators, building a reversible Perturbation. t is the current
// annealing temperature, used by Shift's magnitude formula.
func Perturb(m *Model, rnd *rand.Source, t float32, cfg Config) Perturbation {
	idx := m.Selected[rnd.IntN(len(m.Selected))]
	switch rnd.IntN(3) {
	case 0:
		return shiftPerturbation(m, rnd, idx, t, cfg)
	case 1:
		return rotatePerturbation(m, rnd, idx)
	default:
		return exchangePerturbation(m, rnd, idx)
	}
}

func shiftPerturbation(m *Model, rnd *rand.Source, idx int, t float32, cfg Config) Perturbation {
	c := m.Board.Components[idx]
	boardDim := float32(m.Board.Width)
	if m.Board.Height > m.Board.Width {
		boardDim = float32(m.Board.Height)
	}

	magnitude := f32.Max(250, f32.Min(f32.Sqrt(t), boardDim/3))

	grid := cfg.SmallGridSize
	if t > 1000 {
		grid = cfg.LargeGridSize
	}

	dx := snap(magnitude*float32(rnd.NormFloat64()), grid)
	dy := snap(magnitude*float32(rnd.NormFloat64()), grid)

	box := c.Box()
	newOrigin := c.Origin.Add(geom.Point{X: dx, Y: dy})
	newBox := geom.NewBox(newOrigin.X, newOrigin.Y, newOrigin.X+box.Width(), newOrigin.Y+box.Height())
	bounds := m.Board.Bounds()
	var clamped geom.Point
	if newBox.X1 < bounds.X1 {
		clamped.X = bounds.X1
	} else if newBox.X2 > bounds.X2 {
		clamped.X = bounds.X2 - box.Width()
	} else {
		clamped.X = newBox.X1
	}
	if newBox.Y1 < bounds.Y1 {
		clamped.Y = bounds.Y1
	} else if newBox.Y2 > bounds.Y2 {
		clamped.Y = bounds.Y2 - box.Height()
	} else {
		clamped.Y = newBox.Y1
	}

	return Perturbation{
		Kind:       Shift,
		Component:  idx,
		PrevOrigin: c.Origin,
		DX:         clamped.X - c.Origin.X,
		DY:         clamped.Y - c.Origin.Y,
	}
}

// snap rounds v to the nearest multiple of grid, away from zero on
// ties, per §4.5.
func snap(v float32, grid int32) int32 {
	scaled := v / float32(grid)
	rounded := math.Round(float64(scaled))
	return int32(rounded) * grid
}

func rotatePerturbation(m *Model, rnd *rand.Source, idx int) Perturbation {
	c := m.Board.Components[idx]

	p := Perturbation{
		Kind:         Rotate,
		Component:    idx,
		PrevRotation: c.Rotation,
		PrevSide:     c.Side,
	}

	if c.PureSMD && rnd.Bool() {
		p.FlipSide = true
		p.NewRotation = c.Rotation
		return p
	}

	options := []board.Rotation{board.Rot90, board.Rot180, board.Rot270}
	p.NewRotation = options[rnd.IntN(len(options))]
	return p
}

// exchangePerturbation picks a second selected component to swap
// positions with. If the through-hole component would land on the
// solder side only because its partner was there, the draw is
// rejected and redrawn. The partner is a random draw from the
// selected components (up to 8 attempts); only when no draw qualifies
// does pickExchangePartner fall back to the lowest-indexed other
// selected component — the tie-break decision recorded for spec §9's
// third open question.
func exchangePerturbation(m *Model, rnd *rand.Source, idx int) Perturbation {
	partner := pickExchangePartner(m, rnd, idx)
	a := m.Board.Components[idx]
	b := m.Board.Components[partner]

	return Perturbation{
		Kind:              Exchange,
		Component:         idx,
		PrevOrigin:        a.Origin,
		PrevSide:          a.Side,
		Partner:           partner,
		PartnerPrevOrigin: b.Origin,
		PartnerPrevSide:   b.Side,
	}
}

// pickExchangePartner tries random candidates until one doesn't
// violate the through-hole/solder-side rule; if none qualify, it
// deterministically falls back to the lowest-indexed selected
// component other than idx.
func pickExchangePartner(m *Model, rnd *rand.Source, idx int) int {
	a := m.Board.Components[idx]

	const maxAttempts = 8
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cand := m.Selected[rnd.IntN(len(m.Selected))]
		if cand == idx {
			continue
		}
		if exchangeViolatesThroughHoleRule(m, a, m.Board.Components[cand]) {
			continue
		}
		return cand
	}

	lowest := -1
	for _, j := range m.Selected {
		if j == idx {
			continue
		}
		if lowest == -1 || j < lowest {
			lowest = j
		}
	}
	return lowest
}

// exchangeViolatesThroughHoleRule reports whether swapping a and b
// would place a through-hole component on the solder side solely
// because its exchange partner currently occupies that side (§4.5).
func exchangeViolatesThroughHoleRule(m *Model, a, b board.Component) bool {
	if len(a.Pins) > 0 && b.Side == board.SolderSide && a.Side != board.SolderSide {
		return true
	}
	if len(b.Pins) > 0 && a.Side == board.SolderSide && b.Side != board.SolderSide {
		return true
	}
	return false
}

// Apply performs p on the board if undo is false, or reverses it if
// undo is true.
func Apply(m *Model, p Perturbation, undo bool) {
	switch p.Kind {
	case Shift:
		applyShift(m, p, undo)
	case Rotate:
		applyRotate(m, p, undo)
	case Exchange:
		applyExchange(m, p, undo)
	}
}

func applyShift(m *Model, p Perturbation, undo bool) {
	c := &m.Board.Components[p.Component]
	if undo {
		c.Origin = p.PrevOrigin
		return
	}
	c.Origin = geom.Point{X: p.PrevOrigin.X + p.DX, Y: p.PrevOrigin.Y + p.DY}
}

func applyRotate(m *Model, p Perturbation, undo bool) {
	c := &m.Board.Components[p.Component]
	if undo {
		c.Rotation = p.PrevRotation
		c.Side = p.PrevSide
		return
	}
	if p.FlipSide {
		c.Side = p.PrevSide.Opposite()
		return
	}
	c.Rotation = p.NewRotation
}

func applyExchange(m *Model, p Perturbation, undo bool) {
	a := &m.Board.Components[p.Component]
	b := &m.Board.Components[p.Partner]
	if undo {
		a.Origin, a.Side = p.PrevOrigin, p.PrevSide
		b.Origin, b.Side = p.PartnerPrevOrigin, p.PartnerPrevSide
		return
	}
	a.Origin, b.Origin = p.PartnerPrevOrigin, p.PrevOrigin
	if p.PrevSide != p.PartnerPrevSide {
		a.Side, b.Side = p.PartnerPrevSide, p.PrevSide
	}
}
