package placer_test

import (
	"testing"

	"github.com/kestrelpcb/autoroute/board"
	"github.com/kestrelpcb/autoroute/geom"
	"github.com/kestrelpcb/autoroute/internal/rand"
	"github.com/kestrelpcb/autoroute/placer"
)

func threeOverlapping() *board.Board {
	mk := func(id string, origin geom.Point) board.Component {
		return board.Component{
			ID:       id,
			Name:     "R0805",
			Origin:   origin,
			Width:    100,
			Height:   100,
			Side:     board.ComponentSide,
			PureSMD:  true,
			Selected: true,
			Pads: []board.Pad{
				{ID: "1", A: geom.Point{X: 10, Y: 50}, B: geom.Point{X: 10, Y: 50}, Thickness: 20, Clearance: 5},
				{ID: "2", A: geom.Point{X: 90, Y: 50}, B: geom.Point{X: 90, Y: 50}, Thickness: 20, Clearance: 5},
			},
		}
	}

	return &board.Board{
		Width:  2000,
		Height: 2000,
		Components: []board.Component{
			mk("U1", geom.Point{X: 0, Y: 0}),
			mk("U2", geom.Point{X: 50, Y: 0}),
			mk("U3", geom.Point{X: 100, Y: 0}),
		},
		Styles:       map[string]board.RouteStyle{"default": {Thick: 10, Diameter: 40, Hole: 20, Keepaway: 10}},
		DefaultStyle: "default",
		Netlist: board.Netlist{Nets: []board.Net{
			{Name: "N1", Connections: []board.Connection{
				{Component: "U1", Terminal: "2"},
				{Component: "U2", Terminal: "1"},
			}},
		}},
	}
}

func TestPerturbationReversibility(t *testing.T) {
	b := threeOverlapping()
	m := placer.NewModel(b)
	rnd := rand.New(1)
	cfg := placer.DefaultConfig()

	for i := 0; i < 20; i++ {
		before := make([]board.Component, len(b.Components))
		copy(before, b.Components)

		p := placer.Perturb(m, rnd, 1000, cfg)
		placer.Apply(m, p, false)
		placer.Apply(m, p, true)

		for j, c := range b.Components {
			if c.Box() != before[j].Box() {
				t.Fatalf("perturbation %d on component %d: apply+undo changed box, got %s want %s", i, j, c.Box(), before[j].Box())
			}
		}
	}
}

func TestAnnealReducesOverlap(t *testing.T) {
	b := threeOverlapping()
	m := placer.NewModel(b)
	cfg := placer.DefaultConfig()

	initialOverlap := m.OverlapArea()
	if initialOverlap == 0 {
		t.Fatalf("fixture should start with overlapping components")
	}

	rnd := rand.New(42)
	placer.Anneal(m, cfg, rnd)

	finalOverlap := m.OverlapArea()
	if finalOverlap > initialOverlap {
		t.Errorf("overlap area grew during annealing: before=%v after=%v", initialOverlap, finalOverlap)
	}
}

func TestAnnealNoSelectedComponentsIsNoop(t *testing.T) {
	b := threeOverlapping()
	for i := range b.Components {
		b.Components[i].Selected = false
	}
	m := placer.NewModel(b)
	cfg := placer.DefaultConfig()
	rnd := rand.New(7)

	res := placer.Anneal(m, cfg, rnd)
	if res.Moved {
		t.Errorf("Anneal with no selected components should report no movement")
	}
}
