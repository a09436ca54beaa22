package router

import (
	"github.com/kestrelpcb/autoroute/board"
	"github.com/kestrelpcb/autoroute/geom"
	"github.com/kestrelpcb/autoroute/internal/arena"
	"github.com/kestrelpcb/autoroute/mtspace"
	"github.com/kestrelpcb/autoroute/recttree"
)

// Session holds the state that persists across an entire auto_route
// call: one rect-tree per active layer group and one mtspace oracle per
// route style, shared by every route_one search and every pass of the
// multi-pass driver (spec §3: "Spatial index (rect-tree)... For each
// style the router precomputes... and owns one mtspace").
type Session struct {
	Board  *board.Board
	Trees  map[int]*recttree.Tree[*RouteBox]
	Spaces map[string]*mtspace.Space

	// fixed retains every fixed RouteBox this session created.
	fixed []*RouteBox

	// nets holds one same-net/same-subnet/original-subnet/different-net
	// arena per net, per spec §3: "a forest of subnets per physical net,
	// threaded as circular lists via the same-net/same-subnet rings."
	nets map[string]*arena.Arena[*RouteBox]

	// lineOwner/viaOwner record, in lockstep with Board.Lines/Board.Vias,
	// which net each entry belongs to, so the multi-pass driver's
	// rip-up step (§4.9 step 1) can discard exactly one net's geometry.
	lineOwner []string
	viaOwner  []string

	// lastPassCost is the previous pass's accumulated cost per net, the
	// key the driver's per-pass net ordering is negated-sorted by
	// (§4.9: "priority heap keyed by previous-pass cost, negated so the
	// most expensive is refined first").
	lastPassCost map[string]float64
}

// netArena returns (creating if necessary) the connectivity arena for
// net, shared by every trace materialised onto it across every pass.
func (s *Session) netArena(net string) *arena.Arena[*RouteBox] {
	if s.nets == nil {
		s.nets = make(map[string]*arena.Arena[*RouteBox])
	}
	a, ok := s.nets[net]
	if !ok {
		a = arena.New[*RouteBox](8)
		s.nets[net] = a
	}
	return a
}

// NewSession builds a rect-tree per active layer group and an
// mtspace oracle per route style from the board's current pins,
// pads, lines, vias, polygons, arcs, and text.
func NewSession(b *board.Board) *Session {
	s := &Session{
		Board:        b,
		Trees:        make(map[int]*recttree.Tree[*RouteBox]),
		Spaces:       make(map[string]*mtspace.Space),
		nets:         make(map[string]*arena.Arena[*RouteBox]),
		lastPassCost: make(map[string]float64),
	}

	for name := range b.Styles {
		s.Spaces[name] = mtspace.New()
	}

	var perGroup = make(map[int][]*RouteBox)
	addFixed := func(box geom.Box, group int, typ Type, style board.RouteStyle, net string) {
		rb := &RouteBox{Box: box, Group: group, Type: typ, Style: style, Net: net}
		rb.Flags.Fixed = true
		perGroup[group] = append(perGroup[group], rb)
		s.fixed = append(s.fixed, rb)
		if sp, ok := s.Spaces[style.Name]; ok {
			sp.Add(box, mtspace.Fixed, style.Bloat())
		}
	}

	defaultStyle := b.Styles[b.DefaultStyle]

	for _, c := range b.Components {
		for _, pin := range c.WorldPins() {
			for _, g := range b.LayerGroups {
				if g.Active() {
					addFixed(pin.Box(), g.Index, TypePin, defaultStyle, "")
				}
			}
		}
		for _, pad := range c.WorldPads() {
			group := groupForSide(b, pad.Side)
			addFixed(pad.Box(), group, TypePad, defaultStyle, "")
		}
	}
	for _, l := range b.Lines {
		style, _ := b.Style(l.Style)
		addFixed(l.Box(), l.LayerGroup, TypeLine, style, "")
	}
	for _, v := range b.Vias {
		style, _ := b.Style(v.Style)
		for _, g := range v.ActiveGroups {
			addFixed(v.Box(), g, TypeVia, style, "")
		}
	}
	for _, p := range b.Polygons {
		if !p.Clear {
			addFixed(p.Box(), p.LayerGroup, TypeOther, defaultStyle, "")
		}
	}
	for _, a := range b.Arcs {
		addFixed(a.Box(), a.LayerGroup, TypeOther, defaultStyle, "")
	}
	for _, tx := range b.Texts {
		addFixed(tx.Box(), tx.LayerGroup, TypeOther, defaultStyle, "")
	}

	for _, g := range b.LayerGroups {
		if !g.Active() {
			continue
		}
		s.Trees[g.Index] = recttree.Build(perGroup[g.Index])
	}

	return s
}

func groupForSide(b *board.Board, side board.Side) int {
	for _, g := range b.LayerGroups {
		if g.Side == side && g.Active() {
			return g.Index
		}
	}
	return 0
}
