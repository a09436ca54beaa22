// Package board holds the immutable (w.r.t. the router's view) data
// model spec §3 describes: pins, pads, lines, polygons, arcs, text,
// layer groups, route styles, and the netlist, plus the Component
// type the placer moves.
package board

import "github.com/kestrelpcb/autoroute/geom"

// Board is the in-memory model the placer and router operate on.
// Everything here is immutable during placement/routing except
// Component positions (moved by the placer) and the Lines/Vias tables
// (appended by the router), matching spec §6's "External Interfaces".
type Board struct {
	Width, Height int32

	LayerGroups []LayerGroup
	Styles      map[string]RouteStyle
	DefaultStyle string

	Components []Component
	Polygons   []Polygon
	Arcs       []Arc
	Texts      []Text

	Netlist Netlist

	// Lines and Vias accumulate everything the router produces; each
	// append corresponds to one undo-list entry per spec §6.
	Lines []Line
	Vias  []Via

	Diagnostics Diagnostics
}

// Bounds returns the board's outline as a box anchored at the origin.
func (b *Board) Bounds() geom.Box {
	return geom.NewBox(0, 0, b.Width, b.Height)
}

// Style looks up a route style by name, falling back to the board's
// default style when name is empty.
func (b *Board) Style(name string) (RouteStyle, bool) {
	if name == "" {
		name = b.DefaultStyle
	}
	s, ok := b.Styles[name]
	return s, ok
}

// ActiveLayerGroups returns every layer group for which Active() is
// true, in index order.
func (b *Board) ActiveLayerGroups() []LayerGroup {
	var out []LayerGroup
	for _, g := range b.LayerGroups {
		if g.Active() {
			out = append(out, g)
		}
	}
	return out
}

// Severity classifies a Diagnostic's importance.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Diagnostic is one user-facing message produced while placing or
// routing, per spec §7 ("the router reports to the user and returns
// 'no change'; not a panic").
type Diagnostic struct {
	Severity  Severity
	Component string
	Message   string
}

// Diagnostics is an append-only sink of Diagnostic entries a caller
// can drain after auto_place_selected/auto_route returns.
type Diagnostics []Diagnostic

// Add appends a new diagnostic.
func (d *Diagnostics) Add(sev Severity, component, message string) {
	*d = append(*d, Diagnostic{Severity: sev, Component: component, Message: message})
}

// HasErrors reports whether any entry is Error severity.
func (d Diagnostics) HasErrors() bool {
	for _, entry := range d {
		if entry.Severity == Error {
			return true
		}
	}
	return false
}
