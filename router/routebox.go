// Package router implements the rectangle-expansion router of spec
// §4.7-4.10: a best-first search over axis-aligned expansion regions,
// via placement through mtspace, a multi-pass rip-up-and-retry
// driver, and path tracing/materialisation back onto the board.
package router

import (
	"github.com/kestrelpcb/autoroute/board"
	"github.com/kestrelpcb/autoroute/geom"
)

// Type is what kind of board entity (or search artifact) a RouteBox
// represents, per spec §3's route-box type enumeration.
type Type int

const (
	TypePad Type = iota
	TypePin
	TypeVia
	TypeViaShadow
	TypeLine
	TypeOther
	TypeExpansion
)

// Flags mirrors the route-box bit-field of spec §3.
type Flags struct {
	NonStraight          bool
	Fixed                bool
	Source               bool
	Target               bool
	NoBloat              bool
	Circular             bool
	Orphan               bool
	IsOdd                bool
	Touched              bool
	SubnetProcessed      bool
	IsVia                bool
	BottomLeftToTopRight bool
	ClearPoly            bool
	IsBad                bool
	Inited               bool
}

// RouteBox is the router's unified search-graph node: a board object
// (pad, pin, via, line, polygon/arc/text) or a search-time expansion
// region, per spec §3.
//
// Coordinate fields, once set, are frozen for the RouteBox's life
// (spec §3's first invariant); nothing in this package mutates Box
// after construction.
type RouteBox struct {
	Box   geom.Box
	Group int // layer-group index
	Type  Type
	Style board.RouteStyle
	Net   string
	Flags Flags

	// Parent is -1 on the expansion regions the search creates and
	// zero on every other route box; the search tracks predecessors
	// through Edge.Parent instead.
	Parent int

	// Underlying is not set by this package and stays zero.
	Underlying int
}

// Bounds implements recttree.Item.
func (rb *RouteBox) Bounds() geom.Box { return rb.Box }

// BloatedBox returns rb's box bloated by its style, unless NoBloat is
// set (source/target boxes never bloat, per spec §3).
func (rb *RouteBox) BloatedBox() geom.Box {
	if rb.Flags.NoBloat {
		return rb.Box
	}
	return rb.Box.Bloat(rb.Style.Bloat())
}
