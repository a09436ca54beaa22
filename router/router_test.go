package router_test

import (
	"testing"

	"github.com/kestrelpcb/autoroute/board"
	"github.com/kestrelpcb/autoroute/geom"
	"github.com/kestrelpcb/autoroute/router"
)

func simpleStyle() board.RouteStyle {
	return board.RouteStyle{Name: "default", Thick: 10, Diameter: 40, Hole: 20, Keepaway: 10}
}

func oneLayerBoard() *board.Board {
	return &board.Board{
		Width:  10000,
		Height: 10000,
		LayerGroups: []board.LayerGroup{
			{Index: 0, Side: board.ComponentSide, Layers: []int{0}, On: []bool{true}},
		},
		Styles:       map[string]board.RouteStyle{"default": simpleStyle()},
		DefaultStyle: "default",
		Netlist: board.Netlist{Nets: []board.Net{
			{Name: "NET1", Connections: []board.Connection{
				{Component: "U1", Terminal: "1", Point: geom.Point{X: 1000, Y: 1000}, LayerGroup: 0},
				{Component: "U2", Terminal: "1", Point: geom.Point{X: 5000, Y: 1000}, LayerGroup: 0},
			}},
		}},
	}
}

func twoLayerBoard() *board.Board {
	b := oneLayerBoard()
	b.LayerGroups = append(b.LayerGroups, board.LayerGroup{Index: 1, Side: board.SolderSide, Layers: []int{1}, On: []bool{true}})
	b.Netlist.Nets[0].Connections[1] = board.Connection{
		Component: "U2", Terminal: "1", Point: geom.Point{X: 5000, Y: 1000}, LayerGroup: 1,
	}
	return b
}

// TestRouteOneConnectsSimpleNet exercises spec §8's S1: a single clear
// trace between two terminals on the same layer group succeeds on
// pass 0.
func TestRouteOneConnectsSimpleNet(t *testing.T) {
	b := oneLayerBoard()
	sess := router.NewSession(b)
	style := simpleStyle()
	ctx := router.PassContext(0)

	from := &router.RouteBox{Box: geom.NewBox(1000, 1000, 1001, 1001), Group: 0, Type: router.TypePad}
	from.Flags.NoBloat = true
	to := &router.RouteBox{Box: geom.NewBox(5000, 1000, 5001, 1001), Group: 0, Type: router.TypePad}
	to.Flags.NoBloat = true

	_, _, ok := router.RouteOne(sess, &ctx, style, "NET1", []*router.RouteBox{from}, []*router.RouteBox{to})
	if !ok {
		t.Fatal("expected a clear-board route to succeed")
	}
	if len(b.Lines) == 0 {
		t.Fatal("expected RouteOne to materialise at least one line on success")
	}
}

// TestRouteOneRequiresVia exercises spec §8's S2: terminals on
// different layer groups must be joined by a via.
func TestRouteOneRequiresVia(t *testing.T) {
	b := twoLayerBoard()
	sess := router.NewSession(b)
	style := simpleStyle()
	ctx := router.PassContext(0)

	from := &router.RouteBox{Box: geom.NewBox(1000, 1000, 1001, 1001), Group: 0, Type: router.TypePad}
	from.Flags.NoBloat = true
	to := &router.RouteBox{Box: geom.NewBox(5000, 1000, 5001, 1001), Group: 1, Type: router.TypePad}
	to.Flags.NoBloat = true

	_, vias, ok := router.RouteOne(sess, &ctx, style, "NET1", []*router.RouteBox{from}, []*router.RouteBox{to})
	if !ok {
		t.Fatal("expected a cross-group route to succeed")
	}
	if len(vias) == 0 && len(b.Vias) == 0 {
		t.Fatal("expected a via when source and target are on different layer groups")
	}
}

// TestRunSingleTerminalNetIsNoop exercises spec §8's S3: a
// net whose single connection can never form a path (fewer than two
// terminals) is a no-op, not a panic or false conflict.
func TestRunSingleTerminalNetIsNoop(t *testing.T) {
	b := oneLayerBoard()
	b.Netlist.Nets[0].Connections = b.Netlist.Nets[0].Connections[:1]
	sess := router.NewSession(b)

	if err := router.Run(sess, router.DefaultConfig()); err != nil {
		t.Fatalf("single-terminal net should not report a conflict: %v", err)
	}
}

// TestRunConnectsSimpleNet drives the full multi-pass entry point for
// the same clear two-terminal net as TestRouteOneConnectsSimpleNet.
func TestRunConnectsSimpleNet(t *testing.T) {
	b := oneLayerBoard()
	sess := router.NewSession(b)

	if err := router.Run(sess, router.DefaultConfig()); err != nil {
		t.Fatalf("Run returned an error for a clear two-terminal net: %v", err)
	}
	if len(b.Lines) == 0 {
		t.Fatal("expected Run to have materialised at least one line")
	}
}

// TestRunDoesNotDoubleRouteOnSmoothingPass exercises spec §8's S5: the
// Limit-indexed smoothing pass must rip up and discard the conflict
// loop's committed trace before re-routing, never leaving both behind.
// A single-hop net's trace is always exactly two lines here (the hop
// is axis-aligned, so smoothedSegments' diagonal degenerates back to a
// plain two-segment knee) — if finishWithSmoothing ever re-routed on
// top of an already-committed trace instead of ripping it up first,
// this count would double.
func TestRunDoesNotDoubleRouteOnSmoothingPass(t *testing.T) {
	b := oneLayerBoard()
	sess := router.NewSession(b)

	if err := router.Run(sess, router.DefaultConfig()); err != nil {
		t.Fatalf("Run returned an error for a clear two-terminal net: %v", err)
	}
	if len(b.Lines) != 2 {
		t.Fatalf("expected exactly 2 committed lines for one routed hop, got %d (duplicate route geometry?)", len(b.Lines))
	}
	if len(b.Vias) != 0 {
		t.Fatalf("expected no vias for a same-layer-group hop, got %d", len(b.Vias))
	}
}

// TestSmoothingOnlyOnFinalPass exercises spec §8's S6: trace.go's
// 45-degree diagonal knee must appear only under IsSmoothing, i.e.
// only for router.PassContext(router.Limit), never for an earlier
// conflict pass, and it must actually appear there for a genuinely
// non-axis-aligned hop.
func TestSmoothingOnlyOnFinalPass(t *testing.T) {
	style := simpleStyle()

	route := func(ctx router.SearchContext) []board.Line {
		b := oneLayerBoard()
		b.Netlist.Nets[0].Connections[1].Point = geom.Point{X: 5000, Y: 4000}
		sess := router.NewSession(b)

		from := &router.RouteBox{Box: geom.NewBox(1000, 1000, 1001, 1001), Group: 0, Type: router.TypePad}
		from.Flags.NoBloat = true
		to := &router.RouteBox{Box: geom.NewBox(5000, 4000, 5001, 4001), Group: 0, Type: router.TypePad}
		to.Flags.NoBloat = true

		_, _, ok := router.RouteOne(sess, &ctx, style, "NET1", []*router.RouteBox{from}, []*router.RouteBox{to})
		if !ok {
			t.Fatal("expected a clear-board diagonal route to succeed")
		}
		return b.Lines
	}

	for _, ln := range route(router.PassContext(0)) {
		if ln.Diagonal {
			t.Fatal("a non-smoothing pass must never emit a diagonal knee")
		}
	}

	found := false
	for _, ln := range route(router.PassContext(router.Limit)) {
		if ln.Diagonal {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected the smoothing pass to emit a diagonal knee for a non-axis-aligned hop")
	}
}
