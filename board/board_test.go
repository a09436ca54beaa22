package board_test

import (
	"errors"
	"testing"

	"github.com/kestrelpcb/autoroute/board"
)

func TestRouteStyleBloat(t *testing.T) {
	s := board.RouteStyle{Thick: 10, Diameter: 40, Hole: 20, Keepaway: 10}
	if got, want := s.Bloat(), int32(30); got != want {
		t.Errorf("Bloat() = %d, want %d", got, want)
	}
}

func TestRouteStyleValid(t *testing.T) {
	bad := board.RouteStyle{Thick: 0, Diameter: 40, Hole: 20, Keepaway: 10}
	if bad.Valid() {
		t.Errorf("style with zero thickness should be invalid")
	}

	good := board.RouteStyle{Thick: 10, Diameter: 40, Hole: 20, Keepaway: 10}
	if !good.Valid() {
		t.Errorf("fully-specified style should be valid")
	}
}

func TestValidateRejectsEmptyNetlist(t *testing.T) {
	b := &board.Board{
		Styles:      map[string]board.RouteStyle{"default": {Thick: 10, Diameter: 40, Hole: 20, Keepaway: 10}},
		DefaultStyle: "default",
	}

	err := b.Validate()
	var cfgErr *board.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Validate() = %v, want a *ConfigError", err)
	}
}

func TestValidateRejectsBadStyle(t *testing.T) {
	b := &board.Board{
		Styles: map[string]board.RouteStyle{
			"thin": {Thick: 0, Diameter: 40, Hole: 20, Keepaway: 10},
		},
		DefaultStyle: "thin",
		Netlist: board.Netlist{Nets: []board.Net{{Name: "N1"}}},
	}

	err := b.Validate()
	var cfgErr *board.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Validate() = %v, want a *ConfigError", err)
	}
	if cfgErr.Style != "thin" {
		t.Errorf("ConfigError.Style = %q, want %q", cfgErr.Style, "thin")
	}
}

func TestLayerGroupActive(t *testing.T) {
	active := board.LayerGroup{Layers: []int{0, 1}, On: []bool{false, true}}
	if !active.Active() {
		t.Errorf("group with one enabled layer should be active")
	}

	silk := board.LayerGroup{Silk: true, Layers: []int{2}, On: []bool{true}}
	if silk.Active() {
		t.Errorf("silkscreen group should never be active")
	}

	allOff := board.LayerGroup{Layers: []int{0}, On: []bool{false}}
	if allOff.Active() {
		t.Errorf("group with no enabled layers should not be active")
	}
}

func TestDiagnosticsHasErrors(t *testing.T) {
	var d board.Diagnostics
	d.Add(board.Info, "", "starting")
	if d.HasErrors() {
		t.Errorf("info-only diagnostics should not report errors")
	}

	d.Add(board.Error, "U1", "out of bounds")
	if !d.HasErrors() {
		t.Errorf("expected HasErrors to be true after an Error entry")
	}
}
