package geom_test

import (
	"testing"

	. "github.com/kestrelpcb/autoroute/geom"
)

func TestRotateRoundTrip(t *testing.T) {
	b := NewBox(-5, -10, 15, 20)

	for _, d := range AllDirections {
		north := RotateToNorth(b, d)
		back := RotateFromNorth(north, d)
		if back != b {
			t.Errorf("direction %s: RotateFromNorth(RotateToNorth(b)) = %s, want %s", d, back, b)
		}
	}
}

func TestRotatePointRoundTrip(t *testing.T) {
	p := Point{X: 3, Y: -7}

	for _, d := range AllDirections {
		north := RotatePointToNorth(p, d)
		back := RotatePointFromNorth(north, d)
		if back != p {
			t.Errorf("direction %s: round trip = %v, want %v", d, back, p)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	cases := map[Direction]Direction{
		North: South,
		East:  West,
		South: North,
		West:  East,
	}

	for d, want := range cases {
		if got := d.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, want %s", d, got, want)
		}
	}
}

func TestEdgeToBox(t *testing.T) {
	b := NewBox(0, 0, 10, 10)

	north := EdgeToBox(b, North)
	if north.Height() != 1 || north.Y1 != 0 {
		t.Errorf("north edge should be a 1-high strip at Y1, got %s", north)
	}

	east := EdgeToBox(b, East)
	if east.Width() != 1 || east.X2 != 10 {
		t.Errorf("east edge should be a 1-wide strip at X2, got %s", east)
	}
}
