package router

import (
	"testing"

	"github.com/kestrelpcb/autoroute/board"
	"github.com/kestrelpcb/autoroute/geom"
)

// TestSmoothedSegmentsDegeneratesOnStraightRun exercises spec §8's S6
// at the unit level: a knee on an already axis-aligned hop (from and
// to sharing a coordinate) has nothing to cut a diagonal across, so
// smoothedSegments must fall back to the plain two-segment knee.
func TestSmoothedSegmentsDegeneratesOnStraightRun(t *testing.T) {
	style := board.RouteStyle{Name: "default", Thick: 10, Diameter: 40, Hole: 20, Keepaway: 10}
	from := geom.Point{X: 1000, Y: 1000}
	to := geom.Point{X: 5000, Y: 1000}
	knee := manhattanKnee(from, to, geom.NewBox(900, 900, 1100, 1100), geom.NewBox(4900, 900, 5100, 1100))

	lines := smoothedSegments(from, knee, to, 0, style)
	for _, ln := range lines {
		if ln.Diagonal {
			t.Fatal("a straight run has no corner to smooth; expected no diagonal line")
		}
	}
}

// TestSmoothedSegmentsCutsDiagonalAcrossKnee exercises spec §8's S6
// for a genuine corner: a hop whose from/to differ on both axes must
// have the knee replaced by a 45-degree cut of length
// min(|Δx|,|Δy|), leaving both remaining runs shortened by that much.
func TestSmoothedSegmentsCutsDiagonalAcrossKnee(t *testing.T) {
	style := board.RouteStyle{Name: "default", Thick: 10, Diameter: 40, Hole: 20, Keepaway: 10}
	from := geom.Point{X: 1000, Y: 1000}
	to := geom.Point{X: 5000, Y: 4000}
	knee := manhattanKnee(from, to, geom.NewBox(900, 900, 1100, 1100), geom.NewBox(4900, 3900, 5100, 4100))
	if knee.X != to.X || knee.Y != from.Y {
		t.Fatalf("expected the horizontal-first knee (%d,%d), got (%d,%d)", to.X, from.Y, knee.X, knee.Y)
	}

	lines := smoothedSegments(from, knee, to, 0, style)

	var diagonal *board.Line
	for i := range lines {
		if lines[i].Diagonal {
			diagonal = &lines[i]
		}
	}
	if diagonal == nil {
		t.Fatal("expected a diagonal line cutting across the knee")
	}

	const wantDiag = 3000 // min(|5000-1000|, |4000-1000|)
	dx := diagonal.B.X - diagonal.A.X
	dy := diagonal.B.Y - diagonal.A.Y
	if absInt32(dx) != wantDiag || absInt32(dy) != wantDiag {
		t.Fatalf("expected a %d-unit 45-degree diagonal, got dx=%d dy=%d", wantDiag, dx, dy)
	}

	if len(lines) != 3 {
		t.Fatalf("expected from->cut, diagonal, cut->to (3 lines), got %d", len(lines))
	}
	if lines[0].A != from || lines[2].B != to {
		t.Fatalf("expected the outer segments to still start at from and end at to, got %+v / %+v", lines[0], lines[2])
	}
}
