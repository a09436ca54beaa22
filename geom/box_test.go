package geom_test

import (
	"testing"

	. "github.com/kestrelpcb/autoroute/geom"
)

func TestBoxBloatShrink(t *testing.T) {
	b := NewBox(0, 0, 100, 100)

	bloated := b.Bloat(10)
	if bloated != (Box{X1: -10, Y1: -10, X2: 110, Y2: 110}) {
		t.Errorf("Bloat produced unexpected box %s", bloated)
	}

	back := bloated.Shrink(10)
	if back != b {
		t.Errorf("Shrink(Bloat(b, d), d) != b, got %s", back)
	}
}

func TestBoxClosestPoint(t *testing.T) {
	b := NewBox(0, 0, 10, 10)

	inside := Point{X: 5, Y: 5}
	if b.ClosestPoint(inside) != inside {
		t.Errorf("ClosestPoint should be the identity for points inside the box")
	}
	if !b.PointIn(inside) {
		t.Errorf("expected %v to be inside %s", inside, b)
	}

	outside := Point{X: 20, Y: -5}
	clamped := b.ClosestPoint(outside)
	if clamped != (Point{X: 9, Y: 0}) {
		t.Errorf("expected clamp to (9, 0), got %v", clamped)
	}
}

func TestBoxClip(t *testing.T) {
	a := NewBox(0, 0, 10, 10)
	b := NewBox(5, 5, 15, 15)

	clipped, ok := a.Clip(b)
	if !ok {
		t.Fatalf("expected a and b to intersect")
	}
	if !clipped.In(a) || !clipped.In(b) {
		t.Errorf("clip result %s must be contained in both operands", clipped)
	}

	c := NewBox(100, 100, 110, 110)
	_, ok = a.Clip(c)
	if ok {
		t.Errorf("expected disjoint boxes to not intersect")
	}
}

func TestBoxUnion(t *testing.T) {
	a := NewBox(0, 0, 10, 10)
	b := NewBox(20, 20, 30, 30)

	u := a.Union(b)
	if u != (Box{X1: 0, Y1: 0, X2: 30, Y2: 30}) {
		t.Errorf("unexpected union %s", u)
	}
}
