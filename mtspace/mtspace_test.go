package mtspace_test

import (
	"testing"

	"github.com/kestrelpcb/autoroute/geom"
	"github.com/kestrelpcb/autoroute/mtspace"
)

func area(boxes []geom.Box) int64 {
	var total int64
	for _, b := range boxes {
		total += b.Area()
	}
	return total
}

func allDisjoint(t *testing.T, boxes []geom.Box) {
	t.Helper()
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			if boxes[i].Intersects(boxes[j]) {
				t.Errorf("boxes %s and %s overlap", boxes[i], boxes[j])
			}
		}
	}
}

func allWithin(t *testing.T, boxes []geom.Box, q geom.Box) {
	t.Helper()
	for _, b := range boxes {
		if !b.In(q) {
			t.Errorf("box %s is not contained in query box %s", b, q)
		}
	}
}

func TestQueryWithNoObstaclesReturnsWholeBoxAsFree(t *testing.T) {
	s := mtspace.New()
	q := geom.NewBox(0, 0, 100, 100)

	res := s.Query(q, true)

	if len(res.Hi) != 0 || len(res.Lo) != 0 {
		t.Fatalf("expected no Hi/Lo with no obstacles, got Hi=%v Lo=%v", res.Hi, res.Lo)
	}
	if area(res.Free) != q.Area() {
		t.Errorf("free area = %d, want %d (whole query box)", area(res.Free), q.Area())
	}
}

func TestFixedObstacleExcludedFromAllCategories(t *testing.T) {
	s := mtspace.New()
	q := geom.NewBox(0, 0, 100, 100)
	obs := geom.NewBox(40, 40, 60, 60)
	s.Add(obs, mtspace.Fixed, 0)

	res := s.Query(q, true)

	total := area(res.Free) + area(res.Lo) + area(res.Hi)
	want := q.Area() - obs.Area()
	if total != want {
		t.Errorf("usable area = %d, want %d (query minus fixed obstacle)", total, want)
	}

	allDisjoint(t, append(append(append([]geom.Box{}, res.Free...), res.Lo...), res.Hi...))
	allWithin(t, res.Free, q)
	allWithin(t, res.Lo, q)
	allWithin(t, res.Hi, q)
}

func TestThisPassObstacleClassifiesHi(t *testing.T) {
	s := mtspace.New()
	q := geom.NewBox(0, 0, 100, 100)
	obs := geom.NewBox(40, 40, 60, 60)
	s.Add(obs, mtspace.OddPass, 0)

	res := s.Query(q, true) // is_odd_pass == true, so the odd bucket is "this pass"

	if area(res.Hi) != obs.Area() {
		t.Errorf("hi area = %d, want %d", area(res.Hi), obs.Area())
	}
	if len(res.Lo) != 0 {
		t.Errorf("expected no lo boxes, got %v", res.Lo)
	}
}

func TestPriorPassObstacleClassifiesLo(t *testing.T) {
	s := mtspace.New()
	q := geom.NewBox(0, 0, 100, 100)
	obs := geom.NewBox(40, 40, 60, 60)
	s.Add(obs, mtspace.OddPass, 0)

	res := s.Query(q, false) // is_odd_pass == false, so the odd bucket is "prior pass"

	if area(res.Lo) != obs.Area() {
		t.Errorf("lo area = %d, want %d", area(res.Lo), obs.Area())
	}
	if len(res.Hi) != 0 {
		t.Errorf("expected no hi boxes, got %v", res.Hi)
	}
}

func TestRemoveUndoesAdd(t *testing.T) {
	s := mtspace.New()
	q := geom.NewBox(0, 0, 100, 100)
	obs := geom.NewBox(40, 40, 60, 60)

	s.Add(obs, mtspace.EvenPass, 5)
	if !s.Remove(obs, mtspace.EvenPass, 5) {
		t.Fatalf("Remove reported no obstacle removed")
	}

	res := s.Query(q, true)
	if area(res.Free) != q.Area() {
		t.Errorf("after remove, free area = %d, want %d", area(res.Free), q.Area())
	}
}

func TestKeepawayBloatsObstacle(t *testing.T) {
	s := mtspace.New()
	q := geom.NewBox(0, 0, 100, 100)
	obs := geom.NewBox(40, 40, 60, 60)
	s.Add(obs, mtspace.Fixed, 10)

	res := s.Query(q, true)

	bloated := obs.Bloat(10)
	total := area(res.Free) + area(res.Lo) + area(res.Hi)
	want := q.Area() - bloated.Area()
	if total != want {
		t.Errorf("usable area = %d, want %d (bloated obstacle excluded)", total, want)
	}
}

func TestHiTakesPrecedenceOverLoOnOverlap(t *testing.T) {
	s := mtspace.New()
	q := geom.NewBox(0, 0, 100, 100)
	// overlapping odd/even obstacles over the same region
	s.Add(geom.NewBox(0, 0, 50, 50), mtspace.OddPass, 0)
	s.Add(geom.NewBox(25, 25, 75, 75), mtspace.EvenPass, 0)

	res := s.Query(q, true) // odd = this pass (hi), even = prior pass (lo)

	allDisjoint(t, append(append([]geom.Box{}, res.Lo...), res.Hi...))
	// the overlap region (25,25)-(50,50) must be classified Hi, not Lo
	overlap := geom.NewBox(25, 25, 50, 50)
	for _, hi := range res.Hi {
		if clip, ok := hi.Clip(overlap); ok {
			for _, lo := range res.Lo {
				if lo.Intersects(clip) {
					t.Errorf("lo box %s overlaps hi-claimed region %s", lo, clip)
				}
			}
		}
	}
}
