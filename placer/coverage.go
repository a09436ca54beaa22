package placer

import (
	"sort"

	"github.com/kestrelpcb/autoroute/geom"
)

// excessCoverageArea is "pairwise intersection area" exactly as
// spec.md's glossary defines it: the total area covered by boxes
// counted with multiplicity, minus the area of their union. For two
// boxes this equals their plain intersection area, but wherever three
// or more boxes mutually overlap it is the exact Σ max(k(x)-1,0)
// quantity rather than the naive Σ_{i<j} Area(Ri∩Rj) sum, which
// over-counts such points by inclusion-exclusion (a point covered by
// three boxes contributes C(3,2)=3 to the pairwise sum but only 2 to
// the excess-coverage total).
func excessCoverageArea(boxes []geom.Box) float64 {
	if len(boxes) < 2 {
		return 0
	}
	var individual float64
	for _, b := range boxes {
		individual += float64(b.Area())
	}
	return individual - unionArea(boxes)
}

// unionArea computes the area covered by the union of boxes with a
// coordinate-compressed sweep over X, tracking how many boxes cover
// each Y segment so overlapping regions are only counted once.
func unionArea(boxes []geom.Box) float64 {
	if len(boxes) == 0 {
		return 0
	}

	ys := make([]int32, 0, len(boxes)*2)
	for _, b := range boxes {
		if b.Empty() {
			continue
		}
		ys = append(ys, b.Y1, b.Y2)
	}
	ys = sortedUnique(ys)
	if len(ys) < 2 {
		return 0
	}

	segLen := make([]float64, len(ys)-1)
	for i := range segLen {
		segLen[i] = float64(ys[i+1] - ys[i])
	}

	type event struct {
		x      int32
		delta  int
		lo, hi int // segment index range this box's Y extent covers
	}
	events := make([]event, 0, len(boxes)*2)
	for _, b := range boxes {
		if b.Empty() {
			continue
		}
		lo := sort.Search(len(ys), func(i int) bool { return ys[i] >= b.Y1 })
		hi := sort.Search(len(ys), func(i int) bool { return ys[i] >= b.Y2 })
		if lo >= hi {
			continue
		}
		events = append(events, event{x: b.X1, delta: 1, lo: lo, hi: hi})
		events = append(events, event{x: b.X2, delta: -1, lo: lo, hi: hi})
	}
	if len(events) == 0 {
		return 0
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].x < events[j].x })

	counts := make([]int, len(segLen))
	var area float64
	prevX := events[0].x

	for i := 0; i < len(events); {
		x := events[i].x
		if x > prevX {
			var covered float64
			for s, c := range counts {
				if c > 0 {
					covered += segLen[s]
				}
			}
			area += covered * float64(x-prevX)
			prevX = x
		}
		for i < len(events) && events[i].x == x {
			e := events[i]
			for s := e.lo; s < e.hi; s++ {
				counts[s] += e.delta
			}
			i++
		}
	}
	return area
}

func sortedUnique(vals []int32) []int32 {
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	out := vals[:0]
	for i, v := range vals {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
