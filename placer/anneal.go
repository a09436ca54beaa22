package placer

import (
	"math"

	"github.com/kestrelpcb/autoroute/internal/rand"
)

// referenceTemperature (Tx in spec §4.6) is the fixed high temperature
// T0 estimation samples cost deltas at.
const referenceTemperature float32 = 3e5

// trialCount is how many random perturbations T0 estimation averages
// over. Spec §4.6 names the TRIALS quantity but leaves its value
// unspecified; picked generously enough to average out single noisy
// draws without materially slowing placement.
const trialCount = 50

// EstimateInitialTemperature runs trialCount random perturbations at
// the fixed reference temperature, and sets T0 so that 95% of uphill
// moves at T0 are accepted (§4.6).
func EstimateInitialTemperature(m *Model, cfg Config, rnd *rand.Source) float32 {
	var sum float32
	for i := 0; i < trialCount; i++ {
		before := m.Cost(cfg, referenceTemperature, referenceTemperature)
		p := Perturb(m, rnd, referenceTemperature, cfg)
		Apply(m, p, false)
		after := m.Cost(cfg, referenceTemperature, referenceTemperature)
		Apply(m, p, true)

		delta := after - before
		if delta < 0 {
			delta = -delta
		}
		sum += delta
	}
	mean := sum / float32(trialCount)
	return -mean / float32(math.Log(0.95))
}

// Result summarizes one Anneal run.
type Result struct {
	Moved      bool
	Stages     int
	FinalTemp  float32
	InitialCost float32
	FinalCost   float32
}

// Anneal runs the main-loop annealing schedule of §4.6 to completion,
// mutating m.Board's selected components in place.
func Anneal(m *Model, cfg Config, rnd *rand.Source) Result {
	n := len(m.Selected)
	if n == 0 {
		return Result{}
	}

	t0 := EstimateInitialTemperature(m, cfg, rnd)
	t := t0

	res := Result{InitialCost: m.Cost(cfg, t, t0)}

	for {
		goodMoves, moves := 0, 0
		stageLimit := cfg.M * n
		moveLimit := 2 * cfg.M * n

		for goodMoves < stageLimit && moves < moveLimit {
			before := m.Cost(cfg, t, t0)
			p := Perturb(m, rnd, t, cfg)
			Apply(m, p, false)
			after := m.Cost(cfg, t, t0)
			delta := after - before

			accept := delta < 0
			if !accept {
				prob := float32(math.Exp(float64(-delta / t)))
				accept = rnd.Float64() < float64(prob)
			}

			if accept {
				if delta < 0 {
					goodMoves++
				}
				res.Moved = true
			} else {
				Apply(m, p, true)
			}
			moves++
		}

		res.Stages++
		t *= cfg.Gamma

		if t < 5 || float32(goodMoves) < float32(moves)/cfg.GoodRatio {
			break
		}
	}

	res.FinalTemp = t
	res.FinalCost = m.Cost(cfg, t, t0)
	return res
}
