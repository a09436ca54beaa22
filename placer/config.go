// Package placer implements the simulated-annealing component placer
// of spec §4.4-4.6: a cost function over component positions, three
// reversible perturbation operators, and an annealing schedule that
// drives auto_place_selected.
package placer

// Config is the placer's cost-weight table, equivalent to the
// reference implementation's static CostParameter struct (§9: "Placer
// CostParameter is static configuration — represent as a constant
// table"). Fast, LargeGridSize, and SmallGridSize are recovered from
// autoplace.c; spec.md only names the grid sizes in prose (§4.5).
type Config struct {
	ViaCost float32

	CongestionPenalty float32

	OverlapPenaltyMin float32
	OverlapPenaltyMax float32

	OutOfBoundsPenalty float32
	OverallAreaPenalty float32

	MatchingNeighborBonus float32
	AlignedNeighborBonus  float32
	OrientedNeighborBonus float32

	// M (the reference's lowercase m) and GoodRatio set stage length
	// and the freezing termination ratio; Gamma is the per-stage
	// temperature decay.
	M         int
	Gamma     float32
	GoodRatio float32

	// Fast skips the opposite-side pin-footprint check in region
	// construction, recovered from CostParameter.fast in autoplace.c:
	// an "ignore SMD/pin conflicts" mode for large boards where the
	// full check is too slow.
	Fast bool

	LargeGridSize int32
	SmallGridSize int32
}

// DefaultConfig mirrors autoplace.c's CostParameter literal values.
func DefaultConfig() Config {
	return Config{
		ViaCost:               3e3,
		CongestionPenalty:     2e-4,
		OverlapPenaltyMin:     1e0,
		OverlapPenaltyMax:     1e5,
		OutOfBoundsPenalty:    1e6,
		OverallAreaPenalty:    1e0,
		MatchingNeighborBonus: 1e3,
		AlignedNeighborBonus:  1e3,
		OrientedNeighborBonus: 1e3,
		M:                     20,
		Gamma:                 0.75,
		GoodRatio:             40,
		Fast:                  false,
		LargeGridSize:         100,
		SmallGridSize:         10,
	}
}
