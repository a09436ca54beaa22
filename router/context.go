package router

// SearchContext is the explicit, immutable parameter bundle spec §9
// calls for in place of a module-wide globals struct: "Route
// parameters (via_cost, conflict_penalty, etc.) ... The clean design
// makes them an explicit, immutable SearchContext passed by reference
// through every router function." One SearchContext is built fresh
// per pass by the multi-pass driver (§4.9).
type SearchContext struct {
	ViaCost            float64
	JogPenalty         float64
	ConflictPenalty    float64
	LastConflictPenalty float64

	// DirectionPenaltyNum/Den express the "1 + p_num/p_den" multiplier
	// spec §4.7 applies to non-preferred-direction coordinate deltas.
	DirectionPenaltyNum float64
	DirectionPenaltyDen float64

	IsOdd         bool
	WithConflicts bool
	IsSmoothing   bool

	// Pass is this context's zero-based pass index within the
	// LIMIT-bounded multi-pass driver (§4.9).
	Pass int
}

// PassContext builds the SearchContext for pass i of LIMIT, per the
// parameter table in spec §4.9.
func PassContext(i int) SearchContext {
	lastConflict := minF(15, float64(2*i))
	ctx := SearchContext{
		ViaCost:             50,
		JogPenalty:          0,
		DirectionPenaltyNum: 1,
		DirectionPenaltyDen: 1,
		LastConflictPenalty: pow2(lastConflict),
		IsOdd:               i%2 == 1,
		WithConflicts:       i < Limit,
		IsSmoothing:         i == Limit,
		Pass:                i,
	}
	ctx.ConflictPenalty = 4 * ctx.LastConflictPenalty
	return ctx
}

// Limit is LIMIT from spec §4.9: passes run i = 0..Limit inclusive,
// with i==Limit reserved for the smoothing-only pass.
const Limit = 6

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func pow2(exp float64) float64 {
	result := 1.0
	for i := 0; i < int(exp); i++ {
		result *= 2
	}
	return result
}
