package router

import "github.com/kestrelpcb/autoroute/option"

// Config holds router-wide toggles that aren't per-pass cost
// parameters (those live in SearchContext, built fresh per pass by
// PassContext). Smoothing gates whether the multi-pass driver ever
// runs the LIMIT-indexed smoothing-only pass (spec §4.9, Open
// Question: the reference router always ran it; here it is made an
// explicit, default-on knob instead).
type Config struct {
	Smoothing bool

	// ViaCostOverride, when Valid, replaces every pass's computed
	// via_cost (spec §4.9's parameter table fixes it at 50 for every
	// pass) with a caller-chosen constant. Left unset, the schedule's
	// default of 50 applies; Option lets a config file distinguish
	// "not set" from an explicit override of 0.
	ViaCostOverride option.Float32
}

// DefaultConfig matches the reference router's unconditional
// smoothing pass and unmodified via cost schedule.
func DefaultConfig() Config {
	return Config{Smoothing: true}
}

// applyOverrides folds cfg's overrides into a pass's SearchContext.
func (cfg Config) applyOverrides(ctx SearchContext) SearchContext {
	if cfg.ViaCostOverride.Valid {
		ctx.ViaCost = float64(cfg.ViaCostOverride.Value)
	}
	return ctx
}
