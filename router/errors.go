package router

import "fmt"

// NoRouteError reports that route_one found no path from any source
// in a subnet. routeNet records it as a warning diagnostic, counts the
// subnet as a conflict subnet, and stops routing the rest of that
// net's chain; the SubnetProcessed flag is not set.
type NoRouteError struct {
	Net    string
	Subnet int
}

func (e *NoRouteError) Error() string {
	return fmt.Sprintf("no route found for net %q subnet %d", e.Net, e.Subnet)
}

// ConflictError reports conflict_subnets > 0 after the final
// refinement pass. With Debug set the driver panics with it; otherwise
// it is returned as an ordinary error.
type ConflictError struct {
	Net            string
	ConflictSubnets int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("net %q finished with %d unresolved conflict subnets", e.Net, e.ConflictSubnets)
}

// Debug gates the assertion helpers recovered from autoroute.c's
// __routebox_is_good/__edge_is_good, the Go analogue of NDEBUG (spec
// §7). Release code paths must not rely on these checks running.
var Debug = false

// checkRouteBoxInvariants panics if rb violates an invariant spec §3
// and §7 require (frozen coordinates aside, which the type system
// already enforces by never re-assigning Box after construction).
// Only called when Debug is true.
func checkRouteBoxInvariants(rb *RouteBox) {
	if !Debug {
		return
	}
	if rb.Box.Empty() && rb.Type != TypeExpansion {
		panic("router: route box has empty bounds")
	}
	if rb.Flags.Source && rb.Flags.Target {
		panic("router: route box cannot be both source and target")
	}
}

// checkEdgeInvariants panics if e is malformed. Only called when
// Debug is true.
func checkEdgeInvariants(e *Edge) {
	if !Debug {
		return
	}
	if e.Box == nil {
		panic("router: edge has no route box")
	}
	if e.CostToPoint < 0 {
		panic("router: edge has negative cost")
	}
}
