package board

import "github.com/kestrelpcb/autoroute/geom"

// Connection is one terminal of a net: a pin or pad reference together
// with the point and layer group the router must reach, per spec §6
// ("each net a list of connections (pin/pad references with X, Y,
// layer-group for the connection point)").
type Connection struct {
	Component  string
	Terminal   string // pin or pad ID within Component
	Point      geom.Point
	LayerGroup int
}

// Net is a physical net: a set of terminals that must end up
// electrically joined, loaded as some number of disjoint subnets
// (§3: "Netlist connectivity: a forest of subnets per physical net").
type Net struct {
	Name        string
	Connections []Connection
}

// Netlist is the full set of nets the router must connect.
type Netlist struct {
	Nets []Net
}

// Empty reports whether the netlist has no nets, one of the
// configuration errors spec §7 names.
func (nl Netlist) Empty() bool {
	return len(nl.Nets) == 0
}
