// Package autoroute provides a PCB auto-placement and auto-routing
// kernel.
//
// The placer sub-package anneals component position, rotation, and
// side to minimise wire length and overlap. The router sub-package
// performs rectangle-expansion auto-routing of a netlist across one or
// more layer groups, backed by the recttree spatial index and the
// mtspace multi-layer empty-space oracle. The board sub-package
// describes the board outline, components, netlist, and route
// geometry those two operate on.
package autoroute
