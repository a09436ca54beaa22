package board

import "github.com/kestrelpcb/autoroute/geom"

// PolygonClipper is the external collaborator spec §6 names for clear-
// polygon transparency: "functions to create, clip, union, subtract
// polygonal regions". The kernel never implements polygon boolean ops
// itself (out of scope per §1); it calls through this boundary when a
// via candidate must be tested against a Clear polygon's true outline
// rather than its bounding box.
type PolygonClipper interface {
	// Contains reports whether point p lies inside the polygon
	// identified by id.
	Contains(id string, p geom.Point) bool

	// Subtract removes the region covered by cut from the polygon
	// identified by id, returning the resulting outline ids (a single
	// polygon may split into several). Used when a trace cuts across a
	// non-clear polygon pour.
	Subtract(id string, cut geom.Box) ([]string, error)

	// Union merges the polygon identified by id with add, returning
	// the resulting outline id.
	Union(id string, add geom.Box) (string, error)
}
