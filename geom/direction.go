package geom

import "strings"

// Direction is one of the four cardinal directions a route or
// expansion region can grow in.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections lists the four directions in rotational order,
// starting north, matching the order expansion regions are produced
// in by the router (§4.7: "for each side direction (d±1 mod 4)").
var AllDirections = [4]Direction{North, East, South, West}

func DirectionFromString(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "n", "north":
		return North, true
	case "e", "east":
		return East, true
	case "s", "south":
		return South, true
	case "w", "west":
		return West, true
	default:
		return North, false
	}
}

// Opposite returns the direction facing the other way
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Left returns the direction 90 degrees counter-clockwise from d;
// Right returns the direction 90 degrees clockwise. Together these
// are the "d±1 mod 4" side directions an expansion spawns edges in.
func (d Direction) Left() Direction  { return (d + 3) % 4 }
func (d Direction) Right() Direction { return (d + 1) % 4 }

// AsPoint returns the unit step in d, with Y increasing southward to
// match board coordinates (north is -Y).
func (d Direction) AsPoint() Point {
	switch d {
	case North:
		return Point{X: 0, Y: -1}
	case East:
		return Point{X: 1, Y: 0}
	case South:
		return Point{X: 0, Y: 1}
	case West:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Horizontal reports whether d runs along the X axis (east/west)
func (d Direction) Horizontal() bool { return d == East || d == West }

func (d Direction) String() string {
	switch d {
	case North:
		return "n"
	case East:
		return "e"
	case South:
		return "s"
	case West:
		return "w"
	default:
		return ""
	}
}

// EdgeToBox returns the zero-width box running along b's edge facing
// d, treated as closed (so the far coordinate is bumped by one to
// satisfy the half-open convention).
func EdgeToBox(b Box, d Direction) Box {
	switch d {
	case North:
		return Box{X1: b.X1, Y1: b.Y1, X2: b.X2, Y2: b.Y1 + 1}
	case South:
		return Box{X1: b.X1, Y1: b.Y2 - 1, X2: b.X2, Y2: b.Y2}
	case East:
		return Box{X1: b.X2 - 1, Y1: b.Y1, X2: b.X2, Y2: b.Y2}
	case West:
		return Box{X1: b.X1, Y1: b.Y1, X2: b.X1 + 1, Y2: b.Y2}
	default:
		return b
	}
}

// RotateToNorth applies the isometry mapping d to north: rotating a
// box so that whichever edge used to face d now faces north. North
// itself is the identity.
//
// Algorithms that would otherwise need a four-way case split
// (find_blocker, the placer's trapezoidal neighbour search, edge
// breaking) instead call RotateToNorth, work entirely in "north"
// coordinates, and call RotateFromNorth on the result. See
// WithDirection for the canonical way to wire this up.
func RotateToNorth(b Box, d Direction) Box {
	switch d {
	case North:
		return b
	case South:
		return Box{X1: b.X1, Y1: -b.Y2, X2: b.X2, Y2: -b.Y1}
	case East:
		// rotate -90: (x,y) -> (y,-x)
		return Box{X1: b.Y1, Y1: -b.X2, X2: b.Y2, Y2: -b.X1}
	case West:
		// rotate +90: (x,y) -> (-y,x)
		return Box{X1: -b.Y2, Y1: b.X1, X2: -b.Y1, Y2: b.X2}
	default:
		return b
	}
}

// RotateFromNorth is the inverse of RotateToNorth
func RotateFromNorth(b Box, d Direction) Box {
	switch d {
	case North:
		return b
	case South:
		return Box{X1: b.X1, Y1: -b.Y2, X2: b.X2, Y2: -b.Y1}
	case East:
		// inverse of rotate -90 is rotate +90: (x,y) -> (-y,x)
		return Box{X1: -b.Y2, Y1: b.X1, X2: -b.Y1, Y2: b.X2}
	case West:
		// inverse of rotate +90 is rotate -90: (x,y) -> (y,-x)
		return Box{X1: b.Y1, Y1: -b.X2, X2: b.Y2, Y2: -b.X1}
	default:
		return b
	}
}

// RotatePointToNorth/RotatePointFromNorth apply the same isometry to
// a single point, used to rotate an edge's cost-point alongside its
// box.
func RotatePointToNorth(p Point, d Direction) Point {
	switch d {
	case North:
		return p
	case South:
		return Point{X: p.X, Y: -p.Y}
	case East:
		return Point{X: p.Y, Y: -p.X}
	case West:
		return Point{X: -p.Y, Y: p.X}
	default:
		return p
	}
}

func RotatePointFromNorth(p Point, d Direction) Point {
	switch d {
	case North:
		return p
	case South:
		return Point{X: p.X, Y: -p.Y}
	case East:
		return Point{X: -p.Y, Y: p.X}
	case West:
		return Point{X: p.Y, Y: -p.X}
	default:
		return p
	}
}

// WithDirection rotates b into north-facing coordinates, invokes f,
// then rotates the result back. This is the one helper the rest of
// the kernel uses instead of hand-writing four-way switches (see
// find_blocker, the edge-breaking pass, and the placer's trapezoidal
// neighbour search).
func WithDirection(b Box, d Direction, f func(northBox Box) Box) Box {
	return RotateFromNorth(f(RotateToNorth(b, d)), d)
}
