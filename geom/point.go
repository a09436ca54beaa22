package geom

// Point is an integer point on the board, used both for pin/pad
// centres and for an edge's cost-point during routing.
type Point struct {
	X, Y int32
}

// Add returns p+q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// ManhattanDistance returns |dx|+|dy| between p and q
func (p Point) ManhattanDistance(q Point) int64 {
	return int64(abs32(p.X-q.X)) + int64(abs32(p.Y-q.Y))
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
