package placer

import "github.com/kestrelpcb/autoroute/geom"

// alignmentBonus sums, for each selected component, a bonus over its
// nearest neighbour in each of the four directions, §4.4's δ4:
// "Σ components c · Σ neighbors (same-name bonus + same-rotation
// bonus·factor + edge-aligned bonus·factor), where factor = 2 if
// same-name else 1". Only one neighbour per direction is scored.
func (m *Model) alignmentBonus(cfg Config) float32 {
	tree := m.neighborIndex()

	var total float32
	for _, i := range m.Selected {
		c := m.Board.Components[i]
		box := c.Box()
		for _, d := range geom.AllDirections {
			j := nearestInDirection(tree, box, i, d)
			if j < 0 {
				continue
			}
			n := m.Board.Components[j]

			sameName := n.Name == c.Name
			factor := float32(1)
			if sameName {
				factor = 2
				total += cfg.MatchingNeighborBonus
			}
			if n.Rotation == c.Rotation {
				total += cfg.AlignedNeighborBonus * factor
			}
			if edgesAligned(box, n.Box(), d) {
				total += cfg.OrientedNeighborBonus * factor
			}
		}
	}
	return total
}

// edgesAligned reports whether the facing edges of two boxes share a
// coordinate on the axis perpendicular to d, e.g. two components
// facing each other north/south whose left edges line up.
func edgesAligned(a, b geom.Box, d geom.Direction) bool {
	if d.Horizontal() {
		return a.Y1 == b.Y1 || a.Y2 == b.Y2
	}
	return a.X1 == b.X1 || a.X2 == b.X2
}
