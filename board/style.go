package board

// RouteStyle bundles the geometry the router draws a net's traces
// and vias with. Up to NUM_STYLES styles may exist plus one default,
// per spec §6.
type RouteStyle struct {
	Name     string
	Thick    int32 // line thickness
	Diameter int32 // via diameter
	Hole     int32 // via drill hole
	Keepaway int32 // clearance
}

// NUM_STYLES bounds how many named styles a board may declare,
// matching the reference router's fixed-size style table.
const NUM_STYLES = 8

// Bloat is keepaway + half the larger of thickness/diameter: the
// amount any box belonging to this style must expand by before it
// can be tested for overlap with another style's geometry (§3).
func (s RouteStyle) Bloat() int32 {
	thickest := s.Thick
	if s.Diameter > thickest {
		thickest = s.Diameter
	}
	return s.Keepaway + thickest/2
}

// Valid reports whether every dimension is positive, per the
// configuration-error taxonomy of spec §7 (S3: "a style with
// thick=0").
func (s RouteStyle) Valid() bool {
	return s.Thick > 0 && s.Diameter > 0 && s.Hole > 0 && s.Keepaway > 0
}
