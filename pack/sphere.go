// Package pack implements an advancing-front sphere packing algorithm after
// Valera et al., Computational Particle Mechanics 2, 161 (2015).
//
// A packing is grown from three mutually tangent seed spheres. Growth attaches
// each new sphere tangent to three already-placed spheres at a time, chosen
// stochastically from an active front, until no front member can host another
// sphere. The finished packing is queried for structural statistics:
// coordination number, fabric tensor, volume fraction and void ratio.
package pack

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// contactTolerance is the absolute tolerance on |d - (r1+r2)| under which two
// spheres count as touching for contact-graph analysis. Placement validity
// never uses this tolerance; overlap is strict.
const contactTolerance = 0.001

// Sphere is a ball in 3-space: a center point and a strictly positive radius.
// Spheres are value types; the packing engine never mutates one after
// placement.
type Sphere struct {
	Center r3.Vec
	Radius float64
}

// Volume returns 4/3·π·r³.
func (s Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
}

// Overlaps reports whether s and o strictly intersect. Tangency (center
// distance exactly equal to the radius sum) is not overlap.
func (s Sphere) Overlaps(o Sphere) bool {
	return distance(s.Center, o.Center) < s.Radius+o.Radius
}

// InContact reports whether s and o touch to within contactTolerance. A
// sphere is never in contact with itself: its self-distance of zero can not
// satisfy the predicate for a positive radius.
func (s Sphere) InContact(o Sphere) bool {
	return math.Abs(distance(s.Center, o.Center)-(s.Radius+o.Radius)) < contactTolerance
}

func distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}
