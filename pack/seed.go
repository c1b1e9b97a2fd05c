package pack

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// seedSpheres builds the three mutually tangent spheres that bootstrap a
// packing. The centers form a triangle whose side lengths are the pairwise
// radius sums:
//
//	           C (x,y)
//	           ^
//	          / \
//	       b /   \ a
//	        /     \
//	 A (0,0)-------B (c,0)
//	           c
//
// Algorithm:
//  1. Place A at the origin and B along the x axis at distance rA+rB.
//  2. Locate C from the law of cosines (intersection of circles of radius
//     rA+rC about A and rB+rC about B).
//  3. Translate all three centers so the triangle incenter sits at the
//     origin. The recentring keeps the seeds away from any boundary that
//     happens to pass near the origin.
//
// Returns ErrSeedUnplaceable when any recentred seed is not contained by the
// boundary geometry.
func seedSpheres(radii [3]float64, container Container) ([3]Sphere, error) {
	rA, rB, rC := radii[0], radii[1], radii[2]

	// Side lengths, named for the vertex they are opposite to.
	sideA := rC + rB
	sideB := rA + rC
	sideC := rA + rB

	x := (sideB*sideB + sideC*sideC - sideA*sideA) / (2 * sideC)
	y := math.Sqrt(sideB*sideB - x*x)

	perimeter := sideA + sideB + sideC
	incenterX := (sideB*sideC + sideC*x) / perimeter
	incenterY := (sideC * y) / perimeter

	seeds := [3]Sphere{
		{Center: r3.Vec{X: -incenterX, Y: -incenterY}, Radius: rA},
		{Center: r3.Vec{X: sideC - incenterX, Y: -incenterY}, Radius: rB},
		{Center: r3.Vec{X: x - incenterX, Y: y - incenterY}, Radius: rC},
	}

	for _, s := range seeds {
		if !container.Contains(s) {
			return [3]Sphere{}, ErrSeedUnplaceable
		}
	}
	return seeds, nil
}
