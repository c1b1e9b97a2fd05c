package pack

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// tangentSpheres finds every sphere of the given radius simultaneously in
// outer contact with s1, s2 and s3, fully contained by the container, and
// overlapping nothing in neighbors. At most two such spheres exist; the slice
// holds 0, 1 or 2 accepted candidates with the larger quadratic root first.
//
// The center c must satisfy |c - cₖ| = rₖ + radius for k = 1..3, i.e. c lies
// on the intersection of three spheres grown about each reference center.
// Subtracting the squared-distance equation for s1 from those for s2 and s3
// leaves two linear plane equations; coupling them back to the first gives a
// quadratic system
//
//	û·c = a,  v̂·c = b,  c·c + w·c = e
//
// with û = unit(c1-c2), v̂ = unit(c1-c3) and w = -2c1. Writing
// c = α·û + β·v̂ + γ·t̂ for t̂ = unit(û×v̂) yields α and β in closed form and a
// quadratic in γ. A negative discriminant means the three tangency spheres do
// not meet: the normal no-solution outcome, not an error.
//
// The function is pure: it reads its arguments and nothing else.
func tangentSpheres(s1, s2, s3 Sphere, radius float64, container Container, neighbors []Sphere) []Sphere {
	d1 := s1.Radius + radius
	d2 := s2.Radius + radius
	d3 := s3.Radius + radius

	u := r3.Sub(s1.Center, s2.Center)
	v := r3.Sub(s1.Center, s3.Center)
	cross := r3.Cross(u, v)
	if r3.Norm2(cross) == 0 {
		// Collinear reference centers define no plane.
		return nil
	}
	uhat := r3.Unit(u)
	vhat := r3.Unit(v)
	that := r3.Unit(cross)
	w := r3.Scale(-2, s1.Center)

	a := (d2*d2 - d1*d1 + r3.Norm2(s1.Center) - r3.Norm2(s2.Center)) / (2 * r3.Norm(u))
	b := (d3*d3 - d1*d1 + r3.Norm2(s1.Center) - r3.Norm2(s3.Center)) / (2 * r3.Norm(v))
	e := d1*d1 - r3.Norm2(s1.Center)

	dotUV := r3.Dot(uhat, vhat)
	dotWT := r3.Dot(w, that)
	dotUW := r3.Dot(uhat, w)
	dotVW := r3.Dot(vhat, w)

	denom := 1 - dotUV*dotUV
	alpha := (a - b*dotUV) / denom
	beta := (b - a*dotUV) / denom
	d := alpha*alpha + beta*beta + 2*alpha*beta*dotUV + alpha*dotUW + beta*dotVW - e

	disc := dotWT*dotWT - 4*d
	if disc <= 0 {
		return nil
	}
	sqrtDisc := math.Sqrt(disc)

	inPlane := r3.Add(r3.Scale(alpha, uhat), r3.Scale(beta, vhat))
	var accepted []Sphere
	for _, gamma := range [2]float64{0.5 * (-dotWT + sqrtDisc), 0.5 * (-dotWT - sqrtDisc)} {
		cand := Sphere{
			Center: r3.Add(inPlane, r3.Scale(gamma, that)),
			Radius: radius,
		}
		if container.Contains(cand) && !overlapsAny(cand, neighbors) {
			accepted = append(accepted, cand)
		}
	}
	return accepted
}

func overlapsAny(s Sphere, set []Sphere) bool {
	for _, o := range set {
		if s.Overlaps(o) {
			return true
		}
	}
	return false
}
