package pack

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ballContainer is an origin-centred spherical boundary for tests. The shapes
// package provides the production equivalent; importing it here would cycle.
type ballContainer struct {
	radius float64
}

func (b ballContainer) Contains(s Sphere) bool {
	return r3.Norm(s.Center)+s.Radius <= b.radius
}

func (b ballContainer) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * b.radius * b.radius * b.radius
}

// boundless accepts everything; for solver tests where containment is not the
// point.
type boundless struct{}

func (boundless) Contains(Sphere) bool { return true }
func (boundless) Volume() float64      { return math.Inf(1) }

// seqSampler replays a fixed sequence of radii, cycling when exhausted.
type seqSampler struct {
	vals []float64
	next int
}

func (s *seqSampler) Sample() float64 {
	v := s.vals[s.next%len(s.vals)]
	s.next++
	return v
}

func vecNear(a, b r3.Vec, tol float64) bool {
	return r3.Norm(r3.Sub(a, b)) < tol
}
