package pack

// Container is the bounding geometry a packing grows inside. Implementations
// must be usable read-only from the engine: Contains and Volume are called
// repeatedly during a run and must not mutate shared state.
//
// The shapes package provides sphere and cuboid containers; any shape that
// can answer full containment of a ball (convex or not) can be packed into.
type Container interface {
	// Contains reports whether the sphere lies entirely inside the geometry.
	Contains(s Sphere) bool
	// Volume returns the container volume in the same units as sphere
	// coordinates. Must be positive.
	Volume() float64
}

// Sampler draws independent sphere radii for the packing engine. Draws must
// be strictly positive; a non-positive draw is a contract violation that the
// engine surfaces as ErrInvalidSample rather than packing with it.
//
// The sizes package wraps the gonum distuv distributions in this interface.
type Sampler interface {
	Sample() float64
}
