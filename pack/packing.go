package pack

import "context"

// Packing is a finished set of non-overlapping spheres inside a container.
// Spheres appear in placement order. Analysis queries recompute the contact
// graph on demand; nothing is cached.
type Packing struct {
	Container Container
	Spheres   []Sphere
}

// New runs the advancing-front algorithm to completion and returns the
// resulting packing. Every returned sphere is contained by the container and
// overlaps no other; on error (ErrSeedUnplaceable, ErrInvalidSample,
// ErrBudgetExhausted, or ctx cancellation) no packing is returned.
func New(ctx context.Context, container Container, sampler Sampler, params Params) (*Packing, error) {
	spheres, err := packSpheres(ctx, container, sampler, params)
	if err != nil {
		return nil, err
	}
	return &Packing{Container: container, Spheres: spheres}, nil
}

// FromSpheres wraps a pre-existing sphere set for analysis, e.g. to compare
// packings generated elsewhere against this algorithm, or to rehydrate a
// stored run. The spheres are taken as-is; no containment or overlap checks
// are performed.
func FromSpheres(spheres []Sphere, container Container) *Packing {
	return &Packing{Container: container, Spheres: spheres}
}
