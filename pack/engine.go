package pack

import (
	"context"
	"fmt"
	"math/rand"
)

// Params controls a packing run.
type Params struct {
	// Seed initialises the engine's random source, used for front-member
	// selection and candidate tie-breaks. Two runs with equal Seed and an
	// identical sampler sequence place identical spheres in identical order.
	Seed int64

	// Rand, when non-nil, overrides Seed with an explicit source.
	Rand *rand.Rand

	// MaxAttempts bounds the number of growth iterations (0 = unlimited).
	// Adversarial size distributions can keep the front alive indefinitely;
	// when the budget runs out the engine returns ErrBudgetExhausted rather
	// than a partial packing.
	MaxAttempts int
}

func (p Params) rng() *rand.Rand {
	if p.Rand != nil {
		return p.Rand
	}
	return rand.New(rand.NewSource(p.Seed))
}

// packSpheres runs the advancing-front loop to completion.
//
// S is the append-only arena of placed spheres; the front F holds arena
// indices of spheres still eligible to anchor growth. Identity is by index,
// so coincident spheres can never alias each other, and retirement is a
// swap-removal of the index rather than a removal by value.
//
// Each iteration picks a front anchor s0 at random, gathers the neighbor set
// V of placed spheres within r0 + r' + 2r of its center (a conservative reach
// bound for anything that could overlap a new radius-r sphere tangent to s0),
// and asks the tangent-sphere solver for a placement against every unordered
// pair in V. The first pair yielding candidates has one accepted at random; a
// fully exhausted anchor can never grow again at this or any later stage of
// the search and is retired without redrawing r.
func packSpheres(ctx context.Context, container Container, sampler Sampler, params Params) ([]Sphere, error) {
	rng := params.rng()

	var radii [3]float64
	for i := range radii {
		r, err := drawRadius(sampler)
		if err != nil {
			return nil, err
		}
		radii[i] = r
	}
	seeds, err := seedSpheres(radii, container)
	if err != nil {
		return nil, err
	}

	spheres := make([]Sphere, 0, 64)
	spheres = append(spheres, seeds[:]...)
	front := []int{0, 1, 2}

	radius, err := drawRadius(sampler)
	if err != nil {
		return nil, err
	}

	attempts := 0
	for len(front) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		attempts++
		if params.MaxAttempts > 0 && attempts > params.MaxAttempts {
			return nil, fmt.Errorf("%w: %d attempts, %d spheres placed",
				ErrBudgetExhausted, params.MaxAttempts, len(spheres))
		}

		fi := rng.Intn(len(front))
		anchorIdx := front[fi]
		anchor := spheres[anchorIdx]

		var neighborhood []Sphere
		for i, s := range spheres {
			if i == anchorIdx {
				continue
			}
			if distance(anchor.Center, s.Center) <= anchor.Radius+s.Radius+2*radius {
				neighborhood = append(neighborhood, s)
			}
		}

		placed := false
		for _, pair := range pairIndices(len(neighborhood)) {
			candidates := tangentSpheres(anchor, neighborhood[pair[0]], neighborhood[pair[1]],
				radius, container, neighborhood)
			if len(candidates) == 0 {
				continue
			}
			chosen := candidates[rng.Intn(len(candidates))]
			spheres = append(spheres, chosen)
			front = append(front, len(spheres)-1)
			if radius, err = drawRadius(sampler); err != nil {
				return nil, err
			}
			placed = true
			break
		}
		if !placed {
			// Anchor exhausted: retire it. r is deliberately kept for the
			// next anchor.
			front[fi] = front[len(front)-1]
			front = front[:len(front)-1]
		}
	}
	return spheres, nil
}

func drawRadius(sampler Sampler) (float64, error) {
	r := sampler.Sample()
	if r <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidSample, r)
	}
	return r, nil
}
