package pack

import "errors"

var (
	// ErrSeedUnplaceable means the three initially sampled radii form a
	// mutually tangent triple that does not fit inside the container. This is
	// a legitimate outcome for small containers or large initial radii and is
	// fatal only to the packing attempt, not the process.
	ErrSeedUnplaceable = errors.New("pack: seed spheres not contained by boundary geometry")

	// ErrInvalidSample means the radius sampler returned a non-positive
	// value. The engine refuses to continue packing with an invalid radius.
	ErrInvalidSample = errors.New("pack: sampler returned non-positive radius")

	// ErrBudgetExhausted means the configured attempt budget ran out before
	// the front emptied. No partial packing is returned.
	ErrBudgetExhausted = errors.New("pack: attempt budget exhausted before front emptied")
)
