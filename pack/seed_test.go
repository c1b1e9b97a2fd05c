package pack

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSeedSpheres_PairwiseTangent(t *testing.T) {
	cases := []struct {
		name  string
		radii [3]float64
	}{
		{"equal", [3]float64{1, 1, 1}},
		{"mixed", [3]float64{0.5, 1.2, 0.8}},
		{"small", [3]float64{0.05, 0.07, 0.06}},
	}
	for _, tc := range cases {
		seeds, err := seedSpheres(tc.radii, boundless{})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		pairs := [3][2]int{{0, 1}, {0, 2}, {1, 2}}
		for _, p := range pairs {
			d := distance(seeds[p[0]].Center, seeds[p[1]].Center)
			want := seeds[p[0]].Radius + seeds[p[1]].Radius
			if math.Abs(d-want) > 1e-9 {
				t.Errorf("%s: spheres %d,%d center distance %v, want %v", tc.name, p[0], p[1], d, want)
			}
		}
	}
}

func TestSeedSpheres_IncenterAtOrigin(t *testing.T) {
	seeds, err := seedSpheres([3]float64{0.4, 0.9, 0.6}, boundless{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Recompute the incenter of the translated triangle; it should be the
	// origin. Incenter weights are the lengths of the opposite sides.
	a := distance(seeds[1].Center, seeds[2].Center)
	b := distance(seeds[0].Center, seeds[2].Center)
	c := distance(seeds[0].Center, seeds[1].Center)
	perimeter := a + b + c
	incenter := r3.Scale(1/perimeter, r3.Add(
		r3.Scale(a, seeds[0].Center),
		r3.Add(r3.Scale(b, seeds[1].Center), r3.Scale(c, seeds[2].Center))))
	if r3.Norm(incenter) > 1e-9 {
		t.Errorf("incenter = %v, want origin", incenter)
	}
}

func TestSeedSpheres_Unplaceable(t *testing.T) {
	_, err := seedSpheres([3]float64{1, 1, 1}, ballContainer{radius: 1.5})
	if !errors.Is(err, ErrSeedUnplaceable) {
		t.Fatalf("expected ErrSeedUnplaceable, got %v", err)
	}
}

func TestSeedSpheres_PlanarSeeds(t *testing.T) {
	seeds, err := seedSpheres([3]float64{1, 2, 3}, boundless{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, s := range seeds {
		if s.Center.Z != 0 {
			t.Errorf("seed %d has Z = %v, want 0", i, s.Center.Z)
		}
	}
}
