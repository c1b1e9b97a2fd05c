package pack

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSphereVolume(t *testing.T) {
	s := Sphere{Radius: 2}
	want := 4.0 / 3.0 * math.Pi * 8
	if math.Abs(s.Volume()-want) > 1e-12 {
		t.Errorf("Volume() = %v, want %v", s.Volume(), want)
	}
}

func TestSphereOverlaps(t *testing.T) {
	a := Sphere{Center: r3.Vec{}, Radius: 1}
	cases := []struct {
		name string
		b    Sphere
		want bool
	}{
		{"separated", Sphere{Center: r3.Vec{X: 3}, Radius: 1}, false},
		{"tangent is not overlap", Sphere{Center: r3.Vec{X: 2}, Radius: 1}, false},
		{"intersecting", Sphere{Center: r3.Vec{X: 1.5}, Radius: 1}, true},
		{"nested", Sphere{Center: r3.Vec{X: 0.1}, Radius: 0.2}, true},
	}
	for _, tc := range cases {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSphereInContact(t *testing.T) {
	a := Sphere{Center: r3.Vec{}, Radius: 1}
	cases := []struct {
		name string
		b    Sphere
		want bool
	}{
		{"exact tangency", Sphere{Center: r3.Vec{X: 2}, Radius: 1}, true},
		{"within tolerance", Sphere{Center: r3.Vec{X: 2.0005}, Radius: 1}, true},
		{"outside tolerance", Sphere{Center: r3.Vec{X: 2.01}, Radius: 1}, false},
		{"overlapping outside tolerance", Sphere{Center: r3.Vec{X: 1.5}, Radius: 1}, false},
		{"self is never a contact", a, false},
	}
	for _, tc := range cases {
		if got := a.InContact(tc.b); got != tc.want {
			t.Errorf("%s: InContact = %v, want %v", tc.name, got, tc.want)
		}
	}
}
