// Package shapes provides bounding geometries for sphere packing: a spherical
// container and an origin-centred cuboid. Both satisfy pack.Container.
package shapes

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/spherepack/pack"
)

// Sphere is a spherical container.
type Sphere struct {
	Center r3.Vec
	Radius float64
}

// NewSphere returns a spherical container of the given radius centred on the
// origin.
func NewSphere(radius float64) (Sphere, error) {
	if radius <= 0 {
		return Sphere{}, fmt.Errorf("shapes: container radius must be positive, got %v", radius)
	}
	return Sphere{Radius: radius}, nil
}

// Contains reports whether s lies entirely inside the container: the distance
// from the container center to s's center plus s's radius must not exceed the
// container radius.
func (c Sphere) Contains(s pack.Sphere) bool {
	return r3.Norm(r3.Sub(s.Center, c.Center))+s.Radius <= c.Radius
}

// Volume returns 4/3·π·R³.
func (c Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * c.Radius * c.Radius * c.Radius
}

// Cuboid is a rectangular container centred on the origin, described by its
// half-extents along each axis.
type Cuboid struct {
	HalfX, HalfY, HalfZ float64
}

// NewCuboid returns an origin-centred cuboid with the given full side
// lengths.
func NewCuboid(x, y, z float64) (Cuboid, error) {
	if x <= 0 || y <= 0 || z <= 0 {
		return Cuboid{}, fmt.Errorf("shapes: cuboid sides must be positive, got %v×%v×%v", x, y, z)
	}
	return Cuboid{HalfX: x / 2, HalfY: y / 2, HalfZ: z / 2}, nil
}

// Contains reports whether s fits inside the cuboid along all three axes.
func (c Cuboid) Contains(s pack.Sphere) bool {
	return math.Abs(s.Center.X)+s.Radius <= c.HalfX &&
		math.Abs(s.Center.Y)+s.Radius <= c.HalfY &&
		math.Abs(s.Center.Z)+s.Radius <= c.HalfZ
}

// Volume returns the cuboid volume.
func (c Cuboid) Volume() float64 {
	return 8 * c.HalfX * c.HalfY * c.HalfZ
}

// Compile-time interface checks.
var (
	_ pack.Container = Sphere{}
	_ pack.Container = Cuboid{}
)
