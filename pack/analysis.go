package pack

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// Contacts returns every sphere touching sphere i within the contact
// tolerance. Sphere i itself is excluded automatically: its self-distance of
// zero never satisfies the predicate for a positive radius.
func (p *Packing) Contacts(i int) []Sphere {
	var out []Sphere
	for _, o := range p.Spheres {
		if p.Spheres[i].InContact(o) {
			out = append(out, o)
		}
	}
	return out
}

// ContactCount returns how many spheres touch sphere i.
func (p *Packing) ContactCount(i int) int {
	n := 0
	for _, o := range p.Spheres {
		if p.Spheres[i].InContact(o) {
			n++
		}
	}
	return n
}

// CoordinationNumber returns the arithmetic mean contact count over the whole
// packing, the standard connectivity indicator for granular systems.
func (p *Packing) CoordinationNumber() float64 {
	if len(p.Spheres) == 0 {
		return 0
	}
	total := 0
	for i := range p.Spheres {
		total += p.ContactCount(i)
	}
	return float64(total) / float64(len(p.Spheres))
}

// FabricTensor returns the second-order fabric tensor of the packing,
//
//	Φ_ab = (1/N) Σ_p (1/m_p) Σ_{c ∈ contacts(p)} n_pc[a]·n_pc[b]
//
// where n_pc is the unit contact normal from the center of sphere p to the
// center of contacting sphere c, and m_p is p's contact count. Spheres with
// no contacts contribute nothing. The trace is 1 whenever every sphere has at
// least one contact, which holds by construction for grown packings; a
// perfectly isotropic packing has diagonal entries near 1/3.
func (p *Packing) FabricTensor() *mat.SymDense {
	phi := mat.NewSymDense(3, nil)
	n := len(p.Spheres)
	if n == 0 {
		return phi
	}
	var acc [3][3]float64
	for i, s := range p.Spheres {
		contacts := p.Contacts(i)
		if len(contacts) == 0 {
			continue
		}
		var outer [3][3]float64
		for _, c := range contacts {
			normal := r3.Unit(r3.Sub(c.Center, s.Center))
			v := [3]float64{normal.X, normal.Y, normal.Z}
			for a := 0; a < 3; a++ {
				for b := 0; b < 3; b++ {
					outer[a][b] += v[a] * v[b]
				}
			}
		}
		m := float64(len(contacts))
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				acc[a][b] += outer[a][b] / m
			}
		}
	}
	for a := 0; a < 3; a++ {
		for b := a; b < 3; b++ {
			phi.SetSym(a, b, acc[a][b]/float64(n))
		}
	}
	return phi
}

// Anisotropy measures how far the packing deviates from isotropy: the largest
// absolute deviation of a fabric-tensor eigenvalue from 1/3. Zero means
// perfectly isotropic.
func (p *Packing) Anisotropy() float64 {
	var eig mat.EigenSym
	if !eig.Factorize(p.FabricTensor(), false) {
		return 0
	}
	dev := 0.0
	for _, lambda := range eig.Values(nil) {
		if d := lambda - 1.0/3.0; d > dev {
			dev = d
		} else if -d > dev {
			dev = -d
		}
	}
	return dev
}

// VolumeFraction returns ν = Vs/V, total sphere volume over container volume.
func (p *Packing) VolumeFraction() float64 {
	return p.sphereVolume() / p.Container.Volume()
}

// VoidRatio returns e = Vv/Vs, void volume over solid (sphere) volume.
func (p *Packing) VoidRatio() float64 {
	vs := p.sphereVolume()
	return (p.Container.Volume() - vs) / vs
}

func (p *Packing) sphereVolume() float64 {
	total := 0.0
	for _, s := range p.Spheres {
		total += s.Volume()
	}
	return total
}

// RadiusStats summarises the radius distribution of a packing.
type RadiusStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// RadiusStats returns summary statistics over the placed radii.
func (p *Packing) RadiusStats() RadiusStats {
	if len(p.Spheres) == 0 {
		return RadiusStats{}
	}
	radii := make([]float64, len(p.Spheres))
	for i, s := range p.Spheres {
		radii[i] = s.Radius
	}
	return RadiusStats{
		Mean:   stat.Mean(radii, nil),
		StdDev: stat.StdDev(radii, nil),
		Min:    floats.Min(radii),
		Max:    floats.Max(radii),
	}
}

// ContactHistogram returns the distribution of per-sphere contact counts,
// keyed by count.
func (p *Packing) ContactHistogram() map[int]int {
	hist := make(map[int]int)
	for i := range p.Spheres {
		hist[p.ContactCount(i)]++
	}
	return hist
}
