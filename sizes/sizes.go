// Package sizes provides radius samplers for the packing engine, wrapping the
// gonum distuv distributions behind pack.Sampler.
//
// The engine requires strictly positive radii. Uniform and LogNormal satisfy
// this by construction (given valid parameters); Normal can draw non-positive
// values, which the engine rejects as pack.ErrInvalidSample. Pick
// distribution parameters accordingly.
package sizes

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform samples radii uniformly from [Min, Max).
type Uniform struct {
	dist distuv.Uniform
}

// NewUniform returns a seeded uniform sampler over [min, max).
func NewUniform(min, max float64, seed uint64) *Uniform {
	return &Uniform{dist: distuv.Uniform{Min: min, Max: max, Src: rand.NewSource(seed)}}
}

// Sample draws one radius.
func (u *Uniform) Sample() float64 { return u.dist.Rand() }

// Normal samples radii from a normal distribution. Sub-optimal packings and
// rejected draws are expected when sigma is large relative to mu.
type Normal struct {
	dist distuv.Normal
}

// NewNormal returns a seeded normal sampler with mean mu and standard
// deviation sigma.
func NewNormal(mu, sigma float64, seed uint64) *Normal {
	return &Normal{dist: distuv.Normal{Mu: mu, Sigma: sigma, Src: rand.NewSource(seed)}}
}

// Sample draws one radius.
func (n *Normal) Sample() float64 { return n.dist.Rand() }

// LogNormal samples radii from a log-normal distribution, always positive.
type LogNormal struct {
	dist distuv.LogNormal
}

// NewLogNormal returns a seeded log-normal sampler.
func NewLogNormal(mu, sigma float64, seed uint64) *LogNormal {
	return &LogNormal{dist: distuv.LogNormal{Mu: mu, Sigma: sigma, Src: rand.NewSource(seed)}}
}

// Sample draws one radius.
func (l *LogNormal) Sample() float64 { return l.dist.Rand() }

// Constant always returns the same radius, giving monodisperse packings.
type Constant struct {
	r float64
}

// NewConstant returns a sampler fixed at radius r.
func NewConstant(r float64) *Constant { return &Constant{r: r} }

// Sample returns the fixed radius.
func (c *Constant) Sample() float64 { return c.r }
