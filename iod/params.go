// Public domain.

// Package iod estimates preliminary heliocentric orbits from angular
// observations by Gauss's three-observation method, with a noise
// bootstrap for robustness and an optional differential correction
// over the full trajectory.
package iod

import "fmt"

// Params configures the estimation pipeline.  Construct through
// NewParamsBuilder; a Params value is immutable once built.
type Params struct {
	// NNoiseRealizations is the number of Gaussian-perturbed copies of
	// each trajectory solved in addition to the unperturbed one.
	NNoiseRealizations int

	// NoiseScale multiplies each observation's sigma when perturbing.
	NoiseScale float64

	// MaxObsForTriplets caps the triplet-selection pool to the first
	// so many observations of a trajectory.  This bounds combinatorics,
	// not accuracy.
	MaxObsForTriplets int

	// MaxTriplets caps the combinations attempted per trajectory.
	// Rejected combinations count against the budget.
	MaxTriplets int

	// MinEpochGap rejects triplets with consecutive epochs closer than
	// this many days.
	MinEpochGap float64

	// Correct enables the differential-correction pass over the full
	// trajectory after each preliminary solve.
	Correct bool
}

// DefaultParams returns the default configuration.
func DefaultParams() Params {
	return Params{
		NNoiseRealizations: 5,
		NoiseScale:         1,
		MaxObsForTriplets:  12,
		MaxTriplets:        30,
		MinEpochGap:        1e-3,
		Correct:            true,
	}
}

// ParamsBuilder accumulates settings for a Params.  Zero-valued fields
// keep their defaults.  Validation happens at Build.
type ParamsBuilder struct {
	p   Params
	set struct {
		minEpochGap bool
	}
}

// NewParamsBuilder starts a builder at the defaults.
func NewParamsBuilder() *ParamsBuilder {
	return &ParamsBuilder{p: DefaultParams()}
}

// NNoiseRealizations sets the number of perturbed solves per object.
func (b *ParamsBuilder) NNoiseRealizations(n int) *ParamsBuilder {
	b.p.NNoiseRealizations = n
	return b
}

// NoiseScale sets the sigma multiplier for perturbations.
func (b *ParamsBuilder) NoiseScale(s float64) *ParamsBuilder {
	b.p.NoiseScale = s
	return b
}

// MaxObsForTriplets sets the triplet-selection pool size.
func (b *ParamsBuilder) MaxObsForTriplets(n int) *ParamsBuilder {
	b.p.MaxObsForTriplets = n
	return b
}

// MaxTriplets sets the triplet attempt budget.
func (b *ParamsBuilder) MaxTriplets(n int) *ParamsBuilder {
	b.p.MaxTriplets = n
	return b
}

// MinEpochGap sets the minimum separation in days between consecutive
// triplet epochs.
func (b *ParamsBuilder) MinEpochGap(days float64) *ParamsBuilder {
	b.p.MinEpochGap = days
	b.set.minEpochGap = true
	return b
}

// NoCorrection disables the differential-correction pass.
func (b *ParamsBuilder) NoCorrection() *ParamsBuilder {
	b.p.Correct = false
	return b
}

// Build validates and returns the accumulated configuration.
func (b *ParamsBuilder) Build() (Params, error) {
	p := b.p
	switch {
	case p.NNoiseRealizations <= 0:
		return Params{}, fmt.Errorf("n noise realizations %d, must be positive", p.NNoiseRealizations)
	case p.NoiseScale <= 0:
		return Params{}, fmt.Errorf("noise scale %g, must be positive", p.NoiseScale)
	case p.MaxObsForTriplets < 3:
		return Params{}, fmt.Errorf("max obs for triplets %d, must be at least 3", p.MaxObsForTriplets)
	case p.MaxTriplets <= 0:
		return Params{}, fmt.Errorf("max triplets %d, must be positive", p.MaxTriplets)
	case p.MinEpochGap <= 0 && b.set.minEpochGap:
		return Params{}, fmt.Errorf("min epoch gap %g, must be positive", p.MinEpochGap)
	}
	return p, nil
}
