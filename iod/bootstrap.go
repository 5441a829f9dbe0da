// Public domain.

package iod

import (
	"math"

	xrand "golang.org/x/exp/rand"

	"github.com/FusRoman/outfit"
	"github.com/FusRoman/outfit/obs"
	"github.com/FusRoman/outfit/orbit"
)

// Result pairs an estimated orbit with its fit quality, the rms of the
// angular residuals in arc seconds over the unperturbed trajectory.
type Result struct {
	Orbit orbit.GaussResult
	RMS   float64
}

// estimateObject runs the full pipeline for one trajectory: triplet
// selection, a Gauss solve per triplet on the unperturbed trajectory
// and on NNoiseRealizations perturbed copies, optional differential
// correction, and argmin selection by rms over the unperturbed
// trajectory.  Ties keep the earliest (realization, triplet) attempt.
func estimateObject(env *outfit.Outfit, traj []obs.Observation,
	p Params, seed uint64, id uint32) (Result, error) {

	if len(traj) < 3 {
		return Result{}, InsufficientObservationsError{len(traj)}
	}
	trips := selectTriplets(traj, p)
	eph := env.Ephemeris()
	floor := env.ErrorModel().SigmaFloor().Rad()

	bestRMS := math.Inf(1)
	var bestK orbit.Keplerian
	var bestStage orbit.Stage
	found := false
	attempts := 0

	// realization 0 is the unperturbed trajectory
	for re := 0; re <= p.NNoiseRealizations; re++ {
		work := traj
		if re > 0 {
			rnd := xrand.New(&xrand.PCGSource{})
			rnd.Seed(mixSeed(seed, uint64(id), re))
			work = perturb(traj, p.NoiseScale, floor, rnd)
		}
		for _, t := range trips {
			attempts++
			states, err := solveGauss(eph, work[t[0]], work[t[1]], work[t[2]])
			if err != nil {
				continue
			}
			for _, s := range states {
				stage := orbit.Preliminary
				if p.Correct {
					if cs, err := correctState(eph, s, work); err == nil {
						s, stage = cs, orbit.Corrected
					}
				}
				k, err := s.Keplerian()
				if err != nil {
					continue
				}
				r, err := rmsArcsec(eph, s, traj)
				if err != nil || math.IsNaN(r) || math.IsInf(r, 0) {
					continue
				}
				if r < bestRMS {
					bestRMS, bestK, bestStage = r, k, stage
					found = true
				}
			}
		}
	}
	if !found {
		return Result{}, NoConvergentSolutionError{
			Realizations: p.NNoiseRealizations + 1,
			Triplets:     attempts,
		}
	}
	return Result{Orbit: orbit.NewResult(bestStage, bestK), RMS: bestRMS}, nil
}

// perturb copies a trajectory with Gaussian noise added to each angle,
// standard deviation scale times the observation's sigma.  A zero
// sigma takes the error model floor.
func perturb(traj []obs.Observation, scale, floor float64, rnd *xrand.Rand) []obs.Observation {
	work := make([]obs.Observation, len(traj))
	for i, o := range traj {
		sra, sdec := o.SigmaRA, o.SigmaDec
		if sra == 0 {
			sra = floor
		}
		if sdec == 0 {
			sdec = floor
		}
		o.RA += rnd.NormFloat64() * scale * sra
		o.Dec += rnd.NormFloat64() * scale * sdec
		work[i] = o
	}
	return work
}

// mixSeed maps (caller seed, object id, realization index) to a
// generator state, splitmix style, so results do not depend on the
// degree of parallelism.
func mixSeed(seed, id uint64, re int) uint64 {
	z := seed + id*0x9e3779b97f4a7c15 + uint64(re)*0xd1342543de82ef95 + 1
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	return z ^ z>>31
}
