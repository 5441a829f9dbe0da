// Public domain.

package iod

import (
	"math"

	"github.com/soniakeys/coord"

	"github.com/FusRoman/outfit/astro"
	"github.com/FusRoman/outfit/obs"
	"github.com/FusRoman/outfit/orbit"
)

const arcSecRad = math.Pi / (180 * 3600)

// predictDirection propagates a heliocentric ecliptic state to an
// observation's epoch and returns the predicted topocentric RA and Dec
// in radians.  One light-time iteration is applied.
func predictDirection(eph astro.Ephemeris, s orbit.StateVector, o obs.Observation) (ra, dec float64, err error) {
	site, err := o.Site.HeliocentricAt(eph, o.MJD)
	if err != nil {
		return 0, 0, err
	}
	_, soe, coe, err := eph.SunEarth(o.MJD)
	if err != nil {
		return 0, 0, err
	}
	emit := o.MJD
	var topo coord.Cart
	for it := 0; it < 2; it++ {
		p, err := s.Propagate(emit - s.Epoch)
		if err != nil {
			return 0, 0, err
		}
		// object to the equatorial frame, then relative to the site
		eq := p.Pos
		eq.RotateX(&eq, -soe, coe)
		topo.Sub(&eq, &site)
		emit = o.MJD - math.Sqrt(topo.Square())/astro.CLight
	}
	ra = math.Atan2(topo.Y, topo.X)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec = math.Asin(topo.Z / math.Sqrt(topo.Square()))
	return ra, dec, nil
}

// residuals returns per-observation angular residuals, observed minus
// predicted, as (ΔRA·cos δ, ΔDec) pairs in radians.
func residuals(eph astro.Ephemeris, s orbit.StateVector, traj []obs.Observation) ([]float64, error) {
	res := make([]float64, 2*len(traj))
	for i, o := range traj {
		ra, dec, err := predictDirection(eph, s, o)
		if err != nil {
			return nil, err
		}
		dra := math.Mod(o.RA-ra+3*math.Pi, 2*math.Pi) - math.Pi
		res[2*i] = dra * math.Cos(dec)
		res[2*i+1] = o.Dec - dec
	}
	return res, nil
}

// rmsArcsec scores a state against a trajectory: the root mean square
// of the 2d angular residuals in arc seconds.
func rmsArcsec(eph astro.Ephemeris, s orbit.StateVector, traj []obs.Observation) (float64, error) {
	res, err := residuals(eph, s, traj)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, r := range res {
		sum += r * r
	}
	return math.Sqrt(sum/float64(len(traj))) / arcSecRad, nil
}
