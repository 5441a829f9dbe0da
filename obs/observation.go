// Public domain.

package obs

import (
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

// Observation is a single optical astrometric measurement.
type Observation struct {
	MJD      float64 // epoch, MJD TT
	RA       float64 // right ascension, radians, [0, 2π)
	Dec      float64 // declination, radians, [-π/2, π/2]
	SigmaRA  float64 // 1-sigma RA uncertainty, radians
	SigmaDec float64 // 1-sigma Dec uncertainty, radians
	Site     *Observer
}

// Equa returns the measured direction as a spherical equatorial
// coordinate.
func (o *Observation) Equa() coord.Equa {
	return newEqua(o.RA, o.Dec)
}

// DirectionUnit returns the measured direction as an equatorial
// cartesian unit vector.
func (o *Observation) DirectionUnit() coord.Cart {
	sa, ca := math.Sincos(o.RA)
	sd, cd := math.Sincos(o.Dec)
	return coord.Cart{
		X: cd * ca,
		Y: cd * sa,
		Z: sd,
	}
}

// newEqua builds a coord.Equa from angles in radians.  The unit
// package constructs RA from time units and declination from arc
// units, so both go through seconds.
func newEqua(ra, dec float64) coord.Equa {
	return coord.Equa{
		RA:  unit.NewRA(0, 0, ra*(12*3600)/math.Pi),
		Dec: unit.AngleFromSec(dec * (180 * 3600) / math.Pi),
	}
}
