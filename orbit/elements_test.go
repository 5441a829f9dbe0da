// Public domain.

package orbit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FusRoman/outfit/orbit"
)

func TestEquinoctialRoundTrip(t *testing.T) {
	// a and e survive the trip within relative 1e-9 across the
	// non-singular domain
	for _, a := range []float64{.71, 1.3, 2.45, 5.2, 31} {
		for _, e := range []float64{0, .05, .3, .6, .9, .95} {
			for _, i := range []float64{.01, .4, 1.1, 2.2, math.Pi - .01} {
				k := orbit.Keplerian{
					ReferenceEpoch:         57000,
					SemiMajorAxis:          a,
					Eccentricity:           e,
					Inclination:            i,
					AscendingNodeLongitude: 1.9,
					PeriapsisArgument:      4.2,
					MeanAnomaly:            .7,
				}
				back := k.Equinoctial().Keplerian()
				require.InEpsilon(t, a, back.SemiMajorAxis, 1e-9)
				if e == 0 {
					require.InDelta(t, 0, back.Eccentricity, 1e-12)
				} else {
					require.InEpsilon(t, e, back.Eccentricity, 1e-9)
					require.InEpsilon(t, i, back.Inclination, 1e-9)
					require.InDelta(t, k.AscendingNodeLongitude, back.AscendingNodeLongitude, 1e-9)
					require.InDelta(t, k.PeriapsisArgument, back.PeriapsisArgument, 1e-9)
					require.InDelta(t, k.MeanAnomaly, back.MeanAnomaly, 1e-9)
				}
				require.Equal(t, k.ReferenceEpoch, back.ReferenceEpoch)
			}
		}
	}
}

func TestEquinoctialSingularConfigurations(t *testing.T) {
	// circular orbit: equinoctial is well defined, the angles come
	// back with the conventional zero longitude of periapsis
	k := orbit.Keplerian{
		SemiMajorAxis: 2, Inclination: .3,
		AscendingNodeLongitude: 1, PeriapsisArgument: 2, MeanAnomaly: 3,
	}
	q := k.Equinoctial()
	require.InDelta(t, 0, q.EccentricitySinLon, 1e-15)
	back := q.Keplerian()
	require.InEpsilon(t, 2., back.SemiMajorAxis, 1e-12)
	// M + ω + Ω is preserved even though the split is conventional
	require.InDelta(t,
		math.Mod(1+2+3, 2*math.Pi),
		math.Mod(back.AscendingNodeLongitude+back.PeriapsisArgument+back.MeanAnomaly, 2*math.Pi),
		1e-9)

	// equatorial orbit: node conventionally zero
	k = orbit.Keplerian{SemiMajorAxis: 1.5, Eccentricity: .2,
		AscendingNodeLongitude: 2.5, PeriapsisArgument: 1.5, MeanAnomaly: .5}
	back = k.Equinoctial().Keplerian()
	require.InDelta(t, 0, back.Inclination, 1e-12)
	require.InDelta(t, 0., back.AscendingNodeLongitude, 1e-12)
	require.InDelta(t,
		math.Mod(2.5+1.5, 2*math.Pi), back.PeriapsisArgument, 1e-9)
}

func TestCometaryRoundTrip(t *testing.T) {
	k := orbit.Keplerian{
		ReferenceEpoch:         57100,
		SemiMajorAxis:          3.2,
		Eccentricity:           .65,
		Inclination:            .8,
		AscendingNodeLongitude: 2.1,
		PeriapsisArgument:      5.5,
		MeanAnomaly:            1.3,
	}
	c, err := k.Cometary()
	require.NoError(t, err)
	require.InEpsilon(t, 3.2*(1-.65), c.PerihelionDistance, 1e-12)
	require.Less(t, c.TimeOfPerihelion, k.ReferenceEpoch)

	back, err := c.Keplerian()
	require.NoError(t, err)
	require.InEpsilon(t, k.SemiMajorAxis, back.SemiMajorAxis, 1e-9)
	require.InEpsilon(t, k.Eccentricity, back.Eccentricity, 1e-9)
	require.InDelta(t, k.MeanAnomaly, back.MeanAnomaly, 1e-9)

	nu, err := c.TrueAnomaly()
	require.NoError(t, err)
	// true anomaly leads mean anomaly on the outbound leg
	require.Greater(t, nu, k.MeanAnomaly)
}

func TestCometarySingularities(t *testing.T) {
	var sc *orbit.SingularConversionError

	// hyperbolic keplerian has no cometary image through this path
	_, err := orbit.Keplerian{SemiMajorAxis: -1.2, Eccentricity: 1.5}.Cometary()
	require.ErrorAs(t, err, &sc)

	// parabolic and hyperbolic cometary sets exist but do not convert
	c := orbit.Cometary{PerihelionDistance: .5, Eccentricity: 1}
	_, err = c.Keplerian()
	require.ErrorAs(t, err, &sc)
	_, err = c.Equinoctial()
	require.ErrorAs(t, err, &sc)
	_, err = c.TrueAnomaly()
	require.ErrorAs(t, err, &sc)

	_, err = orbit.Cometary{PerihelionDistance: 0, Eccentricity: .5}.Keplerian()
	require.ErrorAs(t, err, &sc)
}

func TestResultAccessors(t *testing.T) {
	k := orbit.Keplerian{SemiMajorAxis: 2.3, Eccentricity: .1, ReferenceEpoch: 57000}
	r := orbit.NewResult(orbit.Corrected, k)

	require.True(t, r.IsCorrected())
	require.False(t, r.IsPreliminary())
	require.Equal(t, "corrected", r.Stage().String())
	require.Equal(t, "keplerian", r.ElementsType())

	got, ok := r.Keplerian()
	require.True(t, ok)
	require.Equal(t, k, got)
	_, ok = r.Cometary()
	require.False(t, ok)
	_, ok = r.Equinoctial()
	require.False(t, ok)

	f := r.Fields()
	require.Equal(t, 2.3, f["semi_major_axis"])
	require.Equal(t, 57000., f["reference_epoch"])

	p := orbit.NewResult(orbit.Preliminary, k.Equinoctial())
	require.True(t, p.IsPreliminary())
	require.Equal(t, "equinoctial", p.ElementsType())
}
