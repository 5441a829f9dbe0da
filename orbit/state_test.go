// Public domain.

package orbit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FusRoman/outfit/astro"
	"github.com/FusRoman/outfit/orbit"
)

var stateTestOrbits = []orbit.Keplerian{
	{ReferenceEpoch: 57000, SemiMajorAxis: 2.36, Eccentricity: .09,
		Inclination: .13, AscendingNodeLongitude: 1.4,
		PeriapsisArgument: 2.7, MeanAnomaly: .9},
	{ReferenceEpoch: 57000, SemiMajorAxis: 1.08, Eccentricity: .19,
		Inclination: .41, AscendingNodeLongitude: 4.9,
		PeriapsisArgument: .6, MeanAnomaly: 5.1},
	{ReferenceEpoch: 57000, SemiMajorAxis: 5.2, Eccentricity: .048,
		Inclination: .02, AscendingNodeLongitude: 1.75,
		PeriapsisArgument: 4.78, MeanAnomaly: 2.2},
	{ReferenceEpoch: 57000, SemiMajorAxis: 17.8, Eccentricity: .83,
		Inclination: 2.83, AscendingNodeLongitude: 1.02,
		PeriapsisArgument: 1.95, MeanAnomaly: .05},
}

func TestStateVectorRoundTrip(t *testing.T) {
	for _, k := range stateTestOrbits {
		s := k.StateVector()
		back, err := s.Keplerian()
		require.NoError(t, err)
		require.InEpsilon(t, k.SemiMajorAxis, back.SemiMajorAxis, 1e-9)
		require.InDelta(t, k.Eccentricity, back.Eccentricity, 1e-9)
		require.InDelta(t, k.Inclination, back.Inclination, 1e-9)
		require.InDelta(t, k.AscendingNodeLongitude, back.AscendingNodeLongitude, 1e-8)
		require.InDelta(t, k.PeriapsisArgument, back.PeriapsisArgument, 1e-7)
		require.InDelta(t, k.MeanAnomaly, back.MeanAnomaly, 1e-7)
		require.Equal(t, k.ReferenceEpoch, back.ReferenceEpoch)
	}
}

func TestStateVectorGuards(t *testing.T) {
	// unbound and wildly distant states fail inversion rather than
	// returning junk elements
	s := orbit.StateVector{
		Pos: stateTestOrbits[0].StateVector().Pos,
		Vel: stateTestOrbits[0].StateVector().Vel,
	}
	s.Vel.MulScalar(&s.Vel, 10) // well above escape speed
	_, err := s.Keplerian()
	require.Error(t, err)
}

func TestPropagateFullPeriod(t *testing.T) {
	for _, k := range stateTestOrbits[:3] {
		s := k.StateVector()
		period := 2 * math.Pi / (astro.K * math.Pow(k.SemiMajorAxis, -1.5))
		p, err := s.Propagate(period)
		require.NoError(t, err)
		require.InDelta(t, s.Pos.X, p.Pos.X, 1e-8)
		require.InDelta(t, s.Pos.Y, p.Pos.Y, 1e-8)
		require.InDelta(t, s.Pos.Z, p.Pos.Z, 1e-8)
		require.Equal(t, s.Epoch+period, p.Epoch)
	}
}

func TestPropagateConservation(t *testing.T) {
	k := stateTestOrbits[1]
	s := k.StateVector()
	e0 := s.Vel.Square()/2 - astro.U/math.Sqrt(s.Pos.Square())
	for _, dt := range []float64{-40, -1.5, .25, 12, 300} {
		p, err := s.Propagate(dt)
		require.NoError(t, err)
		e := p.Vel.Square()/2 - astro.U/math.Sqrt(p.Pos.Square())
		require.InEpsilon(t, e0, e, 1e-9)

		back, err := p.Propagate(-dt)
		require.NoError(t, err)
		require.InDelta(t, s.Pos.X, back.Pos.X, 1e-10)
		require.InDelta(t, s.Vel.X, back.Vel.X, 1e-12)
	}
}
