// Public domain.

// Package orbit holds the orbital element representations produced by
// the estimator and the conversions between them.
//
// Three interchangeable families describe the same two-body heliocentric
// orbit.  Keplerian is the familiar set, singular at zero eccentricity
// and zero inclination.  Equinoctial replaces the singular angles with
// non-singular combinations.  Cometary trades the semi-major axis for
// the perihelion distance and is the representation of record for
// near-parabolic orbits.  Angles are radians, lengths AU, epochs
// MJD (TT).
package orbit

import (
	"fmt"
	"math"

	"github.com/FusRoman/outfit/astro"
)

// SingularConversionError reports an element conversion attempted at a
// configuration where the target representation is undefined.
type SingularConversionError struct {
	From, To string
	Reason   string
}

func (e *SingularConversionError) Error() string {
	return fmt.Sprintf("orbit: cannot convert %s to %s: %s", e.From, e.To, e.Reason)
}

// Keplerian is the classical element set for a bound orbit.
type Keplerian struct {
	ReferenceEpoch         float64 // MJD (TT)
	SemiMajorAxis          float64 // AU
	Eccentricity           float64 // in [0,1)
	Inclination            float64 // [0,π]
	AscendingNodeLongitude float64 // [0,2π)
	PeriapsisArgument      float64 // [0,2π)
	MeanAnomaly            float64 // [0,2π)
}

// Equinoctial is the non-singular reparametrization of a bound orbit:
// h = e·sin ϖ, k = e·cos ϖ, p = tan(i/2)·sin Ω, q = tan(i/2)·cos Ω and
// the mean longitude λ = M + ϖ, with ϖ = Ω + ω.  It is well defined at
// e = 0 and i = 0; i = π remains excluded (tan(i/2) diverges).
type Equinoctial struct {
	ReferenceEpoch     float64
	SemiMajorAxis      float64
	EccentricitySinLon float64
	EccentricityCosLon float64
	TanHalfInclSinNode float64
	TanHalfInclCosNode float64
	MeanLongitude      float64
}

// Cometary describes an orbit by its perihelion.  Unlike the other two
// families it stays meaningful as e approaches and passes 1.
type Cometary struct {
	ReferenceEpoch         float64
	PerihelionDistance     float64 // AU
	Eccentricity           float64
	Inclination            float64
	AscendingNodeLongitude float64
	PeriapsisArgument      float64
	TimeOfPerihelion       float64 // MJD (TT)
}

func mod2pi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// solveKepler returns the eccentric anomaly for mean anomaly m and
// eccentricity e < 1.  Newton iteration from a standard starter; the
// equation is well conditioned for the eccentricities the estimator
// emits.
func solveKepler(m, e float64) float64 {
	ea := m
	if e > .8 {
		ea = math.Pi
	}
	for i := 0; i < 30; i++ {
		se, ce := math.Sincos(ea)
		d := (ea - e*se - m) / (1 - e*ce)
		ea -= d
		if math.Abs(d) < 1e-14 {
			break
		}
	}
	return ea
}

// Equinoctial converts to the non-singular representation.  The
// conversion is total for any valid Keplerian set.
func (k Keplerian) Equinoctial() Equinoctial {
	lonPeri := k.AscendingNodeLongitude + k.PeriapsisArgument
	sw, cw := math.Sincos(lonPeri)
	sn, cn := math.Sincos(k.AscendingNodeLongitude)
	th := math.Tan(k.Inclination / 2)
	return Equinoctial{
		ReferenceEpoch:     k.ReferenceEpoch,
		SemiMajorAxis:      k.SemiMajorAxis,
		EccentricitySinLon: k.Eccentricity * sw,
		EccentricityCosLon: k.Eccentricity * cw,
		TanHalfInclSinNode: th * sn,
		TanHalfInclCosNode: th * cn,
		MeanLongitude:      mod2pi(k.MeanAnomaly + lonPeri),
	}
}

// Keplerian converts back to classical elements.  At e = 0 the
// longitude of periapsis is conventionally 0; at i = 0 the node is 0.
func (q Equinoctial) Keplerian() Keplerian {
	e := math.Hypot(q.EccentricitySinLon, q.EccentricityCosLon)
	th := math.Hypot(q.TanHalfInclSinNode, q.TanHalfInclCosNode)
	var node float64
	if th > 0 {
		node = mod2pi(math.Atan2(q.TanHalfInclSinNode, q.TanHalfInclCosNode))
	}
	var lonPeri float64
	if e > 0 {
		lonPeri = mod2pi(math.Atan2(q.EccentricitySinLon, q.EccentricityCosLon))
	}
	return Keplerian{
		ReferenceEpoch:         q.ReferenceEpoch,
		SemiMajorAxis:          q.SemiMajorAxis,
		Eccentricity:           e,
		Inclination:            2 * math.Atan(th),
		AscendingNodeLongitude: node,
		PeriapsisArgument:      mod2pi(lonPeri - node),
		MeanAnomaly:            mod2pi(q.MeanLongitude - lonPeri),
	}
}

// Cometary converts to the perihelion representation.  The time of
// perihelion is the passage preceding the reference epoch.
func (k Keplerian) Cometary() (Cometary, error) {
	if k.SemiMajorAxis <= 0 || k.Eccentricity >= 1 {
		return Cometary{}, &SingularConversionError{
			From: "keplerian", To: "cometary",
			Reason: "orbit is not elliptic (no finite semi-major axis)",
		}
	}
	n := astro.K * math.Pow(k.SemiMajorAxis, -1.5) // mean motion, rad/day
	return Cometary{
		ReferenceEpoch:         k.ReferenceEpoch,
		PerihelionDistance:     k.SemiMajorAxis * (1 - k.Eccentricity),
		Eccentricity:           k.Eccentricity,
		Inclination:            k.Inclination,
		AscendingNodeLongitude: k.AscendingNodeLongitude,
		PeriapsisArgument:      k.PeriapsisArgument,
		TimeOfPerihelion:       k.ReferenceEpoch - mod2pi(k.MeanAnomaly)/n,
	}, nil
}

// Keplerian converts back to classical elements.  e ≥ 1 has no finite
// semi-major axis and fails explicitly rather than propagating NaN.
func (c Cometary) Keplerian() (Keplerian, error) {
	if c.Eccentricity >= 1 {
		return Keplerian{}, &SingularConversionError{
			From: "cometary", To: "keplerian",
			Reason: fmt.Sprintf("eccentricity %.6f not below 1", c.Eccentricity),
		}
	}
	if c.PerihelionDistance <= 0 {
		return Keplerian{}, &SingularConversionError{
			From: "cometary", To: "keplerian",
			Reason: "perihelion distance must be positive",
		}
	}
	a := c.PerihelionDistance / (1 - c.Eccentricity)
	n := astro.K * math.Pow(a, -1.5)
	return Keplerian{
		ReferenceEpoch:         c.ReferenceEpoch,
		SemiMajorAxis:          a,
		Eccentricity:           c.Eccentricity,
		Inclination:            c.Inclination,
		AscendingNodeLongitude: c.AscendingNodeLongitude,
		PeriapsisArgument:      c.PeriapsisArgument,
		MeanAnomaly:            mod2pi(n * (c.ReferenceEpoch - c.TimeOfPerihelion)),
	}, nil
}

// Cometary converts via the Keplerian set.
func (q Equinoctial) Cometary() (Cometary, error) {
	return q.Keplerian().Cometary()
}

// Equinoctial converts via the Keplerian set.
func (c Cometary) Equinoctial() (Equinoctial, error) {
	k, err := c.Keplerian()
	if err != nil {
		return Equinoctial{}, err
	}
	return k.Equinoctial(), nil
}

// TrueAnomaly returns the true anomaly at the reference epoch for an
// elliptic orbit.
func (c Cometary) TrueAnomaly() (float64, error) {
	k, err := c.Keplerian()
	if err != nil {
		return 0, err
	}
	ea := solveKepler(k.MeanAnomaly, k.Eccentricity)
	s, co := math.Sincos(ea)
	f := math.Sqrt(1 - k.Eccentricity*k.Eccentricity)
	return mod2pi(math.Atan2(f*s, co-k.Eccentricity)), nil
}

func (k Keplerian) String() string {
	return fmt.Sprintf(
		"a=%.6f AU e=%.6f i=%.4f° Ω=%.4f° ω=%.4f° M=%.4f° @%s",
		k.SemiMajorAxis, k.Eccentricity,
		k.Inclination*180/math.Pi,
		k.AscendingNodeLongitude*180/math.Pi,
		k.PeriapsisArgument*180/math.Pi,
		k.MeanAnomaly*180/math.Pi,
		astro.CalendarString(k.ReferenceEpoch))
}

func (q Equinoctial) String() string {
	return fmt.Sprintf("a=%.6f AU h=%.6f k=%.6f p=%.6f q=%.6f λ=%.4f°",
		q.SemiMajorAxis, q.EccentricitySinLon, q.EccentricityCosLon,
		q.TanHalfInclSinNode, q.TanHalfInclCosNode,
		q.MeanLongitude*180/math.Pi)
}

func (c Cometary) String() string {
	return fmt.Sprintf("q=%.6f AU e=%.6f i=%.4f° Ω=%.4f° ω=%.4f° Tp=%s",
		c.PerihelionDistance, c.Eccentricity,
		c.Inclination*180/math.Pi,
		c.AscendingNodeLongitude*180/math.Pi,
		c.PeriapsisArgument*180/math.Pi,
		astro.CalendarString(c.TimeOfPerihelion))
}
