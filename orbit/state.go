// Public domain.

package orbit

import (
	"math"

	"github.com/soniakeys/coord"

	"github.com/FusRoman/outfit/astro"
)

// StateVector is a heliocentric position and velocity in ecliptic
// coordinates at an epoch.  Position in AU, velocity in AU/day.
type StateVector struct {
	Pos   coord.Cart
	Vel   coord.Cart
	Epoch float64 // MJD (TT)
}

// stability limits on solved orbits
const (
	maxSemiMajorAxis = 100 // AU
	maxEccentricity  = .99
)

// Keplerian solves classical elements from the state vector.
//
// The inversion fails, rather than returning NaN elements, for
// unbound, near-parabolic or degenerate states: a must come out in
// (0, 100) AU and e below .99.  The limits are stability bounds, not
// physics; orbits beyond them are not usable preliminary solutions.
func (s StateVector) Keplerian() (Keplerian, error) {
	r := math.Sqrt(s.Pos.Square())
	if r == 0 {
		return Keplerian{}, &SingularConversionError{
			From: "state vector", To: "keplerian", Reason: "zero position"}
	}

	// semi-major axis from the vis-viva energy, velocity squared
	// scaled by 1/U so a = r/(2 - r v²/U).
	vsq := s.Vel.Square() / astro.U
	temp := 2 - r*vsq
	if r > temp*maxSemiMajorAxis {
		return Keplerian{}, &SingularConversionError{
			From: "state vector", To: "keplerian",
			Reason: "orbit unbound or semi-major axis beyond stability limit"}
	}
	a := r / temp

	// momentum vector
	var hv coord.Cart
	hv.Cross(&s.Pos, &s.Vel)
	hsq := hv.Square()
	hm := math.Sqrt(hsq)
	if hm == 0 {
		return Keplerian{}, &SingularConversionError{
			From: "state vector", To: "keplerian", Reason: "rectilinear motion"}
	}

	// eccentricity vector e = (v × h)/U − r̂
	var ev coord.Cart
	ev.Cross(&s.Vel, &hv)
	ev.MulScalar(&ev, 1/astro.U)
	var rUnit coord.Cart
	rUnit.MulScalar(&s.Pos, 1/r)
	ev.Sub(&ev, &rUnit)
	ecc := math.Sqrt(ev.Square())
	if ecc > maxEccentricity {
		return Keplerian{}, &SingularConversionError{
			From: "state vector", To: "keplerian",
			Reason: "eccentricity beyond stability limit"}
	}

	// inclination, with the reliable i=0 check from AeiHv
	var incl float64
	if hv.Z < hm {
		incl = math.Acos(hv.Z / hm)
	}

	// node vector n = ẑ × h
	nx, ny := -hv.Y, hv.X
	nm := math.Hypot(nx, ny)

	const tiny = 1e-12
	var node, argPeri, trueAnom float64
	switch {
	case nm < tiny && ecc < tiny:
		// circular equatorial: measure position from +x
		trueAnom = math.Atan2(s.Pos.Y, s.Pos.X)
	case nm < tiny:
		// equatorial: longitude of periapsis stands in for ω
		argPeri = math.Atan2(ev.Y, ev.X)
		trueAnom = angleBetween(&ev, &s.Pos, &hv)
	case ecc < tiny:
		// circular: argument of latitude stands in for ν
		n := coord.Cart{X: nx, Y: ny}
		node = math.Atan2(ny, nx)
		trueAnom = angleBetween(&n, &s.Pos, &hv)
	default:
		n := coord.Cart{X: nx, Y: ny}
		node = math.Atan2(ny, nx)
		argPeri = angleBetween(&n, &ev, &hv)
		trueAnom = angleBetween(&ev, &s.Pos, &hv)
	}

	// eccentric, then mean anomaly
	se, ce := math.Sincos(trueAnom)
	f := math.Sqrt(1 - ecc*ecc)
	ea := math.Atan2(f*se, ce+ecc)
	m := ea - ecc*math.Sin(ea)

	return Keplerian{
		ReferenceEpoch:         s.Epoch,
		SemiMajorAxis:          a,
		Eccentricity:           ecc,
		Inclination:            incl,
		AscendingNodeLongitude: mod2pi(node),
		PeriapsisArgument:      mod2pi(argPeri),
		MeanAnomaly:            mod2pi(m),
	}, nil
}

// angleBetween returns the angle from a to b, signed positive around h.
func angleBetween(a, b, h *coord.Cart) float64 {
	var x coord.Cart
	x.Cross(a, b)
	sin := math.Sqrt(x.Square())
	if x.Dot(h) < 0 {
		sin = -sin
	}
	return math.Atan2(sin, a.Dot(b))
}

// StateVector solves the heliocentric ecliptic state at the reference
// epoch from elliptic elements.
func (k Keplerian) StateVector() StateVector {
	a, e := k.SemiMajorAxis, k.Eccentricity
	ea := solveKepler(k.MeanAnomaly, e)
	se, ce := math.Sincos(ea)
	f := math.Sqrt(1 - e*e)

	// perifocal position and velocity
	x := a * (ce - e)
	y := a * f * se
	n := astro.K * math.Pow(a, -1.5)
	den := 1 - e*ce
	vx := -a * n * se / den
	vy := a * n * f * ce / den

	// rotate perifocal → ecliptic
	sn, cn := math.Sincos(k.AscendingNodeLongitude)
	sw, cw := math.Sincos(k.PeriapsisArgument)
	si, ci := math.Sincos(k.Inclination)
	r11 := cn*cw - sn*sw*ci
	r12 := -cn*sw - sn*cw*ci
	r21 := sn*cw + cn*sw*ci
	r22 := -sn*sw + cn*cw*ci
	r31 := sw * si
	r32 := cw * si

	return StateVector{
		Pos:   coord.Cart{X: r11*x + r12*y, Y: r21*x + r22*y, Z: r31*x + r32*y},
		Vel:   coord.Cart{X: r11*vx + r12*vy, Y: r21*vx + r22*vy, Z: r31*vx + r32*vy},
		Epoch: k.ReferenceEpoch,
	}
}

// stumpff evaluates the C and S functions of universal-variable
// Kepler propagation.
func stumpff(z float64) (c, s float64) {
	switch {
	case z > 1e-8:
		sz := math.Sqrt(z)
		c = (1 - math.Cos(sz)) / z
		s = (sz - math.Sin(sz)) / (sz * z)
	case z < -1e-8:
		sz := math.Sqrt(-z)
		c = (math.Cosh(sz) - 1) / -z
		s = (math.Sinh(sz) - sz) / (sz * -z)
	default:
		c = .5 - z/24
		s = 1./6 - z/120
	}
	return
}

// Propagate advances the state by dt days along the two-body orbit
// using the universal variable formulation, so mildly hyperbolic
// intermediate states propagate too.  Non-convergence of the universal
// Kepler equation is an error.
func (s StateVector) Propagate(dt float64) (StateVector, error) {
	if dt == 0 {
		return s, nil
	}
	mu := astro.U
	sqmu := astro.K
	r0 := math.Sqrt(s.Pos.Square())
	vr0 := s.Pos.Dot(&s.Vel) / r0
	alpha := 2/r0 - s.Vel.Square()/mu

	// Newton iteration for the universal anomaly
	chi := sqmu * math.Abs(alpha) * dt
	if alpha <= 0 {
		chi = sqmu * dt / r0
	}
	var c, st, z float64
	converged := false
	for i := 0; i < 60; i++ {
		z = alpha * chi * chi
		c, st = stumpff(z)
		chi2 := chi * chi
		f := r0*vr0/sqmu*chi2*c + (1-alpha*r0)*chi2*chi*st + r0*chi - sqmu*dt
		fp := r0*vr0/sqmu*chi*(1-z*st) + (1-alpha*r0)*chi2*c + r0
		d := f / fp
		chi -= d
		if math.Abs(d) < 1e-10 {
			converged = true
			break
		}
	}
	if !converged {
		return StateVector{}, &SingularConversionError{
			From: "state vector", To: "propagated state",
			Reason: "universal Kepler equation did not converge"}
	}

	z = alpha * chi * chi
	c, st = stumpff(z)
	chi2 := chi * chi

	// Lagrange coefficients
	lf := 1 - chi2/r0*c
	lg := dt - chi2*chi/sqmu*st

	var pos coord.Cart
	var t1, t2 coord.Cart
	t1.MulScalar(&s.Pos, lf)
	t2.MulScalar(&s.Vel, lg)
	pos.Add(&t1, &t2)
	r := math.Sqrt(pos.Square())

	lfd := sqmu / (r * r0) * (alpha*chi2*chi*st - chi)
	lgd := 1 - chi2/r*c

	var vel coord.Cart
	t1.MulScalar(&s.Pos, lfd)
	t2.MulScalar(&s.Vel, lgd)
	vel.Add(&t1, &t2)

	return StateVector{Pos: pos, Vel: vel, Epoch: s.Epoch + dt}, nil
}
