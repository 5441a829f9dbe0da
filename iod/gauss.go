// Public domain.

package iod

import (
	"math"

	"github.com/soniakeys/coord"

	"github.com/FusRoman/outfit/astro"
	"github.com/FusRoman/outfit/obs"
	"github.com/FusRoman/outfit/orbit"
)

// root-scan bounds for the middle heliocentric distance, AU
const (
	rMin = .01
	rMax = 1e3
)

// solveGauss runs Gauss's method on one triplet.  It returns candidate
// heliocentric ecliptic state vectors at the light-time corrected
// middle epoch, one per physically admissible root of the range
// polynomial.  A degenerate triplet returns SolveDegenerateError.
func solveGauss(eph astro.Ephemeris, o1, o2, o3 obs.Observation) ([]orbit.StateVector, error) {
	t1, t2, t3 := o1.MJD, o2.MJD, o3.MJD
	tau1 := t1 - t2
	tau3 := t3 - t2
	tau := t3 - t1

	rho1 := o1.DirectionUnit()
	rho2 := o2.DirectionUnit()
	rho3 := o3.DirectionUnit()

	R1, err := o1.Site.HeliocentricAt(eph, t1)
	if err != nil {
		return nil, err
	}
	R2, err := o2.Site.HeliocentricAt(eph, t2)
	if err != nil {
		return nil, err
	}
	R3, err := o3.Site.HeliocentricAt(eph, t3)
	if err != nil {
		return nil, err
	}

	var p1, p2, p3 coord.Cart
	p1.Cross(&rho2, &rho3)
	p2.Cross(&rho1, &rho3)
	p3.Cross(&rho1, &rho2)

	d0 := rho1.Dot(&p1)
	if math.Abs(d0) < 1e-12 {
		return nil, SolveDegenerateError{"coplanar lines of sight"}
	}

	d11, d12, d13 := R1.Dot(&p1), R1.Dot(&p2), R1.Dot(&p3)
	d21, d22, d23 := R2.Dot(&p1), R2.Dot(&p2), R2.Dot(&p3)
	d31, d32, d33 := R3.Dot(&p1), R3.Dot(&p2), R3.Dot(&p3)

	// range polynomial r^8 + a r^6 + b r^3 + c = 0
	mu := astro.U
	A := (-d12*tau3/tau + d22 + d32*tau1/tau) / d0
	B := (d12*(tau3*tau3-tau*tau)*tau3/tau + d32*(tau*tau-tau1*tau1)*tau1/tau) / (6 * d0)
	E := R2.Dot(&rho2)
	R2sq := R2.Square()
	pa := -(A*A + 2*A*E + R2sq)
	pb := -2 * mu * B * (A + E)
	pc := -mu * mu * B * B

	roots := positiveRoots(pa, pb, pc)
	if len(roots) == 0 {
		return nil, SolveDegenerateError{"range polynomial has no admissible root"}
	}

	_, soe, coe, err := eph.SunEarth(t2)
	if err != nil {
		return nil, err
	}

	var states []orbit.StateVector
	for _, r2 := range roots {
		u := mu / (r2 * r2 * r2)
		c1 := tau3 / tau * (1 + u*(tau*tau-tau3*tau3)/6)
		c3 := -tau1 / tau * (1 + u*(tau*tau-tau1*tau1)/6)
		if math.Abs(c1) < 1e-12 || math.Abs(c3) < 1e-12 {
			continue
		}
		sr1 := (-d11 + d21/c1 - c3/c1*d31) / d0
		sr2 := (-c1*d12 + d22 - c3*d32) / d0
		sr3 := (-c1/c3*d13 + d23/c3 - d33) / d0
		if sr1 <= 1e-8 || sr2 <= 1e-8 || sr3 <= 1e-8 {
			continue
		}

		var pos1, pos2, pos3, sc coord.Cart
		sc.MulScalar(&rho1, sr1)
		pos1.Add(&R1, &sc)
		sc.MulScalar(&rho2, sr2)
		pos2.Add(&R2, &sc)
		sc.MulScalar(&rho3, sr3)
		pos3.Add(&R3, &sc)

		// Lagrange f and g series about the middle epoch
		f1 := 1 - u*tau1*tau1/2
		g1 := tau1 - u*tau1*tau1*tau1/6
		f3 := 1 - u*tau3*tau3/2
		g3 := tau3 - u*tau3*tau3*tau3/6
		den := f1*g3 - f3*g1
		if math.Abs(den) < 1e-12 {
			continue
		}
		var vel, v1, v3 coord.Cart
		v1.MulScalar(&pos1, -f3/den)
		v3.MulScalar(&pos3, f1/den)
		vel.Add(&v1, &v3)

		// rotate to the ecliptic frame, correct the epoch for light time
		pos2.RotateX(&pos2, soe, coe)
		vel.RotateX(&vel, soe, coe)
		states = append(states, orbit.StateVector{
			Pos:   pos2,
			Vel:   vel,
			Epoch: t2 - sr2/astro.CLight,
		})
	}
	if len(states) == 0 {
		return nil, SolveDegenerateError{"no root yields positive slant ranges"}
	}
	return states, nil
}

// positiveRoots finds the positive real roots of
// r^8 + a r^6 + b r^3 + c by sign-change scan over a log grid followed
// by bisection.
func positiveRoots(a, b, c float64) []float64 {
	f := func(r float64) float64 {
		r2 := r * r
		r3 := r2 * r
		r6 := r3 * r3
		return r6*r2 + a*r6 + b*r3 + c
	}
	const steps = 400
	lo := math.Log(rMin)
	step := (math.Log(rMax) - lo) / steps
	var roots []float64
	x0 := rMin
	f0 := f(x0)
	for i := 1; i <= steps; i++ {
		x1 := math.Exp(lo + float64(i)*step)
		f1 := f(x1)
		if f0 == 0 {
			roots = appendRoot(roots, x0)
		} else if f0*f1 < 0 {
			roots = appendRoot(roots, bisect(f, x0, x1))
		}
		x0, f0 = x1, f1
	}
	return roots
}

func bisect(f func(float64) float64, lo, hi float64) float64 {
	flo := f(lo)
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		fm := f(mid)
		if fm == 0 {
			return mid
		}
		if flo*fm < 0 {
			hi = mid
		} else {
			lo, flo = mid, fm
		}
	}
	return (lo + hi) / 2
}

func appendRoot(roots []float64, r float64) []float64 {
	for _, r0 := range roots {
		if math.Abs(r-r0) < 1e-9*(r+r0) {
			return roots
		}
	}
	return append(roots, r)
}
