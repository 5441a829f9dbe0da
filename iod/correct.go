// Public domain.

package iod

import (
	"gonum.org/v1/gonum/mat"

	"github.com/FusRoman/outfit/astro"
	"github.com/FusRoman/outfit/obs"
	"github.com/FusRoman/outfit/orbit"
)

const (
	correctMaxIter = 10
	posStep        = 1e-6 // AU
	velStep        = 1e-8 // AU/day
)

// correctState refines a preliminary state by Gauss-Newton least
// squares over the angular residuals of the whole trajectory.  The
// Jacobian is built from central finite differences and the step
// solved through QR.  Returns SolveDegenerateError when the
// correction diverges or the Jacobian is rank deficient.
func correctState(eph astro.Ephemeris, s orbit.StateVector, traj []obs.Observation) (orbit.StateVector, error) {
	best := s
	res, err := residuals(eph, s, traj)
	if err != nil {
		return orbit.StateVector{}, SolveDegenerateError{"residuals undefined at preliminary state"}
	}
	bestSq := sumSq(res)
	improved := false

	cur := s
	for it := 0; it < correctMaxIter; it++ {
		jac, err := jacobian(eph, cur, traj)
		if err != nil {
			break
		}
		var qr mat.QR
		qr.Factorize(jac)
		b := mat.NewDense(len(res), 1, res)
		var dx mat.Dense
		if err := qr.SolveTo(&dx, false, b); err != nil {
			break
		}
		cur = applyStep(cur, &dx)
		newRes, err := residuals(eph, cur, traj)
		if err != nil {
			break
		}
		newSq := sumSq(newRes)
		if newSq >= bestSq {
			break
		}
		gain := 1 - newSq/bestSq
		best, bestSq, res, improved = cur, newSq, newRes, true
		if gain < 1e-9 {
			break
		}
	}
	if !improved {
		return orbit.StateVector{}, SolveDegenerateError{"correction did not improve the fit"}
	}
	return best, nil
}

func sumSq(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	return s
}

func applyStep(s orbit.StateVector, dx *mat.Dense) orbit.StateVector {
	s.Pos.X += dx.At(0, 0)
	s.Pos.Y += dx.At(1, 0)
	s.Pos.Z += dx.At(2, 0)
	s.Vel.X += dx.At(3, 0)
	s.Vel.Y += dx.At(4, 0)
	s.Vel.Z += dx.At(5, 0)
	return s
}

// jacobian is ∂residual/∂(pos,vel) by central differences, 2m rows by
// 6 columns.  Residuals are observed minus predicted, so the
// Gauss-Newton step solves J·dx = res directly.
func jacobian(eph astro.Ephemeris, s orbit.StateVector, traj []obs.Observation) (*mat.Dense, error) {
	m := 2 * len(traj)
	jac := mat.NewDense(m, 6, nil)
	for col := 0; col < 6; col++ {
		h := posStep
		if col >= 3 {
			h = velStep
		}
		plus := nudge(s, col, h)
		minus := nudge(s, col, -h)
		rp, err := residuals(eph, plus, traj)
		if err != nil {
			return nil, err
		}
		rm, err := residuals(eph, minus, traj)
		if err != nil {
			return nil, err
		}
		for row := 0; row < m; row++ {
			// predicted moves opposite to the residual
			jac.Set(row, col, -(rp[row]-rm[row])/(2*h))
		}
	}
	return jac, nil
}

func nudge(s orbit.StateVector, col int, h float64) orbit.StateVector {
	switch col {
	case 0:
		s.Pos.X += h
	case 1:
		s.Pos.Y += h
	case 2:
		s.Pos.Z += h
	case 3:
		s.Vel.X += h
	case 4:
		s.Vel.Y += h
	default:
		s.Vel.Z += h
	}
	return s
}
