// Public domain.

package iod

import "fmt"

// InsufficientObservationsError reports a trajectory too short for
// Gauss's method.
type InsufficientObservationsError struct {
	NObs int
}

func (e InsufficientObservationsError) Error() string {
	return fmt.Sprintf("trajectory has %d observations, 3 required", e.NObs)
}

// SolveDegenerateError reports a triplet that is numerically
// ill-conditioned for Gauss's method.  It is recovered by moving on to
// the next triplet.
type SolveDegenerateError struct {
	Reason string
}

func (e SolveDegenerateError) Error() string {
	return "degenerate triplet: " + e.Reason
}

// NoConvergentSolutionError reports that no triplet in any noise
// realization produced a valid orbit for an object.
type NoConvergentSolutionError struct {
	Realizations int
	Triplets     int
}

func (e NoConvergentSolutionError) Error() string {
	return fmt.Sprintf("no convergent solution in %d triplets over %d realizations",
		e.Triplets, e.Realizations)
}
