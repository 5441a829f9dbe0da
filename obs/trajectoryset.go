// Public domain.

package obs

import (
	"fmt"
	"math"
	"sort"
)

// LengthMismatchError reports parallel input arrays of unequal length.
type LengthMismatchError struct {
	IDLen, RALen, DecLen, MJDLen int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: trajectory_id=%d, ra=%d, dec=%d, mjd=%d",
		e.IDLen, e.RALen, e.DecLen, e.MJDLen)
}

// TrajectorySet groups observations by object.  Within each trajectory
// observations are held in ascending epoch order.  Object iteration
// order is the order of first appearance in the input.
type TrajectorySet struct {
	trajs map[uint32][]Observation
	order []uint32
	total int
}

// NewTrajectorySet builds a set from pre-constructed observations and a
// parallel slice of object numbers.  The slices must have equal length.
func NewTrajectorySet(ids []uint32, observations []Observation) (*TrajectorySet, error) {
	if len(ids) != len(observations) {
		return nil, fmt.Errorf("length mismatch: trajectory_id=%d, observations=%d",
			len(ids), len(observations))
	}
	ts := &TrajectorySet{trajs: make(map[uint32][]Observation)}
	for i, id := range ids {
		ts.add(id, observations[i])
	}
	ts.sortEpochs()
	return ts, nil
}

// NewTrajectorySetRadians builds a set from parallel arrays with angles
// in radians and epochs in MJD (TT).  The scalar sigmas, in radians,
// apply uniformly to every observation in the call.  All observations
// share the given site.  A zero sigma falls back to the site's nominal
// accuracy for that angle.
func NewTrajectorySetRadians(site *Observer, ids []uint32,
	ra, dec []float64, sigmaRA, sigmaDec float64, mjd []float64) (*TrajectorySet, error) {

	if len(ids) != len(ra) || len(ra) != len(dec) || len(dec) != len(mjd) {
		return nil, LengthMismatchError{
			IDLen:  len(ids),
			RALen:  len(ra),
			DecLen: len(dec),
			MJDLen: len(mjd),
		}
	}
	if sigmaRA == 0 {
		sigmaRA = site.RAAccuracy.Rad()
	}
	if sigmaDec == 0 {
		sigmaDec = site.DecAccuracy.Rad()
	}
	ts := &TrajectorySet{trajs: make(map[uint32][]Observation)}
	for i, id := range ids {
		ts.add(id, Observation{
			MJD:      mjd[i],
			RA:       ra[i],
			Dec:      dec[i],
			SigmaRA:  sigmaRA,
			SigmaDec: sigmaDec,
			Site:     site,
		})
	}
	ts.sortEpochs()
	return ts, nil
}

// NewTrajectorySetDegrees is NewTrajectorySetRadians with the angle
// arrays in degrees and the scalar sigmas in arc seconds.
func NewTrajectorySetDegrees(site *Observer, ids []uint32,
	ra, dec []float64, sigmaRA, sigmaDec float64, mjd []float64) (*TrajectorySet, error) {

	if len(ids) != len(ra) || len(ra) != len(dec) || len(dec) != len(mjd) {
		return nil, LengthMismatchError{
			IDLen:  len(ids),
			RALen:  len(ra),
			DecLen: len(dec),
			MJDLen: len(mjd),
		}
	}
	raRad := make([]float64, len(ra))
	decRad := make([]float64, len(dec))
	for i := range ra {
		raRad[i] = ra[i] * math.Pi / 180
		decRad[i] = dec[i] * math.Pi / 180
	}
	const arcSecRad = math.Pi / (180 * 3600)
	return NewTrajectorySetRadians(site, ids, raRad, decRad,
		sigmaRA*arcSecRad, sigmaDec*arcSecRad, mjd)
}

func (ts *TrajectorySet) add(id uint32, o Observation) {
	if _, ok := ts.trajs[id]; !ok {
		ts.order = append(ts.order, id)
	}
	ts.trajs[id] = append(ts.trajs[id], o)
	ts.total++
}

// sortEpochs orders each trajectory by epoch.  The sort is stable so
// observations at equal epochs keep their insertion order.
func (ts *TrajectorySet) sortEpochs() {
	for _, t := range ts.trajs {
		sort.SliceStable(t, func(i, j int) bool { return t[i].MJD < t[j].MJD })
	}
}

// TotalObservations returns the number of observations across all
// trajectories.
func (ts *TrajectorySet) TotalObservations() int { return ts.total }

// NumberOfTrajectories returns the number of distinct objects.
func (ts *TrajectorySet) NumberOfTrajectories() int { return len(ts.order) }

// ObjectIDs returns object numbers in order of first appearance.
func (ts *TrajectorySet) ObjectIDs() []uint32 {
	ids := make([]uint32, len(ts.order))
	copy(ids, ts.order)
	return ids
}

// Trajectory returns a copy of the observations of one object, in
// ascending epoch order, or nil for an unknown object.
func (ts *TrajectorySet) Trajectory(id uint32) []Observation {
	t, ok := ts.trajs[id]
	if !ok {
		return nil
	}
	c := make([]Observation, len(t))
	copy(c, t)
	return c
}
