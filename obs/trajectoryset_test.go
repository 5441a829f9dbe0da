// Public domain.

package obs_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FusRoman/outfit/obs"
)

// Palomar Mountain
var palomar = obs.NewObserver("Palomar Mountain--ZTF",
	243.14022*math.Pi/180, 33.3564*math.Pi/180, 1.712, 0, 0)

func TestBulkConstructionDegrees(t *testing.T) {
	ids := []uint32{0, 0, 0, 1, 1}
	ra := []float64{20.1, 20.3, 20.5, 118.2, 118.9}
	dec := []float64{10.2, 10.25, 10.3, -3.1, -3.4}
	mjd := []float64{57028.1, 57029.2, 57030.3, 57028.4, 57031.5}

	ts, err := obs.NewTrajectorySetDegrees(palomar, ids, ra, dec, .5, .5, mjd)
	require.NoError(t, err)
	require.Equal(t, 5, ts.TotalObservations())
	require.Equal(t, []uint32{0, 1}, ts.ObjectIDs())
	require.Len(t, ts.Trajectory(0), 3)
	require.Len(t, ts.Trajectory(1), 2)
	require.Nil(t, ts.Trajectory(7))

	o := ts.Trajectory(0)[0]
	require.InEpsilon(t, 20.1*math.Pi/180, o.RA, 1e-14)
	require.InEpsilon(t, .5*math.Pi/(180*3600), o.SigmaRA, 1e-14)
	require.Same(t, palomar, o.Site)
}

func TestBulkConstructionLengthMismatch(t *testing.T) {
	ids := []uint32{0, 0}
	three := []float64{1, 2, 3}
	two := []float64{1, 2}

	ts, err := obs.NewTrajectorySetRadians(palomar, ids, three, two, 0, 0, two)
	require.Nil(t, ts)
	var lm obs.LengthMismatchError
	require.ErrorAs(t, err, &lm)
	require.Equal(t, 2, lm.IDLen)
	require.Equal(t, 3, lm.RALen)
	require.Contains(t, lm.Error(), "length mismatch")

	_, err = obs.NewTrajectorySetDegrees(palomar, ids, two, two, .5, .5, three)
	require.ErrorAs(t, err, &lm)
	require.Equal(t, 3, lm.MJDLen)
}

func TestDegreesRadiansEquivalence(t *testing.T) {
	ids := []uint32{3, 3, 3}
	raDeg := []float64{151.2, 151.25, 151.31}
	decDeg := []float64{12.5, 12.52, 12.55}
	mjd := []float64{58000, 58001, 58002}

	tsDeg, err := obs.NewTrajectorySetDegrees(palomar, ids, raDeg, decDeg, .3, .4, mjd)
	require.NoError(t, err)

	raRad := make([]float64, 3)
	decRad := make([]float64, 3)
	for i := range raDeg {
		raRad[i] = raDeg[i] * math.Pi / 180
		decRad[i] = decDeg[i] * math.Pi / 180
	}
	const asec = math.Pi / (180 * 3600)
	tsRad, err := obs.NewTrajectorySetRadians(palomar, ids, raRad, decRad, .3*asec, .4*asec, mjd)
	require.NoError(t, err)

	d, r := tsDeg.Trajectory(3), tsRad.Trajectory(3)
	for i := range d {
		require.InEpsilon(t, r[i].RA, d[i].RA, 1e-15)
		require.InEpsilon(t, r[i].Dec, d[i].Dec, 1e-15)
		require.InEpsilon(t, r[i].SigmaRA, d[i].SigmaRA, 1e-15)
		require.InEpsilon(t, r[i].SigmaDec, d[i].SigmaDec, 1e-15)
	}
}

func TestEpochOrdering(t *testing.T) {
	// epochs supplied out of order come back sorted
	ids := []uint32{0, 0, 0}
	ra := []float64{.3, .1, .2}
	dec := []float64{0, 0, 0}
	mjd := []float64{57030, 57028, 57029}
	ts, err := obs.NewTrajectorySetRadians(palomar, ids, ra, dec, 0, 0, mjd)
	require.NoError(t, err)
	tr := ts.Trajectory(0)
	require.Equal(t, []float64{57028, 57029, 57030}, []float64{tr[0].MJD, tr[1].MJD, tr[2].MJD})
	require.Equal(t, .1, tr[0].RA)
}

func TestEqualEpochsKeepInsertionOrder(t *testing.T) {
	// two observations at the same epoch stay in supplied order
	ids := []uint32{0, 0, 0}
	ra := []float64{.2, .3, .1}
	dec := []float64{0, 0, 0}
	mjd := []float64{57029, 57028, 57028}
	ts, err := obs.NewTrajectorySetRadians(palomar, ids, ra, dec, 0, 0, mjd)
	require.NoError(t, err)
	tr := ts.Trajectory(0)
	require.Equal(t, []float64{57028, 57028, 57029}, []float64{tr[0].MJD, tr[1].MJD, tr[2].MJD})
	require.Equal(t, .3, tr[0].RA)
	require.Equal(t, .1, tr[1].RA)
}

func TestNewTrajectorySetLengthMismatch(t *testing.T) {
	_, err := obs.NewTrajectorySet([]uint32{0, 0, 1}, make([]obs.Observation, 2))
	require.Error(t, err)
	require.Contains(t, err.Error(), "trajectory_id=3")
	require.Contains(t, err.Error(), "observations=2")
}

func TestStats(t *testing.T) {
	empty, err := obs.NewTrajectorySet(nil, nil)
	require.NoError(t, err)
	require.Equal(t, "No trajectories available.", empty.StatsString())

	ids := []uint32{0, 0, 0, 1, 1}
	ra := []float64{20.1, 20.3, 20.5, 118.2, 118.9}
	dec := []float64{10.2, 10.25, 10.3, -3.1, -3.4}
	mjd := []float64{57028.1, 57029.2, 57030.3, 57028.4, 57031.5}
	ts, err := obs.NewTrajectorySetDegrees(palomar, ids, ra, dec, .5, .5, mjd)
	require.NoError(t, err)

	s := ts.StatsString()
	require.True(t, strings.HasPrefix(s, "2 trajectories, 5 observations"))
	require.Contains(t, s, "3 obs")
	require.Contains(t, s, "2 obs")
}
