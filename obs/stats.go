// Public domain.

package obs

import (
	"fmt"
	"strings"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/lmfit"
	"github.com/soniakeys/sexagesimal"

	"github.com/FusRoman/outfit/astro"
)

// StatsString formats a per-object summary of the set: observation
// count, observed arc, the first position, and the rms of a great
// circle fit through the trajectory.
func (ts *TrajectorySet) StatsString() string {
	if len(ts.order) == 0 {
		return "No trajectories available."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d trajectories, %d observations\n",
		len(ts.order), ts.total)
	for _, id := range ts.order {
		t := ts.trajs[id]
		first := t[0]
		last := t[len(t)-1]
		e := first.Equa()
		fmt.Fprintf(&b, "%7d: %3d obs  arc %s + %.3f d  %2.1s %2.1s",
			id, len(t),
			astro.CalendarString(first.MJD), last.MJD-first.MJD,
			sexa.FmtRA(e.RA), sexa.FmtAngle(e.Dec))
		if gc := gcRms(t); gc >= 0 {
			fmt.Fprintf(&b, "  gc rms %.2f″", gc)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// gcRms returns the 2d rms in arc seconds of a great circle fit, or -1
// when the trajectory is too short to fit.
func gcRms(t []Observation) float64 {
	if len(t) < 2 {
		return -1
	}
	mjd := make([]float64, len(t))
	es := make(coord.EquaS, len(t))
	for i := range t {
		mjd[i] = t[i].MJD
		es[i] = t[i].Equa()
	}
	lmf := lmfit.New(mjd, es)
	if lmf == nil {
		return -1
	}
	return lmf.Rms().Sec()
}
