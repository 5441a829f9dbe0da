// Public domain.

package iod

import "github.com/FusRoman/outfit/obs"

// selectTriplets enumerates candidate index triples from the first
// min(len(t), MaxObsForTriplets) observations in lexicographic order.
// Every enumerated combination counts against the MaxTriplets budget;
// combinations whose consecutive epochs are closer than MinEpochGap are
// skipped but still spend budget, bounding total work.
func selectTriplets(t []obs.Observation, p Params) [][3]int {
	pool := len(t)
	if pool > p.MaxObsForTriplets {
		pool = p.MaxObsForTriplets
	}
	var sel [][3]int
	attempts := 0
	for i := 0; i < pool-2; i++ {
		for j := i + 1; j < pool-1; j++ {
			for k := j + 1; k < pool; k++ {
				if attempts == p.MaxTriplets {
					return sel
				}
				attempts++
				if t[j].MJD-t[i].MJD < p.MinEpochGap ||
					t[k].MJD-t[j].MJD < p.MinEpochGap {
					continue
				}
				sel = append(sel, [3]int{i, j, k})
			}
		}
	}
	return sel
}
