// Public domain.

package iod

import (
	"runtime"
	"sync"
	"time"

	"github.com/FusRoman/outfit"
	"github.com/FusRoman/outfit/obs"
)

// EstimateAllOrbits runs the estimation pipeline for every object in
// the set, objects fanned out across GOMAXPROCS workers.  Per-object
// failures never abort sibling objects.  The two returned maps
// partition the set's object ids exactly.
//
// A nonzero seed makes results reproducible regardless of the degree
// of parallelism.  With seed zero each run perturbs differently.
func EstimateAllOrbits(env *outfit.Outfit, ts *obs.TrajectorySet,
	p Params, seed uint64) (map[uint32]Result, map[uint32]error) {

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	ids := ts.ObjectIDs()
	successes := make(map[uint32]Result)
	failures := make(map[uint32]error)
	if len(ids) == 0 {
		return successes, failures
	}

	type outcome struct {
		id  uint32
		res Result
		err error
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > len(ids) {
		workers = len(ids)
	}
	jobs := make(chan uint32)
	out := make(chan outcome)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				res, err := estimateObject(env, ts.Trajectory(id), p, seed, id)
				out <- outcome{id, res, err}
			}
		}()
	}
	go func() {
		for _, id := range ids {
			jobs <- id
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(out)
	}()
	for o := range out {
		if o.err != nil {
			failures[o.id] = o.err
		} else {
			successes[o.id] = o.res
		}
	}
	return successes, failures
}
