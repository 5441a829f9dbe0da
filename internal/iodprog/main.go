// Public domain.

// Package iodprog implements the outfit command: batch initial orbit
// determination over a file of MPC 80 column observations.
package iodprog

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/mpcformat"
	"github.com/soniakeys/observation"
	"github.com/soniakeys/unit"

	"github.com/FusRoman/outfit"
	"github.com/FusRoman/outfit/astro"
	"github.com/FusRoman/outfit/iod"
	"github.com/FusRoman/outfit/mpc"
	"github.com/FusRoman/outfit/obs"
)

const versionString = "outfit version 0.1 Go source."
const copyrightString = "Public domain."

type commandLine struct {
	fnObs     string
	fnOcd     string
	ephem     string
	errModel  string
	obsErr    float64
	nNoise    int
	scale     float64
	pool      int
	triplets  int
	gap       float64
	seed      uint64
	noCorrect bool
	v         bool
}

func parseCommandLine() *commandLine {
	cl := &commandLine{}
	flag.StringVar(&cl.fnOcd, "o", "obscode.dat", "obscode.dat file")
	flag.StringVar(&cl.ephem, "e", "", "ephemeris selector")
	flag.StringVar(&cl.errModel, "m", "FCCT14", "astrometric error model")
	flag.Float64Var(&cl.obsErr, "u", 1, "assumed observation error, arc seconds")
	flag.IntVar(&cl.nNoise, "n", 5, "noise realizations")
	flag.Float64Var(&cl.scale, "x", 1, "noise scale")
	flag.IntVar(&cl.pool, "p", 12, "max observations for triplet selection")
	flag.IntVar(&cl.triplets, "t", 30, "max triplets per object")
	flag.Float64Var(&cl.gap, "g", 1e-3, "min epoch gap, days")
	flag.Uint64Var(&cl.seed, "s", 0, "random seed, 0 for non-repeatable")
	flag.BoolVar(&cl.noCorrect, "r", false, "report raw preliminary orbits, no correction")
	flag.BoolVar(&cl.v, "v", false, "display version and copyright")
	flag.Usage = func() {
		os.Stderr.WriteString(`Usage: outfit [options] <obsfile>
       outfit -v
obsfile is a file of 80 column MPC-format observations, or a
single - to read observations from stdin.
`)
		flag.PrintDefaults()
	}
	flag.Parse()
	if cl.v {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	cl.fnObs = flag.Arg(0)
	return cl
}

func Main() {
	defer exit.Handler()
	cl := parseCommandLine()

	env, err := outfit.New(cl.ephem, cl.errModel)
	if err != nil {
		exit.Log(err)
	}
	ocdMap := readOcd(cl.fnOcd)
	registerSites(env, cl.fnOcd)

	pb := iod.NewParamsBuilder().
		NNoiseRealizations(cl.nNoise).
		NoiseScale(cl.scale).
		MaxObsForTriplets(cl.pool).
		MaxTriplets(cl.triplets).
		MinEpochGap(cl.gap)
	if cl.noCorrect {
		pb.NoCorrection()
	}
	params, err := pb.Build()
	if err != nil {
		exit.Log(err)
	}

	var f *os.File
	if cl.fnObs == "-" {
		f = os.Stdin
	} else {
		if f, err = os.Open(cl.fnObs); err != nil {
			exit.Log(err)
		}
		defer f.Close()
	}

	ts, desigs, err := readTracklets(f, env, ocdMap, unit.AngleFromSec(cl.obsErr))
	if err != nil {
		exit.Log(err)
	}
	successes, failures := iod.EstimateAllOrbits(env, ts, params, cl.seed)
	printResults(ts, desigs, successes, failures)
}

// readOcd loads the observatory file, fetching a fresh copy on a
// failed read.
func readOcd(fn string) observation.ParallaxMap {
	ocdMap, readErr := mpcformat.ReadObscodeDatFile(fn)
	if readErr == nil {
		return ocdMap
	}
	if err := mpcformat.FetchObscodeDat(fn); err != nil {
		fmt.Fprintln(os.Stderr, readErr)
		exit.Log(err)
	}
	if ocdMap, readErr = mpcformat.ReadObscodeDatFile(fn); readErr != nil {
		exit.Log(readErr)
	}
	return ocdMap
}

func registerSites(env *outfit.Outfit, fn string) {
	reg, err := mpc.ReadObscodeDat(fn)
	if err != nil {
		exit.Log(err)
	}
	for code, site := range reg {
		env.AddObserver(code, site)
	}
}

// readTracklets splits the observation stream into arcs and collects
// them into a trajectory set, one object id per arc.  Arcs with space
// based or unresolvable sites, or under 3 observations, are dropped
// without notification, as are lines that fail to parse.
func readTracklets(r io.Reader, env *outfit.Outfit,
	ocdMap observation.ParallaxMap, obsErr unit.Angle) (*obs.TrajectorySet, map[uint32]string, error) {

	// reverse the parallax map so each arc's site code can be
	// recovered by pointer identity
	parCode := make(map[*observation.ParallaxConst]string, len(ocdMap))
	for code, par := range ocdMap {
		if par != nil {
			parCode[par] = code
		}
	}

	var ids []uint32
	var measurements []obs.Observation
	desigs := make(map[uint32]string)
	var next uint32

	split := mpcformat.ArcSplitter(r, ocdMap)
	for {
		a, err := split()
		if err == io.EOF {
			break
		}
		if err != nil {
			if _, ok := err.(mpcformat.ArcError); ok {
				continue
			}
			return nil, nil, err
		}
		if len(a.Obs) < 3 {
			continue
		}
		arcObs := make([]obs.Observation, 0, len(a.Obs))
		ok := true
		for _, o := range a.Obs {
			so, ground := o.(*observation.SiteObs)
			if !ground {
				ok = false
				break
			}
			code, known := parCode[so.Par]
			if !known {
				ok = false
				break
			}
			site, err := env.ObserverFromMPCCode(code)
			if err != nil {
				ok = false
				break
			}
			m := o.Meas()
			arcObs = append(arcObs, obs.Observation{
				MJD:      astro.UTCToTT(m.MJD),
				RA:       m.Equa.RA.Rad(),
				Dec:      m.Equa.Dec.Rad(),
				SigmaRA:  obsErr.Rad(),
				SigmaDec: obsErr.Rad(),
				Site:     site,
			})
		}
		if !ok {
			continue
		}
		for range arcObs {
			ids = append(ids, next)
		}
		measurements = append(measurements, arcObs...)
		desigs[next] = a.Desig
		next++
	}
	ts, err := obs.NewTrajectorySet(ids, measurements)
	if err != nil {
		return nil, nil, err
	}
	return ts, desigs, nil
}

func printResults(ts *obs.TrajectorySet, desigs map[uint32]string,
	successes map[uint32]iod.Result, failures map[uint32]error) {

	fmt.Printf("%-12s %5s  %9s %8s %8s %8s %8s %8s  %6s  %s\n",
		"Desig.", "Obs", "a (AU)", "e", "i°", "Ω°", "ω°", "M°", "rms″", "stage")
	const deg = 180 / math.Pi
	for _, id := range ts.ObjectIDs() {
		desig := desigs[id]
		if err, ok := failures[id]; ok {
			fmt.Printf("%-12s %5d  %v\n", desig, len(ts.Trajectory(id)), err)
			continue
		}
		res := successes[id]
		k, _ := res.Orbit.Keplerian()
		fmt.Printf("%-12s %5d  %9.4f %8.5f %8.3f %8.3f %8.3f %8.3f  %6.2f  %s\n",
			desig, len(ts.Trajectory(id)),
			k.SemiMajorAxis, k.Eccentricity,
			k.Inclination*deg, k.AscendingNodeLongitude*deg,
			k.PeriapsisArgument*deg, k.MeanAnomaly*deg,
			res.RMS, res.Orbit.Stage())
	}
}
