// Public domain.

// Package mpc reads Minor Planet Center observatory data into Observer
// values keyed by the three character MPC code.
package mpc

import (
	"errors"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/FusRoman/outfit/obs"
)

// ObscodeDatURL links to the present location of the file known as
// obscode.dat, a flat file containing three-character MPC assigned
// observatory codes, associated with parallax constants and observatory
// names.  The file linked by this url actually has enclosing <pre></pre>
// tags currently; these are safely ignored by the code here.
var ObscodeDatURL = "https://www.minorplanetcenter.net/iau/lists/ObsCodes.html"

// FetchObscodeDat gets a fresh copy of the data at ObscodeDatURL and
// writes it to a new file with the path and file name ocdFile.
func FetchObscodeDat(ocdFile string) error {
	r, err := http.Get(ObscodeDatURL)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	f, err := os.Create(ocdFile)
	if err != nil {
		return err
	}
	if _, err = io.Copy(f, r.Body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadObscodeDat reads an MPC obscode.dat file into a registry of
// observing sites.
//
// Note that files obtained from ObscodeDatURL have column headings and
// an enclosing <pre> tag.  This function does not require these lines;
// it quietly ignores lines that do not parse as data.
//
// Codes whose parallax constants are both blank or zero, such as
// space-based and roving observatories, are stored with a nil value.
func ReadObscodeDat(ocdFile string) (map[string]*obs.Observer, error) {
	b, err := os.ReadFile(ocdFile)
	if err != nil {
		return nil, err
	}
	reg := ParseObscodeDat(string(b))
	if len(reg) == 0 {
		return nil, errors.New("data unreadable in " + ocdFile)
	}
	return reg, nil
}

// ParseObscodeDat parses obscode.dat data already in memory.
func ParseObscodeDat(data string) map[string]*obs.Observer {
	reg := make(map[string]*obs.Observer)
	var longitude, rhoCosPhi, rhoSinPhi float64
	var err error

	for _, line := range strings.Split(data, "\n") {
		if len(line) < 30 {
			continue // quietly ignore extraneous lines such as <pre>
		}

		// scale factor = earth radius in m / 1 AU in m
		const sf = 6.37814e6 / 149.59787e9

		if ts := strings.TrimSpace(line[4:13]); len(ts) == 0 {
			longitude = 0 // blank fields default to 0
		} else {
			longitude, err = strconv.ParseFloat(ts, 64)
			if err != nil || longitude < 0 || longitude >= 360 {
				// quietly ignore lines with invalid longitude,
				// such as the column heading line.
				continue
			}
			longitude *= math.Pi / 180
		}

		if ts := strings.TrimSpace(line[13:21]); len(ts) == 0 {
			rhoCosPhi = 0
		} else {
			rhoCosPhi, err = strconv.ParseFloat(ts, 64)
			if err != nil || rhoCosPhi < 0 || rhoCosPhi > 1 {
				continue
			}
			rhoCosPhi *= sf
		}

		if ts := strings.TrimSpace(line[21:30]); len(ts) == 0 {
			rhoSinPhi = 0
		} else {
			rhoSinPhi, err = strconv.ParseFloat(ts, 64)
			if err != nil || rhoSinPhi < -1 || rhoSinPhi > 1 {
				continue
			}
			rhoSinPhi *= sf
		}

		code := line[0:3]
		if rhoCosPhi == 0 && rhoSinPhi == 0 {
			reg[code] = nil
			continue
		}
		name := code
		if len(line) > 30 {
			if ts := strings.TrimSpace(line[30:]); len(ts) > 0 {
				name = ts
			}
		}
		reg[code] = obs.ObserverFromParallax(name, longitude, rhoCosPhi, rhoSinPhi)
	}
	return reg
}
