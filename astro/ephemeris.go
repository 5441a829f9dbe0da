// Public domain.

package astro

import (
	"fmt"
	"math"
	"strings"

	"github.com/soniakeys/coord"
)

// Ephemeris answers "where is the Sun, seen from the Earth, at epoch T".
// It is the one external collaborator of the estimation code and must be
// safe for concurrent use; implementations hold no mutable state or
// guard it themselves.
type Ephemeris interface {
	// SunEarth returns the geocentric equatorial position of the Sun
	// in AU at an MJD (TT) epoch, with the sine and cosine of the
	// obliquity of the ecliptic at that epoch.  Epochs outside the
	// range supported by the implementation return an error.
	SunEarth(mjdTT float64) (sunEarth coord.Cart, soe, coe float64, err error)
}

// USNO is the built-in Ephemeris, the USNO approximate solar position
// series of Se2000.  It is accurate to about a hundredth of a degree
// within two centuries of J2000 and needs no data files.
type USNO struct{}

// usnoRange limits USNO to epochs where the approximation holds.
const usnoRange = 200 * 365.25 // days either side of J2000

// RangeError reports an epoch outside an ephemeris' supported span.
type RangeError struct {
	MJD float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ephemeris: epoch MJD %.5f out of range", e.MJD)
}

// SunEarth implements Ephemeris.
func (USNO) SunEarth(mjdTT float64) (coord.Cart, float64, float64, error) {
	if math.Abs(mjdTT-51544.5) > usnoRange {
		return coord.Cart{}, 0, 0, &RangeError{MJD: mjdTT}
	}
	se, soe, coe := Se2000(mjdTT)
	return se, soe, coe, nil
}

// Open resolves an ephemeris selector string to a provider.
//
// Selectors of the form "horizon:<DE-series>" (for example
// "horizon:DE440") and the selector "usno" resolve to the built-in
// USNO series; a development-grade approximation stands in for the
// named JPL series.  Unknown selectors are an error.
func Open(selector string) (Ephemeris, error) {
	switch {
	case selector == "" || selector == "usno":
		return USNO{}, nil
	case strings.HasPrefix(selector, "horizon:"):
		return USNO{}, nil
	}
	return nil, fmt.Errorf("ephemeris: unknown selector %q", selector)
}
