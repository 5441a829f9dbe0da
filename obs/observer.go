// Public domain.

// Package obs holds the observation model: observing sites, single
// angular measurements, and trajectory sets grouping measurements by
// object.  Values are immutable once constructed; many observations
// share one Observer by pointer.
package obs

import (
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"

	"github.com/FusRoman/outfit/astro"
)

// Observer is a geodetic observing site.  The parallax constants are
// precomputed at construction so placing the site in the equatorial
// frame is cheap.
type Observer struct {
	Name      string
	Longitude float64 // east longitude, radians
	Latitude  float64 // geodetic latitude, radians
	Elevation float64 // kilometers above the reference ellipsoid

	// nominal 1-sigma astrometric accuracy; zero means unspecified
	RAAccuracy  unit.Angle
	DecAccuracy unit.Angle

	rhoCos, rhoSin float64 // AU
}

// NewObserver constructs a site from geodetic coordinates.  raAcc and
// decAcc may be zero when the site has no nominal accuracy.
func NewObserver(name string, longitude, latitude, elevation float64,
	raAcc, decAcc unit.Angle) *Observer {

	rc, rs := astro.ParallaxConstants(latitude, elevation)
	return &Observer{
		Name:        name,
		Longitude:   longitude,
		Latitude:    latitude,
		Elevation:   elevation,
		RAAccuracy:  raAcc,
		DecAccuracy: decAcc,
		rhoCos:      rc,
		rhoSin:      rs,
	}
}

// ObserverFromParallax constructs a site directly from parallax
// constants in AU, the form observatory registries carry.  The stored
// geodetic latitude is the geocentric approximation; it is not used in
// any site-vector computation.
func ObserverFromParallax(name string, longitude, rhoCos, rhoSin float64) *Observer {
	return &Observer{
		Name:      name,
		Longitude: longitude,
		Latitude:  math.Atan2(rhoSin, rhoCos),
		rhoCos:    rhoCos,
		rhoSin:    rhoSin,
	}
}

// GeocentricAt returns the equatorial position of the site relative to
// the Earth's center at an MJD (TT) epoch, in AU.
func (o *Observer) GeocentricAt(mjdTT float64) coord.Cart {
	// sidereal time wants UT; the TT offset matters at this parallax
	// scale only through the Earth's rotation angle
	return astro.SiteVector(o.rhoCos, o.rhoSin, o.Longitude, astro.TTToUTC(mjdTT))
}

// HeliocentricAt returns the equatorial position of the site relative
// to the Sun at an MJD (TT) epoch, in AU.
func (o *Observer) HeliocentricAt(eph astro.Ephemeris, mjdTT float64) (coord.Cart, error) {
	sunEarth, _, _, err := eph.SunEarth(mjdTT)
	if err != nil {
		return coord.Cart{}, err
	}
	site := o.GeocentricAt(mjdTT)
	var sunObserver coord.Cart
	sunObserver.Sub(&site, &sunEarth)
	return sunObserver, nil
}
