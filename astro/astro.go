// Public domain.

// Package astro, stuff generally useful in astronomy.
//
// The package holds the constants and low level geometry shared by the
// orbit estimation code: the Gaussian gravitational constant, an
// approximate solar ephemeris, sidereal time, and the geodetic site
// geometry needed to place an observer in the heliocentric frame.
package astro

import (
	"math"

	"github.com/soniakeys/coord"
)

const (
	// K is the Gaussian gravitational constant.  U = K² is the
	// heliocentric gravitational parameter in AU³/day².
	K    = .01720209895
	InvK = 1 / K
	U    = K * K

	// CLight is the speed of light in AU/day.
	CLight = 173.144632674

	// AUKm is one astronomical unit in kilometers.
	AUKm = 1.495978707e8

	// Earth reference ellipsoid.
	EarthRadiusKm   = 6378.137
	EarthFlattening = 1 / 298.257223563
)

var twoPi = 2 * math.Pi

// Lst computes local mean sidereal time in radians.
//
// Args:
//   mjd       -- epoch, MJD (UT)
//   longitude -- east longitude of the site in radians
func Lst(mjd, longitude float64) float64 {
	d := mjd - 51544.5
	// GMST at 280.46061837° + 360.98564736629°/day, in radians.
	gmst := 4.894961212823059 + 6.300388098984891*d
	lst := math.Mod(gmst+longitude, twoPi)
	if lst < 0 {
		lst += twoPi
	}
	return lst
}

// ParallaxConstants computes geocentric parallax constants from geodetic
// coordinates.
//
// Args:
//   latitude -- geodetic latitude in radians
//   heightKm -- height above the reference ellipsoid in kilometers
//
// Returns ρ cos φ′ and ρ sin φ′ in AU.
func ParallaxConstants(latitude, heightKm float64) (rhoCos, rhoSin float64) {
	sphi, cphi := math.Sincos(latitude)
	b := 1 - EarthFlattening
	c := 1 / math.Sqrt(cphi*cphi+b*b*sphi*sphi)
	s := b * b * c
	h := heightKm / EarthRadiusKm
	const sf = EarthRadiusKm / AUKm
	rhoCos = (c + h) * cphi * sf
	rhoSin = (s + h) * sphi * sf
	return
}

// SiteVector computes the geocentric equatorial position of an observing
// site, in AU.
//
// Args:
//   rhoCos, rhoSin -- parallax constants in AU, see ParallaxConstants
//   longitude      -- east longitude in radians
//   mjd            -- epoch, MJD (UT)
func SiteVector(rhoCos, rhoSin, longitude, mjd float64) coord.Cart {
	s, c := math.Sincos(Lst(mjd, longitude))
	return coord.Cart{X: rhoCos * c, Y: rhoCos * s, Z: rhoSin}
}

// Se2000 computes solar ephemeris, J2000.
//
// Returns:
//   sunEarth:  geocentric sun vector in equatorial coordinates, AU.
//   soe, coe:  sine and cosine of ecliptic.
//
// Notes:
//   Approximate solar coordinates, per USNO.  Originally from
//   http://aa.usno.navy.mil/faq/docs/SunApprox.html.
func Se2000(mjd float64) (sunEarth coord.Cart, soe, coe float64) {
	// USNO algorithm is in degrees.  To minimize confusion, work in
	// degrees here too, only converting to radians as needed for trig
	// functions.
	d := mjd - 51544.5
	g := 357.529 + .98560028*d // mean anomaly of sun, in degrees
	q := 280.459 + .98564736*d // mean longitude of sun, in degrees
	g2 := g + g
	sg, cg := math.Sincos(g * math.Pi / 180)
	sg2, cg2 := math.Sincos(g2 * math.Pi / 180)

	// ecliptic longitude, in degrees still
	l := q + 1.915*sg + .020*sg2

	// distance in AU
	r := 1.00014 - .01671*cg - .00014*cg2

	// obliquity of ecliptic in degrees
	e := 23.439 - .00000036*d
	soe, coe = math.Sincos(e * math.Pi / 180)

	// equatorial coordinates
	sl, cl := math.Sincos(l * math.Pi / 180)
	sunEarth.X = r * cl
	rsl := r * sl
	sunEarth.Y = rsl * coe
	sunEarth.Z = rsl * soe
	return
}
