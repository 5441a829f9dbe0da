// Public domain.

/*
Package outfit estimates heliocentric orbits from sparse optical
astrometry.

Angular observations grouped by object (a TrajectorySet, package obs)
are run through Gauss's three-observation method with a noise bootstrap
and an optional differential correction (package iod).  Results are
orbital elements in Keplerian, equinoctial, or cometary form
(package orbit).

The Outfit type in this package is the environment threaded through
estimation calls: an ephemeris provider, an astrometric error model,
and a registry of observing sites.
*/
package outfit
