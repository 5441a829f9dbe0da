// Public domain.

package astro

import (
	"fmt"

	"github.com/soniakeys/meeus/v3/julian"
)

// Time scale conversions.  The estimation code works internally in
// MJD (TT); observation epochs commonly arrive as JD or MJD in UTC.

// JDToMJD converts a Julian Date to a Modified Julian Date.
func JDToMJD(jd float64) float64 { return jd - 2400000.5 }

// MJDToJD converts a Modified Julian Date to a Julian Date.
func MJDToJD(mjd float64) float64 { return mjd + 2400000.5 }

// leap holds TAI-UTC at and after an MJD.  Boundaries are the 0h UTC
// dates the IERS announced; the table starts in 1972 when UTC leap
// seconds began.
type leap struct {
	mjd float64
	tai float64
}

func mjdOf(y, m int) float64 {
	return JDToMJD(julian.CalendarGregorianToJD(y, m, 1))
}

var leapTable = []leap{
	{mjdOf(1972, 1), 10}, {mjdOf(1972, 7), 11}, {mjdOf(1973, 1), 12},
	{mjdOf(1974, 1), 13}, {mjdOf(1975, 1), 14}, {mjdOf(1976, 1), 15},
	{mjdOf(1977, 1), 16}, {mjdOf(1978, 1), 17}, {mjdOf(1979, 1), 18},
	{mjdOf(1980, 1), 19}, {mjdOf(1981, 7), 20}, {mjdOf(1982, 7), 21},
	{mjdOf(1983, 7), 22}, {mjdOf(1985, 7), 23}, {mjdOf(1988, 1), 24},
	{mjdOf(1990, 1), 25}, {mjdOf(1991, 1), 26}, {mjdOf(1992, 7), 27},
	{mjdOf(1993, 7), 28}, {mjdOf(1994, 7), 29}, {mjdOf(1996, 1), 30},
	{mjdOf(1997, 7), 31}, {mjdOf(1999, 1), 32}, {mjdOf(2006, 1), 33},
	{mjdOf(2009, 1), 34}, {mjdOf(2012, 7), 35}, {mjdOf(2015, 7), 36},
	{mjdOf(2017, 1), 37},
}

// taiUTC returns TAI-UTC in seconds at an MJD (UTC).  Before 1972 the
// first table value is used; second-level accuracy there is not a goal.
func taiUTC(mjdUTC float64) float64 {
	tai := leapTable[0].tai
	for _, l := range leapTable {
		if mjdUTC < l.mjd {
			break
		}
		tai = l.tai
	}
	return tai
}

// TTMinusUTC returns TT-UTC in seconds at an MJD (UTC).
func TTMinusUTC(mjdUTC float64) float64 {
	return taiUTC(mjdUTC) + 32.184
}

// UTCToTT converts an MJD epoch from the UTC to the TT scale.
func UTCToTT(mjdUTC float64) float64 {
	return mjdUTC + TTMinusUTC(mjdUTC)/86400
}

// TTToUTC converts an MJD epoch from the TT to the UTC scale.
func TTToUTC(mjdTT float64) float64 {
	// TT-UTC changes only at leap seconds; one pass at the shifted
	// argument is exact away from a boundary and off by at most a
	// second at one.
	return mjdTT - TTMinusUTC(mjdTT)/86400
}

// CalendarString formats an MJD as a Gregorian calendar date, useful in
// logs and stats output.
func CalendarString(mjd float64) string {
	y, m, d := julian.JDToCalendar(MJDToJD(mjd))
	return fmt.Sprintf("%d-%02d-%05.2f", y, m, d)
}
