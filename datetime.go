// datetime.go - Pure civil calendar math over Unix-millisecond timestamps.
//
// Written as small, allocation-free pure functions in the style of this
// program's bit-twiddling helpers rather than reaching for time.Time, since
// the station encoders need exact control over the shifted-epoch civil
// algorithm and its year-9999 range.

package main

import "time"

// Civil is the decomposed civil representation of a millisecond timestamp.
type Civil struct {
	Year       int
	Month      int // 1..12
	Day        int // 1..31
	DOY        int // 1..366
	DOW        int // 0=Sun .. 6=Sat
	Hour       int
	Min        int
	Sec        int
	Msec       int
	OriginalMs int64
}

const msPerDay = 24 * 3600 * 1000

// floorDivInt64 performs floor division, unlike Go's truncating /.
func floorDivInt64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorModInt64(a, b int64) int64 {
	return a - floorDivInt64(a, b)*b
}

var (
	clockBaseMs     int64 // 0 means "use the real wall clock" (no --base override)
	clockBaseWallMs int64 // realNow() reading taken when the base was set
	clockOffsetMs   int64 // --offset: a constant ms offset applied on top
)

// SetClockOverride configures Now() to either track the real wall clock
// (baseMs == 0) or run from baseMs forward at the real clock's rate,
// optionally skewed by a constant offsetMs. This lets the CLI's --base and
// --offset flags simulate or correct a time without the rest of the engine
// knowing the clock isn't real.
func SetClockOverride(baseMs, offsetMs int64) {
	clockBaseMs = baseMs
	clockOffsetMs = offsetMs
	if baseMs != 0 {
		clockBaseWallMs = realNow()
	}
}

func realNow() int64 {
	t := time.Now()
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// Now reads the engine's clock with millisecond precision: the real wall
// clock by default, or a --base/--offset simulated clock when configured via
// SetClockOverride. Returns 0 on real clock failure, surfaced by callers as
// an ErrClockFailure.
func Now() int64 {
	real := realNow()
	if real == 0 {
		return 0
	}
	if clockBaseMs != 0 {
		return clockBaseMs + (real - clockBaseWallMs) + clockOffsetMs
	}
	return real + clockOffsetMs
}

// daysFromCivil implements Howard Hinnant's shifted-epoch (March of year 0)
// algorithm, returning the number of days since the Unix epoch for the given
// proleptic-Gregorian civil date.
func daysFromCivil(y int64, m, d int) int64 {
	if m <= 2 {
		y--
	}
	var era int64
	if y >= 0 {
		era = y / 400
	} else {
		era = (y - 399) / 400
	}
	yoe := y - era*400 // [0, 399]
	var mp int64
	if m > 2 {
		mp = int64(m) - 3
	} else {
		mp = int64(m) + 9
	}
	doy := (153*mp+2)/5 + int64(d) - 1 // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int64) (y int64, m int, d int) {
	z += 719468
	var era int64
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097                                           // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365           // [0, 399]
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	d = int(doy-(153*mp+2)/5) + 1
	if mp < 10 {
		m = int(mp) + 3
	} else {
		m = int(mp) - 9
	}
	if m <= 2 {
		y++
	}
	return
}

// IsLeapGregorian reports whether y is a leap year in the proleptic
// Gregorian calendar.
func IsLeapGregorian(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

var daysInMonthTable = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in month m of year y, respecting
// leap years for February.
func DaysInMonth(y, m int) int {
	if m == 2 && IsLeapGregorian(y) {
		return 29
	}
	return daysInMonthTable[m-1]
}

// Parse decomposes a Unix-ms timestamp into its civil fields.
func Parse(ms int64) Civil {
	days := floorDivInt64(ms, msPerDay)
	msOfDay := ms - days*msPerDay

	y, m, d := civilFromDays(days)

	jan1 := daysFromCivil(y, 1, 1)
	doy := int(days-jan1) + 1

	dow := int(floorModInt64(days+4, 7)) // epoch (1970-01-01) was a Thursday (dow 4)

	hour := int(msOfDay / 3600000)
	msOfDay -= int64(hour) * 3600000
	minute := int(msOfDay / 60000)
	msOfDay -= int64(minute) * 60000
	sec := int(msOfDay / 1000)
	msec := int(msOfDay - int64(sec)*1000)

	return Civil{
		Year: int(y), Month: m, Day: d, DOY: doy, DOW: dow,
		Hour: hour, Min: minute, Sec: sec, Msec: msec,
		OriginalMs: ms,
	}
}

// Compose is the inverse of Parse: it returns the Unix-ms timestamp for the
// given civil fields, shifted by tzMinutes (civil time is interpreted as UTC
// plus tzMinutes, so composing with a positive offset yields an earlier UTC
// instant).
func Compose(y, m, d, h, mi, s, ms, tzMinutes int) int64 {
	days := daysFromCivil(int64(y), m, d)
	total := days*msPerDay +
		int64(h)*3600000 + int64(mi)*60000 + int64(s)*1000 + int64(ms)
	return total - int64(tzMinutes)*60000
}

// lastSundayMs returns the UTC ms timestamp of 01:00 UTC on the last Sunday
// of the given month/year.
func lastSundayAt1amUTC(year, month int) int64 {
	lastDay := DaysInMonth(year, month)
	days := daysFromCivil(int64(year), month, lastDay)
	dow := floorModInt64(days+4, 7)
	sundayDays := days - dow // walk back to the Sunday on/before lastDay
	return sundayDays*msPerDay + 3600000
}

// IsEUDST reports whether CEST/BST is in effect at utcMs (true strictly
// between 01:00 UTC on the last Sunday of March and 01:00 UTC on the last
// Sunday of October), and minutes remaining until the next changeover if
// that changeover is within 25 hours, else -1.
func IsEUDST(utcMs int64) (isSummer bool, inMins int) {
	c := Parse(utcMs)
	start := lastSundayAt1amUTC(c.Year, 3)
	end := lastSundayAt1amUTC(c.Year, 10)

	isSummer = utcMs >= start && utcMs < end

	var next int64
	switch {
	case utcMs < start:
		next = start
	case utcMs < end:
		next = end
	default:
		next = lastSundayAt1amUTC(c.Year+1, 3)
	}

	diff := next - utcMs
	const window = 25 * 3600 * 1000
	if diff >= 0 && diff <= window {
		inMins = int(diff / 60000)
	} else {
		inMins = -1
	}
	return
}

// usDSTWindow returns the [start, end) UTC-ms window during which US DST is
// in effect for the given year: 02:00 on the second Sunday of March through
// 02:00 on the first Sunday of November. In the absence of a specific US
// time zone (the CLI does not take one; see DESIGN.md), the "02:00 local"
// changeover is evaluated against UTC, matching how WWVB's own broadcast
// site effectively observes it.
func usDSTWindow(year int) (start, end int64) {
	marchFirstSunday := func() int64 {
		days := daysFromCivil(int64(year), 3, 1)
		dow := floorModInt64(days+4, 7)
		offset := floorModInt64(7-dow, 7)
		return days + offset
	}
	novFirstSunday := func() int64 {
		days := daysFromCivil(int64(year), 11, 1)
		dow := floorModInt64(days+4, 7)
		offset := floorModInt64(7-dow, 7)
		return days + offset
	}
	secondSundayMarch := marchFirstSunday() + 7
	firstSundayNov := novFirstSunday()
	start = secondSundayMarch*msPerDay + 2*3600000
	end = firstSundayNov*msPerDay + 2*3600000
	return
}

func isUSDSTAt(utcMs int64) bool {
	c := Parse(utcMs)
	start, end := usDSTWindow(c.Year)
	return utcMs >= start && utcMs < end
}

// IsUSDST reports whether US DST is in effect at the start of the UTC day
// containing utcMs, and, only on a day where the status changes before the
// next day starts, whether it is in effect at the end of that day.
func IsUSDST(utcMs int64) (isDSTAtStartOfUTCDay bool, isDSTAtEnd *bool) {
	c := Parse(utcMs)
	dayStart := Compose(c.Year, c.Month, c.Day, 0, 0, 0, 0, 0)
	dayEnd := dayStart + msPerDay - 1

	isDSTAtStartOfUTCDay = isUSDSTAt(dayStart)
	endVal := isUSDSTAt(dayEnd)
	if endVal != isDSTAtStartOfUTCDay {
		isDSTAtEnd = &endVal
	}
	return
}
