// encode_msf.go - MSF (Anthorn, UK, 60 kHz) protocol encoder.
//
// MSF keys two independent bit streams per second ("A" and "B"), rendered
// here as a single pulse-width-encoded tick map: 00=100ms, 01=200ms,
// 10=300ms, 11=500ms (minute marker).

package main

func msfPulseMs(a, b int) int {
	switch {
	case a == 0 && b == 0:
		return 100
	case a == 1 && b == 0:
		return 200
	case a == 0 && b == 1:
		return 300
	default:
		return 500
	}
}

// encodeMSF rewrites st.tickMap for the MSF minute containing utcMs. Like
// DCF77, MSF transmits the civil time of the upcoming minute.
func encodeMSF(st *StationState, utcMs int64) {
	nextMinuteMs := utcMs + 60000
	isSummer, inMins := IsEUDST(nextMinuteMs)
	offsetMs := MSF.Info().UTCOffsetMs
	if isSummer {
		offsetMs += 3600000
	}
	c := Parse(nextMinuteMs + offsetMs)

	a := make([]int, 60)
	b := make([]int, 60)

	setBitsLSBFirst(a, 17, 6, bcdDigit(c.Year/10)<<4|bcdDigit(c.Year%10))
	setBitsLSBFirst(a, 25, 5, bcdDigit(c.Month/10)<<4|bcdDigit(c.Month%10))
	setBitsLSBFirst(a, 30, 6, bcdDigit(c.Day/10)<<4|bcdDigit(c.Day%10))
	setBitsLSBFirst(a, 36, 3, sundayToSeven(c.DOW))
	setBitsLSBFirst(a, 39, 6, bcdDigit(c.Hour/10)<<4|bcdDigit(c.Hour%10))
	setBitsLSBFirst(a, 45, 7, bcdDigit(c.Min/10)<<4|bcdDigit(c.Min%10))

	// DUT1 encoded as unary ones: positive in bits 1..8, negative in 9..16.
	dut1 := st.dut1Tenths
	if dut1 > 0 {
		n := dut1
		if n > 8 {
			n = 8
		}
		for i := 0; i < n; i++ {
			a[1+i] = 1
		}
	} else if dut1 < 0 {
		n := -dut1
		if n > 8 {
			n = 8
		}
		for i := 0; i < n; i++ {
			a[9+i] = 1
		}
	}

	// DST-change announcement: MSF's window is 1..=61 minutes, asymmetric
	// with DCF77's 1..=60.
	if inMins >= 0 && inMins <= 61 {
		a[53] = 1
	}

	b[54] = oddParity(a, 17, 24) // year parity
	b[55] = oddParity(a, 25, 35) // month+day parity
	b[56] = oddParity(a, 36, 38) // weekday parity
	b[57] = oddParity(a, 39, 51) // hour+minute parity

	// Bit 58 ("BST flag") is set for the whole duration summer time is in
	// effect, independent of the bit 53 imminent-change announcement.
	if isSummer {
		a[58] = 1
	}

	st.tickMap.Clear()
	for i := 0; i < 60; i++ {
		ApplySecondPulse(&st.tickMap, i, msfPulseMs(a[i], b[i]), false)
	}

	// Secondary marker: seconds 53-58 add 100ms to each pulse, rendering the
	// extra 01111110 frame-alignment pattern.
	for i := 53; i <= 58; i++ {
		extra := 100
		base := i * TicksPerSecond
		extraTicks := extra / 50
		for t := 0; t < extraTicks; t++ {
			st.tickMap.Set(base+t, false)
		}
	}
}
