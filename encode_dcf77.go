// encode_dcf77.go - DCF77 (Mainflingen, Germany, 77.5 kHz) protocol encoder.

package main

func dcfBitPulseMs(b int) int {
	return 100 + 100*b
}

// encodeDCF77 rewrites st.tickMap for the DCF77 minute containing utcMs.
// DCF77 transmits the civil time of the MINUTE THAT IS ABOUT TO START, so
// the encoded fields are read one minute ahead of utcMs.
func encodeDCF77(st *StationState, utcMs int64) {
	nextMinuteMs := utcMs + 60000
	isSummer, _ := IsEUDST(nextMinuteMs)
	offsetMs := DCF77.Info().UTCOffsetMs
	if isSummer {
		offsetMs += 3600000
	}
	c := Parse(nextMinuteMs + offsetMs)

	// The imminent-change and CEST/CET flag bits describe the transmitting
	// station's status at the current moment, not the upcoming civil minute
	// the BCD fields encode.
	isSummerNow, inMinsNow := IsEUDST(utcMs)

	bits := make([]int, 60)

	// DST-change announcement fires during the hour before the changeover;
	// DCF77's window is inclusive of minute 60 (unlike MSF's 1..=61).
	if inMinsNow >= 0 && inMinsNow <= 60 {
		bits[16] = 1
	}
	if isSummerNow {
		bits[17] = 1
	} else {
		bits[18] = 1
	}
	bits[20] = 1

	setBitsLSBFirst(bits, 21, 4, bcdDigit(c.Min%10))
	setBitsLSBFirst(bits, 25, 3, bcdDigit(c.Min/10))
	bits[28] = evenParity(bits, 21, 27)

	setBitsLSBFirst(bits, 29, 4, bcdDigit(c.Hour%10))
	setBitsLSBFirst(bits, 33, 2, bcdDigit(c.Hour/10))
	bits[35] = evenParity(bits, 29, 34)

	setBitsLSBFirst(bits, 36, 4, bcdDigit(c.Day%10))
	setBitsLSBFirst(bits, 40, 2, bcdDigit(c.Day/10))
	setBitsLSBFirst(bits, 42, 3, sundayToSeven(c.DOW))
	setBitsLSBFirst(bits, 45, 4, bcdDigit(c.Month%10))
	setBitsLSBFirst(bits, 49, 1, bcdDigit(c.Month/10))
	setBitsLSBFirst(bits, 50, 4, bcdDigit(c.Year%10))
	setBitsLSBFirst(bits, 54, 4, bcdDigit((c.Year%100)/10))
	bits[58] = evenParity(bits, 36, 57)

	st.tickMap.Clear()
	for i := 0; i < 59; i++ {
		ApplySecondPulse(&st.tickMap, i, dcfBitPulseMs(bits[i]), false)
	}
	ApplySecondPulse(&st.tickMap, 59, 0, false) // minute mark: no pulse at all
}
