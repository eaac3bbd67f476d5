// encode_jjy.go - JJY/JJY60 (Fukushima/Fukuoka, Japan, 40/60 kHz) encoder.
//
// JJY inverts the usual pulse convention: each second's marker/1/0 symbol is
// keyed high-first, and minutes 15 and 45 overlay a Morse "JJY" callsign
// (see morse.go) instead of the ordinary low-gain tone during ticks
// jjyCallsignStart..jjyCallsignEnd.

package main

func jjySymbolPulseMs(v int) int {
	switch v {
	case 2: // marker/position-identifier
		return 200
	case 1:
		return 500
	default: // 0
		return 800
	}
}

// encodeJJY rewrites st.tickMap for the minute containing utcMs. Both JJY40
// and JJY60 share this encoding; only the carrier frequency differs.
func encodeJJY(st *StationState, utcMs int64) {
	localMs := utcMs + JJY40.Info().UTCOffsetMs
	c := Parse(localMs)

	sym := make([]int, 60)
	for i := range sym {
		sym[i] = 0
	}
	markers := []int{0, 9, 19, 29, 39, 49, 59}
	for _, m := range markers {
		sym[m] = 2
	}

	bits := make([]int, 60)

	setBitsLSBFirst(bits, 1, 3, bcdDigit(c.Min/10))
	setBitsLSBFirst(bits, 5, 4, bcdDigit(c.Min%10))

	setBitsLSBFirst(bits, 12, 2, bcdDigit(c.Hour/10))
	setBitsLSBFirst(bits, 15, 4, bcdDigit(c.Hour%10))

	setBitsLSBFirst(bits, 22, 2, bcdDigit(c.DOY/100))
	setBitsLSBFirst(bits, 25, 4, bcdDigit((c.DOY/10)%10))
	setBitsLSBFirst(bits, 30, 4, bcdDigit(c.DOY%10))

	bits[36] = evenParity(bits, 12, 19) // hour parity (PA1)
	bits[37] = evenParity(bits, 1, 8)   // minute parity (PA2)

	setBitsLSBFirst(bits, 41, 4, bcdDigit((c.Year%100)/10))
	setBitsLSBFirst(bits, 45, 4, bcdDigit((c.Year%100)%10))

	setBitsLSBFirst(bits, 50, 3, c.DOW) // 0=Sun..6=Sat, native JJY convention

	if isJJYMorseMinute(c.Min) {
		bits[50], bits[51], bits[52] = 0, 0, 0
	}

	for i := 1; i < 60; i++ {
		if sym[i] == 2 {
			continue
		}
		if bits[i] == 1 {
			sym[i] = 1
		} else {
			sym[i] = 0
		}
	}

	st.tickMap.Clear()
	for i := 0; i < 60; i++ {
		ApplySecondPulse(&st.tickMap, i, jjySymbolPulseMs(sym[i]), true)
	}

	if isJJYMorseMinute(c.Min) {
		applyJJYMorse(&st.tickMap)
	}
}
