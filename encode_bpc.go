// encode_bpc.go - BPC (Shangqiu, China, 68.5 kHz) protocol encoder.
//
// BPC has no DST; the broadcast civil time is always China Standard Time
// (UTC+8).

package main

// bpcPulseMs maps a BPC 2-bit symbol value to the duration (ms) of the
// "low" portion of its one-second slot. Symbol value 4 can occur for the
// frame-number flag in frame p=2 (see DESIGN.md: a deliberately preserved
// quirk of this protocol's real-world encoding, not a bug introduced here)
// and falls back to the value-0 pulse via modulo, matching how a 2-bit
// field would wrap in hardware.
var bpcPulseMs = [4]int{100, 200, 300, 400}

func bpcSymbolPulseMs(v int) int {
	return bpcPulseMs[v&0x3]
}

func bpcParity(symbols []int, lo, hi int) int {
	count := 0
	for i := lo; i <= hi; i++ {
		v := symbols[i]
		count += (v & 1) + ((v >> 1) & 1)
	}
	return count & 1
}

func sundayToSeven(dow int) int {
	if dow == 0 {
		return 7
	}
	return dow
}

// encodeBPC rewrites st.tickMap for the BPC minute containing utcMs.
func encodeBPC(st *StationState, utcMs int64) {
	localMs := utcMs + BPC.Info().UTCOffsetMs
	c := Parse(localMs)

	hour12 := c.Hour % 12
	isPM := 0
	if c.Hour >= 12 {
		isPM = 1
	}
	dow17 := sundayToSeven(c.DOW)
	yearMod100 := c.Year % 100

	st.tickMap.Clear()

	// One 20-symbol frame repeated three times, identical date/time fields
	// except for the frame-number flag and one parity adjustment (see
	// DESIGN.md's note on the 3x repeat).
	for p := 0; p < 3; p++ {
		sym := make([]int, 20)
		sym[0] = 0 // marker, rendered specially below

		sym[3] = hour12 / 4
		sym[4] = hour12 % 4

		sym[5] = c.Min / 16
		sym[6] = (c.Min / 4) % 4
		sym[7] = c.Min % 4

		sym[8] = dow17 / 4
		sym[9] = dow17 % 4

		sym[10] = (isPM << 1) | bpcParity(sym, 1, 9)

		sym[11] = c.Day / 16
		sym[12] = (c.Day / 4) % 4
		sym[13] = c.Day % 4

		sym[14] = c.Month / 4
		sym[15] = c.Month % 4

		yLow6 := yearMod100 & 0x3F
		sym[16] = yLow6 / 16
		sym[17] = (yLow6 / 4) % 4
		sym[18] = yLow6 % 4

		sym[19] = ((c.Year >> 5) & 2) | bpcParity(sym, 11, 18)

		sym[1] = 2 * p
		if p == 1 {
			sym[10] ^= 1
		}

		base := p * 20
		ApplySecondPulse(&st.tickMap, base+0, 0, false) // marker: no pulse
		for i := 1; i < 20; i++ {
			ApplySecondPulse(&st.tickMap, base+i, bpcSymbolPulseMs(sym[i]), false)
		}
	}
}
