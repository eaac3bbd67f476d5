// encode_wwvb.go - WWVB (Fort Collins, Colorado, 60 kHz) protocol encoder.

package main

func wwvbPulseMs(v int) int {
	switch v {
	case 2: // marker
		return 800
	case 1:
		return 500
	default: // 0
		return 200
	}
}

// encodeWWVB rewrites st.tickMap for the minute containing utcMs.
func encodeWWVB(st *StationState, utcMs int64) {
	c := Parse(utcMs) // WWVB broadcasts UTC directly

	sym := make([]int, 60)
	markers := []int{0, 9, 19, 29, 39, 49, 59}
	for _, m := range markers {
		sym[m] = 2
	}

	// Minutes: bits 1-8 (tens 40/20/10/unused, units 8/4/2/1), position
	// markers at 9 occupy the frame boundary already set above.
	setBCDField(sym, 1, c.Min/10, []int{4, 2, 1}, 0)
	setBCDField(sym, 5, c.Min%10, []int{8, 4, 2, 1}, 0)

	// Hours: bits 12-18.
	setBCDField(sym, 12, c.Hour/10, []int{2, 1}, 0)
	setBCDField(sym, 15, c.Hour%10, []int{8, 4, 2, 1}, 0)

	// Day of year: bits 22-33.
	setBCDField(sym, 22, c.DOY/100, []int{2, 1}, 0)
	setBCDField(sym, 25, (c.DOY/10)%10, []int{8, 4, 2, 1}, 0)
	setBCDField(sym, 30, c.DOY%10, []int{8, 4, 2, 1}, 0)

	// DUT1 sign (bits 36-38, redundantly coded) and magnitude (bits 40-43,
	// BCD tenths). Positive sets 36 and 38; negative sets 37 alone; zero
	// sets none of the three.
	switch {
	case st.dut1Tenths > 0:
		sym[36], sym[37], sym[38] = 1, 0, 1
	case st.dut1Tenths < 0:
		sym[36], sym[37], sym[38] = 0, 1, 0
	default:
		sym[36], sym[37], sym[38] = 0, 0, 0
	}
	mag := st.dut1Tenths
	if mag < 0 {
		mag = -mag
	}
	setBCDField(sym, 40, mag, []int{8, 4, 2, 1}, 0)

	// Year (bits 45-53, tens/units BCD).
	setBCDField(sym, 45, (c.Year%100)/10, []int{8, 4, 2, 1}, 0)
	setBCDField(sym, 50, (c.Year%100)%10, []int{8, 4, 2, 1}, 0)

	// Leap year indicator (bit 55).
	if IsLeapGregorian(c.Year) {
		sym[55] = 1
	}

	// DST bits: 57 (in effect at start of day) and 58 (in effect at end).
	dstStart, dstEnd := IsUSDST(utcMs)
	if dstStart {
		sym[57] = 1
	}
	if dstEnd != nil && *dstEnd {
		sym[58] = 1
	}

	st.tickMap.Clear()
	for i := 0; i < 60; i++ {
		ApplySecondPulse(&st.tickMap, i, wwvbPulseMs(sym[i]), false)
	}
}

// setBCDField writes a BCD-weighted value into sym starting at start, one
// symbol per weight, skipping unused/marker positions implicitly (weight 0
// entries are never produced by the weight tables used here).
func setBCDField(sym []int, start int, value int, weights []int, _ int) {
	for i, w := range weights {
		if value&w != 0 {
			sym[start+i] = 1
		} else {
			sym[start+i] = 0
		}
	}
}
