package main

import "testing"

func TestEncodeWWVBMarkersAreLongestPulse(t *testing.T) {
	st := &StationState{id: WWVB}
	utcMs := Compose(2024, 6, 15, 8, 30, 0, 0, 0)
	encodeWWVB(st, utcMs)

	for _, m := range []int{0, 9, 19, 29, 39, 49, 59} {
		base := m * TicksPerSecond
		lowCount := 0
		for i := 0; i < TicksPerSecond; i++ {
			if !st.tickMap.Get(base + i) {
				lowCount++
			}
		}
		if lowCount < 16 { // 800ms low-portion marker pulse
			t.Errorf("marker second %d should have a long low portion, got %d ticks", m, lowCount)
		}
	}
}

func TestEncodeWWVBLeapYearBitDiffers(t *testing.T) {
	leapMs := Compose(2024, 1, 1, 0, 0, 0, 0, 0)
	nonLeapMs := Compose(2023, 1, 1, 0, 0, 0, 0, 0)
	stLeap := &StationState{id: WWVB}
	stNonLeap := &StationState{id: WWVB}
	encodeWWVB(stLeap, leapMs)
	encodeWWVB(stNonLeap, nonLeapMs)

	base := 55*TicksPerSecond + 5
	leapHigh := stLeap.tickMap.Get(base)
	nonLeapHigh := stNonLeap.tickMap.Get(base)
	if leapHigh == nonLeapHigh {
		t.Error("expected the leap-year bit's rendered pulse to differ between a leap and non-leap year")
	}
}

func TestEncodeWWVBUsesUTCDirectly(t *testing.T) {
	st1 := &StationState{id: WWVB}
	st2 := &StationState{id: WWVB}
	utcMs := Compose(2024, 6, 15, 8, 30, 0, 0, 0)
	encodeWWVB(st1, utcMs)
	encodeWWVB(st2, utcMs)
	if st1.tickMap != st2.tickMap {
		t.Error("encoding the same instant twice produced different tick maps")
	}
}
