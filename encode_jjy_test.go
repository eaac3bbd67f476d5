package main

import "testing"

func TestEncodeJJYMarkersArePresent(t *testing.T) {
	st := &StationState{id: JJY40}
	utcMs := Compose(2024, 6, 15, 3, 20, 0, 0, 0) // minute 20: no callsign overlay
	encodeJJY(st, utcMs)

	for _, m := range []int{0, 9, 19, 29, 39, 49, 59} {
		base := m * TicksPerSecond
		highFirst40 := 4 // 200ms / 50ms
		allHigh := true
		for i := 0; i < highFirst40; i++ {
			if !st.tickMap.Get(base + i) {
				allHigh = false
			}
		}
		if !allHigh {
			t.Errorf("marker second %d should start high", m)
		}
	}
}

func TestEncodeJJYAppliesCallsignOnMinute15(t *testing.T) {
	st := &StationState{id: JJY40}
	utcMs := Compose(2024, 6, 15, 3, 15, 0, 0, 0)
	encodeJJY(st, utcMs)

	anyHighInWindow := false
	for i := jjyCallsignStart; i < jjyCallsignEnd; i++ {
		if st.tickMap.Get(i) {
			anyHighInWindow = true
			break
		}
	}
	if !anyHighInWindow {
		t.Error("expected the callsign window to contain at least one high tick")
	}
}

func TestEncodeJJYIsDeterministic(t *testing.T) {
	utcMs := Compose(2024, 6, 15, 3, 20, 0, 0, 0)
	st1 := &StationState{id: JJY40}
	st2 := &StationState{id: JJY60}
	encodeJJY(st1, utcMs)
	encodeJJY(st2, utcMs)
	if st1.tickMap != st2.tickMap {
		t.Error("JJY40 and JJY60 should produce identical tick maps for the same instant")
	}
}
