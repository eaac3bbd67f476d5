package main

import "testing"

func TestEncodeMSFMinuteMarkerIsLongestPulse(t *testing.T) {
	st := &StationState{id: MSF}
	utcMs := Compose(2024, 6, 15, 8, 30, 0, 0, 0)
	encodeMSF(st, utcMs)

	base := 0 // second 0 is always the 500ms minute marker (11)
	highCount := 0
	for i := 0; i < TicksPerSecond; i++ {
		if st.tickMap.Get(base + i) {
			highCount++
		}
	}
	if highCount < 10 {
		t.Errorf("expected the minute marker's high portion to span at least 10 ticks, got %d", highCount)
	}
}

func TestEncodeMSFDUT1Positive(t *testing.T) {
	stZero := &StationState{id: MSF, dut1Tenths: 0}
	stPos := &StationState{id: MSF, dut1Tenths: 3}
	utcMs := Compose(2024, 6, 15, 8, 30, 0, 0, 0)
	encodeMSF(stZero, utcMs)
	encodeMSF(stPos, utcMs)
	if stZero.tickMap == stPos.tickMap {
		t.Error("expected a nonzero DUT1 to change the encoded tick map")
	}
}

func TestEncodeMSFIsDeterministic(t *testing.T) {
	utcMs := Compose(2024, 6, 15, 8, 30, 0, 0, 0)
	st1 := &StationState{id: MSF}
	st2 := &StationState{id: MSF}
	encodeMSF(st1, utcMs)
	encodeMSF(st2, utcMs)
	if st1.tickMap != st2.tickMap {
		t.Error("encoding the same instant twice produced different tick maps")
	}
}
