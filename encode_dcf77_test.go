package main

import "testing"

func TestEncodeDCF77MinuteMarkHasNoPulse(t *testing.T) {
	st := &StationState{id: DCF77}
	utcMs := Compose(2024, 6, 15, 8, 30, 0, 0, 0)
	encodeDCF77(st, utcMs)

	base := 59 * TicksPerSecond
	for i := 0; i < TicksPerSecond; i++ {
		if !st.tickMap.Get(base + i) {
			t.Fatalf("second 59 (minute mark) should be all-high, tick %d is low", i)
		}
	}
}

func TestEncodeDCF77IsDeterministic(t *testing.T) {
	utcMs := Compose(2024, 6, 15, 8, 30, 0, 0, 0)
	st1 := &StationState{id: DCF77}
	st2 := &StationState{id: DCF77}
	encodeDCF77(st1, utcMs)
	encodeDCF77(st2, utcMs)
	if st1.tickMap != st2.tickMap {
		t.Error("encoding the same instant twice produced different tick maps")
	}
}

func TestEncodeDCF77SummerWinterDiffer(t *testing.T) {
	winterMs := Compose(2024, 1, 15, 8, 30, 0, 0, 0)
	summerMs := Compose(2024, 7, 15, 8, 30, 0, 0, 0)

	stWinter := &StationState{id: DCF77}
	stSummer := &StationState{id: DCF77}
	encodeDCF77(stWinter, winterMs)
	encodeDCF77(stSummer, summerMs)

	if stWinter.tickMap == stSummer.tickMap {
		t.Error("expected different tick maps for winter and summer time encodings")
	}
}
