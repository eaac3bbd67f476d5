package main

import "testing"

func TestTickMapSetGet(t *testing.T) {
	var tm TickMap
	tm.Set(0, true)
	tm.Set(1199, true)
	tm.Set(600, false)
	if !tm.Get(0) || !tm.Get(1199) {
		t.Error("expected bits 0 and 1199 set")
	}
	if tm.Get(600) {
		t.Error("expected bit 600 clear")
	}
	if tm.Get(1) {
		t.Error("expected untouched bit clear")
	}
}

func TestApplySecondPulseLowFirst(t *testing.T) {
	var tm TickMap
	ApplySecondPulse(&tm, 0, 300, false)
	for i := 0; i < 6; i++ {
		if tm.Get(i) {
			t.Errorf("tick %d should be low during the 300ms pulse", i)
		}
	}
	for i := 6; i < TicksPerSecond; i++ {
		if !tm.Get(i) {
			t.Errorf("tick %d should be high after the pulse", i)
		}
	}
}

func TestApplySecondPulseHighFirst(t *testing.T) {
	var tm TickMap
	ApplySecondPulse(&tm, 0, 500, true)
	for i := 0; i < 10; i++ {
		if !tm.Get(i) {
			t.Errorf("tick %d should be high during the 500ms pulse", i)
		}
	}
	for i := 10; i < TicksPerSecond; i++ {
		if tm.Get(i) {
			t.Errorf("tick %d should be low after the pulse", i)
		}
	}
}

func TestTickMapClear(t *testing.T) {
	var tm TickMap
	tm.Set(5, true)
	tm.Clear()
	if tm.Get(5) {
		t.Error("expected cleared tick map")
	}
}
