package main

import "testing"

func TestIsJJYMorseMinute(t *testing.T) {
	for _, m := range []int{15, 45} {
		if !isJJYMorseMinute(m) {
			t.Errorf("minute %d should be a callsign minute", m)
		}
	}
	for _, m := range []int{0, 14, 16, 30, 44, 46, 59} {
		if isJJYMorseMinute(m) {
			t.Errorf("minute %d should not be a callsign minute", m)
		}
	}
}

func TestJJYCallsignWindow(t *testing.T) {
	if !isJJYMorseTick(jjyCallsignStart) {
		t.Error("window start tick should be inside the window")
	}
	if isJJYMorseTick(jjyCallsignEnd) {
		t.Error("window end tick should be exclusive")
	}
	if isJJYMorseTick(jjyCallsignStart - 1) {
		t.Error("tick before the window should not be inside it")
	}
}

func TestApplyJJYMorseStaysWithinWindow(t *testing.T) {
	var tm TickMap
	tm.Clear()
	applyJJYMorse(&tm)
	for i := 0; i < jjyCallsignStart; i++ {
		if tm.Get(i) {
			t.Fatalf("tick %d before the window should be untouched", i)
		}
	}
	for i := jjyCallsignEnd; i < TicksPerMinute; i++ {
		if tm.Get(i) {
			t.Fatalf("tick %d after the window should be untouched", i)
		}
	}
}
