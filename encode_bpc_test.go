package main

import "testing"

func TestEncodeBPCProducesThreeFramesOfMarkers(t *testing.T) {
	st := &StationState{id: BPC}
	utcMs := Compose(2024, 6, 15, 8, 30, 0, 0, 0)
	encodeBPC(st, utcMs)

	for p := 0; p < 3; p++ {
		base := p * 20 * TicksPerSecond
		for i := 0; i < TicksPerSecond; i++ {
			if !st.tickMap.Get(base + i) {
				t.Fatalf("frame %d marker second should be all-high, tick %d is low", p, i)
			}
		}
	}
}

func TestEncodeBPCIsDeterministic(t *testing.T) {
	st1 := &StationState{id: BPC}
	st2 := &StationState{id: BPC}
	utcMs := Compose(2024, 6, 15, 8, 30, 0, 0, 0)
	encodeBPC(st1, utcMs)
	encodeBPC(st2, utcMs)
	if st1.tickMap != st2.tickMap {
		t.Error("encoding the same instant twice produced different tick maps")
	}
}

func TestBPCParityFlipsOnMiddleFrame(t *testing.T) {
	st := &StationState{id: BPC}
	utcMs := Compose(2024, 6, 15, 8, 30, 0, 0, 0)
	encodeBPC(st, utcMs)

	// Frame 0's symbol 10 and frame 1's symbol 10 differ only in bit 0
	// (the parity flip), so their rendered pulse widths must differ.
	frame0Tick := (0*20 + 10) * TicksPerSecond
	frame1Tick := (1*20 + 10) * TicksPerSecond
	same := true
	for i := 0; i < TicksPerSecond; i++ {
		if st.tickMap.Get(frame0Tick+i) != st.tickMap.Get(frame1Tick+i) {
			same = false
			break
		}
	}
	if same {
		t.Error("expected frame 0 and frame 1's symbol 10 to differ by the parity flip")
	}
}
