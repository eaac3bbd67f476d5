package main

import (
	"math"
	"testing"
)

func TestOscillatorSampleRangeInvariant(t *testing.T) {
	var o Oscillator
	o.Init(60000.0/3, 192000, 0)
	for i := 0; i < 192000; i++ {
		v := o.Next()
		if v < -1.0001 || v > 1.0001 {
			t.Fatalf("sample %d out of range: %f", i, v)
		}
	}
}

func TestOscillatorResetsExactlyEveryPeriod(t *testing.T) {
	var o Oscillator
	o.Init(1000, 48000, 0)
	first := o.initY0
	for i := int64(0); i < o.period; i++ {
		o.Next()
	}
	got := o.y0
	if math.Abs(got-first) > 1e-9 {
		t.Errorf("after one period, y0 = %v, want %v", got, first)
	}
}

func TestOscillatorZeroPhaseStartsAtInitY0(t *testing.T) {
	var o Oscillator
	o.Init(1000, 48000, 0)
	if o.Next() != o.initY0 {
		t.Error("first sample should equal initY0 at zero phase")
	}
}

func TestRationalizeRatioRecoversExactFraction(t *testing.T) {
	num, den := rationalizeRatio(68500.0/3, 192000, 192000*1000+1)
	// (68500/3) / 192000 = 68500 / 576000 = 137/1152 once reduced.
	g := gcdInt64(num, den)
	if num/g != 137 || den/g != 1152 {
		t.Errorf("rationalizeRatio = %d/%d, want 137/1152 after reduction", num/g, den/g)
	}
}
