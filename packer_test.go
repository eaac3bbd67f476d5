package main

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestPackS16LERoundTrip(t *testing.T) {
	in := []float64{0, 0.5, -0.5, 1, -1}
	out := make([]byte, len(in)*2)
	Pack(FormatS16LE, 1, in, out)

	for i, want := range in {
		v := int16(binary.LittleEndian.Uint16(out[i*2 : i*2+2]))
		got := float64(v) / 32767
		if math.Abs(got-requantize16(want)) > 1e-4 {
			t.Errorf("sample %d: got %v, want ~%v", i, got, requantize16(want))
		}
	}
}

func TestPackReplicatesAcrossChannels(t *testing.T) {
	in := []float64{0.25}
	out := make([]byte, 2*2)
	Pack(FormatS16LE, 2, in, out)
	left := binary.LittleEndian.Uint16(out[0:2])
	right := binary.LittleEndian.Uint16(out[2:4])
	if left != right {
		t.Error("expected identical samples across channels")
	}
}

func TestPackFloat32LERoundTrip(t *testing.T) {
	in := []float64{0.125, -0.875}
	out := make([]byte, len(in)*4)
	Pack(FormatFloat32LE, 1, in, out)
	for i, want := range in {
		bits := binary.LittleEndian.Uint32(out[i*4 : i*4+4])
		got := float64(math.Float32frombits(bits))
		if math.Abs(got-requantize16(want)) > 1e-4 {
			t.Errorf("sample %d: got %v, want ~%v", i, got, requantize16(want))
		}
	}
}

func TestPackS24In32ZeroPads(t *testing.T) {
	in := []float64{1.0}
	out := make([]byte, 4)
	Pack(FormatS24_32LE, 1, in, out)
	if out[3] != 0 {
		t.Errorf("expected zero padding byte, got %d", out[3])
	}
}

// q16 reproduces the 16-bit quantization step every wider format is derived
// from by left-shifting, mirroring packOne's own algorithm.
func q16(x float64) int32 {
	return int32(int16(requantize16(x) * 32767))
}

func TestPackS24LEMatchesShiftedS16(t *testing.T) {
	in := []float64{0.33, -0.7}
	out := make([]byte, len(in)*3)
	Pack(FormatS24LE, 1, in, out)
	for i, x := range in {
		b := out[i*3 : i*3+3]
		got := int32(b[0]) | int32(b[1])<<8 | int32(int8(b[2]))<<16
		want := q16(x) << 8
		if got != want {
			t.Errorf("sample %d: got %d, want %d (16-bit value left-shifted by 8)", i, got, want)
		}
	}
}

func TestPackU32BEMatchesShiftedS16(t *testing.T) {
	in := []float64{0.5, -0.25}
	out := make([]byte, len(in)*4)
	Pack(FormatU32BE, 1, in, out)
	for i, x := range in {
		got := binary.BigEndian.Uint32(out[i*4 : i*4+4])
		want := uint32(int64(q16(x)<<16) + 2147483648)
		if got != want {
			t.Errorf("sample %d: got %d, want %d (16-bit value left-shifted by 16)", i, got, want)
		}
	}
}

func TestBytesPerSample(t *testing.T) {
	cases := map[SampleFormat]int{
		FormatS16LE: 2, FormatU16BE: 2, FormatS24LE: 3, FormatS24_32LE: 4,
		FormatU32BE: 4, FormatFloat32LE: 4, FormatFloat64LE: 8,
	}
	for f, want := range cases {
		if got := f.BytesPerSample(); got != want {
			t.Errorf("BytesPerSample(%v) = %d, want %d", f, got, want)
		}
	}
}

func TestParseSampleFormatAliases(t *testing.T) {
	cases := map[string]SampleFormat{
		"S16": FormatS16LE, "S16_LE": FormatS16LE, "FLOAT": FormatFloat32LE,
		"FLOAT64": FormatFloat64LE, "S24_32": FormatS24_32LE,
	}
	for s, want := range cases {
		got, err := ParseSampleFormat(s)
		if err != nil {
			t.Fatalf("ParseSampleFormat(%q): %v", s, err)
		}
		if got != want {
			t.Errorf("ParseSampleFormat(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestRequantize16Clamps(t *testing.T) {
	if requantize16(2.0) != requantize16(1.0) {
		t.Error("expected clamping above 1.0")
	}
	if requantize16(-2.0) != requantize16(-1.0) {
		t.Error("expected clamping below -1.0")
	}
}
