// packer.go - Converts float64 samples in [-1, 1] into the wire bytes of an
// arbitrary PCM format, for backends that can't consume float32 directly.

package main

import (
	"encoding/binary"
	"fmt"
	"math"
)

func f32bits(v float32) uint32 { return math.Float32bits(v) }
func f64bits(v float64) uint64 { return math.Float64bits(v) }

// SampleFormat enumerates every PCM layout the CLI's --format flag accepts.
type SampleFormat int

const (
	FormatS16LE SampleFormat = iota
	FormatS16BE
	FormatS24LE    // packed 3-byte
	FormatS24BE    // packed 3-byte
	FormatS24_32LE // 24 significant bits, zero-padded to 4 bytes
	FormatS24_32BE
	FormatU16LE
	FormatU16BE
	FormatU32BE
	FormatFloat32LE
	FormatFloat32BE
	FormatFloat64LE
	FormatFloat64BE
)

// ParseSampleFormat accepts the CLI's format names: the S16/S16_LE/S16_BE,
// S24*, U16, U32_BE, FLOAT*, and FLOAT64* family.
func ParseSampleFormat(s string) (SampleFormat, error) {
	switch s {
	case "S16", "S16_LE":
		return FormatS16LE, nil
	case "S16_BE":
		return FormatS16BE, nil
	case "S24", "S24_LE":
		return FormatS24LE, nil
	case "S24_BE":
		return FormatS24BE, nil
	case "S24_32", "S24_32_LE":
		return FormatS24_32LE, nil
	case "S24_32_BE":
		return FormatS24_32BE, nil
	case "U16", "U16_LE":
		return FormatU16LE, nil
	case "U16_BE":
		return FormatU16BE, nil
	case "U32_BE":
		return FormatU32BE, nil
	case "FLOAT", "FLOAT_LE":
		return FormatFloat32LE, nil
	case "FLOAT_BE":
		return FormatFloat32BE, nil
	case "FLOAT64", "FLOAT64_LE":
		return FormatFloat64LE, nil
	case "FLOAT64_BE":
		return FormatFloat64BE, nil
	default:
		return 0, fmt.Errorf("unknown sample format %q", s)
	}
}

// BytesPerSample returns the on-wire size of one sample in f.
func (f SampleFormat) BytesPerSample() int {
	switch f {
	case FormatS16LE, FormatS16BE, FormatU16LE, FormatU16BE:
		return 2
	case FormatS24LE, FormatS24BE:
		return 3
	case FormatS24_32LE, FormatS24_32BE, FormatU32BE, FormatFloat32LE, FormatFloat32BE:
		return 4
	case FormatFloat64LE, FormatFloat64BE:
		return 8
	default:
		return 2
	}
}

// requantize16 deliberately round-trips x through a 16-bit signed integer
// before re-expanding to float, so every output format carries the same
// audible quantization floor the reference 16-bit formats exhibit.
func requantize16(x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	q := int16(x * 32767)
	return float64(q) / 32767
}

// Pack converts n samples from in (each in [-1, 1]) into out, replicated
// across channels identical copies per frame, in the given format. out must
// be sized for n*channels*format.BytesPerSample().
func Pack(format SampleFormat, channels int, in []float64, out []byte) {
	bps := format.BytesPerSample()
	off := 0
	for i := 0; i < len(in); i++ {
		v := requantize16(in[i])
		for c := 0; c < channels; c++ {
			packOne(format, v, out[off:off+bps])
			off += bps
		}
	}
}

// packOne quantizes v to the reference 16-bit integer, then re-expands it
// to wider formats by left-shifting rather than independently quantizing at
// the wider format's own full resolution, so every format shares the same
// 16-bit quantization floor requantize16 establishes.
func packOne(format SampleFormat, v float64, dst []byte) {
	q16 := int32(int16(v * 32767))
	switch format {
	case FormatS16LE:
		binary.LittleEndian.PutUint16(dst, uint16(int16(q16)))
	case FormatS16BE:
		binary.BigEndian.PutUint16(dst, uint16(int16(q16)))
	case FormatU16LE:
		binary.LittleEndian.PutUint16(dst, uint16(q16+32768))
	case FormatU16BE:
		binary.BigEndian.PutUint16(dst, uint16(q16+32768))
	case FormatU32BE:
		q32 := q16 << 16
		binary.BigEndian.PutUint32(dst, uint32(int64(q32)+2147483648))
	case FormatS24LE:
		packS24(dst, q16<<8, false)
	case FormatS24BE:
		packS24(dst, q16<<8, true)
	case FormatS24_32LE:
		var buf [4]byte
		packS24(buf[:3], q16<<8, false)
		copy(dst, buf[:])
	case FormatS24_32BE:
		var buf [4]byte
		packS24(buf[1:4], q16<<8, true)
		copy(dst, buf[:])
	case FormatFloat32LE:
		binary.LittleEndian.PutUint32(dst, f32bits(float32(v)))
	case FormatFloat32BE:
		binary.BigEndian.PutUint32(dst, f32bits(float32(v)))
	case FormatFloat64LE:
		binary.LittleEndian.PutUint64(dst, f64bits(v))
	case FormatFloat64BE:
		binary.BigEndian.PutUint64(dst, f64bits(v))
	}
}

func packS24(dst []byte, v int32, big bool) {
	b0 := byte(v)
	b1 := byte(v >> 8)
	b2 := byte(v >> 16)
	if big {
		dst[0], dst[1], dst[2] = b2, b1, b0
	} else {
		dst[0], dst[1], dst[2] = b0, b1, b2
	}
}
