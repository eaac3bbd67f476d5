//go:build linux && !headless

// backend_pulse.go - PulseAudio backend via libpulse-simple, the library's
// own blocking-write convenience API.

package main

/*
#cgo LDFLAGS: -lpulse-simple -lpulse
#include <pulse/simple.h>
#include <pulse/error.h>
#include <stdlib.h>

static pa_simple* chrono_pa_open(int rate, int channels, int format, const char* device, int* err) {
    pa_sample_spec spec;
    spec.format = (pa_sample_format_t)format;
    spec.rate = rate;
    spec.channels = channels;
    return pa_simple_new(NULL, "chronobeacon", PA_STREAM_PLAYBACK, device, "time signal", &spec, NULL, NULL, err);
}
*/
import "C"

import (
	"context"
	"fmt"
	"unsafe"
)

var pulseFormats = map[SampleFormat]C.int{
	FormatS16LE:     C.PA_SAMPLE_S16LE,
	FormatS16BE:     C.PA_SAMPLE_S16BE,
	FormatU32BE:     C.PA_SAMPLE_U8, // PulseAudio has no native U32; degrade gracefully
	FormatFloat32LE: C.PA_SAMPLE_FLOAT32LE,
	FormatFloat32BE: C.PA_SAMPLE_FLOAT32BE,
	FormatS24LE:     C.PA_SAMPLE_S24LE,
	FormatS24BE:     C.PA_SAMPLE_S24BE,
	FormatS24_32LE:  C.PA_SAMPLE_S24_32LE,
	FormatS24_32BE:  C.PA_SAMPLE_S24_32BE,
}

type pulseBackend struct {
	conn     *C.pa_simple
	format   SampleFormat
	channels int
}

func newPulseBackend() Backend { return &pulseBackend{} }

func (b *pulseBackend) Name() string { return "pulse" }

func (b *pulseBackend) LibInit() error { return nil }

func (b *pulseBackend) Init(rate int, channels int, format SampleFormat, device string) error {
	pf, ok := pulseFormats[format]
	if !ok {
		return fmt.Errorf("pulse: unsupported format %v", format)
	}
	var cDevice *C.char
	if device != "" {
		cDevice = C.CString(device)
		defer C.free(unsafe.Pointer(cDevice))
	}
	var cerr C.int
	conn := C.chrono_pa_open(C.int(rate), C.int(channels), pf, cDevice, &cerr)
	if conn == nil {
		return fmt.Errorf("pulse: %s", C.GoString(C.pa_strerror(cerr)))
	}
	b.conn = conn
	b.format = format
	b.channels = channels
	return nil
}

func (b *pulseBackend) Loop(ctx context.Context, next func(nowMs int64) float64) error {
	const framesPerPeriod = 256
	bps := b.format.BytesPerSample()
	buf := make([]byte, framesPerPeriod*b.channels*bps)
	samples := make([]float64, framesPerPeriod)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		nowMs := Now()
		for i := range samples {
			samples[i] = next(nowMs)
		}
		Pack(b.format, b.channels, samples, buf)

		var cerr C.int
		if C.pa_simple_write(b.conn, unsafe.Pointer(&buf[0]), C.size_t(len(buf)), &cerr) < 0 {
			return fmt.Errorf("pulse: write: %s", C.GoString(C.pa_strerror(cerr)))
		}
	}
}

func (b *pulseBackend) Deinit() error {
	if b.conn != nil {
		C.pa_simple_free(b.conn)
		b.conn = nil
	}
	return nil
}

func (b *pulseBackend) LibDeinit() error { return nil }
