//go:build linux && !headless

// backend_alsa.go - Raw ALSA backend, direct cgo against libasound.

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

/*
#cgo LDFLAGS: -lasound
#include <alsa/asoundlib.h>
#include <stdlib.h>

static snd_pcm_t* chrono_open(const char* device, int* err) {
    snd_pcm_t* handle;
    *err = snd_pcm_open(&handle, device, SND_PCM_STREAM_PLAYBACK, 0);
    return handle;
}

// chrono_setup allocates its hw_params blob on the heap rather than with
// snd_pcm_hw_params_alloca, so the caller controls its lifetime explicitly
// instead of tying it to the calling C stack frame.
static int chrono_setup(snd_pcm_t* handle, unsigned int rate, unsigned int channels, snd_pcm_format_t format) {
    snd_pcm_hw_params_t* params = NULL;
    int err;

    err = snd_pcm_hw_params_malloc(&params);
    if (err < 0) return err;

    err = snd_pcm_hw_params_any(handle, params);
    if (err < 0) goto done;

    err = snd_pcm_hw_params_set_access(handle, params, SND_PCM_ACCESS_RW_INTERLEAVED);
    if (err < 0) goto done;

    err = snd_pcm_hw_params_set_format(handle, params, format);
    if (err < 0) goto done;

    err = snd_pcm_hw_params_set_channels(handle, params, channels);
    if (err < 0) goto done;

    err = snd_pcm_hw_params_set_rate(handle, params, rate, 0);
    if (err < 0) goto done;

    err = snd_pcm_hw_params(handle, params);
    if (err < 0) goto done;

    err = snd_pcm_prepare(handle);

done:
    snd_pcm_hw_params_free(params);
    return err;
}

static snd_pcm_sframes_t chrono_write(snd_pcm_t* handle, const void* buffer, snd_pcm_uframes_t frames) {
    return snd_pcm_writei(handle, buffer, frames);
}
*/
import "C"

import (
	"context"
	"fmt"
	"unsafe"
)

var alsaFormats = map[SampleFormat]C.snd_pcm_format_t{
	FormatS16LE:     C.SND_PCM_FORMAT_S16_LE,
	FormatS16BE:     C.SND_PCM_FORMAT_S16_BE,
	FormatU16LE:     C.SND_PCM_FORMAT_U16_LE,
	FormatU16BE:     C.SND_PCM_FORMAT_U16_BE,
	FormatS24LE:     C.SND_PCM_FORMAT_S24_3LE,
	FormatS24BE:     C.SND_PCM_FORMAT_S24_3BE,
	FormatS24_32LE:  C.SND_PCM_FORMAT_S24_LE,
	FormatS24_32BE:  C.SND_PCM_FORMAT_S24_BE,
	FormatU32BE:     C.SND_PCM_FORMAT_U32_BE,
	FormatFloat32LE: C.SND_PCM_FORMAT_FLOAT_LE,
	FormatFloat32BE: C.SND_PCM_FORMAT_FLOAT_BE,
	FormatFloat64LE: C.SND_PCM_FORMAT_FLOAT64_LE,
	FormatFloat64BE: C.SND_PCM_FORMAT_FLOAT64_BE,
}

type alsaBackend struct {
	handle   *C.snd_pcm_t
	format   SampleFormat
	channels int
	rate     int
}

func newALSABackend() Backend { return &alsaBackend{} }

func (b *alsaBackend) Name() string { return "alsa" }

func (b *alsaBackend) LibInit() error { return nil }

func (b *alsaBackend) Init(rate int, channels int, format SampleFormat, device string) error {
	cf, ok := alsaFormats[format]
	if !ok {
		return fmt.Errorf("alsa: unsupported format %v", format)
	}
	if device == "" {
		device = "default"
	}

	var cerr C.int
	cDevice := C.CString(device)
	defer C.free(unsafe.Pointer(cDevice))

	handle := C.chrono_open(cDevice, &cerr)
	if cerr < 0 {
		return fmt.Errorf("alsa: open: %s", C.GoString(C.snd_strerror(cerr)))
	}

	if err := C.chrono_setup(handle, C.uint(rate), C.uint(channels), cf); err < 0 {
		C.snd_pcm_close(handle)
		return fmt.Errorf("alsa: hw_params: %s", C.GoString(C.snd_strerror(err)))
	}

	b.handle = handle
	b.format = format
	b.channels = channels
	b.rate = rate
	return nil
}

func (b *alsaBackend) Loop(ctx context.Context, next func(nowMs int64) float64) error {
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

		frames := C.chrono_write(b.handle, unsafe.Pointer(&buf[0]), C.snd_pcm_uframes_t(framesPerPeriod))
		if frames < 0 {
			C.snd_pcm_prepare(b.handle)
		}
	}
}

func (b *alsaBackend) Deinit() error {
	if b.handle != nil {
		C.snd_pcm_drain(b.handle)
		C.snd_pcm_close(b.handle)
		b.handle = nil
	}
	return nil
}

func (b *alsaBackend) LibDeinit() error { return nil }
