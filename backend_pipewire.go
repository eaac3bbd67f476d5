//go:build linux && !headless

// backend_pipewire.go - PipeWire backend via its simple-stream convenience
// API (pw_simple, not the full async pw_stream event-loop API).

package main

/*
#cgo pkg-config: libpipewire-0.3
#include <pipewire/pipewire.h>
#include <spa/param/audio/format-utils.h>
#include <stdlib.h>
#include <string.h>

struct chrono_pw {
    struct pw_main_loop *loop;
    struct pw_stream *stream;
};

static void on_process(void *userdata) {
    // Rendering happens on the Go side via a pull from the stream buffer;
    // this convenience backend instead pushes fixed-size chunks directly
    // (see chrono_pw_write), so the process callback is a no-op.
}

static const struct pw_stream_events stream_events = {
    PW_VERSION_STREAM_EVENTS,
    .process = on_process,
};

static struct chrono_pw* chrono_pw_open(int rate, int channels, const char* device) {
    struct chrono_pw *pw = calloc(1, sizeof(struct chrono_pw));
    pw_init(NULL, NULL);
    pw->loop = pw_main_loop_new(NULL);

    uint8_t buffer[1024];
    struct spa_pod_builder b = SPA_POD_BUILDER_INIT(buffer, sizeof(buffer));
    struct spa_audio_info_raw info = {0};
    info.format = SPA_AUDIO_FORMAT_F32;
    info.rate = rate;
    info.channels = channels;
    const struct spa_pod *params[1];
    params[0] = spa_format_audio_raw_build(&b, SPA_PARAM_EnumFormat, &info);

    struct pw_properties *props = pw_properties_new(
        PW_KEY_MEDIA_TYPE, "Audio",
        PW_KEY_MEDIA_CATEGORY, "Playback",
        PW_KEY_MEDIA_ROLE, "Production",
        NULL);
    if (device != NULL) {
        pw_properties_set(props, PW_KEY_TARGET_OBJECT, device);
    }

    pw->stream = pw_stream_new_simple(
        pw_main_loop_get_loop(pw->loop),
        "chronobeacon",
        props,
        &stream_events, NULL);

    pw_stream_connect(pw->stream, PW_DIRECTION_OUTPUT, PW_ID_ANY,
        PW_STREAM_FLAG_AUTOCONNECT | PW_STREAM_FLAG_MAP_BUFFERS | PW_STREAM_FLAG_RT_PROCESS,
        params, 1);

    return pw;
}

static int chrono_pw_write(struct chrono_pw *pw, const void *data, int size) {
    struct pw_buffer *b = pw_stream_dequeue_buffer(pw->stream);
    if (b == NULL) return -1;
    struct spa_buffer *buf = b->buffer;
    if (buf->datas[0].data == NULL) return -1;
    int n = size;
    if (n > (int)buf->datas[0].maxsize) n = buf->datas[0].maxsize;
    memcpy(buf->datas[0].data, data, n);
    buf->datas[0].chunk->offset = 0;
    buf->datas[0].chunk->stride = 4;
    buf->datas[0].chunk->size = n;
    pw_stream_queue_buffer(pw->stream, b);
    return n;
}

static void chrono_pw_close(struct chrono_pw *pw) {
    if (pw == NULL) return;
    if (pw->stream) pw_stream_destroy(pw->stream);
    if (pw->loop) pw_main_loop_destroy(pw->loop);
    free(pw);
}
*/
import "C"

import (
	"context"
	"fmt"
	"unsafe"
)

type pipewireBackend struct {
	pw       *C.struct_chrono_pw
	channels int
}

func newPipewireBackend() Backend { return &pipewireBackend{} }

func (b *pipewireBackend) Name() string { return "pipewire" }

func (b *pipewireBackend) LibInit() error { return nil }

func (b *pipewireBackend) Init(rate int, channels int, format SampleFormat, device string) error {
	if format != FormatFloat32LE {
		return fmt.Errorf("pipewire: only FLOAT_LE is supported by this adapter")
	}
	var cDevice *C.char
	if device != "" {
		cDevice = C.CString(device)
		defer C.free(unsafe.Pointer(cDevice))
	}
	pw := C.chrono_pw_open(C.int(rate), C.int(channels), cDevice)
	if pw == nil {
		return fmt.Errorf("pipewire: failed to open stream")
	}
	b.pw = pw
	b.channels = channels
	return nil
}

func (b *pipewireBackend) Loop(ctx context.Context, next func(nowMs int64) float64) error {
	const framesPerPeriod = 256
	buf := make([]byte, framesPerPeriod*b.channels*4)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		nowMs := Now()
		for i := 0; i < framesPerPeriod; i++ {
			v := next(nowMs)
			for c := 0; c < b.channels; c++ {
				off := (i*b.channels + c) * 4
				packOne(FormatFloat32LE, v, buf[off:off+4])
			}
		}

		if C.chrono_pw_write(b.pw, unsafe.Pointer(&buf[0]), C.int(len(buf))) < 0 {
			continue // buffer not yet available; try again next period
		}
	}
}

func (b *pipewireBackend) Deinit() error {
	if b.pw != nil {
		C.chrono_pw_close(b.pw)
		b.pw = nil
	}
	return nil
}

func (b *pipewireBackend) LibDeinit() error { return nil }
