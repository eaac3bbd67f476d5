//go:build !headless

// backend_oto.go - Portable backend built on oto/v3's pull-callback player.
// Always Float32LE, mono; works on every platform oto supports.

package main

import (
	"context"
	"time"

	"github.com/ebitengine/oto/v3"
)

type otoBackend struct {
	ctx    *oto.Context
	player *oto.Player
	next   func(nowMs int64) float64
	rate   int
}

func newOtoBackend() Backend { return &otoBackend{} }

func (b *otoBackend) Name() string { return "oto" }

func (b *otoBackend) LibInit() error { return nil }

// Init opens the default oto playback context. device is accepted for
// interface symmetry with the other backends but ignored: oto's portable
// context API doesn't expose device selection.
func (b *otoBackend) Init(rate int, channels int, format SampleFormat, device string) error {
	op := &oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4 * time.Millisecond,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return err
	}
	<-ready
	b.ctx = ctx
	b.rate = rate
	return nil
}

// Read implements io.Reader for oto.Player, pulling samples from next via
// the Loop-installed callback.
func (b *otoBackend) Read(p []byte) (int, error) {
	n := len(p) / 4
	nowMs := Now()
	for i := 0; i < n; i++ {
		packOne(FormatFloat32LE, b.next(nowMs), p[i*4:i*4+4])
	}
	return n * 4, nil
}

func (b *otoBackend) Loop(ctx context.Context, next func(nowMs int64) float64) error {
	b.next = next
	b.player = b.ctx.NewPlayer(b)
	b.player.Play()
	<-ctx.Done()
	return nil
}

func (b *otoBackend) Deinit() error {
	if b.player != nil {
		b.player.Close()
		b.player = nil
	}
	return nil
}

func (b *otoBackend) LibDeinit() error { return nil }
