//go:build headless

// backend_oto_headless.go - No-op stand-in for environments without audio
// hardware (CI, containers), selected by the "headless" build tag.

package main

import "context"

type otoBackend struct{}

func newOtoBackend() Backend { return &otoBackend{} }

func (b *otoBackend) Name() string { return "oto (headless)" }

func (b *otoBackend) LibInit() error { return nil }

func (b *otoBackend) Init(rate int, channels int, format SampleFormat, device string) error {
	return nil
}

func (b *otoBackend) Loop(ctx context.Context, next func(nowMs int64) float64) error {
	<-ctx.Done()
	return nil
}

func (b *otoBackend) Deinit() error { return nil }

func (b *otoBackend) LibDeinit() error { return nil }
