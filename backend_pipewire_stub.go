//go:build !linux || headless

package main

func newPipewireBackend() Backend { return nil }
