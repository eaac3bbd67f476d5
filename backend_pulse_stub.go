//go:build !linux || headless

package main

func newPulseBackend() Backend { return nil }
