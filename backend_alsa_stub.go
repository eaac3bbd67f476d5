//go:build !linux || headless

package main

func newALSABackend() Backend { return nil }
