// config.go - The two immutable configuration records (time-signal
// parameters and audio parameters) plus CLI/config-file merge and
// validation.

package main

import "fmt"

// SignalConfig is every parameter that affects what gets encoded.
type SignalConfig struct {
	Station      StationId
	Ultrasound   bool
	DUT1Tenths   int
	BaseMs       int64 // --base: simulate the clock starting from this Unix ms instead of real time; 0 disables
	UserOffsetMs int64 // --offset: a constant ms offset applied on top of the clock (real or simulated)
	Smooth       bool  // --smooth: exponential gain lerp across keying-level changes instead of an instant snap
}

// AudioConfig is every parameter that affects how it gets played.
type AudioConfig struct {
	Backend  string // "" means auto-probe
	Device   string // "" means the backend's default output device
	Rate     int
	Channels int
	Format   SampleFormat
	Duration int // seconds; 0 means run indefinitely
}

// Config is the fully merged, validated configuration the engine and
// backend are built from.
type Config struct {
	Signal  SignalConfig
	Audio   AudioConfig
	Verbose bool
	Syslog  bool
	LogFile string // --log: also mirror log output to this file; "" disables
	Quiet   bool   // --quiet: suppress informational logging, errors only
}

// DefaultConfig mirrors the CLI's documented defaults.
func DefaultConfig() Config {
	return Config{
		Signal: SignalConfig{
			Station:    WWVB,
			Ultrasound: false,
			DUT1Tenths: 0,
		},
		Audio: AudioConfig{
			Backend:  "",
			Device:   "",
			Rate:     48000,
			Channels: 1,
			Format:   FormatFloat32LE,
		},
	}
}

// Validate checks the fully merged configuration for internally
// inconsistent or out-of-range values, returning an InvalidConfig error.
func (c Config) Validate() error {
	if c.Audio.Rate < 8000 || c.Audio.Rate > 768000 {
		return newEngineError(ErrInvalidConfig, fmt.Errorf("sample rate %d out of range [8000, 768000]", c.Audio.Rate))
	}
	if c.Audio.Channels < 1 || c.Audio.Channels > 8 {
		return newEngineError(ErrInvalidConfig, fmt.Errorf("channel count %d out of range [1, 8]", c.Audio.Channels))
	}
	if c.Signal.DUT1Tenths < -8 || c.Signal.DUT1Tenths > 8 {
		return newEngineError(ErrInvalidConfig, fmt.Errorf("dut1 %+d out of range [-8, 8] tenths of a second", c.Signal.DUT1Tenths))
	}
	if c.Audio.Duration < 0 {
		return newEngineError(ErrInvalidConfig, fmt.Errorf("duration %d must be non-negative", c.Audio.Duration))
	}
	if c.Verbose && c.Quiet {
		return newEngineError(ErrInvalidConfig, fmt.Errorf("--verbose and --quiet are mutually exclusive"))
	}
	return nil
}

// MergeFile applies config-file values over the receiver wherever the CLI
// left a field at its zero/default value, so flags always win over the
// file and the file always wins over built-in defaults.
func (c Config) MergeFile(f FileConfig) Config {
	if f.Station != "" {
		if id, err := ParseStationId(f.Station); err == nil {
			c.Signal.Station = id
		}
	}
	if f.Ultrasound != nil {
		c.Signal.Ultrasound = *f.Ultrasound
	}
	if f.DUT1Tenths != nil {
		c.Signal.DUT1Tenths = *f.DUT1Tenths
	}
	if f.BaseMs != 0 {
		c.Signal.BaseMs = f.BaseMs
	}
	if f.UserOffsetMs != 0 {
		c.Signal.UserOffsetMs = f.UserOffsetMs
	}
	if f.Smooth != nil {
		c.Signal.Smooth = *f.Smooth
	}
	if f.Backend != "" {
		c.Audio.Backend = f.Backend
	}
	if f.Device != "" {
		c.Audio.Device = f.Device
	}
	if f.Rate != 0 {
		c.Audio.Rate = f.Rate
	}
	if f.Channels != 0 {
		c.Audio.Channels = f.Channels
	}
	if f.Format != "" {
		if sf, err := ParseSampleFormat(f.Format); err == nil {
			c.Audio.Format = sf
		}
	}
	if f.Duration != 0 {
		c.Audio.Duration = f.Duration
	}
	if f.Verbose != nil {
		c.Verbose = *f.Verbose
	}
	if f.Syslog != nil {
		c.Syslog = *f.Syslog
	}
	if f.LogFile != "" {
		c.LogFile = f.LogFile
	}
	if f.Quiet != nil {
		c.Quiet = *f.Quiet
	}
	return c
}
