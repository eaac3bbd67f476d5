// cli.go - Command-line flag definitions, built on pflag for GNU-style
// long/short flag parity with the rest of this program's config surface.

package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// CLIFlags is the raw, unvalidated result of parsing os.Args.
type CLIFlags struct {
	Station      string
	Ultrasound   bool
	Audible      bool
	DUT1Tenths   int
	BaseMs       int64
	UserOffsetMs int64
	Smooth       bool
	Backend      string
	Device       string
	Rate         int
	Channels     int
	Format       string
	Duration     int
	ConfigFile   string
	Verbose      bool
	Syslog       bool
	LogFile      string
	Quiet        bool
	ListFmts     bool
	Help         bool
}

func ParseFlags(args []string) (*CLIFlags, error) {
	fs := flag.NewFlagSet("chronobeacon", flag.ContinueOnError)
	c := &CLIFlags{}

	fs.StringVarP(&c.Station, "station", "s", "", "time-signal station: BPC, DCF77, JJY, JJY60, MSF, WWVB")
	fs.BoolVarP(&c.Ultrasound, "ultrasound", "u", false, "synthesize the highest odd subharmonic below Nyquist/2 instead of below 20kHz")
	fs.BoolVarP(&c.Audible, "audible", "a", false, "force the audible (below 20kHz) subharmonic, overriding a config file's ultrasound setting")
	fs.IntVar(&c.DUT1Tenths, "dut1", 0, "DUT1 in tenths of a second, -8..8 (MSF/WWVB only)")
	fs.Int64VarP(&c.BaseMs, "base", "b", 0, "simulate the clock starting from this Unix ms instead of real time")
	fs.Int64VarP(&c.UserOffsetMs, "offset", "o", 0, "a constant ms offset applied on top of the clock")
	fs.BoolVarP(&c.Smooth, "smooth", "S", false, "exponential gain lerp across keying-level changes instead of an instant snap")
	fs.StringVarP(&c.Backend, "method", "m", "", "audio backend: pipewire, pulse, alsa, oto (default: probe in that order)")
	fs.StringVarP(&c.Device, "device", "D", "", "output device name (backend-specific; default: backend's default device)")
	fs.IntVarP(&c.Rate, "rate", "r", 0, "sample rate in Hz")
	fs.IntVarP(&c.Channels, "channels", "c", 0, "output channel count")
	fs.StringVarP(&c.Format, "format", "f", "", "sample format: S16, S16_BE, S24, S24_32, U16, U32_BE, FLOAT, FLOAT64, ...")
	fs.IntVarP(&c.Duration, "duration", "d", 0, "stop after N seconds (default: run until interrupted)")
	fs.StringVarP(&c.ConfigFile, "config", "C", "", "path to a config file")
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "print a status line on every resync")
	fs.BoolVarP(&c.Syslog, "syslog", "L", false, "mirror log output to syslog")
	fs.StringVarP(&c.LogFile, "log", "l", "", "also mirror log output to this file")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "suppress informational logging, errors only")
	fs.BoolVar(&c.ListFmts, "list-formats", false, "print supported sample formats and exit")
	fs.BoolVarP(&c.Help, "help", "h", false, "show usage and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

// ToConfig converts parsed flags into a Config, leaving fields the user
// didn't set at their zero value so Config.MergeFile and DefaultConfig can
// layer underneath.
func (c *CLIFlags) ToConfig(base Config) (Config, error) {
	cfg := base
	if c.Station != "" {
		id, err := ParseStationId(c.Station)
		if err != nil {
			return cfg, newEngineError(ErrInvalidConfig, err)
		}
		cfg.Signal.Station = id
	}
	if c.Ultrasound {
		cfg.Signal.Ultrasound = true
	}
	if c.Audible {
		cfg.Signal.Ultrasound = false
	}
	if c.DUT1Tenths != 0 {
		cfg.Signal.DUT1Tenths = c.DUT1Tenths
	}
	if c.BaseMs != 0 {
		cfg.Signal.BaseMs = c.BaseMs
	}
	if c.UserOffsetMs != 0 {
		cfg.Signal.UserOffsetMs = c.UserOffsetMs
	}
	if c.Smooth {
		cfg.Signal.Smooth = true
	}
	if c.Backend != "" {
		cfg.Audio.Backend = c.Backend
	}
	if c.Device != "" {
		cfg.Audio.Device = c.Device
	}
	if c.Rate != 0 {
		cfg.Audio.Rate = c.Rate
	}
	if c.Channels != 0 {
		cfg.Audio.Channels = c.Channels
	}
	if c.Format != "" {
		sf, err := ParseSampleFormat(c.Format)
		if err != nil {
			return cfg, newEngineError(ErrInvalidConfig, fmt.Errorf("%w", err))
		}
		cfg.Audio.Format = sf
	}
	if c.Duration != 0 {
		cfg.Audio.Duration = c.Duration
	}
	if c.Verbose {
		cfg.Verbose = true
	}
	if c.Syslog {
		cfg.Syslog = true
	}
	if c.LogFile != "" {
		cfg.LogFile = c.LogFile
	}
	if c.Quiet {
		cfg.Quiet = true
	}
	return cfg, nil
}
