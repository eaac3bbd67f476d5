// main.go - chronobeacon: synthesizes a radio-time-signal waveform at an
// audible/ultrasound subharmonic of a real station's carrier, for playback
// through ordinary computer audio hardware.

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

func usage() {
	fmt.Fprintln(os.Stderr, "chronobeacon - radio-controlled clock time-signal generator")
	fmt.Fprintln(os.Stderr, "usage: chronobeacon [flags]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "flags:")
	fmt.Fprintln(os.Stderr, "  -s, --station string    BPC, DCF77, JJY, JJY60, MSF, WWVB (default WWVB)")
	fmt.Fprintln(os.Stderr, "  -u, --ultrasound         synthesize above 20kHz instead of below it")
	fmt.Fprintln(os.Stderr, "  -a, --audible            force the audible subharmonic, overriding a config file")
	fmt.Fprintln(os.Stderr, "      --dut1 int           DUT1 in tenths of a second, -8..8")
	fmt.Fprintln(os.Stderr, "  -b, --base int           simulate the clock starting from this Unix ms")
	fmt.Fprintln(os.Stderr, "  -o, --offset int         a constant ms offset applied on top of the clock")
	fmt.Fprintln(os.Stderr, "  -S, --smooth             exponential gain lerp instead of an instant snap")
	fmt.Fprintln(os.Stderr, "  -m, --method string      pipewire, pulse, alsa, oto (default: probe)")
	fmt.Fprintln(os.Stderr, "  -D, --device string      output device name (default: backend's default)")
	fmt.Fprintln(os.Stderr, "  -r, --rate int           sample rate in Hz (default 48000)")
	fmt.Fprintln(os.Stderr, "  -c, --channels int       output channel count (default 1)")
	fmt.Fprintln(os.Stderr, "  -f, --format string      sample format (default FLOAT)")
	fmt.Fprintln(os.Stderr, "  -d, --duration int       stop after N seconds (default: run until interrupted)")
	fmt.Fprintln(os.Stderr, "  -C, --config string      path to a config file")
	fmt.Fprintln(os.Stderr, "  -v, --verbose            print a line on every resync")
	fmt.Fprintln(os.Stderr, "  -L, --syslog             mirror log output to syslog")
	fmt.Fprintln(os.Stderr, "  -l, --log string         also mirror log output to this file")
	fmt.Fprintln(os.Stderr, "  -q, --quiet              suppress informational logging, errors only")
	fmt.Fprintln(os.Stderr, "      --list-formats       print supported sample formats and exit")
	fmt.Fprintln(os.Stderr, "  -h, --help               show this message")
}

func listFormats() {
	for _, name := range []string{
		"S16", "S16_LE", "S16_BE", "S24", "S24_LE", "S24_BE",
		"S24_32", "S24_32_LE", "S24_32_BE", "U16", "U16_LE", "U16_BE",
		"U32_BE", "FLOAT", "FLOAT_LE", "FLOAT_BE", "FLOAT64", "FLOAT64_LE", "FLOAT64_BE",
	} {
		fmt.Println(name)
	}
}

func run() error {
	flags, err := ParseFlags(os.Args[1:])
	if err != nil {
		return newEngineError(ErrInvalidConfig, err)
	}
	if flags.Help {
		usage()
		return nil
	}
	if flags.ListFmts {
		listFormats()
		return nil
	}

	fileCfg, err := LoadConfigFile(flags.ConfigFile)
	if err != nil {
		return err
	}

	cfg := DefaultConfig().MergeFile(fileCfg)
	cfg, err = flags.ToConfig(cfg)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	SetClockOverride(cfg.Signal.BaseMs, cfg.Signal.UserOffsetMs)

	logger, err := NewLogger(cfg.Syslog, cfg.LogFile, cfg.Quiet)
	if err != nil {
		return err
	}

	logger.Info("starting", "station", cfg.Signal.Station.String(), "rate", cfg.Audio.Rate)

	backend, err := SelectBackend(cfg.Audio.Backend)
	if err != nil {
		return newEngineError(ErrBackendLibLoad, err)
	}
	logger.Info("backend selected", "name", backend.Name())

	if err := backend.Init(cfg.Audio.Rate, cfg.Audio.Channels, cfg.Audio.Format, cfg.Audio.Device); err != nil {
		_ = backend.LibDeinit()
		return newEngineError(ErrBackendOpen, err)
	}

	engine := NewStationState(cfg.Signal.Station, cfg.Audio.Rate, cfg.Signal.Ultrasound, cfg.Signal.DUT1Tenths, cfg.Signal.Smooth)

	ctx, stop := RunContext()
	defer stop()
	if cfg.Audio.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Audio.Duration)*time.Second)
		defer cancel()
	}

	verboseLine := func(nowMs int64) {}
	if cfg.Verbose {
		interactive := term.IsTerminal(int(os.Stderr.Fd()))
		lastTimestamp := int64(-1)
		verboseLine = func(nowMs int64) {
			ts := (nowMs / 60000) * 60000
			if ts == lastTimestamp {
				return
			}
			lastTimestamp = ts
			line := FormatResyncStatus(cfg.Signal.Station, ts)
			if interactive {
				fmt.Fprintf(os.Stderr, "\r%s", line)
			} else {
				fmt.Fprintln(os.Stderr, line)
			}
		}
	}

	next := func(nowMs int64) float64 {
		verboseLine(nowMs)
		return engine.NextSample(nowMs)
	}

	loopErr := backend.Loop(ctx, next)

	if err := backend.Deinit(); err != nil {
		logger.Warn("backend deinit failed", "error", err)
	}
	if err := backend.LibDeinit(); err != nil {
		logger.Warn("backend lib deinit failed", "error", err)
	}

	if loopErr != nil {
		return newEngineError(ErrXrun, loopErr)
	}
	logger.Info("stopped")
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitCode(err))
	}
}
