// configfile.go - A small "name = value" config-file grammar: one
// assignment per line, '#' starts a comment, values may be bare words or
// double-quoted strings. No third-party library covers this grammar
// (it isn't YAML, TOML, or JSON), so it's hand-rolled, matching the
// teacher's preference for small purpose-built parsers over pulling in a
// generic format for a format nobody else uses.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FileConfig holds config-file overrides. Pointer fields distinguish
// "unset" from "explicitly set to false/zero".
type FileConfig struct {
	Station      string
	Ultrasound   *bool
	DUT1Tenths   *int
	BaseMs       int64
	UserOffsetMs int64
	Smooth       *bool
	Backend      string
	Device       string
	Rate         int
	Channels     int
	Format       string
	Duration     int
	Verbose      *bool
	Syslog       *bool
	LogFile      string
	Quiet        *bool
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q", s)
	}
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// LoadConfigFile reads path and returns the overrides it specifies. A
// missing file is not an error; a malformed line is.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	if path == "" {
		return fc, nil
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return fc, nil
	}
	if err != nil {
		return fc, newEngineError(ErrInvalidConfig, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return fc, newEngineError(ErrInvalidConfig, fmt.Errorf("%s:%d: missing '=' in %q", path, lineNo, line))
		}
		key := strings.TrimSpace(line[:eq])
		val := unquote(strings.TrimSpace(line[eq+1:]))

		var perr error
		switch key {
		case "station":
			fc.Station = val
		case "ultrasound":
			var b bool
			if b, perr = parseBool(val); perr == nil {
				fc.Ultrasound = &b
			}
		case "dut1":
			var n int
			if n, perr = strconv.Atoi(val); perr == nil {
				fc.DUT1Tenths = &n
			}
		case "base":
			fc.BaseMs, perr = strconv.ParseInt(val, 10, 64)
		case "offset":
			fc.UserOffsetMs, perr = strconv.ParseInt(val, 10, 64)
		case "smooth":
			var b bool
			if b, perr = parseBool(val); perr == nil {
				fc.Smooth = &b
			}
		case "backend":
			fc.Backend = val
		case "device":
			fc.Device = val
		case "rate":
			fc.Rate, perr = strconv.Atoi(val)
		case "channels":
			fc.Channels, perr = strconv.Atoi(val)
		case "format":
			fc.Format = val
		case "duration":
			fc.Duration, perr = strconv.Atoi(val)
		case "verbose":
			var b bool
			if b, perr = parseBool(val); perr == nil {
				fc.Verbose = &b
			}
		case "syslog":
			var b bool
			if b, perr = parseBool(val); perr == nil {
				fc.Syslog = &b
			}
		case "log":
			fc.LogFile = val
		case "quiet":
			var b bool
			if b, perr = parseBool(val); perr == nil {
				fc.Quiet = &b
			}
		default:
			return fc, newEngineError(ErrInvalidConfig, fmt.Errorf("%s:%d: unknown key %q", path, lineNo, key))
		}
		if perr != nil {
			return fc, newEngineError(ErrInvalidConfig, fmt.Errorf("%s:%d: %w", path, lineNo, perr))
		}
	}
	if err := scanner.Err(); err != nil {
		return fc, newEngineError(ErrInvalidConfig, err)
	}
	return fc, nil
}
