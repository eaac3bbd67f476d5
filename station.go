// station.go - Station identifiers and the static per-station parameter table.

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later

Adapted for chronobeacon: generalizes a per-chip constant table style into
the per-station carrier and gain table used by the protocol encoders.
*/

package main

import (
	"fmt"
	"math"
	"strings"
)

// StationId identifies one of the five real time-signal stations this
// program emulates. JJY40 and JJY60 share one protocol encoder but differ
// in carrier frequency.
type StationId int

const (
	BPC StationId = iota
	DCF77
	JJY40
	JJY60
	MSF
	WWVB
)

func (s StationId) String() string {
	switch s {
	case BPC:
		return "BPC"
	case DCF77:
		return "DCF77"
	case JJY40:
		return "JJY40"
	case JJY60:
		return "JJY60"
	case MSF:
		return "MSF"
	case WWVB:
		return "WWVB"
	default:
		return "UNKNOWN"
	}
}

// ParseStationId accepts the CLI's station names, including the JJY40 -> JJY
// alias ("JJY" means JJY40).
func ParseStationId(s string) (StationId, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BPC":
		return BPC, nil
	case "DCF77":
		return DCF77, nil
	case "JJY", "JJY40":
		return JJY40, nil
	case "JJY60":
		return JJY60, nil
	case "MSF":
		return MSF, nil
	case "WWVB":
		return WWVB, nil
	default:
		return 0, fmt.Errorf("unknown station %q", s)
	}
}

// StationInfo holds the static, immutable-after-init properties of a station.
type StationInfo struct {
	UTCOffsetMs int64   // civil offset used when NOT in summer time
	CarrierHz   float64 // real broadcast carrier frequency
	LowGain     float64 // linear amplitude for the "low" keying level
}

func dBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// stationTable is the one-row-per-StationId static carrier/offset/gain table.
var stationTable = map[StationId]StationInfo{
	BPC:   {UTCOffsetMs: 8 * 3600 * 1000, CarrierHz: 68500, LowGain: dBToLinear(-10)},
	DCF77: {UTCOffsetMs: 1 * 3600 * 1000, CarrierHz: 77500, LowGain: dBToLinear(-16.5)},
	JJY40: {UTCOffsetMs: 9 * 3600 * 1000, CarrierHz: 40000, LowGain: dBToLinear(-10)},
	JJY60: {UTCOffsetMs: 9 * 3600 * 1000, CarrierHz: 60000, LowGain: dBToLinear(-10)},
	MSF:   {UTCOffsetMs: 0, CarrierHz: 60000, LowGain: 0},
	WWVB:  {UTCOffsetMs: 0, CarrierHz: 60000, LowGain: dBToLinear(-17)},
}

func (s StationId) Info() StationInfo {
	return stationTable[s]
}

// Subharmonic finds the smallest odd k such that carrier/k <= limit, where
// limit is rate/2 when ultrasound output is requested, else 20000 Hz. It
// returns the synthesized frequency carrier/k.
func Subharmonic(carrierHz float64, rate int, ultrasound bool) (freqHz float64, k int) {
	limit := 20000.0
	if ultrasound {
		limit = float64(rate) / 2
	}
	for k = 1; ; k += 2 {
		f := carrierHz / float64(k)
		if f <= limit {
			return f, k
		}
	}
}
