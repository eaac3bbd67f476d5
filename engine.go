// engine.go - The station engine: owns the per-minute tick map, the carrier
// oscillator, and the per-sample audio callback.

package main

import "math"

// StationState is the mutable runtime state for one synthesized station. It
// is rebuilt once at startup from a Config and then driven exclusively by
// NextSample.
type StationState struct {
	id StationId

	rate       int
	freqHz     float64
	k          int
	ultrasound bool
	dut1Tenths int // DUT1 in 0.1s units, -8..8
	smooth     bool // exponential gain lerp across keying-level changes

	tickMap TickMap
	osc     Oscillator

	// nextTimestamp is the UTC ms at which the CURRENT minute's tick map
	// becomes invalid and a new minute must be encoded. Zero means "never
	// encoded yet" (forces an immediate resync).
	nextTimestamp int64
	tick          int // 0..TicksPerMinute-1, current position within tickMap
	samplesInTick int // samples produced so far within the current tick

	lastGain float64 // current gain, lerped toward targetGain() when smooth
}

const (
	gainLerpRate      = 0.015
	gainLerpThreshold = 0.005
)

// NewStationState builds a station engine for id at the given sample rate,
// choosing the highest-frequency odd subharmonic of the station's carrier
// that stays within the audible (or ultrasound) limit.
func NewStationState(id StationId, rate int, ultrasound bool, dut1Tenths int, smooth bool) *StationState {
	info := id.Info()
	freq, k := Subharmonic(info.CarrierHz, rate, ultrasound)
	return &StationState{
		id:         id,
		rate:       rate,
		freqHz:     freq,
		k:          k,
		ultrasound: ultrasound,
		dut1Tenths: dut1Tenths,
		smooth:     smooth,
	}
}

// encodeMinute dispatches to the station-specific protocol encoder and
// rewrites st.tickMap for the minute containing utcMs.
func (st *StationState) encodeMinute(utcMs int64) {
	switch st.id {
	case BPC:
		encodeBPC(st, utcMs)
	case DCF77:
		encodeDCF77(st, utcMs)
	case JJY40, JJY60:
		encodeJJY(st, utcMs)
	case MSF:
		encodeMSF(st, utcMs)
	case WWVB:
		encodeWWVB(st, utcMs)
	}
}

// samplesPerTick returns the (possibly fractional) number of samples per
// 50ms tick at the engine's sample rate, truncated to an integer; residual
// drift is absorbed by the periodic resync against wall time.
func (st *StationState) samplesPerTick() int {
	return st.rate / TicksPerSecond
}

// resync re-encodes the minute containing nowMs and re-primes the
// oscillator so its phase is exact at the boundary of the NEXT minute, then
// resets the tick cursor to the tick containing nowMs.
func (st *StationState) resync(nowMs int64) {
	minuteStartMs := (nowMs / 60000) * 60000
	st.encodeMinute(minuteStartMs)

	msIntoMinute := nowMs - minuteStartMs
	tick := int(msIntoMinute / 50)
	if tick >= TicksPerMinute {
		tick = TicksPerMinute - 1
	}
	st.tick = tick
	st.samplesInTick = 0

	phaseSamples := int64(msIntoMinute) * int64(st.rate) / 1000
	st.osc.Init(st.freqHz, st.rate, phaseSamples)

	st.nextTimestamp = minuteStartMs + 60000
}

// targetGain returns the linear amplitude the oscillator should ramp toward
// for the current tick, honoring JJY's Morse-callsign silence window.
func (st *StationState) targetGain() float64 {
	high := st.tickMap.Get(st.tick)
	if (st.id == JJY40 || st.id == JJY60) && isJJYMorseTick(st.tick) {
		if high {
			return 1.0
		}
		return 0.0
	}
	if high {
		return 1.0
	}
	return st.id.Info().LowGain
}

// NextSample advances the engine by exactly one audio sample and returns
// the next float64 sample in [-1, 1]. nowMs is the current wall-clock
// estimate in Unix milliseconds, used only to detect when a resync is due.
func (st *StationState) NextSample(nowMs int64) float64 {
	const maxDriftMs = 500

	if st.nextTimestamp == 0 {
		st.resync(nowMs)
	} else if nowMs >= st.nextTimestamp {
		st.resync(nowMs)
	} else if d := nowMs - (st.nextTimestamp - 60000) - int64(st.tick)*50; d > maxDriftMs || d < -maxDriftMs {
		st.resync(nowMs)
	}

	target := st.targetGain()
	var gain float64
	if st.smooth {
		if math.Abs(target-st.lastGain) > gainLerpThreshold {
			gain = 0.985*st.lastGain + gainLerpRate*target
		} else {
			gain = target
		}
	} else {
		gain = target
	}
	st.lastGain = gain

	out := st.osc.Next() * gain

	st.samplesInTick++
	if st.samplesInTick >= st.samplesPerTick() {
		st.samplesInTick = 0
		st.tick++
		if st.tick >= TicksPerMinute {
			st.tick = 0
		}
	}

	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0
	}
	return out
}

// SetRate changes the engine's sample rate, re-deriving the subharmonic
// frequency and forcing a resync on the next sample.
func (st *StationState) SetRate(rate int) {
	st.rate = rate
	st.freqHz, st.k = Subharmonic(st.id.Info().CarrierHz, rate, st.ultrasound)
	st.nextTimestamp = 0
}
