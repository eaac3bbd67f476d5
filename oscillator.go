// oscillator.go - Two-pole recursive sine generator.
//
// A lookup-table oscillator (as used elsewhere for chiptune waveforms)
// can't give the "initial phase in samples" exactness a minute-boundary
// zero-crossing needs, so this component instead uses a libm-free
// degree-13 polynomial evaluator feeding a closed-form IIR recursion.

package main

import "math"

const twoPi = 2 * math.Pi

// polySin approximates sin(x) for x in [-pi, pi] with the degree-13 Taylor
// polynomial. Callers must range-reduce first.
func polySin(x float64) float64 {
	x2 := x * x
	// Horner evaluation of x - x^3/3! + x^5/5! - ... - x^13/13!
	const (
		c3  = -1.0 / 6
		c5  = 1.0 / 120
		c7  = -1.0 / 5040
		c9  = 1.0 / 362880
		c11 = -1.0 / 39916800
		c13 = 1.0 / 6227020800
	)
	p := c13
	p = p*x2 + c11
	p = p*x2 + c9
	p = p*x2 + c7
	p = p*x2 + c5
	p = p*x2 + c3
	p = p*x2 + 1
	return p * x
}

// polyCos approximates cos(x) for x in [-pi, pi] with a matching degree-12
// Taylor polynomial.
func polyCos(x float64) float64 {
	x2 := x * x
	const (
		c2  = -1.0 / 2
		c4  = 1.0 / 24
		c6  = -1.0 / 720
		c8  = 1.0 / 40320
		c10 = -1.0 / 3628800
		c12 = 1.0 / 479001600
	)
	p := c12
	p = p*x2 + c10
	p = p*x2 + c8
	p = p*x2 + c6
	p = p*x2 + c4
	p = p*x2 + c2
	p = p*x2 + 1
	return p
}

// reduceToPi wraps x into [-pi, pi].
func reduceToPi(x float64) float64 {
	x = math.Mod(x, twoPi)
	if x > math.Pi {
		x -= twoPi
	} else if x < -math.Pi {
		x += twoPi
	}
	return x
}

func fastSinRad(x float64) float64 { return polySin(reduceToPi(x)) }
func fastCosRad(x float64) float64 { return polyCos(reduceToPi(x)) }

// Oscillator is a two-pole recursive sine generator: y[n] = a*y[n-1] - y[n-2],
// a = 2*cos(2*pi*freq/rate). It supports an initial phase expressed in
// samples so the waveform can be aligned to a future minute boundary, and it
// resets to its primed state every `period` samples to bound floating-point
// drift.
type Oscillator struct {
	freq   float64
	rate   int
	a      float64
	period int64 // samples per exact repeat, rate/gcd(delta-basis)
	delta  int64 // cycles elapsed per period
	sample int64 // position within the current period

	initY0, initY1 float64
	y0, y1         float64
}

func gcdInt64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// rationalizeRatio finds integers (num, den) with den in (0, maxDen] such
// that num/den closely approximates freq/rate, using the continued-fraction
// convergents of freq/rate. For the rational frequencies this program
// actually synthesizes (carrierHz/k for integer odd k, divided by an integer
// sample rate) this recovers the exact ratio.
func rationalizeRatio(freq float64, rate int, maxDen int64) (num, den int64) {
	x := freq / float64(rate)
	if x == 0 {
		return 0, 1
	}
	neg := x < 0
	if neg {
		x = -x
	}

	// Continued-fraction convergent recurrence.
	var h0, h1 int64 = 1, 0
	var k0, k1 int64 = 0, 1
	frac := x
	for i := 0; i < 64; i++ {
		a := math.Floor(frac)
		ai := int64(a)
		h2 := ai*h0 + h1
		k2 := ai*k0 + k1
		if k2 > maxDen || k2 <= 0 {
			break
		}
		h1, h0 = h0, h2
		k1, k0 = k0, k2
		rem := frac - a
		if rem < 1e-12 {
			break
		}
		frac = 1 / rem
	}
	if k0 == 0 {
		k0 = 1
	}
	num, den = h0, k0
	if neg {
		num = -num
	}
	return
}

// Init reduces freq/rate by their GCD, precomputes the recursion coefficient
// a, and primes y0/y1 so sample index 0 corresponds to phaseSamples (which
// may be negative).
func (o *Oscillator) Init(freqHz float64, rateHz int, phaseSamples int64) {
	o.freq = freqHz
	o.rate = rateHz

	num, den := rationalizeRatio(freqHz, rateHz, int64(rateHz)*1000+1)
	g := gcdInt64(num, den)
	o.delta = num / g
	o.period = den / g
	if o.period <= 0 {
		o.period = 1
	}

	omega := twoPi * freqHz / float64(rateHz)
	o.a = 2 * fastCosRad(omega)

	phasePrime := floorModInt64(phaseSamples, o.period)
	o.initY0 = fastSinRad(twoPi * float64(phasePrime) * float64(o.delta) / float64(o.period))
	o.initY1 = fastSinRad(twoPi * float64(phasePrime+1) * float64(o.delta) / float64(o.period))
	o.y0, o.y1 = o.initY0, o.initY1
	o.sample = 0
}

// Next returns the current sample and advances the recursion, resetting to
// the primed state every `period` samples.
func (o *Oscillator) Next() float64 {
	out := o.y0
	next := o.a*o.y1 - o.y0
	o.y0, o.y1 = o.y1, next
	o.sample++
	if o.sample >= o.period {
		o.sample = 0
		o.y0, o.y1 = o.initY0, o.initY1
	}
	return out
}
