// morse.go - JJY's "JJY" Morse callsign overlay, transmitted during minutes
// 15 and 45 from tick 811 (40.550s) through tick 980 (49.000s).
//

package main

var jjyMorseTable = map[byte]string{
	'J': ".---",
	'Y': "-.--",
}

const (
	morseDitTicks      = 2
	morseDahTicks      = 5
	morseElementGap    = 1
	morseCharacterGap  = 6
	morseWordGap       = 10
	jjyCallsignStart   = 40*TicksPerSecond + 550/50 // tick 811
	jjyCallsignEnd     = 49 * TicksPerSecond         // tick 980, exclusive
)

// morseTicks renders one word of the callsign as a sequence of high(1)/low(0)
// tick flags using high-first keying.
func morseTicks(word string) []int {
	var out []int
	for ci := 0; ci < len(word); ci++ {
		code := jjyMorseTable[word[ci]]
		for ei := 0; ei < len(code); ei++ {
			n := morseDitTicks
			if code[ei] == '-' {
				n = morseDahTicks
			}
			for i := 0; i < n; i++ {
				out = append(out, 1)
			}
			if ei != len(code)-1 {
				for i := 0; i < morseElementGap; i++ {
					out = append(out, 0)
				}
			}
		}
		if ci != len(word)-1 {
			for i := 0; i < morseCharacterGap; i++ {
				out = append(out, 0)
			}
		}
	}
	return out
}

// jjyCallsignPattern renders the "JJY" callsign twice, separated by an
// inter-word gap.
func jjyCallsignPattern() []int {
	first := morseTicks("JJY")
	pattern := make([]int, 0, 2*len(first)+morseWordGap)
	pattern = append(pattern, first...)
	for i := 0; i < morseWordGap; i++ {
		pattern = append(pattern, 0)
	}
	pattern = append(pattern, morseTicks("JJY")...)
	return pattern
}

// applyJJYMorse overlays the callsign pattern onto the tick map starting at
// jjyCallsignStart, clipped to jjyCallsignEnd.
func applyJJYMorse(t *TickMap) {
	pattern := jjyCallsignPattern()
	for i, v := range pattern {
		tick := jjyCallsignStart + i
		if tick >= jjyCallsignEnd {
			break
		}
		t.Set(tick, v == 1)
	}
}

// isJJYMorseMinute reports whether minute (0-59) is a callsign minute.
func isJJYMorseMinute(minute int) bool {
	return minute == 15 || minute == 45
}

// isJJYMorseTick reports whether tick falls inside the callsign window,
// used by the engine to silence the ordinary low-gain tone (JJY's "low" is
// not a steady gain like BPC's; during the callsign window the non-marked
// ticks are plain silence during the callsign window).
func isJJYMorseTick(tick int) bool {
	return tick >= jjyCallsignStart && tick < jjyCallsignEnd
}
