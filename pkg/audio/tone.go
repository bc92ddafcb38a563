package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a single oscillator sweeping linearly from one frequency to
// another while its volume decays to zero.
type tone struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate

	phase    float64
	position int
	duration int
}

// NewTone returns a decaying tone of length d sweeping from one frequency to another.
func NewTone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{from: from, to: to, wave: wave, rate: rate, duration: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.duration {
		return 0, false
	}

	for i := range samples {
		if t.position >= t.duration {
			return i, true
		}

		progress := float64(t.position) / float64(t.duration)
		freq := t.from + (t.to-t.from)*progress

		var val float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}

	return len(samples), true
}

func (t *tone) Err() error { return nil }
