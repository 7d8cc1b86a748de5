// Package audio synthesizes and plays the game's sound effects.
package audio

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator wave shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
	WaveNoise
)

func (w Wave) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	case WaveNoise:
		return "noise"
	default:
		return fmt.Sprintf("wave(%d)", int(w))
	}
}

// ParseWave parses a wave name. The empty string means sine.
func ParseWave(s string) (Wave, error) {
	switch s {
	case "", "sine":
		return WaveSine, nil
	case "square":
		return WaveSquare, nil
	case "sawtooth", "saw":
		return WaveSawtooth, nil
	case "triangle":
		return WaveTriangle, nil
	case "noise":
		return WaveNoise, nil
	default:
		return WaveSine, fmt.Errorf("unknown wave %q", s)
	}
}

// sample returns the wave value at phase p in [0, 1).
func (w Wave) sample(p float64, rng *rand.Rand) float64 {
	switch w {
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveSawtooth:
		return 2*p - 1
	case WaveTriangle:
		return 1 - 4*math.Abs(p-0.5)
	case WaveNoise:
		return rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// tone is a fixed-length oscillator.
type tone struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewTone returns a streamer producing freq Hz for d.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		rng:    rand.New(rand.NewPCG(uint64(freq), uint64(d))), //#nosec G115 -- seed only
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}
		v := t.wave.sample(t.phase, t.rng)
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a stream in and out linearly to avoid clicks.
type envelope struct {
	streamer beep.Streamer
	position int
	total    int
	ramp     int
}

func newEnvelope(s beep.Streamer, d, ramp time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	r := min(rate.N(ramp), total/2)
	return &envelope{streamer: s, total: total, ramp: r}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.ramp > 0 {
			switch {
			case e.position < e.ramp:
				gain = float64(e.position) / float64(e.ramp)
			case e.position >= e.total-e.ramp:
				gain = float64(max(e.total-e.position, 0)) / float64(e.ramp)
			}
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s by a linear volume in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
