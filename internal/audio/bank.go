package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/KilakOriginal/breakout/internal/breakout"
)

// Note is one tone of a sound effect.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// effectNotes maps events to the tones played together when they occur.
var effectNotes = map[breakout.Event][]Note{
	breakout.EventBlockHit:  {{1000, 100 * time.Millisecond}},
	breakout.EventPaddleHit: {{500, 100 * time.Millisecond}},
	breakout.EventGameOver: {
		{200, 500 * time.Millisecond},
		{150, 500 * time.Millisecond},
		{100, 500 * time.Millisecond},
	},
	breakout.EventLevelClear: {
		{800, 500 * time.Millisecond},
		{5600, 500 * time.Millisecond},
		{10200, 500 * time.Millisecond},
	},
}

// Notes returns the tones for ev, or nil for silent events.
func Notes(ev breakout.Event) []Note {
	return effectNotes[ev]
}

const rampTime = 5 * time.Millisecond

// Bank builds sound effect streamers.
type Bank struct {
	Rate   beep.SampleRate
	Wave   Wave
	Volume float64
}

// Sound returns a fresh streamer for ev, or nil when ev has no sound.
// Chords are mixed and scaled so that they do not clip.
func (b Bank) Sound(ev breakout.Event) beep.Streamer {
	notes := Notes(ev)
	if len(notes) == 0 {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	var longest time.Duration
	for _, n := range notes {
		osc := NewTone(n.Freq, n.Duration, b.Wave, b.Rate)
		parts = append(parts, newEnvelope(osc, n.Duration, rampTime, b.Rate))
		longest = max(longest, n.Duration)
	}

	var s beep.Streamer
	if len(parts) == 1 {
		s = parts[0]
	} else {
		s = beep.Take(b.Rate.N(longest), beep.Mix(parts...))
	}
	return withVolume(s, b.Volume/float64(len(parts)))
}
