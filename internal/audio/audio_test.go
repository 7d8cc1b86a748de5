package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KilakOriginal/breakout/internal/breakout"
	"github.com/KilakOriginal/breakout/internal/config"
)

const testRate = beep.SampleRate(8000)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
		require.Less(t, len(out), 10*int(testRate), "streamer never ended")
	}
	require.NoError(t, s.Err())
	return out
}

func TestToneLengthAndRange(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSawtooth, WaveTriangle, WaveNoise} {
		t.Run(w.String(), func(t *testing.T) {
			samples := drain(t, NewTone(440, 100*time.Millisecond, w, testRate))
			assert.Len(t, samples, testRate.N(100*time.Millisecond))
			for i, s := range samples {
				assert.InDelta(t, 0, s[0], 1.0+1e-9, "sample %d", i)
				assert.Equal(t, s[0], s[1], "channels differ at %d", i)
			}
		})
	}
}

func TestSquareWaveValues(t *testing.T) {
	samples := drain(t, NewTone(220, 50*time.Millisecond, WaveSquare, testRate))
	for _, s := range samples {
		assert.Contains(t, []float64{-1, 1}, s[0])
	}
}

func TestParseWave(t *testing.T) {
	w, err := ParseWave("triangle")
	require.NoError(t, err)
	assert.Equal(t, WaveTriangle, w)

	w, err = ParseWave("")
	require.NoError(t, err)
	assert.Equal(t, WaveSine, w)

	_, err = ParseWave("kazoo")
	assert.Error(t, err)
}

func TestBankSounds(t *testing.T) {
	bank := Bank{Rate: testRate, Wave: WaveSine, Volume: 1}

	assert.Nil(t, bank.Sound(breakout.EventContinue))

	hit := drain(t, bank.Sound(breakout.EventBlockHit))
	assert.Len(t, hit, testRate.N(100*time.Millisecond))

	over := drain(t, bank.Sound(breakout.EventGameOver))
	assert.Len(t, over, testRate.N(500*time.Millisecond))
	for _, s := range over {
		assert.LessOrEqual(t, s[0], 1.0+1e-9)
		assert.GreaterOrEqual(t, s[0], -1.0-1e-9)
	}

	assert.Len(t, Notes(breakout.EventLevelClear), 3)
	assert.Equal(t, 500.0, Notes(breakout.EventPaddleHit)[0].Freq)
}

func TestBankSilentVolume(t *testing.T) {
	bank := Bank{Rate: testRate, Wave: WaveSquare, Volume: 0}
	for _, s := range drain(t, bank.Sound(breakout.EventPaddleHit)) {
		assert.Equal(t, 0.0, s[0])
	}
}

func TestNewDisabledIsNop(t *testing.T) {
	p, err := New(config.AudioConfig{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, &Nop{}, p)

	p.SetMuted(true)
	assert.True(t, p.Muted())
	p.Play(breakout.EventBlockHit)
	assert.NoError(t, p.Close())
}
