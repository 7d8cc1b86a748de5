package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/KilakOriginal/breakout/internal/breakout"
	"github.com/KilakOriginal/breakout/internal/config"
)

// Player reacts to simulation events with sound.
type Player interface {
	Play(ev breakout.Event)
	SetMuted(muted bool)
	Muted() bool
	Close() error
}

// Nop is a silent Player.
type Nop struct {
	mu    sync.Mutex
	muted bool
}

func (n *Nop) Play(breakout.Event) {}

func (n *Nop) SetMuted(muted bool) {
	n.mu.Lock()
	n.muted = muted
	n.mu.Unlock()
}

func (n *Nop) Muted() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.muted
}

func (n *Nop) Close() error { return nil }

// SpeakerPlayer plays effects through the system audio device.
// The speaker is process-global, so only one SpeakerPlayer should exist.
type SpeakerPlayer struct {
	bank  Bank
	mixer *beep.Mixer

	mu     sync.Mutex
	muted  bool
	closed bool
}

// NewSpeakerPlayer initializes the audio device and starts the mixer.
func NewSpeakerPlayer(cfg config.AudioConfig) (*SpeakerPlayer, error) {
	wave, err := ParseWave(cfg.Wave)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	rate := beep.SampleRate(cfg.SampleRate)

	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}

	p := &SpeakerPlayer{
		bank:  Bank{Rate: rate, Wave: wave, Volume: cfg.Volume},
		mixer: &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues the effect for ev, if any.
func (p *SpeakerPlayer) Play(ev breakout.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted || p.closed {
		return
	}

	s := p.bank.Sound(ev)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *SpeakerPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

func (p *SpeakerPlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close stops all sounds and releases the device.
func (p *SpeakerPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}

// New returns a SpeakerPlayer when audio is enabled, and a silent player
// otherwise or when the device cannot be opened. The error reports why
// audio is unavailable; the returned Player is always usable.
func New(cfg config.AudioConfig) (Player, error) {
	if !cfg.Enabled {
		return &Nop{}, nil
	}
	p, err := NewSpeakerPlayer(cfg)
	if err != nil {
		return &Nop{}, err
	}
	return p, nil
}
