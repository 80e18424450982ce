// Package audio plays short tones for simulation events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/pong/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// tone describes the blip played for one event type.
type tone struct {
	freq     float64
	duration time.Duration
	volume   float64 // Linear gain, 1 = unchanged
}

var tones = map[game.EventType]tone{
	game.EventPaddleHit:  {freq: 880, duration: 50 * time.Millisecond, volume: 0.6},
	game.EventWallBounce: {freq: 440, duration: 40 * time.Millisecond, volume: 0.4},
	game.EventScore:      {freq: 220, duration: 250 * time.Millisecond, volume: 0.7},
}

// SoundManager maps game events to tones and mixes them onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager. Nothing is played until Initialize succeeds.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Failure is expected on headless hosts; the game
// runs silently in that case.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything queued on the mixer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Handle plays the tone for ev. Safe to pass as a game event handler.
func (sm *SoundManager) Handle(ev game.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := effect(ev)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// effect builds the streamer for ev, or nil for events without a sound.
func effect(ev game.Event) beep.Streamer {
	t, ok := tones[ev.Type]
	if !ok {
		return nil
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil
	}
	return newVolume(beep.Take(sampleRate.N(t.duration), sine), t.volume)
}

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf, so 0 means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
