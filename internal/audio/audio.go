// Package audio plays the collision sound on the local audio device.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Sound is played once per collision.
type Sound interface {
	PlayCollision()
}

// Nop is a silent Sound.
type Nop struct{}

// PlayCollision does nothing.
func (Nop) PlayCollision() {}

// speaker.Init may only succeed once per process.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// Beeper plays a short sine tone per collision. Tones never overlap: a
// collision arriving while the previous tone still sounds is dropped, so a
// resting actor does not turn into a continuous buzz.
type Beeper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	toneHz      float64
	duration    time.Duration
	lastPlay    time.Time
	now         func() time.Time
	initialized bool
}

// NewBeeper creates a beeper for the given tone. Call Init before use.
func NewBeeper(toneHz float64, duration time.Duration) *Beeper {
	return &Beeper{
		mixer:    &beep.Mixer{},
		toneHz:   toneHz,
		duration: duration,
		now:      time.Now,
	}
}

// Init opens the audio device and starts the mixer. It is safe to call more
// than once.
func (b *Beeper) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if speakerErr != nil {
		return fmt.Errorf("audio: init speaker: %w", speakerErr)
	}

	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// PlayCollision queues one tone. It does nothing before Init.
func (b *Beeper) PlayCollision() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || !b.accept(b.now()) {
		return
	}

	tone, err := b.tone()
	if err != nil {
		return
	}
	speaker.Lock()
	b.mixer.Add(tone)
	speaker.Unlock()
}

// accept reports whether a tone may start at now and records it if so.
func (b *Beeper) accept(now time.Time) bool {
	if !b.lastPlay.IsZero() && now.Sub(b.lastPlay) < b.duration {
		return false
	}
	b.lastPlay = now
	return true
}

// tone builds a fresh streamer for one beep.
func (b *Beeper) tone() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, b.toneHz)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %gHz: %w", b.toneHz, err)
	}
	return beep.Take(sampleRate.N(b.duration), sine), nil
}

// Close silences any queued tones. The device itself stays open because
// beep cannot reopen it.
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}
