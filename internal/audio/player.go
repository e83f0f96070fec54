// Package audio synthesizes the game's sound cues with beep. Every cue is
// generated on the fly; there are no sample files.
package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-jumper/internal/jumper"
)

const sampleRate = beep.SampleRate(48000)

// Player plays jumper sound cues through the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player. Volume is linear, 1 is full scale.
// Nothing is audible until Init succeeds.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts the cue for id. It never blocks on the speaker.
func (p *Player) Play(id jumper.SoundID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	cue := Cue(id, sampleRate)
	if cue == nil {
		p.logger.Debug("no cue for sound", "id", id)
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(cue, p.volume))
	speaker.Unlock()
}

// Close stops all cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Cue builds the streamer for a sound id, or nil for an unknown id.
func Cue(id jumper.SoundID, sr beep.SampleRate) beep.Streamer {
	switch id {
	case jumper.SoundLand:
		// Short rising blip
		return NewSweepGenerator(sr, 440, 660, 80*time.Millisecond, WaveSine, 0.4)
	case jumper.SoundCollect:
		return beep.Seq(
			NewSweepGenerator(sr, 880, 880, 60*time.Millisecond, WaveSine, 0.35),
			NewSweepGenerator(sr, 1320, 1320, 90*time.Millisecond, WaveSine, 0.35),
		)
	case jumper.SoundHit:
		return NewSweepGenerator(sr, 120, 120, 200*time.Millisecond, WaveSquare, 0.25)
	case jumper.SoundFall:
		return NewSweepGenerator(sr, 600, 150, 400*time.Millisecond, WaveSine, 0.4)
	default:
		return nil
	}
}

// withVolume scales s. Zero or negative volume is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Nop discards every cue. Used when audio is muted or unavailable.
type Nop struct{}

// Play implements jumper.SoundPlayer.
func (Nop) Play(jumper.SoundID) {}
