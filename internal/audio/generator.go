package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// SweepGenerator plays a tone whose frequency slides linearly from one value
// to another over a fixed duration, with a short fade in and out. A constant
// tone is a sweep with equal endpoints.
type SweepGenerator struct {
	sr      beep.SampleRate
	from    float64
	to      float64
	wave    Wave
	amp     float64
	samples int
	pos     int
	phase   float64
}

// NewSweepGenerator creates a sweep from one frequency to another.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration, wave Wave, amp float64) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		wave:    wave,
		amp:     amp,
		samples: sr.N(d),
	}
}

// Stream implements beep.Streamer.
func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		var v float64
		switch g.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * g.phase)
		case WaveSquare:
			v = 1
			if g.phase >= 0.5 {
				v = -1
			}
		}
		sample := g.amp * v * g.envelope()

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (g *SweepGenerator) Err() error {
	return nil
}

// envelope fades the first and last 5ms to avoid clicks.
func (g *SweepGenerator) envelope() float64 {
	edge := g.sr.N(5 * time.Millisecond)
	if edge <= 0 {
		return 1
	}
	env := 1.0
	if g.pos < edge {
		env = float64(g.pos) / float64(edge)
	}
	if left := g.samples - g.pos; left < edge {
		env = math.Min(env, float64(left)/float64(edge))
	}
	return env
}
