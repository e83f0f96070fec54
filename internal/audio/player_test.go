package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-jumper/internal/jumper"
)

// drain streams s to the end and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			out = append(out, buf[j][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func TestSweepGeneratorLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	g := NewSweepGenerator(sr, 440, 660, 80*time.Millisecond, WaveSine, 0.4)

	samples := drain(t, g)
	if want := sr.N(80 * time.Millisecond); len(samples) != want {
		t.Errorf("streamed %d samples, expected %d", len(samples), want)
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v", g.Err())
	}

	// Drained generator stays drained
	n, ok := g.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("Stream() after drain = (%d, %v), expected (0, false)", n, ok)
	}
}

func TestSweepGeneratorAmplitudeAndFades(t *testing.T) {
	sr := beep.SampleRate(8000)
	g := NewSweepGenerator(sr, 120, 120, 200*time.Millisecond, WaveSquare, 0.25)

	samples := drain(t, g)
	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s))
	}
	if peak > 0.25+1e-9 {
		t.Errorf("peak amplitude = %v, expected at most 0.25", peak)
	}
	if peak < 0.2 {
		t.Errorf("peak amplitude = %v, square wave should reach near 0.25", peak)
	}
	if samples[0] != 0 {
		t.Errorf("first sample = %v, expected fade-in from 0", samples[0])
	}
}

func TestCueForEverySound(t *testing.T) {
	sr := beep.SampleRate(8000)
	sounds := []jumper.SoundID{jumper.SoundLand, jumper.SoundCollect, jumper.SoundHit, jumper.SoundFall}

	for _, id := range sounds {
		t.Run(id.String(), func(t *testing.T) {
			cue := Cue(id, sr)
			if cue == nil {
				t.Fatal("Cue() returned nil")
			}
			samples := drain(t, cue)
			if len(samples) == 0 {
				t.Fatal("cue produced no samples")
			}
			if len(samples) > sr.N(time.Second) {
				t.Errorf("cue lasts %d samples, expected under a second", len(samples))
			}
		})
	}

	if Cue(jumper.SoundID(99), sr) != nil {
		t.Error("unknown sound should have no cue")
	}
}

func TestPlayerWithoutInitIsSilent(t *testing.T) {
	p := NewPlayer(1, nil)

	// No speaker: every call is a no-op
	p.Play(jumper.SoundLand)
	p.Play(jumper.SoundFall)
	p.Close()

	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before Init", p.mixer.Len())
	}
}

func TestPlayersSatisfySoundPlayer(t *testing.T) {
	var _ jumper.SoundPlayer = NewPlayer(1, nil)
	var _ jumper.SoundPlayer = Nop{}
}
