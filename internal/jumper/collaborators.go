package jumper

// Random is the source of all run-to-run variation. *rand.Rand satisfies it;
// tests script it with a fixed sequence.
type Random interface {
	Float64() float64
}

// Renderer draws an entity's current visual state. Concrete entities are
// *Step, *Enemy, *Star, *Ufo and *Player.
type Renderer interface {
	Draw(e Drawable)
}

// SoundID identifies a fire-and-forget audio cue.
type SoundID int

const (
	SoundLand    SoundID = iota // Player bounced off a step or the floor
	SoundCollect                // Star collected
	SoundHit                    // Player touched an enemy
	SoundFall                   // Player fell below the camera margin
)

// String returns a human-readable name for the sound.
func (s SoundID) String() string {
	switch s {
	case SoundLand:
		return "land"
	case SoundCollect:
		return "collect"
	case SoundHit:
		return "hit"
	case SoundFall:
		return "fall"
	default:
		return "unknown"
	}
}

// SoundPlayer plays audio cues.
type SoundPlayer interface {
	Play(id SoundID)
}

// HighScoreStore is durable storage for the best score across sessions.
type HighScoreStore interface {
	HighScore() int
	SetHighScore(score int)
}

// Pointer reports touch or mouse state in the logical control surface
// (origin bottom-left).
type Pointer interface {
	IsDown() bool
	Position() (x, y float64)
	JustPressed() bool
}

// Results receives control once a finished session is acknowledged.
type Results interface {
	ShowResults(score int)
}

type nopRenderer struct{}

func (nopRenderer) Draw(Drawable) {}

type nopSound struct{}

func (nopSound) Play(SoundID) {}

// MemoryHighScore keeps the high score for the lifetime of the process.
type MemoryHighScore struct {
	Score int
}

// HighScore implements HighScoreStore.
func (m *MemoryHighScore) HighScore() int { return m.Score }

// SetHighScore implements HighScoreStore.
func (m *MemoryHighScore) SetHighScore(score int) { m.Score = score }

type idlePointer struct{}

func (idlePointer) IsDown() bool                 { return false }
func (idlePointer) Position() (float64, float64) { return 0, 0 }
func (idlePointer) JustPressed() bool            { return false }

type nopResults struct{}

func (nopResults) ShowResults(int) {}
