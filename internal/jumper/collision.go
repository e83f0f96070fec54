package jumper

import "github.com/vovakirdan/tui-jumper/internal/core"

// checkCollisions resolves the player against every other entity in fixed
// precedence: goal, stars, steps, enemies. The goal ends the session before
// anything else is looked at.
func (s *Session) checkCollisions() {
	pb := s.player.Bounds()

	if pb.Overlaps(s.stage.Ufo.Bounds()) {
		s.endGame(CauseGoal)
		return
	}

	s.collectStar(pb)

	// Steps only catch a player that is falling or at rest
	if s.player.Vel[1] <= 0 {
		s.landOnStep(pb)
	}

	for _, e := range s.stage.Enemies {
		if pb.Overlaps(e.Bounds()) {
			s.sound.Play(SoundHit)
			s.endGame(CauseEnemy)
			return
		}
	}
}

// collectStar collects at most one available star per frame.
func (s *Session) collectStar(pb core.Rect) {
	for _, star := range s.stage.Stars {
		if !pb.Overlaps(star.Bounds()) || !star.Collect() {
			continue
		}
		s.score++
		s.sound.Play(SoundCollect)
		if s.score > s.highScore {
			s.highScore = s.score
			s.scores.SetHighScore(s.highScore)
			s.logger.Debug("high score updated", "score", s.highScore)
		}
		return
	}
}

// landOnStep bounces the player off the first step it lands on. The landing
// may start the step vanishing.
func (s *Session) landOnStep(pb core.Rect) {
	for _, step := range s.stage.Steps {
		if step.State == StepVanished {
			continue
		}
		if s.player.Pos[1] <= step.Pos[1] || !pb.Overlaps(step.Bounds()) {
			continue
		}
		s.player.hitStep(s.cfg.Player.JumpVelocity)
		s.sound.Play(SoundLand)
		if s.rnd.Float64() < s.cfg.Step.VanishChance {
			step.Vanish(s.cfg.Step.VanishSeconds)
		}
		return
	}
}

// checkFall ends the session once the player drops half a camera height
// below the highest point reached.
func (s *Session) checkFall() {
	if s.heightSoFar-s.cfg.CameraHalfHeight() > s.player.Pos[1] {
		s.sound.Play(SoundFall)
		s.endGame(CauseFall)
	}
}
