// File: game/game_over_state.go
package game

import "fmt"

// GameOverState shows the final score. Confirming ends the session.
type GameOverState struct {
	machine *StateMachine
	score   int
}

func (s *GameOverState) Enter(handoff SessionHandoff) {
	h := expectHandoff[GameOverHandoff](StateGameOver, handoff)
	s.score = h.Score
}

func (s *GameOverState) Exit() {}

func (s *GameOverState) Update(float64) {
	in := s.machine.ctx.Input
	in.ConsumePause()
	if in.ConsumeConfirm() {
		s.machine.ctx.Audio.Play(CueConfirm)
		s.machine.Finish(s.score)
	}
}

func (s *GameOverState) Render(r Renderer) {
	drawBanner(r, s.machine.ctx, "GAME OVER", fmt.Sprintf("Final Score: %d", s.score))
	cfg := s.machine.ctx.Config
	r.DrawText("Press Enter to quit", cfg.CanvasWidth/2, cfg.CanvasHeight/2+cfg.TileSize*2, AlignCenter)
}

func (s *GameOverState) Score() int { return s.score }
