package game

import "fmt"

// VictoryState waits on a cleared level until the player moves on to the
// next one.
type VictoryState struct {
	machine *StateMachine

	paddle *Paddle
	balls  []*Ball
	health int
	score  int
	level  int
	keys   int
	ui     *UserInterface
}

func (s *VictoryState) Enter(handoff SessionHandoff) {
	h := expectHandoff[VictoryHandoff](StateVictory, handoff)
	s.paddle = h.Paddle
	s.balls = h.Balls
	s.health = h.Health
	s.score = h.Score
	s.level = h.Level
	s.keys = h.Keys
	s.ui = h.UI
	s.balls[0].TrackPaddle(s.paddle)
}

func (s *VictoryState) Exit() {
	*s = VictoryState{machine: s.machine}
}

func (s *VictoryState) Update(dt float64) {
	ctx := s.machine.ctx
	in := ctx.Input
	in.ConsumePause()

	s.paddle.Update(dt, in)
	s.balls[0].TrackPaddle(s.paddle)

	if in.ConsumeConfirm() {
		next := s.level + 1
		s.ui.Update(s.health, s.score, next, s.keys)
		ctx.Audio.Play(CueConfirm)
		s.machine.Change(ServeHandoff{
			Paddle: s.paddle,
			Balls:  s.balls,
			Bricks: ctx.Levels.CreateMap(next),
			Health: s.health,
			Score:  s.score,
			Level:  next,
			Keys:   s.keys,
			UI:     s.ui,
		})
	}
}

func (s *VictoryState) Render(r Renderer) {
	s.ui.Render(r)
	drawPaddle(r, s.paddle)
	drawBalls(r, s.balls[:1])
	drawBanner(r, s.machine.ctx, fmt.Sprintf("Level %d complete!", s.level), "Press Enter to continue")
}
