// File: game/serve_state.go
package game

import "github.com/lguibr/brickbreaker/utils"

// ServeState parks the ball on the paddle until the player serves it.
type ServeState struct {
	machine *StateMachine

	paddle *Paddle
	balls  []*Ball
	bricks []*Brick
	health int
	score  int
	level  int
	keys   int
	ui     *UserInterface
}

func (s *ServeState) Enter(handoff SessionHandoff) {
	h := expectHandoff[ServeHandoff](StateServe, handoff)
	s.paddle = h.Paddle
	s.balls = h.Balls
	s.bricks = h.Bricks
	s.health = h.Health
	s.score = h.Score
	s.level = h.Level
	s.keys = h.Keys
	s.ui = h.UI
	s.ui.Update(s.health, s.score, s.level, s.keys)
	s.balls[0].Velocity = utils.Vector2{}
	s.balls[0].TrackPaddle(s.paddle)
}

func (s *ServeState) Exit() {
	*s = ServeState{machine: s.machine}
}

func (s *ServeState) Update(dt float64) {
	ctx := s.machine.ctx
	in := ctx.Input
	in.ConsumePause()

	s.paddle.Update(dt, in)
	ball := s.balls[0]
	ball.TrackPaddle(s.paddle)
	for _, b := range s.bricks {
		b.Update(dt)
	}

	if in.ConsumeConfirm() {
		ball.Launch(ctx.Random, ctx.Config)
		ctx.Audio.Play(CueConfirm)
		s.machine.Change(PlayHandoff{
			Paddle: s.paddle,
			Balls:  s.balls,
			Bricks: s.bricks,
			Health: s.health,
			Score:  s.score,
			Level:  s.level,
			Keys:   s.keys,
			UI:     s.ui,
		})
	}
}

func (s *ServeState) Render(r Renderer) {
	s.ui.Render(r)
	drawBricks(r, s.bricks)
	drawPaddle(r, s.paddle)
	drawBalls(r, s.balls[:1])
	drawBanner(r, s.machine.ctx, levelBanner(s.level), "Press Enter to serve!")
}
