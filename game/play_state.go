// File: game/play_state.go
package game

import (
	"slices"

	"github.com/lguibr/brickbreaker/utils"
)

// PlayState runs live gameplay: it resolves every collision of the frame,
// spawns and collects power-ups, and decides when the session moves on to
// Victory, Serve or GameOver.
type PlayState struct {
	machine *StateMachine

	paddle      *Paddle
	balls       []*Ball
	bricks      []*Brick
	powerUps    []*PowerUp
	keyPowerUps []*KeyPowerUp
	health      int
	score       int
	level       int
	keys        int
	ui          *UserInterface
	paused      bool
}

func (s *PlayState) Enter(handoff SessionHandoff) {
	h := expectHandoff[PlayHandoff](StatePlay, handoff)
	s.paddle = h.Paddle
	s.balls = h.Balls
	s.bricks = h.Bricks
	s.health = h.Health
	s.score = h.Score
	s.level = h.Level
	s.keys = h.Keys
	s.ui = h.UI
	s.powerUps = nil
	s.keyPowerUps = nil
	s.paused = false
}

func (s *PlayState) Exit() {
	*s = PlayState{machine: s.machine}
}

// Update advances one frame. Each step that hands the session to another
// state ends the frame there, after the paddle has been resized for the
// new score and health.
func (s *PlayState) Update(dt float64) {
	if s.handlePause() {
		return
	}
	s.resolvePaddleHits()
	if s.resolveBrickHits() {
		return
	}
	s.collectPowerUps()
	s.collectKeys()
	if s.removeFallen() {
		s.loseLife()
		return
	}
	s.updatePaddleSize()
	s.integrate(dt)
}

// handlePause reports whether the frame is consumed by the pause gate.
func (s *PlayState) handlePause() bool {
	ctx := s.machine.ctx
	if s.paused {
		if !ctx.Input.ConsumePause() {
			return true
		}
		s.paused = false
		ctx.Audio.Play(CuePause)
		return false
	}
	if ctx.Input.ConsumePause() {
		s.paused = true
		ctx.Audio.Play(CuePause)
		return true
	}
	return false
}

func (s *PlayState) resolvePaddleHits() {
	ctx := s.machine.ctx
	for _, ball := range s.balls {
		// A rising ball is already leaving the paddle, e.g. right after a serve.
		if ball.Velocity.Y < 0 {
			continue
		}
		if ball.DidCollide(s.paddle) {
			ball.HandlePaddleCollision(s.paddle, ctx.Config.PaddleDeflection)
			ctx.Audio.Play(CuePaddleHit)
		}
	}
}

// resolveBrickHits reports whether the level was cleared.
func (s *PlayState) resolveBrickHits() bool {
	ctx := s.machine.ctx
	cfg := ctx.Config

	for _, brick := range s.bricks {
		for _, ball := range s.balls {
			if !brick.InPlay || !ball.DidCollide(brick) {
				continue
			}

			if !brick.IsLocked {
				s.score += cfg.BaseScore * (brick.Tier + 1)
			}
			hasKey := false
			if brick.IsLocked && s.keys > 0 {
				s.keys--
				hasKey = true
			}
			s.ui.Update(s.health, s.score, s.level, s.keys)

			brick.Hit(hasKey)
			ball.HandleBrickCollision(brick, cfg.BallSpeedUp, cfg.BallMaxSpeedUpDY)

			if brick.InPlay {
				ctx.Audio.Play(CueBrickHit)
				continue
			}
			ctx.Audio.Play(CueBrickDestroyed)
			s.spawnCollectibles(brick)

			if AllCleared(s.bricks) {
				s.winLevel()
				return true
			}
		}
	}
	return false
}

func (s *PlayState) spawnCollectibles(brick *Brick) {
	ctx := s.machine.ctx
	cfg := ctx.Config
	x := brick.Position.X + brick.Width/2 - cfg.TileSize
	y := brick.Position.Y

	if utils.GetRandomPositiveNumber(ctx.Random, 0, cfg.SpawnRollRange) > cfg.PowerUpSpawnAbove {
		s.powerUps = append(s.powerUps, NewPowerUp(cfg, ctx.Random, x, y, brick.HighestTier))
	}
	if utils.GetRandomPositiveNumber(ctx.Random, 0, cfg.SpawnRollRange) > cfg.KeyUpSpawnAbove {
		s.keyPowerUps = append(s.keyPowerUps, NewKeyPowerUp(cfg, ctx.Random, x, y))
	}
}

func (s *PlayState) winLevel() {
	ctx := s.machine.ctx
	s.collapse()
	s.updatePaddleSize()
	ctx.Audio.Play(CueVictory)
	ctx.Logger.Printf("level %d cleared, score %d", s.level, s.score)
	s.machine.Change(VictoryHandoff{
		Level:  s.level,
		Paddle: s.paddle,
		Health: s.health,
		Score:  s.score,
		Keys:   s.keys,
		Balls:  s.balls,
		UI:     s.ui,
	})
}

func (s *PlayState) collectPowerUps() {
	ctx := s.machine.ctx
	for i := 0; i < len(s.powerUps); {
		powerUp := s.powerUps[i]
		if !powerUp.DidCollide(s.paddle) {
			i++
			continue
		}
		for range powerUp.BallCount(ctx.Random) {
			ball := NewBallAt(ctx.Config, powerUp.Position.X, powerUp.Position.Y)
			ball.Launch(ctx.Random, ctx.Config)
			s.balls = append(s.balls, ball)
		}
		ctx.Audio.Play(CuePowerUp)
		s.powerUps = slices.Delete(s.powerUps, i, i+1)
	}
}

func (s *PlayState) collectKeys() {
	ctx := s.machine.ctx
	for i := 0; i < len(s.keyPowerUps); {
		if !s.keyPowerUps[i].DidCollide(s.paddle) {
			i++
			continue
		}
		s.keys++
		s.ui.Update(s.health, s.score, s.level, s.keys)
		ctx.Audio.Play(CueKey)
		s.keyPowerUps = slices.Delete(s.keyPowerUps, i, i+1)
	}
}

// removeFallen drops everything that left the bottom of the playfield. It
// reports a lost life when the last ball in play falls.
func (s *PlayState) removeFallen() bool {
	for i := 0; i < len(s.balls); {
		if !s.balls[i].DidFall() {
			i++
			continue
		}
		if len(s.balls) == 1 {
			return true
		}
		s.balls = slices.Delete(s.balls, i, i+1)
	}
	s.powerUps = slices.DeleteFunc(s.powerUps, func(p *PowerUp) bool { return p.DidFall() })
	s.keyPowerUps = slices.DeleteFunc(s.keyPowerUps, func(k *KeyPowerUp) bool { return k.DidFall() })
	return false
}

func (s *PlayState) loseLife() {
	ctx := s.machine.ctx
	s.health--
	s.ui.Update(s.health, s.score, s.level, s.keys)
	ctx.Audio.Play(CueHurt)
	s.collapse()
	s.updatePaddleSize()

	if s.health <= 0 {
		ctx.Logger.Printf("game over at level %d, score %d", s.level, s.score)
		s.machine.Change(GameOverHandoff{Score: s.score})
		return
	}
	ctx.Logger.Printf("life lost, %d left", s.health)
	s.machine.Change(ServeHandoff{
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

// collapse keeps only the first ball and drops every falling collectible.
func (s *PlayState) collapse() {
	s.balls = s.balls[:1]
	s.powerUps = nil
	s.keyPowerUps = nil
}

// updatePaddleSize grows the paddle as the score passes each threshold, then
// shrinks it by one tier when health has dropped below its life threshold.
func (s *PlayState) updatePaddleSize() {
	p := s.paddle
	thresholds := s.machine.ctx.Config.GrowthThresholds
	score, health := s.ui.Score, s.ui.Health

	for size, gap := range thresholds {
		if p.Size == size && score >= p.PointThreshold+gap {
			p.ChangeSize(p.Size+1, score, health)
		}
	}
	if health < p.LifeThreshold {
		p.ChangeSize(p.Size-1, score, health)
	}
}

func (s *PlayState) integrate(dt float64) {
	ctx := s.machine.ctx
	s.paddle.Update(dt, ctx.Input)
	for _, ball := range s.balls {
		if ball.Update(dt) {
			ctx.Audio.Play(CueWallHit)
		}
	}
	for _, brick := range s.bricks {
		brick.Update(dt)
	}
	for _, powerUp := range s.powerUps {
		powerUp.Update(dt)
	}
	for _, key := range s.keyPowerUps {
		key.Update(dt)
	}
}

func (s *PlayState) Render(r Renderer) {
	s.ui.Render(r)
	drawBricks(r, s.bricks)
	drawPaddle(r, s.paddle)
	drawBalls(r, s.balls)
	drawPowerUps(r, s.powerUps, s.keyPowerUps)
	if s.paused {
		drawBanner(r, s.machine.ctx, "PAUSED", "Press P to resume")
	}
}
