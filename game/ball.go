// File: game/ball.go
package game

import (
	"fmt"
	"math"

	"github.com/lguibr/brickbreaker/utils"
)

// brickEscape keeps a rebounded ball clear of the inclusive overlap test.
const brickEscape = 0.01

type Ball struct {
	Position utils.Vector2 `json:"position"`
	Velocity utils.Vector2 `json:"velocity"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`

	canvasWidth  float64
	canvasHeight float64
}

// NewBall creates a resting ball in the middle of the playfield.
func NewBall(cfg utils.Config) *Ball {
	size := cfg.TileSize
	return NewBallAt(cfg, cfg.CanvasWidth/2-size/2, cfg.CanvasHeight/2-size/2)
}

func NewBallAt(cfg utils.Config, x, y float64) *Ball {
	return &Ball{
		Position:     utils.NewVector2(x, y),
		Width:        cfg.TileSize,
		Height:       cfg.TileSize,
		canvasWidth:  cfg.CanvasWidth,
		canvasHeight: cfg.CanvasHeight,
	}
}

func (b *Ball) Bounds() (x, y, width, height float64) {
	return b.Position.X, b.Position.Y, b.Width, b.Height
}

func (b *Ball) String() string {
	return fmt.Sprintf("Ball{pos=(%.1f,%.1f) vel=(%.1f,%.1f)}", b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y)
}

// DidCollide reports an inclusive AABB overlap with target.
func (b *Ball) DidCollide(target Box) bool {
	tx, ty, tw, th := target.Bounds()
	return utils.Overlaps(b.Position.X, b.Position.Y, b.Width, b.Height, tx, ty, tw, th)
}

// DidFall reports whether the ball has left through the bottom of the playfield.
func (b *Ball) DidFall() bool {
	return b.Position.Y > b.canvasHeight
}

// Update moves the ball and bounces it off the side and top walls. It reports
// whether a wall was hit.
func (b *Ball) Update(dt float64) bool {
	b.Position.Add(b.Velocity, dt)

	hit := false
	if b.Position.X <= 0 {
		b.Position.X = 0
		b.Velocity.X = math.Abs(b.Velocity.X)
		hit = true
	} else if b.Position.X >= b.canvasWidth-b.Width {
		b.Position.X = b.canvasWidth - b.Width
		b.Velocity.X = -math.Abs(b.Velocity.X)
		hit = true
	}
	if b.Position.Y <= 0 {
		b.Position.Y = 0
		b.Velocity.Y = math.Abs(b.Velocity.Y)
		hit = true
	}
	return hit
}

// Launch gives the ball a fresh serve velocity: any horizontal direction,
// always upward.
func (b *Ball) Launch(r utils.RandomSource, cfg utils.Config) {
	b.Velocity.X = utils.GetRandomNumber(r, -cfg.BallServeSpeedX, cfg.BallServeSpeedX)
	b.Velocity.Y = utils.GetRandomNegativeNumber(r, cfg.BallServeSpeedY[0], cfg.BallServeSpeedY[1])
}

// TrackPaddle parks the ball centred on top of the paddle.
func (b *Ball) TrackPaddle(p *Paddle) {
	b.Position.X = p.Position.X + p.Width/2 - b.Width/2
	b.Position.Y = p.Position.Y - b.Height
}

// HandlePaddleCollision sends the ball upward from the paddle's top edge. The
// horizontal speed grows with the distance between the ball and paddle centres.
func (b *Ball) HandlePaddleCollision(p *Paddle, deflection float64) {
	b.Position.Y = p.Position.Y - b.Height
	b.Velocity.Y = -math.Abs(b.Velocity.Y)

	offset := (b.Position.X + b.Width/2) - (p.Position.X + p.Width/2)
	b.Velocity.X = offset * deflection
}

// HandleBrickCollision reflects the ball off the side of the brick it
// penetrated least and moves it just outside that side. Vertical speed grows
// by speedUp while |dy| stays under maxDY.
func (b *Ball) HandleBrickCollision(brick *Brick, speedUp, maxDY float64) {
	ballCenterX := b.Position.X + b.Width/2
	ballCenterY := b.Position.Y + b.Height/2
	brickCenterX := brick.Position.X + brick.Width/2
	brickCenterY := brick.Position.Y + brick.Height/2

	overlapX := math.Min(b.Position.X+b.Width, brick.Position.X+brick.Width) - math.Max(b.Position.X, brick.Position.X)
	overlapY := math.Min(b.Position.Y+b.Height, brick.Position.Y+brick.Height) - math.Max(b.Position.Y, brick.Position.Y)

	if overlapX < overlapY {
		if ballCenterX < brickCenterX {
			b.Position.X = brick.Position.X - b.Width - brickEscape
			b.Velocity.X = -math.Abs(b.Velocity.X)
		} else {
			b.Position.X = brick.Position.X + brick.Width + brickEscape
			b.Velocity.X = math.Abs(b.Velocity.X)
		}
	} else {
		if ballCenterY < brickCenterY {
			b.Position.Y = brick.Position.Y - b.Height - brickEscape
			b.Velocity.Y = -math.Abs(b.Velocity.Y)
		} else {
			b.Position.Y = brick.Position.Y + brick.Height + brickEscape
			b.Velocity.Y = math.Abs(b.Velocity.Y)
		}
	}

	if math.Abs(b.Velocity.Y) < maxDY {
		b.Velocity.Y *= speedUp
	}
}
