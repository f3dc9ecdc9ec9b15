package game

import (
	"math"

	"github.com/lguibr/brickbreaker/utils"
)

// fallingBody is the shared physics of collectibles: launched upward with a
// little drift, then pulled down by gravity.
type fallingBody struct {
	Position     utils.Vector2 `json:"position"`
	Velocity     utils.Vector2 `json:"velocity"`
	Acceleration utils.Vector2 `json:"acceleration"`
	Gravity      utils.Vector2 `json:"gravity"`
	Width        float64       `json:"width"`
	Height       float64       `json:"height"`

	canvasHeight float64
}

func newFallingBody(cfg utils.Config, r utils.RandomSource, x, y float64) fallingBody {
	body := fallingBody{
		Position: utils.NewVector2(x, y),
		Velocity: utils.NewVector2(
			utils.GetRandomNumber(r, -cfg.PowerUpDriftX, cfg.PowerUpDriftX),
			utils.GetRandomNegativeNumber(r, cfg.PowerUpLaunchY[0], cfg.PowerUpLaunchY[1]),
		),
		Gravity:      utils.NewVector2(0, cfg.PowerUpGravity),
		Width:        cfg.TileSize * 2,
		Height:       cfg.TileSize * 2,
		canvasHeight: cfg.CanvasHeight,
	}
	body.ApplyForce(body.Gravity)
	return body
}

func (f *fallingBody) ApplyForce(force utils.Vector2) {
	f.Acceleration.Add(force, 1)
}

// Update integrates with semi-implicit Euler: velocity first, then position.
func (f *fallingBody) Update(dt float64) {
	f.Velocity.Add(f.Acceleration, dt)
	f.Position.Add(f.Velocity, dt)
}

func (f *fallingBody) Bounds() (x, y, width, height float64) {
	return f.Position.X, f.Position.Y, f.Width, f.Height
}

func (f *fallingBody) DidCollide(target Box) bool {
	tx, ty, tw, th := target.Bounds()
	return utils.Overlaps(f.Position.X, f.Position.Y, f.Width, f.Height, tx, ty, tw, th)
}

func (f *fallingBody) DidFall() bool {
	return f.Position.Y > f.canvasHeight
}

// PowerUp releases extra balls on pickup; Tier bounds how many.
type PowerUp struct {
	fallingBody
	Tier int `json:"tier"`
}

func NewPowerUp(cfg utils.Config, r utils.RandomSource, x, y float64, tier int) *PowerUp {
	return &PowerUp{fallingBody: newFallingBody(cfg, r, x, y), Tier: tier}
}

// BallCount rolls how many balls the pickup releases, in [1, Tier+1].
func (p *PowerUp) BallCount(r utils.RandomSource) int {
	n := int(math.Round(utils.GetRandomPositiveNumber(r, 1, float64(p.Tier+1))))
	return utils.ClampInt(n, 1, p.Tier+1)
}

// KeyPowerUp grants one key on pickup.
type KeyPowerUp struct {
	fallingBody
}

func NewKeyPowerUp(cfg utils.Config, r utils.RandomSource, x, y float64) *KeyPowerUp {
	return &KeyPowerUp{fallingBody: newFallingBody(cfg, r, x, y)}
}
