// File: game/paddle.go
package game

import (
	"fmt"

	"github.com/lguibr/brickbreaker/input"
	"github.com/lguibr/brickbreaker/utils"
)

const (
	MinPaddleSize  = 0
	MaxPaddleSize  = 3
	PaddlesPerSkin = 4
	PaddleSkins    = 4
)

type Paddle struct {
	Position       utils.Vector2 `json:"position"`
	DX             float64       `json:"dx"`
	Width          float64       `json:"width"`
	Height         float64       `json:"height"`
	Size           int           `json:"size"`
	PointThreshold int           `json:"pointThreshold"`
	LifeThreshold  int           `json:"lifeThreshold"`
	Skin           int           `json:"skin"`

	speed       float64
	baseWidth   float64
	sizeUnit    float64
	canvasWidth float64
}

// NewPaddle creates the paddle centred near the bottom of the playfield. The
// life threshold starts at the starting health so the first lost heart shrinks
// it.
func NewPaddle(cfg utils.Config) *Paddle {
	p := &Paddle{
		Height:        cfg.TileSize,
		Skin:          cfg.PaddleSkin,
		LifeThreshold: cfg.StartingHealth,
		speed:         cfg.PaddleSpeed,
		baseWidth:     cfg.PaddleBaseWidth(),
		sizeUnit:      cfg.PaddleSizeUnit(),
		canvasWidth:   cfg.CanvasWidth,
	}
	p.setSize(cfg.PaddleStartSize)
	p.Position = utils.NewVector2(cfg.CanvasWidth/2-p.Width/2, cfg.CanvasHeight-cfg.TileSize*2)
	return p
}

func (p *Paddle) Bounds() (x, y, width, height float64) {
	return p.Position.X, p.Position.Y, p.Width, p.Height
}

func (p *Paddle) String() string {
	return fmt.Sprintf("Paddle{x=%.1f size=%d width=%.0f}", p.Position.X, p.Size, p.Width)
}

// Update steers the paddle from the held keys and keeps it on the playfield.
func (p *Paddle) Update(dt float64, in *input.State) {
	switch {
	case in.Left && !in.Right:
		p.DX = -p.speed
	case in.Right && !in.Left:
		p.DX = p.speed
	default:
		p.DX = 0
	}

	p.Position.X = utils.Clamp(p.Position.X+p.DX*dt, 0, p.canvasWidth-p.Width)
}

// ChangeSize sets the size tier, clamped to [MinPaddleSize, MaxPaddleSize],
// and records the thresholds the next size change is measured against.
func (p *Paddle) ChangeSize(newSize, pointThreshold, lifeThreshold int) {
	p.setSize(newSize)
	p.PointThreshold = pointThreshold
	p.LifeThreshold = lifeThreshold
}

func (p *Paddle) setSize(size int) {
	p.Size = utils.ClampInt(size, MinPaddleSize, MaxPaddleSize)
	p.Width = p.baseWidth + float64(p.Size)*p.sizeUnit
}

func (p *Paddle) SpriteIndex() int {
	return p.Size + PaddlesPerSkin*p.Skin
}

func (p *Paddle) CenterX() float64 {
	return p.Position.X + p.Width/2
}
