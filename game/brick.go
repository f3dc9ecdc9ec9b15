// File: game/brick.go
package game

import (
	"fmt"

	"github.com/lguibr/brickbreaker/utils"
)

const (
	MaxBrickColor = 5
	TiersPerColor = 4
	// LockedBrickSprite follows the coloured bricks on the sheet.
	LockedBrickSprite = MaxBrickColor * TiersPerColor

	hitFlashDuration = 0.2
)

type Brick struct {
	Position    utils.Vector2 `json:"position"`
	Width       float64       `json:"width"`
	Height      float64       `json:"height"`
	Tier        int           `json:"tier"`
	HighestTier int           `json:"highestTier"`
	Color       int           `json:"color"`
	IsLocked    bool          `json:"isLocked"`
	InPlay      bool          `json:"inPlay"`

	flash float64
}

// NewBrick creates an in-play brick. HighestTier is the tier it starts with.
func NewBrick(x, y, width, height float64, tier, color int, locked bool) *Brick {
	return &Brick{
		Position:    utils.NewVector2(x, y),
		Width:       width,
		Height:      height,
		Tier:        tier,
		HighestTier: tier,
		Color:       color,
		IsLocked:    locked,
		InPlay:      true,
	}
}

func (b *Brick) Bounds() (x, y, width, height float64) {
	return b.Position.X, b.Position.Y, b.Width, b.Height
}

func (b *Brick) DidCollide(target Box) bool {
	tx, ty, tw, th := target.Bounds()
	return utils.Overlaps(b.Position.X, b.Position.Y, b.Width, b.Height, tx, ty, tw, th)
}

func (b *Brick) String() string {
	return fmt.Sprintf("Brick{pos=(%.0f,%.0f) tier=%d color=%d locked=%t inPlay=%t}",
		b.Position.X, b.Position.Y, b.Tier, b.Color, b.IsLocked, b.InPlay)
}

// Hit applies one ball impact. A locked brick only breaks when the caller has
// already spent a key on it; an unlocked brick loses a tier and leaves play
// once the tier drops below zero.
func (b *Brick) Hit(hasKey bool) {
	if !b.InPlay {
		return
	}
	b.flash = hitFlashDuration

	if b.IsLocked {
		if hasKey {
			b.InPlay = false
		}
		return
	}

	b.Tier--
	if b.Tier < 0 {
		b.InPlay = false
	}
}

func (b *Brick) Update(dt float64) {
	if b.flash > 0 {
		b.flash -= dt
		if b.flash < 0 {
			b.flash = 0
		}
	}
}

func (b *Brick) Flashing() bool { return b.flash > 0 }

func (b *Brick) SpriteIndex() int {
	if b.IsLocked {
		return LockedBrickSprite
	}
	color := utils.ClampInt(b.Color, 1, MaxBrickColor)
	tier := utils.ClampInt(b.Tier, 0, TiersPerColor-1)
	return (color-1)*TiersPerColor + tier
}

// AllCleared reports whether no brick is left in play.
func AllCleared(bricks []*Brick) bool {
	for _, b := range bricks {
		if b.InPlay {
			return false
		}
	}
	return true
}
