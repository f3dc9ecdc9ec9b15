// File: game/user_interface.go
package game

import (
	"fmt"

	"github.com/lguibr/brickbreaker/utils"
)

// UserInterface is the HUD projection of the session counters.
type UserInterface struct {
	Health    int `json:"health"`
	Score     int `json:"score"`
	Level     int `json:"level"`
	Keys      int `json:"keys"`
	MaxHealth int `json:"maxHealth"`

	canvasWidth float64
	tileSize    float64
}

func NewUserInterface(cfg utils.Config, health, score, level, keys int) *UserInterface {
	return &UserInterface{
		Health:      health,
		Score:       score,
		Level:       level,
		Keys:        keys,
		MaxHealth:   cfg.StartingHealth,
		canvasWidth: cfg.CanvasWidth,
		tileSize:    cfg.TileSize,
	}
}

func (ui *UserInterface) Update(health, score, level, keys int) {
	ui.Health = health
	ui.Score = score
	ui.Level = level
	ui.Keys = keys
}

func (ui *UserInterface) Render(r Renderer) {
	margin := ui.tileSize / 2
	r.DrawText(fmt.Sprintf("Level %d", ui.Level), margin, margin, AlignLeft)

	if ui.Keys > 0 {
		keyX := margin + ui.tileSize*8
		r.DrawSprite(Sprite{Kind: SpriteKey}, keyX, margin, ui.tileSize, ui.tileSize)
		r.DrawText(fmt.Sprintf("x%d", ui.Keys), keyX+ui.tileSize*1.5, margin, AlignLeft)
	}

	hearts := max(ui.MaxHealth, ui.Health)
	heartX := ui.canvasWidth - ui.tileSize*16 - float64(hearts)*ui.tileSize*1.5
	for i := 0; i < hearts; i++ {
		index := 0
		if i >= ui.Health {
			index = 1
		}
		r.DrawSprite(Sprite{Kind: SpriteHeart, Index: index}, heartX+float64(i)*ui.tileSize*1.5, margin, ui.tileSize, ui.tileSize)
	}

	r.DrawText(fmt.Sprintf("Score: %d", ui.Score), ui.canvasWidth-margin, margin, AlignRight)
}
