// File: game/level_maker.go
package game

import (
	"github.com/lguibr/brickbreaker/utils"
)

const (
	minLevelRows = 1
	maxLevelRows = 5
	minLevelCols = 7
	maxLevelCols = 13
	// Every fifth level unlocks a tier; colours cycle within each band.
	levelsPerTier = 5
	minColors     = 3

	maxLayoutAttempts = 10
)

// ProceduralLevels lays out rows of bricks. Row and column counts are random;
// the highest tier and number of colours grow with the level. Each row picks a
// pattern: solid, alternating between two colour/tier pairs, and optionally
// skipping every other brick.
type ProceduralLevels struct {
	cfg    utils.Config
	random utils.RandomSource
}

func NewProceduralLevels(cfg utils.Config, random utils.RandomSource) *ProceduralLevels {
	return &ProceduralLevels{cfg: cfg, random: random}
}

// CreateMap always returns at least one unlocked brick.
func (l *ProceduralLevels) CreateMap(level int) []*Brick {
	var bricks []*Brick
	for attempt := 0; attempt < maxLayoutAttempts; attempt++ {
		bricks = l.layout(level)
		for _, b := range bricks {
			if !b.IsLocked {
				return bricks
			}
		}
	}
	if len(bricks) == 0 {
		cfg := l.cfg
		x := cfg.CanvasWidth/2 - cfg.BrickWidth/2
		return []*Brick{NewBrick(x, cfg.BrickHeight, cfg.BrickWidth, cfg.BrickHeight, 0, 1, false)}
	}
	bricks[0].IsLocked = false
	return bricks
}

func (l *ProceduralLevels) layout(level int) []*Brick {
	cfg := l.cfg
	r := l.random

	rows := utils.GetRandomPositiveInteger(r, minLevelRows, maxLevelRows)
	cols := utils.GetRandomPositiveInteger(r, minLevelCols, maxLevelCols)
	if cols%2 == 0 {
		cols++
	}
	if fit := int(cfg.CanvasWidth / cfg.BrickWidth); cols > fit {
		cols = fit
	}

	highestTier := min(cfg.MaxBrickTier, level/levelsPerTier)
	highestColor := min(MaxBrickColor, level%levelsPerTier+minColors)
	margin := (cfg.CanvasWidth - float64(cols)*cfg.BrickWidth) / 2

	bricks := make([]*Brick, 0, rows*cols)
	for row := 0; row < rows; row++ {
		skipPattern := r.Float64() < 0.5
		alternatePattern := r.Float64() < 0.5
		skipFlag := r.Float64() < 0.5
		alternateFlag := r.Float64() < 0.5

		color1 := utils.GetRandomPositiveInteger(r, 1, highestColor)
		color2 := utils.GetRandomPositiveInteger(r, 1, highestColor)
		tier1 := utils.GetRandomPositiveInteger(r, 0, highestTier)
		tier2 := utils.GetRandomPositiveInteger(r, 0, highestTier)
		solidColor := utils.GetRandomPositiveInteger(r, 1, highestColor)
		solidTier := utils.GetRandomPositiveInteger(r, 0, highestTier)

		for col := 0; col < cols; col++ {
			if skipPattern {
				skip := skipFlag
				skipFlag = !skipFlag
				if skip {
					continue
				}
			}

			color, tier := solidColor, solidTier
			if alternatePattern {
				if alternateFlag {
					color, tier = color1, tier1
				} else {
					color, tier = color2, tier2
				}
				alternateFlag = !alternateFlag
			}

			locked := r.Float64() < cfg.LockedChance
			x := margin + float64(col)*cfg.BrickWidth
			y := float64(row+1) * cfg.BrickHeight
			bricks = append(bricks, NewBrick(x, y, cfg.BrickWidth, cfg.BrickHeight, tier, color, locked))
		}
	}
	return bricks
}
