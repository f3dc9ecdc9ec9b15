package game

import (
	"testing"

	"github.com/lguibr/brickbreaker/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProceduralLevels_Layout(t *testing.T) {
	cfg := utils.DefaultConfig()
	levels := NewProceduralLevels(cfg, utils.NewRandomSource(42))

	for level := 1; level <= 20; level++ {
		bricks := levels.CreateMap(level)
		require.NotEmpty(t, bricks, "level %d", level)

		maxTier := min(cfg.MaxBrickTier, level/5)
		unlocked := 0
		for _, b := range bricks {
			assert.True(t, b.InPlay)
			assert.GreaterOrEqual(t, b.Position.X, 0.0)
			assert.LessOrEqual(t, b.Position.X+b.Width, cfg.CanvasWidth)
			assert.Less(t, b.Position.Y+b.Height, cfg.CanvasHeight/2)
			assert.GreaterOrEqual(t, b.Tier, 0)
			assert.LessOrEqual(t, b.Tier, maxTier, "level %d", level)
			assert.Equal(t, b.Tier, b.HighestTier)
			assert.GreaterOrEqual(t, b.Color, 1)
			assert.LessOrEqual(t, b.Color, MaxBrickColor)
			if !b.IsLocked {
				unlocked++
			}
		}
		assert.Positive(t, unlocked, "level %d must be clearable", level)
	}
}

func TestProceduralLevels_Deterministic(t *testing.T) {
	cfg := utils.DefaultConfig()
	a := NewProceduralLevels(cfg, utils.NewRandomSource(9)).CreateMap(3)
	b := NewProceduralLevels(cfg, utils.NewRandomSource(9)).CreateMap(3)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, *a[i], *b[i])
	}
}

func TestProceduralLevels_AllLockedFallsBack(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.LockedChance = 1
	bricks := NewProceduralLevels(cfg, utils.NewRandomSource(3)).CreateMap(1)

	require.NotEmpty(t, bricks)
	assert.False(t, bricks[0].IsLocked)
}

func TestProceduralLevels_NoOverlaps(t *testing.T) {
	cfg := utils.DefaultConfig()
	bricks := NewProceduralLevels(cfg, utils.NewRandomSource(5)).CreateMap(8)

	for i := range bricks {
		for j := i + 1; j < len(bricks); j++ {
			a, b := bricks[i], bricks[j]
			sameCell := a.Position == b.Position
			assert.False(t, sameCell, "bricks %d and %d share a cell", i, j)
		}
	}
}
