package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScreen returns a simulation screen with one cell per playfield unit.
func newScreen(t *testing.T, cfg utils.Config) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(int(cfg.CanvasWidth), int(cfg.CanvasHeight))
	return screen
}

func cellAt(screen tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestTerminal_DrawSprite(t *testing.T) {
	cfg := utils.DefaultConfig()
	screen := newScreen(t, cfg)
	term := NewTerminal(screen, cfg)

	term.Clear()
	term.DrawSprite(game.Sprite{Kind: game.SpriteBall}, 10, 20, 8, 8)
	term.Present()

	assert.Equal(t, '●', cellAt(screen, 10, 20))
	assert.Equal(t, '●', cellAt(screen, 17, 27))
	assert.NotEqual(t, '●', cellAt(screen, 18, 20))
	assert.NotEqual(t, '●', cellAt(screen, 10, 28))
}

func TestTerminal_DrawSpriteClipsToScreen(t *testing.T) {
	cfg := utils.DefaultConfig()
	screen := newScreen(t, cfg)
	term := NewTerminal(screen, cfg)

	assert.NotPanics(t, func() {
		term.DrawSprite(game.Sprite{Kind: game.SpritePaddle}, -20, -20, 40, 40)
		term.DrawSprite(game.Sprite{Kind: game.SpritePaddle}, cfg.CanvasWidth-4, cfg.CanvasHeight-4, 40, 40)
	})
	term.Present()
	assert.Equal(t, '█', cellAt(screen, 0, 0))
	assert.Equal(t, '█', cellAt(screen, int(cfg.CanvasWidth)-1, int(cfg.CanvasHeight)-1))
}

func TestTerminal_TinyBoxGetsOneCell(t *testing.T) {
	cfg := utils.DefaultConfig()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(54, 27)
	term := NewTerminal(screen, cfg)

	term.DrawSprite(game.Sprite{Kind: game.SpritePowerUp}, 0, 0, 1, 1)
	term.Present()
	assert.Equal(t, '+', cellAt(screen, 0, 0))
}

func TestTerminal_DrawTextAlignment(t *testing.T) {
	cfg := utils.DefaultConfig()
	screen := newScreen(t, cfg)
	term := NewTerminal(screen, cfg)

	term.DrawText("abc", 100, 5, game.AlignLeft)
	term.DrawText("abc", 100, 6, game.AlignCenter)
	term.DrawText("abc", 100, 7, game.AlignRight)
	term.DrawText("offscreen", 10, -40, game.AlignLeft)
	term.Present()

	assert.Equal(t, 'a', cellAt(screen, 100, 5))
	assert.Equal(t, 'c', cellAt(screen, 102, 5))
	assert.Equal(t, 'a', cellAt(screen, 99, 6))
	assert.Equal(t, 'c', cellAt(screen, 101, 6))
	assert.Equal(t, 'a', cellAt(screen, 97, 7))
	assert.Equal(t, 'c', cellAt(screen, 99, 7))
}

func TestSpriteCell(t *testing.T) {
	testCases := []struct {
		name   string
		sprite game.Sprite
		glyph  rune
	}{
		{"Ball", game.Sprite{Kind: game.SpriteBall}, '●'},
		{"BrickTier0", game.Sprite{Kind: game.SpriteBrick, Index: 4}, '░'},
		{"BrickTier3", game.Sprite{Kind: game.SpriteBrick, Index: 7}, '█'},
		{"LockedBrick", game.Sprite{Kind: game.SpriteBrick, Index: game.LockedBrickSprite}, '▦'},
		{"FullHeart", game.Sprite{Kind: game.SpriteHeart, Index: 0}, '♥'},
		{"EmptyHeart", game.Sprite{Kind: game.SpriteHeart, Index: 1}, '♡'},
		{"Key", game.Sprite{Kind: game.SpriteKey}, 'k'},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			glyph, _ := spriteCell(tc.sprite)
			assert.Equal(t, tc.glyph, glyph)
		})
	}

	_, plain := spriteCell(game.Sprite{Kind: game.SpriteBrick})
	_, flashing := spriteCell(game.Sprite{Kind: game.SpriteBrick, Highlight: true})
	assert.NotEqual(t, plain, flashing)
}

func TestTerminal_RendersServeFrame(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.Seed = 11
	screen := newScreen(t, cfg)
	term := NewTerminal(screen, cfg)

	machine := game.NewStateMachine(&game.Context{Config: cfg})
	machine.Start()
	machine.Render(term)

	cells, width, _ := screen.GetContents()
	text := make([]rune, 0, width)
	for _, c := range cells[:width*20] {
		if len(c.Runes) > 0 {
			text = append(text, c.Runes[0])
		}
	}
	assert.Contains(t, string(text), "Level 1")
	assert.Contains(t, string(text), "Score: 0")
}
