// Package render draws the game onto a tcell screen.
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/utils"
)

// Brick glyphs from tier 0 (lightest) to tier 3.
const brickShades = "░▒▓█"

var (
	paddleColors = []tcell.Color{tcell.ColorBlue, tcell.ColorGreen, tcell.ColorRed, tcell.ColorPurple}
	brickColors  = []tcell.Color{tcell.ColorBlue, tcell.ColorGreen, tcell.ColorRed, tcell.ColorPurple, tcell.ColorGold}

	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	ballStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	lockedStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	powerStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	keyStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	heartStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Terminal implements game.Renderer by scaling playfield coordinates onto the
// cells of a tcell screen.
type Terminal struct {
	screen       tcell.Screen
	canvasWidth  float64
	canvasHeight float64
}

func NewTerminal(screen tcell.Screen, cfg utils.Config) *Terminal {
	return &Terminal{
		screen:       screen,
		canvasWidth:  cfg.CanvasWidth,
		canvasHeight: cfg.CanvasHeight,
	}
}

func (t *Terminal) Clear()   { t.screen.Clear() }
func (t *Terminal) Present() { t.screen.Show() }

func (t *Terminal) scale() (sx, sy float64, cols, rows int) {
	cols, rows = t.screen.Size()
	return float64(cols) / t.canvasWidth, float64(rows) / t.canvasHeight, cols, rows
}

// DrawSprite fills every cell the box covers. Boxes narrower than a cell
// still get one cell.
func (t *Terminal) DrawSprite(sprite game.Sprite, x, y, width, height float64) {
	sx, sy, cols, rows := t.scale()
	if cols == 0 || rows == 0 {
		return
	}

	glyph, style := spriteCell(sprite)
	x0, x1 := span(x, width, sx)
	y0, y1 := span(y, height, sy)
	for row := max(y0, 0); row < min(y1, rows); row++ {
		for col := max(x0, 0); col < min(x1, cols); col++ {
			t.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

func (t *Terminal) DrawText(text string, x, y float64, align game.Align) {
	sx, sy, cols, rows := t.scale()
	row := int(math.Round(y * sy))
	if row < 0 || row >= rows {
		return
	}

	runes := []rune(text)
	col := int(math.Round(x * sx))
	switch align {
	case game.AlignCenter:
		col -= len(runes) / 2
	case game.AlignRight:
		col -= len(runes)
	}
	for i, r := range runes {
		if c := col + i; c >= 0 && c < cols {
			t.screen.SetContent(c, row, r, nil, textStyle)
		}
	}
}

// span maps [pos, pos+size) onto a half-open cell range. Rounding both edges
// keeps neighbouring boxes from sharing a cell.
func span(pos, size, scale float64) (int, int) {
	start := int(math.Round(pos * scale))
	end := int(math.Round((pos + size) * scale))
	if end <= start {
		end = start + 1
	}
	return start, end
}

func spriteCell(sprite game.Sprite) (rune, tcell.Style) {
	var (
		glyph rune
		style tcell.Style
	)
	switch sprite.Kind {
	case game.SpritePaddle:
		skin := sprite.Index / game.PaddlesPerSkin
		glyph, style = '█', tcell.StyleDefault.Foreground(paddleColors[skin%len(paddleColors)])
	case game.SpriteBall:
		glyph, style = '●', ballStyle
	case game.SpriteBrick:
		if sprite.Index >= game.LockedBrickSprite {
			glyph, style = '▦', lockedStyle
			break
		}
		shades := []rune(brickShades)
		color := sprite.Index / game.TiersPerColor
		tier := sprite.Index % game.TiersPerColor
		glyph, style = shades[tier], tcell.StyleDefault.Foreground(brickColors[color%len(brickColors)])
	case game.SpritePowerUp:
		glyph, style = '+', powerStyle
	case game.SpriteKey:
		glyph, style = 'k', keyStyle
	case game.SpriteHeart:
		if sprite.Index == 0 {
			glyph, style = '♥', heartStyle
		} else {
			glyph, style = '♡', emptyStyle
		}
	default:
		glyph, style = '?', tcell.StyleDefault
	}
	if sprite.Highlight {
		style = style.Reverse(true)
	}
	return glyph, style
}
